package menu

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtravel/internal/ui/theme"
)

const banner = `
 __  __       _   _       _____                    _
|  \/  | __ _| |_| |__   |_   _| __ __ ___   _____| |
| |\/| |/ _` + "`" + ` | __| '_ \    | || '__/ _` + "`" + ` \ \ / / _ \ |
| |  | | (_| | |_| | | |   | || | | (_| |\ V /  __/ |
|_|  |_|\__,_|\__|_| |_|   |_||_|  \__,_| \_/ \___|_|
`

const compactBanner = `MATH TRAVEL`

// bannerWidth is the widest line of the large banner.
const bannerWidth = 54

// renderBanner renders the title banner, falling back to plain text when
// the terminal is too narrow for the ASCII art.
func renderBanner(width int) string {
	if width < bannerWidth+2 {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Render(compactBanner)
	}
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(banner)
}
