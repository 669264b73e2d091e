package completed

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtravel/internal/router"
	"github.com/abhisek/mathtravel/internal/screen"
	"github.com/abhisek/mathtravel/internal/session"
	"github.com/abhisek/mathtravel/internal/ui/components"
	"github.com/abhisek/mathtravel/internal/ui/layout"
	"github.com/abhisek/mathtravel/internal/ui/theme"
)

const trophy = `
      ___________
     '._==_==_=_.'
     .-\:      /-.
    | (|:.     |) |
     '-|:.     |-'
       \::.    /
        '::. .'
          ) (
        _.' '._
       '-------'
`

// Model celebrates finishing the last landmark of the journey. Enter closes
// the session and returns to the main menu.
type Model struct {
	game *session.Game
	t    *session.Transition
}

// New creates the journey completion screen.
func New(g *session.Game, t *session.Transition) *Model {
	return &Model{game: g, t: t}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", " ":
			// Two pops: this screen, then the gameplay screen under it.
			return m, tea.Sequence(m.finish, popCmd, popCmd)
		}
	}
	return m, nil
}

// finish marks the journey complete and ends the session.
func (m *Model) finish() tea.Msg {
	ctx := context.Background()
	_ = m.game.AdvanceLandmark(ctx)
	_ = m.game.End(ctx)
	return nil
}

func popCmd() tea.Msg {
	return router.PopScreenMsg{}
}

func (m *Model) View(width, height int) string {
	cw := components.ContentWidth(width)
	progress := m.game.Progress()

	title := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render("🏆 JOURNEY COMPLETE! 🏆")

	art := lipgloss.NewStyle().Foreground(theme.Accent).Render(trophy)

	message := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 8).
		Align(lipgloss.Center).
		Render(fmt.Sprintf(
			"You travelled the whole world and finished at %s! You earned %d tickets along the way.",
			m.t.Landmark.DisplayName, progress.Tickets,
		))

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		art,
		"",
		components.Card(message, cw),
		"",
		lipgloss.NewStyle().Foreground(theme.Success).
			Render("You can keep playing to earn even more tickets."),
		"",
		components.CardButton("Back to the menu", true, cw/2),
	)
	return components.TravelFrame(body, width, height)
}

func (m *Model) Title() string {
	return "Journey Complete"
}

// HeaderInfo shows the final ticket haul.
func (m *Model) HeaderInfo() (int, string) {
	return m.game.Progress().Tickets, m.t.Country.FlagEmoji
}

func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Back to menu"}}
}
