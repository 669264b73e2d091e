package transition

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

// Model is the landmark celebration screen shown between landmarks. It
// displays the fun fact and, on Enter, advances the journey and returns to
// the gameplay screen.
type Model struct {
	game *session.Game
	t    *session.Transition
}

// New creates a transition screen for a freshly completed landmark.
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
			return m, m.advance
		}
	}
	return m, nil
}

// advance moves the journey to the next landmark and pops back to gameplay.
func (m *Model) advance() tea.Msg {
	_ = m.game.AdvanceLandmark(context.Background())
	return router.PopScreenMsg{}
}

func (m *Model) View(width, height int) string {
	cw := components.ContentWidth(width)
	t := m.t

	title := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
		Render(fmt.Sprintf("⭐ %s complete! ⭐", t.Landmark.DisplayName))

	place := lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(fmt.Sprintf("%s  %s", t.Country.FlagEmoji, t.Country.Name))

	factTitle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render("Did you know?")
	fact := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 8).
		Align(lipgloss.Center).Render(t.FunFact)
	factCard := components.Card(factTitle+"\n\n"+fact, cw)

	var next string
	if t.EnteringCountry {
		next = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(fmt.Sprintf("✈ Next stop: %s %s!", t.NextCountry.Name, t.NextCountry.FlagEmoji))
	} else {
		next = lipgloss.NewStyle().Foreground(theme.Primary).
			Render(fmt.Sprintf("→ On to %s", t.NextLandmark.DisplayName))
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		place,
		"",
		factCard,
		"",
		next,
		"",
		components.CardButton("Continue your journey", true, cw/2),
	)
	return components.TravelFrame(body, width, height)
}

func (m *Model) Title() string {
	return "Landmark Complete"
}

// HeaderInfo keeps the header's tickets and flag live during the pause.
func (m *Model) HeaderInfo() (int, string) {
	return m.game.Progress().Tickets, m.t.Country.FlagEmoji
}

func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
}
