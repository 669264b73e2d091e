package summary

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtravel/internal/router"
	"github.com/abhisek/mathtravel/internal/screen"
	"github.com/abhisek/mathtravel/internal/session"
	"github.com/abhisek/mathtravel/internal/ui/components"
	"github.com/abhisek/mathtravel/internal/ui/layout"
	"github.com/abhisek/mathtravel/internal/ui/theme"
)

// Model is the end-of-session recap shown after the player ends a session.
type Model struct {
	sum session.Summary
}

// New creates the session recap screen.
func New(sum session.Summary) *Model {
	return &Model{sum: sum}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return m, nil
}

func (m *Model) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("Great travelling today!")

	rows := []string{
		statRow("Questions answered", fmt.Sprintf("%d", m.sum.QuestionsAnswered), cw),
		statRow("Correct", fmt.Sprintf("%d", m.sum.CorrectAnswers), cw),
		statRow("Accuracy", fmt.Sprintf("%.0f%%", m.sum.Accuracy*100), cw),
		statRow("Tickets earned", fmt.Sprintf("🎟 %d", m.sum.TicketsEarned), cw),
		statRow("Time played", formatDuration(m.sum.Duration), cw),
	}

	card := components.Card(lipgloss.JoinVertical(lipgloss.Left, rows...), cw)

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		card,
		"",
		theme.Subtitle.Render("Press any key to return to the menu"),
	)
	return components.TravelFrame(body, width, height)
}

func statRow(label, value string, cw int) string {
	l := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 20).Render(label)
	v := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
	return l + v
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
}

func (m *Model) Title() string {
	return "Session Recap"
}

func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Any key", Description: "Back to menu"}}
}
