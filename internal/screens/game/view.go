package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtravel/internal/session"
	"github.com/abhisek/mathtravel/internal/ui/components"
	"github.com/abhisek/mathtravel/internal/ui/theme"
)

func (m *Model) View(width, height int) string {
	var body string
	switch m.phase {
	case phaseLoading:
		body = m.renderLoading()
	case phaseQuestion:
		body = m.renderQuestion(width)
	case phaseFeedback:
		body = m.renderFeedback(width)
	case phaseQuitConfirm:
		body = m.renderQuitConfirm(width)
	case phaseError:
		body = m.renderError()
	}
	return components.TravelFrame(body, width, height)
}

func (m *Model) renderLoading() string {
	return theme.Subtitle.Render("Packing your bags...")
}

func (m *Model) renderQuestion(width int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, m.renderPlaceLine())
	sections = append(sections, m.renderScoreLine())
	sections = append(sections, "")

	if m.isReview {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("↻ One more try at this one!"))
	}

	questionText := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(m.question.Text)
	sections = append(sections, components.Card(questionText, cw))

	sections = append(sections, "")
	sections = append(sections, "Answer: "+m.input.View())

	if m.showHint {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("💡 "+m.hint))
	}

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (m *Model) renderPlaceLine() string {
	country, lm, ok := m.game.CurrentLandmark()
	if !ok {
		return ""
	}
	return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("%s  %s, %s", country.FlagEmoji, lm.DisplayName, country.Name))
}

// renderScoreLine shows landmark progress as filled and empty stars.
func (m *Model) renderScoreLine() string {
	score := m.game.Progress().Score
	stars := strings.Repeat("★", score) + strings.Repeat("☆", session.MaxScore-score)
	line := lipgloss.NewStyle().Foreground(theme.Accent).Render(stars)
	if n := m.game.ReviewLen(); n > 0 {
		line += lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("   ↻ %d to review", n))
	}
	return line
}

func (m *Model) renderFeedback(width int) string {
	cw := components.ContentWidth(width)

	var sections []string
	if m.result.Correct {
		sections = append(sections, theme.Correct.Render("✓ Correct!"))
	} else {
		sections = append(sections, theme.Incorrect.Render("✗ Not quite"))
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("The answer was %s", m.result.CorrectAnswer)))
		sections = append(sections, theme.Hint.Render("It'll come around again for another try."))
	}

	if len(m.notifications) > 0 {
		sections = append(sections, "")
		for _, note := range m.notifications {
			sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Render(note))
		}
	}

	if t := m.game.PendingTransition(); t != nil {
		sections = append(sections, "")
		if t.JourneyComplete {
			sections = append(sections, lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
				Render("🏆 That was the last landmark!"))
		} else {
			sections = append(sections, lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
				Render(fmt.Sprintf("⭐ %s complete!", t.Landmark.DisplayName)))
		}
	}

	sections = append(sections, "")
	sections = append(sections, theme.Subtitle.Render("Press any key to continue..."))

	return components.Card(lipgloss.JoinVertical(lipgloss.Center, sections...), cw)
}

func (m *Model) renderQuitConfirm(width int) string {
	cw := components.ContentWidth(width)
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("End this session?"),
		"",
		theme.Subtitle.Render("Your progress is saved after every answer."),
		"",
		theme.Correct.Render("[Y]")+" "+theme.Body.Render("Yes")+
			"    "+theme.Incorrect.Render("[N]")+" "+theme.Body.Render("Keep playing"),
	)
	return components.Card(body, cw)
}

func (m *Model) renderError() string {
	msg := "Something went wrong."
	if m.err != nil {
		msg = m.err.Error()
	}
	return lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Oops!"),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(msg),
		"",
		theme.Subtitle.Render("Press any key to go back."),
	)
}
