package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtravel/internal/content"
	"github.com/abhisek/mathtravel/internal/mastery"
	"github.com/abhisek/mathtravel/internal/problemgen"
	"github.com/abhisek/mathtravel/internal/router"
	"github.com/abhisek/mathtravel/internal/screen"
	"github.com/abhisek/mathtravel/internal/session"
	"github.com/abhisek/mathtravel/internal/store"
	"github.com/abhisek/mathtravel/internal/ui/components"
	"github.com/abhisek/mathtravel/internal/ui/layout"
	"github.com/abhisek/mathtravel/internal/ui/theme"
)

// statsLoadedMsg carries everything the dashboard renders.
type statsLoadedMsg struct {
	progress *session.Progress
	tracker  *mastery.Tracker

	totalAnswered int
	totalCorrect  int
	tickets       int
	sessions      int
	byType        map[string]store.AccuracyStat

	err error
}

// Model is the world map and statistics screen.
type Model struct {
	catalog *content.Catalog
	store   *store.Store

	loaded bool
	stats  statsLoadedMsg
}

// New creates the dashboard screen.
func New(catalog *content.Catalog, st *store.Store) *Model {
	return &Model{catalog: catalog, store: st}
}

func (m *Model) Init() tea.Cmd {
	return m.loadStats
}

func (m *Model) loadStats() tea.Msg {
	ctx := context.Background()
	msg := statsLoadedMsg{}

	snap, err := m.store.SnapshotRepo().Latest(ctx)
	if err != nil {
		msg.err = err
		return msg
	}
	var data *store.SnapshotData
	if snap != nil {
		data = &snap.Data
	}
	msg.progress = session.NewProgress(data, m.catalog)
	msg.tracker = mastery.NewTracker(data)

	events := m.store.EventRepo()
	if msg.totalAnswered, msg.totalCorrect, err = events.AnswerTotals(ctx); err != nil {
		msg.err = err
		return msg
	}
	if msg.tickets, err = events.TicketTotal(ctx); err != nil {
		msg.err = err
		return msg
	}
	if msg.byType, err = events.AccuracyByMathType(ctx); err != nil {
		msg.err = err
		return msg
	}
	summaries, err := events.QuerySessionSummaries(ctx, store.QueryOpts{})
	if err != nil {
		msg.err = err
		return msg
	}
	msg.sessions = len(summaries)
	return msg
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.stats = msg
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return m, nil
}

func (m *Model) View(width, height int) string {
	if !m.loaded {
		return components.TravelFrame(theme.Subtitle.Render("Unfolding the map..."), width, height)
	}
	if m.stats.err != nil {
		return components.TravelFrame(
			lipgloss.NewStyle().Foreground(theme.Error).Render(m.stats.err.Error()),
			width, height,
		)
	}

	cw := components.ContentWidth(width)

	left := m.renderJourney(cw)
	right := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderMastery(cw),
		"",
		m.renderTotals(cw),
	)

	var body string
	if width >= 2*cw+10 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	}
	return components.TravelFrame(body, width, height)
}

// renderJourney lists every country and landmark with visit markers.
func (m *Model) renderJourney(cw int) string {
	progress := m.stats.progress

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("Your Journey"))
	lines = append(lines, "")

	reached := true // flips to false once the current landmark is seen
	for _, country := range m.catalog.Countries() {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("%s %s", country.FlagEmoji, country.Name)))

		for _, lm := range m.catalog.LandmarksOf(country.ID) {
			current := lm.ID == progress.LandmarkID && !progress.JourneyCompleted
			if current {
				reached = false
			}

			switch {
			case current:
				stars := strings.Repeat("★", progress.Score) +
					strings.Repeat("☆", session.MaxScore-progress.Score)
				lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
					Render(fmt.Sprintf("  ▸ %s  %s", lm.DisplayName, stars)))
			case reached || progress.JourneyCompleted:
				lines = append(lines, lipgloss.NewStyle().Foreground(theme.Success).
					Render(fmt.Sprintf("  ✓ %s", lm.DisplayName)))
			default:
				lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).
					Render(fmt.Sprintf("  ○ %s", lm.DisplayName)))
			}
		}
		lines = append(lines, "")
	}

	if progress.JourneyCompleted {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("🏆 Journey complete!"))
	}
	return components.Card(lipgloss.JoinVertical(lipgloss.Left, lines...), cw)
}

// renderMastery shows the level ladder for every math type, with lifetime
// accuracy where the player has answered that type.
func (m *Model) renderMastery(cw int) string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("Math Skills"))
	lines = append(lines, "")

	for _, t := range problemgen.GeneratedTypes() {
		level := m.stats.tracker.Level(t)
		name := t.DisplayName()

		if level == mastery.LevelLocked {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  🔒 %-14s %s", name, "Locked")))
			continue
		}

		bar := components.NewProgressBar("", float64(level)/float64(mastery.MaxLevel), false, 12)
		line := fmt.Sprintf("  %-16s", name) + bar.View() + "  " +
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(mastery.LevelName(level))

		if stat, ok := m.stats.byType[string(t)]; ok && stat.Total > 0 {
			pct := float64(stat.Correct) / float64(stat.Total) * 100
			line += lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %.0f%%", pct))
		}
		lines = append(lines, line)
	}
	return components.Card(lipgloss.JoinVertical(lipgloss.Left, lines...), cw)
}

func (m *Model) renderTotals(cw int) string {
	accuracy := 0.0
	if m.stats.totalAnswered > 0 {
		accuracy = float64(m.stats.totalCorrect) / float64(m.stats.totalAnswered) * 100
	}

	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("All-Time Stats"),
		"",
		statLine("Questions answered", fmt.Sprintf("%d", m.stats.totalAnswered)),
		statLine("Accuracy", fmt.Sprintf("%.0f%%", accuracy)),
		statLine("Tickets", fmt.Sprintf("🎟 %d", m.stats.tickets)),
		statLine("Sessions played", fmt.Sprintf("%d", m.stats.sessions)),
	}
	return components.Card(lipgloss.JoinVertical(lipgloss.Left, lines...), cw)
}

func statLine(label, value string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %-20s", label)) +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
}

func (m *Model) Title() string {
	return "World Map"
}

// HeaderInfo reports the lifetime ticket balance.
func (m *Model) HeaderInfo() (int, string) {
	if !m.loaded || m.stats.progress == nil {
		return 0, ""
	}
	flag := ""
	if lm, ok := m.catalog.Landmark(m.stats.progress.LandmarkID); ok {
		flag = lm.CountryFlagEmoji
	}
	return m.stats.progress.Tickets, flag
}

func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}
