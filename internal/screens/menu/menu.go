package menu

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtravel/internal/content"
	"github.com/abhisek/mathtravel/internal/router"
	"github.com/abhisek/mathtravel/internal/screen"
	"github.com/abhisek/mathtravel/internal/screens/dashboard"
	"github.com/abhisek/mathtravel/internal/screens/game"
	"github.com/abhisek/mathtravel/internal/screens/settings"
	"github.com/abhisek/mathtravel/internal/session"
	"github.com/abhisek/mathtravel/internal/store"
	"github.com/abhisek/mathtravel/internal/ui/components"
	"github.com/abhisek/mathtravel/internal/ui/layout"
	"github.com/abhisek/mathtravel/internal/ui/theme"
)

// statusLoadedMsg carries the saved journey position for the subtitle line.
type statusLoadedMsg struct {
	tickets   int
	flag      string
	place     string
	completed bool
	err       error
}

// Model is the main menu screen.
type Model struct {
	catalog *content.Catalog
	store   *store.Store
	menu    components.Menu

	tickets   int
	flag      string
	place     string
	completed bool
	loadErr   error
}

// New creates the main menu.
func New(catalog *content.Catalog, st *store.Store) *Model {
	m := &Model{catalog: catalog, store: st}

	items := []components.MenuItem{
		{
			Label:    "Start Adventure",
			Disabled: catalog.Empty(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: game.New(catalog, st)}
				}
			},
		},
		{
			Label: "World Map",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: dashboard.New(catalog, st)}
				}
			},
		},
		{
			Label: "Settings",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: settings.New(st)}
				}
			},
		},
		{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}
	m.menu = components.NewMenu(items)
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.loadStatus
}

// loadStatus reads the latest snapshot to show where the journey stands.
func (m *Model) loadStatus() tea.Msg {
	snap, err := m.store.SnapshotRepo().Latest(context.Background())
	if err != nil {
		return statusLoadedMsg{err: err}
	}

	msg := statusLoadedMsg{}
	var data *store.SnapshotData
	if snap != nil {
		data = &snap.Data
	}

	progress := session.NewProgress(data, m.catalog)
	msg.tickets = progress.Tickets
	msg.completed = progress.JourneyCompleted
	if lm, ok := m.catalog.Landmark(progress.LandmarkID); ok {
		msg.flag = lm.CountryFlagEmoji
		msg.place = fmt.Sprintf("%s, %s", lm.DisplayName, lm.CountryName)
	}
	return msg
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statusLoadedMsg:
		m.tickets = msg.tickets
		m.flag = msg.flag
		m.place = msg.place
		m.completed = msg.completed
		m.loadErr = msg.err
		return m, nil

	case router.RefocusMsg:
		return m, m.loadStatus
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *Model) View(width, height int) string {
	bannerView := renderBanner(width)

	tagline := theme.Subtitle.Render("Solve math problems. See the world.")

	status := ""
	switch {
	case m.catalog.Empty():
		status = lipgloss.NewStyle().Foreground(theme.Error).
			Render("No journey content found.")
	case m.completed:
		status = lipgloss.NewStyle().Foreground(theme.Success).
			Render("🏆 Journey complete! Play on to keep earning tickets.")
	case m.place != "":
		status = lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("Next stop: %s %s", m.place, m.flag))
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		bannerView,
		tagline,
		"",
		status,
		"",
		m.menu.View(),
	)

	return components.TravelFrame(body, width, height)
}

func (m *Model) Title() string {
	return "Main Menu"
}

// HeaderInfo reports the ticket balance for the header bar.
func (m *Model) HeaderInfo() (int, string) {
	return m.tickets, m.flag
}

func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
