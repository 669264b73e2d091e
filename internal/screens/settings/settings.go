package settings

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtravel/internal/router"
	"github.com/abhisek/mathtravel/internal/screen"
	"github.com/abhisek/mathtravel/internal/store"
	"github.com/abhisek/mathtravel/internal/ui/components"
	"github.com/abhisek/mathtravel/internal/ui/layout"
	"github.com/abhisek/mathtravel/internal/ui/theme"
)

// settingsLoadedMsg delivers the persisted settings.
type settingsLoadedMsg struct {
	data store.SettingsData
	err  error
}

// savedMsg reports the outcome of a save.
type savedMsg struct {
	err error
}

const (
	rowAdaptive = iota
	rowHintLevel
	rowCount
)

// Model is the settings screen. Every change is saved immediately.
type Model struct {
	store *store.Store

	loaded   bool
	data     store.SettingsData
	selected int
	err      error
}

// New creates the settings screen.
func New(st *store.Store) *Model {
	return &Model{store: st}
}

func (m *Model) Init() tea.Cmd {
	return m.load
}

func (m *Model) load() tea.Msg {
	data, err := m.store.SettingsRepo().Load(context.Background())
	return settingsLoadedMsg{data: data, err: err}
}

func (m *Model) save() tea.Cmd {
	data := m.data
	return func() tea.Msg {
		return savedMsg{err: m.store.SettingsRepo().Save(context.Background(), data)}
	}
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		m.loaded = true
		m.data = msg.data
		m.err = msg.err
		return m, nil

	case savedMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if !m.loaded {
			return m, nil
		}
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < rowCount-1 {
				m.selected++
			}
		case "enter", " ", "left", "right", "h", "l":
			return m, m.toggle(msg.String())
		}
	}
	return m, nil
}

// toggle flips or cycles the selected setting and saves.
func (m *Model) toggle(key string) tea.Cmd {
	switch m.selected {
	case rowAdaptive:
		m.data.AdaptiveDifficulty = !m.data.AdaptiveDifficulty
	case rowHintLevel:
		if key == "left" || key == "h" {
			m.data.HintLevel = prevHintLevel(m.data.HintLevel)
		} else {
			m.data.HintLevel = nextHintLevel(m.data.HintLevel)
		}
	}
	return m.save()
}

func nextHintLevel(level string) string {
	switch level {
	case store.HintMinimal:
		return store.HintMedium
	case store.HintMedium:
		return store.HintDetailed
	default:
		return store.HintMinimal
	}
}

func prevHintLevel(level string) string {
	switch level {
	case store.HintDetailed:
		return store.HintMedium
	case store.HintMedium:
		return store.HintMinimal
	default:
		return store.HintDetailed
	}
}

func hintLevelLabel(level string) string {
	switch level {
	case store.HintMinimal:
		return "Minimal (no hints)"
	case store.HintDetailed:
		return "Detailed (hints shown right away)"
	default:
		return "Medium (press ? for a hint)"
	}
}

func (m *Model) View(width, height int) string {
	if !m.loaded {
		return components.TravelFrame(theme.Subtitle.Render("Loading settings..."), width, height)
	}

	cw := components.ContentWidth(width)

	adaptiveValue := "Off (every question at medium difficulty)"
	if m.data.AdaptiveDifficulty {
		adaptiveValue = "On (questions adjust to you)"
	}

	rows := []string{
		settingRow("Adaptive difficulty", adaptiveValue, m.selected == rowAdaptive),
		settingRow("Hint level", hintLevelLabel(m.data.HintLevel), m.selected == rowHintLevel),
	}

	var sections []string
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("Settings"))
	sections = append(sections, "")
	sections = append(sections, rows...)
	if m.err != nil {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).
			Render("Could not save: "+m.err.Error()))
	}

	card := components.Card(lipgloss.JoinVertical(lipgloss.Left, sections...), cw)
	return components.TravelFrame(card, width, height)
}

func settingRow(label, value string, selected bool) string {
	marker := "  "
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		marker = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ ")
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
	}
	return marker + labelStyle.Render(label) + "\n    " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(value) + "\n"
}

func (m *Model) Title() string {
	return "Settings"
}

func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}
