package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtravel/internal/content"
	"github.com/abhisek/mathtravel/internal/router"
	"github.com/abhisek/mathtravel/internal/screen"
	"github.com/abhisek/mathtravel/internal/screens/menu"
	"github.com/abhisek/mathtravel/internal/store"
	"github.com/abhisek/mathtravel/internal/ui/layout"
)

// Options carries the application dependencies into the TUI.
type Options struct {
	Catalog *content.Catalog
	Store   *store.Store
}

// AppModel is the root Bubble Tea model. It owns the screen router and
// renders the header/footer frame around the active screen.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the main menu on the stack.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(menu.New(opts.Catalog, opts.Store)),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	tickets := 0
	flag := ""
	if active != nil {
		title = active.Title()
		if info, ok := active.(screen.HeaderInfoProvider); ok {
			tickets, flag = info.HeaderInfo()
		}
	}

	header := layout.RenderHeader(title, tickets, flag, m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(provider.KeyHints(), footerHints...)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
