package game

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtravel/internal/content"
	"github.com/abhisek/mathtravel/internal/mastery"
	"github.com/abhisek/mathtravel/internal/problemgen"
	"github.com/abhisek/mathtravel/internal/router"
	"github.com/abhisek/mathtravel/internal/screen"
	"github.com/abhisek/mathtravel/internal/screens/completed"
	"github.com/abhisek/mathtravel/internal/screens/summary"
	"github.com/abhisek/mathtravel/internal/screens/transition"
	"github.com/abhisek/mathtravel/internal/session"
	"github.com/abhisek/mathtravel/internal/store"
	"github.com/abhisek/mathtravel/internal/ui/components"
	"github.com/abhisek/mathtravel/internal/ui/layout"
)

// answerInputWidth bounds the answer field. The longest generated answer is
// a four digit product plus a decimal fraction like "0.25".
const answerInputWidth = 12

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseQuitConfirm
	phaseError
)

// Model is the gameplay screen: one question at a time, feedback after
// every answer, landmark transitions pushed on top.
type Model struct {
	catalog *content.Catalog
	store   *store.Store
	game    *session.Game

	phase    phase
	question *problemgen.Question
	isReview bool
	input    components.TextInput
	showHint bool
	hint     string

	result        *session.AnswerResult
	notifications []string

	err error
}

// New creates the gameplay screen. The saved game is loaded asynchronously
// in Init.
func New(catalog *content.Catalog, st *store.Store) *Model {
	return &Model{
		catalog: catalog,
		store:   st,
		phase:   phaseLoading,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.loadGame
}

func (m *Model) loadGame() tea.Msg {
	g, err := session.LoadGame(context.Background(), m.catalog, m.store)
	return gameReadyMsg{game: g, err: err}
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gameReadyMsg:
		if msg.err != nil {
			m.err = msg.err
			m.phase = phaseError
			return m, nil
		}
		m.game = msg.game
		return m, m.serveNextQuestion()

	case answeredMsg:
		if msg.err != nil {
			m.err = msg.err
			m.phase = phaseError
			return m, nil
		}
		if msg.result == nil {
			// Empty input; keep waiting for an answer.
			return m, nil
		}
		m.result = msg.result
		m.notifications = buildNotifications(msg.result)
		m.phase = phaseFeedback
		return m, nil

	case router.RefocusMsg:
		// A transition screen above us was popped; play on.
		if m.game != nil && m.phase == phaseFeedback {
			return m, m.serveNextQuestion()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseQuestion {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch m.phase {
	case phaseQuestion:
		switch msg.String() {
		case "esc":
			m.phase = phaseQuitConfirm
			return m, nil
		case "?":
			if !m.showHint {
				m.hint = m.game.HintText()
				m.showHint = m.hint != ""
			}
			return m, nil
		case "enter":
			return m, m.submitAnswer
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseFeedback:
		return m.dismissFeedback()

	case phaseQuitConfirm:
		switch msg.String() {
		case "y", "Y":
			return m, m.endSession
		case "n", "N", "esc":
			m.phase = phaseQuestion
			return m, nil
		}
		return m, nil

	case phaseError:
		return m, popCmd
	}
	return m, nil
}

// serveNextQuestion pulls the next question (review first) and resets the
// answer input.
func (m *Model) serveNextQuestion() tea.Cmd {
	q := m.game.NextQuestion()
	if q == nil {
		m.err = fmt.Errorf("no question available")
		m.phase = phaseError
		return nil
	}

	m.question = q
	m.isReview = m.game.CurrentIsReview()
	m.result = nil
	m.notifications = nil
	m.input = components.NewTextInput("type your answer", false, answerInputWidth)
	m.showHint = false
	m.hint = ""
	if m.game.HintsImmediate() {
		m.hint = m.game.HintText()
		m.showHint = m.hint != ""
	}
	m.phase = phaseQuestion
	return m.input.Init()
}

func (m *Model) submitAnswer() tea.Msg {
	result, err := m.game.SubmitAnswer(context.Background(), m.input.Value())
	return answeredMsg{result: result, err: err}
}

// dismissFeedback moves on after the player has read the feedback: into a
// transition when the landmark was completed, otherwise to the next question.
func (m *Model) dismissFeedback() (screen.Screen, tea.Cmd) {
	if t := m.game.PendingTransition(); t != nil {
		if t.JourneyComplete {
			return m, func() tea.Msg {
				return router.PushScreenMsg{Screen: completed.New(m.game, t)}
			}
		}
		return m, func() tea.Msg {
			return router.PushScreenMsg{Screen: transition.New(m.game, t)}
		}
	}
	return m, m.serveNextQuestion()
}

// endSession records the session end and swaps in the recap screen.
func (m *Model) endSession() tea.Msg {
	sum := m.game.Summarize()
	_ = m.game.End(context.Background())
	return router.ReplaceScreenMsg{Screen: summary.New(sum)}
}

func popCmd() tea.Msg {
	return router.PopScreenMsg{}
}

// buildNotifications turns level changes into reader-friendly lines.
func buildNotifications(result *session.AnswerResult) []string {
	var notes []string
	for _, change := range result.LevelChanges {
		switch change.Trigger {
		case "unlock":
			notes = append(notes, fmt.Sprintf("🔓 %s unlocked!", change.MathType.DisplayName()))
		case "streak-up":
			notes = append(notes, fmt.Sprintf("⬆ %s is now %s!",
				change.MathType.DisplayName(), mastery.LevelName(change.To)))
		case "streak-down":
			notes = append(notes, fmt.Sprintf("%s dropped to %s. You'll get it back!",
				change.MathType.DisplayName(), mastery.LevelName(change.To)))
		}
	}
	if result.TicketsWon > 0 {
		notes = append(notes, fmt.Sprintf("🎟 +%d ticket", result.TicketsWon))
	}
	return notes
}

func (m *Model) Title() string {
	if m.game != nil {
		if _, lm, ok := m.game.CurrentLandmark(); ok {
			return lm.DisplayName
		}
	}
	return "Adventure"
}

// HeaderInfo reports live tickets and the current country flag.
func (m *Model) HeaderInfo() (int, string) {
	if m.game == nil {
		return 0, ""
	}
	flag := ""
	if country, _, ok := m.game.CurrentLandmark(); ok {
		flag = country.FlagEmoji
	}
	return m.game.Progress().Tickets, flag
}

func (m *Model) KeyHints() []layout.KeyHint {
	switch m.phase {
	case phaseQuestion:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
		}
		if !m.showHint {
			hints = append(hints, layout.KeyHint{Key: "?", Description: "Hint"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "End session"})
	case phaseFeedback:
		return []layout.KeyHint{{Key: "Any key", Description: "Continue"}}
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}
