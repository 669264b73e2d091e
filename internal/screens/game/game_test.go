package game

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtravel/internal/content"
	"github.com/abhisek/mathtravel/internal/mastery"
	"github.com/abhisek/mathtravel/internal/problemgen"
	"github.com/abhisek/mathtravel/internal/router"
	"github.com/abhisek/mathtravel/internal/screen"
	"github.com/abhisek/mathtravel/internal/screens/completed"
	"github.com/abhisek/mathtravel/internal/screens/transition"
	"github.com/abhisek/mathtravel/internal/session"
	"github.com/abhisek/mathtravel/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testCatalog() *content.Catalog {
	countries := []content.Country{
		{ID: "france", Name: "France", FlagEmoji: "🇫🇷", VisitOrder: 1,
			Landmarks: []string{"eiffel-tower"}},
		{ID: "spain", Name: "Spain", FlagEmoji: "🇪🇸", VisitOrder: 2,
			Landmarks: []string{"sagrada-familia"}},
	}
	landmarks := []content.Landmark{
		{ID: "eiffel-tower", DisplayName: "Eiffel Tower", CountryID: "france",
			CountryName: "France", CountryFlagEmoji: "🇫🇷", FunFact: "It grows in summer."},
		{ID: "sagrada-familia", DisplayName: "Sagrada Família", CountryID: "spain",
			CountryName: "Spain", CountryFlagEmoji: "🇪🇸", FunFact: "Still under construction."},
	}
	return content.NewCatalog(countries, landmarks)
}

func testScreen(t *testing.T) *Model {
	t.Helper()
	catalog := testCatalog()
	g, err := session.NewGame(catalog, nil, store.DefaultSettings(), nil, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	m := New(catalog, nil)
	m.game = g
	if cmd := m.serveNextQuestion(); cmd == nil {
		t.Fatal("expected input focus command")
	}
	return m
}

// answerCurrent submits the given input through the screen's message flow.
func answerCurrent(t *testing.T, m *Model, input string) *Model {
	t.Helper()
	m.input.Model.SetValue(input)

	var scr screen.Screen = m
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	scr, _ = scr.Update(cmd())
	return scr.(*Model)
}

func TestGameScreen_Title(t *testing.T) {
	m := testScreen(t)
	if m.Title() != "Eiffel Tower" {
		t.Errorf("Title = %q, want %q", m.Title(), "Eiffel Tower")
	}
}

func TestGameScreen_LoadingView(t *testing.T) {
	m := New(testCatalog(), nil)
	if m.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}
}

func TestGameScreen_ServesQuestion(t *testing.T) {
	m := testScreen(t)
	if m.phase != phaseQuestion {
		t.Fatalf("phase = %d, want phaseQuestion", m.phase)
	}
	if m.question == nil {
		t.Fatal("expected a question")
	}
	if m.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}
}

func TestGameScreen_CorrectAnswerFeedback(t *testing.T) {
	m := testScreen(t)
	m = answerCurrent(t, m, m.question.Answer)

	if m.phase != phaseFeedback {
		t.Fatalf("phase = %d, want phaseFeedback", m.phase)
	}
	if !m.result.Correct {
		t.Error("expected correct result")
	}
	if m.View(80, 24) == "" {
		t.Error("expected non-empty feedback view")
	}
}

func TestGameScreen_WrongAnswerFeedback(t *testing.T) {
	m := testScreen(t)
	m = answerCurrent(t, m, "not-a-number")

	if m.phase != phaseFeedback {
		t.Fatalf("phase = %d, want phaseFeedback", m.phase)
	}
	if m.result.Correct {
		t.Error("expected incorrect result")
	}
}

func TestGameScreen_EmptyInputIgnored(t *testing.T) {
	m := testScreen(t)
	q := m.question

	var scr screen.Screen = m
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	scr, _ = scr.Update(cmd())
	m = scr.(*Model)

	if m.phase != phaseQuestion {
		t.Errorf("phase = %d, want phaseQuestion", m.phase)
	}
	if m.question != q {
		t.Error("expected the same question to stay current")
	}
}

func TestGameScreen_FeedbackDismissServesNext(t *testing.T) {
	m := testScreen(t)
	m = answerCurrent(t, m, m.question.Answer)

	var scr screen.Screen = m
	scr, _ = scr.Update(keyPress(' '))
	m = scr.(*Model)

	if m.phase != phaseQuestion {
		t.Errorf("phase = %d, want phaseQuestion after dismiss", m.phase)
	}
}

func TestGameScreen_LandmarkCompletePushesTransition(t *testing.T) {
	m := testScreen(t)
	for i := 0; i < session.MaxScore; i++ {
		m = answerCurrent(t, m, m.question.Answer)
		if m.game.PendingTransition() != nil {
			break
		}
		var scr screen.Screen = m
		scr, _ = scr.Update(keyPress(' '))
		m = scr.(*Model)
	}

	if m.game.PendingTransition() == nil {
		t.Fatal("expected a pending transition after max score")
	}

	var scr screen.Screen = m
	_, cmd := scr.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*transition.Model); !ok {
		t.Errorf("pushed screen = %T, want *transition.Model", msg.Screen)
	}
}

func TestGameScreen_JourneyCompletePushesCelebration(t *testing.T) {
	m := testScreen(t)

	// Finish both landmarks of the two-country catalog.
	for landmark := 0; landmark < 2; landmark++ {
		for m.game.PendingTransition() == nil {
			m = answerCurrent(t, m, m.question.Answer)
			if m.game.PendingTransition() != nil {
				break
			}
			var scr screen.Screen = m
			scr, _ = scr.Update(keyPress(' '))
			m = scr.(*Model)
		}
		t2 := m.game.PendingTransition()
		if t2.JourneyComplete {
			var scr screen.Screen = m
			_, cmd := scr.Update(keyPress(' '))
			if cmd == nil {
				t.Fatal("expected push command")
			}
			msg, ok := cmd().(router.PushScreenMsg)
			if !ok {
				t.Fatalf("msg = %T, want PushScreenMsg", cmd())
			}
			if _, ok := msg.Screen.(*completed.Model); !ok {
				t.Errorf("pushed screen = %T, want *completed.Model", msg.Screen)
			}
			return
		}

		// Consume the transition the way the transition screen does.
		if err := m.game.AdvanceLandmark(t.Context()); err != nil {
			t.Fatalf("AdvanceLandmark: %v", err)
		}
		var scr screen.Screen = m
		scr, _ = scr.Update(router.RefocusMsg{})
		m = scr.(*Model)
		if m.phase != phaseQuestion {
			t.Fatalf("phase = %d, want phaseQuestion after refocus", m.phase)
		}
	}
	t.Fatal("journey never completed")
}

func TestGameScreen_QuitConfirm(t *testing.T) {
	m := testScreen(t)

	var scr screen.Screen = m
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	m = scr.(*Model)
	if m.phase != phaseQuitConfirm {
		t.Fatalf("phase = %d, want phaseQuitConfirm", m.phase)
	}
	if m.View(80, 24) == "" {
		t.Error("expected non-empty quit confirm view")
	}

	scr, _ = m.Update(keyPress('n'))
	m = scr.(*Model)
	if m.phase != phaseQuestion {
		t.Errorf("phase = %d, want phaseQuestion after N", m.phase)
	}
}

func TestGameScreen_QuitConfirmYesEndsSession(t *testing.T) {
	m := testScreen(t)

	var scr screen.Screen = m
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected end-session command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("msg = %T, want ReplaceScreenMsg", cmd())
	}
}

func TestGameScreen_HintToggle(t *testing.T) {
	m := testScreen(t)

	var scr screen.Screen = m
	scr, _ = scr.Update(keyPress('?'))
	m = scr.(*Model)
	if !m.showHint {
		t.Error("expected hint to be shown at medium hint level")
	}
	if m.hint == "" {
		t.Error("expected hint text")
	}
}

func TestGameScreen_HeaderInfo(t *testing.T) {
	m := testScreen(t)
	m = answerCurrent(t, m, m.question.Answer)

	tickets, flag := m.HeaderInfo()
	if tickets != 1 {
		t.Errorf("tickets = %d, want 1", tickets)
	}
	if flag != "🇫🇷" {
		t.Errorf("flag = %q, want 🇫🇷", flag)
	}
}

func TestGameScreen_KeyHints(t *testing.T) {
	m := testScreen(t)
	if len(m.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

func TestBuildNotifications(t *testing.T) {
	result := &session.AnswerResult{
		TicketsWon: 1,
		LevelChanges: []mastery.LevelChange{
			{MathType: problemgen.Addition, From: 1, To: 2, Trigger: "streak-up"},
			{MathType: problemgen.Multiplication, From: 0, To: 1, Trigger: "unlock"},
		},
	}

	notes := buildNotifications(result)
	if len(notes) != 3 {
		t.Fatalf("notes = %d, want 3", len(notes))
	}
	if notes[0] != "⬆ Addition is now Getting There!" {
		t.Errorf("streak note = %q", notes[0])
	}
	if notes[1] != "🔓 Multiplication unlocked!" {
		t.Errorf("unlock note = %q", notes[1])
	}
	if notes[2] != "🎟 +1 ticket" {
		t.Errorf("ticket note = %q", notes[2])
	}
}
