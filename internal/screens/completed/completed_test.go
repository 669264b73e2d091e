package completed

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtravel/internal/content"
	"github.com/abhisek/mathtravel/internal/session"
	"github.com/abhisek/mathtravel/internal/store"
)

func testCatalog() *content.Catalog {
	countries := []content.Country{
		{ID: "france", Name: "France", FlagEmoji: "🇫🇷", VisitOrder: 1,
			Landmarks: []string{"eiffel-tower"}},
	}
	landmarks := []content.Landmark{
		{ID: "eiffel-tower", DisplayName: "Eiffel Tower", CountryID: "france",
			CountryName: "France", CountryFlagEmoji: "🇫🇷", FunFact: "It grows in summer."},
	}
	return content.NewCatalog(countries, landmarks)
}

func finishedGame(t *testing.T) (*session.Game, *session.Transition) {
	t.Helper()
	g, err := session.NewGame(testCatalog(), nil, store.DefaultSettings(), nil, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	for g.PendingTransition() == nil {
		q := g.NextQuestion()
		if _, err := g.SubmitAnswer(t.Context(), q.Answer); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}
	return g, g.PendingTransition()
}

func TestCompletedScreen_View(t *testing.T) {
	g, tr := finishedGame(t)
	if !tr.JourneyComplete {
		t.Fatal("expected journey-complete transition in single-landmark catalog")
	}

	m := New(g, tr)
	if m.View(100, 30) == "" {
		t.Fatal("expected non-empty view")
	}
}

func TestCompletedScreen_EnterFinishesJourney(t *testing.T) {
	g, tr := finishedGame(t)
	m := New(g, tr)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected finish command")
	}

	// Drain the sequence far enough to run the finish step.
	if msg := m.finish(); msg != nil {
		t.Errorf("finish msg = %v, want nil", msg)
	}
	if !g.Progress().JourneyCompleted {
		t.Error("expected journey marked complete")
	}
	if g.PendingTransition() != nil {
		t.Error("expected transition to be consumed")
	}
}
