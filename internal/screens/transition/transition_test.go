package transition

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtravel/internal/content"
	"github.com/abhisek/mathtravel/internal/router"
	"github.com/abhisek/mathtravel/internal/session"
	"github.com/abhisek/mathtravel/internal/store"
)

func testCatalog() *content.Catalog {
	countries := []content.Country{
		{ID: "france", Name: "France", FlagEmoji: "🇫🇷", VisitOrder: 1,
			Landmarks: []string{"eiffel-tower", "louvre"}},
	}
	landmarks := []content.Landmark{
		{ID: "eiffel-tower", DisplayName: "Eiffel Tower", CountryID: "france",
			CountryName: "France", CountryFlagEmoji: "🇫🇷", FunFact: "It grows in summer."},
		{ID: "louvre", DisplayName: "The Louvre", CountryID: "france",
			CountryName: "France", CountryFlagEmoji: "🇫🇷", FunFact: "Home of the Mona Lisa."},
	}
	return content.NewCatalog(countries, landmarks)
}

func testTransition(t *testing.T) (*session.Game, *session.Transition) {
	t.Helper()
	catalog := testCatalog()
	g, err := session.NewGame(catalog, nil, store.DefaultSettings(), nil, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	// Complete the first landmark to produce a real transition.
	for g.PendingTransition() == nil {
		q := g.NextQuestion()
		if _, err := g.SubmitAnswer(t.Context(), q.Answer); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}
	return g, g.PendingTransition()
}

func TestTransitionScreen_View(t *testing.T) {
	g, tr := testTransition(t)
	m := New(g, tr)

	view := m.View(100, 30)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
}

func TestTransitionScreen_EnterAdvancesAndPops(t *testing.T) {
	g, tr := testTransition(t)
	m := New(g, tr)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected advance command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("msg = %T, want PopScreenMsg", cmd())
	}

	if g.PendingTransition() != nil {
		t.Error("expected transition to be consumed")
	}
	if g.Progress().LandmarkID != "louvre" {
		t.Errorf("landmark = %q, want louvre", g.Progress().LandmarkID)
	}
	if g.Progress().Score != 0 {
		t.Errorf("score = %d, want 0 at new landmark", g.Progress().Score)
	}
}

func TestTransitionScreen_OtherKeysIgnored(t *testing.T) {
	g, tr := testTransition(t)
	m := New(g, tr)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("expected no command for unrelated keys")
	}
	if g.PendingTransition() == nil {
		t.Error("expected transition to stay pending")
	}
}
