package dashboard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtravel/internal/content"
	"github.com/abhisek/mathtravel/internal/mastery"
	"github.com/abhisek/mathtravel/internal/router"
	"github.com/abhisek/mathtravel/internal/session"
	"github.com/abhisek/mathtravel/internal/store"
)

func testCatalog() *content.Catalog {
	countries := []content.Country{
		{ID: "france", Name: "France", FlagEmoji: "🇫🇷", VisitOrder: 1,
			Landmarks: []string{"eiffel-tower", "louvre"}},
		{ID: "spain", Name: "Spain", FlagEmoji: "🇪🇸", VisitOrder: 2,
			Landmarks: []string{"sagrada-familia"}},
	}
	landmarks := []content.Landmark{
		{ID: "eiffel-tower", DisplayName: "Eiffel Tower", CountryID: "france",
			CountryName: "France", CountryFlagEmoji: "🇫🇷"},
		{ID: "louvre", DisplayName: "The Louvre", CountryID: "france",
			CountryName: "France", CountryFlagEmoji: "🇫🇷"},
		{ID: "sagrada-familia", DisplayName: "Sagrada Família", CountryID: "spain",
			CountryName: "Spain", CountryFlagEmoji: "🇪🇸"},
	}
	return content.NewCatalog(countries, landmarks)
}

func loadedDashboard(progress *session.Progress) *Model {
	catalog := testCatalog()
	m := New(catalog, nil)
	scr, _ := m.Update(statsLoadedMsg{
		progress:      progress,
		tracker:       mastery.NewTracker(nil),
		totalAnswered: 12,
		totalCorrect:  9,
		tickets:       9,
		sessions:      2,
		byType:        map[string]store.AccuracyStat{"addition": {Total: 12, Correct: 9}},
	})
	return scr.(*Model)
}

func TestDashboard_JourneyMarkers(t *testing.T) {
	progress := session.NewProgress(nil, testCatalog())
	progress.LandmarkID = "louvre"
	progress.CountryID = "france"
	progress.Score = 2

	m := loadedDashboard(progress)
	view := m.View(120, 40)

	if !strings.Contains(view, "✓ Eiffel Tower") {
		t.Error("expected Eiffel Tower marked visited")
	}
	if !strings.Contains(view, "▸ The Louvre") {
		t.Error("expected The Louvre marked current")
	}
	if !strings.Contains(view, "○ Sagrada Família") {
		t.Error("expected Sagrada Família marked upcoming")
	}
}

func TestDashboard_JourneyComplete(t *testing.T) {
	progress := session.NewProgress(nil, testCatalog())
	progress.JourneyCompleted = true

	m := loadedDashboard(progress)
	view := m.View(120, 40)

	if !strings.Contains(view, "Journey complete") {
		t.Error("expected journey complete banner")
	}
	if strings.Contains(view, "○ ") {
		t.Error("expected no upcoming markers after completion")
	}
}

func TestDashboard_MasteryLocks(t *testing.T) {
	progress := session.NewProgress(nil, testCatalog())
	m := loadedDashboard(progress)
	view := m.View(120, 40)

	// Fresh tracker: addition unlocked, division still locked.
	if !strings.Contains(view, "Addition") {
		t.Error("expected Addition row")
	}
	if !strings.Contains(view, "🔒 Division") {
		t.Error("expected Division locked")
	}
}

func TestDashboard_EscPops(t *testing.T) {
	m := New(testCatalog(), nil)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("msg = %T, want PopScreenMsg", cmd())
	}
}

func TestDashboard_LoadingView(t *testing.T) {
	m := New(testCatalog(), nil)
	if m.View(100, 30) == "" {
		t.Fatal("expected non-empty loading view")
	}
}
