package menu

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtravel/internal/content"
	"github.com/abhisek/mathtravel/internal/router"
	"github.com/abhisek/mathtravel/internal/screens/game"
)

func testCatalog() *content.Catalog {
	countries := []content.Country{
		{ID: "france", Name: "France", FlagEmoji: "🇫🇷", VisitOrder: 1,
			Landmarks: []string{"eiffel-tower"}},
	}
	landmarks := []content.Landmark{
		{ID: "eiffel-tower", DisplayName: "Eiffel Tower", CountryID: "france",
			CountryName: "France", CountryFlagEmoji: "🇫🇷"},
	}
	return content.NewCatalog(countries, landmarks)
}

func TestMenu_StartAdventurePushesGame(t *testing.T) {
	m := New(testCatalog(), nil)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command for Start Adventure")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*game.Model); !ok {
		t.Errorf("pushed screen = %T, want *game.Model", msg.Screen)
	}
}

func TestMenu_EmptyCatalogDisablesPlay(t *testing.T) {
	m := New(content.NewCatalog(nil, nil), nil)
	if m.menu.Items[0].Label != "Start Adventure" || !m.menu.Items[0].Disabled {
		t.Error("expected Start Adventure disabled for empty catalog")
	}
	if m.menu.Selected == 0 {
		t.Error("expected selection to skip the disabled item")
	}
}

func TestMenu_StatusLine(t *testing.T) {
	m := New(testCatalog(), nil)
	scr, _ := m.Update(statusLoadedMsg{
		tickets: 7,
		flag:    "🇫🇷",
		place:   "Eiffel Tower, France",
	})
	m = scr.(*Model)

	view := m.View(100, 30)
	if !strings.Contains(view, "Eiffel Tower, France") {
		t.Error("expected next stop in status line")
	}

	tickets, flag := m.HeaderInfo()
	if tickets != 7 || flag != "🇫🇷" {
		t.Errorf("HeaderInfo = (%d, %q), want (7, 🇫🇷)", tickets, flag)
	}
}

func TestMenu_CompletedStatus(t *testing.T) {
	m := New(testCatalog(), nil)
	scr, _ := m.Update(statusLoadedMsg{completed: true})
	m = scr.(*Model)

	if !strings.Contains(m.View(100, 30), "Journey complete") {
		t.Error("expected completion banner")
	}
}

func TestMenu_RefocusReloads(t *testing.T) {
	m := New(testCatalog(), nil)
	// Reload needs the store; just verify a command is issued.
	_, cmd := m.Update(router.RefocusMsg{})
	if cmd == nil {
		t.Error("expected reload command on refocus")
	}
}

func TestRenderBanner(t *testing.T) {
	if !strings.Contains(renderBanner(40), "MATH TRAVEL") {
		t.Error("expected compact banner on narrow terminals")
	}
	wide := renderBanner(120)
	if strings.Contains(wide, "MATH TRAVEL") {
		t.Error("expected ASCII art banner on wide terminals")
	}
}
