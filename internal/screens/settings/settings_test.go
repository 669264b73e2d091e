package settings

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtravel/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func loadedScreen() *Model {
	m := New(nil)
	scr, _ := m.Update(settingsLoadedMsg{data: store.DefaultSettings()})
	return scr.(*Model)
}

func TestSettingsScreen_ToggleAdaptive(t *testing.T) {
	m := loadedScreen()
	if !m.data.AdaptiveDifficulty {
		t.Fatal("expected adaptive difficulty on by default")
	}

	scr, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = scr.(*Model)
	if m.data.AdaptiveDifficulty {
		t.Error("expected adaptive difficulty toggled off")
	}
	if cmd == nil {
		t.Error("expected a save command")
	}
}

func TestSettingsScreen_CycleHintLevel(t *testing.T) {
	m := loadedScreen()

	// Move to the hint level row and cycle forward twice.
	scr, _ := m.Update(keyPress('j'))
	m = scr.(*Model)

	scr, _ = m.Update(keyPress('l'))
	m = scr.(*Model)
	if m.data.HintLevel != store.HintDetailed {
		t.Errorf("hint level = %q, want detailed", m.data.HintLevel)
	}

	scr, _ = m.Update(keyPress('l'))
	m = scr.(*Model)
	if m.data.HintLevel != store.HintMinimal {
		t.Errorf("hint level = %q, want minimal after wrap", m.data.HintLevel)
	}
}

func TestHintLevelCycle(t *testing.T) {
	order := []string{store.HintMinimal, store.HintMedium, store.HintDetailed}
	for i, level := range order {
		next := order[(i+1)%len(order)]
		if got := nextHintLevel(level); got != next {
			t.Errorf("nextHintLevel(%q) = %q, want %q", level, got, next)
		}
		prev := order[(i+len(order)-1)%len(order)]
		if got := prevHintLevel(level); got != prev {
			t.Errorf("prevHintLevel(%q) = %q, want %q", level, got, prev)
		}
	}
}

func TestSettingsScreen_View(t *testing.T) {
	m := loadedScreen()
	if m.View(100, 30) == "" {
		t.Fatal("expected non-empty view")
	}
}
