package summary

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtravel/internal/router"
	"github.com/abhisek/mathtravel/internal/session"
)

func TestSummaryScreen_View(t *testing.T) {
	m := New(session.Summary{
		QuestionsAnswered: 10,
		CorrectAnswers:    8,
		Accuracy:          0.8,
		TicketsEarned:     8,
		Duration:          3 * time.Minute,
	})

	if m.View(100, 30) == "" {
		t.Fatal("expected non-empty view")
	}
	if m.Title() != "Session Recap" {
		t.Errorf("Title = %q", m.Title())
	}
}

func TestSummaryScreen_AnyKeyPops(t *testing.T) {
	m := New(session.Summary{})

	_, cmd := m.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("msg = %T, want PopScreenMsg", cmd())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{time.Minute, "1m 0s"},
		{3*time.Minute + 20*time.Second, "3m 20s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
