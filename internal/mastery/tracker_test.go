package mastery

import (
	"testing"

	"github.com/abhisek/mathtravel/internal/problemgen"
	"github.com/abhisek/mathtravel/internal/store"
)

func answer(t *Tracker, mathType problemgen.MathType, correct bool, n int) []LevelChange {
	var changes []LevelChange
	for i := 0; i < n; i++ {
		changes = append(changes, t.RecordAnswer(mathType, correct)...)
	}
	return changes
}

func TestNewTracker_Defaults(t *testing.T) {
	tr := NewTracker(nil)

	if got := tr.Level(problemgen.Addition); got != MinLevel {
		t.Errorf("addition level = %d, want %d", got, MinLevel)
	}
	if got := tr.Level(problemgen.Subtraction); got != MinLevel {
		t.Errorf("subtraction level = %d, want %d", got, MinLevel)
	}
	for _, mathType := range []problemgen.MathType{problemgen.Multiplication, problemgen.Division, problemgen.Fractions} {
		if got := tr.Level(mathType); got != LevelLocked {
			t.Errorf("%s level = %d, want locked", mathType, got)
		}
	}

	eligible := tr.EligibleTypes()
	if len(eligible) != 2 {
		t.Fatalf("eligible = %v, want addition and subtraction only", eligible)
	}
}

func TestRecordAnswer_StreakUp(t *testing.T) {
	tr := NewTracker(nil)

	if changes := answer(tr, problemgen.Addition, true, 2); len(changes) != 0 {
		t.Fatalf("unexpected changes before streak: %v", changes)
	}
	changes := tr.RecordAnswer(problemgen.Addition, true)
	if len(changes) != 1 {
		t.Fatalf("changes = %v, want one streak-up", changes)
	}
	if changes[0].Trigger != "streak-up" || changes[0].From != 1 || changes[0].To != 2 {
		t.Errorf("change = %+v, want streak-up 1→2", changes[0])
	}
}

func TestRecordAnswer_StreakDown_FloorsAtMinLevel(t *testing.T) {
	tr := NewTracker(nil)

	// Level 1 cannot go lower, no matter how many misses.
	if changes := answer(tr, problemgen.Addition, false, 10); len(changes) != 0 {
		t.Fatalf("unexpected changes at floor: %v", changes)
	}
	if got := tr.Level(problemgen.Addition); got != MinLevel {
		t.Errorf("level = %d, want %d", got, MinLevel)
	}
}

func TestRecordAnswer_StreakDown(t *testing.T) {
	tr := NewTracker(nil)
	answer(tr, problemgen.Subtraction, true, 3) // level 2

	changes := answer(tr, problemgen.Subtraction, false, 3)
	if len(changes) != 1 || changes[0].Trigger != "streak-down" {
		t.Fatalf("changes = %v, want one streak-down", changes)
	}
	if got := tr.Level(problemgen.Subtraction); got != 1 {
		t.Errorf("level = %d, want 1", got)
	}
}

func TestRecordAnswer_MixedAnswersResetRuns(t *testing.T) {
	tr := NewTracker(nil)

	// Alternating answers never complete a streak.
	for i := 0; i < 10; i++ {
		tr.RecordAnswer(problemgen.Addition, i%2 == 0)
	}
	if got := tr.Level(problemgen.Addition); got != MinLevel {
		t.Errorf("level = %d, want unchanged %d", got, MinLevel)
	}
}

func TestRecordAnswer_LevelCapsAtMax(t *testing.T) {
	tr := NewTracker(nil)
	answer(tr, problemgen.Addition, true, 100)

	if got := tr.Level(problemgen.Addition); got != MaxLevel {
		t.Errorf("level = %d, want %d", got, MaxLevel)
	}
}

func TestUnlockLadder(t *testing.T) {
	tr := NewTracker(nil)

	// Addition to level 2: multiplication stays locked, subtraction lags.
	changes := answer(tr, problemgen.Addition, true, 3)
	for _, c := range changes {
		if c.Trigger == "unlock" {
			t.Fatalf("unexpected unlock before subtraction reached level %d", UnlockLevel)
		}
	}

	// Subtraction to level 2: multiplication unlocks.
	changes = answer(tr, problemgen.Subtraction, true, 3)
	foundUnlock := false
	for _, c := range changes {
		if c.Trigger == "unlock" && c.MathType == problemgen.Multiplication {
			foundUnlock = true
		}
	}
	if !foundUnlock {
		t.Fatalf("changes = %v, want multiplication unlock", changes)
	}
	if got := tr.Level(problemgen.Multiplication); got != MinLevel {
		t.Errorf("multiplication level = %d, want %d", got, MinLevel)
	}
	if got := tr.Level(problemgen.Division); got != LevelLocked {
		t.Errorf("division level = %d, want locked", got)
	}

	// Multiplication to level 2 unlocks division, division to 2 unlocks fractions.
	answer(tr, problemgen.Multiplication, true, 3)
	if got := tr.Level(problemgen.Division); got != MinLevel {
		t.Errorf("division level = %d, want unlocked", got)
	}
	answer(tr, problemgen.Division, true, 3)
	if got := tr.Level(problemgen.Fractions); got != MinLevel {
		t.Errorf("fractions level = %d, want unlocked", got)
	}

	eligible := tr.EligibleTypes()
	if len(eligible) != len(problemgen.GeneratedTypes()) {
		t.Errorf("eligible = %v, want all generated types", eligible)
	}
}

func TestUnlocksArePermanent(t *testing.T) {
	tr := NewTracker(nil)
	answer(tr, problemgen.Addition, true, 3)
	answer(tr, problemgen.Subtraction, true, 3)

	// Drop addition back to level 1; multiplication stays unlocked.
	answer(tr, problemgen.Addition, false, 3)
	if got := tr.Level(problemgen.Addition); got != 1 {
		t.Fatalf("addition level = %d, want 1", got)
	}
	if got := tr.Level(problemgen.Multiplication); got != MinLevel {
		t.Errorf("multiplication level = %d, want still unlocked", got)
	}
}

func TestDifficulty_Modulation(t *testing.T) {
	tr := NewTracker(nil)

	if got := tr.Difficulty(problemgen.Addition); got != 1 {
		t.Errorf("base difficulty = %d, want 1", got)
	}

	// Two incorrect in a row nudges down, clamped at the minimum.
	tr.RecordAnswer(problemgen.Addition, false)
	tr.RecordAnswer(problemgen.Addition, false)
	if got := tr.Difficulty(problemgen.Addition); got != problemgen.MinDifficulty {
		t.Errorf("difficulty = %d, want clamped to %d", got, problemgen.MinDifficulty)
	}

	// Three correct in a row nudges up. The third answer also completes the
	// raise streak, so level becomes 2 and difficulty reads 3.
	answer(tr, problemgen.Addition, true, 3)
	if got := tr.Difficulty(problemgen.Addition); got != 3 {
		t.Errorf("difficulty = %d, want level 2 + hot-streak nudge", got)
	}
}

func TestDifficulty_ClampsAtMax(t *testing.T) {
	tr := NewTracker(nil)
	answer(tr, problemgen.Addition, true, 100) // level 5, hot streak

	if got := tr.Difficulty(problemgen.Addition); got != problemgen.MaxDifficulty {
		t.Errorf("difficulty = %d, want clamped to %d", got, problemgen.MaxDifficulty)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	tr := NewTracker(nil)
	answer(tr, problemgen.Addition, true, 3)
	answer(tr, problemgen.Subtraction, true, 3)
	answer(tr, problemgen.Multiplication, true, 2)

	restored := NewTracker(&store.SnapshotData{Mastery: tr.SnapshotData()})

	for _, mathType := range problemgen.GeneratedTypes() {
		if restored.Level(mathType) != tr.Level(mathType) {
			t.Errorf("%s level = %d, want %d", mathType, restored.Level(mathType), tr.Level(mathType))
		}
	}
	if restored.Difficulty(problemgen.Multiplication) != tr.Difficulty(problemgen.Multiplication) {
		t.Error("difficulty modulation not restored")
	}

	// In-progress runs survive: one more correct completes the streak.
	changes := restored.RecordAnswer(problemgen.Multiplication, true)
	if len(changes) == 0 || changes[0].Trigger != "streak-up" {
		t.Errorf("changes = %v, want streak-up completing the restored run", changes)
	}
}

func TestAccuracy(t *testing.T) {
	tr := NewTracker(nil)

	if _, ok := tr.Accuracy(problemgen.Addition); ok {
		t.Error("expected no accuracy before any attempts")
	}

	answer(tr, problemgen.Addition, true, 3)
	tr.RecordAnswer(problemgen.Addition, false)
	acc, ok := tr.Accuracy(problemgen.Addition)
	if !ok || acc != 0.75 {
		t.Errorf("accuracy = %v, %v, want 0.75", acc, ok)
	}
}

func TestLevelName(t *testing.T) {
	if LevelName(LevelLocked) != "Locked" {
		t.Error("locked level should read Locked")
	}
	if LevelName(MaxLevel) == "" || LevelName(3) == "" {
		t.Error("expected non-empty level names")
	}
}
