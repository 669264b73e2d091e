package mastery

import (
	"github.com/abhisek/mathtravel/internal/problemgen"
	"github.com/abhisek/mathtravel/internal/store"
)

// LevelChange records a mastery level change for display and event logging.
type LevelChange struct {
	MathType problemgen.MathType
	From     int
	To       int
	Trigger  string // "streak-up", "streak-down", "unlock"
}

// typeMastery is the per-type mastery record.
type typeMastery struct {
	Level         int
	CorrectRun    int
	IncorrectRun  int
	TotalAttempts int
	CorrectCount  int
}

// Tracker manages mastery levels for all math types. Addition and
// subtraction start unlocked at MinLevel; the remaining types unlock as
// their prerequisites reach UnlockLevel.
type Tracker struct {
	types  map[problemgen.MathType]*typeMastery
	recent []bool // last few answer results, for difficulty modulation
}

// NewTracker creates a tracker, loading state from the snapshot.
func NewTracker(snap *store.SnapshotData) *Tracker {
	t := &Tracker{types: make(map[problemgen.MathType]*typeMastery)}
	for _, mathType := range problemgen.GeneratedTypes() {
		t.types[mathType] = &typeMastery{Level: defaultLevel(mathType)}
	}

	if snap == nil || snap.Mastery == nil {
		return t
	}

	for id, data := range snap.Mastery.Types {
		mathType := problemgen.MathType(id)
		if _, ok := t.types[mathType]; !ok {
			continue
		}
		t.types[mathType] = &typeMastery{
			Level:         data.Level,
			CorrectRun:    data.CorrectRun,
			IncorrectRun:  data.IncorrectRun,
			TotalAttempts: data.TotalAttempts,
			CorrectCount:  data.CorrectCount,
		}
	}
	if len(snap.Mastery.Recent) > 0 {
		t.recent = append(t.recent, snap.Mastery.Recent...)
		if len(t.recent) > recentWindow {
			t.recent = t.recent[len(t.recent)-recentWindow:]
		}
	}
	return t
}

func defaultLevel(mathType problemgen.MathType) int {
	if _, locked := unlockRequirements[mathType]; locked {
		return LevelLocked
	}
	return MinLevel
}

// RecordAnswer updates mastery state after an answer. It returns the level
// changes the answer caused: at most one streak change for the answered
// type, plus an unlock change for every type the streak change opened.
func (t *Tracker) RecordAnswer(mathType problemgen.MathType, correct bool) []LevelChange {
	tm, ok := t.types[mathType]
	if !ok {
		return nil
	}

	tm.TotalAttempts++
	if correct {
		tm.CorrectCount++
		tm.CorrectRun++
		tm.IncorrectRun = 0
	} else {
		tm.IncorrectRun++
		tm.CorrectRun = 0
	}

	t.recent = append(t.recent, correct)
	if len(t.recent) > recentWindow {
		t.recent = t.recent[len(t.recent)-recentWindow:]
	}

	var changes []LevelChange

	if correct && tm.CorrectRun >= RaiseStreak {
		tm.CorrectRun = 0
		if next := clampLevel(tm.Level + 1); next > tm.Level {
			changes = append(changes, LevelChange{
				MathType: mathType,
				From:     tm.Level,
				To:       next,
				Trigger:  "streak-up",
			})
			tm.Level = next
			changes = append(changes, t.applyUnlocks()...)
		}
	}

	if !correct && tm.IncorrectRun >= LowerStreak {
		tm.IncorrectRun = 0
		if next := clampLevel(tm.Level - 1); next < tm.Level {
			changes = append(changes, LevelChange{
				MathType: mathType,
				From:     tm.Level,
				To:       next,
				Trigger:  "streak-down",
			})
			tm.Level = next
		}
	}

	return changes
}

// applyUnlocks opens every locked type whose prerequisites now meet
// UnlockLevel. Unlocks are permanent; a prerequisite dropping back below
// UnlockLevel later does not re-lock anything.
func (t *Tracker) applyUnlocks() []LevelChange {
	var changes []LevelChange
	for _, mathType := range problemgen.GeneratedTypes() {
		tm := t.types[mathType]
		if tm.Level != LevelLocked {
			continue
		}
		met := true
		for _, req := range unlockRequirements[mathType] {
			if t.types[req].Level < UnlockLevel {
				met = false
				break
			}
		}
		if met {
			tm.Level = MinLevel
			changes = append(changes, LevelChange{
				MathType: mathType,
				From:     LevelLocked,
				To:       MinLevel,
				Trigger:  "unlock",
			})
		}
	}
	return changes
}

// Level returns the mastery level for a math type (LevelLocked if locked).
func (t *Tracker) Level(mathType problemgen.MathType) int {
	if tm, ok := t.types[mathType]; ok {
		return tm.Level
	}
	return LevelLocked
}

// EligibleTypes returns the unlocked math types in catalog order.
func (t *Tracker) EligibleTypes() []problemgen.MathType {
	var eligible []problemgen.MathType
	for _, mathType := range problemgen.GeneratedTypes() {
		if t.types[mathType].Level >= MinLevel {
			eligible = append(eligible, mathType)
		}
	}
	if len(eligible) == 0 {
		return []problemgen.MathType{problemgen.Addition, problemgen.Subtraction}
	}
	return eligible
}

// Difficulty returns the question difficulty for a math type: the type's
// level, nudged up when the last three answers were all correct and down
// when the last two were both incorrect, clamped to the generator's range.
func (t *Tracker) Difficulty(mathType problemgen.MathType) int {
	level := t.Level(mathType)
	if level == LevelLocked {
		level = MinLevel
	}
	return clampDifficulty(level + t.modifier())
}

func (t *Tracker) modifier() int {
	n := len(t.recent)
	if n >= recentWindow {
		all := true
		for _, c := range t.recent[n-recentWindow:] {
			if !c {
				all = false
				break
			}
		}
		if all {
			return 1
		}
	}
	if n >= 2 && !t.recent[n-1] && !t.recent[n-2] {
		return -1
	}
	return 0
}

// Accuracy returns the lifetime accuracy for a math type, and whether the
// type has been attempted at all.
func (t *Tracker) Accuracy(mathType problemgen.MathType) (float64, bool) {
	tm, ok := t.types[mathType]
	if !ok || tm.TotalAttempts == 0 {
		return 0, false
	}
	return float64(tm.CorrectCount) / float64(tm.TotalAttempts), true
}

// SnapshotData exports the current mastery state for persistence.
func (t *Tracker) SnapshotData() *store.MasterySnapshotData {
	data := &store.MasterySnapshotData{
		Types: make(map[string]*store.MathTypeMasteryData, len(t.types)),
	}
	for mathType, tm := range t.types {
		data.Types[string(mathType)] = &store.MathTypeMasteryData{
			MathType:      string(mathType),
			Level:         tm.Level,
			CorrectRun:    tm.CorrectRun,
			IncorrectRun:  tm.IncorrectRun,
			TotalAttempts: tm.TotalAttempts,
			CorrectCount:  tm.CorrectCount,
		}
	}
	data.Recent = append(data.Recent, t.recent...)
	return data
}
