package mastery

import "github.com/abhisek/mathtravel/internal/problemgen"

const (
	// LevelLocked marks a math type the player has not unlocked yet.
	LevelLocked = 0

	// MinLevel and MaxLevel bound the mastery ladder for unlocked types.
	MinLevel = 1
	MaxLevel = 5

	// RaiseStreak is the number of consecutive correct answers that raises
	// a type's level. LowerStreak is the number of consecutive incorrect
	// answers that lowers it.
	RaiseStreak = 3
	LowerStreak = 3

	// UnlockLevel is the level a prerequisite type must reach before its
	// dependent type unlocks.
	UnlockLevel = 2

	// recentWindow is how many recent answers feed difficulty modulation.
	recentWindow = 3
)

// unlockRequirements maps each lockable math type to the types that must
// reach UnlockLevel before it opens. Addition and subtraction are always
// unlocked and have no entry.
var unlockRequirements = map[problemgen.MathType][]problemgen.MathType{
	problemgen.Multiplication: {problemgen.Addition, problemgen.Subtraction},
	problemgen.Division:       {problemgen.Multiplication},
	problemgen.Fractions:      {problemgen.Division},
}

// LevelName returns a kid-friendly label for a mastery level.
func LevelName(level int) string {
	switch level {
	case LevelLocked:
		return "Locked"
	case 1:
		return "Starting Out"
	case 2:
		return "Getting There"
	case 3:
		return "Confident"
	case 4:
		return "Strong"
	default:
		return "Math Star"
	}
}

func clampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

func clampDifficulty(d int) int {
	if d < problemgen.MinDifficulty {
		return problemgen.MinDifficulty
	}
	if d > problemgen.MaxDifficulty {
		return problemgen.MaxDifficulty
	}
	return d
}
