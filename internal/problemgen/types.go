package problemgen

// MathType identifies an arithmetic operation category.
type MathType string

const (
	Addition       MathType = "addition"
	Subtraction    MathType = "subtraction"
	Multiplication MathType = "multiplication"
	Division       MathType = "division"
	Fractions      MathType = "fractions"
	Decimals       MathType = "decimals"
	Percentages    MathType = "percentages"
	Algebra        MathType = "algebra"
)

// AllMathTypes returns every math type in display order.
func AllMathTypes() []MathType {
	return []MathType{
		Addition, Subtraction, Multiplication, Division,
		Fractions, Decimals, Percentages, Algebra,
	}
}

// GeneratedTypes returns the math types the generator produces questions
// for. The remaining types are reserved and fall back to addition.
func GeneratedTypes() []MathType {
	return []MathType{Addition, Subtraction, Multiplication, Division, Fractions}
}

// DisplayName returns a human-readable label for the math type.
func (t MathType) DisplayName() string {
	switch t {
	case Addition:
		return "Addition"
	case Subtraction:
		return "Subtraction"
	case Multiplication:
		return "Multiplication"
	case Division:
		return "Division"
	case Fractions:
		return "Fractions"
	case Decimals:
		return "Decimals"
	case Percentages:
		return "Percentages"
	case Algebra:
		return "Algebra"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the math type.
func (t MathType) Icon() string {
	switch t {
	case Addition:
		return "➕"
	case Subtraction:
		return "➖"
	case Multiplication:
		return "✖️"
	case Division:
		return "➗"
	case Fractions:
		return "🍕"
	default:
		return "🔢"
	}
}

// Question is a generated math question ready for display.
// Questions are ephemeral: only their ID appears in the answer history.
type Question struct {
	// ID uniquely identifies the question for history and review tracking.
	ID string `json:"id"`

	// Text is the question prompt, e.g. "7 + 5 = ?".
	Text string `json:"text"`

	// Answer is the canonical correct answer as a string. Checked by exact
	// string equality, so "0.50" and "0.5" are distinct answers.
	Answer string `json:"answer"`

	// Hint describes the operation in words with the operands substituted.
	Hint string `json:"hint"`

	// Difficulty is the requested difficulty (1-5).
	Difficulty int `json:"difficulty"`

	// Type is the operation category this question exercises.
	Type MathType `json:"type"`
}
