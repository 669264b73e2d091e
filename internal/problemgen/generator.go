package problemgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNoMathTypes is returned when Generate is given an empty type set.
	ErrNoMathTypes = errors.New("no math types to choose from")

	// ErrDifficultyRange is returned when the difficulty is outside [1,5].
	ErrDifficultyRange = errors.New("difficulty out of range")
)

// Generator produces arithmetic questions from fixed templates.
// It has no side effects beyond random-number draws.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator seeded from the current time.
func New() *Generator {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// NewSeeded creates a generator with a fixed seed, for deterministic tests.
func NewSeeded(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate produces a single question: a uniformly random type from the
// given set, at the given difficulty. Fails on an empty set or a difficulty
// outside [1,5].
func (g *Generator) Generate(types []MathType, difficulty int) (*Question, error) {
	if len(types) == 0 {
		return nil, ErrNoMathTypes
	}
	if difficulty < MinDifficulty || difficulty > MaxDifficulty {
		return nil, fmt.Errorf("%w: %d", ErrDifficultyRange, difficulty)
	}

	mathType := types[g.rng.IntN(len(types))]

	switch mathType {
	case Subtraction:
		return g.subtraction(difficulty), nil
	case Multiplication:
		return g.multiplication(difficulty), nil
	case Division:
		return g.division(difficulty), nil
	case Fractions:
		return g.fraction(difficulty), nil
	default:
		// Addition, plus the reserved types (decimals, percentages,
		// algebra) which have no templates yet.
		return g.addition(difficulty), nil
	}
}

// InitialSet produces the seed pool: InitialSetPerCell questions for every
// (generated type, difficulty) combination.
func (g *Generator) InitialSet() []Question {
	var questions []Question
	for _, mathType := range GeneratedTypes() {
		for difficulty := MinDifficulty; difficulty <= MaxDifficulty; difficulty++ {
			for i := 0; i < InitialSetPerCell; i++ {
				q, err := g.Generate([]MathType{mathType}, difficulty)
				if err != nil {
					continue
				}
				questions = append(questions, *q)
			}
		}
	}
	return questions
}

func (g *Generator) addition(difficulty int) *Question {
	max := addSubMax[difficulty]
	a := 1 + g.rng.IntN(max)
	b := 1 + g.rng.IntN(max)

	return &Question{
		ID:         uuid.NewString(),
		Text:       fmt.Sprintf("%d + %d = ?", a, b),
		Answer:     fmt.Sprintf("%d", a+b),
		Hint:       fmt.Sprintf("Add %d and %d together.", a, b),
		Difficulty: difficulty,
		Type:       Addition,
	}
}

// subtraction draws the subtrahend first, then a minuend at least as large,
// so the result is never negative.
func (g *Generator) subtraction(difficulty int) *Question {
	max := addSubMax[difficulty]
	b := 1 + g.rng.IntN(max)
	a := b + g.rng.IntN(max+1)

	return &Question{
		ID:         uuid.NewString(),
		Text:       fmt.Sprintf("%d - %d = ?", a, b),
		Answer:     fmt.Sprintf("%d", a-b),
		Hint:       fmt.Sprintf("Subtract %d from %d.", b, a),
		Difficulty: difficulty,
		Type:       Subtraction,
	}
}

func (g *Generator) multiplication(difficulty int) *Question {
	max := mulDivMax[difficulty]
	a := 1 + g.rng.IntN(max)
	b := 1 + g.rng.IntN(max)

	return &Question{
		ID:         uuid.NewString(),
		Text:       fmt.Sprintf("%d × %d = ?", a, b),
		Answer:     fmt.Sprintf("%d", a*b),
		Hint:       fmt.Sprintf("Multiply %d by %d.", a, b),
		Difficulty: difficulty,
		Type:       Multiplication,
	}
}

// division builds the dividend from divisor × quotient, so the result is
// always a whole number with no remainder.
func (g *Generator) division(difficulty int) *Question {
	max := mulDivMax[difficulty]
	b := 1 + g.rng.IntN(max)
	q := 1 + g.rng.IntN(max)
	a := b * q

	return &Question{
		ID:         uuid.NewString(),
		Text:       fmt.Sprintf("%d ÷ %d = ?", a, b),
		Answer:     fmt.Sprintf("%d", q),
		Hint:       fmt.Sprintf("Divide %d by %d.", a, b),
		Difficulty: difficulty,
		Type:       Division,
	}
}

// fraction asks for the decimal form of a simple fraction. The denominator
// set guarantees the answer is exact at two decimal places.
func (g *Generator) fraction(difficulty int) *Question {
	den := fractionDenominators[g.rng.IntN(len(fractionDenominators))]
	num := 1 + g.rng.IntN(den-1)

	return &Question{
		ID:         uuid.NewString(),
		Text:       fmt.Sprintf("What is %d/%d as a decimal?", num, den),
		Answer:     fmt.Sprintf("%.2f", float64(num)/float64(den)),
		Hint:       fmt.Sprintf("Divide %d by %d.", num, den),
		Difficulty: difficulty,
		Type:       Fractions,
	}
}
