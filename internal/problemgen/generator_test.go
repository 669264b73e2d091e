package problemgen

import (
	"fmt"
	"strconv"
	"testing"
)

func TestGenerate_EmptyTypeSet(t *testing.T) {
	g := NewSeeded(1)
	if _, err := g.Generate(nil, 3); err == nil {
		t.Error("expected error for empty type set")
	}
}

func TestGenerate_DifficultyOutOfRange(t *testing.T) {
	g := NewSeeded(1)
	for _, d := range []int{0, -1, 6, 100} {
		if _, err := g.Generate([]MathType{Addition}, d); err == nil {
			t.Errorf("expected error for difficulty %d", d)
		}
	}
}

func TestGenerate_Addition(t *testing.T) {
	g := NewSeeded(42)
	for d := MinDifficulty; d <= MaxDifficulty; d++ {
		for i := 0; i < 50; i++ {
			q, err := g.Generate([]MathType{Addition}, d)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}

			var a, b int
			if _, err := fmt.Sscanf(q.Text, "%d + %d = ?", &a, &b); err != nil {
				t.Fatalf("unexpected text %q: %v", q.Text, err)
			}
			max := addSubMax[d]
			if a < 1 || a > max || b < 1 || b > max {
				t.Errorf("d=%d: operands (%d, %d) outside [1,%d]", d, a, b, max)
			}
			if q.Answer != strconv.Itoa(a+b) {
				t.Errorf("answer = %q, want %d", q.Answer, a+b)
			}
		}
	}
}

func TestGenerate_Subtraction_NeverNegative(t *testing.T) {
	g := NewSeeded(7)
	for d := MinDifficulty; d <= MaxDifficulty; d++ {
		for i := 0; i < 100; i++ {
			q, err := g.Generate([]MathType{Subtraction}, d)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}

			var a, b int
			if _, err := fmt.Sscanf(q.Text, "%d - %d = ?", &a, &b); err != nil {
				t.Fatalf("unexpected text %q: %v", q.Text, err)
			}
			if a < b {
				t.Errorf("d=%d: minuend %d < subtrahend %d", d, a, b)
			}
			if q.Answer != strconv.Itoa(a-b) {
				t.Errorf("answer = %q, want %d", q.Answer, a-b)
			}
		}
	}
}

func TestGenerate_Division_NoRemainder(t *testing.T) {
	g := NewSeeded(99)
	for d := MinDifficulty; d <= MaxDifficulty; d++ {
		for i := 0; i < 100; i++ {
			q, err := g.Generate([]MathType{Division}, d)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}

			var a, b int
			if _, err := fmt.Sscanf(q.Text, "%d ÷ %d = ?", &a, &b); err != nil {
				t.Fatalf("unexpected text %q: %v", q.Text, err)
			}
			answer, err := strconv.Atoi(q.Answer)
			if err != nil {
				t.Fatalf("non-integer answer %q", q.Answer)
			}
			if b < 1 {
				t.Errorf("divisor %d < 1", b)
			}
			if b*answer != a {
				t.Errorf("%d × %d != %d", b, answer, a)
			}
		}
	}
}

func TestGenerate_Multiplication_Bounds(t *testing.T) {
	g := NewSeeded(5)
	for d := MinDifficulty; d <= MaxDifficulty; d++ {
		q, err := g.Generate([]MathType{Multiplication}, d)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		var a, b int
		if _, err := fmt.Sscanf(q.Text, "%d × %d = ?", &a, &b); err != nil {
			t.Fatalf("unexpected text %q: %v", q.Text, err)
		}
		max := mulDivMax[d]
		if a < 1 || a > max || b < 1 || b > max {
			t.Errorf("d=%d: operands (%d, %d) outside [1,%d]", d, a, b, max)
		}
	}
}

func TestGenerate_Fraction_TwoDecimalPlaces(t *testing.T) {
	g := NewSeeded(13)
	for i := 0; i < 100; i++ {
		q, err := g.Generate([]MathType{Fractions}, 3)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		var num, den int
		if _, err := fmt.Sscanf(q.Text, "What is %d/%d as a decimal?", &num, &den); err != nil {
			t.Fatalf("unexpected text %q: %v", q.Text, err)
		}
		if num < 1 || num >= den {
			t.Errorf("numerator %d outside [1,%d)", num, den)
		}
		validDen := false
		for _, d := range fractionDenominators {
			if den == d {
				validDen = true
			}
		}
		if !validDen {
			t.Errorf("denominator %d not in %v", den, fractionDenominators)
		}
		want := fmt.Sprintf("%.2f", float64(num)/float64(den))
		if q.Answer != want {
			t.Errorf("answer = %q, want %q", q.Answer, want)
		}
	}
}

func TestGenerate_ReservedTypesFallBackToAddition(t *testing.T) {
	g := NewSeeded(3)
	for _, mathType := range []MathType{Decimals, Percentages, Algebra} {
		q, err := g.Generate([]MathType{mathType}, 2)
		if err != nil {
			t.Fatalf("generate %s: %v", mathType, err)
		}
		if q.Type != Addition {
			t.Errorf("type = %s, want addition fallback", q.Type)
		}
	}
}

func TestGenerate_UniqueIDs(t *testing.T) {
	g := NewSeeded(21)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		q, err := g.Generate(GeneratedTypes(), 3)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if seen[q.ID] {
			t.Fatalf("duplicate question ID %s", q.ID)
		}
		seen[q.ID] = true
		if q.Hint == "" {
			t.Error("expected non-empty hint")
		}
	}
}

func TestInitialSet_Size(t *testing.T) {
	g := NewSeeded(8)
	set := g.InitialSet()

	want := len(GeneratedTypes()) * MaxDifficulty * InitialSetPerCell
	if len(set) != want {
		t.Errorf("len = %d, want %d", len(set), want)
	}
}
