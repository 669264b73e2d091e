package problemgen

import "testing"

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		answer string
		want   bool
	}{
		{"exact match", "42", "42", true},
		{"trimmed whitespace", "  42 ", "42", true},
		{"empty input", "", "42", false},
		{"whitespace only", "   ", "42", false},
		{"wrong answer", "41", "42", false},
		{"no numeric normalization", "007", "7", false},
		{"integer vs decimal form", "42", "42.0", false},
		{"decimal exact", "0.50", "0.50", true},
		{"decimal trailing zero differs", "0.5", "0.50", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Question{Answer: tt.answer}
			if got := CheckAnswer(tt.input, q); got != tt.want {
				t.Errorf("CheckAnswer(%q) vs %q = %v, want %v", tt.input, tt.answer, got, tt.want)
			}
		})
	}
}

func TestPool_ByIDAndRandom(t *testing.T) {
	g := NewSeeded(4)
	set := g.InitialSet()
	pool := NewPool(set)

	if pool.Len() != len(set) {
		t.Fatalf("len = %d, want %d", pool.Len(), len(set))
	}

	q, ok := pool.ByID(set[0].ID)
	if !ok || q.ID != set[0].ID {
		t.Errorf("ByID failed for %s", set[0].ID)
	}
	if _, ok := pool.ByID("missing"); ok {
		t.Error("expected miss for unknown ID")
	}

	if pool.Random() == nil {
		t.Error("expected a random question from a seeded pool")
	}

	empty := NewPool(nil)
	if empty.Random() != nil {
		t.Error("expected nil from an empty pool")
	}
}
