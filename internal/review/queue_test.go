package review

import (
	"testing"
	"time"

	"github.com/abhisek/mathtravel/internal/problemgen"
	"github.com/abhisek/mathtravel/internal/store"
)

func question(id, text string) problemgen.Question {
	return problemgen.Question{
		ID:         id,
		Text:       text,
		Answer:     "4",
		Hint:       "Add 2 and 2 together.",
		Difficulty: 1,
		Type:       problemgen.Addition,
	}
}

func TestQueue_FIFOOrder(t *testing.T) {
	q := NewQueue(nil)
	now := time.Now()

	q.Schedule(question("a", "2 + 2 = ?"), now)
	q.Schedule(question("b", "3 + 3 = ?"), now.Add(time.Second))
	q.Schedule(question("c", "4 + 4 = ?"), now.Add(2*time.Second))

	for _, want := range []string{"a", "b", "c"} {
		got := q.Next()
		if got == nil || got.ID != want {
			t.Fatalf("Next() = %v, want %s", got, want)
		}
	}
	if q.Next() != nil {
		t.Error("expected nil from drained queue")
	}
}

func TestQueue_DedupByQuestionID(t *testing.T) {
	q := NewQueue(nil)
	now := time.Now()

	if !q.Schedule(question("a", "2 + 2 = ?"), now) {
		t.Fatal("first schedule should add")
	}
	if q.Schedule(question("a", "2 + 2 = ?"), now.Add(time.Minute)) {
		t.Error("duplicate schedule should not add")
	}
	if q.Len() != 1 {
		t.Errorf("len = %d, want 1", q.Len())
	}

	// Popped questions can be scheduled again.
	q.Next()
	if !q.Schedule(question("a", "2 + 2 = ?"), now) {
		t.Error("re-schedule after pop should add")
	}
}

func TestQueue_PeekDoesNotRemove(t *testing.T) {
	q := NewQueue(nil)
	q.Schedule(question("a", "2 + 2 = ?"), time.Now())

	if p := q.Peek(); p == nil || p.ID != "a" {
		t.Fatalf("Peek() = %v, want a", p)
	}
	if q.Len() != 1 || !q.Contains("a") {
		t.Error("peek should not remove the entry")
	}
}

func TestQueue_SnapshotRoundTrip(t *testing.T) {
	q := NewQueue(nil)
	now := time.Now()
	q.Schedule(question("a", "2 + 2 = ?"), now)
	q.Schedule(question("b", "3 + 3 = ?"), now.Add(time.Second))

	restored := NewQueue(&store.SnapshotData{Review: q.SnapshotData()})

	if restored.Len() != 2 {
		t.Fatalf("len = %d, want 2", restored.Len())
	}
	first := restored.Next()
	if first == nil || first.ID != "a" {
		t.Fatalf("first = %v, want a", first)
	}
	if first.Text != "2 + 2 = ?" || first.Answer != "4" || first.Type != problemgen.Addition {
		t.Errorf("question fields not restored: %+v", first)
	}
	if restored.Contains("a") {
		t.Error("popped entry should leave the dedup set")
	}
}

func TestQueue_EmptySnapshot(t *testing.T) {
	q := NewQueue(&store.SnapshotData{})
	if q.Len() != 0 || q.Next() != nil {
		t.Error("expected empty queue from snapshot without review data")
	}
}
