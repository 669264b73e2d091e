package review

import (
	"time"

	"github.com/abhisek/mathtravel/internal/problemgen"
	"github.com/abhisek/mathtravel/internal/store"
)

// Entry is a question waiting for re-ask. The full question is carried so
// the queue survives restarts without regenerating.
type Entry struct {
	Question   problemgen.Question
	EnqueuedAt time.Time
}

// Queue holds missed questions for re-ask in first-in-first-out order.
// A question appears at most once; re-missing a queued question does not
// move or duplicate it.
type Queue struct {
	entries []Entry
	ids     map[string]bool
}

// NewQueue creates a queue, loading entries from the snapshot.
func NewQueue(snap *store.SnapshotData) *Queue {
	q := &Queue{ids: make(map[string]bool)}

	if snap == nil || snap.Review == nil {
		return q
	}

	for _, ed := range snap.Review.Entries {
		enqueuedAt, err := time.Parse(time.RFC3339, ed.EnqueuedAt)
		if err != nil {
			enqueuedAt = time.Now()
		}
		q.push(Entry{
			Question: problemgen.Question{
				ID:         ed.QuestionID,
				Text:       ed.Text,
				Answer:     ed.Answer,
				Hint:       ed.Hint,
				Difficulty: ed.Difficulty,
				Type:       problemgen.MathType(ed.MathType),
			},
			EnqueuedAt: enqueuedAt,
		})
	}
	return q
}

func (q *Queue) push(e Entry) bool {
	if q.ids[e.Question.ID] {
		return false
	}
	q.entries = append(q.entries, e)
	q.ids[e.Question.ID] = true
	return true
}

// Schedule enqueues a missed question. It reports whether the question was
// added; an already-queued question is left in place.
func (q *Queue) Schedule(question problemgen.Question, now time.Time) bool {
	return q.push(Entry{Question: question, EnqueuedAt: now})
}

// Next pops the oldest queued question. Returns nil when the queue is empty.
func (q *Queue) Next() *problemgen.Question {
	if len(q.entries) == 0 {
		return nil
	}
	e := q.entries[0]
	q.entries = q.entries[1:]
	delete(q.ids, e.Question.ID)
	return &e.Question
}

// Peek returns the oldest queued question without removing it.
func (q *Queue) Peek() *problemgen.Question {
	if len(q.entries) == 0 {
		return nil
	}
	question := q.entries[0].Question
	return &question
}

// Len returns the number of queued questions.
func (q *Queue) Len() int {
	return len(q.entries)
}

// Contains reports whether a question is queued.
func (q *Queue) Contains(questionID string) bool {
	return q.ids[questionID]
}

// SnapshotData exports the queue for persistence, preserving order.
func (q *Queue) SnapshotData() *store.ReviewSnapshotData {
	data := &store.ReviewSnapshotData{
		Entries: make([]*store.ReviewEntryData, 0, len(q.entries)),
	}
	for _, e := range q.entries {
		data.Entries = append(data.Entries, &store.ReviewEntryData{
			QuestionID: e.Question.ID,
			Text:       e.Question.Text,
			Answer:     e.Question.Answer,
			Hint:       e.Question.Hint,
			Difficulty: e.Question.Difficulty,
			MathType:   string(e.Question.Type),
			EnqueuedAt: e.EnqueuedAt.Format(time.RFC3339),
		})
	}
	return data
}
