package problemgen

import "math/rand/v2"

// Pool is the in-memory question pool seeded at startup. It backs the
// random fallback when targeted generation fails, and resolves review
// questions by ID.
type Pool struct {
	questions []Question
	byID      map[string]*Question
}

// NewPool builds a pool from the given questions.
func NewPool(questions []Question) *Pool {
	p := &Pool{
		questions: questions,
		byID:      make(map[string]*Question, len(questions)),
	}
	for i := range p.questions {
		p.byID[p.questions[i].ID] = &p.questions[i]
	}
	return p
}

// Len returns the number of pooled questions.
func (p *Pool) Len() int {
	return len(p.questions)
}

// ByID resolves a question by ID.
func (p *Pool) ByID(id string) (Question, bool) {
	if q, ok := p.byID[id]; ok {
		return *q, true
	}
	return Question{}, false
}

// Random returns a uniformly random pooled question, or nil if the pool is
// empty. An empty pool is a startup precondition violation; callers seed
// the pool before gameplay begins.
func (p *Pool) Random() *Question {
	if len(p.questions) == 0 {
		return nil
	}
	q := p.questions[rand.IntN(len(p.questions))]
	return &q
}
