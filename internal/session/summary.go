package session

import "time"

// Summary is the end-of-session recap shown when the player quits.
type Summary struct {
	QuestionsAnswered int
	CorrectAnswers    int
	Accuracy          float64
	TicketsEarned     int
	Duration          time.Duration
}

// Summarize builds the session summary from the game's counters.
func (g *Game) Summarize() Summary {
	s := Summary{
		QuestionsAnswered: g.QuestionsAnswered,
		CorrectAnswers:    g.CorrectAnswers,
		TicketsEarned:     g.TicketsEarned,
		Duration:          time.Since(g.startTime),
	}
	if s.QuestionsAnswered > 0 {
		s.Accuracy = float64(s.CorrectAnswers) / float64(s.QuestionsAnswered)
	}
	return s
}
