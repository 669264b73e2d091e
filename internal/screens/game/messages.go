package game

import "github.com/abhisek/mathtravel/internal/session"

// gameReadyMsg is sent when the saved game has been loaded from the store.
type gameReadyMsg struct {
	game *session.Game
	err  error
}

// answeredMsg carries the outcome of a submitted answer.
type answeredMsg struct {
	result *session.AnswerResult
	err    error
}
