package problemgen

import "strings"

// CheckAnswer compares the player's input against the correct answer.
//
// Surrounding whitespace is trimmed, then the strings must match exactly:
// no numeric normalization, so "007" does not match "7" and "42" does not
// match "42.0". Empty input is never correct.
func CheckAnswer(input string, q *Question) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	return input == q.Answer
}
