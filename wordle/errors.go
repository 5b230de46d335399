package wordle

import (
	"errors"
	"fmt"
)

// ErrNoCandidates is returned by Game.Play in strict mode when the observed
// feedback is inconsistent with every remaining candidate answer.
var ErrNoCandidates = errors.New("wordle: no candidate answers remain")

// ErrSourceClosed signals that a feedback source can no longer produce
// feedback, e.g. the interactive reader hit EOF. Sources wrap it so callers
// can test with errors.Is instead of exiting the process.
var ErrSourceClosed = errors.New("wordle: feedback source closed")

// MalformedWordError reports a word that is not exactly five letters.
type MalformedWordError struct {
	Word string
	Line int // 1-based line number when reading a word list, 0 otherwise
}

func (e *MalformedWordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("wordle: line %d: not a 5 letter word: %q", e.Line, e.Word)
	}
	return fmt.Sprintf("wordle: not a 5 letter word: %q", e.Word)
}

// MalformedFeedbackError reports feedback notation that is not five
// characters drawn from "=~.".
type MalformedFeedbackError struct {
	Input string
}

func (e *MalformedFeedbackError) Error() string {
	return fmt.Sprintf("wordle: malformed feedback %q, want 5 of \"=~.\"", e.Input)
}
