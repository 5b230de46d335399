package wordle

import (
	"strings"

	"github.com/mitchellh/colorstring"
)

// Status is the per-letter outcome of a guess.
type Status uint8

const (
	// Absent means the letter does not occur in the answer once exact and
	// present occurrences have been claimed.
	Absent Status = iota
	// Present means the letter occurs in the answer, but not at this
	// position.
	Present
	// Exact means the letter occurs at exactly this position.
	Exact
)

// Feedback notation characters, one per Status.
const (
	maskExact   = '='
	maskPresent = '~'
	maskAbsent  = '.'
)

// Feedback pairs a guess with the status of each of its letters. It is
// produced either by Compute against a known answer or by ParseMask from
// notation typed by a player.
type Feedback struct {
	Guess  Word
	Status [WordLen]Status
}

// Compute compares guess against a known answer and returns the feedback the
// game would report. Exact matches claim their answer letter first; each
// remaining guess letter then claims at most one unclaimed occurrence, so
// duplicated letters are never counted twice.
func Compute(guess, answer Word) Feedback {
	fb := Feedback{Guess: guess}
	scratch := answer
	for i := range guess {
		if guess[i] == scratch[i] {
			fb.Status[i] = Exact
			scratch[i] = 0
		}
	}
	for i := range guess {
		if fb.Status[i] == Exact {
			continue
		}
		if j, ok := scratch.find(guess[i]); ok {
			fb.Status[i] = Present
			scratch[j] = 0
		}
	}
	return fb
}

// ParseMask decodes the five-character feedback notation: '=' exact,
// '~' present, '.' absent.
func ParseMask(s string) ([WordLen]Status, error) {
	var status [WordLen]Status
	runes := []rune(s)
	if len(runes) != WordLen {
		return status, &MalformedFeedbackError{Input: s}
	}
	for i, r := range runes {
		switch r {
		case maskExact:
			status[i] = Exact
		case maskPresent:
			status[i] = Present
		case maskAbsent:
			status[i] = Absent
		default:
			return status, &MalformedFeedbackError{Input: s}
		}
	}
	return status, nil
}

// Mask encodes the status array back into the notation ParseMask reads.
func (f Feedback) Mask() string {
	b := make([]rune, WordLen)
	for i, status := range f.Status {
		switch status {
		case Exact:
			b[i] = maskExact
		case Present:
			b[i] = maskPresent
		default:
			b[i] = maskAbsent
		}
	}
	return string(b)
}

// AllExact reports the winning feedback.
func (f Feedback) AllExact() bool {
	for _, status := range f.Status {
		if status != Exact {
			return false
		}
	}
	return true
}

// Colorize renders the guess with exact letters green and present letters
// yellow.
func (f Feedback) Colorize() string {
	var b strings.Builder
	for i, status := range f.Status {
		switch status {
		case Exact:
			b.WriteString(colorstring.Color("[green]" + string(f.Guess[i]) + "[reset]"))
		case Present:
			b.WriteString(colorstring.Color("[yellow]" + string(f.Guess[i]) + "[reset]"))
		default:
			b.WriteRune(f.Guess[i])
		}
	}
	return b.String()
}

// Consistent reports whether candidate could have been the hidden answer
// given this feedback. Candidate letters are consumed in status order,
// exact positions first and then present ones, so repeated letters are
// accounted the same way Compute accounts them. Checking absent letters
// before that consumption would wrongly reject candidates with duplicates.
func (f Feedback) Consistent(candidate Word) bool {
	w := candidate
	for i, status := range f.Status {
		switch status {
		case Exact:
			if w[i] != f.Guess[i] {
				return false
			}
			w[i] = 0
		case Present:
			// the letter is in the answer but not here, otherwise it
			// would have been exact
			if w[i] == f.Guess[i] {
				return false
			}
		}
	}
	for i, status := range f.Status {
		if status != Present {
			continue
		}
		j, ok := w.find(f.Guess[i])
		if !ok {
			return false
		}
		w[j] = 0
	}
	for i, status := range f.Status {
		if status != Absent {
			continue
		}
		if _, ok := w.find(f.Guess[i]); ok {
			return false
		}
	}
	return true
}
