package wordle

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptSource runs a per-call function, useful for injecting bad feedback.
type scriptSource struct {
	calls int
	fn    func(call int, guess Word) (Feedback, error)
}

func (s *scriptSource) Feedback(guess Word) (Feedback, error) {
	s.calls++
	return s.fn(s.calls, guess)
}

// cappedSource fails a runaway game instead of letting the test hang.
type cappedSource struct {
	src   FeedbackSource
	calls int
	cap   int
}

func (c *cappedSource) Feedback(guess Word) (Feedback, error) {
	c.calls++
	if c.calls > c.cap {
		return Feedback{}, fmt.Errorf("gave up after %d guesses", c.cap)
	}
	return c.src.Feedback(guess)
}

// allPresent is feedback no real answer can produce: every letter present
// yet none in place.
func allPresent(guess Word) Feedback {
	fb := Feedback{Guess: guess}
	for i := range fb.Status {
		fb.Status[i] = Present
	}
	return fb
}

func TestPlayScenario(t *testing.T) {
	assert := assert.New(t)

	list := words([]string{"crane", "slate", "trace"})
	d := NewDictionary(list, list)

	var played []string
	var remainings []int
	game := &Game{
		Dict:    d,
		Source:  Simulator{Answer: W("trace")},
		Opening: W("crane"),
		Trace: func(fb Feedback, remaining int) {
			played = append(played, fb.Guess.String())
			remainings = append(remainings, remaining)
		},
	}
	guesses, err := game.Play()
	assert.NoError(err)
	assert.Equal(2, guesses)
	assert.Equal([]string{"crane", "trace"}, played)
	// the opening feedback shrinks the candidates to exactly {trace}
	assert.Equal([]int{1, 1}, remainings)
}

func TestPlayOpeningFeedback(t *testing.T) {
	fb := Compute(W("crane"), W("trace"))
	assert.Equal(t, "~==.=", fb.Mask())
}

func TestPlayTermination(t *testing.T) {
	list := words(twentyWords)
	d := NewDictionary(list, list)

	for _, answer := range list {
		var prev int
		game := &Game{
			Dict:    d,
			Source:  &cappedSource{src: Simulator{Answer: answer}, cap: len(list)},
			Opening: W("cigar"),
			Strict:  true,
			Trace: func(fb Feedback, remaining int) {
				if prev > 0 {
					assert.LessOrEqual(t, remaining, prev, answer)
				}
				prev = remaining
			},
		}
		guesses, err := game.Play()
		require.NoError(t, err, answer)
		assert.LessOrEqual(t, guesses, 8, answer)
	}
}

func TestPlayDefaultOpening(t *testing.T) {
	list := append(words(twentyWords), W(DefaultOpening))
	d := NewDictionary(list, list)

	var played []string
	game := &Game{
		Dict:   d,
		Source: &cappedSource{src: Simulator{Answer: W("serve")}, cap: len(list)},
		Trace: func(fb Feedback, remaining int) {
			played = append(played, fb.Guess.String())
		},
	}
	_, err := game.Play()
	assert.NoError(t, err)
	assert.Equal(t, DefaultOpening, played[0])
}

func TestPlayStrictContradiction(t *testing.T) {
	list := words([]string{"aaaaa", "bbbbb"})
	d := NewDictionary(list, list)

	game := &Game{
		Dict:    d,
		Source:  &scriptSource{fn: func(call int, guess Word) (Feedback, error) { return allPresent(guess), nil }},
		Opening: W("aaaaa"),
		Strict:  true,
	}
	guesses, err := game.Play()
	assert.ErrorIs(t, err, ErrNoCandidates)
	assert.Equal(t, 1, guesses)
}

func TestPlayLenientReset(t *testing.T) {
	assert := assert.New(t)

	list := words([]string{"aaaaa", "bbbbb"})
	d := NewDictionary(list, list)

	// the first mask contradicts every answer; after the reset the same
	// guess is repeated and honest feedback takes over
	source := &scriptSource{fn: func(call int, guess Word) (Feedback, error) {
		if call == 1 {
			return allPresent(guess), nil
		}
		return Compute(guess, W("bbbbb")), nil
	}}

	var remainings []int
	game := &Game{
		Dict:    d,
		Source:  source,
		Opening: W("aaaaa"),
		Trace: func(fb Feedback, remaining int) {
			remainings = append(remainings, remaining)
		},
	}
	guesses, err := game.Play()
	assert.NoError(err)
	assert.Equal(3, guesses)
	assert.Equal([]int{0, 1, 1}, remainings)
}

func TestPlaySourceClosed(t *testing.T) {
	list := words(twentyWords)
	d := NewDictionary(list, list)

	game := &Game{
		Dict: d,
		Source: &scriptSource{fn: func(call int, guess Word) (Feedback, error) {
			return Feedback{}, fmt.Errorf("%w: stdin: EOF", ErrSourceClosed)
		}},
		Opening: W("cigar"),
	}
	_, err := game.Play()
	assert.True(t, errors.Is(err, ErrSourceClosed))
}
