package wordle

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingProgress struct {
	n atomic.Int64
}

func (p *countingProgress) Add(num int) error {
	p.n.Add(int64(num))
	return nil
}

func TestScoreMatchesSerial(t *testing.T) {
	candidates := words(twentyWords)
	for _, guess := range []Word{W("cigar"), W("serve"), W("zesty")} {
		assert.Equal(t, scoreSerial(guess, candidates), Score(guess, candidates), guess)
	}
}

func TestScoreCertainGuess(t *testing.T) {
	// a lone candidate scores 1: its own feedback keeps only itself
	assert.Equal(t, 1, Score(W("cigar"), words([]string{"cigar"})))
}

func TestBestGuessDiscriminates(t *testing.T) {
	candidates := words([]string{"aaaab", "aaaac", "aaaad"})
	guesses := append(words([]string{"bbccd"}), candidates...)
	// bbccd splits the three candidates into singleton feedback classes;
	// guessing a candidate leaves two words whenever it is wrong
	best := BestGuess(guesses, candidates, nil)
	assert.Equal(t, W("bbccd"), best)
}

func TestBestGuessTieBreak(t *testing.T) {
	// both guesses score identically, the earlier dictionary word wins
	list := words([]string{"aaaaa", "bbbbb"})
	assert.Equal(t, W("aaaaa"), BestGuess(list, list, nil))
}

func TestBestGuessProgress(t *testing.T) {
	list := words(twentyWords)
	progress := &countingProgress{}
	BestGuess(list, list, progress)
	assert.Equal(t, int64(len(list)), progress.n.Load())
}
