package wordle

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// searchWorkers is the fixed fan-out used by Score and BestGuess. The two
// parallel axes are never nested: BestGuess workers score serially.
const searchWorkers = 8

// Progress observes one Add per guess evaluated during BestGuess. It has no
// effect on the result. *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(num int) error
}

// countConsistent returns how many of words could still be the hidden
// answer given fb.
func countConsistent(fb Feedback, words []Word) int {
	n := 0
	for _, w := range words {
		if fb.Consistent(w) {
			n++
		}
	}
	return n
}

// scoreSerial is Score without the fan-out.
func scoreSerial(guess Word, candidates []Word) int {
	total := 0
	for _, answer := range candidates {
		total += countConsistent(Compute(guess, answer), candidates)
	}
	return total
}

// Score rates guess against the current candidate answers: for each
// candidate treated as the hidden answer, count how many candidates remain
// consistent with the feedback guess would receive, and sum the counts. The
// sum approximates the candidate set size left after the turn, so lower is
// better.
func Score(guess Word, candidates []Word) int {
	if len(candidates) < 2*searchWorkers {
		return scoreSerial(guess, candidates)
	}
	partial := make([]int, searchWorkers)
	var g errgroup.Group
	for w := 0; w < searchWorkers; w++ {
		g.Go(func() error {
			sum := 0
			for i := w; i < len(candidates); i += searchWorkers {
				sum += countConsistent(Compute(guess, candidates[i]), candidates)
			}
			partial[w] = sum
			return nil
		})
	}
	g.Wait()
	total := 0
	for _, p := range partial {
		total += p
	}
	return total
}

// BestGuess scores every legal guess against candidates in parallel and
// returns the minimizer. Ties go to the earliest word in dictionary order.
// progress may be nil.
func BestGuess(guesses, candidates []Word, progress Progress) Word {
	bestIdx := make([]int, searchWorkers)
	bestScore := make([]int, searchWorkers)
	var g errgroup.Group
	for w := 0; w < searchWorkers; w++ {
		g.Go(func() error {
			idx, score := -1, math.MaxInt
			for i := w; i < len(guesses); i += searchWorkers {
				if s := scoreSerial(guesses[i], candidates); s < score {
					idx, score = i, s
				}
				if progress != nil {
					progress.Add(1)
				}
			}
			bestIdx[w], bestScore[w] = idx, score
			return nil
		})
	}
	g.Wait()

	idx, score := -1, math.MaxInt
	for w := range bestIdx {
		if bestIdx[w] < 0 {
			continue
		}
		if bestScore[w] < score || (bestScore[w] == score && bestIdx[w] < idx) {
			idx, score = bestIdx[w], bestScore[w]
		}
	}
	if idx < 0 {
		panic("wordle: empty guess dictionary")
	}
	return guesses[idx]
}
