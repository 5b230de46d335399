package wordle

// DefaultOpening is the precomputed opening guess. Recomputing the optimal
// opening costs a full-dictionary search and gives the same word every game,
// so it is configuration rather than something the loop derives. The first
// command recomputes it on demand.
const DefaultOpening = "roate"

// FeedbackSource produces the feedback for a proposed guess: a human
// translating the board, or a simulation against a hidden answer.
type FeedbackSource interface {
	Feedback(guess Word) (Feedback, error)
}

// Simulator is a FeedbackSource that scores guesses against a fixed hidden
// answer.
type Simulator struct {
	Answer Word
}

func (s Simulator) Feedback(guess Word) (Feedback, error) {
	return Compute(guess, s.Answer), nil
}

// Game drives one guessing session. The candidate set is owned by Play for
// the duration of the game and only mutated between turns.
type Game struct {
	Dict   *Dictionary
	Source FeedbackSource

	// Opening is the first guess. Zero value means DefaultOpening.
	Opening Word

	// Strict makes Play fail with ErrNoCandidates when feedback contradicts
	// every known answer. Otherwise the candidate set resets to the full
	// guess dictionary and play continues, which forgives a mistyped mask.
	Strict bool

	// NewProgress, when set, builds the observer for each full-dictionary
	// search.
	NewProgress func(total int) Progress

	// Trace, when set, observes each turn after filtering.
	Trace func(fb Feedback, remaining int)
}

// Play runs the game until the feedback is all exact and returns the number
// of guesses taken. Errors from the feedback source are returned as is.
func (g *Game) Play() (int, error) {
	candidates := g.Dict.Answers()
	guess := g.Opening
	if guess == (Word{}) {
		guess = MustWord(DefaultOpening)
	}
	for guesses := 1; ; guesses++ {
		fb, err := g.Source.Feedback(guess)
		if err != nil {
			return guesses, err
		}
		remaining := candidates.Filter(fb)
		if g.Trace != nil {
			g.Trace(fb, remaining)
		}
		if fb.AllExact() {
			return guesses, nil
		}
		switch {
		case remaining == 0:
			if g.Strict {
				return guesses, ErrNoCandidates
			}
			// contradictory feedback: start over from the full guess
			// dictionary and repeat the same guess
			candidates = g.Dict.All()
		case remaining <= 2:
			// guessing a real candidate maximizes the chance of an
			// immediate win, a discriminating guess cannot beat it here
			guess, _ = candidates.First()
		default:
			var progress Progress
			if g.NewProgress != nil {
				progress = g.NewProgress(g.Dict.Len())
			}
			guess = BestGuess(g.Dict.Words(), candidates.Words(), progress)
		}
	}
}
