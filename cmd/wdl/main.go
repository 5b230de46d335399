package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/jdhollis/wordle/wordle"
)

type globalConfiguration struct {
	dict     *wordle.Dictionary
	opening  wordle.Word
	strict   bool
	progress bool
}

func loadConfiguration(answersPath, guessesPath, first string, strict, progress bool) (globalConfiguration, error) {
	answers, err := wordle.ReadWordList(answersPath)
	if err != nil {
		return globalConfiguration{}, err
	}
	guesses, err := wordle.ReadWordList(guessesPath)
	if err != nil {
		return globalConfiguration{}, err
	}
	dict := wordle.NewDictionary(guesses, answers)
	opening, ok := dict.Word(first)
	if !ok {
		return globalConfiguration{}, fmt.Errorf("opening guess not in dictionary: %s", first)
	}
	log.Info().
		Int("guesses", dict.Len()).
		Int("answers", dict.Answers().Len()).
		Str("opening", opening.String()).
		Msg("loaded word lists")
	return globalConfiguration{
		dict:     dict,
		opening:  opening,
		strict:   strict,
		progress: progress,
	}, nil
}

func (cfg globalConfiguration) newProgress(total int) wordle.Progress {
	if cfg.progress {
		return progressbar.Default(int64(total))
	}
	return progressbar.DefaultSilent(int64(total))
}

// consoleSource prompts a human for the mask of each proposed guess and
// echoes the colorized result.
type consoleSource struct {
	in  *bufio.Reader
	out io.Writer
}

func (c *consoleSource) Feedback(guess wordle.Word) (wordle.Feedback, error) {
	fmt.Fprintf(c.out, "< %s\n> ", guess)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return wordle.Feedback{}, fmt.Errorf("%w: %v", wordle.ErrSourceClosed, err)
	}
	status, err := wordle.ParseMask(strings.TrimSpace(line))
	if err != nil {
		return wordle.Feedback{}, err
	}
	fb := wordle.Feedback{Guess: guess, Status: status}
	fmt.Fprintln(c.out, fb.Colorize())
	return fb, nil
}

func play(cfg globalConfiguration) error {
	game := &wordle.Game{
		Dict:        cfg.dict,
		Source:      &consoleSource{in: bufio.NewReader(os.Stdin), out: os.Stdout},
		Opening:     cfg.opening,
		Strict:      cfg.strict,
		NewProgress: cfg.newProgress,
	}
	guesses, err := game.Play()
	if err != nil {
		return err
	}
	fmt.Printf("solved in %d guesses\n", guesses)
	return nil
}

func simulate(cfg globalConfiguration, solutionStrings []string) error {
	d := cfg.dict
	var solutions []wordle.Word
	if len(solutionStrings) == 0 {
		solutions = d.Answers().Words()
	} else {
		for _, s := range solutionStrings {
			if !d.Contains(strings.ToLower(s)) {
				return fmt.Errorf("solution not in dictionary: %s", s)
			}
			word, _ := d.Word(s)
			solutions = append(solutions, word)
		}
	}

	sortedGames := make(map[int][]string)
	total := 0
	for count, solution := range solutions {
		var played []string
		game := &wordle.Game{
			Dict:    d,
			Source:  wordle.Simulator{Answer: solution},
			Opening: cfg.opening,
			Strict:  cfg.strict,
			Trace: func(fb wordle.Feedback, remaining int) {
				played = append(played, fb.Guess.String())
			},
		}
		guesses, err := game.Play()
		if err != nil {
			return err
		}
		fmt.Printf("%d/%d %s: %s\n", count+1, len(solutions), solution, strings.Join(played, " "))
		sortedGames[guesses] = append(sortedGames[guesses], solution.String())
		total += guesses
	}

	// histogram of guess counts
	keys := make([]int, 0, len(sortedGames))
	for k := range sortedGames {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	fmt.Println("---------------------")
	for _, numGuesses := range keys {
		games := sortedGames[numGuesses]
		fmt.Println(numGuesses, len(games), ":", strings.Join(games, " "))
	}
	fmt.Printf("average guesses: %.3f\n", float64(total)/float64(len(solutions)))
	return nil
}

func first(cfg globalConfiguration) error {
	answers := cfg.dict.Answers().Words()
	best := wordle.BestGuess(answers, answers, cfg.newProgress(len(answers)))
	fmt.Println(best)
	return nil
}

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		log.Fatal().Err(err).Msg("create profile")
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	answersPath := "answer_words.txt"
	guessesPath := "wordle.txt"
	firstWord := wordle.DefaultOpening
	strict := false
	progress := false
	profile := false

	cmd := &cli.Command{
		Name:  "wdl",
		Usage: "wordle solver",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "answers",
				Value:       answersPath,
				Aliases:     []string{"a"},
				Usage:       "newline delimited list of possible hidden answers",
				Destination: &answersPath,
			},
			&cli.StringFlag{
				Name:        "guesses",
				Value:       guessesPath,
				Aliases:     []string{"g"},
				Usage:       "newline delimited list of legal guesses",
				Destination: &guessesPath,
			},
			&cli.StringFlag{
				Name:        "first",
				Value:       firstWord,
				Aliases:     []string{"f"},
				Usage:       "opening guess",
				Destination: &firstWord,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Value:       false,
				Usage:       "fail on contradictory feedback instead of resetting the candidate set",
				Destination: &strict,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       false,
				Aliases:     []string{"p"},
				Usage:       "show a progress bar during the best-guess search",
				Destination: &progress,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store cpu profile data to analyze",
				Destination: &profile,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "play",
				Usage: `play a game against the real puzzle: the solver proposes a guess,
				you answer with the observed mask, '=' exact '~' present '.' absent`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						defer cpuProfile()()
					}
					cfg, err := loadConfiguration(answersPath, guessesPath, firstWord, strict, progress)
					if err != nil {
						return err
					}
					return play(cfg)
				},
			},
			{
				Name: "sim",
				Usage: `sim [solution]...
				Self-play against each listed solution, or against every word in the
				answer dictionary when none is given. Prints the guess sequence per
				game plus a guess-count histogram.`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						defer cpuProfile()()
					}
					cfg, err := loadConfiguration(answersPath, guessesPath, firstWord, strict, false)
					if err != nil {
						return err
					}
					return simulate(cfg, cmd.Args().Slice())
				},
			},
			{
				Name: "first",
				Usage: `first
				Search the answer dictionary for the best opening guess`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						defer cpuProfile()()
					}
					cfg, err := loadConfiguration(answersPath, guessesPath, firstWord, strict, progress)
					if err != nil {
						return err
					}
					return first(cfg)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("wdl")
	}
}
