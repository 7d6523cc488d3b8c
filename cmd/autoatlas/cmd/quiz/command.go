// Package quiz provides the quiz command.
package quiz

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/autoatlas/autoatlas/cmd/application"
	"github.com/autoatlas/autoatlas/internal/cmd/output"
	"github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/autoatlas/autoatlas/pkg/quiz"
	"github.com/autoatlas/autoatlas/pkg/tiers"
)

type flags struct {
	mode string
	seed string
	play bool
}

// NewCommand creates the quiz command.
func NewCommand(app application.Application) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:     "quiz",
		GroupID: "core",
		Short:   "Build a logo or model quiz deck",
		Long: `Build a shuffled quiz deck for a logo tier or a brand's models.

The same --seed always yields the same deck. With --play the questions are
asked on the terminal and the final score is printed.`,
		Example: `  autoatlas quiz tier nivel-1 --seed 42        # Print a deck
  autoatlas quiz tier 3 --mode typed --play     # Play in the terminal
  autoatlas quiz brand bmw -o json`,
	}

	cmd.AddCommand(newTierCommand(app, f))
	cmd.AddCommand(newBrandCommand(app, f))

	cmd.PersistentFlags().StringVar(&f.mode, "mode", "multiple", "Answer mode: multiple or typed")
	cmd.PersistentFlags().StringVar(&f.seed, "seed", "", "Deck seed (default: random)")
	cmd.PersistentFlags().BoolVar(&f.play, "play", false, "Ask the questions interactively")
	return cmd
}

func newTierCommand(app application.Application, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "tier <tier>",
		Short: "Quiz the logos grouped into one tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := tiers.ParseID(args[0])
			client, err := app.Client()
			if err != nil {
				return err
			}
			if !ok || tiers.Meta(id).Level > client.TierCount() {
				return errors.NewNotFoundError("tier", args[0])
			}
			mode, seed, err := f.parse()
			if err != nil {
				return err
			}
			groups, err := client.TierGroups(cmd.Context())
			if err != nil {
				return err
			}
			deck, err := quiz.TierDeck(groups, id, mode, seed)
			if err != nil {
				return err
			}
			return f.run(cmd, app, deck)
		},
	}
}

func newBrandCommand(app application.Application, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "brand <brand>",
		Short: "Quiz a brand's models by their pictures",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, seed, err := f.parse()
			if err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}
			ix, err := client.Index(cmd.Context())
			if err != nil {
				return err
			}
			brand, ok := ix.Brand(args[0])
			if !ok {
				return errors.NewNotFoundError("brand", args[0])
			}
			deck, err := quiz.ModelDeck(brand, mode, seed)
			if err != nil {
				return err
			}
			return f.run(cmd, app, deck)
		},
	}
}

func (f *flags) parse() (quiz.Mode, int64, error) {
	mode, err := quiz.ParseMode(f.mode)
	if err != nil {
		return "", 0, err
	}
	seed, err := quiz.ParseSeed(f.seed)
	if err != nil {
		return "", 0, err
	}
	return mode, seed, nil
}

func (f *flags) run(cmd *cobra.Command, app application.Application, deck quiz.Deck) error {
	app.Logger().Debug().
		Str("kind", string(deck.Kind)).
		Str("subject", deck.Subject).
		Int64("seed", deck.Seed).
		Int("questions", len(deck.Questions)).
		Msg("Built quiz deck")

	if f.play {
		return play(cmd.InOrStdin(), cmd.OutOrStdout(), deck)
	}
	format, err := output.Resolve(app.OutputFormat())
	if err != nil {
		return err
	}
	return output.Print(cmd.OutOrStdout(), format, output.QuizTable(deck), deck)
}

// play asks each question on w and reads one answer per line from r. In
// multiple-choice mode an option number is accepted as well as its text.
// Input ending early leaves the remaining questions unanswered.
func play(r io.Reader, w io.Writer, deck quiz.Deck) error {
	in := bufio.NewScanner(r)
	answers := make([]string, 0, len(deck.Questions))
	for i, q := range deck.Questions {
		fmt.Fprintf(w, "Question %d/%d: %s\n", i+1, len(deck.Questions), q.Image)
		for n, o := range q.Options {
			fmt.Fprintf(w, "  %d) %s\n", n+1, o)
		}
		fmt.Fprint(w, "> ")
		if !in.Scan() {
			fmt.Fprintln(w)
			break
		}
		answer := pick(q, in.Text())
		answers = append(answers, answer)
		if q.Correct(answer) {
			fmt.Fprintln(w, "Correct!")
		} else {
			fmt.Fprintf(w, "Wrong, it was %s\n", q.Answer)
		}
	}
	if err := in.Err(); err != nil {
		return errors.WrapIO("read", "stdin", err)
	}
	fmt.Fprintf(w, "Score: %d/%d\n", deck.Score(answers), len(deck.Questions))
	return nil
}

func pick(q quiz.Question, typed string) string {
	if n, err := strconv.Atoi(strings.TrimSpace(typed)); err == nil && n >= 1 && n <= len(q.Options) {
		return q.Options[n-1]
	}
	return typed
}
