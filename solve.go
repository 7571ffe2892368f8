// solve.go
//
// "wordle solve": the engine plays, you report the feedback.
//
// The engine proposes a word; reply with its feedback (e.g. XYGGX), or
// "!skip" when the other board rejects the word.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/render"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Let the engine pick every guess",
		RunE: func(cmd *cobra.Command, args []string) error {
			as, err := game.NewAssistant(a.dict, a.gameOptions(""))
			if err != nil {
				return err
			}
			return runSolve(a.in, a.out, as, a.render, a.cfg.MaxAttempts)
		},
	}
}

func runSolve(in io.Reader, out io.Writer, as *game.Assistant, r *render.Renderer, maxAttempts int) error {
	sc := bufio.NewScanner(in)
	for as.Attempts() < maxAttempts {
		guess, ok := as.Next()
		if !ok {
			fmt.Fprintln(out, "out of suggestions")
			return nil
		}
		fmt.Fprintf(out, "try %s (%d candidates)\nfeedback> ", strings.ToUpper(guess), as.Remaining())
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "!quit":
			return nil
		case "!skip":
			as.Exclude(guess)
			continue
		}

		v, err := feedback.Decode(guess, line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprintln(out, r.Tiles(v))
		err = as.ObserveVector(v)
		switch {
		case err == nil:
		case errors.Is(err, game.ErrEmptyCandidateSet):
			fmt.Fprintln(out, "no word fits the feedback so far")
			return nil
		default:
			return err
		}
		if as.Solved() {
			fmt.Fprintf(out, "solved in %d\n", as.Attempts())
			return nil
		}
	}
	fmt.Fprintln(out, "out of attempts")
	return nil
}
