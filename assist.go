// assist.go
//
// "wordle assist": suggestions for a game played elsewhere.
//
// Each line is "<guess> <feedback>", feedback one of G (right spot),
// Y (wrong spot) or X (absent) per letter, e.g. "crane XXYXG".

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/render"
)

func newAssistCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assist",
		Short: "Suggest guesses from feedback you type in",
		RunE: func(cmd *cobra.Command, args []string) error {
			as, err := game.NewAssistant(a.dict, a.gameOptions(""))
			if err != nil {
				return err
			}
			return runAssist(a.in, a.out, as, a.render, a.cfg.Suggestions)
		},
	}
}

func runAssist(in io.Reader, out io.Writer, as *game.Assistant, r *render.Renderer, limit int) error {
	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, `enter "<guess> <GYX feedback>", !reset or !quit`)
	fmt.Fprint(out, r.Suggestions(as.Suggestions(limit)))
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		fields := strings.Fields(sc.Text())
		switch {
		case len(fields) == 0:
			continue
		case fields[0] == "!quit":
			return nil
		case fields[0] == "!reset":
			as.Reset()
			fmt.Fprint(out, r.Suggestions(as.Suggestions(limit)))
			continue
		case len(fields) != 2:
			fmt.Fprintln(out, `expected "<guess> <feedback>"`)
			continue
		}

		err := as.Observe(fields[0], fields[1])
		switch {
		case err == nil:
		case game.IsDegraded(err):
			fmt.Fprintln(out, "no word fits that feedback, check it and !reset")
			continue
		case errors.Is(err, game.ErrGameOver):
			fmt.Fprintln(out, "already solved, !reset to start over")
			continue
		default:
			fmt.Fprintln(out, err)
			continue
		}
		if as.Solved() {
			fmt.Fprintf(out, "solved in %d\n", as.Attempts())
			continue
		}
		fmt.Fprintf(out, "%d candidates left\n", as.Remaining())
		fmt.Fprint(out, r.Suggestions(as.Suggestions(limit)))
	}
}
