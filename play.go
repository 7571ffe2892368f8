// play.go
//
// "wordle play": an interactive game against a hidden secret.
//
// Input is one guess per line. Commands:
//   ?       ranked suggestions for the remaining candidates
//   !hint   the single best guess
//   !board  every guess so far
//   !reset  start a new game with a random secret
//   !quit   leave

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/render"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		word    string
		isDaily bool
		hints   bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Guess a hidden word",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := word
			if isDaily {
				secret = daily.Secret(time.Now(), a.cfg.DailySalt, a.dict)
			}
			sess, err := game.New(a.dict, a.gameOptions(secret))
			if err != nil {
				return err
			}
			limit := 0
			if hints {
				limit = a.cfg.Suggestions
			}
			return runPlay(a.in, a.out, sess, a.render, a.cfg.Suggestions, limit)
		},
	}
	cmd.Flags().StringVar(&word, "word", "", "play against this secret")
	cmd.Flags().BoolVar(&isDaily, "daily", false, "play today's word")
	cmd.Flags().BoolVar(&hints, "hints", false, "show suggestions after every guess")
	return cmd
}

// runPlay drives sess from line input until EOF or !quit. autoHints > 0
// prints that many suggestions after each guess.
func runPlay(in io.Reader, out io.Writer, sess *game.Session, r *render.Renderer, limit, autoHints int) error {
	sc := bufio.NewScanner(in)
	fmt.Fprintf(out, "%d words, %d guesses. ? for suggestions, !quit to leave.\n", sess.DictionarySize(), sess.MaxAttempts())
	for {
		if !sess.IsOver() {
			fmt.Fprintf(out, "guess %d/%d> ", sess.Attempts()+1, sess.MaxAttempts())
		} else {
			fmt.Fprint(out, "!reset or !quit> ")
		}
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "!quit":
			return nil
		case "?":
			fmt.Fprint(out, r.Suggestions(sess.Suggestions(limit)))
			continue
		case "!hint":
			if w, ok := sess.Hint(); ok {
				fmt.Fprintf(out, "try %s\n", w)
			} else {
				fmt.Fprintln(out, "no hint available")
			}
			continue
		case "!board":
			fmt.Fprint(out, r.Board(sess.History()))
			continue
		case "!reset":
			if err := sess.Reset(""); err != nil {
				return err
			}
			fmt.Fprintln(out, "new game")
			continue
		}

		res, err := sess.SubmitGuess(line)
		switch {
		case errors.Is(err, game.ErrInvalidGuess):
			fmt.Fprintln(out, err)
			continue
		case errors.Is(err, game.ErrGameOver):
			fmt.Fprintln(out, "game over, type !reset to play again")
			continue
		case err != nil:
			return err
		}

		fmt.Fprintf(out, "%s  %d left\n", r.Tiles(res.Feedback), res.Remaining)
		switch res.State {
		case game.Won:
			fmt.Fprintln(out, r.Status(res.State, fmt.Sprintf("solved in %d", res.Attempts)))
		case game.Lost:
			answer, _ := sess.Answer()
			fmt.Fprintln(out, r.Status(res.State, "out of guesses, the word was "+answer))
		case game.InProgress:
			if autoHints > 0 {
				fmt.Fprint(out, r.Suggestions(sess.Suggestions(autoHints)))
			}
		}
	}
}
