// internal/bench/bench.go
//
// Auto-play benchmark.
//
// Every secret is played by its own Assistant: the assistant proposes a guess,
// the guess is scored against the secret, and the encoded feedback is fed back
// exactly as a human would type it. Games run on a fixed worker pool; each one
// owns its random source, so results do not depend on scheduling.

package bench

import (
	"context"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranking"
)

// Options configures Run.
type Options struct {
	Dictionary  []string
	Secrets     []string // defaults to Dictionary
	MaxAttempts int      // defaults to game.DefaultMaxAttempts
	Workers     int
	Seed        uint64 // 0 means time seeded
	Frequencies ranking.FrequencyTable
	Progress    io.Writer // progress bar output; nil disables it
}

// Outcome is the result of one auto-played game.
type Outcome struct {
	Secret  string
	Guesses []string
	Won     bool
}

// Play lets a drive itself against secret for at most maxAttempts guesses.
func Play(a *game.Assistant, secret string, maxAttempts int) (Outcome, error) {
	out := Outcome{Secret: secret}
	for len(out.Guesses) < maxAttempts {
		guess, ok := a.Next()
		if !ok {
			break
		}
		out.Guesses = append(out.Guesses, guess)
		encoded := feedback.Encode(feedback.Evaluate(secret, guess))
		if err := a.Observe(guess, encoded); err != nil {
			return out, err
		}
		if a.Solved() {
			out.Won = true
			break
		}
	}
	return out, nil
}

// Run plays every secret and aggregates the outcomes. On cancellation it
// returns the partial report together with ctx's error.
func Run(ctx context.Context, opts Options) (*Report, error) {
	secrets := opts.Secrets
	if len(secrets) == 0 {
		secrets = opts.Dictionary
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = game.DefaultMaxAttempts
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(secrets),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("solving"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	var (
		mu     sync.Mutex
		report = newReport(opts.MaxAttempts)
	)
	pool := NewWorkerPool(opts.Workers, 0)
	pool.Start(ctx)

	start := time.Now()
	for i, secret := range secrets {
		job := func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := game.NewAssistant(opts.Dictionary, game.Options{
				Rand:        rand.New(rand.NewPCG(seed, uint64(i))),
				Frequencies: opts.Frequencies,
			})
			if err != nil {
				return err
			}
			out, err := Play(a, secret, opts.MaxAttempts)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			report.add(out)
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		}
		if err := pool.Submit(ctx, job); err != nil {
			break
		}
	}
	pool.Close()
	if bar != nil {
		_ = bar.Finish()
	}
	report.finish(time.Since(start))

	log.Info().
		Int("games", report.Games).
		Int("wins", report.Wins).
		Float64("avgGuesses", report.AverageGuesses).
		Dur("took", report.Elapsed).
		Msg("benchmark finished")
	return report, ctx.Err()
}
