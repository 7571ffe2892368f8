// main.go
//
// Entry point for the wordle solver binary.
// Responsibilities:
//   - Build the cobra command tree (play, assist, solve, bench, serve).
//   - Load configuration (defaults, file, .env, WORDLE_* env, flags).
//   - Configure zerolog from the loaded config.
//   - Load the dictionary once; a failure here is fatal.

package main

import (
	"context"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/render"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("wordle exited")
	}
}

// app is the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	cfg    *config.Config
	dict   []string
	render *render.Renderer
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}
	var (
		configFile string
		noColor    bool
	)

	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Play, assist and benchmark a five-letter word guessing game",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			setupLogging(cfg, errOut)

			dict, err := words.Resolve(cfg.Dictionary)
			if err != nil {
				return err
			}
			a.dict = dict
			a.render = render.New(!noColor && isTerminal(out))
			log.Debug().Int("words", len(dict)).Str("command", cmd.Name()).Msg("ready")
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	pf.String("dictionary", "", "word list file, one word per line (default: embedded list)")
	pf.Int("max-attempts", game.DefaultMaxAttempts, "guesses allowed per game")
	pf.Uint64("seed", 0, "random seed, 0 for time based")
	pf.String("log-level", "info", "trace|debug|info|warn|error")
	pf.Bool("log-pretty", false, "human readable logs on stderr")
	pf.Int("suggestions", 25, "number of suggestions to show")
	pf.BoolVar(&noColor, "no-color", false, "disable coloured tiles")

	root.AddCommand(
		newPlayCmd(a),
		newAssistCmd(a),
		newSolveCmd(a),
		newBenchCmd(a),
		newServeCmd(a),
	)
	return root
}

// setupLogging applies the configured level and output format.
func setupLogging(cfg *config.Config, w io.Writer) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
		return
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// gameOptions maps the config onto engine options.
func (a *app) gameOptions(secret string) game.Options {
	opts := game.Options{MaxAttempts: a.cfg.MaxAttempts, Secret: secret}
	if a.cfg.Seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(a.cfg.Seed, a.cfg.Seed>>1))
	}
	return opts
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
