// serve.go
//
// "wordle serve": the local JSON API for a GUI on the same machine.

package main

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the local JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := httpserver.New(httpserver.Options{
				Dictionary:   a.dict,
				MaxAttempts:  a.cfg.MaxAttempts,
				Suggestions:  a.cfg.Suggestions,
				ClientOrigin: a.cfg.ClientOrigin,
				DailySalt:    a.cfg.DailySalt,
				Seed:         a.cfg.Seed,
				IdleTimeout:  a.cfg.SessionIdle,
			})
			log.Info().Str("addr", a.cfg.Addr).Int("words", len(a.dict)).Msg("starting solver api")
			return srv.Run(cmd.Context(), a.cfg.Addr)
		},
	}
	cmd.Flags().String("addr", "127.0.0.1:5175", "listen address")
	cmd.Flags().String("client-origin", "http://localhost:5173", "allowed CORS origin")
	cmd.Flags().String("daily-salt", "local_dev_salt", "salt for the daily word")
	cmd.Flags().Duration("session-idle", 30*time.Minute, "evict API sessions idle this long (0 keeps them)")
	return cmd
}
