// bench.go
//
// "wordle bench": auto-play dictionary words as secrets and report how the
// ranking performs.

package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/bench"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		limit    int
		workers  int
		progress bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Auto-play every secret and print the guess distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			secrets := a.dict
			if limit > 0 && limit < len(secrets) {
				secrets = secrets[:limit]
			}
			opts := bench.Options{
				Dictionary:  a.dict,
				Secrets:     secrets,
				MaxAttempts: a.cfg.MaxAttempts,
				Workers:     workers,
				Seed:        a.cfg.Seed,
			}
			if progress {
				opts.Progress = a.errOut
			}
			report, err := bench.Run(cmd.Context(), opts)
			if report != nil {
				if werr := report.Write(a.out); werr != nil && err == nil {
					err = werr
				}
			}
			return err
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "play only the first N secrets (0 = all)")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "parallel games")
	cmd.Flags().BoolVar(&progress, "progress", true, "show a progress bar on stderr")
	return cmd
}
