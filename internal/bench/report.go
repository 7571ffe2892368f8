// internal/bench/report.go
//
// Aggregated benchmark results and their text summary.

package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// Report aggregates benchmark outcomes.
type Report struct {
	Games          int
	Wins           int
	Losses         int
	MaxAttempts    int
	Distribution   []int    // Distribution[n-1] counts wins in n guesses
	Lost           []string // secrets not found, sorted
	AverageGuesses float64  // over wins only
	Elapsed        time.Duration

	guessTotal int
}

func newReport(maxAttempts int) *Report {
	return &Report{MaxAttempts: maxAttempts, Distribution: make([]int, maxAttempts)}
}

func (r *Report) add(o Outcome) {
	r.Games++
	if !o.Won {
		r.Losses++
		r.Lost = append(r.Lost, o.Secret)
		return
	}
	r.Wins++
	r.guessTotal += len(o.Guesses)
	r.Distribution[len(o.Guesses)-1]++
}

func (r *Report) finish(elapsed time.Duration) {
	slices.Sort(r.Lost)
	if r.Wins > 0 {
		r.AverageGuesses = float64(r.guessTotal) / float64(r.Wins)
	}
	r.Elapsed = elapsed
}

// WinRate is the fraction of games won, 0 without games.
func (r *Report) WinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Games)
}

// Write prints a human readable summary with a bar per guess count.
func (r *Report) Write(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "games %d  won %d  lost %d  win rate %.2f%%  avg guesses %.3f  (%s)\n",
		r.Games, r.Wins, r.Losses, 100*r.WinRate(), r.AverageGuesses, r.Elapsed.Round(time.Millisecond))

	top := slices.Max(append([]int{1}, r.Distribution...))
	for i, n := range r.Distribution {
		width := n * 40 / top
		fmt.Fprintf(&b, "%2d | %-40s %d\n", i+1, strings.Repeat("#", width), n)
	}
	if len(r.Lost) > 0 {
		fmt.Fprintf(&b, "lost: %s\n", strings.Join(r.Lost, " "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
