// internal/game/solver.go
//
// Candidate store and ranker shared by Session and Assistant, plus the
// option defaults and dictionary filtering both constructors use.

package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranking"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// solver is the state shared by Session and Assistant: the candidate store,
// the ranker and the letters confirmed by the most recent feedback.
type solver struct {
	store  *candidates.Store
	ranker *ranking.Engine
	known  []byte
}

func newSolver(dict []string, opts Options) *solver {
	return &solver{
		store:  candidates.New(dict),
		ranker: ranking.NewEngine(opts.Frequencies, opts.Rand),
	}
}

// apply retires the guessed word, prunes with v and keeps v's known letters
// for the next ranking. It returns the number of words removed.
func (s *solver) apply(v feedback.Vector) int {
	removed := 0
	if s.store.Discard(v.Word()) {
		removed++
	}
	removed += s.store.Apply(v)
	s.known = v.Known()
	return removed
}

// suggestions ranks the available words; limit <= 0 returns all of them.
func (s *solver) suggestions(limit int) []ranking.Suggestion {
	ranked := s.ranker.Rank(s.store.Available(), s.known)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func (s *solver) hint() (string, bool) {
	return s.ranker.BestByUniquenessThenFrequency(s.store.Available(), s.known)
}

func (s *solver) randomHint() (string, bool) {
	return s.ranker.BestByUniqueness(s.store.Available(), s.known)
}

func (s *solver) reset() {
	s.store.Reset()
	s.known = nil
}

func withDefaults(opts Options) Options {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Rand == nil {
		now := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(now, now^0x9e3779b97f4a7c15))
	}
	return opts
}

// usable keeps the entries of dict that are valid words after normalizing.
func usable(dict []string) ([]string, error) {
	out := make([]string, 0, len(dict))
	for _, w := range dict {
		if w = words.Normalize(w); words.IsWord(w) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no usable words", words.ErrDictionaryLoad)
	}
	return out, nil
}
