package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranking"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Assistant narrows candidates from feedback reported by someone playing on
// another board. The secret is unknown to it.
//
// When the reported feedback rules out every word the assistant is degraded:
// Observe returns ErrEmptyCandidateSet, suggestions are empty, and the
// assistant can still be Reset.
type Assistant struct {
	id       string
	core     *solver
	attempts int
	solved   bool
	degraded bool
	history  []Turn
}

// NewAssistant builds an assistant over dict. Options.Secret and
// Options.MaxAttempts are not used.
func NewAssistant(dict []string, opts Options) (*Assistant, error) {
	dict, err := usable(dict)
	if err != nil {
		return nil, err
	}
	opts = withDefaults(opts)
	return &Assistant{id: uuid.NewString(), core: newSolver(dict, opts)}, nil
}

// ID returns the assistant identifier.
func (a *Assistant) ID() string { return a.id }

// Observe records that guess produced the encoded feedback (e.g. "XYGGX").
// The guess may be any dictionary word, including ones already ruled out.
func (a *Assistant) Observe(guess, encoded string) error {
	if a.solved {
		return ErrGameOver
	}
	guess = words.Normalize(guess)
	if !a.core.store.Contains(guess) {
		return fmt.Errorf("%w: %q is not in the word list", ErrInvalidGuess, guess)
	}
	v, err := feedback.Decode(guess, encoded)
	if err != nil {
		return err
	}
	return a.ObserveVector(v)
}

// ObserveVector is Observe for an already decoded vector.
func (a *Assistant) ObserveVector(v feedback.Vector) error {
	if a.solved {
		return ErrGameOver
	}
	if !a.core.store.Contains(v.Word()) {
		return fmt.Errorf("%w: %q is not in the word list", ErrInvalidGuess, v.Word())
	}
	a.attempts++
	a.core.apply(v)
	a.history = append(a.history, Turn{Guess: v.Word(), Feedback: v})

	if v.Solved() {
		a.solved = true
		return nil
	}
	if a.core.store.Size() == 0 {
		a.degraded = true
		log.Warn().Str("assistant", a.id).Str("guess", v.Word()).Str("feedback", v.String()).
			Msg("feedback is inconsistent with every dictionary word")
		return ErrEmptyCandidateSet
	}
	return nil
}

// Exclude rules word out without any feedback, e.g. when another board
// does not accept it. It reports whether word was still a candidate.
func (a *Assistant) Exclude(word string) bool {
	if !a.core.store.Discard(words.Normalize(word)) {
		return false
	}
	if a.core.store.Size() == 0 && !a.solved {
		a.degraded = true
	}
	return true
}

// Suggestions returns up to limit ranked candidates (all when limit <= 0).
func (a *Assistant) Suggestions(limit int) []ranking.Suggestion {
	if a.solved {
		return nil
	}
	return a.core.suggestions(limit)
}

// Next proposes the next guess: the most unique candidate, highest
// frequency on ties.
func (a *Assistant) Next() (string, bool) {
	if a.solved {
		return "", false
	}
	return a.core.hint()
}

// Remaining is the number of words still consistent with every observation.
func (a *Assistant) Remaining() int { return a.core.store.Size() }

// Attempts is the number of accepted observations.
func (a *Assistant) Attempts() int { return a.attempts }

// Solved reports whether an all-green observation was recorded.
func (a *Assistant) Solved() bool { return a.solved }

// Degraded reports whether the observations ruled out every word.
func (a *Assistant) Degraded() bool { return a.degraded }

// History returns a copy of the observations made so far.
func (a *Assistant) History() []Turn { return append([]Turn(nil), a.history...) }

// Reset forgets every observation.
func (a *Assistant) Reset() {
	a.core.reset()
	a.attempts = 0
	a.solved = false
	a.degraded = false
	a.history = nil
}

// IsDegraded reports whether err signals the degraded state.
func IsDegraded(err error) bool { return errors.Is(err, ErrEmptyCandidateSet) }
