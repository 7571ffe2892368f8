// internal/game/engine.go
//
// Solving session against a hidden secret.
// Responsibilities:
//   - Pick (or accept) the secret from the dictionary.
//   - Validate guesses: length, dictionary membership, not already ruled out.
//   - Score guesses, prune the candidate store, remember the known letters.
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - A rejected call never mutates the session.
//   - The secret is only revealed by Answer once the session is over.
//   - Not safe for concurrent use; adapters hold their own lock.

package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranking"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Session is one game against a hidden secret.
type Session struct {
	id          string
	secret      string
	maxAttempts int
	attempts    int
	state       State
	history     []Turn
	rng         Rand
	core        *solver
}

// New starts a session over dict. Entries that are not valid words are
// ignored; a dict with no valid word is reported as words.ErrDictionaryLoad.
func New(dict []string, opts Options) (*Session, error) {
	dict, err := usable(dict)
	if err != nil {
		return nil, err
	}
	opts = withDefaults(opts)
	s := &Session{
		id:          uuid.NewString(),
		maxAttempts: opts.MaxAttempts,
		rng:         opts.Rand,
		core:        newSolver(dict, opts),
	}
	if err := s.Reset(opts.Secret); err != nil {
		return nil, err
	}
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// SubmitGuess scores text against the secret and narrows the candidates.
func (s *Session) SubmitGuess(text string) (Result, error) {
	if s.IsOver() {
		return s.result("", nil), ErrGameOver
	}
	guess := words.Normalize(text)
	switch {
	case len(guess) != feedback.WordLength:
		return s.result("", nil), fmt.Errorf("%w: %q must be %d letters", ErrInvalidGuess, guess, feedback.WordLength)
	case !s.core.store.Contains(guess):
		return s.result("", nil), fmt.Errorf("%w: %q is not in the word list", ErrInvalidGuess, guess)
	case s.core.store.IsDiscarded(guess):
		return s.result("", nil), fmt.Errorf("%w: %q is already ruled out", ErrInvalidGuess, guess)
	}

	s.attempts++
	v := feedback.Evaluate(s.secret, guess)
	s.core.apply(v)
	s.history = append(s.history, Turn{Guess: guess, Feedback: v})

	switch {
	case v.Solved():
		s.state = Won
	case s.attempts >= s.maxAttempts:
		s.state = Lost
	}

	log.Debug().
		Str("session", s.id).
		Str("guess", guess).
		Str("feedback", v.String()).
		Str("state", string(s.state)).
		Int("attempts", s.attempts).
		Msg("guess scored")
	return s.result(guess, v), nil
}

func (s *Session) result(guess string, v feedback.Vector) Result {
	return Result{
		Guess:     guess,
		Feedback:  v,
		State:     s.state,
		Attempts:  s.attempts,
		Remaining: s.core.store.Size(),
	}
}

// Suggestions returns up to limit ranked candidates (all when limit <= 0).
func (s *Session) Suggestions(limit int) []ranking.Suggestion {
	return s.core.suggestions(limit)
}

// Hint returns the most unique candidate, highest frequency on ties.
func (s *Session) Hint() (string, bool) { return s.core.hint() }

// RandomHint returns a random pick among the most unique candidates.
func (s *Session) RandomHint() (string, bool) { return s.core.randomHint() }

// IsOver reports whether the session is won or lost.
func (s *Session) IsOver() bool { return s.state != InProgress }

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Attempts is the number of accepted guesses.
func (s *Session) Attempts() int { return s.attempts }

// MaxAttempts is the guess limit.
func (s *Session) MaxAttempts() int { return s.maxAttempts }

// Remaining is the number of words still consistent with every guess.
func (s *Session) Remaining() int { return s.core.store.Size() }

// DictionarySize is the number of usable dictionary words.
func (s *Session) DictionarySize() int { return s.core.store.Len() }

// History returns a copy of the guesses made so far.
func (s *Session) History() []Turn {
	return append([]Turn(nil), s.history...)
}

// Answer reveals the secret once the session is over.
func (s *Session) Answer() (string, bool) {
	if !s.IsOver() {
		return "", false
	}
	return s.secret, true
}

// Reset restores every candidate and starts over with secret, or with a
// random dictionary word when secret is empty.
func (s *Session) Reset(secret string) error {
	if secret = words.Normalize(secret); secret != "" {
		if !s.core.store.Contains(secret) {
			return fmt.Errorf("%w: %q is not in the word list", ErrInvalidSecret, secret)
		}
	}
	s.core.reset()
	if secret == "" {
		w, ok := s.core.store.Sample(s.rng)
		if !ok {
			return fmt.Errorf("%w: empty dictionary", words.ErrDictionaryLoad)
		}
		secret = w
	}
	s.secret = secret
	s.attempts = 0
	s.history = nil
	s.state = InProgress
	return nil
}
