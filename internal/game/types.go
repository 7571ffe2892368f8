// internal/game/types.go
//
// Core type definitions for the solving session.
// Defines:
//   - State:   coarse session state (in_progress/won/lost).
//   - Options: construction parameters shared by Session and Assistant.
//   - Result:  the outcome of one submitted guess.
//   - Turn:    one entry of a session's guess history.
//   - the sentinel errors returned by this package.

package game

import (
	"errors"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranking"
)

// DefaultMaxAttempts is used when Options.MaxAttempts is not set.
const DefaultMaxAttempts = 6

var (
	// ErrInvalidGuess: wrong length, not a dictionary word, or already ruled out.
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrGameOver is returned by any mutating call after the session ended.
	ErrGameOver = errors.New("game over")
	// ErrInvalidSecret is returned when an explicit secret is not a dictionary word.
	ErrInvalidSecret = errors.New("invalid secret")
	// ErrEmptyCandidateSet means the observed feedback ruled out every word.
	// The assistant stays usable but has nothing left to suggest.
	ErrEmptyCandidateSet = errors.New("no candidate words remain")
)

// State is the coarse state of a session.
type State string

const (
	InProgress State = "in_progress"
	Won        State = "won"
	Lost       State = "lost"
)

// Rand is the random source used to pick secrets and break ranking ties.
type Rand = candidates.Rand

// Options configures New and NewAssistant. The zero value is usable.
type Options struct {
	MaxAttempts int                    // defaults to DefaultMaxAttempts
	Secret      string                 // sampled from the dictionary when empty; ignored by Assistant
	Rand        Rand                   // time seeded when nil
	Frequencies ranking.FrequencyTable // English when nil
}

// Result is returned by Session.SubmitGuess.
type Result struct {
	Guess     string
	Feedback  feedback.Vector
	State     State
	Attempts  int
	Remaining int
}

// Turn is one guess and the feedback it produced.
type Turn struct {
	Guess    string
	Feedback feedback.Vector
}
