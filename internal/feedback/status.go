// internal/feedback/status.go
//
// Core type definitions for guess feedback.
// Defines:
//   - Kind:   per-letter classification (green/yellow/grey).
//   - Status: one position's classification plus the letter it describes.
//   - Vector: the ordered feedback for a whole guess.

package feedback

import "strings"

// WordLength is the fixed number of letters in every word the engine compares.
const WordLength = 5

// Kind is the classification of a single guessed letter.
// The set is closed: every switch over Kind handles all three values.
type Kind uint8

const (
	Grey   Kind = iota // letter does not occur (or is an excess duplicate)
	Yellow             // letter occurs elsewhere in the secret
	Green              // letter is in the correct position
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Grey:
		return "grey"
	}
	return "unknown"
}

// Symbol returns the single-character wire symbol for the kind.
func (k Kind) Symbol() byte {
	switch k {
	case Green:
		return SymbolGreen
	case Yellow:
		return SymbolYellow
	case Grey:
		return SymbolGrey
	}
	return '?'
}

// Status is one position's classification. It always carries the letter.
type Status struct {
	Kind   Kind
	Letter byte
}

// GreenOf, YellowOf and GreyOf build statuses for letter c.
func GreenOf(c byte) Status  { return Status{Kind: Green, Letter: c} }
func YellowOf(c byte) Status { return Status{Kind: Yellow, Letter: c} }
func GreyOf(c byte) Status   { return Status{Kind: Grey, Letter: c} }

// Vector is the feedback for one guess, index-aligned with the guess.
// Vectors are produced once and treated as immutable afterwards.
type Vector []Status

// Solved reports whether every position is green.
func (v Vector) Solved() bool {
	if len(v) == 0 {
		return false
	}
	for _, s := range v {
		if s.Kind != Green {
			return false
		}
	}
	return true
}

// Count returns how many positions have kind k for letter c.
func (v Vector) Count(k Kind, c byte) int {
	n := 0
	for _, s := range v {
		if s.Kind == k && s.Letter == c {
			n++
		}
	}
	return n
}

// NonGrey returns the number of green plus yellow marks for letter c.
// A grey mark on c after n non-grey marks proves the secret holds exactly n.
func (v Vector) NonGrey(c byte) int {
	return v.Count(Green, c) + v.Count(Yellow, c)
}

// Known returns the letters marked green (in position order) followed by
// the letters marked yellow (in position order).
func (v Vector) Known() []byte {
	out := make([]byte, 0, len(v))
	for _, s := range v {
		if s.Kind == Green {
			out = append(out, s.Letter)
		}
	}
	for _, s := range v {
		if s.Kind == Yellow {
			out = append(out, s.Letter)
		}
	}
	return out
}

// Word reassembles the guessed word from the vector.
func (v Vector) Word() string {
	var b strings.Builder
	b.Grow(len(v))
	for _, s := range v {
		b.WriteByte(s.Letter)
	}
	return b.String()
}

// String returns the encoded form, e.g. "GYXXG".
func (v Vector) String() string { return Encode(v) }
