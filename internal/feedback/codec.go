// internal/feedback/codec.go
//
// Text form of a feedback vector: one symbol per position, G (green),
// Y (yellow) or X (grey). Decode accepts lowercase symbols.

package feedback

import (
	"errors"
	"fmt"
	"strings"
)

// Wire symbols, one per position.
const (
	SymbolGreen  byte = 'G'
	SymbolYellow byte = 'Y'
	SymbolGrey   byte = 'X'
)

// ErrMalformedFeedback is returned when an encoded feedback string has the
// wrong length or contains an unknown symbol.
var ErrMalformedFeedback = errors.New("malformed feedback encoding")

// Encode renders v as one symbol per position.
func Encode(v Vector) string {
	b := make([]byte, len(v))
	for i, s := range v {
		b[i] = s.Kind.Symbol()
	}
	return string(b)
}

// Decode pairs an encoded status string with the guess it describes.
// Symbols are matched case-insensitively.
func Decode(guess, symbols string) (Vector, error) {
	symbols = strings.ToUpper(strings.TrimSpace(symbols))
	if len(symbols) != len(guess) {
		return nil, fmt.Errorf("%w: %d symbols for a %d letter guess", ErrMalformedFeedback, len(symbols), len(guess))
	}
	v := make(Vector, len(guess))
	for i := 0; i < len(symbols); i++ {
		k, err := kindOf(symbols[i])
		if err != nil {
			return nil, fmt.Errorf("%w at position %d", err, i)
		}
		v[i] = Status{Kind: k, Letter: guess[i]}
	}
	return v, nil
}

func kindOf(sym byte) (Kind, error) {
	switch sym {
	case SymbolGreen:
		return Green, nil
	case SymbolYellow:
		return Yellow, nil
	case SymbolGrey:
		return Grey, nil
	}
	return Grey, fmt.Errorf("%w: unknown symbol %q", ErrMalformedFeedback, sym)
}
