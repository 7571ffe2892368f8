// internal/feedback/evaluate.go
//
// Scores one guess against one secret.
//
// Pass 1 (left to right):
//   - exact position match → Green
//   - letter occurs anywhere else in the secret → Yellow
//   - otherwise → Grey
//
// Pass 2 (left to right, building the final vector):
//   - a Yellow letter that the guess over-uses is demoted to Grey once the
//     greens for that letter plus the yellows already kept reach the
//     letter's count in the secret.
//
// The result never marks more copies of a letter than the secret holds,
// greens win over yellows, and the leftmost yellows survive.

package feedback

import (
	"fmt"
	"strings"
)

// Evaluate returns the feedback for guess against secret.
// Both words must have the same length; a mismatch is a programming error
// and panics.
func Evaluate(secret, guess string) Vector {
	if len(secret) != len(guess) {
		panic(fmt.Sprintf("feedback: secret length %d != guess length %d", len(secret), len(guess)))
	}
	n := len(guess)

	first := make(Vector, n)
	for i := 0; i < n; i++ {
		c := guess[i]
		switch {
		case c == secret[i]:
			first[i] = GreenOf(c)
		case strings.IndexByte(secret, c) >= 0:
			first[i] = YellowOf(c)
		default:
			first[i] = GreyOf(c)
		}
	}

	out := make(Vector, 0, n)
	for _, s := range first {
		if s.Kind == Yellow {
			inSecret := countByte(secret, s.Letter)
			if countByte(guess, s.Letter) > inSecret {
				committed := first.Count(Green, s.Letter) + out.Count(Yellow, s.Letter)
				if committed >= inSecret {
					s.Kind = Grey
				}
			}
		}
		out = append(out, s)
	}
	return out
}

// countByte counts occurrences of c in s.
func countByte(s string, c byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			n++
		}
	}
	return n
}
