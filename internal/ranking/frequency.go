// internal/ranking/frequency.go
//
// Letter weights used for the frequency score.

package ranking

import "unicode"

// FrequencyTable maps a lowercase letter to its commonality weight.
// Build one per engine; nothing in this package keeps a global table.
type FrequencyTable map[rune]float64

// EnglishFrequencies returns relative letter frequencies for English words
// (per-mille of letters in a large dictionary).
func EnglishFrequencies() FrequencyTable {
	return FrequencyTable{
		'a': 43.31, 'b': 10.56, 'c': 23.13, 'd': 17.25, 'e': 56.88,
		'f': 9.24, 'g': 12.59, 'h': 15.31, 'i': 38.45, 'j': 1.00,
		'k': 5.61, 'l': 27.98, 'm': 15.36, 'n': 33.92, 'o': 36.51,
		'p': 16.14, 'q': 1.00, 'r': 38.64, 's': 29.23, 't': 35.43,
		'u': 18.51, 'v': 5.13, 'w': 6.57, 'x': 1.48, 'y': 9.06,
		'z': 1.39,
	}
}

// Weight returns the weight of r, matched case-insensitively.
// Letters missing from the table weigh 0.
func (t FrequencyTable) Weight(r rune) float64 {
	return t[unicode.ToLower(r)]
}
