// internal/ranking/ranking.go
//
// Scores and orders candidate words.
//
// Two scores per word:
//   - UniqueLetters:    distinct letters; more means a more informative guess.
//   - AverageFrequency: mean letter commonality from the engine's FrequencyTable.
//
// After a guess, scores are refined with the letters that came back green or
// yellow: known letters count against uniqueness and stop earning frequency
// credit, which steers suggestions towards exploring new letters.
//
// Scores are derived on every call from the words passed in. Nothing is cached
// between prunes.

package ranking

import (
	"math/rand/v2"
	"time"

	mapset "github.com/deckarep/golang-set"
	"golang.org/x/exp/slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
)

// Rand is the random source used for tie breaks.
type Rand = candidates.Rand

// Suggestion is a scored candidate word.
type Suggestion struct {
	Word             string  `json:"word"`
	UniqueLetters    int     `json:"uniqueLetters"`
	AverageFrequency float64 `json:"averageFrequency"`
}

// Engine ranks candidates against a fixed frequency table.
type Engine struct {
	table FrequencyTable
	rng   Rand
}

// NewEngine builds an engine. A nil table means EnglishFrequencies and a nil
// rng gets a private time-seeded source.
func NewEngine(table FrequencyTable, rng Rand) *Engine {
	if table == nil {
		table = EnglishFrequencies()
	}
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>17))
	}
	return &Engine{table: table, rng: rng}
}

// UniqueLetterCount returns the number of distinct letters in word.
func UniqueLetterCount(word string) int {
	set := mapset.NewSet()
	for _, r := range word {
		set.Add(r)
	}
	return set.Cardinality()
}

// AverageFrequency returns the mean letter weight of word, 0 for "".
func (e *Engine) AverageFrequency(word string) float64 {
	return e.mean([]byte(word))
}

func (e *Engine) mean(letters []byte) float64 {
	if len(letters) == 0 {
		return 0
	}
	var sum float64
	for _, c := range letters {
		sum += e.table.Weight(rune(c))
	}
	return sum / float64(len(letters))
}

// Refine scores word given the letters already confirmed by the latest
// feedback (greens first, then yellows).
//
// Uniqueness is counted over word+known, so repeating a confirmed letter
// costs a point. Frequency is averaged over word with one occurrence per
// known letter removed.
func (e *Engine) Refine(word string, known []byte) Suggestion {
	return Suggestion{
		Word:             word,
		UniqueLetters:    UniqueLetterCount(word + string(known)),
		AverageFrequency: e.mean(stripKnown(word, known)),
	}
}

// Score returns the plain scores for word, or the refined scores when known
// letters are supplied.
func (e *Engine) Score(word string, known []byte) Suggestion {
	if len(known) > 0 {
		return e.Refine(word, known)
	}
	return Suggestion{
		Word:             word,
		UniqueLetters:    UniqueLetterCount(word),
		AverageFrequency: e.AverageFrequency(word),
	}
}

// Rank scores every word and orders the result by uniqueness, then
// frequency, both descending. Equal scores keep the order of words.
func (e *Engine) Rank(words []string, known []byte) []Suggestion {
	out := make([]Suggestion, len(words))
	for i, w := range words {
		out[i] = e.Score(w, known)
	}
	slices.SortStableFunc(out, compare)
	return out
}

// BestByUniqueness picks uniformly at random among the words tied for the
// highest uniqueness score.
func (e *Engine) BestByUniqueness(words []string, known []byte) (string, bool) {
	ties := e.mostUnique(words, known)
	if len(ties) == 0 {
		return "", false
	}
	return ties[e.rng.IntN(len(ties))].Word, true
}

// BestByUniquenessThenFrequency picks, among the words tied for the highest
// uniqueness score, the one with the highest frequency score. Remaining ties
// go to the earliest word.
func (e *Engine) BestByUniquenessThenFrequency(words []string, known []byte) (string, bool) {
	ties := e.mostUnique(words, known)
	if len(ties) == 0 {
		return "", false
	}
	best := ties[0]
	for _, s := range ties[1:] {
		if s.AverageFrequency > best.AverageFrequency {
			best = s
		}
	}
	return best.Word, true
}

// mostUnique returns the scored words sharing the maximum uniqueness, in input order.
func (e *Engine) mostUnique(words []string, known []byte) []Suggestion {
	var ties []Suggestion
	top := -1
	for _, w := range words {
		s := e.Score(w, known)
		switch {
		case s.UniqueLetters > top:
			top = s.UniqueLetters
			ties = append(ties[:0], s)
		case s.UniqueLetters == top:
			ties = append(ties, s)
		}
	}
	return ties
}

func compare(a, b Suggestion) int {
	if a.UniqueLetters != b.UniqueLetters {
		return b.UniqueLetters - a.UniqueLetters
	}
	switch {
	case a.AverageFrequency > b.AverageFrequency:
		return -1
	case a.AverageFrequency < b.AverageFrequency:
		return 1
	}
	return 0
}

// stripKnown removes one occurrence of each known letter from word. Each
// known letter claims the first position not already claimed; positions are
// deleted highest first so earlier indices stay valid.
func stripKnown(word string, known []byte) []byte {
	b := []byte(word)
	claimed := make([]int, 0, len(known))
	for _, k := range known {
		for i := range b {
			if b[i] == k && !slices.Contains(claimed, i) {
				claimed = append(claimed, i)
				break
			}
		}
	}
	slices.Sort(claimed)
	slices.Reverse(claimed)
	for _, i := range claimed {
		b = slices.Delete(b, i, i+1)
	}
	return b
}
