// internal/candidates/store.go
//
// Candidate store for the solver.
//
// The dictionary is held once, in load order, and a bitset tags every entry
// as available. Discarded words are exactly the untagged entries, so the
// available/discarded partition of the dictionary holds by construction.
//
// Characteristics:
//   - Pruning walks the set bits and clears the ones that fail a predicate.
//   - Snapshots (Available, Discarded) are returned in dictionary order,
//     which is the stable order ranking relies on for tie breaks.
//   - Not safe for concurrent use; a store belongs to one session.

package candidates

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Rand is the random source for sampling and ranking tie breaks.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Store partitions a dictionary into available and discarded words.
type Store struct {
	words     []string
	index     map[string]uint
	available *bitset.BitSet
}

// New builds a store over dict. Words are lowercased and duplicates dropped,
// keeping the first occurrence. Every word starts out available.
func New(dict []string) *Store {
	s := &Store{index: make(map[string]uint, len(dict))}
	for _, w := range dict {
		w = strings.ToLower(w)
		if _, dup := s.index[w]; dup {
			continue
		}
		s.index[w] = uint(len(s.words))
		s.words = append(s.words, w)
	}
	s.available = bitset.New(uint(len(s.words)))
	s.Reset()
	return s
}

// Reset returns every discarded word to the available set.
func (s *Store) Reset() {
	for i := range s.words {
		s.available.Set(uint(i))
	}
}

// Len is the size of the whole dictionary.
func (s *Store) Len() int { return len(s.words) }

// Size is the number of available words.
func (s *Store) Size() int { return int(s.available.Count()) }

// Contains reports whether w is in the dictionary, available or not.
func (s *Store) Contains(w string) bool {
	_, ok := s.index[w]
	return ok
}

// IsAvailable reports whether w is still a candidate.
func (s *Store) IsAvailable(w string) bool {
	i, ok := s.index[w]
	return ok && s.available.Test(i)
}

// IsDiscarded reports whether w is in the dictionary but eliminated.
func (s *Store) IsDiscarded(w string) bool {
	i, ok := s.index[w]
	return ok && !s.available.Test(i)
}

// Discard moves w to the discarded set. It reports whether w was available.
func (s *Store) Discard(w string) bool {
	i, ok := s.index[w]
	if !ok || !s.available.Test(i) {
		return false
	}
	s.available.Clear(i)
	return true
}

// Available returns the available words in dictionary order.
func (s *Store) Available() []string {
	out := make([]string, 0, s.Size())
	for i, ok := s.available.NextSet(0); ok; i, ok = s.available.NextSet(i + 1) {
		out = append(out, s.words[i])
	}
	return out
}

// Discarded returns the discarded words in dictionary order.
func (s *Store) Discarded() []string {
	out := make([]string, 0, s.Len()-s.Size())
	for i, w := range s.words {
		if !s.available.Test(uint(i)) {
			out = append(out, w)
		}
	}
	return out
}

// Sample picks one available word uniformly at random.
// It returns false when nothing is available.
func (s *Store) Sample(r Rand) (string, bool) {
	n := s.Size()
	if n == 0 {
		return "", false
	}
	k := r.IntN(n)
	for i, ok := s.available.NextSet(0); ok; i, ok = s.available.NextSet(i + 1) {
		if k == 0 {
			return s.words[i], true
		}
		k--
	}
	return "", false
}

// prune discards every available word for which drop returns true and
// returns how many were removed.
func (s *Store) prune(drop func(w string) bool) int {
	removed := 0
	for i, ok := s.available.NextSet(0); ok; i, ok = s.available.NextSet(i + 1) {
		if drop(s.words[i]) {
			s.available.Clear(i)
			removed++
		}
	}
	return removed
}
