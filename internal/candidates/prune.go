// internal/candidates/prune.go
//
// Pruning rules, one per feedback kind:
//   - green:  the letter must sit at that position.
//   - yellow: the letter is elsewhere, at least as often as it was marked.
//   - grey:   no more copies than were marked green or yellow.

package candidates

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// ApplyGreen discards every word that does not have letter at pos.
func (s *Store) ApplyGreen(letter byte, pos int) int {
	return s.prune(func(w string) bool {
		return pos >= len(w) || w[pos] != letter
	})
}

// ApplyYellow discards every word that has letter at pos (a yellow rules
// the position out) or holds fewer than count copies of letter.
func (s *Store) ApplyYellow(letter byte, pos, count int) int {
	return s.prune(func(w string) bool {
		if pos < len(w) && w[pos] == letter {
			return true
		}
		return occurrences(w, letter) < count
	})
}

// ApplyGrey discards words by letter count. With count == 0 the letter is
// absent, so any word containing it goes. Otherwise a grey after count
// green/yellow marks pins the secret to exactly count copies.
func (s *Store) ApplyGrey(letter byte, count int) int {
	if count == 0 {
		return s.prune(func(w string) bool {
			return strings.IndexByte(w, letter) >= 0
		})
	}
	return s.prune(func(w string) bool {
		return occurrences(w, letter) != count
	})
}

// Apply prunes with every position of v, using the vector's own
// non-grey count per letter. The order of application does not matter.
func (s *Store) Apply(v feedback.Vector) int {
	before := s.Size()
	for pos, st := range v {
		switch st.Kind {
		case feedback.Green:
			s.ApplyGreen(st.Letter, pos)
		case feedback.Yellow:
			s.ApplyYellow(st.Letter, pos, v.NonGrey(st.Letter))
		case feedback.Grey:
			s.ApplyGrey(st.Letter, v.NonGrey(st.Letter))
		}
	}
	removed := before - s.Size()
	log.Debug().
		Str("guess", v.Word()).
		Str("feedback", v.String()).
		Int("removed", removed).
		Int("remaining", s.Size()).
		Msg("candidates pruned")
	return removed
}

func occurrences(w string, c byte) int {
	return strings.Count(w, string(c))
}
