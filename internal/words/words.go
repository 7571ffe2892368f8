// internal/words/words.go
//
// Dictionary loading for the solver.
//
// Responsibilities:
//   - Read newline-separated words from a file, any reader, or the embedded
//     default list in the assets package.
//   - Normalize: trim, lowercase, drop duplicates (first occurrence keeps its place).
//   - Exclude lines that are not exactly feedback.WordLength ASCII letters,
//     blank lines and "#" comments. Exclusion is silent apart from a debug log.
//
// A read failure or an empty result is reported as ErrDictionaryLoad; callers
// treat it as fatal at startup.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// ErrDictionaryLoad is returned when the word source is unreadable or empty.
var ErrDictionaryLoad = errors.New("dictionary load failed")

// Load reads a dictionary from r.
func Load(r io.Reader) ([]string, error) {
	var (
		out     []string
		seen    = make(map[string]struct{})
		skipped int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w := strings.ToLower(line)
		if !IsWord(w) {
			skipped++
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictionaryLoad, err)
	}
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Msg("dictionary lines excluded (wrong length or non-letters)")
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no %d-letter words found", ErrDictionaryLoad, feedback.WordLength)
	}
	return out, nil
}

// LoadFile reads a dictionary from the file at path.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictionaryLoad, err)
	}
	defer f.Close()
	return Load(f)
}

// Embedded returns the default dictionary compiled into the binary.
func Embedded() ([]string, error) {
	f, err := assets.OpenDictionary()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictionaryLoad, err)
	}
	defer f.Close()
	return Load(f)
}

// Resolve loads path when set and falls back to the embedded list otherwise.
func Resolve(path string) ([]string, error) {
	if path == "" {
		list, err := Embedded()
		if err == nil {
			log.Debug().Int("words", len(list)).Msg("loaded embedded dictionary")
		}
		return list, err
	}
	list, err := LoadFile(path)
	if err == nil {
		log.Debug().Str("path", path).Int("words", len(list)).Msg("loaded dictionary")
	}
	return list, err
}

// IsWord reports whether w is exactly feedback.WordLength lowercase ASCII letters.
func IsWord(w string) bool {
	if len(w) != feedback.WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// Normalize trims and lowercases user input.
func Normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
