// internal/daily/daily.go
//
// Day-of-year secret selection.
//
// Every process that shares a salt and a dictionary agrees on the day's word
// without any shared state: the index is HMAC-SHA256(salt, YYYY-MM-DD) reduced
// modulo the dictionary size.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index in [0, n) for the date.
// It returns 0 when n <= 0.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as the modulus source
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// Secret returns the word of the day from dict, or "" for an empty dict.
func Secret(date time.Time, salt string, dict []string) string {
	if len(dict) == 0 {
		return ""
	}
	return dict[WordIndex(date, salt, len(dict))]
}
