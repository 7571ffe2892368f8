package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2024-03-01 05:00 at +10 is still Feb 29 in UTC
	d := time.Date(2024, 3, 1, 5, 0, 0, 0, loc)
	assert.Equal(t, "2024-02-29", DateKey(d))
}

func TestWordIndexDeterministic(t *testing.T) {
	d := time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC)
	later := time.Date(2025, 7, 4, 23, 59, 0, 0, time.UTC)

	i := WordIndex(d, "salt", 865)
	assert.Equal(t, i, WordIndex(later, "salt", 865), "same day, same index")
	assert.GreaterOrEqual(t, i, 0)
	assert.Less(t, i, 865)
	assert.Zero(t, WordIndex(d, "salt", 0))
}

func TestWordIndexVariesWithSalt(t *testing.T) {
	d := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for _, salt := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		seen[WordIndex(d, salt, 1<<20)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestSecret(t *testing.T) {
	dict := []string{"crane", "slate", "apple"}
	d := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Contains(t, dict, Secret(d, "x", dict))
	assert.Equal(t, dict[WordIndex(d, "x", 3)], Secret(d, "x", dict))
	assert.Empty(t, Secret(d, "x", nil))
}
