package candidates

import (
	"math/rand/v2"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

var dict = []string{
	"apple", "apply", "ample", "maple", "gassy", "grass", "sassy", "hello",
	"lolly", "llama", "eerie", "geese", "crane", "slate", "abbey", "kebab",
	"otter", "totem", "tatty", "robot", "error", "speed", "spree", "level",
}

func TestNewDedupesAndLowercases(t *testing.T) {
	s := New([]string{"Crane", "crane", "SLATE"})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, []string{"crane", "slate"}, s.Available())
	assert.Empty(t, s.Discarded())
}

func TestApplyGreen(t *testing.T) {
	s := New(dict)
	s.ApplyGreen('p', 1)
	assert.Equal(t, []string{"apple", "apply", "speed", "spree"}, s.Available())
}

func TestApplyYellowCountAware(t *testing.T) {
	s := New(dict)
	// at least two s's, none at position 0
	s.ApplyYellow('s', 0, 2)
	assert.Equal(t, []string{"gassy", "grass"}, s.Available())
}

func TestApplyGreyAbsentLetter(t *testing.T) {
	s := New(dict)
	s.ApplyGrey('e', 0)
	for _, w := range s.Available() {
		assert.NotContains(t, w, "e")
	}
	assert.True(t, s.IsDiscarded("geese"))
	assert.True(t, s.IsAvailable("gassy"))
}

func TestApplyGreyExactCount(t *testing.T) {
	s := New(dict)
	// exactly one l
	s.ApplyGrey('l', 1)
	for _, w := range s.Available() {
		assert.Equal(t, 1, occurrences(w, 'l'), w)
	}
	assert.True(t, s.IsDiscarded("hello"))
	assert.True(t, s.IsDiscarded("crane"))
	assert.True(t, s.IsAvailable("slate"))
}

func TestApplyNeverRemovesSecret(t *testing.T) {
	list, err := words.Embedded()
	require.NoError(t, err)

	guesses := []string{"crane", "slate", "eerie", "lolly", "gassy", "kebab", "error", "mamma"}
	secrets := list[:200]
	for _, secret := range secrets {
		s := New(list)
		for _, g := range guesses {
			s.Apply(feedback.Evaluate(secret, g))
			require.True(t, s.IsAvailable(secret), "secret %s pruned by guess %s", secret, g)
		}
	}
}

func TestApplyOrderIndependent(t *testing.T) {
	v := feedback.Evaluate("hello", "lolly")

	forward := New(dict)
	forward.Apply(v)

	backward := New(dict)
	for pos := len(v) - 1; pos >= 0; pos-- {
		st := v[pos]
		switch st.Kind {
		case feedback.Green:
			backward.ApplyGreen(st.Letter, pos)
		case feedback.Yellow:
			backward.ApplyYellow(st.Letter, pos, v.NonGrey(st.Letter))
		case feedback.Grey:
			backward.ApplyGrey(st.Letter, v.NonGrey(st.Letter))
		}
	}
	assert.Equal(t, forward.Available(), backward.Available())
	assert.Equal(t, []string{"hello"}, forward.Available())
}

func TestResetRestoresDictionary(t *testing.T) {
	s := New(dict)
	s.Apply(feedback.Evaluate("crane", "slate"))
	s.Discard("apple")
	require.Less(t, s.Size(), s.Len())

	s.Reset()
	assert.ElementsMatch(t, dict, s.Available())
	assert.Empty(t, s.Discarded())
}

func TestPartitionInvariant(t *testing.T) {
	s := New(dict)
	s.Apply(feedback.Evaluate("apple", "maple"))
	avail, disc := s.Available(), s.Discarded()
	assert.Equal(t, s.Len(), len(avail)+len(disc))
	for _, w := range avail {
		assert.NotContains(t, disc, w)
	}
	assert.ElementsMatch(t, dict, append(avail, disc...))
}

func TestDiscardAndContains(t *testing.T) {
	s := New(dict)
	assert.True(t, s.Discard("crane"))
	assert.False(t, s.Discard("crane"))
	assert.False(t, s.Discard("zzzzz"))
	assert.True(t, s.Contains("crane"))
	assert.True(t, s.IsDiscarded("crane"))
	assert.False(t, s.Contains("zzzzz"))
	assert.False(t, s.IsDiscarded("zzzzz"))
}

func TestSampleUniformAndEmpty(t *testing.T) {
	s := New(dict)
	r := rand.New(rand.NewPCG(1, 2))

	hits := map[string]int{}
	for i := 0; i < 2000; i++ {
		w, ok := s.Sample(r)
		require.True(t, ok)
		require.True(t, s.IsAvailable(w))
		hits[w]++
	}
	assert.Len(t, hits, len(dict))

	s.ApplyGrey('a', 0)
	s.ApplyGrey('e', 0)
	s.ApplyGrey('o', 0)
	s.ApplyGrey('y', 0)
	_, ok := s.Sample(r)
	assert.False(t, ok)
	assert.Zero(t, s.Size())
}
