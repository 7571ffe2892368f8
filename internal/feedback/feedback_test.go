package feedback

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleWords = []string{
	"apple", "apply", "gassy", "grass", "hello", "lolly", "llama", "level",
	"eerie", "geese", "sassy", "crane", "slate", "abbey", "kebab", "mamma",
	"otter", "totem", "array", "radar", "error", "robot", "speed", "spree",
}

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		secret, guess, want string
	}{
		{"apple", "apply", "GGGGX"},
		{"apple", "apple", "GGGGG"},
		// s at position 3 lines up with the secret; the trailing s is the
		// secret's other s.
		{"gassy", "grass", "GXYGY"},
		// both interior l's are exact, so the leading l is an excess duplicate.
		{"hello", "lolly", "XYGGX"},
		{"crane", "slate", "XXGXG"},
		// the green e consumes the secret's only e.
		{"crane", "eerie", "XXYXG"},
		{"abbey", "kebab", "XYGYY"},
		{"otter", "tatty", "YXGXX"},
		{"robot", "error", "XYXGX"},
	}
	for _, tc := range tests {
		t.Run(tc.secret+"/"+tc.guess, func(t *testing.T) {
			got := Evaluate(tc.secret, tc.guess)
			assert.Equal(t, tc.want, got.String())
			assert.Equal(t, tc.guess, got.Word())
		})
	}
}

func TestEvaluateNeverOvercountsLetters(t *testing.T) {
	for _, secret := range sampleWords {
		for _, guess := range sampleWords {
			v := Evaluate(secret, guess)
			require.Len(t, v, len(secret))
			for c := byte('a'); c <= 'z'; c++ {
				assert.LessOrEqual(t, v.NonGrey(c), countByte(secret, c),
					"secret=%s guess=%s letter=%c feedback=%s", secret, guess, c, v)
			}
		}
	}
}

func TestEvaluateSelfIsAllGreen(t *testing.T) {
	for _, w := range sampleWords {
		v := Evaluate(w, w)
		assert.True(t, v.Solved(), w)
		assert.Equal(t, "GGGGG", v.String())
	}
}

func TestEvaluatePanicsOnLengthMismatch(t *testing.T) {
	assert.Panics(t, func() { Evaluate("apple", "app") })
}

func TestKnownOrdersGreensBeforeYellows(t *testing.T) {
	v := Evaluate("gassy", "grass") // G X Y G Y
	assert.Equal(t, []byte("gsas"), v.Known())
	assert.Equal(t, 2, v.NonGrey('s'))
	assert.Equal(t, 0, v.NonGrey('r'))
}

func TestSolvedEmptyVector(t *testing.T) {
	assert.False(t, Vector{}.Solved())
}

func TestDecode(t *testing.T) {
	v, err := Decode("grass", "gxygy")
	require.NoError(t, err)
	assert.Equal(t, Vector{GreenOf('g'), GreyOf('r'), YellowOf('a'), GreenOf('s'), YellowOf('s')}, v)
	assert.Equal(t, "GXYGY", Encode(v))
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode("grass", "GXYG")
	assert.True(t, errors.Is(err, ErrMalformedFeedback))

	_, err = Decode("grass", "GXYGZ")
	assert.ErrorIs(t, err, ErrMalformedFeedback)
	assert.Contains(t, err.Error(), "position 4")
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "green", Green.String())
	assert.Equal(t, "yellow", Yellow.String())
	assert.Equal(t, "grey", Grey.String())
	assert.Equal(t, byte('X'), Grey.Symbol())
}
