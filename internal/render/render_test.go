package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranking"
)

func TestPlainTiles(t *testing.T) {
	r := New(false)
	v := feedback.Evaluate("hello", "lolly") // XYGGX
	assert.Equal(t, " L (O)[L][L] Y ", r.Tiles(v))
}

func TestColorTiles(t *testing.T) {
	r := New(true)
	out := r.Tiles(feedback.Evaluate("apple", "apply"))
	// apply vs apple: GGGGX
	assert.Contains(t, out, "\x1b[42m A ")
	assert.Contains(t, out, "\x1b[100m Y ")
	assert.NotContains(t, out, "[_")
	assert.NotContains(t, out, "]")
}

func TestColorYellowTile(t *testing.T) {
	r := New(true)
	out := r.Tiles(feedback.Evaluate("hello", "lolly")) // XYGGX
	assert.Contains(t, out, "\x1b[43m O ")
}

func TestBoard(t *testing.T) {
	r := New(false)
	turns := []game.Turn{
		{Guess: "crane", Feedback: feedback.Evaluate("apple", "crane")},
		{Guess: "apple", Feedback: feedback.Evaluate("apple", "apple")},
	}
	assert.Equal(t, " C  R (A) N [E]\n[A][P][P][L][E]\n", r.Board(turns))
}

func TestSuggestions(t *testing.T) {
	r := New(false)
	out := r.Suggestions([]ranking.Suggestion{{Word: "crane", UniqueLetters: 5, AverageFrequency: 39.176}})
	assert.Equal(t, "  1. crane  unique=5 freq=39.18\n", out)
	assert.Equal(t, "no suggestions\n", r.Suggestions(nil))
}

func TestStatusPlain(t *testing.T) {
	r := New(false)
	assert.Equal(t, "you won", r.Status(game.Won, "you won"))
	assert.Equal(t, "keep going", r.Status(game.InProgress, "keep going"))
}
