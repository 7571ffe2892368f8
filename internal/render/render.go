// Package render draws feedback and suggestions for a terminal.
//
// With colour on, tiles use ANSI backgrounds (green, yellow, dark grey).
// With colour off, the kind is shown by brackets instead: [A] green, (A)
// yellow, plain A grey.
package render

import (
	"fmt"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/ranking"
)

// Renderer formats engine output.
type Renderer struct {
	color colorstring.Colorize
	plain bool
}

// New returns a renderer; color=false emits plain text only.
func New(color bool) *Renderer {
	return &Renderer{
		color: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !color,
			Reset:   true,
		},
		plain: !color,
	}
}

// Tiles renders one feedback vector on a single line.
func (r *Renderer) Tiles(v feedback.Vector) string {
	var b strings.Builder
	for _, st := range v {
		b.WriteString(r.tile(st))
	}
	return b.String()
}

func (r *Renderer) tile(st feedback.Status) string {
	letter := strings.ToUpper(string(st.Letter))
	if r.plain {
		switch st.Kind {
		case feedback.Green:
			return "[" + letter + "]"
		case feedback.Yellow:
			return "(" + letter + ")"
		case feedback.Grey:
			return " " + letter + " "
		}
	}
	var bg string
	switch st.Kind {
	case feedback.Green:
		bg = "_green_"
	case feedback.Yellow:
		bg = "_yellow_"
	case feedback.Grey:
		bg = "_dark_gray_"
	}
	return r.color.Color(fmt.Sprintf("[bold][white][%s] %s ", bg, letter))
}

// Board renders every turn of a history, one line each.
func (r *Renderer) Board(turns []game.Turn) string {
	var b strings.Builder
	for _, t := range turns {
		b.WriteString(r.Tiles(t.Feedback))
		b.WriteByte('\n')
	}
	return b.String()
}

// Suggestions renders a numbered list of ranked words.
func (r *Renderer) Suggestions(list []ranking.Suggestion) string {
	if len(list) == 0 {
		return r.color.Color("[dim]no suggestions") + "\n"
	}
	var b strings.Builder
	for i, s := range list {
		fmt.Fprintf(&b, "%3d. %s  unique=%d freq=%.2f\n", i+1, s.Word, s.UniqueLetters, s.AverageFrequency)
	}
	return b.String()
}

// Status colours a one-line message by outcome.
func (r *Renderer) Status(state game.State, msg string) string {
	switch state {
	case game.Won:
		return r.color.Color("[green]" + msg)
	case game.Lost:
		return r.color.Color("[red]" + msg)
	}
	return msg
}
