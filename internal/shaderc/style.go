package shaderc

import (
	"io"

	"github.com/muesli/termenv"
)

// Style colors report output. A nil or plain Style leaves text unchanged.
type Style struct {
	out   *termenv.Output
	plain bool
}

// NewStyle returns a Style for w. Color is disabled when plain is set,
// when NO_COLOR is present, or when w is not a terminal.
func NewStyle(w io.Writer, plain bool) *Style {
	if plain || termenv.EnvNoColor() {
		return &Style{plain: true}
	}
	return &Style{out: termenv.NewOutput(w)}
}

func (s *Style) paint(text, color string) string {
	if s == nil || s.plain || s.out == nil {
		return text
	}
	return s.out.String(text).Foreground(s.out.Color(color)).Bold().String()
}

// OK formats a success marker.
func (s *Style) OK(text string) string { return s.paint(text, "2") }

// Fail formats a failure marker.
func (s *Style) Fail(text string) string { return s.paint(text, "1") }

// Note formats secondary text.
func (s *Style) Note(text string) string {
	if s == nil || s.plain || s.out == nil {
		return text
	}
	return s.out.String(text).Faint().String()
}
