// Package render turns classified source lines into styled output.
//
// The core contract is [Render], which feeds spans and their colors
// to a caller-provided [Sink] one line at a time.
// [Formatter]s build on it to produce plain text,
// colored terminal output, or HTML.
package render

import (
	"io"

	"braces.dev/errtrace"
	"github.com/muesli/termenv"
	"go.abhg.dev/attview/internal/highlight"
)

// Sink is a surface that receives styled text.
type Sink interface {
	// WriteSpan writes a piece of text in the given color.
	WriteSpan(text string, c highlight.Category, color Color) error

	// LineBreak ends the current line.
	LineBreak() error
}

// Color is a color from a [Palette] as a "#rrggbb" string.
type Color string

// Render writes every line to the sink,
// followed by a line break.
func Render(sink Sink, lines [][]highlight.Span, p *Palette) error {
	for _, spans := range lines {
		for _, s := range spans {
			color := Color(p.Color(s.Category).String())
			if err := sink.WriteSpan(s.Text, s.Category, color); err != nil {
				return errtrace.Wrap(err)
			}
		}
		if err := sink.LineBreak(); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

// PlainSink writes text to W, dropping all styling.
type PlainSink struct{ W io.Writer }

var _ Sink = (*PlainSink)(nil)

// WriteSpan writes the span's text as-is.
func (s *PlainSink) WriteSpan(text string, _ highlight.Category, _ Color) error {
	_, err := io.WriteString(s.W, text)
	return errtrace.Wrap(err)
}

// LineBreak writes a newline.
func (s *PlainSink) LineBreak() error {
	_, err := io.WriteString(s.W, "\n")
	return errtrace.Wrap(err)
}

// TerminalSink writes text to W with ANSI color escapes
// appropriate for Profile.
//
// Categories drawn in the palette's foreground color are written as-is,
// so they take the terminal's own default color.
type TerminalSink struct {
	W       io.Writer
	Profile termenv.Profile
	Palette *Palette
}

var _ Sink = (*TerminalSink)(nil)

// WriteSpan writes the span's text wrapped in color escapes.
func (s *TerminalSink) WriteSpan(text string, c highlight.Category, color Color) error {
	if c == highlight.Whitespace || s.Palette.IsNeutral(c) {
		_, err := io.WriteString(s.W, text)
		return errtrace.Wrap(err)
	}

	styled := s.Profile.String(text).Foreground(s.Profile.Color(string(color)))
	_, err := io.WriteString(s.W, styled.String())
	return errtrace.Wrap(err)
}

// LineBreak writes a newline.
func (s *TerminalSink) LineBreak() error {
	_, err := io.WriteString(s.W, "\n")
	return errtrace.Wrap(err)
}
