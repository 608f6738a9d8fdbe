package render

import (
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"go.abhg.dev/attview/internal/highlight"
)

// Formatter writes classified lines to a writer.
type Formatter interface {
	Format(w io.Writer, lines [][]highlight.Span) error
}

// Plain formats lines as unstyled text.
type Plain struct{}

var _ Formatter = Plain{}

// Format writes the lines without any styling.
func (Plain) Format(w io.Writer, lines [][]highlight.Span) error {
	return Render(&PlainSink{W: w}, lines, DefaultPalette)
}

// Terminal formats lines with ANSI colors.
type Terminal struct {
	// Profile is the color capability of the target terminal.
	// Use [ProfileFor] to detect it.
	Profile termenv.Profile

	// Palette defaults to DefaultPalette.
	Palette *Palette
}

var _ Formatter = (*Terminal)(nil)

// ProfileFor detects the color profile of the terminal behind w,
// honoring NO_COLOR and CLICOLOR_FORCE.
func ProfileFor(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).EnvColorProfile()
}

// Format writes the lines with colors for the terminal's profile.
func (t *Terminal) Format(w io.Writer, lines [][]highlight.Span) error {
	p := t.Palette
	if p == nil {
		p = DefaultPalette
	}
	return Render(&TerminalSink{W: w, Profile: t.Profile, Palette: p}, lines, p)
}

// Clip cuts every line down to at most width display columns.
// Wide characters count as two columns and are never split.
// A width of zero or less leaves lines untouched.
func Clip(lines [][]highlight.Span, width int) [][]highlight.Span {
	if width <= 0 {
		return lines
	}

	out := make([][]highlight.Span, len(lines))
	for i, spans := range lines {
		idx := highlight.NewSpanIndex(spans)
		out[i] = idx.Interval(0, columnOffset(highlight.Join(spans), width))
	}
	return out
}

// columnOffset returns the byte offset in s
// after which text would exceed width columns.
func columnOffset(s string, width int) int {
	var cols int
	for i, r := range s {
		cols += runewidth.RuneWidth(r)
		if cols > width {
			return i
		}
	}
	return len(s)
}
