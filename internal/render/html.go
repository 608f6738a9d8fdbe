package render

import (
	"fmt"
	"io"
	"sync"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"go.abhg.dev/attview/internal/highlight"
)

// HTML renders classified lines into an HTML <pre> block.
type HTML struct {
	// Style used for syntax highlighting.
	// Defaults to DefaultStyle.
	Style *chroma.Style

	// UseClasses specifies whether the formatter
	// uses inline 'style' attributes for highlighting,
	// or classes, assuming use of an appropriate style sheet.
	UseClasses bool

	once      sync.Once
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

var _ Formatter = (*HTML)(nil)

func (h *HTML) init() {
	h.once.Do(func() {
		h.formatter = chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(h.UseClasses),
		)
		h.style = h.Style
		if h.style == nil {
			h.style = DefaultStyle
		}
	})
}

// WriteCSS writes the style classes for this formatter to writer.
// If this formatter is not using classes, WriteCSS is a no-op.
func (h *HTML) WriteCSS(w io.Writer) error {
	h.init()

	if !h.UseClasses {
		return nil
	}

	return errtrace.Wrap(h.formatter.WriteCSS(w, h.style))
}

// Format renders the given lines as HTML.
func (h *HTML) Format(w io.Writer, lines [][]highlight.Span) error {
	h.init()

	if h.UseClasses {
		fmt.Fprintf(w, "<pre class=%q>", chroma.StandardTypes[chroma.PreWrapper])
	} else {
		style := chromahtml.StyleEntryToCSS(h.style.Get(chroma.PreWrapper))
		fmt.Fprintf(w, "<pre style=%q>", style)
	}

	it := chroma.Literator(Tokens(lines)...)
	if err := h.formatter.Format(w, h.style, it); err != nil {
		return errtrace.Wrap(err)
	}

	_, err := io.WriteString(w, "</pre>")
	return errtrace.Wrap(err)
}
