// Package preview loads attachments and prepares them for display.
//
// Text and code attachments are decoded and split into lines,
// with code passing through the syntax highlighter.
// Other kinds are summarized as descriptors
// (image dimensions, media type, document text)
// for the caller to present.
package preview

import (
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/attview/internal/highlight"
)

// Preview is a loaded attachment.
//
// Previews may be shared between callers through the [Loader]'s cache
// and must not be modified.
type Preview struct {
	Path string
	Kind Kind
	Size int64 // in bytes

	// Charset the content was decoded from.
	// Set for Text and Code.
	Charset string

	// Language is the name of the grammar used to highlight Code.
	// Empty if no grammar matched the file's extension.
	Language string

	// Lines holds the content of Text and Code attachments.
	// Text lines are a single Identifier span each.
	Lines [][]highlight.Span

	Image    *ImageInfo    // Image only
	Media    *MediaInfo    // Audio and Video only
	Document *DocumentInfo // PDF and DOCX only
}

// splitLines splits decoded content into lines for display.
// Unlike highlight.Highlight,
// a trailing newline does not produce a final empty line,
// and a "\r" before each newline is dropped.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func plainLines(lines []string) [][]highlight.Span {
	out := make([][]highlight.Span, len(lines))
	for i, line := range lines {
		out[i] = plainLine(line)
	}
	return out
}

// plainLine is an unhighlighted line: a single Identifier span,
// or none if the line is empty.
func plainLine(line string) []highlight.Span {
	if line == "" {
		return nil
	}
	return []highlight.Span{{Text: line, Category: highlight.Identifier}}
}

// Page returns the n-th page, counting from 1,
// of items split into pages of the given size,
// along with the total number of pages.
//
// A size of zero or less puts everything on one page.
// There is always at least one page, even if items is empty.
func Page[T any](items []T, n, size int) (page []T, pages int, err error) {
	if size <= 0 {
		size = max(len(items), 1)
	}
	pages = max((len(items)+size-1)/size, 1)
	if n < 1 || n > pages {
		return nil, pages, errtrace.Errorf("page %d out of range [1, %d]", n, pages)
	}

	lo := (n - 1) * size
	hi := min(lo+size, len(items))
	return items[lo:hi], pages, nil
}
