package highlight

import (
	"context"
	"io"
	"runtime"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/attview/internal/grammar"
	"go.abhg.dev/attview/internal/linebuf"
	"golang.org/x/sync/errgroup"
)

// ClassifyLine splits a single line into classified spans.
//
// The line is classified in isolation:
// it's never considered to start inside a block comment.
// An empty line yields no spans.
func ClassifyLine(line string, g *grammar.Grammar) []Span {
	spans, _ := classify(nil, line, false, g)
	return spans
}

func classify(spans []Span, line string, inBlock bool, g *grammar.Grammar) ([]Span, bool) {
	parts, inBlock := carve(line, inBlock, g)
	for _, p := range parts {
		if p.comment {
			spans = append(spans, Span{Text: p.text, Category: Comment})
		} else {
			spans = tokenize(spans, p.text, g)
		}
	}
	return spans, inBlock
}

// Scanner classifies consecutive lines of the same file,
// remembering whether a block comment is still open
// at the end of each line.
//
// The zero value is not valid. Use [NewScanner].
type Scanner struct {
	g       *grammar.Grammar
	inBlock bool
}

// NewScanner builds a Scanner for a file in the given grammar.
func NewScanner(g *grammar.Grammar) *Scanner {
	return &Scanner{g: g}
}

// Next classifies the next line of the file.
// The line must not include the trailing newline.
func (s *Scanner) Next(line string) []Span {
	var spans []Span
	spans, s.inBlock = classify(spans, line, s.inBlock, s.g)
	return spans
}

// InBlockComment reports whether the last line classified
// ended inside an unterminated block comment.
func (s *Scanner) InBlockComment() bool {
	return s.inBlock
}

// Highlight classifies all lines of src.
//
// src is split on "\n",
// so a trailing newline produces a final empty line.
func Highlight(src string, g *grammar.Grammar) [][]Span {
	lines := strings.Split(src, "\n")
	out := make([][]Span, len(lines))

	s := NewScanner(g)
	for i, line := range lines {
		out[i] = s.Next(line)
	}
	return out
}

// _batchSize is the number of lines classified by each goroutine
// in HighlightLines.
const _batchSize = 256

// HighlightLines classifies lines of a single file concurrently.
// The result is the same as feeding the lines, in order, to a [Scanner].
//
// Block comment state is determined up front in a single sequential pass,
// after which the lines are tokenized in parallel.
// It returns early if ctx is canceled.
func HighlightLines(ctx context.Context, lines []string, g *grammar.Grammar) ([][]Span, error) {
	starts := make([]bool, len(lines)) // whether lines[i] starts inside a block comment
	var inBlock bool
	for i, line := range lines {
		starts[i] = inBlock
		_, inBlock = carve(line, inBlock, g)
	}

	out := make([][]Span, len(lines))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for lo := 0; lo < len(lines); lo += _batchSize {
		hi := min(lo+_batchSize, len(lines))
		group.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return errtrace.Wrap(err)
				}
				out[i], _ = classify(nil, lines[i], starts[i], g)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return out, nil
}

// NewWriter returns an io.Writer that classifies text written to it
// one line at a time, calling emit for every line
// as soon as its newline is seen.
//
// Lines are numbered from zero.
// Call done after the last write to classify a final line
// that isn't terminated by a newline.
func NewWriter(g *grammar.Grammar, emit func(lineno int, spans []Span)) (_ io.Writer, done func()) {
	s := NewScanner(g)
	var lineno int
	return linebuf.Writer(func(line []byte) {
		emit(lineno, s.Next(string(line)))
		lineno++
	})
}
