package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/attview/internal/highlight"
	"go.abhg.dev/attview/internal/preview"
	"go.abhg.dev/attview/internal/render"
	"go.abhg.dev/attview/internal/sliceutil"
)

// Loader loads attachment previews in the background.
type Loader interface {
	LoadAsync(context.Context, preview.Request) <-chan preview.Result
}

var _ Loader = (*preview.Loader)(nil)

// cssWriter is implemented by formatters
// that need a style sheet ahead of their output.
type cssWriter interface {
	WriteCSS(io.Writer) error
}

var _ cssWriter = (*render.HTML)(nil)

// Viewer previews user-specified files.
//
// In terms of code organization,
// Viewer's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Viewer struct {
	Log       *log.Logger // required
	Loader    Loader
	Formatter render.Formatter
	Out       io.Writer

	Charset string
	Kind    preview.Kind // Unknown to detect

	Page       int // from 1
	PageSize   int // 0 for one page
	MaxColumns int // 0 for no limit
}

// View loads all files concurrently and writes their previews, in order.
//
// A file that fails to load doesn't stop the others.
// The failures are reported together afterwards.
func (v *Viewer) View(ctx context.Context, paths []string) error {
	results := make([]<-chan preview.Result, len(paths))
	for i, path := range paths {
		results[i] = v.Loader.LoadAsync(ctx, preview.Request{
			Path:    path,
			Kind:    v.Kind,
			Charset: v.Charset,
		})
	}

	if css, ok := v.Formatter.(cssWriter); ok {
		if err := v.writeCSS(css); err != nil {
			return errtrace.Wrap(err)
		}
	}

	var errs []error
	var shown int
	for i, ch := range results {
		res := <-ch
		if res.Err != nil {
			errs = append(errs, res.Err)
			continue
		}

		lines, err := v.lines(res.Preview, len(paths) > 1, shown > 0)
		if err != nil {
			errs = append(errs, errtrace.Errorf("%v: %w", paths[i], err))
			continue
		}
		if err := v.Formatter.Format(v.Out, lines); err != nil {
			return errtrace.Wrap(err)
		}
		v.Log.Printf("%v: showed %d lines of %v", paths[i], len(lines), res.Preview.Kind)
		shown++
	}
	return errtrace.Wrap(errors.Join(errs...))
}

func (v *Viewer) writeCSS(css cssWriter) error {
	var sb strings.Builder
	if err := css.WriteCSS(&sb); err != nil {
		return errtrace.Wrap(err)
	}
	if sb.Len() == 0 {
		return nil
	}

	_, err := fmt.Fprintf(v.Out, "<style>\n%s</style>\n", sb.String())
	return errtrace.Wrap(err)
}

// lines builds the lines shown for a preview,
// preceded by a header if there's more than one file or page.
func (v *Viewer) lines(p *preview.Preview, multi, separate bool) ([][]highlight.Span, error) {
	var (
		body  [][]highlight.Span
		pages = 1
	)
	switch p.Kind {
	case preview.Text, preview.Code:
		body = p.Lines
	case preview.DOCX:
		text := strings.Join(p.Document.Paragraphs, "\n")
		body = sliceutil.Transform(strings.Split(text, "\n"), plainLine)
	default:
		body = [][]highlight.Span{plainLine(describe(p))}
	}

	if p.Kind == preview.Text || p.Kind == preview.Code || p.Kind == preview.DOCX {
		var err error
		body, pages, err = preview.Page(body, v.Page, v.PageSize)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	body = render.Clip(body, v.MaxColumns)

	if !multi && pages <= 1 {
		return body, nil
	}

	var lines [][]highlight.Span
	if separate {
		lines = append(lines, nil)
	}
	header := "==> " + p.Path
	if pages > 1 {
		header += fmt.Sprintf(" (page %d of %d)", v.Page, pages)
	}
	header += " <=="
	lines = append(lines, []highlight.Span{{Text: header, Category: highlight.Comment}})
	return append(lines, body...), nil
}

func plainLine(s string) []highlight.Span {
	if s == "" {
		return nil
	}
	return []highlight.Span{{Text: s, Category: highlight.Identifier}}
}

// describe summarizes attachments that don't have text to show.
func describe(p *preview.Preview) string {
	var sb strings.Builder
	switch p.Kind {
	case preview.Image:
		fmt.Fprintf(&sb, "%v image, %dx%d pixels", p.Image.Format, p.Image.Width, p.Image.Height)
	case preview.Audio, preview.Video:
		sb.WriteString(p.Kind.String())
		if p.Media.MIME != "" {
			fmt.Fprintf(&sb, " (%v)", p.Media.MIME)
		}
	case preview.PDF:
		fmt.Fprintf(&sb, "PDF document, version %v", p.Document.Version)
		switch n := p.Document.Pages; {
		case n == 1:
			sb.WriteString(", 1 page")
		case n > 1:
			fmt.Fprintf(&sb, ", %d pages", n)
		}
	default:
		sb.WriteString(p.Kind.String())
	}
	fmt.Fprintf(&sb, ", %d bytes", p.Size)
	return sb.String()
}
