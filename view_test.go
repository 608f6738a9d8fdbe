package main

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/attview/internal/highlight"
	"go.abhg.dev/attview/internal/iotest"
	"go.abhg.dev/attview/internal/pdftest"
	"go.abhg.dev/attview/internal/preview"
	"go.abhg.dev/attview/internal/render"
)

func writeTestFile(t *testing.T, dir, name string, body []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, body, 0o644))
	return path
}

func newTestViewer(t *testing.T, out *bytes.Buffer) *Viewer {
	logger := log.New(iotest.Writer(t), "", 0)
	return &Viewer{
		Log:       logger,
		Loader:    &preview.Loader{Log: logger},
		Formatter: render.Plain{},
		Out:       out,
		Page:      1,
	}
}

func TestViewer_single(t *testing.T) {
	t.Parallel()

	src := "int main() {\n    return 0; /* ok */\n}\n"
	path := writeTestFile(t, t.TempDir(), "main.c", []byte(src))

	var out bytes.Buffer
	require.NoError(t, newTestViewer(t, &out).View(context.Background(), []string{path}))
	assert.Equal(t, src, out.String())
}

func TestViewer_multiple(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.py", []byte("x = 1\n"))
	b := writeTestFile(t, dir, "b.txt", []byte("hello\n"))

	var out bytes.Buffer
	require.NoError(t, newTestViewer(t, &out).View(context.Background(), []string{a, b}))

	assert.Equal(t, strings.Join([]string{
		"==> " + a + " <==",
		"x = 1",
		"",
		"==> " + b + " <==",
		"hello",
		"",
	}, "\n"), out.String())
}

func TestViewer_paging(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, t.TempDir(), "notes.txt", []byte("1\n2\n3\n4\n5\n"))

	var out bytes.Buffer
	v := newTestViewer(t, &out)
	v.Page = 2
	v.PageSize = 2
	require.NoError(t, v.View(context.Background(), []string{path}))

	assert.Equal(t, "==> "+path+" (page 2 of 3) <==\n3\n4\n", out.String())
}

func TestViewer_pageOutOfRange(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, t.TempDir(), "notes.txt", []byte("1\n2\n"))

	var out bytes.Buffer
	v := newTestViewer(t, &out)
	v.Page = 5
	v.PageSize = 2
	err := v.View(context.Background(), []string{path})
	assert.ErrorContains(t, err, "page 5 out of range")
	assert.ErrorContains(t, err, "notes.txt")
}

func TestViewer_maxColumns(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, t.TempDir(), "wide.txt", []byte("名前名前\nabcdef\n"))

	var out bytes.Buffer
	v := newTestViewer(t, &out)
	v.MaxColumns = 5
	require.NoError(t, v.View(context.Background(), []string{path}))

	assert.Equal(t, "名前\nabcde\n", out.String())
}

func TestViewer_descriptors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 4, 3))))
	imgPath := writeTestFile(t, dir, "pic.png", img.Bytes())

	pdf := pdftest.Document("", 2)
	pdfPath := writeTestFile(t, dir, "doc.pdf", pdf)

	var docx bytes.Buffer
	zw := zip.NewWriter(&docx)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body><w:p><w:r><w:t>Dear team,</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>see</w:t><w:br/><w:t>attached</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	docxPath := writeTestFile(t, dir, "memo.docx", docx.Bytes())

	var out bytes.Buffer
	require.NoError(t, newTestViewer(t, &out).View(context.Background(),
		[]string{imgPath, pdfPath, docxPath}))

	got := out.String()
	assert.Contains(t, got, "png image, 4x3 pixels, ")
	assert.Contains(t, got, fmt.Sprintf("PDF document, version 1.4, 2 pages, %d bytes", len(pdf)))
	assert.Contains(t, got, "Dear team,\nsee\nattached\n")
}

func TestViewer_errorsDoNotStopOthers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeTestFile(t, dir, "good.txt", []byte("fine\n"))
	missing := filepath.Join(dir, "missing.txt")

	var out bytes.Buffer
	err := newTestViewer(t, &out).View(context.Background(), []string{missing, good})
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "==> "+good+" <==\nfine\n", out.String())
}

func TestViewer_htmlClasses(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, t.TempDir(), "main.c", []byte("int x;\n"))

	var out bytes.Buffer
	v := newTestViewer(t, &out)
	v.Formatter = &render.HTML{UseClasses: true}
	require.NoError(t, v.View(context.Background(), []string{path}))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "<style>\n"), "style sheet must come first: %q", got)
	assert.Contains(t, got, "</style>\n<pre class=")
}

func TestViewer_kindOverride(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, t.TempDir(), "notes.txt", []byte("return x; // y\n"))

	var out bytes.Buffer
	v := newTestViewer(t, &out)
	v.Kind = preview.Code
	v.Formatter = &recordingFormatter{}
	require.NoError(t, v.View(context.Background(), []string{path}))

	lines := v.Formatter.(*recordingFormatter).lines
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], highlight.Span{Text: "// y", Category: highlight.Comment})
}

type recordingFormatter struct{ lines [][]highlight.Span }

func (f *recordingFormatter) Format(_ io.Writer, lines [][]highlight.Span) error {
	f.lines = append(f.lines, lines...)
	return nil
}

func TestDescribe_pdf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc  string
		pages int
		want  string
	}{
		{desc: "unknown", pages: 0, want: "PDF document, version 1.7, 10 bytes"},
		{desc: "single", pages: 1, want: "PDF document, version 1.7, 1 page, 10 bytes"},
		{desc: "many", pages: 12, want: "PDF document, version 1.7, 12 pages, 10 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got := describe(&preview.Preview{
				Kind:     preview.PDF,
				Size:     10,
				Document: &preview.DocumentInfo{Version: "1.7", Pages: tt.pages},
			})
			assert.Equal(t, tt.want, got)
		})
	}
}
