package preview

import (
	"bytes"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"regexp"

	"braces.dev/errtrace"
	"github.com/h2non/filetype"
	"github.com/ledongthuc/pdf"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ImageInfo describes an image attachment.
type ImageInfo struct {
	Format        string // e.g. "png"
	Width, Height int
}

func decodeImage(b []byte) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &ImageInfo{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// MediaInfo describes an audio or video attachment.
// Playback is up to the caller.
type MediaInfo struct {
	MIME string // empty if the format wasn't recognized
}

func sniffMedia(b []byte) *MediaInfo {
	t, err := filetype.Match(b)
	if err != nil || t == filetype.Unknown {
		return &MediaInfo{}
	}
	return &MediaInfo{MIME: t.MIME.Value}
}

// DocumentInfo describes a PDF or DOCX attachment.
type DocumentInfo struct {
	// Version is the PDF version from the file header, e.g. "1.7".
	// Empty for DOCX.
	Version string

	// Pages is the number of pages in a PDF document.
	// Zero if the page tree could not be read.
	Pages int

	// Paragraphs holds the text of a DOCX document,
	// one entry per paragraph.
	Paragraphs []string
}

// _pdfHeaderWindow is how far into a file the %PDF header may appear.
const _pdfHeaderWindow = 1024

var _pdfHeader = regexp.MustCompile(`%PDF-(\d+\.\d+)`)

// readPDF reads the header of a PDF document.
// start is the offset of the header in b.
func readPDF(b []byte) (_ *DocumentInfo, start int, _ error) {
	m := _pdfHeader.FindSubmatchIndex(b[:min(len(b), _pdfHeaderWindow)])
	if m == nil {
		return nil, 0, errtrace.Errorf("not a PDF file: missing %%PDF header")
	}
	return &DocumentInfo{Version: string(b[m[2]:m[3]])}, m[0], nil
}

// countPDFPages reads the page count from the document catalog
// of a PDF document that starts at the beginning of b.
func countPDFPages(b []byte) (n int, err error) {
	// The parser panics on some malformed input.
	defer func() {
		if r := recover(); r != nil {
			err = errtrace.Errorf("malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	return r.NumPage(), nil
}
