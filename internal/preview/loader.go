package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"braces.dev/errtrace"
	gocache "github.com/patrickmn/go-cache"
	"go.abhg.dev/attview/internal/errdefer"
	"go.abhg.dev/attview/internal/grammar"
	"go.abhg.dev/attview/internal/highlight"
	"go.abhg.dev/attview/internal/linebuf"
	"golang.org/x/text/transform"
)

// StdinPath is the path that stands for standard input.
const StdinPath = "-"

// ErrTooLarge indicates that an attachment exceeds the loader's size limit.
var ErrTooLarge = errors.New("attachment too large")

const (
	// DefaultMaxSize is the largest attachment read in full by default.
	DefaultMaxSize = 16 << 20 // 16 MiB

	// _headSize is the number of bytes read to detect the kind of a file.
	// Audio and video attachments are never read past this.
	_headSize = 8 << 10

	_cacheExpiration      = 10 * time.Minute
	_cacheCleanupInterval = 30 * time.Minute
)

// Request specifies an attachment to load.
type Request struct {
	Path string // required

	// Kind of the attachment.
	// If Unknown, it's detected from the file.
	Kind Kind

	// Charset of Text and Code attachments.
	// Defaults to DefaultCharset.
	Charset string
}

// Result is the outcome of an asynchronous load.
type Result struct {
	Preview *Preview
	Err     error
}

// Loader loads attachment previews.
// It's safe for concurrent use.
type Loader struct {
	// Registry of grammars used to detect and highlight code.
	// Defaults to grammar.Builtin().
	Registry *grammar.Registry

	// MaxSize is the largest file, in bytes, that will be read in full.
	// Defaults to DefaultMaxSize.
	MaxSize int64

	// Log receives debug messages, if set.
	Log *log.Logger

	// Stdin is read for the path [StdinPath].
	// Defaults to os.Stdin.
	Stdin io.Reader

	once    sync.Once
	reg     *grammar.Registry
	log     *log.Logger
	stdin   io.Reader
	maxSize int64
	cache   *gocache.Cache
}

func (l *Loader) init() {
	l.once.Do(func() {
		l.reg = l.Registry
		if l.reg == nil {
			l.reg = grammar.Builtin()
		}
		l.log = l.Log
		if l.log == nil {
			l.log = log.New(io.Discard, "", 0)
		}
		l.stdin = l.Stdin
		if l.stdin == nil {
			l.stdin = os.Stdin
		}
		l.maxSize = l.MaxSize
		if l.maxSize <= 0 {
			l.maxSize = DefaultMaxSize
		}
		l.cache = gocache.New(_cacheExpiration, _cacheCleanupInterval)
	})
}

// LoadAsync loads an attachment on a separate goroutine.
// The returned channel receives exactly one Result.
func (l *Loader) LoadAsync(ctx context.Context, req Request) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		p, err := l.Load(ctx, req)
		out <- Result{Preview: p, Err: err}
	}()
	return out
}

// Load loads an attachment.
//
// The file is read and processed on a separate goroutine,
// and Load returns early with the context's error if ctx ends first.
// Results are cached until the file changes.
//
// The path [StdinPath] reads from the loader's Stdin instead.
// Those results are never cached.
func (l *Loader) Load(ctx context.Context, req Request) (*Preview, error) {
	l.init()

	if req.Path == StdinPath {
		p, err := l.background(ctx, req, func() (*Preview, error) {
			return l.loadStream(ctx, req, l.stdin)
		})
		return p, errtrace.Wrap(err)
	}

	info, err := os.Stat(req.Path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if info.IsDir() {
		return nil, errtrace.Errorf("%v: is a directory", req.Path)
	}

	key := cacheKey(req, info)
	if v, ok := l.cache.Get(key); ok {
		if p, ok := v.(*Preview); ok {
			l.log.Printf("cache hit: %v", req.Path)
			return p, nil
		}
	}

	p, err := l.background(ctx, req, func() (*Preview, error) {
		return l.load(ctx, req, info.Size())
	})
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	l.cache.SetDefault(key, p)
	return p, nil
}

// background runs load on a separate goroutine,
// returning early if ctx ends first.
func (l *Loader) background(ctx context.Context, req Request, load func() (*Preview, error)) (*Preview, error) {
	done := make(chan Result, 1)
	go func() {
		start := time.Now()
		p, err := load()
		if err == nil {
			l.log.Printf("loaded %v (%v, %d bytes) in %v", req.Path, p.Kind, p.Size, time.Since(start))
		}
		done <- Result{Preview: p, Err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, errtrace.Wrap(ctx.Err())
	case res := <-done:
		return res.Preview, errtrace.Wrap(res.Err)
	}
}

func cacheKey(req Request, info os.FileInfo) string {
	path := req.Path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	charset := strings.ToUpper(req.Charset)
	if charset == "" {
		charset = DefaultCharset
	}
	return fmt.Sprintf("%s\x00%d\x00%d\x00%s\x00%d",
		path, info.ModTime().UnixNano(), info.Size(), charset, req.Kind)
}

func (l *Loader) load(ctx context.Context, req Request, size int64) (_ *Preview, err error) {
	f, err := os.Open(req.Path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	head, err := readHead(f)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	p, err := l.start(req, head)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	p.Size = size
	if p.Kind == Audio || p.Kind == Video {
		p.Media = sniffMedia(head)
		return p, nil
	}

	if size > l.maxSize {
		return nil, errtrace.Errorf("%v: %w: %d bytes exceeds limit of %d", req.Path, ErrTooLarge, size, l.maxSize)
	}
	rest, err := io.ReadAll(f)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err := l.fill(ctx, p, req, append(head, rest...)); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return p, nil
}

// loadStream loads an attachment from r.
//
// Text and Code are decoded and classified line by line as they're read.
// Other kinds are read in full.
func (l *Loader) loadStream(ctx context.Context, req Request, r io.Reader) (*Preview, error) {
	head, err := readHead(r)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	p, err := l.start(req, head)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	src := &countingReader{r: io.LimitReader(io.MultiReader(bytes.NewReader(head), r), l.maxSize+1)}
	tooLarge := func() error {
		return errtrace.Errorf("%v: %w: exceeds limit of %d bytes", req.Path, ErrTooLarge, l.maxSize)
	}

	switch p.Kind {
	case Text, Code:
		if err := l.streamText(p, req, src); err != nil {
			return nil, errtrace.Wrap(err)
		}
		if src.n > l.maxSize {
			return nil, tooLarge()
		}
		p.Size = src.n
		return p, nil

	case Audio, Video:
		p.Media = sniffMedia(head)
		// Only the size is needed.
		n, err := io.Copy(io.Discard, io.MultiReader(bytes.NewReader(head), r))
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		p.Size = n
		return p, nil
	}

	body, err := io.ReadAll(src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if src.n > l.maxSize {
		return nil, tooLarge()
	}
	p.Size = src.n
	if err := l.fill(ctx, p, req, body); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return p, nil
}

// readHead reads up to _headSize bytes for kind detection.
func readHead(r io.Reader) ([]byte, error) {
	head := make([]byte, _headSize)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, errtrace.Wrap(err)
	}
	return head[:n], nil
}

// start begins a preview of the requested attachment,
// detecting its kind from head if needed.
func (l *Loader) start(req Request, head []byte) (*Preview, error) {
	kind := req.Kind
	if kind == Unknown {
		var err error
		kind, err = DetectKind(l.reg, req.Path, head)
		if err != nil {
			return nil, errtrace.Errorf("%v: %w", req.Path, err)
		}
	}
	return &Preview{Path: req.Path, Kind: kind}, nil
}

// fill fills in the preview from the full contents of the attachment.
func (l *Loader) fill(ctx context.Context, p *Preview, req Request, body []byte) (err error) {
	switch p.Kind {
	case Text, Code:
		return errtrace.Wrap(l.loadText(ctx, p, req, body))
	case Image:
		if p.Image, err = decodeImage(body); err != nil {
			return errtrace.Errorf("%v: %w", req.Path, err)
		}
	case PDF:
		var start int
		if p.Document, start, err = readPDF(body); err != nil {
			return errtrace.Errorf("%v: %w", req.Path, err)
		}
		if p.Document.Pages, err = countPDFPages(body[start:]); err != nil {
			l.log.Printf("%v: page count unavailable: %v", req.Path, err)
		}
	case DOCX:
		if p.Document, err = readDOCX(body); err != nil {
			return errtrace.Errorf("%v: %w", req.Path, err)
		}
	default:
		return errtrace.Errorf("%v: %w: %v", req.Path, ErrUnknownKind, p.Kind)
	}
	return nil
}

func (l *Loader) loadText(ctx context.Context, p *Preview, req Request, body []byte) error {
	p.Charset = req.Charset
	if p.Charset == "" {
		p.Charset = DefaultCharset
	}

	content, err := Decode(body, p.Charset)
	if err != nil {
		return errtrace.Wrap(err)
	}
	lines := splitLines(content)

	if !p.Kind.Highlighted() {
		p.Lines = plainLines(lines)
		return nil
	}

	g := l.reg.ForPath(req.Path)
	p.Language = g.Name
	p.Lines, err = highlight.HighlightLines(ctx, lines, g)
	return errtrace.Wrap(err)
}

// streamText decodes and classifies Text and Code from r
// one line at a time.
func (l *Loader) streamText(p *Preview, req Request, r io.Reader) (err error) {
	p.Charset = req.Charset
	if p.Charset == "" {
		p.Charset = DefaultCharset
	}
	enc, err := lookupCharset(p.Charset)
	if err != nil {
		return errtrace.Wrap(err)
	}

	var (
		w    io.Writer
		done func()
	)
	if p.Kind.Highlighted() {
		g := l.reg.ForPath(req.Path)
		p.Language = g.Name
		w, done = highlight.NewWriter(g, func(_ int, spans []highlight.Span) {
			p.Lines = append(p.Lines, spans)
		})
	} else {
		w, done = linebuf.Writer(func(line []byte) {
			p.Lines = append(p.Lines, plainLine(string(line)))
		})
	}

	if _, err := io.Copy(w, transform.NewReader(r, enc.NewDecoder())); err != nil {
		return errtrace.Errorf("decode %v: %w", p.Charset, err)
	}
	done()

	// Empty input is a single empty line, as with splitLines.
	if len(p.Lines) == 0 {
		p.Lines = [][]highlight.Span{nil}
	}
	return nil
}

// countingReader counts the bytes read through it.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(b []byte) (int, error) {
	n, err := c.r.Read(b)
	c.n += int64(n)
	return n, err
}
