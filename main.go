// attview previews attachments in a terminal or as HTML,
// with syntax highlighting for source code.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2/styles"
	"go.abhg.dev/attview/internal/errdefer"
	"go.abhg.dev/attview/internal/grammar"
	"go.abhg.dev/attview/internal/preview"
	"go.abhg.dev/attview/internal/render"
)

// _version is set at build time with -ldflags.
var _version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	exitCode := cmd.Run(ctx, os.Args[1:])
	stop()
	os.Exit(exitCode)
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(ctx context.Context, args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(ctx, opts); err != nil {
		cmd.log.Printf("attview: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(ctx context.Context, opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Run(&err, closeDebug)
	debugLog := log.New(debugw, "", 0)

	reg := grammar.Builtin()
	for _, la := range opts.Langs {
		reg, err = reg.Alias(la.Ext, la.Lang)
		if err != nil {
			return errtrace.Errorf("-lang %v: %w", la.String(), err)
		}
	}

	formatter, err := opts.formatter(cmd.Stdout)
	if err != nil {
		return errtrace.Wrap(err)
	}

	viewer := Viewer{
		Log: debugLog,
		Loader: &preview.Loader{
			Registry: reg,
			MaxSize:  opts.MaxSize,
			Log:      debugLog,
			Stdin:    cmd.Stdin,
		},
		Formatter:  formatter,
		Out:        cmd.Stdout,
		Charset:    opts.Charset,
		Kind:       opts.Kind,
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		MaxColumns: opts.MaxColumns,
	}
	return errtrace.Wrap(viewer.View(ctx, opts.Files))
}

// formatter builds the formatter requested on the command line.
func (p *params) formatter(stdout io.Writer) (render.Formatter, error) {
	switch p.Format {
	case formatHTML:
		style, ok := styles.Registry[p.Style]
		if !ok {
			return nil, errtrace.Errorf("unknown style %q: valid values are %q", p.Style, styles.Names())
		}
		return &render.HTML{Style: style, UseClasses: p.Classes}, nil
	case formatPlain:
		return render.Plain{}, nil
	default:
		return &render.Terminal{Profile: render.ProfileFor(stdout)}, nil
	}
}
