package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/attview/internal/flagvalue"
	"go.abhg.dev/attview/internal/preview"
	"go.abhg.dev/attview/internal/render"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envPrefix is the prefix for environment variables
// that set flags: ATTVIEW_MAX_COLUMNS sets -max-columns.
const _envPrefix = "ATTVIEW"

// params holds all arguments for attview.
type params struct {
	version bool
	help    Help
	config  string

	Debug flagvalue.FileSwitch

	Format  outputFormat
	Style   string
	Classes bool

	Charset string
	Kind    preview.Kind
	Langs   []langAlias
	MaxSize int64

	Page       int
	PageSize   int
	MaxColumns int

	Files []string
}

// cliParser parses the command line arguments for attview.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("attview", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		UsageHelp.Write(cmd.Stderr)
	}

	p := params{Format: formatTerminal}

	// Output:
	flag.Var(&p.Format, "format", "")
	flag.StringVar(&p.Style, "style", render.DefaultStyleName, "")
	flag.BoolVar(&p.Classes, "classes", false, "")
	flag.IntVar(&p.Page, "page", 1, "")
	flag.IntVar(&p.PageSize, "page-size", 0, "")
	flag.IntVar(&p.MaxColumns, "max-columns", 0, "")

	// Loading:
	flag.StringVar(&p.Charset, "charset", preview.DefaultCharset, "")
	flag.Var(&p.Kind, "kind", "")
	flag.Var(flagvalue.ListOf(&p.Langs), "lang", "")
	flag.Int64Var(&p.MaxSize, "max-size", preview.DefaultMaxSize, "")

	// Program-level:
	flag.StringVar(&p.config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	if err := ff.Parse(flag, args,
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithEnvVarPrefix(_envPrefix),
	); err != nil {
		fmt.Fprintln(cmd.Stderr, err)
		return nil, errtrace.Wrap(err)
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "attview", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h formats"
		// instead of "-h=formats".
		// If the argument is a known help topic,
		// take it.
		if h := Help(strings.ToLower(args[0])); h.Known() {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if p.Page < 1 {
		fmt.Fprintln(cmd.Stderr, "-page must be at least 1.")
		return nil, errInvalidArguments
	}

	p.Files = args
	if len(p.Files) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide at least one file.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// outputFormat is the value of the -format flag.
type outputFormat string

const (
	formatTerminal outputFormat = "terminal"
	formatHTML     outputFormat = "html"
	formatPlain    outputFormat = "plain"
)

var _outputFormats = []outputFormat{formatTerminal, formatHTML, formatPlain}

var _ flag.Getter = (*outputFormat)(nil)

func (f *outputFormat) Get() any { return *f }

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, v := range _outputFormats {
		if string(v) == s {
			*f = v
			return nil
		}
	}
	return errtrace.Errorf("unknown format %q: valid values are %q", s, _outputFormats)
}

// langAlias is the value of a -lang flag.
// It highlights files with extension Ext in the named language.
type langAlias struct {
	Ext  string
	Lang string
}

var _ flag.Getter = (*langAlias)(nil)

func (la *langAlias) Get() any { return la }

func (la *langAlias) String() string {
	return fmt.Sprintf("%s=%s", la.Ext, la.Lang)
}

func (la *langAlias) Set(s string) error {
	ext, lang, ok := strings.Cut(s, "=")
	if !ok {
		return errtrace.New("expected form 'ext=language'")
	}

	ext, lang = strings.TrimSpace(ext), strings.TrimSpace(lang)
	if ext == "" || lang == "" {
		return errtrace.New("extension and language must not be empty")
	}

	la.Ext = ext
	la.Lang = lang
	return nil
}
