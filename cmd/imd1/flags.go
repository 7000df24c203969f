package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlag wraps flag parsing failures other than a help request.
var ErrInvalidFlag = errors.New("invalid flag")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// assetFlags holds styling and template flags.
type assetFlags struct {
	style     string // style name, CSS file path, or inline CSS
	css       string // extra CSS file appended after the style
	template  string // template set for the document layout
	assetPath string // override asset directory
}

// metaFlags holds metadata output flags.
type metaFlags struct {
	print      bool // print metadata per file
	sidecar    bool // write <output>.meta
	version    int  // sidecar wire version (0 = config or current)
	skipHidden bool // do not write hidden documents
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	format  string
	layout  string
	assets  assetFlags
	meta    metaFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended after the style")
	fs.StringVar(&f.template, "template", "", "template set for --layout document")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addMetaFlags adds metadata flags to a FlagSet.
func addMetaFlags(fs *flag.FlagSet, f *metaFlags) {
	fs.BoolVar(&f.print, "meta", false, "print extracted metadata per file")
	fs.BoolVar(&f.sidecar, "meta-out", false, "write a binary .meta file next to each output")
	fs.IntVar(&f.version, "meta-version", 0, "metadata wire version: 1, 2 (0 = current)")
	fs.BoolVar(&f.skipHidden, "skip-hidden", false, "do not write documents marked hidden")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.format, "to", "t", "", "output format: html, latex")
	fs.StringVar(&f.layout, "layout", "", "output layout: fragment, body, document")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	addMetaFlags(fs, &f.meta)

	fs.Usage = func() { printConvertUsage(stderr) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseFlagSet parses args, wrapping errors with ErrInvalidFlag. A help
// request is returned as flag.ErrHelp.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
}
