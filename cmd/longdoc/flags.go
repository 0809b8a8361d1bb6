package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-longdoc/internal/config"
)

// ErrUnexpectedArgs is returned when positional arguments are given.
var ErrUnexpectedArgs = errors.New("unexpected arguments")

// cliFlags holds the parsed command line. The *Set fields record whether a
// flag was given explicitly, so that unset flags do not override env vars or
// the config file.
type cliFlags struct {
	input     string
	inputSet  bool
	output    string
	outputSet bool
	html      string
	htmlSet   bool
	config    string
	quiet     bool
	verbose   bool
	version   bool
}

// parseFlags parses args (without the program name). -h/--help prints usage
// to w and returns flag.ErrHelp.
func parseFlags(args []string, w io.Writer) (*cliFlags, error) {
	fs := flag.NewFlagSet("longdoc", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &cliFlags{}

	// I/O flags
	fs.StringVar(&f.input, "input", config.DefaultInput, "root path containing the topic folders")
	fs.StringVar(&f.output, "output", config.DefaultOutput, "combined Markdown file")
	fs.StringVar(&f.html, "html", "", "also write an HTML rendition to this file")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")

	// Output control
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug messages")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArgs, fs.Args())
	}

	f.inputSet = fs.Changed("input")
	f.outputSet = fs.Changed("output")
	f.htmlSet = fs.Changed("html")

	return f, nil
}

// applyFlags overrides config values with explicitly given flags.
func applyFlags(f *cliFlags, cfg *config.Config) {
	if f.inputSet {
		cfg.Input = f.input
	}
	if f.outputSet {
		cfg.Output = f.output
	}
	if f.htmlSet {
		cfg.HTML.Output = f.html
	}
}
