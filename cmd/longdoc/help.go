package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: longdoc [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Concatenate a documentation tree into one Markdown file with an index.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "      --input <path>        Root containing the topic folders (default \"./\")")
	fmt.Fprintln(w, "      --output <path>       Combined Markdown file (default \"README.md\")")
	fmt.Fprintln(w, "      --html <path>         Also write an HTML rendition")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug messages")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  LONGDOC_CONFIG, LONGDOC_INPUT, LONGDOC_OUTPUT, LONGDOC_HTML")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// printVersion prints the version line.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "longdoc %s\n", Version)
}
