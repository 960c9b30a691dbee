package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: yml2tex [flags] <input.yml>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a YAML slide outline to a LaTeX Beamer document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .tex file (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --base-dir <dir>      Directory include paths are relative to")
	fmt.Fprintln(w, "      --template-dir <dir>  Directory with a custom preamble.tex")
	fmt.Fprintln(w, "  -v, --verbose             Log debug output to stderr")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Outline metas:")
	fmt.Fprintln(w, "  title, author, institute  Title block (LaTeX allowed)")
	fmt.Fprintln(w, "  date                      Literal, \"auto\", or \"auto:FORMAT\"")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "  outline                   Outline frames (default: true)")
	fmt.Fprintln(w, "  highlight_style           chroma style for code frames (default: default)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Frame titles:")
	fmt.Fprintln(w, "  include <path>            Highlighted source file")
	fmt.Fprintln(w, "  image <path>              Picture; the frame's mapping gives \\pgfimage options")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success")
	fmt.Fprintln(w, "  1  unexpected error")
	fmt.Fprintln(w, "  2  invalid usage, config or outline")
	fmt.Fprintln(w, "  3  input, include or output file error")
}

// printVersion prints the version line.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "yml2tex %s\n", Version)
}
