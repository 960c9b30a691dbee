package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	output      string
	config      string
	baseDir     string
	templateDir string
	verbose     bool
	version     bool
	help        bool
}

// parseFlags parses args (without the program name) and returns the flags
// and the remaining positional arguments.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("yml2tex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output .tex file (default stdout)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.baseDir, "base-dir", "", "directory include paths are relative to")
	fs.StringVar(&f.templateDir, "template-dir", "", "directory with a custom preamble.tex")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug output to stderr")
	fs.BoolVar(&f.version, "version", false, "show version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help and exit")

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
