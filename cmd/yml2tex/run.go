package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alnah/go-yml2tex"
	"github.com/alnah/go-yml2tex/internal/config"
	"github.com/alnah/go-yml2tex/internal/fileutil"
	"github.com/alnah/go-yml2tex/internal/highlight"
	"github.com/alnah/go-yml2tex/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrReadOutline = errors.New("failed to read outline file")
	ErrWriteOutput = errors.New("failed to write output file")
	ErrBaseDir     = errors.New("include base directory not found")
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// runMain parses args, runs one conversion and returns the exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args[1:], env.Stderr)
	if err != nil {
		// pflag already printed the error and usage.
		return ExitUsage
	}
	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		printVersion(env.Stdout)
		return ExitSuccess
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	log := newLogger(env.Stderr, flags.verbose)
	if err := run(ctx, flags, positional, env, log); err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		if errors.Is(err, ErrUsage) {
			fmt.Fprintln(env.Stderr, "Run 'yml2tex --help' for usage.")
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// newLogger returns a text logger on w: warnings by default, everything
// when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run converts the single input file named in args.
func run(ctx context.Context, flags *cliFlags, args []string, env *Environment, log *slog.Logger) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one input file, got %d", ErrUsage, len(args))
	}
	inputPath := args[0]

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}
	checkStyle(cfg.Presentation.HighlightStyle, log)

	baseDir := resolveBaseDir(flags.baseDir, cfg)
	if baseDir != "" && !fileutil.DirExists(baseDir) {
		return fmt.Errorf("%w: %s%s", ErrBaseDir, baseDir, hints.ForBaseDir())
	}

	data, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrReadOutline, inputPath, err)
	}

	loader, err := yml2tex.NewAssetLoader(flags.templateDir)
	if err != nil {
		return err
	}

	conv, err := yml2tex.NewConverter(
		yml2tex.WithLogger(log),
		yml2tex.WithDefaults(defaultsFrom(cfg)),
		yml2tex.WithNow(env.Now),
		yml2tex.WithAssetLoader(loader),
	)
	if err != nil {
		return err
	}

	log.Debug("converting outline", "input", inputPath, "base_dir", baseDir, "output", flags.output)

	tex, err := conv.Convert(ctx, yml2tex.Input{Outline: data, SourceDir: baseDir})
	if err != nil {
		return withHint(err, baseDir)
	}

	return writeOutput(flags.output, tex, env)
}

// loadConfig loads the config named by nameOrPath, or returns the empty
// config when no name is given.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(nameOrPath) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
		}
		return nil, err
	}
	return cfg, nil
}

// checkStyle warns about a config highlight style chroma does not know.
func checkStyle(name string, log *slog.Logger) {
	if name == "" {
		return
	}
	if _, ok := highlight.LookupStyle(name); !ok {
		log.Warn("unknown highlight style in config",
			"style", name,
			"hint", strings.TrimPrefix(hints.ForUnknownStyle(highlight.StyleNames()), "\n  hint: "))
	}
}

// defaultsFrom builds the metadata defaults, applying config values over
// the built-in ones.
func defaultsFrom(cfg *config.Config) yml2tex.Metadata {
	meta := yml2tex.DefaultMetadata()
	p := cfg.Presentation
	if p.Title != "" {
		meta.Title = p.Title
	}
	if p.Author != "" {
		meta.Author = p.Author
	}
	if p.Institute != "" {
		meta.Institute = p.Institute
	}
	if p.Date != "" {
		meta.Date = p.Date
	}
	if p.HighlightStyle != "" {
		meta.HighlightStyle = p.HighlightStyle
	}
	if p.Outline != nil {
		meta.Outline = *p.Outline
	}
	return meta
}

// resolveBaseDir picks the include directory: flag, then config, then the
// working directory (empty).
func resolveBaseDir(flagDir string, cfg *config.Config) string {
	if flagDir != "" {
		return flagDir
	}
	return cfg.Include.BaseDir
}

// withHint appends an actionable hint to known conversion errors.
func withHint(err error, baseDir string) error {
	switch {
	case errors.Is(err, yml2tex.ErrIncludeRead):
		return fmt.Errorf("%w%s", err, hints.ForIncludeNotFound(baseDir))
	case errors.Is(err, yml2tex.ErrMalformedOutline):
		return fmt.Errorf("%w%s", err, hints.ForMalformedOutline())
	case errors.Is(err, yml2tex.ErrInvalidDate):
		return fmt.Errorf("%w%s", err, hints.ForInvalidDate())
	}
	return err
}

// writeOutput writes tex to stdout, or atomically to path.
func writeOutput(path string, tex []byte, env *Environment) error {
	if path == "" {
		if _, err := env.Stdout.Write(tex); err != nil {
			return fmt.Errorf("%w: stdout: %w", ErrWriteOutput, err)
		}
		return nil
	}
	if err := fileutil.WriteFileAtomic(path, tex, filePermissions); err != nil {
		return fmt.Errorf("%w %s: %w%s", ErrWriteOutput, path, err, hints.ForOutputDirectory())
	}
	return nil
}
