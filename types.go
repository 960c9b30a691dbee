package yml2tex

import (
	"log/slog"
	"time"

	"github.com/alnah/go-yml2tex/internal/beamer"
)

// Input contains conversion parameters.
type Input struct {
	Outline   []byte // YAML outline (required)
	SourceDir string // Directory include paths are relative to (optional, default working directory)
}

// Metadata holds the deck options a document's metas entry can set.
// Title block fields are emitted as written and may contain LaTeX.
type Metadata = beamer.Metadata

// DefaultMetadata returns the built-in defaults: title "Example
// Presentation", date \today, outline on, default highlight style.
func DefaultMetadata() Metadata {
	return beamer.DefaultMetadata()
}

// FileReader reads the files named by code frames.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	log      *slog.Logger
	defaults Metadata
	files    FileReader
	now      func() time.Time
}

// WithLogger sets the logger for warnings and debug output.
// By default nothing is logged.
func WithLogger(log *slog.Logger) Option {
	return func(c *Converter) {
		if log != nil {
			c.cfg.log = log
		}
	}
}

// WithDefaults replaces the metadata used for options the outline's metas
// entry does not set.
func WithDefaults(meta Metadata) Option {
	return func(c *Converter) {
		c.cfg.defaults = meta
	}
}

// WithFileReader sets the reader for code frame includes. It takes
// precedence over Input.SourceDir.
func WithFileReader(r FileReader) Option {
	return func(c *Converter) {
		c.cfg.files = r
	}
}

// WithNow sets the clock used to expand "auto" dates.
// Panics if now is nil (programmer error).
func WithNow(now func() time.Time) Option {
	if now == nil {
		panic("yml2tex: WithNow clock must not be nil")
	}
	return func(c *Converter) {
		c.cfg.now = now
	}
}

// WithAssetLoader sets the loader the preamble template is read from.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.assetLoader = loader
	}
}
