package yml2tex

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alnah/go-yml2tex/internal/assets"
	"github.com/alnah/go-yml2tex/internal/beamer"
	"github.com/alnah/go-yml2tex/internal/fileutil"
	"github.com/alnah/go-yml2tex/internal/highlight"
	"github.com/alnah/go-yml2tex/internal/outline"
	"github.com/alnah/go-yml2tex/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ beamer.Highlighter = (*highlight.Highlighter)(nil)
	_ FileReader         = fileutil.DirReader{}
	_ AssetLoader        = (*assets.EmbeddedLoader)(nil)
	_ AssetLoader        = (*assets.DirectoryLoader)(nil)
)

// Converter turns outlines into Beamer documents.
// A Converter holds no per-document state and is safe for concurrent use.
type Converter struct {
	cfg         converterConfig
	assetLoader AssetLoader
	preamble    *beamer.Preamble
	highlighter *highlight.Highlighter
}

// NewConverter creates a Converter with the built-in preamble and defaults.
// Returns error if the preamble template cannot be loaded or parsed.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			log:      slog.New(slog.DiscardHandler),
			defaults: DefaultMetadata(),
			now:      time.Now,
		},
		assetLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(c)
	}

	text, err := c.assetLoader.LoadTemplate(DefaultPreamble)
	if err != nil {
		return nil, fmt.Errorf("loading preamble template: %w", err)
	}
	c.preamble, err = beamer.NewPreamble(text)
	if err != nil {
		return nil, err
	}
	c.highlighter = highlight.New(c.cfg.log)

	return c, nil
}

// Convert renders input.Outline as a complete Beamer document.
// The whole document is built in memory and returned only on success.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (tex []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := outline.Parse(input.Outline, c.cfg.log)
	if err != nil {
		return nil, err
	}

	meta, err := pipeline.ResolveMetadata(doc.Metas, c.cfg.defaults, c.cfg.now(), c.cfg.log)
	if err != nil {
		return nil, err
	}

	frames := beamer.NewFrameRenderer(c.fileReader(input), c.highlighter)
	out, err := pipeline.NewAssembler(c.preamble, frames, c.cfg.log).Assemble(ctx, doc, meta)
	if err != nil {
		return nil, err
	}

	stats := doc.Stats()
	c.cfg.log.Debug("outline converted",
		"sections", stats.Sections,
		"subsections", stats.Subsections,
		"frames", stats.Frames,
		"code_frames", stats.CodeFrames,
		"image_frames", stats.ImageFrames,
		"bytes", len(out))

	return out, nil
}

// fileReader returns the configured reader, or one rooted at input.SourceDir.
func (c *Converter) fileReader(input Input) FileReader {
	if c.cfg.files != nil {
		return c.cfg.files
	}
	return fileutil.DirReader{Dir: input.SourceDir}
}
