package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/alnah/go-yml2tex/internal/beamer"
	"github.com/alnah/go-yml2tex/internal/highlight"
	"github.com/alnah/go-yml2tex/internal/outline"
)

// Assembler turns a Document into a complete Beamer source file.
type Assembler struct {
	preamble *beamer.Preamble
	frames   *beamer.FrameRenderer
	log      *slog.Logger
}

// NewAssembler creates an Assembler. A nil logger discards messages.
func NewAssembler(preamble *beamer.Preamble, frames *beamer.FrameRenderer, log *slog.Logger) *Assembler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Assembler{preamble: preamble, frames: frames, log: log}
}

// Assemble renders doc with the already resolved meta. An unknown highlight
// style falls back to chroma's fallback style with a warning. Any frame
// error aborts assembly and nothing is returned.
func (a *Assembler) Assemble(ctx context.Context, doc *outline.Document, meta beamer.Metadata) ([]byte, error) {
	style, ok := highlight.LookupStyle(meta.HighlightStyle)
	if !ok {
		a.log.Warn("unknown highlight style, using fallback",
			"style", meta.HighlightStyle, "fallback", style.Name)
	}

	header, err := a.preamble.Header(meta, highlight.StyleDefs(style))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(header)

	for _, sec := range doc.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a.log.Debug("rendering section", "title", sec.Title, "subsections", len(sec.Subsections))

		buf.WriteString(beamer.Section(sec.Title))
		for _, sub := range sec.Subsections {
			buf.WriteString(beamer.Subsection(sub.Title))
			for i, f := range sub.Frames {
				out, err := a.frames.Render(f)
				if err != nil {
					return nil, fmt.Errorf("section %q > subsection %q > frame %d: %w",
						sec.Title, sub.Title, i+1, err)
				}
				buf.WriteString(out)
			}
		}
	}

	buf.WriteString(beamer.Footer())
	return buf.Bytes(), nil
}
