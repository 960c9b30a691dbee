package highlight

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// ErrHighlight indicates tokenising or formatting a source file failed.
var ErrHighlight = errors.New("syntax highlighting failed")

// Highlighter turns source files into highlighted Verbatim markup.
type Highlighter struct {
	formatter chroma.Formatter
	log       *slog.Logger
}

// New creates a Highlighter using the LaTeX formatter.
// A nil logger discards lexer selection messages.
func New(log *slog.Logger) *Highlighter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Highlighter{formatter: LaTeX, log: log}
}

// Highlight tokenises source with the lexer matching filename and returns
// the formatted Verbatim environment.
func (h *Highlighter) Highlight(filename, source string) (string, error) {
	lexer := LexerFor(filename)
	h.log.Debug("highlighting source", "file", filename, "lexer", lexer.Config().Name)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrHighlight, filename, err)
	}

	var b strings.Builder
	if err := h.formatter.Format(&b, nil, it); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrHighlight, filename, err)
	}
	return b.String(), nil
}

// LexerFor returns the registered lexer claiming filename, or the plain-text
// fallback lexer when none does.
func LexerFor(filename string) chroma.Lexer {
	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}
