package beamer

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// Sentinel errors for preamble generation.
var (
	ErrPreambleTemplate = errors.New("invalid preamble template")
	ErrPreambleRender   = errors.New("preamble rendering failed")
)

// Template delimiters. Braces are LaTeX syntax, so the default {{ }} would
// collide with arguments such as \title{{{.Title}}}.
const (
	leftDelim  = "[["
	rightDelim = "]]"
)

// Preamble renders the document header from a template.
type Preamble struct {
	tmpl *template.Template
}

// preambleData is the template context.
type preambleData struct {
	Metadata
	StyleDefs string
}

// NewPreamble parses a header template. Templates use [[ ]] delimiters and
// see the Metadata fields plus .StyleDefs.
func NewPreamble(text string) (*Preamble, error) {
	tmpl, err := template.New("preamble").
		Delims(leftDelim, rightDelim).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPreambleTemplate, err)
	}
	return &Preamble{tmpl: tmpl}, nil
}

// Header renders the preamble for meta, inserting the highlighting macro
// definitions from styleDefs.
func (p *Preamble) Header(meta Metadata, styleDefs string) (string, error) {
	var b strings.Builder
	if err := p.tmpl.Execute(&b, preambleData{Metadata: meta, StyleDefs: styleDefs}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPreambleRender, err)
	}
	return b.String(), nil
}

// Footer closes the document.
func Footer() string {
	return "\n\\end{document}\n"
}
