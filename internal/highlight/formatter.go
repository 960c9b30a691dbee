package highlight

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
)

// Verbatim environment delimiters. commandchars makes \, { and } active inside
// the environment so \PY commands are expanded.
const (
	verbatimBegin = `\begin{Verbatim}[commandchars=\\\{\}]`
	verbatimEnd   = `\end{Verbatim}`
)

// LaTeX is the formatter registered with chroma under the name "latex".
var LaTeX = formatters.Register("latex", &Formatter{})

// verbatimEscaper protects the characters that are active inside Verbatim.
var verbatimEscaper = strings.NewReplacer(
	`\`, `\PYZbs{}`,
	`{`, `\PYZob{}`,
	`}`, `\PYZcb{}`,
)

// Formatter renders a token stream as a Verbatim environment. The style is
// not used while formatting: colours live in the macro definitions produced
// by StyleDefs.
type Formatter struct{}

// Format implements chroma.Formatter.
func (f *Formatter) Format(w io.Writer, _ *chroma.Style, it chroma.Iterator) error {
	var b strings.Builder
	b.WriteString(verbatimBegin)
	b.WriteByte('\n')

	atLineStart := true
	for token := it(); token != chroma.EOF; token = it() {
		class := tokenClass(token.Type)
		lines := strings.Split(token.Value, "\n")
		for i, line := range lines {
			if i > 0 {
				b.WriteByte('\n')
				atLineStart = true
			}
			if line == "" {
				continue
			}
			writeToken(&b, class, line)
			atLineStart = false
		}
	}
	if !atLineStart {
		b.WriteByte('\n')
	}

	b.WriteString(verbatimEnd)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeToken(b *strings.Builder, class, text string) {
	text = verbatimEscaper.Replace(text)
	if class == "" {
		b.WriteString(text)
		return
	}
	b.WriteString(`\PY{`)
	b.WriteString(class)
	b.WriteString(`}{`)
	b.WriteString(text)
	b.WriteByte('}')
}

// tokenClass returns the short class name chroma uses for a token type,
// falling back to the sub-category and category. Unstyled text has none.
func tokenClass(tt chroma.TokenType) string {
	for _, t := range []chroma.TokenType{tt, tt.SubCategory(), tt.Category()} {
		if class, ok := chroma.StandardTypes[t]; ok {
			return class
		}
	}
	return ""
}

// Compile-time interface check.
var _ chroma.Formatter = (*Formatter)(nil)
