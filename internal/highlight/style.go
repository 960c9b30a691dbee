package highlight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyleName is the style used for "default" and empty style names.
// It is chroma's port of the default Pygments palette.
const DefaultStyleName = "pygments"

// styleMacros defines \PY and the helpers every \PY@tok@ definition relies on.
const styleMacros = `\def\PY@reset{\let\PY@it=\relax \let\PY@bf=\relax%
    \let\PY@ul=\relax \let\PY@tc=\relax%
    \let\PY@bc=\relax \let\PY@ff=\relax}
\def\PY@tok#1{\csname PY@tok@#1\endcsname}
\def\PY@toks#1+{\ifx\relax#1\empty\else%
    \PY@tok{#1}\expandafter\PY@toks\fi}
\def\PY@do#1{\PY@bc{\PY@tc{\PY@ul{%
    \PY@it{\PY@bf{\PY@ff{#1}}}}}}}
\def\PY#1#2{\PY@reset\PY@toks#1+\relax+\PY@do{#2}}
`

// escapeMacros back the replacements made by Formatter.
const escapeMacros = "\\def\\PYZbs{\\char`\\\\}\n" +
	"\\def\\PYZob{\\char`\\{}\n" +
	"\\def\\PYZcb{\\char`\\}}\n"

// LookupStyle resolves a style name. "default" and "" map to
// DefaultStyleName. Unknown names return chroma's fallback style and false.
func LookupStyle(name string) (*chroma.Style, bool) {
	if name == "" || name == "default" {
		name = DefaultStyleName
	}
	if style, ok := styles.Registry[name]; ok {
		return style, true
	}
	return styles.Fallback, false
}

// StyleNames lists the registered style names, sorted.
func StyleNames() []string {
	names := styles.Names()
	sort.Strings(names)
	return names
}

// StyleDefs returns the LaTeX macro definitions for a chroma style.
// Classes the style leaves undecorated get no definition, and \PY ignores
// them. Output is sorted by class name so it is stable across runs.
func StyleDefs(style *chroma.Style) string {
	var b strings.Builder
	b.WriteString("\\makeatletter\n")
	b.WriteString(styleMacros)
	b.WriteByte('\n')

	bg := style.Get(chroma.Background)
	for _, tc := range styledClasses() {
		body := tokenMacro(style.Get(tc.tokenType), bg)
		if body == "" {
			continue
		}
		fmt.Fprintf(&b, "\\expandafter\\def\\csname PY@tok@%s\\endcsname{%s}\n", tc.class, body)
	}

	b.WriteByte('\n')
	b.WriteString(escapeMacros)
	b.WriteString("\\makeatother")
	return b.String()
}

type tokenClassName struct {
	tokenType chroma.TokenType
	class     string
}

// styledClasses lists token types that carry a class name, one per class.
func styledClasses() []tokenClassName {
	seen := make(map[string]bool)
	var out []tokenClassName
	for tt, class := range chroma.StandardTypes {
		if tt < 0 || class == "" || seen[class] {
			continue
		}
		seen[class] = true
		out = append(out, tokenClassName{tokenType: tt, class: class})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].class < out[j].class })
	return out
}

// tokenMacro builds the body of one \PY@tok@ definition.
func tokenMacro(e, bg chroma.StyleEntry) string {
	var parts []string
	if e.Bold == chroma.Yes {
		parts = append(parts, `\let\PY@bf=\textbf`)
	}
	if e.Italic == chroma.Yes {
		parts = append(parts, `\let\PY@it=\textit`)
	}
	if e.Underline == chroma.Yes {
		parts = append(parts, `\let\PY@ul=\underline`)
	}
	if e.Colour.IsSet() && e.Colour != bg.Colour {
		parts = append(parts, fmt.Sprintf(`\def\PY@tc##1{\textcolor[rgb]{%s}{##1}}`, rgb(e.Colour)))
	}
	if e.Background.IsSet() && e.Background != bg.Background {
		parts = append(parts, fmt.Sprintf(`\def\PY@bc##1{\setlength{\fboxsep}{0pt}\colorbox[rgb]{%s}{\strut ##1}}`, rgb(e.Background)))
	}
	return strings.Join(parts, "")
}

func rgb(c chroma.Colour) string {
	return fmt.Sprintf("%.2f,%.2f,%.2f",
		float64(c.Red())/255, float64(c.Green())/255, float64(c.Blue())/255)
}
