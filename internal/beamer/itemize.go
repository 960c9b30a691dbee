package beamer

import (
	"strings"

	"github.com/alnah/go-yml2tex/internal/outline"
)

// itemizeOverlay reveals one item per slide step and highlights the newest.
const itemizeOverlay = "[<+-| alert@+>]"

// Itemize renders items as an itemize environment. Nested items render their
// label as a bullet followed by a sub-list one tab deeper. Beamer itself
// supports three levels of nesting; deeper outlines render but will not
// typeset.
func Itemize(items []outline.Item) string {
	var b strings.Builder
	writeItemize(&b, items, 1)
	return b.String()
}

func writeItemize(b *strings.Builder, items []outline.Item, depth int) {
	indent := strings.Repeat("\t", depth)

	b.WriteString("\n" + indent + `\begin{itemize}` + itemizeOverlay)
	for _, it := range items {
		switch it := it.(type) {
		case outline.Leaf:
			b.WriteString("\n" + indent + `\item ` + Escape(it.Text))
		case outline.Nested:
			b.WriteString("\n" + indent + `\item ` + Escape(it.Label))
			writeItemize(b, it.Items, depth+1)
		}
	}
	b.WriteString("\n" + indent + `\end{itemize}`)
}
