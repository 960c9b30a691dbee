// Package outline holds the presentation outline model and its YAML loader.
//
// An outline is an ordered tree: sections contain subsections, subsections
// contain frames, frames contain items. Order is always the authored order
// and titles may repeat at any level. Frames and items are closed variants
// built once by the loader, so renderers switch on type instead of sniffing
// strings.
package outline

// MetasKey is the reserved key of the optional leading metadata entry.
const MetasKey = "metas"

// Frame directive prefixes.
const (
	IncludePrefix = "include"
	ImagePrefix   = "image"
)

// Document is a loaded outline.
type Document struct {
	Metas    []Pair // Leading "metas" entries, empty when absent
	Sections []Section
}

// Section is a top-level heading and its subsections.
type Section struct {
	Title       string
	Subsections []Subsection
}

// Subsection groups frames under a section.
type Subsection struct {
	Title  string
	Frames []Frame
}

// Pair is a key/value entry of an ordered mapping.
type Pair struct {
	Key   string
	Value any
}

// Frame is one slide. Implementations: *TextFrame, *CodeFrame, *ImageFrame.
type Frame interface {
	frame()
}

// TextFrame is a titled bullet list.
type TextFrame struct {
	Title string
	Items []Item
}

// CodeFrame shows the highlighted contents of a source file.
type CodeFrame struct {
	Path string
}

// ImageFrame embeds an image scaled by Options.
type ImageFrame struct {
	Path    string
	Options []Pair
}

func (*TextFrame) frame()  {}
func (*CodeFrame) frame()  {}
func (*ImageFrame) frame() {}

// Item is one list entry. Implementations: Leaf, Nested.
type Item interface {
	item()
}

// Leaf is a plain bullet.
type Leaf struct {
	Text string
}

// Nested is a bullet followed by its own sub-list.
type Nested struct {
	Label string
	Items []Item
}

func (Leaf) item()   {}
func (Nested) item() {}

// Stats counts the nodes of a document.
type Stats struct {
	Sections    int
	Subsections int
	Frames      int
	CodeFrames  int
	ImageFrames int
}

// Stats walks the document and counts its nodes.
func (d *Document) Stats() Stats {
	var s Stats
	for _, sec := range d.Sections {
		s.Sections++
		for _, sub := range sec.Subsections {
			s.Subsections++
			for _, f := range sub.Frames {
				s.Frames++
				switch f.(type) {
				case *CodeFrame:
					s.CodeFrames++
				case *ImageFrame:
					s.ImageFrames++
				}
			}
		}
	}
	return s
}
