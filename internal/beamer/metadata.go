package beamer

// Default metadata values.
const (
	DefaultTitle          = "Example Presentation"
	DefaultDate           = `\today`
	DefaultHighlightStyle = "default"
)

// Metadata holds the presentation-level options of a deck. Title block
// fields are emitted as written, so they may contain LaTeX commands.
type Metadata struct {
	Title          string
	Author         string
	Institute      string
	Date           string
	Outline        bool   // Emit an outline frame and a per-section outline
	HighlightStyle string // chroma style name, "default" for the Pygments palette
}

// DefaultMetadata returns the metadata used when a document sets no options.
func DefaultMetadata() Metadata {
	return Metadata{
		Title:          DefaultTitle,
		Date:           DefaultDate,
		Outline:        true,
		HighlightStyle: DefaultHighlightStyle,
	}
}
