package yml2tex

import (
	"github.com/alnah/go-yml2tex/internal/assets"
)

// DefaultPreamble is the name of the built-in preamble template.
const DefaultPreamble = assets.DefaultPreambleName

// AssetLoader defines the contract for loading LaTeX templates.
// Implementations may load from the filesystem, embedded assets, a database, etc.
//
// Templates use [[ ]] delimiters and see .Title, .Author, .Institute, .Date,
// .Outline, .HighlightStyle and .StyleDefs.
type AssetLoader interface {
	// LoadTemplate loads a template by name (without .tex extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for a template directory.
// If dir is empty, returns a loader using only the embedded templates.
// Otherwise {dir}/{name}.tex takes precedence with fallback to embedded.
// Returns ErrInvalidAssetPath if dir is set but not a readable directory.
func NewAssetLoader(dir string) (AssetLoader, error) {
	if dir == "" {
		return assets.NewEmbeddedLoader(), nil
	}
	return assets.NewDirectoryLoader(dir)
}
