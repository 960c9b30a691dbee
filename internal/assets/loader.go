package assets

// AssetLoader defines the contract for loading LaTeX templates.
// Implementations may load from embedded assets, filesystem, database, etc.
type AssetLoader interface {
	// LoadTemplate loads a template by name (without .tex extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
