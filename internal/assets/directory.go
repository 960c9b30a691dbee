package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirectoryLoader loads templates from {dir}/{name}.tex and falls back to
// the embedded templates for names the directory does not provide, so a
// directory overriding only the preamble is enough.
type DirectoryLoader struct {
	dir      string
	fallback AssetLoader
}

// NewDirectoryLoader creates a DirectoryLoader rooted at dir.
// Returns ErrInvalidBasePath if dir is not a readable directory.
func NewDirectoryLoader(dir string) (*DirectoryLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if real, err := filepath.EvalSymlinks(absDir); err == nil {
		absDir = real
	}

	info, err := os.Stat(absDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absDir)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absDir)
	}

	return &DirectoryLoader{dir: absDir, fallback: NewEmbeddedLoader()}, nil
}

// LoadTemplate reads {dir}/{name}.tex, or the embedded template of that
// name when the file does not exist.
func (d *DirectoryLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(d.dir, name+".tex")
	if err := d.contain(path); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- path validated above
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return d.fallback.LoadTemplate(name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// contain rejects paths that resolve, through symlinks, outside d.dir.
func (d *DirectoryLoader) contain(path string) error {
	if real, err := filepath.EvalSymlinks(path); err == nil {
		path = real
	}
	if !strings.HasPrefix(path, d.dir+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes template directory", ErrPathTraversal)
	}
	return nil
}

// Compile-time interface check.
var _ AssetLoader = (*DirectoryLoader)(nil)
