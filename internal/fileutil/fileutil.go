// Package fileutil provides the file access used around a conversion:
// reading code frame includes, writing the output file, path helpers.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyPath indicates an empty file name.
var ErrEmptyPath = errors.New("path cannot be empty")

// DirReader reads files relative to Dir. Absolute names are read as given.
// An empty Dir resolves relative names against the working directory.
type DirReader struct {
	Dir string
}

// ReadFile reads name, joined to r.Dir when relative.
func (r DirReader) ReadFile(name string) ([]byte, error) {
	if name == "" {
		return nil, ErrEmptyPath
	}
	return os.ReadFile(r.Resolve(name)) // #nosec G304 -- include paths come from the user's outline
}

// Resolve returns the path ReadFile would open for name.
func (r DirReader) Resolve(name string) string {
	if r.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(r.Dir, name)
}

// WriteFileAtomic writes data to path through a temporary file in the same
// directory, renamed into place once fully written. A failed write leaves
// any existing file at path untouched.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".yml2tex-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "talk" -> false (config name)
//   - "./talk.yaml" -> true (relative path)
//   - "../shared/talk.yaml" -> true (parent path)
//   - "C:\decks\talk.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
