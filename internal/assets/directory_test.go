package assets

// Notes:
// - The ErrAssetRead branch needs an unreadable file and is skipped as root.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNewDirectoryLoader - Directory validation
// ---------------------------------------------------------------------------

func TestNewDirectoryLoader(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file.tex")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name    string
		dir     string
		wantErr error
	}{
		{name: "valid directory", dir: t.TempDir()},
		{name: "empty path", dir: "", wantErr: ErrInvalidBasePath},
		{name: "missing directory", dir: filepath.Join(t.TempDir(), "nope"), wantErr: ErrInvalidBasePath},
		{name: "file instead of directory", dir: file, wantErr: ErrInvalidBasePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, err := NewDirectoryLoader(tt.dir)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewDirectoryLoader(%q) error = %v, want %v", tt.dir, err, tt.wantErr)
				}
				return
			}
			if err != nil || loader == nil {
				t.Fatalf("NewDirectoryLoader(%q) = %v, %v", tt.dir, loader, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDirectoryLoader_LoadTemplate - Override and fallback
// ---------------------------------------------------------------------------

func TestDirectoryLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	t.Run("custom template wins", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "preamble.tex"), []byte(`\documentclass{beamer}`), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		loader, err := NewDirectoryLoader(dir)
		if err != nil {
			t.Fatalf("NewDirectoryLoader() error = %v", err)
		}

		got, err := loader.LoadTemplate(DefaultPreambleName)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if got != `\documentclass{beamer}` {
			t.Errorf("LoadTemplate() = %q, want custom content", got)
		}
	})

	t.Run("falls back to embedded", func(t *testing.T) {
		t.Parallel()

		loader, err := NewDirectoryLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewDirectoryLoader() error = %v", err)
		}

		got, err := loader.LoadTemplate(DefaultPreambleName)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if !strings.Contains(got, `\usetheme{Antibes}`) {
			t.Error("fallback should return the embedded preamble")
		}
	})

	t.Run("unknown name not found", func(t *testing.T) {
		t.Parallel()

		loader, err := NewDirectoryLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewDirectoryLoader() error = %v", err)
		}
		if _, err := loader.LoadTemplate("handout"); !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("invalid name rejected", func(t *testing.T) {
		t.Parallel()

		loader, err := NewDirectoryLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewDirectoryLoader() error = %v", err)
		}
		if _, err := loader.LoadTemplate("../preamble"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate() error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("symlink escaping directory rejected", func(t *testing.T) {
		t.Parallel()

		outside := filepath.Join(t.TempDir(), "evil.tex")
		if err := os.WriteFile(outside, []byte("evil"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		dir := t.TempDir()
		if err := os.Symlink(outside, filepath.Join(dir, "preamble.tex")); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}
		loader, err := NewDirectoryLoader(dir)
		if err != nil {
			t.Fatalf("NewDirectoryLoader() error = %v", err)
		}
		if _, err := loader.LoadTemplate(DefaultPreambleName); !errors.Is(err, ErrPathTraversal) {
			t.Errorf("LoadTemplate() error = %v, want ErrPathTraversal", err)
		}
	})

	t.Run("unreadable file", func(t *testing.T) {
		t.Parallel()

		if os.Geteuid() == 0 {
			t.Skip("root ignores file permissions")
		}
		dir := t.TempDir()
		path := filepath.Join(dir, "preamble.tex")
		if err := os.WriteFile(path, []byte("x"), 0o000); err != nil {
			t.Fatalf("setup: %v", err)
		}
		loader, err := NewDirectoryLoader(dir)
		if err != nil {
			t.Fatalf("NewDirectoryLoader() error = %v", err)
		}
		if _, err := loader.LoadTemplate(DefaultPreambleName); !errors.Is(err, ErrAssetRead) {
			t.Errorf("LoadTemplate() error = %v, want ErrAssetRead", err)
		}
	})
}
