// Package config loads the optional yml2tex configuration file. The file
// supplies presentation defaults used when an outline has no metas entry for
// a field, and the directory code frame includes are resolved against.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-yml2tex/internal/fileutil"
	"github.com/alnah/go-yml2tex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength     = 200
	MaxAuthorLength    = 200
	MaxInstituteLength = 200
	MaxDateLength      = 60 // "auto:MMMM D, YYYY" or a literal date
	MaxStyleLength     = 50
	MaxPathLength      = 4096
)

// AppDirName is the directory under the user config dir searched for
// named configs.
const AppDirName = "go-yml2tex"

// Config holds all file-based configuration.
type Config struct {
	Presentation PresentationConfig `yaml:"presentation"`
	Include      IncludeConfig      `yaml:"include"`
}

// PresentationConfig holds deck defaults. Empty strings and a nil Outline
// mean "not set".
type PresentationConfig struct {
	Title          string `yaml:"title"`
	Author         string `yaml:"author"`
	Institute      string `yaml:"institute"`
	Date           string `yaml:"date"`
	Outline        *bool  `yaml:"outline"`
	HighlightStyle string `yaml:"highlightStyle"`
}

// IncludeConfig defines where code frame files are read from.
type IncludeConfig struct {
	BaseDir string `yaml:"baseDir"` // Relative include paths are joined to it (empty = outline directory)
}

// Validate checks field lengths.
func (c *Config) Validate() error {
	p := c.Presentation
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"presentation.title", p.Title, MaxTitleLength},
		{"presentation.author", p.Author, MaxAuthorLength},
		{"presentation.institute", p.Institute, MaxInstituteLength},
		{"presentation.date", p.Date, MaxDateLength},
		{"presentation.highlightStyle", p.HighlightStyle, MaxStyleLength},
		{"include.baseDir", c.Include.BaseDir, MaxPathLength},
	}
	for _, ch := range checks {
		if err := validateFieldLength(ch.field, ch.value, ch.max); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that sets nothing.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's searched as NAME.yaml or NAME.yml in the working directory,
// then in the go-yml2tex user config directory.
// A missing file is an error, there is no silent fallback.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
