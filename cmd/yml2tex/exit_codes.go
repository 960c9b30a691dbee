package main

import (
	"errors"
	"os"

	"github.com/alnah/go-yml2tex"
	"github.com/alnah/go-yml2tex/internal/config"
)

// Exit codes for the yml2tex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or outline
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadOutline) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, yml2tex.ErrIncludeRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrBaseDir) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, yml2tex.ErrEmptyOutline) ||
		errors.Is(err, yml2tex.ErrMalformedOutline) ||
		errors.Is(err, yml2tex.ErrOutlineTooLarge) ||
		errors.Is(err, yml2tex.ErrInvalidDate) ||
		errors.Is(err, yml2tex.ErrInvalidMetadata) ||
		errors.Is(err, yml2tex.ErrTemplateNotFound) ||
		errors.Is(err, yml2tex.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
