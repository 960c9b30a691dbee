package main

// Notes:
// - exitCodeFor: we test the sentinel errors of the library, config and CLI,
//   plus wrapped errors to verify the errors.Is() chain works correctly.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/alnah/go-yml2tex"
	"github.com/alnah/go-yml2tex/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read outline", ErrReadOutline, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"include read", yml2tex.ErrIncludeRead, ExitIO},
		{"wrapped include read", fmt.Errorf("frame 2: %w", yml2tex.ErrIncludeRead), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"base dir", ErrBaseDir, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"empty outline", yml2tex.ErrEmptyOutline, ExitUsage},
		{"malformed outline", yml2tex.ErrMalformedOutline, ExitUsage},
		{"outline too large", yml2tex.ErrOutlineTooLarge, ExitUsage},
		{"invalid date", yml2tex.ErrInvalidDate, ExitUsage},
		{"invalid metadata", yml2tex.ErrInvalidMetadata, ExitUsage},
		{"template not found", yml2tex.ErrTemplateNotFound, ExitUsage},
		{"invalid asset path", yml2tex.ErrInvalidAssetPath, ExitUsage},
		{"wrapped malformed", fmt.Errorf("loading: %w", yml2tex.ErrMalformedOutline), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"preamble render", yml2tex.ErrPreambleRender, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes must follow Unix conventions")
	}
	for _, code := range []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", code)
		}
	}
}
