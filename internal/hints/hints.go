// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForIncludeNotFound returns hints for a code frame whose file cannot be read.
// baseDir is the directory relative include paths were resolved against.
func ForIncludeNotFound(baseDir string) string {
	where := "the working directory"
	if baseDir != "" {
		where = baseDir
	}
	return format("include paths are resolved against " + where + "; use --base-dir to change it")
}

// ForBaseDir returns hints for an include base directory that does not exist.
func ForBaseDir() string {
	return format("--base-dir and include.baseDir must name an existing directory")
}

// ForMalformedOutline returns a reminder of the expected outline shape.
func ForMalformedOutline() string {
	return format("sections map to subsections, subsections to frames, frames to lists of items")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in ~/.config/go-yml2tex/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-yml2tex") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output file write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnknownStyle lists the highlight styles that can be used instead.
func ForUnknownStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available styles: " + strings.Join(available, ", "))
}

// ForInvalidDate returns hints for bad auto date formats.
func ForInvalidDate() string {
	return formatHints([]string{
		"use auto, auto:FORMAT with YYYY MM DD tokens",
		"or a preset: auto:iso, auto:european, auto:us, auto:long",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
