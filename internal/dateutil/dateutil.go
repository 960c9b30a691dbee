// Package dateutil resolves the "auto" date keyword used in deck metadata.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is given without a format.
const DefaultDateFormat = "YYYY-MM-DD"

const autoKeyword = "auto"

// layoutTokens maps format tokens to Go layout fragments, longest first.
var layoutTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named formats usable as "auto:<preset>".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// FormatDate renders t in format, such as "DD/MM/YYYY".
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Text in brackets and any byte
// outside a token is copied verbatim, so "[Q1] YYYY" keeps "Q1" intact.
func FormatDate(format string, t time.Time) (string, error) {
	switch {
	case format == "":
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	case len(format) > MaxDateFormatLength:
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var out strings.Builder
	out.Grow(len(format) + 8)

	for rest := format; rest != ""; {
		if rest[0] == '[' {
			end := strings.IndexByte(rest[1:], ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d",
					ErrInvalidDateFormat, len(format)-len(rest))
			}
			out.WriteString(rest[1 : 1+end])
			rest = rest[end+2:]
			continue
		}
		rest = writeToken(&out, rest, t)
	}

	return out.String(), nil
}

// writeToken writes t formatted by the token at the start of s, or the
// first byte of s when no token matches, and returns the unconsumed remainder.
func writeToken(b *strings.Builder, s string, t time.Time) string {
	for _, tok := range layoutTokens {
		if strings.HasPrefix(s, tok.token) {
			b.WriteString(t.Format(tok.layout))
			return s[len(tok.token):]
		}
	}
	b.WriteByte(s[0])
	return s[1:]
}

// IsAuto reports whether value asks for the current date.
func IsAuto(value string) bool {
	lower := strings.ToLower(value)
	return lower == autoKeyword || strings.HasPrefix(lower, autoKeyword+":")
}

// ResolveDate expands the auto keyword against now:
//   - "auto" gives now as YYYY-MM-DD
//   - "auto:FORMAT" gives now in FORMAT, e.g. "auto:DD/MM/YYYY"
//   - "auto:PRESET" uses one of Presets
//
// The keyword is case-insensitive. Any other value, including words that
// merely start with "auto" such as "Autumn 2024", is returned unchanged.
func ResolveDate(value string, now time.Time) (string, error) {
	if !IsAuto(value) {
		return value, nil
	}

	format := DefaultDateFormat
	if len(value) > len(autoKeyword) {
		format = value[len(autoKeyword)+1:]
		if format == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := Presets[strings.ToLower(format)]; ok {
			format = preset
		}
	}

	return FormatDate(format, now)
}
