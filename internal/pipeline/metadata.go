package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/go-yml2tex/internal/beamer"
	"github.com/alnah/go-yml2tex/internal/dateutil"
	"github.com/alnah/go-yml2tex/internal/outline"
)

// ErrInvalidMetadata indicates a metas value of the wrong type.
var ErrInvalidMetadata = errors.New("invalid metadata")

// Recognized metas keys.
const (
	KeyTitle          = "title"
	KeyAuthor         = "author"
	KeyInstitute      = "institute"
	KeyDate           = "date"
	KeyOutline        = "outline"
	KeyHighlightStyle = "highlight_style"
)

// ResolveMetadata applies metas over defaults. Later duplicates win.
// Unknown keys are logged and ignored. A date of "auto" or "auto:FORMAT",
// whether from metas or defaults, is expanded against now.
func ResolveMetadata(metas []outline.Pair, defaults beamer.Metadata, now time.Time, log *slog.Logger) (beamer.Metadata, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	meta := defaults
	for _, p := range metas {
		text := outline.ScalarText(p.Value)
		switch p.Key {
		case KeyTitle:
			meta.Title = text
		case KeyAuthor:
			meta.Author = text
		case KeyInstitute:
			meta.Institute = text
		case KeyDate:
			meta.Date = text
		case KeyHighlightStyle:
			meta.HighlightStyle = text
		case KeyOutline:
			b, err := parseFlag(p.Value)
			if err != nil {
				return beamer.Metadata{}, fmt.Errorf("%w: %s: %v", ErrInvalidMetadata, KeyOutline, err)
			}
			meta.Outline = b
		default:
			log.Warn("ignoring unknown metas key", "key", p.Key)
		}
	}

	date, err := dateutil.ResolveDate(meta.Date, now)
	if err != nil {
		return beamer.Metadata{}, err
	}
	meta.Date = date

	return meta, nil
}

// parseFlag accepts a YAML boolean, an integer (zero is false), null
// (false) or one of the usual string spellings of a boolean.
func parseFlag(v any) (bool, error) {
	switch v := v.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case uint64:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case int:
		return v != 0, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0":
			return false, nil
		}
		return false, fmt.Errorf("want a boolean, got %q", v)
	default:
		return false, fmt.Errorf("want a boolean, got %v", v)
	}
}
