package outline

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/go-yml2tex/internal/yamlutil"
)

// Sentinel errors for outline loading.
var (
	ErrEmpty     = errors.New("outline is empty")
	ErrMalformed = errors.New("malformed outline")
)

// Parse loads an outline from YAML. Mapping order is kept at every level and
// duplicate titles are legal. Frames whose title starts with "include" or
// "image" become *CodeFrame and *ImageFrame, everything else a *TextFrame.
// A nil logger discards the warnings emitted for ambiguous directives.
func Parse(data []byte, log *slog.Logger) (*Document, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	root, err := yamlutil.UnmarshalOrdered(data)
	if err != nil {
		if errors.Is(err, yamlutil.ErrNilData) {
			return nil, ErrEmpty
		}
		if errors.Is(err, yamlutil.ErrInputTooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(root) == 0 {
		return nil, ErrEmpty
	}

	l := &loader{log: log}
	doc := &Document{}

	entries := []yamlutil.MapItem(root)
	if key, ok := entries[0].Key.(string); ok && key == MetasKey {
		metas, err := l.pairs(entries[0].Value, MetasKey)
		if err != nil {
			return nil, err
		}
		doc.Metas = metas
		entries = entries[1:]
	}

	doc.Sections = make([]Section, 0, len(entries))
	for _, entry := range entries {
		sec, err := l.section(entry)
		if err != nil {
			return nil, err
		}
		doc.Sections = append(doc.Sections, sec)
	}
	return doc, nil
}

type loader struct {
	log *slog.Logger
}

func (l *loader) section(entry yamlutil.MapItem) (Section, error) {
	title := ScalarText(entry.Key)
	where := fmt.Sprintf("section %q", title)

	body, err := mapping(entry.Value, where)
	if err != nil {
		return Section{}, err
	}

	sec := Section{Title: title, Subsections: make([]Subsection, 0, len(body))}
	for _, e := range body {
		sub, err := l.subsection(e, where)
		if err != nil {
			return Section{}, err
		}
		sec.Subsections = append(sec.Subsections, sub)
	}
	return sec, nil
}

func (l *loader) subsection(entry yamlutil.MapItem, parent string) (Subsection, error) {
	title := ScalarText(entry.Key)
	where := fmt.Sprintf("%s > subsection %q", parent, title)

	body, err := mapping(entry.Value, where)
	if err != nil {
		return Subsection{}, err
	}

	sub := Subsection{Title: title, Frames: make([]Frame, 0, len(body))}
	for _, e := range body {
		f, err := l.frame(e, where)
		if err != nil {
			return Subsection{}, err
		}
		sub.Frames = append(sub.Frames, f)
	}
	return sub, nil
}

// frame classifies a frame entry by its title prefix.
func (l *loader) frame(entry yamlutil.MapItem, parent string) (Frame, error) {
	title := ScalarText(entry.Key)
	where := fmt.Sprintf("%s > frame %q", parent, title)

	switch {
	case strings.HasPrefix(title, IncludePrefix):
		path, err := l.directivePath(title, where)
		if err != nil {
			return nil, err
		}
		return &CodeFrame{Path: path}, nil

	case strings.HasPrefix(title, ImagePrefix):
		path, err := l.directivePath(title, where)
		if err != nil {
			return nil, err
		}
		opts, err := l.imageOptions(entry.Value, where)
		if err != nil {
			return nil, err
		}
		return &ImageFrame{Path: path, Options: opts}, nil

	default:
		list, err := parseItems(entry.Value, where)
		if err != nil {
			return nil, err
		}
		return &TextFrame{Title: title, Items: list}, nil
	}
}

// directivePath returns the second whitespace-delimited token of a directive.
// Paths cannot contain whitespace; extra tokens are dropped with a warning.
func (l *loader) directivePath(title, where string) (string, error) {
	fields := strings.Fields(title)
	if len(fields) < 2 {
		return "", malformed(where, "directive has no path")
	}
	if len(fields) > 2 {
		l.log.Warn("directive path truncated at whitespace",
			"frame", title, "path", fields[1], "ignored", strings.Join(fields[2:], " "))
	}
	return fields[1], nil
}

// imageOptions accepts a mapping, a list of single-entry mappings, or nothing.
func (l *loader) imageOptions(v any, where string) ([]Pair, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case yamlutil.MapSlice:
		return toPairs(v), nil
	case []any:
		var out []Pair
		for i, elem := range v {
			m, ok := elem.(yamlutil.MapSlice)
			if !ok {
				return nil, malformed(where, "option %d must be a key: value entry, got %s", i+1, kind(elem))
			}
			out = append(out, toPairs(m)...)
		}
		return out, nil
	default:
		return nil, malformed(where, "image options must be a mapping, got %s", kind(v))
	}
}

func (l *loader) pairs(v any, where string) ([]Pair, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(yamlutil.MapSlice)
	if !ok {
		return nil, malformed(where, "must be a mapping, got %s", kind(v))
	}
	return toPairs(m), nil
}

// parseItems converts a YAML sequence into list items. A mapping element yields
// one Nested item per entry.
func parseItems(v any, where string) ([]Item, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, malformed(where, "items must be a list, got %s", kind(v))
	}

	out := make([]Item, 0, len(seq))
	for i, elem := range seq {
		switch elem := elem.(type) {
		case yamlutil.MapSlice:
			for _, e := range elem {
				label := ScalarText(e.Key)
				children, err := nestedItems(e.Value, fmt.Sprintf("%s > item %q", where, label))
				if err != nil {
					return nil, err
				}
				out = append(out, Nested{Label: label, Items: children})
			}
		case []any:
			return nil, malformed(where, "item %d is a list without a label", i+1)
		default:
			out = append(out, Leaf{Text: ScalarText(elem)})
		}
	}
	return out, nil
}

func nestedItems(v any, where string) ([]Item, error) {
	switch v := v.(type) {
	case nil:
		return nil, malformed(where, "nested list is empty")
	case []any:
		return parseItems(v, where)
	case yamlutil.MapSlice:
		return nil, malformed(where, "nested items must be a list, got mapping")
	default:
		return []Item{Leaf{Text: ScalarText(v)}}, nil
	}
}

func mapping(v any, where string) (yamlutil.MapSlice, error) {
	m, ok := v.(yamlutil.MapSlice)
	if !ok {
		return nil, malformed(where, "body must be a mapping, got %s", kind(v))
	}
	return m, nil
}

func toPairs(m yamlutil.MapSlice) []Pair {
	out := make([]Pair, 0, len(m))
	for _, e := range m {
		out = append(out, Pair{Key: ScalarText(e.Key), Value: e.Value})
	}
	return out
}

// ScalarText renders a decoded YAML scalar (title, item, metas value, image
// option) as text. Null renders as the empty string.
func ScalarText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "list"
	case yamlutil.MapSlice:
		return "mapping"
	default:
		return "scalar"
	}
}

func malformed(where, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformed, where, fmt.Sprintf(format, args...))
}
