package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-yml2tex/internal/beamer"
	"github.com/alnah/go-yml2tex/internal/dateutil"
	"github.com/alnah/go-yml2tex/internal/outline"
)

// ---------------------------------------------------------------------------
// TestResolveMetadata - Metas over defaults
// ---------------------------------------------------------------------------

func TestResolveMetadata(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		metas    []outline.Pair
		defaults beamer.Metadata
		want     beamer.Metadata
	}{
		{
			name:     "no metas keeps defaults",
			defaults: beamer.DefaultMetadata(),
			want:     beamer.DefaultMetadata(),
		},
		{
			name:     "title only",
			metas:    []outline.Pair{{Key: "title", Value: "Demo"}},
			defaults: beamer.DefaultMetadata(),
			want: beamer.Metadata{
				Title: "Demo", Date: `\today`, Outline: true, HighlightStyle: "default",
			},
		},
		{
			name: "all keys",
			metas: []outline.Pair{
				{Key: "title", Value: "T"},
				{Key: "author", Value: "A"},
				{Key: "institute", Value: "I"},
				{Key: "date", Value: "2024-01-01"},
				{Key: "outline", Value: false},
				{Key: "highlight_style", Value: "monokai"},
			},
			defaults: beamer.DefaultMetadata(),
			want: beamer.Metadata{
				Title: "T", Author: "A", Institute: "I", Date: "2024-01-01",
				Outline: false, HighlightStyle: "monokai",
			},
		},
		{
			name:     "later duplicate wins",
			metas:    []outline.Pair{{Key: "title", Value: "first"}, {Key: "title", Value: "second"}},
			defaults: beamer.DefaultMetadata(),
			want: beamer.Metadata{
				Title: "second", Date: `\today`, Outline: true, HighlightStyle: "default",
			},
		},
		{
			name:     "metas override config defaults",
			metas:    []outline.Pair{{Key: "author", Value: "Outline Author"}},
			defaults: beamer.Metadata{Title: "Config Title", Author: "Config Author", Date: `\today`, Outline: true},
			want:     beamer.Metadata{Title: "Config Title", Author: "Outline Author", Date: `\today`, Outline: true},
		},
		{
			name:     "auto date expanded",
			metas:    []outline.Pair{{Key: "date", Value: "auto:long"}},
			defaults: beamer.DefaultMetadata(),
			want: beamer.Metadata{
				Title: "Example Presentation", Date: "March 15, 2024", Outline: true, HighlightStyle: "default",
			},
		},
		{
			name:     "auto date from defaults expanded",
			defaults: beamer.Metadata{Date: "auto"},
			want:     beamer.Metadata{Date: "2024-03-15"},
		},
		{
			name:     "outline as string",
			metas:    []outline.Pair{{Key: "outline", Value: "no"}},
			defaults: beamer.DefaultMetadata(),
			want: beamer.Metadata{
				Title: "Example Presentation", Date: `\today`, Outline: false, HighlightStyle: "default",
			},
		},
		{
			name:     "unknown key ignored",
			metas:    []outline.Pair{{Key: "subtitle", Value: "x"}},
			defaults: beamer.DefaultMetadata(),
			want:     beamer.DefaultMetadata(),
		},
		{
			name:     "null title becomes empty",
			metas:    []outline.Pair{{Key: "title", Value: nil}},
			defaults: beamer.DefaultMetadata(),
			want: beamer.Metadata{
				Date: `\today`, Outline: true, HighlightStyle: "default",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveMetadata(tt.metas, tt.defaults, now, nil)
			if err != nil {
				t.Fatalf("ResolveMetadata() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ResolveMetadata() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveMetadata_Errors(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name    string
		metas   []outline.Pair
		wantErr error
	}{
		{
			name:    "outline not a boolean",
			metas:   []outline.Pair{{Key: "outline", Value: "sometimes"}},
			wantErr: ErrInvalidMetadata,
		},
		{
			name:    "outline as mapping",
			metas:   []outline.Pair{{Key: "outline", Value: []any{"x"}}},
			wantErr: ErrInvalidMetadata,
		},
		{
			name:    "bad auto date format",
			metas:   []outline.Pair{{Key: "date", Value: "auto:[unclosed"}},
			wantErr: dateutil.ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ResolveMetadata(tt.metas, beamer.DefaultMetadata(), now, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ResolveMetadata() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      any
		want    bool
		wantErr bool
	}{
		{in: true, want: true},
		{in: false, want: false},
		{in: "True", want: true},
		{in: " off ", want: false},
		{in: "1", want: true},
		{in: uint64(0), want: false},
		{in: uint64(1), want: true},
		{in: int64(0), want: false},
		{in: 1, want: true},
		{in: nil, want: false},
		{in: "maybe", wantErr: true},
		{in: 1.5, wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseFlag(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseFlag(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseFlag(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
