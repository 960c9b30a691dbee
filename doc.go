// Package yml2tex converts YAML slide outlines to LaTeX Beamer source.
//
// # Quick Start
//
//	conv, err := yml2tex.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tex, err := conv.Convert(ctx, yml2tex.Input{
//	    Outline:   data,
//	    SourceDir: "/path/to/talk", // include paths resolve against it
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("talk.tex", tex, 0644)
//
// # Outline Format
//
// An outline is a YAML mapping of sections to subsections to frames. Order
// is kept and titles may repeat at any level:
//
//	metas:
//	  title: Go in Production
//	  author: Jane Doe
//	  date: auto:long
//	  highlight_style: monokai
//	Introduction:
//	  Motivation:
//	    Why Go:
//	      - Fast builds
//	      - Tooling:
//	          - go vet
//	          - gofmt
//	    include examples/main.go:
//	    image figures/arch.pdf:
//	      width: 8cm
//
// A leading "metas" entry sets the title block and deck options. A frame
// titled "include PATH" shows the highlighted contents of PATH, one titled
// "image PATH" shows a picture with the frame's mapping as \pgfimage options.
// Every other frame is a bullet list, and an item that is a mapping opens a
// nested list under its key.
//
// # Conversion Pipeline
//
//  1. Outline loading: ordered YAML decoding, frames and items classified
//  2. Metadata resolution: metas over defaults, "auto" dates expanded
//  3. Assembly: preamble with chroma style macros, sections, frames, footer
//
// A failure at any stage aborts the conversion and returns no output.
//
// # Configuration
//
//	conv, err := yml2tex.NewConverter(
//	    yml2tex.WithLogger(slog.Default()),
//	    yml2tex.WithDefaults(yml2tex.Metadata{Title: "Untitled", Date: "auto", Outline: true}),
//	    yml2tex.WithFileReader(myFS),
//	)
//
// # Error Handling
//
// Errors wrap the sentinels in errors.go and can be checked with errors.Is:
//
//	if errors.Is(err, yml2tex.ErrIncludeRead) {
//	    // a code frame's file is missing or unreadable
//	}
package yml2tex
