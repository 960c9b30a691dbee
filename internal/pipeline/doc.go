// Package pipeline assembles a parsed outline into a Beamer document.
//
// The conversion runs in two stages:
//   - Metadata resolution: the document's metas entry is merged over the
//     caller's defaults, with "auto" dates expanded and the outline flag parsed
//   - Assembly: header, one heading per section and subsection, one frame
//     per outline frame, footer
//
// Output is written into a buffer owned by the Assembler and returned only
// when every stage succeeded, so callers never see a partial document.
package pipeline
