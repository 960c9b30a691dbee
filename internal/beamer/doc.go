// Package beamer generates LaTeX Beamer markup for outline documents.
//
// It covers the markup-level pieces of a deck:
//   - Escape protects LaTeX special characters in free text
//   - Itemize renders (nested) bullet lists
//   - FrameRenderer turns each frame variant into a slide
//   - Section, Subsection and Preamble produce the document skeleton
//
// Source highlighting and file access are collaborators passed in through
// the Highlighter and FileReader interfaces.
package beamer
