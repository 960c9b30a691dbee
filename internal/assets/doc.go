// Package assets provides the LaTeX templates used to build slide decks.
//
// Templates are embedded at compile time under templates/ and loaded by name
// through the AssetLoader interface:
//
//	templates/
//	└── preamble.tex   # document class, packages, theme, title block, outline
//
// Template names are validated to prevent path traversal.
package assets
