// Package highlight renders source code as LaTeX using chroma.
//
// Chroma has no LaTeX output, so this package provides one: Formatter writes
// a fancyvrb Verbatim environment in which every styled token is wrapped in a
// \PY{class}{text} command, and StyleDefs writes the macro definitions that
// give each class its colour and font from a chroma style. The markup follows
// the conventions of the Pygments LaTeX formatter, so documents produced by
// either tool look the same.
//
// Lexers are picked from chroma's registry by file name. Files no lexer
// claims are highlighted as plain text; lookup never fails.
package highlight
