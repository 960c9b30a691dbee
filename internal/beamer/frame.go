package beamer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-yml2tex/internal/outline"
)

// ErrIncludeRead indicates the file referenced by a code frame could not be read.
var ErrIncludeRead = errors.New("failed to read included file")

// Highlighter turns source text into highlighted LaTeX markup.
type Highlighter interface {
	Highlight(filename, source string) (string, error)
}

// FileReader reads the files referenced by code frames.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// FrameRenderer renders frames. Code frames read and highlight their file,
// image and text frames need no collaborators.
type FrameRenderer struct {
	files       FileReader
	highlighter Highlighter
}

// NewFrameRenderer creates a FrameRenderer.
func NewFrameRenderer(files FileReader, highlighter Highlighter) *FrameRenderer {
	return &FrameRenderer{files: files, highlighter: highlighter}
}

// Render returns the markup for one frame.
func (r *FrameRenderer) Render(f outline.Frame) (string, error) {
	switch f := f.(type) {
	case *outline.CodeFrame:
		return r.code(f)
	case *outline.ImageFrame:
		return Image(f), nil
	case *outline.TextFrame:
		return Text(f), nil
	default:
		return "", fmt.Errorf("unsupported frame type %T", f)
	}
}

// Text renders a titled bullet frame.
func Text(f *outline.TextFrame) string {
	return "\n\\frame {" +
		"\n\t\\frametitle{" + Escape(f.Title) + "}" +
		Itemize(f.Items) +
		"\n}"
}

// Image renders a shrink-to-fit frame holding a single picture.
func Image(f *outline.ImageFrame) string {
	return "\n\\frame[shrink] {" +
		"\n\t\\pgfimage[" + ImageOptions(f.Options) + "]{" + f.Path + "}" +
		"\n}"
}

// ImageOptions joins options as key=value pairs separated by commas, in order.
func ImageOptions(opts []outline.Pair) string {
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		parts = append(parts, o.Key+"="+outline.ScalarText(o.Value))
	}
	return strings.Join(parts, ",")
}

// code renders a fragile frame with the highlighted contents of f.Path.
// The path is shown verbatim in the title.
func (r *FrameRenderer) code(f *outline.CodeFrame) (string, error) {
	src, err := r.files.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrIncludeRead, f.Path, err)
	}

	body, err := r.highlighter.Highlight(f.Path, string(src))
	if err != nil {
		return "", err
	}

	return "\n\\begin{frame}[fragile,t]" +
		"\n\t\\frametitle{Code: \"" + f.Path + "\"}" +
		"\n" + body +
		"\n\\end{frame}", nil
}

// Section starts a new section.
func Section(title string) string {
	return "\n\n\\section{" + Escape(title) + "}"
}

// Subsection starts a new subsection.
func Subsection(title string) string {
	return "\n\\subsection{" + Escape(title) + "}"
}
