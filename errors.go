package yml2tex

import (
	"github.com/alnah/go-yml2tex/internal/assets"
	"github.com/alnah/go-yml2tex/internal/beamer"
	"github.com/alnah/go-yml2tex/internal/dateutil"
	"github.com/alnah/go-yml2tex/internal/outline"
	"github.com/alnah/go-yml2tex/internal/pipeline"
	"github.com/alnah/go-yml2tex/internal/yamlutil"
)

// Sentinel errors for library operations.
var (
	// Outline errors.
	ErrEmptyOutline     = outline.ErrEmpty
	ErrMalformedOutline = outline.ErrMalformed
	ErrOutlineTooLarge  = yamlutil.ErrInputTooLarge

	// Metadata errors.
	ErrInvalidDate     = dateutil.ErrInvalidDateFormat
	ErrInvalidMetadata = pipeline.ErrInvalidMetadata

	// Rendering errors.
	ErrIncludeRead    = beamer.ErrIncludeRead
	ErrPreambleRender = beamer.ErrPreambleRender

	// Asset loading errors.
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetPath = assets.ErrInvalidBasePath
)
