package writer

import (
	"github.com/wudi/tagkit/coords"
	"github.com/wudi/tagkit/observability"
)

type PDFVersion string

const (
	PDF17 PDFVersion = "1.7"
	PDF20 PDFVersion = "2.0"
)

// Config controls how structure elements are rendered.
type Config struct {
	// Version selects the structure vocabulary. Empty means PDF17.
	Version PDFVersion
	// OmitDefaultLayout drops layout entries that repeat the format default
	// (Placement Inline, WritingMode LrTb).
	OmitDefaultLayout bool
	// Transform maps BBox values into default user space. The zero matrix
	// is treated as identity.
	Transform coords.Matrix
	Logger    observability.Logger
}

func (c Config) version() PDFVersion {
	if c.Version == "" {
		return PDF17
	}
	return c.Version
}

// IsPDF2 reports whether the PDF 2.0 structure namespace is in use.
func (c Config) IsPDF2() bool { return c.version() == PDF20 }

// Matrix returns the BBox transform, identity when unset.
func (c Config) Matrix() coords.Matrix {
	if c.Transform == (coords.Matrix{}) {
		return coords.Identity()
	}
	return c.Transform
}

func (c Config) Log() observability.Logger { return observability.OrNop(c.Logger) }
