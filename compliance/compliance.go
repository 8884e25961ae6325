// Package compliance defines the reports accessibility validators produce
// for a tagged document.
package compliance

import (
	"context"
	"fmt"

	"github.com/wudi/tagkit/layout"
	"github.com/wudi/tagkit/tagging"
)

// Context is an alias for context.Context to allow for future expansion.
type Context = context.Context

// Document is the tagged content a validator inspects.
type Document struct {
	Title string
	Lang  string
	// Tags lists every structure tag in document order.
	Tags []*tagging.Tag
	// Tree is the optional parent/child structure of Tags. Checks on
	// element nesting are skipped when it is nil.
	Tree *layout.Node
}

// FromLayout wraps an imported document.
func FromLayout(d *layout.Document) *Document {
	if d == nil {
		return &Document{}
	}
	return &Document{
		Title: d.Title,
		Lang:  d.Lang,
		Tags:  d.Tags(),
		Tree:  d.Root,
	}
}

// Violation represents a compliance violation.
type Violation struct {
	Code        string
	Description string
	Location    string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %s: %s", v.Code, v.Location, v.Description)
}

// Report details compliance status.
type Report struct {
	Compliant  bool
	Standard   string // e.g., "PDF/UA-1"
	Violations []Violation
}

// Add records a violation and marks the report non-compliant.
func (r *Report) Add(code, location, format string, args ...any) {
	r.Violations = append(r.Violations, Violation{
		Code:        code,
		Description: fmt.Sprintf(format, args...),
		Location:    location,
	})
	r.Compliant = false
}

// Codes returns the violation codes in report order.
func (r *Report) Codes() []string {
	out := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		out[i] = v.Code
	}
	return out
}

// Validator checks document compliance against a standard.
type Validator interface {
	Validate(ctx Context, doc *Document) (*Report, error)
}

// TagLocation names tag i of a document for violation reports. The tag's
// id is included when it has one.
func TagLocation(i int, t *tagging.Tag) string {
	if t == nil {
		return fmt.Sprintf("Tag %d", i)
	}
	if id, ok := t.ID(); ok {
		return fmt.Sprintf("Tag %d %s [%s]", i, t.Role(), id)
	}
	return fmt.Sprintf("Tag %d %s", i, t.Role())
}
