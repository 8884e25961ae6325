// Package layout imports structured content (HTML, Markdown, LaTeX math)
// as a tree of structure tags.
package layout

import (
	"github.com/wudi/tagkit/observability"
	"github.com/wudi/tagkit/tagging"
)

// Node is a tag in the imported tree. Text holds the element's own text
// with whitespace collapsed; text of child elements lives in the children.
type Node struct {
	Tag      *tagging.Tag
	Text     string
	Children []*Node
}

// Document is the result of an import.
type Document struct {
	Title string
	Lang  string
	Root  *Node
}

// Tags returns every tag in document order.
func (d *Document) Tags() []*tagging.Tag {
	if d == nil {
		return nil
	}
	return Flatten(d.Root)
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of that node.
func Walk(n *Node, fn func(n *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// Flatten returns the tags of n and its descendants in pre-order.
func Flatten(n *Node) []*tagging.Tag {
	var out []*tagging.Tag
	Walk(n, func(n *Node, _ int) bool {
		out = append(out, n.Tag)
		return true
	})
	return out
}

// Importer converts markup to tags.
type Importer struct {
	inferWritingMode bool
	ids              *tagging.IDGenerator
	log              observability.Logger
}

// Option defines a configuration option for the Importer.
type Option func(*Importer)

// WithWritingModeInference sets the writing mode of text blocks that carry no
// dir attribute from their language or script.
func WithWritingModeInference(on bool) Option {
	return func(i *Importer) {
		i.inferWritingMode = on
	}
}

// WithIDGenerator sets the generator for identifiers the importer assigns
// itself, such as note ids.
func WithIDGenerator(g *tagging.IDGenerator) Option {
	return func(i *Importer) {
		i.ids = g
	}
}

func WithLogger(l observability.Logger) Option {
	return func(i *Importer) {
		i.log = l
	}
}

func NewImporter(opts ...Option) *Importer {
	i := &Importer{}
	for _, opt := range opts {
		opt(i)
	}
	if i.ids == nil {
		i.ids = tagging.NewIDGeneratorForName("tagkit/layout")
	}
	i.log = observability.OrNop(i.log)
	return i
}
