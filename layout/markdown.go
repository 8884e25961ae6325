package layout

import (
	"bytes"
	"errors"
	"fmt"

	treeblood "github.com/wyatt915/goldmark-treeblood"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/wudi/tagkit/tagging"
)

// ErrNoFormula is returned by LaTeX when the source produced no math.
var ErrNoFormula = errors.New("layout: no formula in LaTeX source")

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.DefinitionList,
			extension.Footnote,
			treeblood.MathML(),
		),
	)
}

// FromMarkdown imports Markdown with a default Importer.
func FromMarkdown(src []byte, opts ...Option) (*Document, error) {
	return NewImporter(opts...).Markdown(src)
}

// Markdown renders GitHub flavored Markdown with footnotes, definition lists
// and TeX math to HTML and imports the result.
func (im *Importer) Markdown(src []byte) (*Document, error) {
	var buf bytes.Buffer
	if err := newMarkdown().Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("layout: convert markdown: %w", err)
	}
	return im.HTML(&buf)
}

// FromLaTeX imports a LaTeX math expression with a default Importer.
func FromLaTeX(latex string, opts ...Option) (*Node, error) {
	return NewImporter(opts...).LaTeX(latex)
}

// LaTeX converts a display math expression to a Formula node. The LaTeX
// source becomes the alternate text unless the generated MathML carries one.
func (im *Importer) LaTeX(latex string) (*Node, error) {
	doc, err := im.Markdown([]byte("$$" + latex + "$$"))
	if err != nil {
		return nil, err
	}
	var formula *Node
	Walk(doc.Root, func(n *Node, _ int) bool {
		if formula != nil {
			return false
		}
		if n.Tag.Role() == tagging.RoleFormula {
			formula = n
			return false
		}
		return true
	})
	if formula == nil {
		return nil, ErrNoFormula
	}
	if _, ok := formula.Tag.AltText(); !ok {
		formula.Tag.Apply(tagging.WithAltText(latex))
	}
	return formula, nil
}
