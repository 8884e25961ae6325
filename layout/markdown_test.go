package layout

import (
	"strings"
	"testing"

	"github.com/wudi/tagkit/tagging"
)

func TestFromMarkdownFeatures(t *testing.T) {
	md := `
# Header 1
## Header 2

Paragraph with **bold** and *italic* text.[^1]

1. First
2. Second

| Name | Qty |
|------|-----|
| Nuts | 3   |

Term
: Meaning

` + "```go" + `
func main() {}
` + "```" + `

[^1]: The note.
`
	doc, err := FromMarkdown([]byte(md))
	if err != nil {
		t.Fatalf("FromMarkdown: %v", err)
	}

	var headings []uint32
	counts := map[tagging.Role]int{}
	Walk(doc.Root, func(n *Node, _ int) bool {
		counts[n.Tag.Role()]++
		if lvl, ok := n.Tag.HeadingLevel(); ok {
			headings = append(headings, lvl.Uint32())
		}
		return true
	})
	if len(headings) != 2 || headings[0] != 1 || headings[1] != 2 {
		t.Fatalf("headings = %v", headings)
	}
	for _, r := range []tagging.Role{tagging.RoleL, tagging.RoleTable, tagging.RoleTH, tagging.RoleTD, tagging.RoleTerms, tagging.RoleCode, tagging.RoleNote, tagging.RoleReference} {
		if counts[r] == 0 {
			t.Errorf("no %v in %v", r, roles(doc.Root))
		}
	}
	if counts[tagging.RoleTH] != 2 || counts[tagging.RoleTD] != 2 {
		t.Errorf("cells th=%d td=%d", counts[tagging.RoleTH], counts[tagging.RoleTD])
	}

	list := findRole(doc.Root, tagging.RoleL)
	if n, _ := list.Tag.Numbering(); n != tagging.NumberingDecimal {
		t.Errorf("ordered list numbering = %v", n)
	}
	th := findRole(doc.Root, tagging.RoleTH)
	if s, _ := th.Tag.HeaderScope(); s != tagging.ScopeColumn {
		t.Errorf("markdown header scope = %v", s)
	}
	note := findRole(doc.Root, tagging.RoleNote)
	if id, ok := note.Tag.ID(); !ok || !strings.HasPrefix(id.String(), "Ufn") {
		t.Errorf("footnote id = %v", id)
	}
}

func TestFromMarkdownMath(t *testing.T) {
	doc, err := FromMarkdown([]byte("Energy: $E = mc^2$\n"))
	if err != nil {
		t.Fatalf("FromMarkdown: %v", err)
	}
	if findRole(doc.Root, tagging.RoleFormula) == nil {
		t.Fatalf("no formula in %v", roles(doc.Root))
	}
}

func TestFromLaTeX(t *testing.T) {
	n, err := FromLaTeX(`\frac{a}{b}`)
	if err != nil {
		t.Fatalf("FromLaTeX: %v", err)
	}
	if n.Tag.Role() != tagging.RoleFormula {
		t.Fatalf("role = %v", n.Tag.Role())
	}
	if alt, ok := n.Tag.AltText(); !ok || alt == "" {
		t.Fatal("formula has no alternate text")
	}
}
