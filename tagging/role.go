package tagging

import "fmt"

// Role is the structural meaning of a tagged region.
type Role uint8

const (
	// RolePart is a part of a document that may contain several articles or
	// sections.
	RolePart Role = iota
	// RoleArticle is an article with largely self-contained content.
	RoleArticle
	// RoleSection is a section of a larger document.
	RoleSection
	// RoleBlockQuote is a paragraph-level quote.
	RoleBlockQuote
	// RoleCaption is an image or figure caption. It should follow the content
	// it describes as a sibling.
	RoleCaption
	// RoleTOC is a table of contents made of TOCI items or nested TOCs.
	RoleTOC
	// RoleTOCI is an item in a table of contents.
	RoleTOCI
	// RoleIndex is an index of key terms with references to their
	// occurrences.
	RoleIndex
	// RoleP is a paragraph.
	RoleP
	// RoleHn is a heading. Its level is carried by HeadingLevelAttr.
	RoleHn
	// RoleL is a list of LI items, optionally preceded by a caption.
	RoleL
	// RoleLI is a list item made of labels and bodies.
	RoleLI
	// RoleLbl is the label of a list item.
	RoleLbl
	// RoleLBody is the body of a list item.
	RoleLBody
	// RoleTable is a table with an optional header row, bodies and footer.
	RoleTable
	// RoleTR is a table row.
	RoleTR
	// RoleTH is a table header cell.
	RoleTH
	// RoleTD is a table data cell.
	RoleTD
	// RoleTHead is a header row group.
	RoleTHead
	// RoleTBody is a data row group.
	RoleTBody
	// RoleTFoot is a footer row group.
	RoleTFoot
	// RoleInlineQuote is an inline quotation.
	RoleInlineQuote
	// RoleNote is a foot- or endnote.
	RoleNote
	// RoleReference is a reference to elsewhere in the document. Its first
	// child should be a link annotation to the destination.
	RoleReference
	// RoleBibEntry is a reference to an external source.
	RoleBibEntry
	// RoleCode is computer code.
	RoleCode
	// RoleLink is a link. Its first child should be the link annotation.
	RoleLink
	// RoleAnnot associates a non-link annotation with its content.
	RoleAnnot
	// RoleFigure is graphical content.
	RoleFigure
	// RoleFormula is a mathematical formula.
	RoleFormula
	// RoleDatetime is a date or time.
	RoleDatetime
	// RoleTerms is a list of terms.
	RoleTerms
	// RoleTitle is a document or section title.
	RoleTitle
)

var roleNames = [...]string{
	"Part", "Article", "Section", "BlockQuote", "Caption", "TOC", "TOCI", "Index",
	"P", "Hn", "L", "LI", "Lbl", "LBody", "Table", "TR", "TH", "TD", "THead",
	"TBody", "TFoot", "InlineQuote", "Note", "Reference", "BibEntry", "Code",
	"Link", "Annot", "Figure", "Formula", "Datetime", "Terms", "Title",
}

// Roles lists every role in declaration order.
func Roles() []Role {
	out := make([]Role, len(roleNames))
	for i := range out {
		out[i] = Role(i)
	}
	return out
}

func (r Role) Valid() bool { return int(r) < len(roleNames) }

func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Role(%d)", r)
	}
	return roleNames[r]
}

// ParseRole is the inverse of Role.String.
func ParseRole(s string) (Role, bool) {
	for i, name := range roleNames {
		if name == s {
			return Role(i), true
		}
	}
	return 0, false
}

// ShouldHaveAlt reports whether accessibility profiles expect alternate
// text on the role.
func (r Role) ShouldHaveAlt() bool { return r == RoleFigure || r == RoleFormula }

// CanHaveTitle reports whether the role carries a title that some export
// profiles require.
func (r Role) CanHaveTitle() bool { return r == RoleHn }

// IsTableCell reports whether the role is TH or TD.
func (r Role) IsTableCell() bool { return r == RoleTH || r == RoleTD }
