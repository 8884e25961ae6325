package tagging

import (
	"cmp"
	"slices"

	"github.com/wudi/tagkit/coords"
)

// AttrKind is the category of a general attribute. Categories are ordered as
// declared; a Tag stores its attributes in that order.
type AttrKind uint8

const (
	AttrID AttrKind = iota
	AttrTitle
	AttrLang
	AttrAltText
	AttrExpanded
	AttrActualText
	AttrHeadingLevel
)

func (k AttrKind) String() string {
	switch k {
	case AttrID:
		return "ID"
	case AttrTitle:
		return "Title"
	case AttrLang:
		return "Lang"
	case AttrAltText:
		return "AltText"
	case AttrExpanded:
		return "Expanded"
	case AttrActualText:
		return "ActualText"
	case AttrHeadingLevel:
		return "HeadingLevel"
	}
	return "Unknown"
}

// Attr is a general attribute applicable to any role. The implementations
// are IDAttr, TitleAttr, LangAttr, AltTextAttr, ExpandedAttr, ActualTextAttr
// and HeadingLevelAttr.
type Attr interface {
	Kind() AttrKind
	isAttr()
}

type IDAttr struct{ Value TagID }

// TitleAttr is a human-readable title of the element.
type TitleAttr struct{ Value string }

// LangAttr is the natural language of the element's content, as a BCP 47 tag.
type LangAttr struct{ Value string }

// AltTextAttr describes non-text content such as a figure.
type AltTextAttr struct{ Value string }

// ExpandedAttr is the expansion of an abbreviation.
type ExpandedAttr struct{ Value string }

// ActualTextAttr replaces the element's content for text extraction.
type ActualTextAttr struct{ Value string }

type HeadingLevelAttr struct{ Value Count }

func (IDAttr) Kind() AttrKind           { return AttrID }
func (TitleAttr) Kind() AttrKind        { return AttrTitle }
func (LangAttr) Kind() AttrKind         { return AttrLang }
func (AltTextAttr) Kind() AttrKind      { return AttrAltText }
func (ExpandedAttr) Kind() AttrKind     { return AttrExpanded }
func (ActualTextAttr) Kind() AttrKind   { return AttrActualText }
func (HeadingLevelAttr) Kind() AttrKind { return AttrHeadingLevel }

func (IDAttr) isAttr()           {}
func (TitleAttr) isAttr()        {}
func (LangAttr) isAttr()         {}
func (AltTextAttr) isAttr()      {}
func (ExpandedAttr) isAttr()     {}
func (ActualTextAttr) isAttr()   {}
func (HeadingLevelAttr) isAttr() {}

type ListAttrKind uint8

const (
	ListAttrNumbering ListAttrKind = iota
)

func (k ListAttrKind) String() string {
	if k == ListAttrNumbering {
		return "Numbering"
	}
	return "Unknown"
}

// ListAttr is an attribute of list roles. NumberingAttr is the only one.
type ListAttr interface {
	Kind() ListAttrKind
	isListAttr()
}

type NumberingAttr struct{ Value ListNumbering }

func (NumberingAttr) Kind() ListAttrKind { return ListAttrNumbering }
func (NumberingAttr) isListAttr()        {}

type TableAttrKind uint8

const (
	TableAttrSummary TableAttrKind = iota
	TableAttrHeaderScope
	TableAttrCellHeaders
	TableAttrCellSpan
)

func (k TableAttrKind) String() string {
	switch k {
	case TableAttrSummary:
		return "Summary"
	case TableAttrHeaderScope:
		return "HeaderScope"
	case TableAttrCellHeaders:
		return "CellHeaders"
	case TableAttrCellSpan:
		return "CellSpan"
	}
	return "Unknown"
}

// TableAttr is an attribute of table roles: SummaryAttr, HeaderScopeAttr,
// CellHeadersAttr or CellSpanAttr.
type TableAttr interface {
	Kind() TableAttrKind
	isTableAttr()
}

type SummaryAttr struct{ Value string }

type HeaderScopeAttr struct{ Value TableHeaderScope }

// CellHeadersAttr lists the header cells that apply to a cell.
type CellHeadersAttr struct{ Value []TagID }

type CellSpanAttr struct{ Value TableCellSpan }

func (SummaryAttr) Kind() TableAttrKind     { return TableAttrSummary }
func (HeaderScopeAttr) Kind() TableAttrKind { return TableAttrHeaderScope }
func (CellHeadersAttr) Kind() TableAttrKind { return TableAttrCellHeaders }
func (CellSpanAttr) Kind() TableAttrKind    { return TableAttrCellSpan }

func (SummaryAttr) isTableAttr()     {}
func (HeaderScopeAttr) isTableAttr() {}
func (CellHeadersAttr) isTableAttr() {}
func (CellSpanAttr) isTableAttr()    {}

type LayoutAttrKind uint8

const (
	LayoutAttrPlacement LayoutAttrKind = iota
	LayoutAttrWritingMode
	LayoutAttrBBox
	LayoutAttrWidth
	LayoutAttrHeight
)

func (k LayoutAttrKind) String() string {
	switch k {
	case LayoutAttrPlacement:
		return "Placement"
	case LayoutAttrWritingMode:
		return "WritingMode"
	case LayoutAttrBBox:
		return "BBox"
	case LayoutAttrWidth:
		return "Width"
	case LayoutAttrHeight:
		return "Height"
	}
	return "Unknown"
}

// LayoutAttr is a layout attribute: PlacementAttr, WritingModeAttr,
// BBoxAttr, WidthAttr or HeightAttr.
type LayoutAttr interface {
	Kind() LayoutAttrKind
	isLayoutAttr()
}

type PlacementAttr struct{ Value Placement }

type WritingModeAttr struct{ Value WritingMode }

// BBoxAttr is the element's bounding box in default user space.
type BBoxAttr struct{ Value coords.Rect }

type WidthAttr struct{ Value float32 }

type HeightAttr struct{ Value float32 }

func (PlacementAttr) Kind() LayoutAttrKind   { return LayoutAttrPlacement }
func (WritingModeAttr) Kind() LayoutAttrKind { return LayoutAttrWritingMode }
func (BBoxAttr) Kind() LayoutAttrKind        { return LayoutAttrBBox }
func (WidthAttr) Kind() LayoutAttrKind       { return LayoutAttrWidth }
func (HeightAttr) Kind() LayoutAttrKind      { return LayoutAttrHeight }

func (PlacementAttr) isLayoutAttr()   {}
func (WritingModeAttr) isLayoutAttr() {}
func (BBoxAttr) isLayoutAttr()        {}
func (WidthAttr) isLayoutAttr()       {}
func (HeightAttr) isLayoutAttr()      {}

func compareAttr(a, b Attr) int             { return cmp.Compare(a.Kind(), b.Kind()) }
func compareListAttr(a, b ListAttr) int     { return cmp.Compare(a.Kind(), b.Kind()) }
func compareTableAttr(a, b TableAttr) int   { return cmp.Compare(a.Kind(), b.Kind()) }
func compareLayoutAttr(a, b LayoutAttr) int { return cmp.Compare(a.Kind(), b.Kind()) }

// NewAttrSet returns an empty general attribute set ordered by kind.
func NewAttrSet() BSet[Attr] { return NewBSet(compareAttr) }

func NewListAttrSet() BSet[ListAttr] { return NewBSet(compareListAttr) }

func NewTableAttrSet() BSet[TableAttr] { return NewBSet(compareTableAttr) }

func NewLayoutAttrSet() BSet[LayoutAttr] { return NewBSet(compareLayoutAttr) }

func cloneTableAttr(a TableAttr) TableAttr {
	if h, ok := a.(CellHeadersAttr); ok {
		return CellHeadersAttr{Value: slices.Clone(h.Value)}
	}
	return a
}
