package writer

import (
	"strconv"

	"github.com/wudi/tagkit/ir/raw"
)

// ListNumbering is the value of the /ListNumbering attribute.
type ListNumbering string

const (
	ListNumberingNone       ListNumbering = "None"
	ListNumberingDisc       ListNumbering = "Disc"
	ListNumberingCircle     ListNumbering = "Circle"
	ListNumberingSquare     ListNumbering = "Square"
	ListNumberingDecimal    ListNumbering = "Decimal"
	ListNumberingLowerRoman ListNumbering = "LowerRoman"
	ListNumberingUpperRoman ListNumbering = "UpperRoman"
	ListNumberingLowerAlpha ListNumbering = "LowerAlpha"
	ListNumberingUpperAlpha ListNumbering = "UpperAlpha"
)

func (n ListNumbering) Name() raw.NameObj { return raw.NameLiteral(string(n)) }

// TableHeaderScope is the value of the /Scope attribute.
type TableHeaderScope string

const (
	TableHeaderScopeRow    TableHeaderScope = "Row"
	TableHeaderScopeColumn TableHeaderScope = "Column"
	TableHeaderScopeBoth   TableHeaderScope = "Both"
)

func (s TableHeaderScope) Name() raw.NameObj { return raw.NameLiteral(string(s)) }

// Placement is the value of the /Placement layout attribute.
type Placement string

const (
	PlacementBlock  Placement = "Block"
	PlacementInline Placement = "Inline"
	PlacementBefore Placement = "Before"
	PlacementStart  Placement = "Start"
	PlacementEnd    Placement = "End"
)

func (p Placement) Name() raw.NameObj { return raw.NameLiteral(string(p)) }

// WritingMode is the value of the /WritingMode layout attribute. The
// constant names spell out the inline and block progression directions.
type WritingMode string

const (
	WritingModeLtrTtb WritingMode = "LrTb"
	WritingModeRtlTtb WritingMode = "RlTb"
	WritingModeTtbRtl WritingMode = "TbRl"
)

func (w WritingMode) Name() raw.NameObj { return raw.NameLiteral(string(w)) }

// AttributeOwner is the /O entry of an attribute object.
type AttributeOwner string

const (
	OwnerList   AttributeOwner = "List"
	OwnerTable  AttributeOwner = "Table"
	OwnerLayout AttributeOwner = "Layout"
)

func (o AttributeOwner) Name() raw.NameObj { return raw.NameLiteral(string(o)) }

// StructType is the /S entry of a structure element.
type StructType string

const (
	TypePart       StructType = "Part"
	TypeArt        StructType = "Art"
	TypeSect       StructType = "Sect"
	TypeDiv        StructType = "Div"
	TypeBlockQuote StructType = "BlockQuote"
	TypeCaption    StructType = "Caption"
	TypeTOC        StructType = "TOC"
	TypeTOCI       StructType = "TOCI"
	TypeIndex      StructType = "Index"
	TypeP          StructType = "P"
	TypeL          StructType = "L"
	TypeLI         StructType = "LI"
	TypeLbl        StructType = "Lbl"
	TypeLBody      StructType = "LBody"
	TypeTable      StructType = "Table"
	TypeTR         StructType = "TR"
	TypeTH         StructType = "TH"
	TypeTD         StructType = "TD"
	TypeTHead      StructType = "THead"
	TypeTBody      StructType = "TBody"
	TypeTFoot      StructType = "TFoot"
	TypeSpan       StructType = "Span"
	TypeQuote      StructType = "Quote"
	TypeNote       StructType = "Note"
	TypeReference  StructType = "Reference"
	TypeBibEntry   StructType = "BibEntry"
	TypeCode       StructType = "Code"
	TypeLink       StructType = "Link"
	TypeAnnot      StructType = "Annot"
	TypeFigure     StructType = "Figure"
	TypeFormula    StructType = "Formula"
	TypeTitle      StructType = "Title"
	TypeH          StructType = "H"
)

// MaxHeadingLevel is the deepest numbered heading PDF 1.7 defines.
const MaxHeadingLevel = 6

// Heading returns the numbered heading type H<level>. Levels above
// MaxHeadingLevel are not standard and need a role map entry.
func Heading(level uint32) StructType {
	return StructType("H" + strconv.FormatUint(uint64(level), 10))
}

func (t StructType) Name() raw.NameObj { return raw.NameLiteral(string(t)) }

var standard17 = map[StructType]bool{
	TypePart: true, TypeArt: true, TypeSect: true, TypeDiv: true, TypeBlockQuote: true,
	TypeCaption: true, TypeTOC: true, TypeTOCI: true, TypeIndex: true, TypeP: true,
	TypeH: true, "H1": true, "H2": true, "H3": true, "H4": true, "H5": true, "H6": true,
	TypeL: true, TypeLI: true, TypeLbl: true, TypeLBody: true, TypeTable: true,
	TypeTR: true, TypeTH: true, TypeTD: true, TypeTHead: true, TypeTBody: true,
	TypeTFoot: true, TypeSpan: true, TypeQuote: true, TypeNote: true,
	TypeReference: true, TypeBibEntry: true, TypeCode: true, TypeLink: true,
	TypeAnnot: true, TypeFigure: true, TypeFormula: true,
	"NonStruct": true, "Private": true, "Document": true, "Ruby": true, "Warichu": true,
}

// IsStandard reports whether t is a standard structure type for version.
// PDF 2.0 adds Title and unbounded heading levels.
func (t StructType) IsStandard(version PDFVersion) bool {
	if standard17[t] {
		return true
	}
	if version != PDF20 {
		return false
	}
	if t == TypeTitle || t == "DocumentFragment" || t == "Aside" || t == "FENote" || t == "Em" || t == "Strong" || t == "Sub" {
		return true
	}
	if len(t) > 1 && t[0] == 'H' {
		_, err := strconv.ParseUint(string(t[1:]), 10, 32)
		return err == nil && t[1] != '0'
	}
	return false
}
