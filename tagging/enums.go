package tagging

import "fmt"

// ListNumbering is the bullet or numbering style of a list.
type ListNumbering uint8

const (
	// NumberingNone uses no numbering.
	NumberingNone ListNumbering = iota
	// NumberingDisc uses solid circular bullets.
	NumberingDisc
	// NumberingCircle uses open circular bullets.
	NumberingCircle
	// NumberingSquare uses solid square bullets.
	NumberingSquare
	// NumberingDecimal uses decimal numbers.
	NumberingDecimal
	// NumberingLowerRoman uses lowercase Roman numerals.
	NumberingLowerRoman
	// NumberingUpperRoman uses uppercase Roman numerals.
	NumberingUpperRoman
	// NumberingLowerAlpha uses lowercase letters.
	NumberingLowerAlpha
	// NumberingUpperAlpha uses uppercase letters.
	NumberingUpperAlpha
)

// ListNumberings lists every numbering style in declaration order.
var ListNumberings = []ListNumbering{
	NumberingNone, NumberingDisc, NumberingCircle, NumberingSquare, NumberingDecimal,
	NumberingLowerRoman, NumberingUpperRoman, NumberingLowerAlpha, NumberingUpperAlpha,
}

var listNumberingNames = [...]string{
	"None", "Disc", "Circle", "Square", "Decimal",
	"LowerRoman", "UpperRoman", "LowerAlpha", "UpperAlpha",
}

func (n ListNumbering) Valid() bool { return int(n) < len(listNumberingNames) }

func (n ListNumbering) String() string {
	if !n.Valid() {
		return fmt.Sprintf("ListNumbering(%d)", n)
	}
	return listNumberingNames[n]
}

// TableHeaderScope tells which cells a header cell applies to.
type TableHeaderScope uint8

const (
	// ScopeRow means the header applies to the rest of its row.
	ScopeRow TableHeaderScope = iota
	// ScopeColumn means the header applies to the rest of its column.
	ScopeColumn
	// ScopeBoth means the header applies to its row and column.
	ScopeBoth
)

var TableHeaderScopes = []TableHeaderScope{ScopeRow, ScopeColumn, ScopeBoth}

func (s TableHeaderScope) Valid() bool { return s <= ScopeBoth }

func (s TableHeaderScope) String() string {
	switch s {
	case ScopeRow:
		return "Row"
	case ScopeColumn:
		return "Column"
	case ScopeBoth:
		return "Both"
	default:
		return fmt.Sprintf("TableHeaderScope(%d)", s)
	}
}

// Placement positions an element relative to the enclosing reference area
// and other content. On an inline-level element any value except
// PlacementInline turns it into a block-level element.
//
// The zero value is PlacementInline, the format default.
type Placement uint8

const (
	// PlacementInline packs the element in the inline-progression direction
	// within its enclosing block-level element.
	PlacementInline Placement = iota
	// PlacementBlock stacks the element in the block-progression direction
	// within its reference area or parent block-level element.
	PlacementBlock
	// PlacementBefore aligns the before edge of the element's allocation
	// rectangle with the nearest reference area. The element may float and
	// spans the full inline extent; other content starts after it.
	PlacementBefore
	// PlacementStart aligns the start edge with the nearest reference area.
	// The element may float; intruding content runs around it.
	PlacementStart
	// PlacementEnd aligns the end edge with the nearest reference area.
	// The element may float; intruding content runs around it.
	PlacementEnd
)

var Placements = []Placement{PlacementInline, PlacementBlock, PlacementBefore, PlacementStart, PlacementEnd}

func (p Placement) Valid() bool { return p <= PlacementEnd }

func (p Placement) String() string {
	switch p {
	case PlacementInline:
		return "Inline"
	case PlacementBlock:
		return "Block"
	case PlacementBefore:
		return "Before"
	case PlacementStart:
		return "Start"
	case PlacementEnd:
		return "End"
	default:
		return fmt.Sprintf("Placement(%d)", p)
	}
}

// WritingMode gives the inline and block progression directions. It applies
// to the element and all of its descendants unless overridden.
//
// The zero value is WritingLrTb, the format default.
type WritingMode uint8

const (
	// WritingLrTb progresses left to right, lines top to bottom. Western
	// scripts.
	WritingLrTb WritingMode = iota
	// WritingRlTb progresses right to left, lines top to bottom. Arabic and
	// Hebrew.
	WritingRlTb
	// WritingTbRl progresses top to bottom, lines right to left. Vertical
	// Chinese and Japanese.
	WritingTbRl
)

var WritingModes = []WritingMode{WritingLrTb, WritingRlTb, WritingTbRl}

func (w WritingMode) Valid() bool { return w <= WritingTbRl }

func (w WritingMode) String() string {
	switch w {
	case WritingLrTb:
		return "LrTb"
	case WritingRlTb:
		return "RlTb"
	case WritingTbRl:
		return "TbRl"
	default:
		return fmt.Sprintf("WritingMode(%d)", w)
	}
}
