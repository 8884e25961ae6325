package tagging

import (
	"slices"

	"github.com/wudi/tagkit/coords"
)

// CommonOption sets an attribute that every role accepts. It satisfies
// CellOption, TableOption and GraphicOption as well.
type CommonOption func(*Tag)

// CellOption configures a table header or data cell.
type CellOption interface {
	applyTo(*Tag)
	cellOption()
}

// TableOption configures a table.
type TableOption interface {
	applyTo(*Tag)
	tableOption()
}

// GraphicOption configures a figure or formula.
type GraphicOption interface {
	applyTo(*Tag)
	graphicOption()
}

// BoxOption is accepted by tables and graphics.
type BoxOption interface {
	TableOption
	GraphicOption
}

// SizeOption is accepted by cells, tables and graphics.
type SizeOption interface {
	CellOption
	TableOption
	GraphicOption
}

func (o CommonOption) applyTo(t *Tag) {
	if o != nil {
		o(t)
	}
}
func (CommonOption) cellOption()    {}
func (CommonOption) tableOption()   {}
func (CommonOption) graphicOption() {}

type cellOpt func(*Tag)

func (o cellOpt) applyTo(t *Tag) { o(t) }
func (cellOpt) cellOption()      {}

type tableOpt func(*Tag)

func (o tableOpt) applyTo(t *Tag) { o(t) }
func (tableOpt) tableOption()     {}

// bboxOpt applies to tables and graphics.
type bboxOpt func(*Tag)

func (o bboxOpt) applyTo(t *Tag) { o(t) }
func (bboxOpt) tableOption()     {}
func (bboxOpt) graphicOption()   {}

// sizeOpt applies to cells, tables and graphics.
type sizeOpt func(*Tag)

func (o sizeOpt) applyTo(t *Tag) { o(t) }
func (sizeOpt) cellOption()      {}
func (sizeOpt) tableOption()     {}
func (sizeOpt) graphicOption()   {}

func WithID(id TagID) CommonOption {
	return func(t *Tag) { t.SetAttr(IDAttr{Value: id}) }
}

func WithTitle(title string) CommonOption {
	return func(t *Tag) { t.SetAttr(TitleAttr{Value: title}) }
}

// WithLang sets the content language as a BCP 47 tag such as "en-US".
func WithLang(lang string) CommonOption {
	return func(t *Tag) { t.SetAttr(LangAttr{Value: lang}) }
}

func WithAltText(alt string) CommonOption {
	return func(t *Tag) { t.SetAttr(AltTextAttr{Value: alt}) }
}

func WithExpanded(expanded string) CommonOption {
	return func(t *Tag) { t.SetAttr(ExpandedAttr{Value: expanded}) }
}

func WithActualText(text string) CommonOption {
	return func(t *Tag) { t.SetAttr(ActualTextAttr{Value: text}) }
}

func WithLocation(loc coords.Location) CommonOption {
	return func(t *Tag) {
		t.location = loc
		t.hasLoc = true
	}
}

func WithPlacement(p Placement) CommonOption {
	return func(t *Tag) { t.SetLayoutAttr(PlacementAttr{Value: p}) }
}

func WithWritingMode(w WritingMode) CommonOption {
	return func(t *Tag) { t.SetLayoutAttr(WritingModeAttr{Value: w}) }
}

// WithHeaders names the header cells that apply to a cell.
func WithHeaders(ids ...TagID) CellOption {
	ids = slices.Clone(ids)
	return cellOpt(func(t *Tag) { t.SetTableAttr(CellHeadersAttr{Value: ids}) })
}

func WithSpan(span TableCellSpan) CellOption {
	return cellOpt(func(t *Tag) { t.SetTableAttr(CellSpanAttr{Value: span}) })
}

// WithSummary describes the purpose and structure of a table.
func WithSummary(summary string) TableOption {
	return tableOpt(func(t *Tag) { t.SetTableAttr(SummaryAttr{Value: summary}) })
}

func WithBBox(r coords.Rect) BoxOption {
	return bboxOpt(func(t *Tag) { t.SetLayoutAttr(BBoxAttr{Value: r}) })
}

func WithWidth(w float32) SizeOption {
	return sizeOpt(func(t *Tag) { t.SetLayoutAttr(WidthAttr{Value: w}) })
}

func WithHeight(h float32) SizeOption {
	return sizeOpt(func(t *Tag) { t.SetLayoutAttr(HeightAttr{Value: h}) })
}

// New returns a tag for role with common attributes only. Roles with a
// required attribute get the format default: heading level 1 for RoleHn,
// NumberingNone for RoleL and ScopeBoth for RoleTH.
func New(role Role, opts ...CommonOption) *Tag {
	t := newTag(role)
	switch role {
	case RoleHn:
		t.SetAttr(HeadingLevelAttr{Value: CountOne})
	case RoleL:
		t.SetListAttr(NumberingAttr{Value: NumberingNone})
	case RoleTH:
		t.SetTableAttr(HeaderScopeAttr{Value: ScopeBoth})
	}
	return t.Apply(opts...)
}

// Heading returns an Hn tag of the given level.
func Heading(level Count, opts ...CommonOption) *Tag {
	t := newTag(RoleHn)
	t.SetAttr(HeadingLevelAttr{Value: level})
	return t.Apply(opts...)
}

// List returns an L tag with the given numbering.
func List(numbering ListNumbering, opts ...CommonOption) *Tag {
	t := newTag(RoleL)
	t.SetListAttr(NumberingAttr{Value: numbering})
	return t.Apply(opts...)
}

// TableHeader returns a TH tag with the given scope.
func TableHeader(scope TableHeaderScope, opts ...CellOption) *Tag {
	t := newTag(RoleTH)
	t.SetTableAttr(HeaderScopeAttr{Value: scope})
	for _, opt := range opts {
		if opt != nil {
			opt.applyTo(t)
		}
	}
	return t
}

// TableData returns a TD tag.
func TableData(opts ...CellOption) *Tag {
	t := newTag(RoleTD)
	for _, opt := range opts {
		if opt != nil {
			opt.applyTo(t)
		}
	}
	return t
}

func Table(opts ...TableOption) *Tag {
	t := newTag(RoleTable)
	for _, opt := range opts {
		if opt != nil {
			opt.applyTo(t)
		}
	}
	return t
}

// Figure returns a Figure tag. Accessibility profiles expect alternate
// text, see WithAltText.
func Figure(opts ...GraphicOption) *Tag {
	return graphic(RoleFigure, opts)
}

// Formula returns a Formula tag. Accessibility profiles expect alternate
// text, see WithAltText.
func Formula(opts ...GraphicOption) *Tag {
	return graphic(RoleFormula, opts)
}

func graphic(role Role, opts []GraphicOption) *Tag {
	t := newTag(role)
	for _, opt := range opts {
		if opt != nil {
			opt.applyTo(t)
		}
	}
	return t
}
