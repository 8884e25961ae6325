package tagging

import (
	"slices"

	"github.com/wudi/tagkit/coords"
)

// Tag is a structure role together with its attributes. Each attribute
// category holds at most one value; setting a category twice keeps the last
// value.
//
// A Tag is built by one producer and then read by the serializer. It is not
// safe for concurrent mutation.
type Tag struct {
	role     Role
	location coords.Location
	hasLoc   bool

	attrs  BSet[Attr]
	list   BSet[ListAttr]
	table  BSet[TableAttr]
	layout BSet[LayoutAttr]
}

func newTag(role Role) *Tag {
	return &Tag{
		role:   role,
		attrs:  NewAttrSet(),
		list:   NewListAttrSet(),
		table:  NewTableAttrSet(),
		layout: NewLayoutAttrSet(),
	}
}

func (t *Tag) Role() Role { return t.role }

// Location returns the producer-supplied location, if any.
func (t *Tag) Location() (coords.Location, bool) { return t.location, t.hasLoc }

// Attrs returns the general attributes ordered by AttrKind.
func (t *Tag) Attrs() []Attr { return t.attrs.Items() }

// ListAttrs returns the list attributes ordered by ListAttrKind.
func (t *Tag) ListAttrs() []ListAttr { return t.list.Items() }

// TableAttrs returns the table attributes ordered by TableAttrKind.
func (t *Tag) TableAttrs() []TableAttr { return t.table.Items() }

// LayoutAttrs returns the layout attributes ordered by LayoutAttrKind.
func (t *Tag) LayoutAttrs() []LayoutAttr { return t.layout.Items() }

// SetAttr stores a general attribute, replacing one of the same kind.
func (t *Tag) SetAttr(a Attr) { t.ensureSets(); t.attrs.Set(a) }

func (t *Tag) SetListAttr(a ListAttr) { t.ensureSets(); t.list.Set(a) }

func (t *Tag) SetTableAttr(a TableAttr) { t.ensureSets(); t.table.Set(cloneTableAttr(a)) }

func (t *Tag) SetLayoutAttr(a LayoutAttr) { t.ensureSets(); t.layout.Set(a) }

// Apply sets common attributes after construction.
func (t *Tag) Apply(opts ...CommonOption) *Tag {
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Clone returns a deep copy of t.
func (t *Tag) Clone() *Tag {
	c := &Tag{
		role:     t.role,
		location: t.location,
		hasLoc:   t.hasLoc,
		attrs:    t.attrs.Clone(),
		list:     t.list.Clone(),
		table:    t.table.Clone(),
		layout:   t.layout.Clone(),
	}
	for i, a := range c.table.items {
		c.table.items[i] = cloneTableAttr(a)
	}
	c.ensureSets()
	return c
}

// ensureSets makes a zero Tag usable.
func (t *Tag) ensureSets() {
	if t.attrs.cmp == nil {
		t.attrs.cmp = compareAttr
	}
	if t.list.cmp == nil {
		t.list.cmp = compareListAttr
	}
	if t.table.cmp == nil {
		t.table.cmp = compareTableAttr
	}
	if t.layout.cmp == nil {
		t.layout.cmp = compareLayoutAttr
	}
}

func findAttr[T Attr](t *Tag, probe T) (T, bool) {
	t.ensureSets()
	a, ok := t.attrs.Find(probe)
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := a.(T)
	return v, ok
}

func findTableAttr[T TableAttr](t *Tag, probe T) (T, bool) {
	t.ensureSets()
	a, ok := t.table.Find(probe)
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := a.(T)
	return v, ok
}

func findLayoutAttr[T LayoutAttr](t *Tag, probe T) (T, bool) {
	t.ensureSets()
	a, ok := t.layout.Find(probe)
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := a.(T)
	return v, ok
}

func (t *Tag) ID() (TagID, bool) {
	a, ok := findAttr(t, IDAttr{})
	return a.Value, ok
}

func (t *Tag) Title() (string, bool) {
	a, ok := findAttr(t, TitleAttr{})
	return a.Value, ok
}

func (t *Tag) Lang() (string, bool) {
	a, ok := findAttr(t, LangAttr{})
	return a.Value, ok
}

func (t *Tag) AltText() (string, bool) {
	a, ok := findAttr(t, AltTextAttr{})
	return a.Value, ok
}

func (t *Tag) Expanded() (string, bool) {
	a, ok := findAttr(t, ExpandedAttr{})
	return a.Value, ok
}

func (t *Tag) ActualText() (string, bool) {
	a, ok := findAttr(t, ActualTextAttr{})
	return a.Value, ok
}

func (t *Tag) HeadingLevel() (Count, bool) {
	a, ok := findAttr(t, HeadingLevelAttr{})
	return a.Value, ok
}

func (t *Tag) Numbering() (ListNumbering, bool) {
	t.ensureSets()
	a, ok := t.list.Find(NumberingAttr{})
	if !ok {
		return NumberingNone, false
	}
	n, ok := a.(NumberingAttr)
	return n.Value, ok
}

func (t *Tag) Summary() (string, bool) {
	a, ok := findTableAttr(t, SummaryAttr{})
	return a.Value, ok
}

func (t *Tag) HeaderScope() (TableHeaderScope, bool) {
	a, ok := findTableAttr(t, HeaderScopeAttr{})
	return a.Value, ok
}

// Headers returns a copy of the header cell identifiers.
func (t *Tag) Headers() []TagID {
	a, ok := findTableAttr(t, CellHeadersAttr{})
	if !ok {
		return nil
	}
	return slices.Clone(a.Value)
}

func (t *Tag) Span() (TableCellSpan, bool) {
	a, ok := findTableAttr(t, CellSpanAttr{})
	return a.Value, ok
}

func (t *Tag) Placement() (Placement, bool) {
	a, ok := findLayoutAttr(t, PlacementAttr{})
	return a.Value, ok
}

func (t *Tag) WritingMode() (WritingMode, bool) {
	a, ok := findLayoutAttr(t, WritingModeAttr{})
	return a.Value, ok
}

func (t *Tag) BBox() (coords.Rect, bool) {
	a, ok := findLayoutAttr(t, BBoxAttr{})
	return a.Value, ok
}

func (t *Tag) Width() (float32, bool) {
	a, ok := findLayoutAttr(t, WidthAttr{})
	return a.Value, ok
}

func (t *Tag) Height() (float32, bool) {
	a, ok := findLayoutAttr(t, HeightAttr{})
	return a.Value, ok
}
