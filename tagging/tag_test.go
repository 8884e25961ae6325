package tagging_test

import (
	"errors"
	"testing"

	"github.com/wudi/tagkit/coords"
	"github.com/wudi/tagkit/tagging"
)

func TestCount(t *testing.T) {
	if _, err := tagging.NewCount(0); !errors.Is(err, tagging.ErrZeroCount) {
		t.Fatalf("NewCount(0) err = %v", err)
	}
	c, err := tagging.NewCount(4)
	if err != nil || c.Uint32() != 4 || c.IsOne() || c.String() != "4" {
		t.Fatalf("NewCount(4) = %v, %v", c, err)
	}
	var zero tagging.Count
	if zero.Uint32() != 1 || !zero.IsOne() || zero != tagging.CountOne {
		t.Fatal("zero Count must equal 1")
	}
	if tagging.MustCount(1) != tagging.CountOne {
		t.Fatal("MustCount(1) != CountOne")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("MustCount(0) did not panic")
		}
	}()
	tagging.MustCount(0)
}

func TestTableCellSpan(t *testing.T) {
	if _, ok := tagging.OneSpan.RowSpan(); ok {
		t.Error("OneSpan has a row span")
	}
	if _, ok := tagging.OneSpan.ColSpan(); ok {
		t.Error("OneSpan has a col span")
	}
	var zero tagging.TableCellSpan
	if zero != tagging.OneSpan {
		t.Error("zero span must be OneSpan")
	}

	for _, n := range []uint32{1, 2, 7, 1 << 31} {
		row := tagging.RowSpanOf(tagging.MustCount(n))
		if _, ok := row.ColSpan(); ok {
			t.Errorf("RowSpanOf(%d) has a col span", n)
		}
		got, ok := row.RowSpan()
		if ok != (n != 1) {
			t.Errorf("RowSpanOf(%d).RowSpan present = %v", n, ok)
		}
		if ok && got.Uint32() != n {
			t.Errorf("RowSpanOf(%d).RowSpan = %d", n, got.Uint32())
		}

		col := tagging.ColSpanOf(tagging.MustCount(n))
		if _, ok := col.RowSpan(); ok {
			t.Errorf("ColSpanOf(%d) has a row span", n)
		}
		if got, ok := col.ColSpan(); ok != (n != 1) || (ok && got.Uint32() != n) {
			t.Errorf("ColSpanOf(%d).ColSpan = %v,%v", n, got, ok)
		}
	}

	span := tagging.NewTableCellSpan(tagging.MustCount(2), tagging.MustCount(3))
	if span.String() != "2x3" {
		t.Errorf("String = %q", span.String())
	}
}

func TestEnumsAreClosed(t *testing.T) {
	if len(tagging.ListNumberings) != 9 || len(tagging.TableHeaderScopes) != 3 ||
		len(tagging.Placements) != 5 || len(tagging.WritingModes) != 3 {
		t.Fatal("unexpected enum sizes")
	}
	names := map[string]bool{}
	for _, n := range tagging.ListNumberings {
		if !n.Valid() || names[n.String()] {
			t.Fatalf("bad numbering %v", n)
		}
		names[n.String()] = true
	}
	if tagging.ListNumbering(9).Valid() || tagging.Placement(5).Valid() ||
		tagging.WritingMode(3).Valid() || tagging.TableHeaderScope(3).Valid() {
		t.Fatal("out of range value reported valid")
	}
	var p tagging.Placement
	var w tagging.WritingMode
	if p != tagging.PlacementInline || w != tagging.WritingLrTb {
		t.Fatal("zero values must be the format defaults")
	}
	if tagging.WritingRlTb.String() != "RlTb" || tagging.Placement(9).String() != "Placement(9)" {
		t.Fatal("String mismatch")
	}
}

func TestTableHeaderBuilder(t *testing.T) {
	th := tagging.TableHeader(tagging.ScopeRow,
		tagging.WithID(tagging.TagIDString("this id")),
		tagging.WithSpan(tagging.ColSpanOf(tagging.MustCount(3))),
		tagging.WithHeaders(tagging.TagIDString("parent id")),
		tagging.WithWidth(250),
		tagging.WithHeight(100),
	)
	if th.Role() != tagging.RoleTH {
		t.Fatalf("role = %v", th.Role())
	}
	if scope, ok := th.HeaderScope(); !ok || scope != tagging.ScopeRow {
		t.Fatalf("scope = %v,%v", scope, ok)
	}
	if id, ok := th.ID(); !ok || id != tagging.TagIDString("this id") {
		t.Fatalf("id = %v,%v", id, ok)
	}
	span, _ := th.Span()
	if c, ok := span.ColSpan(); !ok || c.Uint32() != 3 {
		t.Fatalf("span = %v", span)
	}
	if h := th.Headers(); len(h) != 1 || h[0] != tagging.TagIDString("parent id") {
		t.Fatalf("headers = %v", h)
	}
	if w, _ := th.Width(); w != 250 {
		t.Fatalf("width = %v", w)
	}
	if h, _ := th.Height(); h != 100 {
		t.Fatalf("height = %v", h)
	}

	table := th.TableAttrs()
	wantKinds := []tagging.TableAttrKind{tagging.TableAttrHeaderScope, tagging.TableAttrCellHeaders, tagging.TableAttrCellSpan}
	if len(table) != len(wantKinds) {
		t.Fatalf("table attrs = %v", table)
	}
	for i, k := range wantKinds {
		if table[i].Kind() != k {
			t.Errorf("table[%d] = %v, want %v", i, table[i].Kind(), k)
		}
	}
	layout := th.LayoutAttrs()
	if len(layout) != 2 || layout[0].Kind() != tagging.LayoutAttrWidth || layout[1].Kind() != tagging.LayoutAttrHeight {
		t.Fatalf("layout attrs = %v", layout)
	}
}

func TestAttributeOrderIndependentOfCallOrder(t *testing.T) {
	a := tagging.New(tagging.RoleP,
		tagging.WithLang("de"), tagging.WithTitle("T"), tagging.WithID(tagging.TagIDString("p")),
		tagging.WithWritingMode(tagging.WritingRlTb), tagging.WithPlacement(tagging.PlacementBlock))
	b := tagging.New(tagging.RoleP,
		tagging.WithPlacement(tagging.PlacementBlock), tagging.WithID(tagging.TagIDString("p")),
		tagging.WithWritingMode(tagging.WritingRlTb), tagging.WithTitle("T"), tagging.WithLang("de"))

	ak, bk := a.Attrs(), b.Attrs()
	if len(ak) != 3 || len(bk) != 3 {
		t.Fatalf("attrs = %v / %v", ak, bk)
	}
	for i := range ak {
		if ak[i] != bk[i] {
			t.Fatalf("attr %d differs: %v vs %v", i, ak[i], bk[i])
		}
	}
	if ak[0].Kind() != tagging.AttrID || ak[1].Kind() != tagging.AttrTitle || ak[2].Kind() != tagging.AttrLang {
		t.Fatalf("attrs not ordered by kind: %v", ak)
	}
	la, lb := a.LayoutAttrs(), b.LayoutAttrs()
	if la[0] != lb[0] || la[1] != lb[1] || la[0].Kind() != tagging.LayoutAttrPlacement {
		t.Fatalf("layout attrs differ: %v vs %v", la, lb)
	}
}

func TestLastWriteWins(t *testing.T) {
	tag := tagging.New(tagging.RoleP,
		tagging.WithPlacement(tagging.PlacementStart),
		tagging.WithPlacement(tagging.PlacementEnd),
		tagging.WithLang("en"),
	)
	tag.Apply(tagging.WithLang("fr"))

	if p, _ := tag.Placement(); p != tagging.PlacementEnd {
		t.Fatalf("placement = %v, want End", p)
	}
	if l, _ := tag.Lang(); l != "fr" {
		t.Fatalf("lang = %q, want fr", l)
	}
	if len(tag.LayoutAttrs()) != 1 || len(tag.Attrs()) != 1 {
		t.Fatal("duplicate category stored")
	}
}

func TestRoleDefaults(t *testing.T) {
	if lvl, ok := tagging.New(tagging.RoleHn).HeadingLevel(); !ok || !lvl.IsOne() {
		t.Fatalf("Hn default level = %v,%v", lvl, ok)
	}
	if n, ok := tagging.New(tagging.RoleL).Numbering(); !ok || n != tagging.NumberingNone {
		t.Fatalf("L default numbering = %v,%v", n, ok)
	}
	if s, ok := tagging.New(tagging.RoleTH).HeaderScope(); !ok || s != tagging.ScopeBoth {
		t.Fatalf("TH default scope = %v,%v", s, ok)
	}
	p := tagging.New(tagging.RoleP)
	if len(p.Attrs())+len(p.ListAttrs())+len(p.TableAttrs())+len(p.LayoutAttrs()) != 0 {
		t.Fatal("paragraph should start without attributes")
	}
	if _, ok := p.Lang(); ok {
		t.Fatal("Lang reported on empty tag")
	}
}

func TestGraphicAndTableBuilders(t *testing.T) {
	box := coords.RectXYWH(0, 0, 100, 50)
	fig := tagging.Figure(tagging.WithAltText("chart"), tagging.WithBBox(box), tagging.WithWidth(100))
	if fig.Role() != tagging.RoleFigure || !fig.Role().ShouldHaveAlt() {
		t.Fatal("figure role")
	}
	if got, ok := fig.BBox(); !ok || got != box {
		t.Fatalf("bbox = %v,%v", got, ok)
	}
	if alt, _ := fig.AltText(); alt != "chart" {
		t.Fatalf("alt = %q", alt)
	}

	f := tagging.Formula(tagging.WithActualText("E=mc^2"))
	if txt, _ := f.ActualText(); txt != "E=mc^2" || f.Role() != tagging.RoleFormula {
		t.Fatal("formula builder")
	}

	tbl := tagging.Table(tagging.WithSummary("prices"), tagging.WithBBox(box), tagging.WithLang("en"))
	if s, _ := tbl.Summary(); s != "prices" {
		t.Fatalf("summary = %q", s)
	}
	if _, ok := tbl.BBox(); !ok {
		t.Fatal("table bbox missing")
	}

	h := tagging.Heading(tagging.MustCount(2), tagging.WithTitle("Intro"), tagging.WithExpanded("Introduction"))
	if lvl, _ := h.HeadingLevel(); lvl.Uint32() != 2 || !h.Role().CanHaveTitle() {
		t.Fatal("heading builder")
	}
	if e, _ := h.Expanded(); e != "Introduction" {
		t.Fatalf("expanded = %q", e)
	}

	l := tagging.List(tagging.NumberingLowerRoman)
	if n, _ := l.Numbering(); n != tagging.NumberingLowerRoman {
		t.Fatalf("numbering = %v", n)
	}
	if len(l.ListAttrs()) != 1 {
		t.Fatal("list attrs")
	}

	td := tagging.TableData(tagging.WithLocation(42))
	if loc, ok := td.Location(); !ok || loc != 42 {
		t.Fatalf("location = %v,%v", loc, ok)
	}
}

func TestCloneIsDeep(t *testing.T) {
	ids := []tagging.TagID{tagging.TagIDString("h1")}
	td := tagging.TableData(tagging.WithHeaders(ids...))
	ids[0] = tagging.TagIDString("mutated")
	if td.Headers()[0] != tagging.TagIDString("h1") {
		t.Fatal("WithHeaders kept a reference to the caller slice")
	}

	c := td.Clone()
	c.Apply(tagging.WithLang("it"))
	c.SetTableAttr(tagging.CellSpanAttr{Value: tagging.RowSpanOf(tagging.MustCount(2))})
	if _, ok := td.Lang(); ok {
		t.Fatal("clone shares general attributes")
	}
	if _, ok := td.Span(); ok {
		t.Fatal("clone shares table attributes")
	}
	headers := c.Headers()
	headers[0] = tagging.TagIDString("other")
	if c.Headers()[0] != tagging.TagIDString("h1") {
		t.Fatal("Headers returned internal storage")
	}
}

func TestZeroTagIsUsable(t *testing.T) {
	var tag tagging.Tag
	tag.Apply(tagging.WithTitle("x"))
	tag.SetListAttr(tagging.NumberingAttr{Value: tagging.NumberingDisc})
	if title, ok := tag.Title(); !ok || title != "x" {
		t.Fatal("zero tag did not accept attributes")
	}
	if tag.Role() != tagging.RolePart {
		t.Fatal("zero role")
	}
}

func TestRoles(t *testing.T) {
	roles := tagging.Roles()
	if len(roles) != 33 {
		t.Fatalf("roles = %d", len(roles))
	}
	for _, r := range roles {
		parsed, ok := tagging.ParseRole(r.String())
		if !ok || parsed != r {
			t.Fatalf("ParseRole(%q) = %v,%v", r.String(), parsed, ok)
		}
	}
	if _, ok := tagging.ParseRole("Blink"); ok {
		t.Fatal("unknown role parsed")
	}
	if !tagging.RoleTD.IsTableCell() || tagging.RoleTR.IsTableCell() {
		t.Fatal("IsTableCell")
	}
}
