package layout

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/wudi/tagkit/observability"
	"github.com/wudi/tagkit/tagging"
	"github.com/wudi/tagkit/textdir"
)

// FromHTML imports an HTML document with a default Importer.
func FromHTML(r io.Reader, opts ...Option) (*Document, error) {
	return NewImporter(opts...).HTML(r)
}

// walkState carries ancestor context that changes how elements map.
type walkState struct {
	section atom.Atom // enclosing thead, tbody or tfoot
	inTOC   bool
}

// HTML imports an HTML document. Elements without a structure role, such as
// div, span or strong, are transparent: their content joins the parent.
func (im *Importer) HTML(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("layout: parse html: %w", err)
	}
	doc := &Document{Root: &Node{Tag: tagging.New(tagging.RolePart)}}
	im.walkHTML(root, doc.Root, doc, walkState{})
	im.log.Debug("imported html", observability.Int("tags", len(doc.Tags())))
	return doc, nil
}

func (im *Importer) walkChildren(n *html.Node, parent *Node, doc *Document, st walkState) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		im.walkHTML(c, parent, doc, st)
	}
}

func (im *Importer) walkHTML(n *html.Node, parent *Node, doc *Document, st walkState) {
	switch n.Type {
	case html.TextNode:
		parent.appendText(n.Data)
		return
	case html.ElementNode:
	default:
		im.walkChildren(n, parent, doc, st)
		return
	}

	switch n.DataAtom {
	case atom.Html:
		if lang := attr(n, "lang"); lang != "" {
			doc.Lang = lang
		}
		parent.Tag.Apply(commonOptions(n)...)
		im.walkChildren(n, parent, doc, st)
		return
	case atom.Head:
		if t := findElement(n, atom.Title); t != nil {
			doc.Title = extractText(t)
		}
		return
	case atom.Script, atom.Style, atom.Template, atom.Noscript:
		return
	case atom.Thead, atom.Tbody, atom.Tfoot:
		st.section = n.DataAtom
	case atom.Nav:
		st.inTOC = true
	case atom.Img:
		// An image inside a figure describes the figure.
		if parent.Tag.Role() == tagging.RoleFigure {
			if alt, ok := attrOK(n, "alt"); ok {
				if _, has := parent.Tag.AltText(); !has {
					parent.Tag.Apply(tagging.WithAltText(alt))
				}
			}
			return
		}
	}

	tag := im.tagFor(n, st)
	if tag == nil {
		im.walkChildren(n, parent, doc, st)
		return
	}
	node := &Node{Tag: tag}
	parent.Children = append(parent.Children, node)

	switch tag.Role() {
	case tagging.RoleFormula:
		node.Text = extractText(n)
		return
	case tagging.RoleLI:
		body := &Node{Tag: tagging.New(tagging.RoleLBody)}
		node.Children = append(node.Children, body)
		im.walkChildren(n, body, doc, st)
		im.inferMode(body)
		return
	}
	im.walkChildren(n, node, doc, st)
	im.inferMode(node)
}

func (im *Importer) inferMode(n *Node) {
	if im.inferWritingMode && n.Text != "" {
		textdir.Annotate(n.Tag, n.Text)
	}
}

// tagFor returns the tag for an element, or nil when the element has no
// structure role of its own.
func (im *Importer) tagFor(n *html.Node, st walkState) *tagging.Tag {
	common := commonOptions(n)
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		level := uint32(n.Data[1] - '0')
		// The heading text doubles as its title unless one is given.
		if _, ok := attrOK(n, "title"); !ok {
			if text := extractText(n); text != "" {
				common = append(common, tagging.WithTitle(text))
			}
		}
		return tagging.Heading(tagging.MustCount(level), common...)
	case atom.P:
		return tagging.New(tagging.RoleP, common...)
	case atom.Ul:
		if st.inTOC {
			return nil
		}
		return tagging.List(listNumbering(n, tagging.NumberingDisc), common...)
	case atom.Ol:
		if st.inTOC {
			return nil
		}
		return tagging.List(listNumbering(n, tagging.NumberingDecimal), common...)
	case atom.Li:
		if st.inTOC {
			return tagging.New(tagging.RoleTOCI, common...)
		}
		if strings.HasPrefix(attr(n, "id"), "fn:") {
			return tagging.New(tagging.RoleNote, common...)
		}
		return tagging.New(tagging.RoleLI, common...)
	case atom.Nav:
		return tagging.New(tagging.RoleTOC, common...)
	case atom.Dl:
		return tagging.New(tagging.RoleTerms, common...)
	case atom.Dt:
		return tagging.New(tagging.RoleLbl, common...)
	case atom.Dd:
		return tagging.New(tagging.RoleLBody, common...)
	case atom.Table:
		opts := []tagging.TableOption{}
		if s := attr(n, "summary"); s != "" {
			opts = append(opts, tagging.WithSummary(s))
		}
		for _, o := range sizeOptions(n) {
			opts = append(opts, o)
		}
		for _, o := range common {
			opts = append(opts, o)
		}
		return tagging.Table(opts...)
	case atom.Caption, atom.Figcaption:
		return tagging.New(tagging.RoleCaption, common...)
	case atom.Thead:
		return tagging.New(tagging.RoleTHead, common...)
	case atom.Tbody:
		return tagging.New(tagging.RoleTBody, common...)
	case atom.Tfoot:
		return tagging.New(tagging.RoleTFoot, common...)
	case atom.Tr:
		return tagging.New(tagging.RoleTR, common...)
	case atom.Th:
		return tagging.TableHeader(headerScope(n, st), cellOptions(n, common)...)
	case atom.Td:
		return tagging.TableData(cellOptions(n, common)...)
	case atom.Figure:
		return tagging.Figure(graphicOptions(n, common)...)
	case atom.Img:
		alt, ok := attrOK(n, "alt")
		if ok && alt == "" {
			// Decorative image.
			return nil
		}
		opts := graphicOptions(n, common)
		if ok {
			opts = append(opts, tagging.WithAltText(alt))
		}
		return tagging.Figure(opts...)
	case atom.Math:
		opts := graphicOptions(n, common)
		if alt := mathAltText(n); alt != "" {
			opts = append(opts, tagging.WithAltText(alt))
		}
		return tagging.Formula(opts...)
	case atom.Blockquote:
		return tagging.New(tagging.RoleBlockQuote, common...)
	case atom.Q:
		return tagging.New(tagging.RoleInlineQuote, common...)
	case atom.Pre:
		return tagging.New(tagging.RoleCode, common...)
	case atom.Code:
		if n.Parent != nil && n.Parent.DataAtom == atom.Pre {
			return nil
		}
		return tagging.New(tagging.RoleCode, common...)
	case atom.A:
		if attr(n, "role") == "doc-noteref" {
			return tagging.New(tagging.RoleReference, common...)
		}
		return tagging.New(tagging.RoleLink, common...)
	case atom.Section:
		return tagging.New(tagging.RoleSection, common...)
	case atom.Article:
		return tagging.New(tagging.RoleArticle, common...)
	case atom.Time:
		return tagging.New(tagging.RoleDatetime, common...)
	case atom.Cite:
		return tagging.New(tagging.RoleBibEntry, common...)
	case atom.Aside:
		t := tagging.New(tagging.RoleNote, common...)
		if _, ok := t.ID(); !ok {
			t.Apply(tagging.WithID(im.ids.Next()))
		}
		return t
	}
	return nil
}

func commonOptions(n *html.Node) []tagging.CommonOption {
	var opts []tagging.CommonOption
	if id := attr(n, "id"); id != "" {
		opts = append(opts, tagging.WithID(tagging.TagIDString(id)))
	}
	if title := attr(n, "title"); title != "" {
		opts = append(opts, tagging.WithTitle(title))
	}
	if lang := attr(n, "lang"); lang != "" {
		opts = append(opts, tagging.WithLang(lang))
	}
	if label := attr(n, "aria-label"); label != "" {
		opts = append(opts, tagging.WithAltText(label))
	}
	switch strings.ToLower(attr(n, "dir")) {
	case "rtl":
		opts = append(opts, tagging.WithWritingMode(tagging.WritingRlTb))
	case "ltr":
		opts = append(opts, tagging.WithWritingMode(tagging.WritingLrTb))
	}
	if mode := styleProp(n, "writing-mode"); mode == "vertical-rl" || mode == "tb-rl" {
		opts = append(opts, tagging.WithWritingMode(tagging.WritingTbRl))
	}
	switch styleProp(n, "float") {
	case "left", "inline-start":
		opts = append(opts, tagging.WithPlacement(tagging.PlacementStart))
	case "right", "inline-end":
		opts = append(opts, tagging.WithPlacement(tagging.PlacementEnd))
	}
	return opts
}

func sizeOptions(n *html.Node) []tagging.SizeOption {
	var opts []tagging.SizeOption
	if w, ok := floatAttr(n, "width"); ok {
		opts = append(opts, tagging.WithWidth(w))
	}
	if h, ok := floatAttr(n, "height"); ok {
		opts = append(opts, tagging.WithHeight(h))
	}
	return opts
}

func graphicOptions(n *html.Node, common []tagging.CommonOption) []tagging.GraphicOption {
	var opts []tagging.GraphicOption
	for _, o := range common {
		opts = append(opts, o)
	}
	for _, o := range sizeOptions(n) {
		opts = append(opts, o)
	}
	return opts
}

func cellOptions(n *html.Node, common []tagging.CommonOption) []tagging.CellOption {
	var opts []tagging.CellOption
	for _, o := range common {
		opts = append(opts, o)
	}
	rows, cols := spanAttr(n, "rowspan"), spanAttr(n, "colspan")
	if !rows.IsOne() || !cols.IsOne() {
		opts = append(opts, tagging.WithSpan(tagging.NewTableCellSpan(rows, cols)))
	}
	if headers := strings.Fields(attr(n, "headers")); len(headers) > 0 {
		ids := make([]tagging.TagID, len(headers))
		for i, h := range headers {
			ids[i] = tagging.TagIDString(h)
		}
		opts = append(opts, tagging.WithHeaders(ids...))
	}
	for _, o := range sizeOptions(n) {
		opts = append(opts, o)
	}
	return opts
}

// spanAttr reads a rowspan or colspan value. HTML treats missing, zero and
// malformed values as 1.
func spanAttr(n *html.Node, key string) tagging.Count {
	v, err := strconv.ParseUint(strings.TrimSpace(attr(n, key)), 10, 32)
	if err != nil || v == 0 {
		return tagging.CountOne
	}
	return tagging.MustCount(uint32(v))
}

func headerScope(n *html.Node, st walkState) tagging.TableHeaderScope {
	switch strings.ToLower(attr(n, "scope")) {
	case "row", "rowgroup":
		return tagging.ScopeRow
	case "col", "colgroup":
		return tagging.ScopeColumn
	}
	if st.section == atom.Thead {
		return tagging.ScopeColumn
	}
	return tagging.ScopeBoth
}

var listStyles = map[string]tagging.ListNumbering{
	"none":        tagging.NumberingNone,
	"disc":        tagging.NumberingDisc,
	"circle":      tagging.NumberingCircle,
	"square":      tagging.NumberingSquare,
	"decimal":     tagging.NumberingDecimal,
	"1":           tagging.NumberingDecimal,
	"lower-roman": tagging.NumberingLowerRoman,
	"i":           tagging.NumberingLowerRoman,
	"upper-roman": tagging.NumberingUpperRoman,
	"I":           tagging.NumberingUpperRoman,
	"lower-alpha": tagging.NumberingLowerAlpha,
	"lower-latin": tagging.NumberingLowerAlpha,
	"a":           tagging.NumberingLowerAlpha,
	"upper-alpha": tagging.NumberingUpperAlpha,
	"upper-latin": tagging.NumberingUpperAlpha,
	"A":           tagging.NumberingUpperAlpha,
}

// listNumbering reads the list-style-type property, then the type
// attribute.
func listNumbering(n *html.Node, def tagging.ListNumbering) tagging.ListNumbering {
	if v, ok := listStyles[styleProp(n, "list-style-type")]; ok {
		return v
	}
	if v, ok := listStyles[attr(n, "type")]; ok {
		return v
	}
	return def
}

func mathAltText(n *html.Node) string {
	if alt := attr(n, "alttext"); alt != "" {
		return alt
	}
	var found string
	var f func(*html.Node)
	f = func(n *html.Node) {
		if found != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "annotation" {
			found = extractText(n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return found
}

func (n *Node) appendText(s string) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return
	}
	if n.Text != "" {
		n.Text += " "
	}
	n.Text += s
}

func attrOK(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	v, _ := attrOK(n, key)
	return v
}

func floatAttr(n *html.Node, key string) (float32, bool) {
	v := strings.TrimSuffix(strings.TrimSpace(attr(n, key)), "px")
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return float32(f), true
}

// styleProp returns the lower-cased value of a property in the style
// attribute.
func styleProp(n *html.Node, prop string) string {
	for _, decl := range strings.Split(attr(n, "style"), ";") {
		k, v, ok := strings.Cut(decl, ":")
		if ok && strings.EqualFold(strings.TrimSpace(k), prop) {
			return strings.ToLower(strings.TrimSpace(v))
		}
	}
	return ""
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func extractText(n *html.Node) string {
	var sb strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
