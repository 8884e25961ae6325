package writer

import (
	"sort"

	"github.com/wudi/tagkit/coords"
	"github.com/wudi/tagkit/ir/raw"
)

// StructElem is a structure element without its tree links. Empty fields are
// omitted from the dictionary. Parent, page and kids are filled in by the
// tree builder.
type StructElem struct {
	Type       StructType
	ID         []byte
	Title      string
	Lang       string
	Alt        string
	Expanded   string
	ActualText string
	Attributes []AttributeObject

	// Location is carried through for the tree builder and never written.
	Location    coords.Location
	HasLocation bool
}

// Dict renders the element. A single attribute object is written directly
// as /A, several as an array in their stored order.
func (e StructElem) Dict() *raw.DictObj {
	attrs := make([]raw.Object, 0, len(e.Attributes))
	for _, a := range e.Attributes {
		attrs = append(attrs, a.Dict())
	}
	return e.dict(attrs)
}

func (e StructElem) dict(attrs []raw.Object) *raw.DictObj {
	d := raw.Dict()
	d.Set(raw.NameLiteral("Type"), raw.NameLiteral("StructElem"))
	d.Set(raw.NameLiteral("S"), e.Type.Name())
	if len(e.ID) > 0 {
		d.Set(raw.NameLiteral("ID"), raw.Str(append([]byte(nil), e.ID...)))
	}
	if e.Title != "" {
		d.Set(raw.NameLiteral("T"), TextString(e.Title))
	}
	if e.Lang != "" {
		d.Set(raw.NameLiteral("Lang"), TextString(e.Lang))
	}
	if e.Alt != "" {
		d.Set(raw.NameLiteral("Alt"), TextString(e.Alt))
	}
	if e.Expanded != "" {
		d.Set(raw.NameLiteral("E"), TextString(e.Expanded))
	}
	if e.ActualText != "" {
		d.Set(raw.NameLiteral("ActualText"), TextString(e.ActualText))
	}
	switch len(attrs) {
	case 0:
	case 1:
		d.Set(raw.NameLiteral("A"), attrs[0])
	default:
		d.Set(raw.NameLiteral("A"), raw.NewArray(attrs...))
	}
	return d
}

// Attribute returns the attribute object for owner.
func (e StructElem) Attribute(owner AttributeOwner) (AttributeObject, bool) {
	for _, a := range e.Attributes {
		if a.Owner == owner {
			return a, true
		}
	}
	return AttributeObject{}, false
}

// RoleMap maps custom structure types to standard ones.
type RoleMap map[StructType]StructType

// Dict renders the map with keys sorted.
func (m RoleMap) Dict() *raw.DictObj {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	d := raw.Dict()
	for _, k := range keys {
		d.Set(raw.NameLiteral(k), m[StructType(k)].Name())
	}
	return d
}

// Merge adds the entries of o. Existing entries win.
func (m RoleMap) Merge(o RoleMap) {
	for k, v := range o {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
}
