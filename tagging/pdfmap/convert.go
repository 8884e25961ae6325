package pdfmap

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/wudi/tagkit/ir/raw"
	"github.com/wudi/tagkit/observability"
	"github.com/wudi/tagkit/tagging"
	"github.com/wudi/tagkit/writer"
)

var ErrInvalidRole = errors.New("pdfmap: invalid role")

var roleTypes = map[tagging.Role]writer.StructType{
	tagging.RolePart:        writer.TypePart,
	tagging.RoleArticle:     writer.TypeArt,
	tagging.RoleSection:     writer.TypeSect,
	tagging.RoleBlockQuote:  writer.TypeBlockQuote,
	tagging.RoleCaption:     writer.TypeCaption,
	tagging.RoleTOC:         writer.TypeTOC,
	tagging.RoleTOCI:        writer.TypeTOCI,
	tagging.RoleIndex:       writer.TypeIndex,
	tagging.RoleP:           writer.TypeP,
	tagging.RoleL:           writer.TypeL,
	tagging.RoleLI:          writer.TypeLI,
	tagging.RoleLbl:         writer.TypeLbl,
	tagging.RoleLBody:       writer.TypeLBody,
	tagging.RoleTable:       writer.TypeTable,
	tagging.RoleTR:          writer.TypeTR,
	tagging.RoleTH:          writer.TypeTH,
	tagging.RoleTD:          writer.TypeTD,
	tagging.RoleTHead:       writer.TypeTHead,
	tagging.RoleTBody:       writer.TypeTBody,
	tagging.RoleTFoot:       writer.TypeTFoot,
	tagging.RoleInlineQuote: writer.TypeQuote,
	tagging.RoleNote:        writer.TypeNote,
	tagging.RoleReference:   writer.TypeReference,
	tagging.RoleBibEntry:    writer.TypeBibEntry,
	tagging.RoleCode:        writer.TypeCode,
	tagging.RoleLink:        writer.TypeLink,
	tagging.RoleAnnot:       writer.TypeAnnot,
	tagging.RoleFigure:      writer.TypeFigure,
	tagging.RoleFormula:     writer.TypeFormula,
}

// Custom types and the standard type they are role mapped to.
const (
	typeDatetime writer.StructType = "Datetime"
	typeTerms    writer.StructType = "Terms"
)

// StructType returns the structure type for a role. When the type is not
// standard in version, mapped is the standard type to record in the role
// map and custom is true. level is only read for tagging.RoleHn.
func StructType(role tagging.Role, level tagging.Count, version writer.PDFVersion) (typ, mapped writer.StructType, custom bool) {
	switch role {
	case tagging.RoleHn:
		typ, mapped = writer.Heading(level.Uint32()), writer.Heading(writer.MaxHeadingLevel)
	case tagging.RoleDatetime:
		typ, mapped = typeDatetime, writer.TypeSpan
	case tagging.RoleTerms:
		typ, mapped = typeTerms, writer.TypeDiv
	case tagging.RoleTitle:
		typ, mapped = writer.TypeTitle, writer.TypeP
	default:
		var ok bool
		if typ, ok = roleTypes[role]; !ok {
			return "", "", false
		}
	}
	if typ.IsStandard(version) {
		return typ, "", false
	}
	return typ, mapped, true
}

func structTypeOf(t *tagging.Tag, version writer.PDFVersion) (writer.StructType, writer.StructType, bool) {
	level, _ := t.HeadingLevel()
	return StructType(t.Role(), level, version)
}

// Convert translates one tag into a structure element. Attribute objects are
// emitted in the order List, Table, Layout and only when non-empty.
func Convert(t *tagging.Tag, cfg writer.Config) (writer.StructElem, error) {
	if t == nil || !t.Role().Valid() {
		return writer.StructElem{}, ErrInvalidRole
	}
	log := cfg.Log()
	version := writer.PDF17
	if cfg.IsPDF2() {
		version = writer.PDF20
	}
	typ, _, _ := structTypeOf(t, version)
	elem := writer.StructElem{Type: typ}
	elem.Location, elem.HasLocation = t.Location()

	warnInvalid(log, t)
	for _, a := range t.Attrs() {
		switch v := a.(type) {
		case tagging.IDAttr:
			elem.ID = v.Value.Bytes()
		case tagging.TitleAttr:
			elem.Title = v.Value
		case tagging.LangAttr:
			elem.Lang = CanonicalLang(v.Value, log)
		case tagging.AltTextAttr:
			elem.Alt = v.Value
		case tagging.ExpandedAttr:
			elem.Expanded = v.Value
		case tagging.ActualTextAttr:
			elem.ActualText = v.Value
		case tagging.HeadingLevelAttr:
			// carried by the structure type
		}
	}

	if list := listObject(t); !list.Empty() {
		elem.Attributes = append(elem.Attributes, list)
	}
	if table := tableObject(t); !table.Empty() {
		elem.Attributes = append(elem.Attributes, table)
	}
	if layout := layoutObject(t, cfg); !layout.Empty() {
		elem.Attributes = append(elem.Attributes, layout)
	}
	log.Debug("converted tag",
		observability.String("role", t.Role().String()),
		observability.String("type", string(typ)),
		observability.Int("attribute_objects", len(elem.Attributes)))
	return elem, nil
}

// ConvertAll converts tags in order and collects the role map entries their
// structure types need.
func ConvertAll(tags []*tagging.Tag, cfg writer.Config) ([]writer.StructElem, writer.RoleMap, error) {
	out := make([]writer.StructElem, 0, len(tags))
	for i, t := range tags {
		e, err := Convert(t, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("tag %d: %w", i, err)
		}
		out = append(out, e)
	}
	version := writer.PDF17
	if cfg.IsPDF2() {
		version = writer.PDF20
	}
	return out, RoleMap(tags, version), nil
}

// RoleMap returns the role map entries needed by tags.
func RoleMap(tags []*tagging.Tag, version writer.PDFVersion) writer.RoleMap {
	m := writer.RoleMap{}
	for _, t := range tags {
		if t == nil {
			continue
		}
		if typ, mapped, custom := structTypeOf(t, version); custom {
			m[typ] = mapped
		}
	}
	return m
}

// CanonicalLang returns the canonical form of a BCP 47 tag. Tags that do not
// parse are returned unchanged and logged.
func CanonicalLang(lang string, log observability.Logger) string {
	if lang == "" {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		observability.OrNop(log).Warn("invalid language tag, writing as given",
			observability.String("lang", lang), observability.Error("error", err))
		return lang
	}
	return tag.String()
}

func listObject(t *tagging.Tag) writer.AttributeObject {
	obj := writer.AttributeObject{Owner: writer.OwnerList}
	for _, a := range t.ListAttrs() {
		switch v := a.(type) {
		case tagging.NumberingAttr:
			obj.Set("ListNumbering", ListNumbering(v.Value).Name())
		}
	}
	return obj
}

func tableObject(t *tagging.Tag) writer.AttributeObject {
	obj := writer.AttributeObject{Owner: writer.OwnerTable}
	for _, a := range t.TableAttrs() {
		switch v := a.(type) {
		case tagging.SummaryAttr:
			obj.Set("Summary", writer.TextString(v.Value))
		case tagging.HeaderScopeAttr:
			obj.Set("Scope", HeaderScope(v.Value).Name())
		case tagging.CellHeadersAttr:
			ids := raw.NewArray()
			for _, id := range v.Value {
				ids.Append(raw.Str(id.Bytes()))
			}
			obj.Set("Headers", ids)
		case tagging.CellSpanAttr:
			if rows, ok := v.Value.RowSpan(); ok {
				obj.Set("RowSpan", raw.NumberInt(int64(rows.Uint32())))
			}
			if cols, ok := v.Value.ColSpan(); ok {
				obj.Set("ColSpan", raw.NumberInt(int64(cols.Uint32())))
			}
		}
	}
	return obj
}

func layoutObject(t *tagging.Tag, cfg writer.Config) writer.AttributeObject {
	obj := writer.AttributeObject{Owner: writer.OwnerLayout}
	for _, a := range t.LayoutAttrs() {
		switch v := a.(type) {
		case tagging.PlacementAttr:
			if cfg.OmitDefaultLayout && v.Value == tagging.PlacementInline {
				continue
			}
			obj.Set("Placement", Placement(v.Value).Name())
		case tagging.WritingModeAttr:
			if cfg.OmitDefaultLayout && v.Value == tagging.WritingLrTb {
				continue
			}
			obj.Set("WritingMode", WritingMode(v.Value).Name())
		case tagging.BBoxAttr:
			r := cfg.Matrix().TransformRect(v.Value)
			obj.Set("BBox", raw.NewArray(
				raw.NumberFloat(r.X0), raw.NumberFloat(r.Y0),
				raw.NumberFloat(r.X1), raw.NumberFloat(r.Y1)))
		case tagging.WidthAttr:
			obj.Set("Width", raw.NumberFloat32(v.Value))
		case tagging.HeightAttr:
			obj.Set("Height", raw.NumberFloat32(v.Value))
		}
	}
	return obj
}
