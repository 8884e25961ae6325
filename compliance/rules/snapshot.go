package rules

import "github.com/wudi/tagkit/tagging"

// TagSnapshot flattens t into the variables a rule can read. Every key is
// always present so that rules compile against a fixed set of variables:
//
//	index, role, id, title, lang, alt, expanded, actual_text (string/int)
//	level            heading level, 0 when not a heading
//	numbering, scope, placement, writing_mode   enum names, "" when unset
//	headers          list of header id strings
//	rowspan, colspan 1 unless spanning
//	width, height    0 when unset
//	has_bbox, has_alt, has_id  presence flags
func TagSnapshot(t *tagging.Tag, index int) map[string]any {
	s := map[string]any{
		"index":        int64(index),
		"role":         t.Role().String(),
		"id":           "",
		"title":        "",
		"lang":         "",
		"alt":          "",
		"expanded":     "",
		"actual_text":  "",
		"level":        int64(0),
		"numbering":    "",
		"scope":        "",
		"placement":    "",
		"writing_mode": "",
		"headers":      []any{},
		"rowspan":      int64(1),
		"colspan":      int64(1),
		"width":        float64(0),
		"height":       float64(0),
		"has_bbox":     false,
		"has_alt":      false,
		"has_id":       false,
	}
	if id, ok := t.ID(); ok {
		s["id"] = id.String()
		s["has_id"] = true
	}
	if v, ok := t.Title(); ok {
		s["title"] = v
	}
	if v, ok := t.Lang(); ok {
		s["lang"] = v
	}
	if v, ok := t.AltText(); ok {
		s["alt"] = v
		s["has_alt"] = true
	}
	if v, ok := t.Expanded(); ok {
		s["expanded"] = v
	}
	if v, ok := t.ActualText(); ok {
		s["actual_text"] = v
	}
	if lvl, ok := t.HeadingLevel(); ok {
		s["level"] = int64(lvl.Uint32())
	}
	if n, ok := t.Numbering(); ok {
		s["numbering"] = n.String()
	}
	if sc, ok := t.HeaderScope(); ok {
		s["scope"] = sc.String()
	}
	if p, ok := t.Placement(); ok {
		s["placement"] = p.String()
	}
	if w, ok := t.WritingMode(); ok {
		s["writing_mode"] = w.String()
	}
	if ids := t.Headers(); len(ids) > 0 {
		headers := make([]any, len(ids))
		for i, id := range ids {
			headers[i] = id.String()
		}
		s["headers"] = headers
	}
	if span, ok := t.Span(); ok {
		s["rowspan"] = int64(span.Rows.Uint32())
		s["colspan"] = int64(span.Cols.Uint32())
	}
	if v, ok := t.Width(); ok {
		s["width"] = float64(v)
	}
	if v, ok := t.Height(); ok {
		s["height"] = float64(v)
	}
	_, s["has_bbox"] = t.BBox()
	return s
}
