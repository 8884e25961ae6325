// Package pdfmap translates tags into PDF structure elements. It is the only
// place that knows both the tagging model and the PDF vocabulary.
package pdfmap

import (
	"github.com/wudi/tagkit/observability"
	"github.com/wudi/tagkit/tagging"
	"github.com/wudi/tagkit/writer"
)

func ListNumbering(n tagging.ListNumbering) writer.ListNumbering {
	switch n {
	case tagging.NumberingNone:
		return writer.ListNumberingNone
	case tagging.NumberingDisc:
		return writer.ListNumberingDisc
	case tagging.NumberingCircle:
		return writer.ListNumberingCircle
	case tagging.NumberingSquare:
		return writer.ListNumberingSquare
	case tagging.NumberingDecimal:
		return writer.ListNumberingDecimal
	case tagging.NumberingLowerRoman:
		return writer.ListNumberingLowerRoman
	case tagging.NumberingUpperRoman:
		return writer.ListNumberingUpperRoman
	case tagging.NumberingLowerAlpha:
		return writer.ListNumberingLowerAlpha
	case tagging.NumberingUpperAlpha:
		return writer.ListNumberingUpperAlpha
	}
	return writer.ListNumberingNone
}

func HeaderScope(s tagging.TableHeaderScope) writer.TableHeaderScope {
	switch s {
	case tagging.ScopeRow:
		return writer.TableHeaderScopeRow
	case tagging.ScopeColumn:
		return writer.TableHeaderScopeColumn
	}
	return writer.TableHeaderScopeBoth
}

func Placement(p tagging.Placement) writer.Placement {
	switch p {
	case tagging.PlacementBlock:
		return writer.PlacementBlock
	case tagging.PlacementBefore:
		return writer.PlacementBefore
	case tagging.PlacementStart:
		return writer.PlacementStart
	case tagging.PlacementEnd:
		return writer.PlacementEnd
	}
	return writer.PlacementInline
}

func WritingMode(w tagging.WritingMode) writer.WritingMode {
	switch w {
	case tagging.WritingRlTb:
		return writer.WritingModeRtlTtb
	case tagging.WritingTbRl:
		return writer.WritingModeTtbRtl
	}
	return writer.WritingModeLtrTtb
}

// warnInvalid logs enum values outside the declared constants. They can only
// come from conversions of arbitrary integers and map to the format default.
func warnInvalid(log observability.Logger, t *tagging.Tag) {
	if n, ok := t.Numbering(); ok && !n.Valid() {
		log.Warn("invalid list numbering, using None", observability.String("value", n.String()))
	}
	if s, ok := t.HeaderScope(); ok && !s.Valid() {
		log.Warn("invalid header scope, using Both", observability.String("value", s.String()))
	}
	if p, ok := t.Placement(); ok && !p.Valid() {
		log.Warn("invalid placement, using Inline", observability.String("value", p.String()))
	}
	if w, ok := t.WritingMode(); ok && !w.Valid() {
		log.Warn("invalid writing mode, using LrTb", observability.String("value", w.String()))
	}
}
