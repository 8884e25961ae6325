// Package pdfua validates tagged documents against the PDF/UA accessibility
// requirements that can be decided from the structure tags alone.
package pdfua

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/wudi/tagkit/compliance"
	"github.com/wudi/tagkit/compliance/rules"
	"github.com/wudi/tagkit/layout"
	"github.com/wudi/tagkit/observability"
	"github.com/wudi/tagkit/tagging"
)

type Level int

const (
	PDFUA1 Level = iota
	PDFUA2
)

func (l Level) String() string {
	switch l {
	case PDFUA1:
		return "PDF/UA-1"
	case PDFUA2:
		return "PDF/UA-2"
	default:
		return "Unknown"
	}
}

// Defaults written by Enforce.
const (
	DefaultTitle = "Untitled"
	DefaultLang  = "en"
)

type Enforcer interface {
	compliance.Validator
	Enforce(ctx compliance.Context, doc *compliance.Document, level Level) error
}

type enforcerImpl struct {
	level     Level
	rules     []rules.Rule
	evaluator rules.Evaluator
	log       observability.Logger
}

// Option configures an Enforcer.
type Option func(*enforcerImpl)

// WithLevel selects the conformance level reported by Validate.
func WithLevel(l Level) Option {
	return func(e *enforcerImpl) { e.level = l }
}

// WithRules adds custom rules checked against every tag. A rule that does
// not hold becomes a violation carrying the rule's code and description.
func WithRules(rs ...rules.Rule) Option {
	return func(e *enforcerImpl) { e.rules = append(e.rules, rs...) }
}

// WithEvaluator sets the engine for custom rules. The expr engine is used
// when none is given.
func WithEvaluator(ev rules.Evaluator) Option {
	return func(e *enforcerImpl) { e.evaluator = ev }
}

func WithLogger(l observability.Logger) Option {
	return func(e *enforcerImpl) { e.log = l }
}

func NewEnforcer(opts ...Option) Enforcer {
	e := &enforcerImpl{}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	e.log = observability.OrNop(e.log)
	if e.evaluator == nil {
		e.evaluator = rules.NewExprEvaluator(rules.WithProgramCache(rules.NewProgramCache()), rules.WithLogger(e.log))
	}
	return e
}

// Enforce fills the document metadata PDF/UA requires when it is missing.
// Tag content such as alternate text cannot be invented and is left to the
// caller.
func (e *enforcerImpl) Enforce(ctx compliance.Context, doc *compliance.Document, level Level) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc.Title == "" {
		doc.Title = DefaultTitle
	}
	if doc.Lang == "" {
		doc.Lang = DefaultLang
	}
	e.log.Debug("enforced document metadata",
		observability.String("level", level.String()),
		observability.String("title", doc.Title),
		observability.String("lang", doc.Lang))
	return nil
}

func (e *enforcerImpl) Validate(ctx compliance.Context, doc *compliance.Document) (*compliance.Report, error) {
	report := &compliance.Report{
		Compliant:  true,
		Standard:   e.level.String(),
		Violations: []compliance.Violation{},
	}

	// Title and language required
	if doc.Title == "" {
		report.Add("UA003", "Document", "Document title is required")
	}
	if doc.Lang == "" {
		report.Add("UA004", "Document", "Document language is required")
	} else if _, err := language.Parse(doc.Lang); err != nil {
		report.Add("UA008", "Document", "Document language %q is not a valid BCP 47 tag", doc.Lang)
	}

	checkTags(doc.Tags, report)
	if e.level == PDFUA1 {
		checkHeadingTitles(doc.Tags, report)
	}
	if doc.Tree != nil {
		checkStructure(doc.Tree, report)
	}

	if err := e.checkRules(ctx, doc.Tags, report); err != nil {
		return nil, err
	}

	report.Compliant = len(report.Violations) == 0
	e.log.Debug("validated document",
		observability.String("standard", report.Standard),
		observability.Int("tags", len(doc.Tags)),
		observability.Int("violations", len(report.Violations)))
	return report, nil
}

func checkTags(tags []*tagging.Tag, report *compliance.Report) {
	thIDs := make(map[tagging.TagID]bool)
	firstUse := make(map[tagging.TagID]int)
	for i, t := range tags {
		if t == nil {
			continue
		}
		if id, ok := t.ID(); ok {
			if prev, dup := firstUse[id]; dup {
				report.Add("UA010", compliance.TagLocation(i, t), "Identifier %s already used by tag %d", id, prev)
			} else {
				firstUse[id] = i
			}
			if t.Role() == tagging.RoleTH {
				thIDs[id] = true
			}
		}
	}

	prevLevel := uint32(0)
	for i, t := range tags {
		if t == nil {
			continue
		}
		loc := compliance.TagLocation(i, t)

		// Alt text for Figures and Formulas
		if t.Role().ShouldHaveAlt() && !hasAlternative(t) {
			code := "UA006"
			if t.Role() == tagging.RoleFormula {
				code = "UA007"
			}
			report.Add(code, loc, "%s missing Alternative Text", t.Role())
		}

		if lang, ok := t.Lang(); ok {
			if _, err := language.Parse(lang); err != nil {
				report.Add("UA008", loc, "Language %q is not a valid BCP 47 tag", lang)
			}
		}

		// Headings must not skip levels, starting from 1
		if lvl, ok := t.HeadingLevel(); ok {
			n := lvl.Uint32()
			if n > prevLevel+1 {
				report.Add("UA009", loc, "Heading level %d follows level %d", n, prevLevel)
			}
			prevLevel = n
		}

		for _, h := range t.Headers() {
			if !thIDs[h] {
				report.Add("UA011", loc, "Header reference %s does not name a TH", h)
			}
		}
	}
}

// checkHeadingTitles requires a non-empty title on every tag whose role
// carries one.
func checkHeadingTitles(tags []*tagging.Tag, report *compliance.Report) {
	for i, t := range tags {
		if t == nil || !t.Role().CanHaveTitle() {
			continue
		}
		if title, ok := t.Title(); !ok || title == "" {
			report.Add("UA015", compliance.TagLocation(i, t), "%s missing Title", t.Role())
		}
	}
}

func hasAlternative(t *tagging.Tag) bool {
	if alt, ok := t.AltText(); ok && alt != "" {
		return true
	}
	if text, ok := t.ActualText(); ok && text != "" {
		return true
	}
	return false
}

// allowedChildren lists the roles a grouping element may contain.
var allowedChildren = map[tagging.Role][]tagging.Role{
	tagging.RoleTable: {tagging.RoleTR, tagging.RoleTHead, tagging.RoleTBody, tagging.RoleTFoot, tagging.RoleCaption},
	tagging.RoleTHead: {tagging.RoleTR},
	tagging.RoleTBody: {tagging.RoleTR},
	tagging.RoleTFoot: {tagging.RoleTR},
	tagging.RoleTR:    {tagging.RoleTH, tagging.RoleTD},
	tagging.RoleL:     {tagging.RoleLI, tagging.RoleL, tagging.RoleCaption},
	tagging.RoleLI:    {tagging.RoleLbl, tagging.RoleLBody},
	tagging.RoleTOC:   {tagging.RoleTOCI, tagging.RoleTOC, tagging.RoleCaption},
}

func structureCode(r tagging.Role) string {
	switch r {
	case tagging.RoleL, tagging.RoleLI:
		return "UA013"
	case tagging.RoleTOC:
		return "UA014"
	default:
		return "UA012"
	}
}

// checkStructure reports children a grouping element may not contain.
// Locations count tags in pre-order, matching Document.Tags.
func checkStructure(root *layout.Node, report *compliance.Report) {
	index := make(map[*layout.Node]int)
	i := 0
	layout.Walk(root, func(n *layout.Node, _ int) bool {
		index[n] = i
		i++
		return true
	})
	layout.Walk(root, func(n *layout.Node, _ int) bool {
		if n.Tag == nil {
			return true
		}
		allowed, ok := allowedChildren[n.Tag.Role()]
		if !ok {
			return true
		}
		for _, c := range n.Children {
			if c.Tag == nil || containsRole(allowed, c.Tag.Role()) {
				continue
			}
			report.Add(structureCode(n.Tag.Role()), compliance.TagLocation(index[c], c.Tag),
				"%s may not contain %s", n.Tag.Role(), c.Tag.Role())
		}
		return true
	})
}

func containsRole(roles []tagging.Role, r tagging.Role) bool {
	for _, x := range roles {
		if x == r {
			return true
		}
	}
	return false
}

func (e *enforcerImpl) checkRules(ctx compliance.Context, tags []*tagging.Tag, report *compliance.Report) error {
	if len(e.rules) == 0 {
		return nil
	}
	for i, t := range tags {
		if err := ctx.Err(); err != nil {
			return err
		}
		if t == nil {
			continue
		}
		snapshot := rules.TagSnapshot(t, i)
		for _, rule := range e.rules {
			ok, err := rules.Check(e.evaluator, rule, snapshot)
			if err != nil {
				return fmt.Errorf("pdfua: %w", err)
			}
			if !ok {
				desc := rule.Description
				if desc == "" {
					desc = "Rule " + rule.Expr + " does not hold"
				}
				report.Add(rule.Code, compliance.TagLocation(i, t), "%s", desc)
			}
		}
	}
	return nil
}
