package compliance_test

import (
	"strings"
	"testing"

	"github.com/wudi/tagkit/compliance"
	"github.com/wudi/tagkit/layout"
	"github.com/wudi/tagkit/tagging"
)

func TestReportAdd(t *testing.T) {
	rep := &compliance.Report{Compliant: true, Standard: "PDF/UA-1"}
	rep.Add("UA003", "Document", "Document title is required")
	rep.Add("UA006", "Tag 2 Figure", "Figure %q missing Alternative Text", "chart")

	if rep.Compliant {
		t.Fatal("report should be non-compliant after Add")
	}
	codes := rep.Codes()
	if len(codes) != 2 || codes[0] != "UA003" || codes[1] != "UA006" {
		t.Fatalf("codes = %v", codes)
	}
	if got := rep.Violations[1].Description; got != `Figure "chart" missing Alternative Text` {
		t.Fatalf("description = %q", got)
	}
	if s := rep.Violations[0].String(); !strings.HasPrefix(s, "UA003 Document:") {
		t.Fatalf("String() = %q", s)
	}
}

func TestTagLocation(t *testing.T) {
	tests := []struct {
		tag  *tagging.Tag
		want string
	}{
		{nil, "Tag 0"},
		{tagging.New(tagging.RoleP), "Tag 0 P"},
		{tagging.TableHeader(tagging.ScopeRow, tagging.WithID(tagging.TagIDString("h1"))), "Tag 0 TH [Uh1]"},
	}
	for _, tc := range tests {
		if got := compliance.TagLocation(0, tc.tag); got != tc.want {
			t.Errorf("TagLocation = %q, want %q", got, tc.want)
		}
	}
}

func TestFromLayout(t *testing.T) {
	src := `<html lang="de"><head><title>Bericht</title></head><body><h1>Kapitel</h1><p>Text</p></body></html>`
	doc, err := layout.FromHTML(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	cd := compliance.FromLayout(doc)
	if cd.Title != "Bericht" || cd.Lang != "de" {
		t.Fatalf("title/lang = %q/%q", cd.Title, cd.Lang)
	}
	if cd.Tree != doc.Root {
		t.Fatal("tree not carried over")
	}
	if len(cd.Tags) != 3 {
		t.Fatalf("tags = %d, want Part, H1, P", len(cd.Tags))
	}
	if empty := compliance.FromLayout(nil); empty == nil || len(empty.Tags) != 0 {
		t.Fatal("nil layout should give an empty document")
	}
}
