package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wudi/tagkit/writer"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunHTML(t *testing.T) {
	path := writeFile(t, "doc.html", `<html lang="en"><head><title>Report</title></head><body>
<h1>Results</h1>
<table><tr><th scope="col" rowspan="2">A</th></tr></table>
</body></html>`)
	var out bytes.Buffer
	opts := options{inputPath: path, format: "html", version: writer.PDF17, validate: true, engine: "expr"}
	if err := run(context.Background(), opts, &out); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"/S /H1",
		"/O /Table /Scope /Column /RowSpan 2",
		"PDF/UA-1: compliant",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunStrictFails(t *testing.T) {
	path := writeFile(t, "doc.md", "## Skipped\n\n![](chart.png)\n")
	var out bytes.Buffer
	opts := options{inputPath: path, format: "markdown", version: writer.PDF20, validate: true, strict: true, engine: "expr"}
	err := run(context.Background(), opts, &out)
	if !errors.Is(err, errNotCompliant) {
		t.Fatalf("err = %v, want errNotCompliant", err)
	}
	got := out.String()
	for _, code := range []string{"PDF/UA-2", "UA003", "UA004", "UA009"} {
		if !strings.Contains(got, code) {
			t.Errorf("output missing %s:\n%s", code, got)
		}
	}
}

func TestRunEnforceAndRules(t *testing.T) {
	path := writeFile(t, "doc.html", `<body><table><tr><td>1</td></tr></table></body>`)
	rulesPath := writeFile(t, "rules.json", `[{"Code":"X001","Description":"Tables need a summary title","When":"role == \"Table\"","Expr":"title != \"\""}]`)
	for _, engine := range []string{"expr", "cel", "js"} {
		var out bytes.Buffer
		opts := options{
			inputPath: path, format: "html", version: writer.PDF17,
			validate: true, enforce: true, rulesPath: rulesPath, engine: engine,
		}
		if err := run(context.Background(), opts, &out); err != nil {
			t.Fatalf("%s: %v", engine, err)
		}
		got := out.String()
		if strings.Contains(got, "UA003") || strings.Contains(got, "UA004") {
			t.Errorf("%s: enforce did not fill metadata:\n%s", engine, got)
		}
		if !strings.Contains(got, "X001") {
			t.Errorf("%s: custom rule missing:\n%s", engine, got)
		}
	}
}

func TestRunDedup(t *testing.T) {
	path := writeFile(t, "doc.html", `<table><tr><th>A</th><th>B</th></tr></table>`)
	var out bytes.Buffer
	opts := options{inputPath: path, format: "html", version: writer.PDF17, dedup: true}
	if err := run(context.Background(), opts, &out); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if n := strings.Count(got, "/O /Table /Scope"); n != 1 {
		t.Fatalf("shared header attributes written %d times:\n%s", n, got)
	}
	if !strings.Contains(got, "0 obj") {
		t.Fatalf("no indirect objects:\n%s", got)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"a.md":       "markdown",
		"a.MARKDOWN": "markdown",
		"a.html":     "html",
		"a":          "html",
	}
	for path, want := range tests {
		if got := formatFromPath(path); got != want {
			t.Errorf("formatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	path := writeFile(t, "doc.txt", "hi")
	err := run(context.Background(), options{inputPath: path, format: "rtf", version: writer.PDF17}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("err = %v", err)
	}
}
