package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/wudi/tagkit/compliance"
	"github.com/wudi/tagkit/compliance/pdfua"
	"github.com/wudi/tagkit/compliance/rules"
	"github.com/wudi/tagkit/ir/raw"
	"github.com/wudi/tagkit/layout"
	"github.com/wudi/tagkit/observability"
	"github.com/wudi/tagkit/tagging/pdfmap"
	"github.com/wudi/tagkit/writer"
)

// errNotCompliant makes the process exit with a distinct status under -strict.
var errNotCompliant = errors.New("document is not PDF/UA compliant")

type options struct {
	inputPath  string
	format     string
	version    writer.PDFVersion
	dedup      bool
	omitLayout bool
	inferDir   bool
	validate   bool
	strict     bool
	enforce    bool
	rulesPath  string
	engine     string
	verbose    bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tagdump: %v\n", err)
		os.Exit(2)
	}
	if err := run(context.Background(), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tagdump: %v\n", err)
		if errors.Is(err, errNotCompliant) {
			os.Exit(3)
		}
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: go run ./cmd/tagdump [flags] <file.html|file.md>\n")
		flag.PrintDefaults()
	}
	format := flag.String("format", "", "Input format: html or markdown (default from file extension)")
	version := flag.String("pdf", "1.7", "Target PDF version: 1.7 or 2.0")
	dedup := flag.Bool("dedup", false, "Print indirect objects with shared attribute dictionaries")
	omitLayout := flag.Bool("omit-default-layout", false, "Drop layout attributes equal to their defaults")
	inferDir := flag.Bool("infer-direction", false, "Infer writing mode from text script")
	validate := flag.Bool("validate", true, "Run PDF/UA checks")
	strict := flag.Bool("strict", false, "Exit with status 3 when PDF/UA checks fail")
	enforce := flag.Bool("enforce", false, "Fill missing document title and language before validating")
	rulesPath := flag.String("rules", "", "JSON file with custom rules [{\"Code\",\"Description\",\"When\",\"Expr\"}]")
	engine := flag.String("engine", "expr", "Rule engine: expr, cel or js")
	verbose := flag.Bool("v", false, "Log debug output to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return options{}, fmt.Errorf("missing input path")
	}
	opts.inputPath = flag.Arg(0)
	opts.format = *format
	if opts.format == "" {
		opts.format = formatFromPath(opts.inputPath)
	}
	switch writer.PDFVersion(*version) {
	case writer.PDF17, writer.PDF20:
		opts.version = writer.PDFVersion(*version)
	default:
		return options{}, fmt.Errorf("unsupported pdf version %q", *version)
	}
	opts.dedup = *dedup
	opts.omitLayout = *omitLayout
	opts.inferDir = *inferDir
	opts.validate = *validate
	opts.strict = *strict
	opts.enforce = *enforce
	opts.rulesPath = *rulesPath
	opts.engine = *engine
	opts.verbose = *verbose
	return opts, nil
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return "markdown"
	default:
		return "html"
	}
}

func newLogger(verbose bool) observability.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return observability.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func run(ctx context.Context, opts options, out io.Writer) error {
	log := newLogger(opts.verbose)

	src, err := os.ReadFile(opts.inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	doc, err := importDocument(opts, src, log)
	if err != nil {
		return err
	}

	cfg := writer.Config{
		Version:           opts.version,
		OmitDefaultLayout: opts.omitLayout,
		Logger:            log,
	}
	tags := doc.Tags()
	elems, roleMap, err := pdfmap.ConvertAll(tags, cfg)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	if err := emitElements(out, elems, opts.dedup); err != nil {
		return err
	}
	if len(roleMap) > 0 {
		fmt.Fprintf(out, "RoleMap %s\n", raw.Serialize(roleMap.Dict()))
	}

	if !opts.validate {
		return nil
	}
	return validate(ctx, opts, compliance.FromLayout(doc), out, log)
}

func importDocument(opts options, src []byte, log observability.Logger) (*layout.Document, error) {
	layoutOpts := []layout.Option{
		layout.WithLogger(log),
		layout.WithWritingModeInference(opts.inferDir),
	}
	switch opts.format {
	case "html":
		doc, err := layout.FromHTML(strings.NewReader(string(src)), layoutOpts...)
		if err != nil {
			return nil, fmt.Errorf("import html: %w", err)
		}
		return doc, nil
	case "markdown", "md":
		doc, err := layout.FromMarkdown(src, layoutOpts...)
		if err != nil {
			return nil, fmt.Errorf("import markdown: %w", err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("unknown format %q", opts.format)
	}
}

func emitElements(out io.Writer, elems []writer.StructElem, dedup bool) error {
	if !dedup {
		for i, e := range elems {
			if _, err := fmt.Fprintf(out, "%d %s\n", i, raw.Serialize(e.Dict())); err != nil {
				return err
			}
		}
		return nil
	}
	objects := make(map[raw.ObjectRef]raw.Object)
	refs := writer.Deduplicate(elems, writer.RefAllocator(1), objects)
	// Objects were allocated sequentially, so numbers 1..n cover them all.
	for n := 1; n <= len(objects); n++ {
		ref := raw.ObjectRef{Num: n}
		if _, err := fmt.Fprintf(out, "%d 0 obj %s endobj\n", n, raw.Serialize(objects[ref])); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "%d elements, %d objects\n", len(refs), len(objects))
	return nil
}

func loadRules(path string) ([]rules.Rule, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	var rs []rules.Rule
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	return rs, nil
}

func validate(ctx context.Context, opts options, doc *compliance.Document, out io.Writer, log observability.Logger) error {
	rs, err := loadRules(opts.rulesPath)
	if err != nil {
		return err
	}
	ev, err := rules.NewEvaluator(opts.engine, rules.WithProgramCache(rules.NewProgramCache()), rules.WithLogger(log))
	if err != nil {
		return err
	}
	level := pdfua.PDFUA1
	if opts.version == writer.PDF20 {
		level = pdfua.PDFUA2
	}
	enforcer := pdfua.NewEnforcer(
		pdfua.WithLevel(level),
		pdfua.WithRules(rs...),
		pdfua.WithEvaluator(ev),
		pdfua.WithLogger(log),
	)
	if opts.enforce {
		if err := enforcer.Enforce(ctx, doc, level); err != nil {
			return fmt.Errorf("enforce: %w", err)
		}
	}
	report, err := enforcer.Validate(ctx, doc)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	status := "compliant"
	if !report.Compliant {
		status = fmt.Sprintf("%d violations", len(report.Violations))
	}
	fmt.Fprintf(out, "%s: %s\n", report.Standard, status)
	for _, v := range report.Violations {
		fmt.Fprintf(out, "  %s\n", v)
	}
	if opts.strict && !report.Compliant {
		return errNotCompliant
	}
	return nil
}
