package importer

import (
	"strings"
	"testing"

	"github.com/kwhitfield/docforge/internal/compose"
	"github.com/kwhitfield/docforge/internal/docmodel"
)

// bodyNodes runs a section body and returns the emitted nodes.
func bodyNodes(t *testing.T, s compose.SectionPlan) []docmodel.Node {
	t.Helper()
	doc := docmodel.New()
	b := docmodel.NewBuilder(doc)
	s.Body(b)
	return doc.Nodes
}

func TestMarkdownImporter_TitleAndSections(t *testing.T) {
	input := `# Release Notes

Intro paragraph.

# Changes

## Fixed

- Crash on startup
- Slow load

## Added

1. Dark mode
2. Export
`
	p := &MarkdownImporter{}
	plan, err := p.Import(strings.NewReader(input), "notes.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Title != "Release Notes" {
		t.Errorf("expected title from first h1, got %q", plan.Title)
	}
	if plan.FileName != "Release_Notes.docx" {
		t.Errorf("file name = %q", plan.FileName)
	}

	// Intro text lands in a leading section named after the document;
	// the second h1 opens its own section.
	if len(plan.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(plan.Sections))
	}
	if plan.Sections[0].Title != "Release Notes" {
		t.Errorf("leading section title = %q", plan.Sections[0].Title)
	}
	if plan.Sections[1].Title != "Changes" {
		t.Errorf("second section title = %q", plan.Sections[1].Title)
	}

	nodes := bodyNodes(t, plan.Sections[1])
	wantKinds := []docmodel.Kind{
		docmodel.KindHeading, // Fixed
		docmodel.KindBullet, docmodel.KindBullet,
		docmodel.KindHeading, // Added
		docmodel.KindNumbered, docmodel.KindNumbered,
	}
	if len(nodes) != len(wantKinds) {
		t.Fatalf("expected %d nodes, got %d: %+v", len(wantKinds), len(nodes), nodes)
	}
	for i, k := range wantKinds {
		if nodes[i].Kind != k {
			t.Errorf("node %d: expected %v, got %v", i, k, nodes[i].Kind)
		}
	}
	if nodes[0].Level != 2 {
		t.Errorf("h2 should import as level 2, got %d", nodes[0].Level)
	}
	if nodes[1].Runs[0].Text != "Crash on startup" {
		t.Errorf("bullet text = %q", nodes[1].Runs[0].Text)
	}
}

func TestMarkdownImporter_NoHeadingsFallsBackToFilename(t *testing.T) {
	p := &MarkdownImporter{}
	plan, err := p.Import(strings.NewReader("Just some text.\n"), "memo.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Title != "memo" {
		t.Errorf("expected filename stem title, got %q", plan.Title)
	}
	if len(plan.Sections) != 1 {
		t.Fatalf("expected 1 leading section, got %d", len(plan.Sections))
	}
	nodes := bodyNodes(t, plan.Sections[0])
	if len(nodes) != 1 || nodes[0].Kind != docmodel.KindParagraph {
		t.Errorf("expected a single paragraph, got %+v", nodes)
	}
}

func TestMarkdownImporter_DeepHeadingsClamp(t *testing.T) {
	input := "# T\n\n# S\n\n##### Deep\n\nText.\n"
	p := &MarkdownImporter{}
	plan, err := p.Import(strings.NewReader(input), "x.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nodes := bodyNodes(t, plan.Sections[0])
	if nodes[0].Kind != docmodel.KindHeading || nodes[0].Level != 3 {
		t.Errorf("h5 should clamp to level 3, got %+v", nodes[0])
	}
}

func TestForFile(t *testing.T) {
	if _, err := ForFile("doc.md"); err != nil {
		t.Errorf("md should be supported: %v", err)
	}
	if _, err := ForFile("doc.HTML"); err != nil {
		t.Errorf("extension match should be case-insensitive: %v", err)
	}
	if _, err := ForFile("doc.pdf"); err == nil {
		t.Errorf("pdf should be rejected")
	}
	if IsSupportedExtension("a.docx") {
		t.Errorf("docx is output, not input")
	}
}

func TestOutputName(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Release Notes", "Release_Notes.docx"},
		{"Q3 plan — final", "Q3_plan_final.docx"},
		{"", "document.docx"},
	}
	for _, c := range cases {
		if got := outputName(c.title); got != c.want {
			t.Errorf("outputName(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}
