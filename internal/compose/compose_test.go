package compose

import (
	"reflect"
	"testing"
	"time"

	"github.com/kwhitfield/docforge/internal/docmodel"
)

func testPlan() Plan {
	return Plan{
		Title:        "Acme Platform",
		Subtitle:     "Client Proposal",
		TitleSizePts: 30,
		Meta: []MetaLine{
			{Text: "Version: 1.0", Bold: true},
			{Text: "Date: 2026-08-29"},
		},
		HeaderText: "Acme Platform — Client Proposal",
		Footer:     FooterCentered,
		FileName:   "Acme_Platform.docx",
		Date:       time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
		Sections: []SectionPlan{
			{Title: "Overview", Body: func(b *docmodel.Builder) {
				b.Paragraph("Intro.")
				b.Bullet("Point one.")
			}},
			{Title: "Details", Body: func(b *docmodel.Builder) {
				b.Heading("Sub", 2)
				b.Numbered("Step one.")
			}},
		},
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a := Build(testPlan())
	b := Build(testPlan())
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two builds of the same plan differ")
	}
}

func TestBuild_SingleTOCFieldAfterCover(t *testing.T) {
	doc := Build(testPlan())

	tocIdx := -1
	count := 0
	for i, n := range doc.Nodes {
		for _, r := range n.Runs {
			if r.Field == docmodel.FieldTOC {
				count++
				tocIdx = i
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 TOC field, got %d", count)
	}

	// The TOC comes after the cover's page break and before any section
	// heading content.
	firstBreak := -1
	for i, n := range doc.Nodes {
		if n.Kind == docmodel.KindPageBreak {
			firstBreak = i
			break
		}
	}
	if firstBreak == -1 || tocIdx < firstBreak {
		t.Errorf("TOC field at %d should follow the cover page break at %d", tocIdx, firstBreak)
	}
}

func TestBuild_PageBreakPerSection(t *testing.T) {
	plan := testPlan()
	doc := Build(plan)

	breaks := 0
	for _, n := range doc.Nodes {
		if n.Kind == docmodel.KindPageBreak {
			breaks++
		}
	}
	// Cover, TOC, then one per section.
	want := 2 + len(plan.Sections)
	if breaks != want {
		t.Errorf("expected %d page breaks, got %d", want, breaks)
	}
}

func TestBuild_SectionHeadingsAreLevelOne(t *testing.T) {
	plan := testPlan()
	doc := Build(plan)

	var level1 []string
	for _, n := range doc.Nodes {
		if n.Kind == docmodel.KindHeading && n.Level == 1 {
			level1 = append(level1, n.Runs[0].Text)
		}
	}
	want := []string{"Table of Contents", "Overview", "Details"}
	if !reflect.DeepEqual(level1, want) {
		t.Errorf("level-1 headings = %v, want %v", level1, want)
	}
}

func TestBuild_CoverUsesTitleSize(t *testing.T) {
	doc := Build(testPlan())

	first := doc.Nodes[0]
	if first.Align != docmodel.AlignCenter {
		t.Errorf("cover title should be centered")
	}
	if !first.Runs[0].Bold || first.Runs[0].Size != 30 {
		t.Errorf("cover title run = %+v, want bold size 30", first.Runs[0])
	}
}

func TestBuild_CoverTitleSizeDefaults(t *testing.T) {
	plan := testPlan()
	plan.TitleSizePts = 0
	doc := Build(plan)

	if doc.Nodes[0].Runs[0].Size != 28 {
		t.Errorf("default title size = %d, want 28", doc.Nodes[0].Runs[0].Size)
	}
}

func TestHeaderFooter_CenteredVariant(t *testing.T) {
	doc := docmodel.New()
	HeaderFooter(&doc.Section, testPlan())

	if !doc.Section.SuppressFirstPage {
		t.Errorf("first page header/footer should be suppressed")
	}
	if len(doc.Section.Header) != 1 || doc.Section.Header[0].Runs[0].Text != "Acme Platform — Client Proposal" {
		t.Fatalf("unexpected header: %+v", doc.Section.Header)
	}

	f := doc.Section.Footer[0]
	if f.Align != docmodel.AlignCenter {
		t.Errorf("centered footer should be center aligned")
	}
	fields := fieldInstrs(f)
	if !reflect.DeepEqual(fields, []string{docmodel.FieldPage, docmodel.FieldNumPages}) {
		t.Errorf("footer fields = %v", fields)
	}
}

func TestHeaderFooter_SplitVariant(t *testing.T) {
	plan := testPlan()
	plan.Footer = FooterSplit
	plan.ConfidentialNote = "CONFIDENTIAL"
	plan.Margins = docmodel.Margins{
		Top: docmodel.Twips(0.8), Bottom: docmodel.Twips(0.8),
		Left: docmodel.Twips(0.9), Right: docmodel.Twips(0.9),
	}

	doc := docmodel.New()
	HeaderFooter(&doc.Section, plan)

	if doc.Section.Margins != plan.Margins {
		t.Errorf("section margins = %+v, want %+v", doc.Section.Margins, plan.Margins)
	}

	f := doc.Section.Footer[0]
	if f.Runs[0].Text != "CONFIDENTIAL" {
		t.Errorf("split footer should lead with the confidential note, got %q", f.Runs[0].Text)
	}
	if !f.Runs[1].Tab {
		t.Errorf("split footer needs a tab run between note and page counter")
	}
	wantStop := pageWidthTwips - plan.Margins.Left - plan.Margins.Right
	if f.RightTabStop != wantStop {
		t.Errorf("right tab stop = %d, want %d", f.RightTabStop, wantStop)
	}
	fields := fieldInstrs(f)
	if !reflect.DeepEqual(fields, []string{docmodel.FieldPage, docmodel.FieldNumPages}) {
		t.Errorf("footer fields = %v", fields)
	}
}

func TestHeaderFooter_ZeroMarginsKeepDefaults(t *testing.T) {
	doc := docmodel.New()
	orig := doc.Section.Margins

	plan := testPlan()
	plan.Margins = docmodel.Margins{}
	HeaderFooter(&doc.Section, plan)

	if doc.Section.Margins != orig {
		t.Errorf("zero plan margins should keep section defaults, got %+v", doc.Section.Margins)
	}
}

func fieldInstrs(n docmodel.Node) []string {
	var out []string
	for _, r := range n.Runs {
		if r.Field != "" {
			out = append(out, r.Field)
		}
	}
	return out
}
