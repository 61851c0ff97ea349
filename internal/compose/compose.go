// Package compose sequences a content plan into a finished document:
// default style, layout section header/footer, cover block, table of
// contents, then the named sections, each closed by a page break. The
// pipeline is linear and performs no I/O; two runs over the same plan
// produce structurally identical documents.
package compose

import (
	"time"

	"github.com/kwhitfield/docforge/internal/docmodel"
)

// FooterVariant selects the footer layout for a document type.
type FooterVariant int

const (
	// FooterCentered is a single centered "Page X of Y" line.
	FooterCentered FooterVariant = iota
	// FooterSplit is a left-aligned confidential notice with a
	// right-aligned "Page X of Y" on the same line.
	FooterSplit
)

// MetaLine is one line of the cover-page metadata block.
type MetaLine struct {
	Text string
	Bold bool
}

// SectionPlan is one named top-level section. Body emits the section
// content through the builder; the orchestrator owns the section
// heading and the trailing page break.
type SectionPlan struct {
	Title string
	Body  func(b *docmodel.Builder)
}

// Plan is the declarative input to Build: document identity, layout
// settings, cover metadata, and the ordered named sections. Date is
// the only timestamp input; everything else is static content data.
type Plan struct {
	Title        string
	Subtitle     string
	TitleSizePts int
	Meta         []MetaLine

	HeaderText       string
	Footer           FooterVariant
	ConfidentialNote string
	Margins          docmodel.Margins

	FileName string
	Date     time.Time

	Sections []SectionPlan
}

// Build assembles the complete document for a plan. It cannot fail:
// builder calls are side-effect-only and any malformed plan content is
// a caller precondition surfaced during authoring, not at runtime.
func Build(plan Plan) *docmodel.Document {
	doc := docmodel.New()
	doc.SetDefaultStyle("Calibri", 11)
	HeaderFooter(&doc.Section, plan)

	b := docmodel.NewBuilder(doc)
	cover(b, plan)
	tableOfContents(b)

	for _, s := range plan.Sections {
		b.Heading(s.Title, 1)
		if s.Body != nil {
			s.Body(b)
		}
		b.PageBreak()
	}
	return doc
}

// cover emits the title page: centered title, subtitle, a spacer, the
// metadata block, and a page break. The first page has no
// header/footer because the layout section suppresses them.
func cover(b *docmodel.Builder, plan Plan) {
	size := plan.TitleSizePts
	if size == 0 {
		size = 28
	}
	b.Styled(docmodel.AlignCenter, docmodel.Run{Text: plan.Title, Bold: true, Size: size})
	b.Styled(docmodel.AlignCenter, docmodel.Run{Text: plan.Subtitle, Size: 16})
	b.Paragraph("")

	runs := make([]docmodel.Run, 0, len(plan.Meta))
	for _, m := range plan.Meta {
		runs = append(runs, docmodel.Run{Text: m.Text + "\n", Bold: m.Bold})
	}
	b.Styled(docmodel.AlignCenter, runs...)
	b.PageBreak()
}

// tableOfContents emits the TOC heading, a single TOC field scoped to
// heading levels 1-3, and a page break. Exactly one TOC field exists
// per document.
func tableOfContents(b *docmodel.Builder) {
	b.Heading("Table of Contents", 1)
	b.FieldParagraph(docmodel.FieldTOC)
	b.PageBreak()
}
