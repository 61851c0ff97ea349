package compose

import "github.com/kwhitfield/docforge/internal/docmodel"

// pageWidthTwips is US Letter width; the right tab stop of a split
// footer lands at the right margin.
const pageWidthTwips = 12240

// HeaderFooter configures the document's layout section: margins, a
// centered static header line, the selected footer variant, and
// first-page suppression so the cover renders without either. A fresh
// section has no content to reuse; the composer always creates the
// header and footer paragraphs itself and never fails.
func HeaderFooter(sec *docmodel.Section, plan Plan) {
	if plan.Margins != (docmodel.Margins{}) {
		sec.Margins = plan.Margins
	}
	sec.SuppressFirstPage = true

	sec.Header = []docmodel.Node{{
		Kind:  docmodel.KindParagraph,
		Align: docmodel.AlignCenter,
		Runs:  []docmodel.Run{{Text: plan.HeaderText}},
	}}

	switch plan.Footer {
	case FooterSplit:
		sec.Footer = []docmodel.Node{splitFooter(plan.ConfidentialNote, sec.Margins)}
	default:
		sec.Footer = []docmodel.Node{centeredFooter()}
	}
}

// centeredFooter builds "Page {PAGE} of {NUMPAGES}" as one centered
// line of literal runs interleaved with field markers.
func centeredFooter() docmodel.Node {
	n := docmodel.Node{Kind: docmodel.KindParagraph, Align: docmodel.AlignCenter}
	n.Runs = append(n.Runs, docmodel.Run{Text: "Page "})
	docmodel.AddField(&n, docmodel.FieldPage)
	n.Runs = append(n.Runs, docmodel.Run{Text: " of "})
	docmodel.AddField(&n, docmodel.FieldNumPages)
	return n
}

// splitFooter builds a two-column line: the confidential notice on the
// left and the page counter flushed to a right tab stop at the margin.
func splitFooter(note string, m docmodel.Margins) docmodel.Node {
	n := docmodel.Node{
		Kind:         docmodel.KindParagraph,
		RightTabStop: pageWidthTwips - m.Left - m.Right,
	}
	n.Runs = append(n.Runs, docmodel.Run{Text: note})
	n.Runs = append(n.Runs, docmodel.Run{Tab: true})
	n.Runs = append(n.Runs, docmodel.Run{Text: "Page "})
	docmodel.AddField(&n, docmodel.FieldPage)
	n.Runs = append(n.Runs, docmodel.Run{Text: " of "})
	docmodel.AddField(&n, docmodel.FieldNumPages)
	return n
}
