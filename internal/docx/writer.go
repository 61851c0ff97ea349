// Package docx serializes a finalized document model into a .docx
// package. A .docx file is a ZIP archive of OOXML parts; the main
// content lives at word/document.xml with styles, numbering, settings,
// and header/footer parts referenced through relationships. The writer
// emits WordprocessingML directly — element order matters to Word, in
// particular sectPr must close the body and pPr must open a paragraph.
package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kwhitfield/docforge/internal/docmodel"
)

// Write renders doc as a complete .docx package. The document must be
// finalized; Write does not mutate it.
func Write(w io.Writer, doc *docmodel.Document) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", documentXML(doc)},
		{"word/styles.xml", stylesXML(doc.Style)},
		{"word/numbering.xml", numberingXML},
		{"word/settings.xml", settingsXML},
		{"word/header1.xml", headerXML(doc.Section.Header)},
		{"word/footer1.xml", footerXML(doc.Section.Footer)},
	}

	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := io.WriteString(f, p.data); err != nil {
			return fmt.Errorf("write %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close package: %w", err)
	}
	return nil
}

// documentXML renders the body: every content node in order, closed by
// the section properties (margins, header/footer references, first
// page suppression).
func documentXML(doc *docmodel.Document) string {
	var b strings.Builder
	b.WriteString(xmlProlog)
	b.WriteString(`<w:document ` + wNamespaces + `>`)
	b.WriteString(`<w:body>`)
	writeNodes(&b, doc.Nodes)
	writeSectPr(&b, doc.Section)
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func headerXML(nodes []docmodel.Node) string {
	var b strings.Builder
	b.WriteString(xmlProlog)
	b.WriteString(`<w:hdr ` + wNamespaces + `>`)
	writeNodes(&b, nodes)
	b.WriteString(`</w:hdr>`)
	return b.String()
}

func footerXML(nodes []docmodel.Node) string {
	var b strings.Builder
	b.WriteString(xmlProlog)
	b.WriteString(`<w:ftr ` + wNamespaces + `>`)
	writeNodes(&b, nodes)
	b.WriteString(`</w:ftr>`)
	return b.String()
}

func writeNodes(b *strings.Builder, nodes []docmodel.Node) {
	for i := range nodes {
		writeNode(b, &nodes[i])
	}
}

func writeNode(b *strings.Builder, n *docmodel.Node) {
	switch n.Kind {
	case docmodel.KindHeading:
		writeParagraph(b, n, "Heading"+strconv.Itoa(n.Level), 0)
	case docmodel.KindParagraph:
		writeParagraph(b, n, "", 0)
	case docmodel.KindBullet:
		writeParagraph(b, n, "ListParagraph", numIDBullet)
	case docmodel.KindNumbered:
		writeParagraph(b, n, "ListParagraph", numIDDecimal)
	case docmodel.KindTable:
		writeTable(b, n)
	case docmodel.KindPageBreak:
		b.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
	}
}

// Numbering instances defined in numbering.xml.
const (
	numIDBullet  = 1
	numIDDecimal = 2
)

func writeParagraph(b *strings.Builder, n *docmodel.Node, style string, numID int) {
	b.WriteString(`<w:p>`)

	hasProps := style != "" || numID != 0 || n.Align != docmodel.AlignLeft || n.RightTabStop > 0
	if hasProps {
		b.WriteString(`<w:pPr>`)
		if style != "" {
			b.WriteString(`<w:pStyle w:val="` + style + `"/>`)
		}
		if numID != 0 {
			fmt.Fprintf(b, `<w:numPr><w:ilvl w:val="0"/><w:numId w:val="%d"/></w:numPr>`, numID)
		}
		if n.RightTabStop > 0 {
			fmt.Fprintf(b, `<w:tabs><w:tab w:val="right" w:pos="%d"/></w:tabs>`, n.RightTabStop)
		}
		switch n.Align {
		case docmodel.AlignCenter:
			b.WriteString(`<w:jc w:val="center"/>`)
		case docmodel.AlignRight:
			b.WriteString(`<w:jc w:val="right"/>`)
		}
		b.WriteString(`</w:pPr>`)
	}

	for _, r := range n.Runs {
		writeRun(b, r)
	}
	b.WriteString(`</w:p>`)
}

func writeRun(b *strings.Builder, r docmodel.Run) {
	if r.Field != "" {
		// A fldSimple wraps a placeholder run; the consumer replaces
		// the placeholder with the computed field text.
		b.WriteString(`<w:fldSimple w:instr="` + escape(r.Field) + `">`)
		b.WriteString(`<w:r><w:t xml:space="preserve">` + escape(r.Text) + `</w:t></w:r>`)
		b.WriteString(`</w:fldSimple>`)
		return
	}
	if r.Tab {
		b.WriteString(`<w:r><w:tab/></w:r>`)
		return
	}

	b.WriteString(`<w:r>`)
	if r.Bold || r.Size > 0 {
		b.WriteString(`<w:rPr>`)
		if r.Bold {
			b.WriteString(`<w:b/>`)
		}
		if r.Size > 0 {
			half := r.Size * 2
			fmt.Fprintf(b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, half, half)
		}
		b.WriteString(`</w:rPr>`)
	}
	lines := strings.Split(r.Text, "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString(`<w:br/>`)
		}
		if line != "" {
			b.WriteString(`<w:t xml:space="preserve">` + escape(line) + `</w:t>`)
		}
	}
	b.WriteString(`</w:r>`)
}

func writeTable(b *strings.Builder, n *docmodel.Node) {
	b.WriteString(`<w:tbl>`)
	b.WriteString(`<w:tblPr><w:tblStyle w:val="TableGrid"/><w:tblW w:w="0" w:type="auto"/></w:tblPr>`)
	b.WriteString(`<w:tblGrid>`)
	for range n.Columns {
		b.WriteString(`<w:gridCol/>`)
	}
	b.WriteString(`</w:tblGrid>`)

	writeTableRow(b, n.Columns)
	for _, row := range n.Rows {
		writeTableRow(b, row)
	}
	b.WriteString(`</w:tbl>`)
}

func writeTableRow(b *strings.Builder, cells []string) {
	b.WriteString(`<w:tr>`)
	for _, cell := range cells {
		b.WriteString(`<w:tc><w:tcPr><w:tcW w:w="0" w:type="auto"/></w:tcPr>`)
		b.WriteString(`<w:p><w:r><w:t xml:space="preserve">` + escape(cell) + `</w:t></w:r></w:p>`)
		b.WriteString(`</w:tc>`)
	}
	b.WriteString(`</w:tr>`)
}

// writeSectPr closes the body with the layout region: header/footer
// references, US Letter page size, margins, and titlePg when the first
// page suppresses header/footer.
func writeSectPr(b *strings.Builder, sec docmodel.Section) {
	b.WriteString(`<w:sectPr>`)
	b.WriteString(`<w:headerReference w:type="default" r:id="rId4"/>`)
	b.WriteString(`<w:footerReference w:type="default" r:id="rId5"/>`)
	b.WriteString(`<w:pgSz w:w="12240" w:h="15840"/>`)
	fmt.Fprintf(b,
		`<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/>`,
		sec.Margins.Top, sec.Margins.Right, sec.Margins.Bottom, sec.Margins.Left)
	if sec.SuppressFirstPage {
		b.WriteString(`<w:titlePg/>`)
	}
	b.WriteString(`</w:sectPr>`)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
