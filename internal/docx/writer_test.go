package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/kwhitfield/docforge/internal/docmodel"
)

func buildTestDoc() *docmodel.Document {
	doc := docmodel.New()
	doc.SetDefaultStyle("Calibri", 11)
	doc.Section.Margins = docmodel.Margins{
		Top: docmodel.Twips(0.85), Bottom: docmodel.Twips(0.85),
		Left: docmodel.Twips(0.95), Right: docmodel.Twips(0.95),
	}
	doc.Section.SuppressFirstPage = true
	doc.Section.Header = []docmodel.Node{{
		Kind:  docmodel.KindParagraph,
		Align: docmodel.AlignCenter,
		Runs:  []docmodel.Run{{Text: "Header & Title"}},
	}}
	footer := docmodel.Node{Kind: docmodel.KindParagraph, Align: docmodel.AlignCenter}
	footer.Runs = append(footer.Runs, docmodel.Run{Text: "Page "})
	docmodel.AddField(&footer, docmodel.FieldPage)
	footer.Runs = append(footer.Runs, docmodel.Run{Text: " of "})
	docmodel.AddField(&footer, docmodel.FieldNumPages)
	doc.Section.Footer = []docmodel.Node{footer}

	b := docmodel.NewBuilder(doc)
	b.Styled(docmodel.AlignCenter, docmodel.Run{Text: "Title", Bold: true, Size: 30})
	b.PageBreak()
	b.Heading("Table of Contents", 1)
	b.FieldParagraph(docmodel.FieldTOC)
	b.PageBreak()
	b.Heading("Overview", 1)
	b.Paragraph("Some <text> & more.")
	b.Bullet("First bullet")
	b.Numbered("First step")
	b.Table([]string{"Area", "Value"}, [][]string{{"Ops", "High"}})
	return doc
}

func writeParts(t *testing.T, doc *docmodel.Document) map[string]string {
	t.Helper()

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("write: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("read package: %v", err)
	}
	parts := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		parts[f.Name] = string(data)
	}
	return parts
}

func TestWrite_PackageParts(t *testing.T) {
	parts := writeParts(t, buildTestDoc())

	want := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
		"word/numbering.xml",
		"word/settings.xml",
		"word/header1.xml",
		"word/footer1.xml",
	}
	for _, name := range want {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing package part %s", name)
		}
	}
}

func TestWrite_DocumentBody(t *testing.T) {
	parts := writeParts(t, buildTestDoc())
	body := parts["word/document.xml"]

	if !strings.Contains(body, `<w:pStyle w:val="Heading1"/>`) {
		t.Errorf("missing Heading1 paragraph style")
	}
	if got := strings.Count(body, `w:instr="TOC \o &quot;1-3&quot; \h \z \u"`); got != 1 {
		t.Errorf("expected exactly 1 TOC field, got %d", got)
	}
	if !strings.Contains(body, `Some &lt;text&gt; &amp; more.`) {
		t.Errorf("body text not escaped: %s", body)
	}
	if !strings.Contains(body, `<w:numId w:val="1"/>`) {
		t.Errorf("bullet missing numbering instance 1")
	}
	if !strings.Contains(body, `<w:numId w:val="2"/>`) {
		t.Errorf("numbered item missing numbering instance 2")
	}
	if got := strings.Count(body, `<w:br w:type="page"/>`); got != 2 {
		t.Errorf("expected 2 page breaks, got %d", got)
	}
	if !strings.Contains(body, `<w:tblStyle w:val="TableGrid"/>`) {
		t.Errorf("table missing TableGrid style")
	}
}

func TestWrite_SectionProperties(t *testing.T) {
	parts := writeParts(t, buildTestDoc())
	body := parts["word/document.xml"]

	if !strings.Contains(body, `<w:titlePg/>`) {
		t.Errorf("missing titlePg for first-page suppression")
	}
	if !strings.Contains(body, `<w:pgSz w:w="12240" w:h="15840"/>`) {
		t.Errorf("missing US Letter page size")
	}
	if !strings.Contains(body, `w:top="1224"`) || !strings.Contains(body, `w:left="1368"`) {
		t.Errorf("margins not serialized in twips: %s", sectPrOf(body))
	}
	if !strings.Contains(body, `<w:headerReference w:type="default" r:id="rId4"/>`) {
		t.Errorf("missing header reference")
	}
	if !strings.Contains(body, `<w:footerReference w:type="default" r:id="rId5"/>`) {
		t.Errorf("missing footer reference")
	}
}

func sectPrOf(body string) string {
	if i := strings.Index(body, "<w:sectPr>"); i >= 0 {
		return body[i:]
	}
	return ""
}

func TestWrite_HeaderFooterParts(t *testing.T) {
	parts := writeParts(t, buildTestDoc())

	header := parts["word/header1.xml"]
	if !strings.Contains(header, "Header &amp; Title") {
		t.Errorf("header text not present/escaped: %s", header)
	}

	footer := parts["word/footer1.xml"]
	if !strings.Contains(footer, `w:instr="PAGE"`) || !strings.Contains(footer, `w:instr="NUMPAGES"`) {
		t.Errorf("footer missing page fields: %s", footer)
	}
}

func TestWrite_StylesAndSettings(t *testing.T) {
	parts := writeParts(t, buildTestDoc())

	styles := parts["word/styles.xml"]
	if !strings.Contains(styles, `w:ascii="Calibri"`) {
		t.Errorf("styles missing default font")
	}
	// 11pt default is stored in half-points.
	if !strings.Contains(styles, `<w:sz w:val="22"/>`) {
		t.Errorf("styles missing default size")
	}
	for _, style := range []string{"Heading1", "Heading2", "Heading3", "ListParagraph", "TableGrid"} {
		if !strings.Contains(styles, `w:styleId="`+style+`"`) {
			t.Errorf("styles missing %s", style)
		}
	}

	if !strings.Contains(parts["word/settings.xml"], `<w:updateFields w:val="true"/>`) {
		t.Errorf("settings missing updateFields")
	}

	numbering := parts["word/numbering.xml"]
	if !strings.Contains(numbering, `<w:num w:numId="1">`) || !strings.Contains(numbering, `<w:num w:numId="2">`) {
		t.Errorf("numbering missing list instances")
	}
}

func TestWrite_FieldPlaceholderPreserved(t *testing.T) {
	doc := docmodel.New()
	b := docmodel.NewBuilder(doc)
	b.FieldParagraph(docmodel.FieldPage)

	parts := writeParts(t, doc)
	body := parts["word/document.xml"]
	if !strings.Contains(body, `<w:fldSimple w:instr="PAGE"><w:r><w:t xml:space="preserve"> </w:t></w:r></w:fldSimple>`) {
		t.Errorf("field placeholder run malformed: %s", body)
	}
}

func TestWrite_MultilineRunBreaks(t *testing.T) {
	doc := docmodel.New()
	b := docmodel.NewBuilder(doc)
	b.Styled(docmodel.AlignCenter, docmodel.Run{Text: "Version: 1.0\nDate: 2026-08-29\n"})

	parts := writeParts(t, doc)
	body := parts["word/document.xml"]
	if got := strings.Count(body, `<w:br/>`); got != 2 {
		t.Errorf("expected 2 line breaks, got %d: %s", got, body)
	}
}
