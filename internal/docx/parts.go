package docx

import (
	"fmt"
	"strings"

	"github.com/kwhitfield/docforge/internal/docmodel"
)

const xmlProlog = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const wNamespaces = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

const contentTypesXML = xmlProlog +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`<Override PartName="/word/settings.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"/>` +
	`<Override PartName="/word/header1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"/>` +
	`<Override PartName="/word/footer1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"/>` +
	`</Types>`

const packageRelsXML = xmlProlog +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlProlog +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings" Target="settings.xml"/>` +
	`<Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/header" Target="header1.xml"/>` +
	`<Relationship Id="rId5" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer" Target="footer1.xml"/>` +
	`</Relationships>`

// settingsXML asks Word to refresh fields on open, so the table of
// contents and page counts populate without a manual update.
const settingsXML = xmlProlog +
	`<w:settings ` + wNamespaces + `>` +
	`<w:updateFields w:val="true"/>` +
	`</w:settings>`

// numberingXML defines the two list instances the model uses: a bullet
// list and a decimal list, each single-level.
const numberingXML = xmlProlog +
	`<w:numbering ` + wNamespaces + `>` +
	`<w:abstractNum w:abstractNumId="0">` +
	`<w:multiLevelType w:val="singleLevel"/>` +
	`<w:lvl w:ilvl="0">` +
	`<w:start w:val="1"/>` +
	`<w:numFmt w:val="bullet"/>` +
	`<w:lvlText w:val="&#61623;"/>` +
	`<w:lvlJc w:val="left"/>` +
	`<w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr>` +
	`<w:rPr><w:rFonts w:ascii="Symbol" w:hAnsi="Symbol" w:hint="default"/></w:rPr>` +
	`</w:lvl>` +
	`</w:abstractNum>` +
	`<w:abstractNum w:abstractNumId="1">` +
	`<w:multiLevelType w:val="singleLevel"/>` +
	`<w:lvl w:ilvl="0">` +
	`<w:start w:val="1"/>` +
	`<w:numFmt w:val="decimal"/>` +
	`<w:lvlText w:val="%1."/>` +
	`<w:lvlJc w:val="left"/>` +
	`<w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr>` +
	`</w:lvl>` +
	`</w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`<w:num w:numId="2"><w:abstractNumId w:val="1"/></w:num>` +
	`</w:numbering>`

// stylesXML declares the document defaults plus the named styles the
// writer references: Normal, the three TOC-visible heading levels (via
// outlineLvl), the list paragraph indent, and a bordered table style.
// The default font family and size come from the document model.
func stylesXML(style docmodel.Style) string {
	family := escape(style.FontFamily)
	half := style.SizePts * 2

	var b strings.Builder
	b.WriteString(xmlProlog)
	b.WriteString(`<w:styles ` + wNamespaces + `>`)

	fmt.Fprintf(&b,
		`<w:docDefaults><w:rPrDefault><w:rPr>`+
			`<w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/>`+
			`<w:sz w:val="%d"/><w:szCs w:val="%d"/>`+
			`</w:rPr></w:rPrDefault></w:docDefaults>`,
		family, family, family, half, half)

	fmt.Fprintf(&b,
		`<w:style w:type="paragraph" w:default="1" w:styleId="Normal">`+
			`<w:name w:val="Normal"/>`+
			`<w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s"/><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr>`+
			`</w:style>`,
		family, family, half, half)

	headings := []struct {
		id    string
		name  string
		level int
		size  int // half-points
		color string
	}{
		{"Heading1", "heading 1", 0, 32, "2F5496"},
		{"Heading2", "heading 2", 1, 26, "2F5496"},
		{"Heading3", "heading 3", 2, 24, "1F3863"},
	}
	for _, h := range headings {
		fmt.Fprintf(&b,
			`<w:style w:type="paragraph" w:styleId="%s">`+
				`<w:name w:val="%s"/>`+
				`<w:basedOn w:val="Normal"/>`+
				`<w:next w:val="Normal"/>`+
				`<w:pPr><w:keepNext/><w:spacing w:before="240" w:after="60"/><w:outlineLvl w:val="%d"/></w:pPr>`+
				`<w:rPr><w:b/><w:sz w:val="%d"/><w:szCs w:val="%d"/><w:color w:val="%s"/></w:rPr>`+
				`</w:style>`,
			h.id, h.name, h.level, h.size, h.size, h.color)
	}

	b.WriteString(
		`<w:style w:type="paragraph" w:styleId="ListParagraph">` +
			`<w:name w:val="List Paragraph"/>` +
			`<w:basedOn w:val="Normal"/>` +
			`<w:pPr><w:ind w:left="720"/><w:contextualSpacing/></w:pPr>` +
			`</w:style>`)

	b.WriteString(
		`<w:style w:type="table" w:styleId="TableGrid">` +
			`<w:name w:val="Table Grid"/>` +
			`<w:tblPr><w:tblBorders>` +
			`<w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
			`<w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
			`<w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
			`<w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
			`<w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
			`<w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
			`</w:tblBorders></w:tblPr>` +
			`</w:style>`)

	b.WriteString(`</w:styles>`)
	return b.String()
}
