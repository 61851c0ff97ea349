package docmodel

// Builder appends content nodes to a document in call order. It is the
// single write path for document content; every emission method adds
// one or more nodes and never fails.
type Builder struct {
	doc *Document
}

// NewBuilder returns a builder writing into doc.
func NewBuilder(doc *Document) *Builder {
	return &Builder{doc: doc}
}

// Document returns the document under construction.
func (b *Builder) Document() *Document {
	return b.doc
}

// Heading emits a styled heading. Level must be 1, 2, or 3; passing a
// level outside that range is a caller contract violation and is
// recorded as given.
func (b *Builder) Heading(text string, level int) {
	b.doc.Nodes = append(b.doc.Nodes, Node{
		Kind:  KindHeading,
		Level: level,
		Runs:  []Run{{Text: text}},
	})
}

// Paragraph emits a plain body paragraph.
func (b *Builder) Paragraph(text string) {
	b.doc.Nodes = append(b.doc.Nodes, Node{
		Kind: KindParagraph,
		Runs: []Run{{Text: text}},
	})
}

// Styled emits a paragraph from explicit runs, e.g. cover-page lines
// with local bold/size overrides or embedded field markers.
func (b *Builder) Styled(align Alignment, runs ...Run) {
	b.doc.Nodes = append(b.doc.Nodes, Node{
		Kind:  KindParagraph,
		Align: align,
		Runs:  runs,
	})
}

// Bullet emits one bulleted list item.
func (b *Builder) Bullet(text string) {
	b.doc.Nodes = append(b.doc.Nodes, Node{
		Kind: KindBullet,
		Runs: []Run{{Text: text}},
	})
}

// Numbered emits one numbered list item.
func (b *Builder) Numbered(text string) {
	b.doc.Nodes = append(b.doc.Nodes, Node{
		Kind: KindNumbered,
		Runs: []Run{{Text: text}},
	})
}

// Table emits a fixed-column table. columns defines the header row and
// the column count; every data row is normalized to that count: short
// rows are padded with empty cells and long rows truncated, so a
// mismatched row renders predictably instead of failing mid-build.
func (b *Builder) Table(columns []string, rows [][]string) {
	norm := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(columns))
		copy(cells, row)
		norm[i] = cells
	}
	b.doc.Nodes = append(b.doc.Nodes, Node{
		Kind:    KindTable,
		Columns: append([]string(nil), columns...),
		Rows:    norm,
	})
}

// PageBreak emits a marker forcing the renderer to start a new page.
func (b *Builder) PageBreak() {
	b.doc.Nodes = append(b.doc.Nodes, Node{Kind: KindPageBreak})
}

// FieldParagraph emits a paragraph containing a single field marker,
// e.g. the generated table of contents.
func (b *Builder) FieldParagraph(instr string) {
	n := Node{Kind: KindParagraph}
	AddField(&n, instr)
	b.doc.Nodes = append(b.doc.Nodes, n)
}
