package docmodel

// Kind enumerates the content node variants.
type Kind int

const (
	KindHeading Kind = iota
	KindParagraph
	KindBullet
	KindNumbered
	KindTable
	KindPageBreak
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindBullet:
		return "bullet"
	case KindNumbered:
		return "numbered"
	case KindTable:
		return "table"
	case KindPageBreak:
		return "pagebreak"
	default:
		return "unknown"
	}
}

// Alignment of a paragraph.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Run is a span of text within a paragraph. A run with Field set is a
// self-updating field marker (PAGE, NUMPAGES, TOC ...); its Text is the
// placeholder shown before the rendering consumer resolves the field.
// Newlines in Text become line breaks within the run. A run with Tab set
// is a single tab character jumping to the paragraph's right tab stop.
type Run struct {
	Text  string
	Bold  bool
	Size  int // points; 0 inherits the document default
	Field string
	Tab   bool
}

// Node is one content element in document order. Siblings have no
// relationship beyond order; heading levels are advisory markers for
// table-of-contents generation, not structural nesting.
type Node struct {
	Kind  Kind
	Level int // heading level 1-3
	Align Alignment
	Runs  []Run

	// Table content.
	Columns []string
	Rows    [][]string

	// Right-aligned tab stop position in twips (0 = none). Used by
	// split footers; body content never sets it.
	RightTabStop int
}

// Text returns the concatenated text of all runs.
func (n *Node) Text() string {
	var s string
	for _, r := range n.Runs {
		s += r.Text
	}
	return s
}

// AddField appends a field marker run to a paragraph node. The marker
// renders as a single space until the consumer computes its display
// text, so an unprocessed document still shows a stable placeholder.
func AddField(n *Node, instr string) {
	n.Runs = append(n.Runs, Run{Field: instr, Text: " "})
}

// Field instructions understood by rendering consumers.
const (
	FieldPage     = "PAGE"
	FieldNumPages = "NUMPAGES"
)

// FieldTOC is the table-of-contents instruction scoped to heading
// levels 1-3, with hyperlinked entries.
const FieldTOC = `TOC \o "1-3" \h \z \u`
