package docmodel

// Style is the document-wide default typography. All paragraphs
// inherit it unless a run overrides size or weight locally.
type Style struct {
	FontFamily string
	SizePts    int
}

// Margins are page margins in twips (1/1440 inch).
type Margins struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Twips converts inches to twips.
func Twips(inches float64) int {
	return int(inches*1440 + 0.5)
}

// Section is the document's layout region: margins plus header and
// footer content blocks. Exactly one Section exists per document;
// SuppressFirstPage blanks the header/footer on the first physical
// page so a cover page renders clean.
type Section struct {
	Margins           Margins
	Header            []Node
	Footer            []Node
	SuppressFirstPage bool
}

// Document is the root of the in-memory model: a default style, one
// layout Section, and content nodes in document order. It is built by
// a single orchestration call and must not be mutated after being
// handed to persistence.
type Document struct {
	Style   Style
	Section Section
	Nodes   []Node
}

// New returns an empty document with neutral defaults.
func New() *Document {
	return &Document{
		Style: Style{FontFamily: "Calibri", SizePts: 11},
		Section: Section{
			Margins: Margins{
				Top:    Twips(1),
				Bottom: Twips(1),
				Left:   Twips(1),
				Right:  Twips(1),
			},
		},
	}
}

// SetDefaultStyle sets the document-wide default font family and point
// size. Idempotent; the last call wins.
func (d *Document) SetDefaultStyle(family string, sizePts int) {
	d.Style = Style{FontFamily: family, SizePts: sizePts}
}
