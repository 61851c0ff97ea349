package importer

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/kwhitfield/docforge/internal/compose"
	"github.com/kwhitfield/docforge/internal/docmodel"
)

// MarkdownImporter handles Markdown files using goldmark.
type MarkdownImporter struct{}

func (p *MarkdownImporter) Import(r io.Reader, filename string) (compose.Plan, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return compose.Plan{}, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var (
		title    string
		lead     []op
		sections []sectionOps
	)
	appendOp := func(o op) {
		if len(sections) == 0 {
			lead = append(lead, o)
			return
		}
		s := &sections[len(sections)-1]
		s.ops = append(s.ops, o)
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			t := string(node.Text(src))
			if node.Level == 1 {
				// The first h1 with nothing before it is the document
				// title; every other h1 starts a section.
				if title == "" && len(lead) == 0 && len(sections) == 0 {
					title = t
					continue
				}
				sections = append(sections, sectionOps{title: t})
				continue
			}
			level := clampHeading(node.Level)
			appendOp(func(b *docmodel.Builder) { b.Heading(t, level) })

		case *ast.List:
			ordered := node.IsOrdered()
			for li := node.FirstChild(); li != nil; li = li.NextSibling() {
				t := blockText(li, src)
				if t == "" {
					continue
				}
				if ordered {
					appendOp(func(b *docmodel.Builder) { b.Numbered(t) })
				} else {
					appendOp(func(b *docmodel.Builder) { b.Bullet(t) })
				}
			}

		case *ast.ThematicBreak:
			appendOp(func(b *docmodel.Builder) { b.PageBreak() })

		default:
			t := blockText(n, src)
			if t != "" {
				appendOp(func(b *docmodel.Builder) { b.Paragraph(t) })
			}
		}
	}

	return assemble(title, filename, lead, sections), nil
}

// blockText gets the text content of a goldmark AST node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		} else {
			buf.WriteString(blockText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
