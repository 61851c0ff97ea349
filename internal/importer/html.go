package importer

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/kwhitfield/docforge/internal/compose"
	"github.com/kwhitfield/docforge/internal/docmodel"
)

// HTMLImporter handles HTML files.
type HTMLImporter struct{}

func (p *HTMLImporter) Import(r io.Reader, filename string) (compose.Plan, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return compose.Plan{}, fmt.Errorf("parse html: %w", err)
	}

	title := findTitle(doc)

	var (
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

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				t := textContent(n)
				if level == 1 {
					if title == "" && len(lead) == 0 && len(sections) == 0 {
						title = t
						return
					}
					sections = append(sections, sectionOps{title: t})
					return
				}
				clamped := clampHeading(level)
				appendOp(func(b *docmodel.Builder) { b.Heading(t, clamped) })
				return
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "ul", "ol":
				ordered := n.Data == "ol"
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					if c.Type != html.ElementNode || c.Data != "li" {
						continue
					}
					t := textContent(c)
					if t == "" {
						continue
					}
					if ordered {
						appendOp(func(b *docmodel.Builder) { b.Numbered(t) })
					} else {
						appendOp(func(b *docmodel.Builder) { b.Bullet(t) })
					}
				}
				return
			case "p", "blockquote", "pre":
				t := textContent(n)
				if t != "" {
					appendOp(func(b *docmodel.Builder) { b.Paragraph(t) })
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return assemble(title, filename, lead, sections), nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
