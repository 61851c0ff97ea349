// Package importer turns authored source documents (markdown, HTML)
// into content plans the composer can render. Each importer maps the
// source's heading structure onto top-level sections and clamps deeper
// headings to the three levels the renderer styles.
package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/kwhitfield/docforge/internal/compose"
	"github.com/kwhitfield/docforge/internal/docmodel"
)

// Importer converts raw document bytes into a content plan.
type Importer interface {
	Import(r io.Reader, filename string) (compose.Plan, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
}

// ForFile returns the appropriate importer for a filename.
func ForFile(filename string) (Importer, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return &MarkdownImporter{}, nil
	case ".html", ".htm":
		return &HTMLImporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// op is a deferred builder emission recorded while walking the source.
type op func(b *docmodel.Builder)

// sectionOps is one top-level section under construction.
type sectionOps struct {
	title string
	ops   []op
}

// plan assembles the collected sections into a content plan. Content
// found before the first top-level heading becomes a leading section
// carrying the document title, matching how untitled front matter reads
// in the source.
func assemble(title, filename string, lead []op, sections []sectionOps) compose.Plan {
	if title == "" {
		title = stem(filename)
	}
	all := sections
	if len(lead) > 0 {
		all = append([]sectionOps{{title: title, ops: lead}}, sections...)
	}

	plans := make([]compose.SectionPlan, 0, len(all))
	for _, s := range all {
		ops := s.ops
		plans = append(plans, compose.SectionPlan{
			Title: s.title,
			Body: func(b *docmodel.Builder) {
				for _, o := range ops {
					o(b)
				}
			},
		})
	}
	return compose.Plan{
		Title:    title,
		FileName: outputName(title),
		Sections: plans,
	}
}

func stem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// outputName derives a docx filename from a document title the way the
// shipped documents name theirs: words joined by underscores.
func outputName(title string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range title {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	name := b.String()
	if name == "" {
		name = "document"
	}
	return name + ".docx"
}

// clampHeading maps a source heading level to a renderer sub-heading
// level. Level 1 belongs to section titles; anything deeper than 3
// renders as 3.
func clampHeading(level int) int {
	if level < 2 {
		return 2
	}
	if level > 3 {
		return 3
	}
	return level
}
