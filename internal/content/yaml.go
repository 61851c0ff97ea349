package content

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kwhitfield/docforge/internal/compose"
	"github.com/kwhitfield/docforge/internal/docmodel"
)

// planFile is the YAML shape of a declarative content tree. Field names
// are strict: unknown keys are a decode error, so a typo in an authored
// file fails loudly instead of silently dropping content.
type planFile struct {
	Title            string         `yaml:"title"`
	Subtitle         string         `yaml:"subtitle"`
	TitleSizePts     int            `yaml:"title_size_pts"`
	Meta             []metaLineFile `yaml:"meta"`
	HeaderText       string         `yaml:"header_text"`
	Footer           string         `yaml:"footer"`
	ConfidentialNote string         `yaml:"confidential_note"`
	Margins          *marginsFile   `yaml:"margins"`
	FileName         string         `yaml:"file_name"`
	Sections         []sectionFile  `yaml:"sections"`
}

type metaLineFile struct {
	Text string `yaml:"text"`
	Bold bool   `yaml:"bold"`
}

// marginsFile holds page margins in inches.
type marginsFile struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

type sectionFile struct {
	Title string     `yaml:"title"`
	Items []itemFile `yaml:"items"`
}

// itemFile is one content item inside a section. Exactly one of the
// fields must be set; the key name selects the node kind.
type itemFile struct {
	H2       string       `yaml:"h2"`
	H3       string       `yaml:"h3"`
	P        string       `yaml:"p"`
	Bullet   string       `yaml:"bullet"`
	Numbered string       `yaml:"numbered"`
	Table    *tableFile   `yaml:"table"`
	Feature  *featureFile `yaml:"feature"`
}

type tableFile struct {
	Columns []string   `yaml:"columns"`
	Rows    [][]string `yaml:"rows"`
}

type featureFile struct {
	Title              string   `yaml:"title"`
	Overview           string   `yaml:"overview"`
	Capabilities       []string `yaml:"capabilities"`
	BusinessBenefit    string   `yaml:"business_benefit"`
	OperationalBenefit string   `yaml:"operational_benefit"`
	RiskBenefit        string   `yaml:"risk_benefit"`
	OperationalNotes   []string `yaml:"operational_notes"`
	KPIs               []string `yaml:"kpis"`
	Outcomes           []string `yaml:"outcomes"`
	ExampleSteps       []string `yaml:"example_steps"`
}

// Load decodes a YAML content tree into a plan. date becomes the plan's
// document date; everything else comes from the file.
func Load(r io.Reader, date time.Time) (compose.Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var pf planFile
	if err := dec.Decode(&pf); err != nil {
		return compose.Plan{}, fmt.Errorf("decode content tree: %w", err)
	}
	return pf.toPlan(date)
}

// LoadFile reads and decodes a YAML content tree from disk.
func LoadFile(path string, date time.Time) (compose.Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return compose.Plan{}, fmt.Errorf("open content tree: %w", err)
	}
	defer f.Close()

	plan, err := Load(f, date)
	if err != nil {
		return compose.Plan{}, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}

func (pf *planFile) toPlan(date time.Time) (compose.Plan, error) {
	if pf.Title == "" {
		return compose.Plan{}, fmt.Errorf("content tree: missing title")
	}
	if pf.FileName == "" {
		return compose.Plan{}, fmt.Errorf("content tree: missing file_name")
	}

	footer := compose.FooterCentered
	switch pf.Footer {
	case "", "centered":
	case "split":
		footer = compose.FooterSplit
	default:
		return compose.Plan{}, fmt.Errorf("content tree: unknown footer variant %q", pf.Footer)
	}

	var margins docmodel.Margins
	if pf.Margins != nil {
		margins = docmodel.Margins{
			Top:    docmodel.Twips(pf.Margins.Top),
			Bottom: docmodel.Twips(pf.Margins.Bottom),
			Left:   docmodel.Twips(pf.Margins.Left),
			Right:  docmodel.Twips(pf.Margins.Right),
		}
	}

	meta := make([]compose.MetaLine, 0, len(pf.Meta))
	for _, m := range pf.Meta {
		meta = append(meta, compose.MetaLine{Text: m.Text, Bold: m.Bold})
	}

	sections := make([]compose.SectionPlan, 0, len(pf.Sections))
	for i, sf := range pf.Sections {
		if sf.Title == "" {
			return compose.Plan{}, fmt.Errorf("content tree: section %d: missing title", i)
		}
		items := sf.Items
		for j, it := range items {
			if err := it.validate(); err != nil {
				return compose.Plan{}, fmt.Errorf("content tree: section %q item %d: %w", sf.Title, j, err)
			}
		}
		sections = append(sections, compose.SectionPlan{
			Title: sf.Title,
			Body: func(b *docmodel.Builder) {
				for _, it := range items {
					it.emit(b)
				}
			},
		})
	}

	return compose.Plan{
		Title:            pf.Title,
		Subtitle:         pf.Subtitle,
		TitleSizePts:     pf.TitleSizePts,
		Meta:             meta,
		HeaderText:       pf.HeaderText,
		Footer:           footer,
		ConfidentialNote: pf.ConfidentialNote,
		Margins:          margins,
		FileName:         pf.FileName,
		Date:             date,
		Sections:         sections,
	}, nil
}

// validate enforces the one-key-per-item rule.
func (it *itemFile) validate() error {
	n := 0
	for _, set := range []bool{
		it.H2 != "", it.H3 != "", it.P != "",
		it.Bullet != "", it.Numbered != "",
		it.Table != nil, it.Feature != nil,
	} {
		if set {
			n++
		}
	}
	switch n {
	case 0:
		return fmt.Errorf("empty item")
	case 1:
		return nil
	default:
		return fmt.Errorf("item sets %d keys, want exactly one", n)
	}
}

func (it *itemFile) emit(b *docmodel.Builder) {
	switch {
	case it.H2 != "":
		b.Heading(it.H2, 2)
	case it.H3 != "":
		b.Heading(it.H3, 3)
	case it.P != "":
		b.Paragraph(it.P)
	case it.Bullet != "":
		b.Bullet(it.Bullet)
	case it.Numbered != "":
		b.Numbered(it.Numbered)
	case it.Table != nil:
		b.Table(it.Table.Columns, it.Table.Rows)
	case it.Feature != nil:
		f := it.Feature
		b.FeatureBlock(docmodel.FeatureSpec{
			Title:              f.Title,
			Overview:           f.Overview,
			Capabilities:       f.Capabilities,
			BusinessBenefit:    f.BusinessBenefit,
			OperationalBenefit: f.OperationalBenefit,
			RiskBenefit:        f.RiskBenefit,
			OperationalNotes:   f.OperationalNotes,
			KPIs:               f.KPIs,
			Outcomes:           f.Outcomes,
			ExampleSteps:       f.ExampleSteps,
		})
	}
}
