package docmodel

// FeatureSpec is the input record for a feature block. All fields are
// enumerated explicitly; there is no open-ended attribute bag.
type FeatureSpec struct {
	Title              string
	Overview           string
	Capabilities       []string
	BusinessBenefit    string
	OperationalBenefit string
	RiskBenefit        string
	OperationalNotes   []string
	KPIs               []string
	Outcomes           []string
	ExampleSteps       []string
}

// FeatureBlock expands a feature spec into a fixed sequence of nodes:
// title heading, overview paragraph, then five labeled sub-blocks of
// bullets and a numbered example walkthrough. The expansion order and
// node-type sequence are invariant over input content: an empty list
// field still emits its sub-heading with zero children, so downstream
// table-of-contents generation sees a predictable structure.
func (b *Builder) FeatureBlock(spec FeatureSpec) {
	b.Heading(spec.Title, 2)
	b.Paragraph(spec.Overview)

	b.Heading("Key capabilities", 3)
	for _, c := range spec.Capabilities {
		b.Bullet(c)
	}

	b.Heading("Benefits", 3)
	b.Bullet("Business benefit: " + spec.BusinessBenefit)
	b.Bullet("Operational benefit: " + spec.OperationalBenefit)
	b.Bullet("Risk mitigation benefit: " + spec.RiskBenefit)

	b.Heading("Operational notes (enterprise-friendly)", 3)
	for _, note := range spec.OperationalNotes {
		b.Bullet(note)
	}

	b.Heading("KPIs & measurable outcomes", 3)
	for _, kpi := range spec.KPIs {
		b.Bullet(kpi)
	}

	b.Heading("Typical outcomes (what clients can expect)", 3)
	for _, outcome := range spec.Outcomes {
		b.Bullet(outcome)
	}

	b.Heading("Example in practice (simplified)", 3)
	for _, step := range spec.ExampleSteps {
		b.Numbered(step)
	}
}
