package domain

// FactorDef is the immutable definition of one checklist item.
type FactorDef struct {
	ID       string
	Label    string
	Category Category
	Weight   int
}

// Mitigating reports whether the factor lowers the score when checked.
func (d FactorDef) Mitigating() bool {
	return d.Weight < 0
}

// Factor is a definition together with its current checked state.
type Factor struct {
	FactorDef
	Active bool
}

// AssessmentMode selects the threshold row used for classification.
type AssessmentMode struct {
	PilotType      PilotType
	ExperienceBand ExperienceBand
}

// DefaultMode is the mode a new assessment starts in.
func DefaultMode() AssessmentMode {
	return AssessmentMode{
		PilotType:      PilotVFR,
		ExperienceBand: ExperienceUnder100,
	}
}

// Caption renders the mode as "VFR Pilot - < 100 Hours in Type".
func (m AssessmentMode) Caption() string {
	return m.PilotType.Label() + " - " + m.ExperienceBand.Label()
}
