package contract

import (
	"time"

	"github.com/alexanderramin/frat/internal/domain"
	"github.com/alexanderramin/frat/internal/scoring"
)

// ReportFactor is one checked factor in a report.
type ReportFactor struct {
	ID       string          `json:"id" yaml:"id"`
	Label    string          `json:"label" yaml:"label"`
	Category domain.Category `json:"category" yaml:"category"`
	Weight   int             `json:"weight" yaml:"weight"`
}

// ReportBand is a tier with its display range for the current mode.
type ReportBand struct {
	Tier  domain.RiskTier `json:"tier" yaml:"tier"`
	Range string          `json:"range" yaml:"range"`
}

// Report is a point-in-time snapshot of an assessment.
type Report struct {
	AssessmentID   string                `json:"assessment_id" yaml:"assessment_id"`
	GeneratedAt    time.Time             `json:"generated_at" yaml:"generated_at"`
	PilotType      domain.PilotType      `json:"pilot_type" yaml:"pilot_type"`
	ExperienceBand domain.ExperienceBand `json:"experience_band" yaml:"experience_band"`
	Factors        []ReportFactor        `json:"factors" yaml:"factors"`
	RawScore       int                   `json:"raw_score" yaml:"raw_score"`
	DisplayScore   int                   `json:"display_score" yaml:"display_score"`
	MaxScore       int                   `json:"max_score" yaml:"max_score"`
	Progress       float64               `json:"progress" yaml:"progress"`
	Tier           domain.RiskTier       `json:"tier" yaml:"tier"`
	TierLabel      string                `json:"tier_label" yaml:"tier_label"`
	Thresholds     scoring.Thresholds    `json:"thresholds" yaml:"thresholds"`
	Bands          []ReportBand          `json:"bands" yaml:"bands"`
}

// Mode returns the assessment mode the report was produced under.
func (r Report) Mode() domain.AssessmentMode {
	return domain.AssessmentMode{PilotType: r.PilotType, ExperienceBand: r.ExperienceBand}
}

// NewReport builds a report from checked factors and a scoring result.
func NewReport(id string, at time.Time, mode domain.AssessmentMode, factors []domain.Factor, res scoring.Result) Report {
	checked := make([]ReportFactor, 0, len(factors))
	for _, f := range factors {
		if !f.Active {
			continue
		}
		checked = append(checked, ReportFactor{
			ID:       f.ID,
			Label:    f.Label,
			Category: f.Category,
			Weight:   f.Weight,
		})
	}

	bands := make([]ReportBand, 0, 3)
	for _, b := range res.Thresholds.Bands() {
		bands = append(bands, ReportBand{Tier: b.Tier, Range: b.Range})
	}

	return Report{
		AssessmentID:   id,
		GeneratedAt:    at,
		PilotType:      mode.PilotType,
		ExperienceBand: mode.ExperienceBand,
		Factors:        checked,
		RawScore:       res.Raw,
		DisplayScore:   res.Display,
		MaxScore:       res.MaxScore,
		Progress:       res.Progress,
		Tier:           res.Tier,
		TierLabel:      res.Tier.Label(),
		Thresholds:     res.Thresholds,
		Bands:          bands,
	}
}
