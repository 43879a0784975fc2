// Package scoring turns a set of checked factors into a score and a risk tier.
package scoring

import (
	"fmt"

	"github.com/alexanderramin/frat/internal/domain"
)

// Thresholds are the inclusive upper bounds of the Low and Moderate tiers.
type Thresholds struct {
	LowMax      int `json:"low_max" yaml:"low_max"`
	ModerateMax int `json:"moderate_max" yaml:"moderate_max"`
}

var thresholdTable = map[domain.AssessmentMode]Thresholds{
	{PilotType: domain.PilotVFR, ExperienceBand: domain.ExperienceUnder100}: {LowMax: 15, ModerateMax: 20},
	{PilotType: domain.PilotVFR, ExperienceBand: domain.ExperienceOver100}:  {LowMax: 20, ModerateMax: 25},
	{PilotType: domain.PilotIFR, ExperienceBand: domain.ExperienceUnder100}: {LowMax: 25, ModerateMax: 30},
	{PilotType: domain.PilotIFR, ExperienceBand: domain.ExperienceOver100}:  {LowMax: 30, ModerateMax: 35},
}

// ThresholdsFor returns the threshold row for mode. Unknown modes get the
// strictest row (VFR, under 100 hours).
func ThresholdsFor(mode domain.AssessmentMode) Thresholds {
	if t, ok := thresholdTable[mode]; ok {
		return t
	}
	return thresholdTable[domain.DefaultMode()]
}

// Band is the display range of one tier, e.g. "16-20" or "21+".
type Band struct {
	Tier  domain.RiskTier
	Range string
}

// Bands returns the score ranges for Low, Moderate and High.
func (t Thresholds) Bands() []Band {
	return []Band{
		{Tier: domain.TierLow, Range: fmt.Sprintf("0-%d", t.LowMax)},
		{Tier: domain.TierModerate, Range: fmt.Sprintf("%d-%d", t.LowMax+1, t.ModerateMax)},
		{Tier: domain.TierHigh, Range: fmt.Sprintf("%d+", t.ModerateMax+1)},
	}
}

// RawScore sums the weights of active factors. The result may be negative.
func RawScore(factors []domain.Factor) int {
	total := 0
	for _, f := range factors {
		if f.Active {
			total += f.Weight
		}
	}
	return total
}

// DisplayScore floors a raw score at zero.
func DisplayScore(raw int) int {
	return max(raw, 0)
}

// Classify maps a display score to a tier using the thresholds for mode.
func Classify(display int, mode domain.AssessmentMode) domain.RiskTier {
	t := ThresholdsFor(mode)
	switch {
	case display <= t.LowMax:
		return domain.TierLow
	case display <= t.ModerateMax:
		return domain.TierModerate
	default:
		return domain.TierHigh
	}
}

// Normalize expresses a display score as a fraction of maxScore for the
// progress bar. It is not capped at 1.
func Normalize(display, maxScore int) float64 {
	if maxScore <= 0 {
		return 0
	}
	return max(float64(display)/float64(maxScore), 0)
}

type Result struct {
	Raw        int
	Display    int
	MaxScore   int
	Tier       domain.RiskTier
	Progress   float64
	Thresholds Thresholds
}

// Assess scores factors under mode. Classification always runs on the
// display score so a negative raw total is Low.
func Assess(factors []domain.Factor, mode domain.AssessmentMode, maxScore int) Result {
	raw := RawScore(factors)
	display := DisplayScore(raw)
	return Result{
		Raw:        raw,
		Display:    display,
		MaxScore:   maxScore,
		Tier:       Classify(display, mode),
		Progress:   Normalize(display, maxScore),
		Thresholds: ThresholdsFor(mode),
	}
}
