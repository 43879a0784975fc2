// Package catalog holds the fixed set of flight risk factors.
package catalog

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/frat/internal/domain"
)

var (
	ErrDuplicateID     = errors.New("duplicate factor id")
	ErrUnknownCategory = errors.New("unknown factor category")
	ErrZeroWeight      = errors.New("factor weight must be non-zero")
	ErrEmptyID         = errors.New("factor id is required")
)

var definitions = []domain.FactorDef{
	// Pilot
	{ID: "pilot-hours-aircraft", Label: "Less than 50 Hours in Aircraft or Avionics Type", Category: domain.CategoryPilot, Weight: 5},
	{ID: "pilot-hours-90days", Label: "Less than 15 hours in the last 90 days", Category: domain.CategoryPilot, Weight: 3},
	{ID: "pilot-after-work", Label: "Flight will occur after work", Category: domain.CategoryPilot, Weight: 4},
	{ID: "pilot-sleep", Label: "Less than 8 hours sleep prior to flight", Category: domain.CategoryPilot, Weight: 5},
	{ID: "pilot-instruction", Label: "Dual Instruction Received in last 90 days", Category: domain.CategoryPilot, Weight: -1},
	{ID: "pilot-wings", Label: "WINGS Phase Completion in last 6 months", Category: domain.CategoryPilot, Weight: -3},
	{ID: "pilot-instrument", Label: "Instrument Rating current and proficient", Category: domain.CategoryPilot, Weight: -3},

	// Flight conditions
	{ID: "conditions-twilight", Label: "Twilight or Night", Category: domain.CategoryConditions, Weight: 5},
	{ID: "conditions-surface-wind", Label: "Surface wind greater than 15 Knots", Category: domain.CategoryConditions, Weight: 4},
	{ID: "conditions-cross-wind", Label: "Cross wind greater than 7 Knots", Category: domain.CategoryConditions, Weight: 4},
	{ID: "conditions-terrain", Label: "Mountainous Terrain", Category: domain.CategoryConditions, Weight: 4},

	// Airport
	{ID: "airport-towered", Label: "Non-towered Airport or tower closed at ETD or ETA", Category: domain.CategoryAirport, Weight: 5},
	{ID: "airport-runway-length", Label: "Runway length less than 3,000 Feet", Category: domain.CategoryAirport, Weight: 3},
	{ID: "airport-runway-surface", Label: "Wet or soft field Runway", Category: domain.CategoryAirport, Weight: 3},
	{ID: "airport-obstacles", Label: "Obstacles on Approach and/or departure", Category: domain.CategoryAirport, Weight: 3},

	// VFR flight plan
	{ID: "vfr-ceiling", Label: "Ceiling less than 3,000 feet AGL", Category: domain.CategoryVFR, Weight: 2},
	{ID: "vfr-visibility", Label: "Visibility less than 5 SM", Category: domain.CategoryVFR, Weight: 2},
	{ID: "vfr-plan-filed", Label: "Flight Plan filed and activated", Category: domain.CategoryVFR, Weight: -2},
	{ID: "vfr-weather-reporting", Label: "No Weather Reporting at destination", Category: domain.CategoryVFR, Weight: 4},
	{ID: "vfr-atc-following", Label: "ATC Flight Following used", Category: domain.CategoryVFR, Weight: -3},

	// IFR flight plan
	{ID: "ifr-ceiling", Label: "Ceiling less than 1000 feet AGL", Category: domain.CategoryIFR, Weight: 2},
	{ID: "ifr-visibility", Label: "Visibility less than 3 SM", Category: domain.CategoryIFR, Weight: 2},
	{ID: "ifr-weather-reporting", Label: "No Weather Reporting at destination", Category: domain.CategoryIFR, Weight: 4},

	// Approaches
	{ID: "approach-precision", Label: "Precision Approach", Category: domain.CategoryApproach, Weight: -2},
	{ID: "approach-non-precision", Label: "Non precision Approach", Category: domain.CategoryApproach, Weight: 3},
	{ID: "approach-no-instrument", Label: "No Instrument Approach", Category: domain.CategoryApproach, Weight: 4},
	{ID: "approach-circling", Label: "Circling Approach", Category: domain.CategoryApproach, Weight: 7},
}

// Definitions returns a copy of the catalog in declared order.
func Definitions() []domain.FactorDef {
	out := make([]domain.FactorDef, len(definitions))
	copy(out, definitions)
	return out
}

// MaxScore is the highest attainable score for defs: every risk-increasing
// factor checked and every mitigating factor unchecked.
func MaxScore(defs []domain.FactorDef) int {
	total := 0
	for _, d := range defs {
		if d.Weight > 0 {
			total += d.Weight
		}
	}
	return total
}

// Validate checks that defs can back a checklist.
func Validate(defs []domain.FactorDef) error {
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		if d.ID == "" {
			return ErrEmptyID
		}
		if seen[d.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, d.ID)
		}
		seen[d.ID] = true
		if !d.Category.Valid() {
			return fmt.Errorf("%w: %s (%s)", ErrUnknownCategory, d.Category, d.ID)
		}
		if d.Weight == 0 {
			return fmt.Errorf("%w: %s", ErrZeroWeight, d.ID)
		}
	}
	return nil
}
