package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/frat/internal/catalog"
	"github.com/alexanderramin/frat/internal/domain"
)

var testFactorCounter atomic.Int64

// FactorOption customizes a test factor definition.
type FactorOption func(*domain.FactorDef)

func WithWeight(w int) FactorOption {
	return func(d *domain.FactorDef) {
		d.Weight = w
	}
}

func WithCategory(c domain.Category) FactorOption {
	return func(d *domain.FactorDef) {
		d.Category = c
	}
}

func WithLabel(label string) FactorOption {
	return func(d *domain.FactorDef) {
		d.Label = label
	}
}

// NewTestFactorDef returns a pilot factor of weight 1 unless overridden.
func NewTestFactorDef(id string, opts ...FactorOption) domain.FactorDef {
	n := testFactorCounter.Add(1)
	d := domain.FactorDef{
		ID:       id,
		Label:    "Test factor " + id,
		Category: domain.CategoryPilot,
		Weight:   1,
	}
	if d.ID == "" {
		d.ID = fmt.Sprintf("test-factor-%d", n)
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// RiskIDs returns the shipped factor ids with positive weight.
func RiskIDs() []string {
	var ids []string
	for _, d := range catalog.Definitions() {
		if d.Weight > 0 {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// MitigatingIDs returns the shipped factor ids with negative weight.
func MitigatingIDs() []string {
	var ids []string
	for _, d := range catalog.Definitions() {
		if d.Weight < 0 {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// Mode is shorthand for building an assessment mode.
func Mode(p domain.PilotType, e domain.ExperienceBand) domain.AssessmentMode {
	return domain.AssessmentMode{PilotType: p, ExperienceBand: e}
}
