package service

import (
	"context"

	"github.com/alexanderramin/frat/internal/checklist"
	"github.com/alexanderramin/frat/internal/contract"
	"github.com/alexanderramin/frat/internal/domain"
)

// ScoreSummary carries both the raw sum and the floored display score.
type ScoreSummary struct {
	Raw     int
	Display int
}

// AssessmentService is the in-memory state of one risk assessment: the
// checklist plus the selected mode.
type AssessmentService interface {
	ID() string

	Toggle(ctx context.Context, id string) error
	SetFactor(ctx context.Context, id string, active bool) error
	ResetAll(ctx context.Context)
	SetPilotType(ctx context.Context, v domain.PilotType)
	SetExperienceBand(ctx context.Context, v domain.ExperienceBand)

	Mode() domain.AssessmentMode
	IsActive(id string) bool
	Factors() []domain.Factor
	Groups() []checklist.Group
	GetScore() ScoreSummary
	GetTier() domain.RiskTier
	GetProgress() float64
	MaxScore() int
	Report() contract.Report
}
