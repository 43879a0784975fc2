package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/frat/internal/catalog"
	"github.com/alexanderramin/frat/internal/checklist"
	"github.com/alexanderramin/frat/internal/contract"
	"github.com/alexanderramin/frat/internal/domain"
	"github.com/alexanderramin/frat/internal/scoring"
	"github.com/google/uuid"
)

type assessmentService struct {
	id       string
	list     *checklist.Checklist
	mode     domain.AssessmentMode
	maxScore int
	now      func() time.Time
	observer UseCaseObserver
}

// NewAssessmentService starts an assessment over defs in the given mode
// with every factor unchecked. defs must pass catalog.Validate. An invalid
// mode falls back to the default.
func NewAssessmentService(defs []domain.FactorDef, mode domain.AssessmentMode, observers ...UseCaseObserver) (AssessmentService, error) {
	if err := catalog.Validate(defs); err != nil {
		return nil, fmt.Errorf("factor definitions: %w", err)
	}
	return newAssessment(defs, mode, observers), nil
}

// NewDefaultAssessment starts an assessment over the shipped catalog.
func NewDefaultAssessment(mode domain.AssessmentMode, observers ...UseCaseObserver) AssessmentService {
	return newAssessment(catalog.Definitions(), mode, observers)
}

func newAssessment(defs []domain.FactorDef, mode domain.AssessmentMode, observers []UseCaseObserver) *assessmentService {
	if !mode.PilotType.Valid() || !mode.ExperienceBand.Valid() {
		mode = domain.DefaultMode()
	}
	return &assessmentService{
		id:       uuid.New().String(),
		list:     checklist.New(defs),
		mode:     mode,
		maxScore: catalog.MaxScore(defs),
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *assessmentService) ID() string { return s.id }

func (s *assessmentService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	res := s.result()
	if fields == nil {
		fields = make(map[string]any, 4)
	}
	fields["assessment_id"] = s.id
	fields["display_score"] = res.Display
	fields["tier"] = string(res.Tier)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *assessmentService) Toggle(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"factor": id}
	defer func() { s.observe(ctx, "toggle-factor", startedAt, err, fields) }()

	var active bool
	active, err = s.list.Toggle(id)
	if err != nil {
		return err
	}
	fields["active"] = active
	return nil
}

func (s *assessmentService) SetFactor(ctx context.Context, id string, active bool) (err error) {
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, "set-factor", startedAt, err, map[string]any{"factor": id, "active": active})
	}()
	return s.list.Set(id, active)
}

func (s *assessmentService) ResetAll(ctx context.Context) {
	startedAt := time.Now()
	cleared := len(s.list.ActiveIDs())
	s.list.ResetAll()
	s.observe(ctx, "reset-all", startedAt, nil, map[string]any{"cleared": cleared})
}

func (s *assessmentService) SetPilotType(ctx context.Context, v domain.PilotType) {
	if !v.Valid() {
		return
	}
	startedAt := time.Now()
	s.mode.PilotType = v
	s.observe(ctx, "set-pilot-type", startedAt, nil, map[string]any{"pilot_type": string(v)})
}

func (s *assessmentService) SetExperienceBand(ctx context.Context, v domain.ExperienceBand) {
	if !v.Valid() {
		return
	}
	startedAt := time.Now()
	s.mode.ExperienceBand = v
	s.observe(ctx, "set-experience-band", startedAt, nil, map[string]any{"experience_band": string(v)})
}

func (s *assessmentService) Mode() domain.AssessmentMode { return s.mode }

func (s *assessmentService) IsActive(id string) bool { return s.list.IsActive(id) }

func (s *assessmentService) Factors() []domain.Factor { return s.list.Factors() }

func (s *assessmentService) Groups() []checklist.Group { return s.list.GroupByCategory() }

func (s *assessmentService) MaxScore() int { return s.maxScore }

func (s *assessmentService) result() scoring.Result {
	return scoring.Assess(s.list.Factors(), s.mode, s.maxScore)
}

func (s *assessmentService) GetScore() ScoreSummary {
	res := s.result()
	return ScoreSummary{Raw: res.Raw, Display: res.Display}
}

func (s *assessmentService) GetTier() domain.RiskTier { return s.result().Tier }

func (s *assessmentService) GetProgress() float64 { return s.result().Progress }

func (s *assessmentService) Report() contract.Report {
	return contract.NewReport(s.id, s.now().UTC(), s.mode, s.list.Factors(), s.result())
}
