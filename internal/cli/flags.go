package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/frat/internal/domain"
	"github.com/alexanderramin/frat/internal/service"
	"github.com/spf13/pflag"
)

// modeFlags are the --pilot / --experience overrides shared by commands
// that score an assessment.
type modeFlags struct {
	pilot      string
	experience string
}

func (f *modeFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.pilot, "pilot", "", "Pilot type: VFR or IFR (default from FRAT_PILOT_TYPE, else VFR)")
	fs.StringVar(&f.experience, "experience", "", "Hours in type: under100 or over100 (also <100, >100)")
}

// apply parses any set flags and selects the resulting mode on svc.
func (f *modeFlags) apply(ctx context.Context, fs *pflag.FlagSet, svc service.AssessmentService) error {
	if fs.Changed("pilot") {
		p, err := domain.ParsePilotType(f.pilot)
		if err != nil {
			return fmt.Errorf("--pilot: %w", err)
		}
		svc.SetPilotType(ctx, p)
	}
	if fs.Changed("experience") {
		e, err := domain.ParseExperienceBand(f.experience)
		if err != nil {
			return fmt.Errorf("--experience: %w", err)
		}
		svc.SetExperienceBand(ctx, e)
	}
	return nil
}

func registerFormatFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVarP(target, "format", "o", string(formatText), "Output format: text, json or yaml")
}
