// Package config reads frat settings from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/alexanderramin/frat/internal/domain"
)

// Config seeds a new assessment and controls ambient output.
type Config struct {
	PilotType      domain.PilotType
	ExperienceBand domain.ExperienceBand
	LogEvents      bool
	NoColor        bool
}

// DefaultConfig returns a Config with the VFR / under 100 hours mode and
// event logging off.
func DefaultConfig() Config {
	mode := domain.DefaultMode()
	return Config{
		PilotType:      mode.PilotType,
		ExperienceBand: mode.ExperienceBand,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset or unparseable values.
func LoadConfig() Config {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if v := getenv("FRAT_PILOT_TYPE"); v != "" {
		if p, err := domain.ParsePilotType(v); err == nil {
			cfg.PilotType = p
		}
	}
	if v := getenv("FRAT_EXPERIENCE"); v != "" {
		if e, err := domain.ParseExperienceBand(v); err == nil {
			cfg.ExperienceBand = e
		}
	}
	if v := getenv("FRAT_LOG_EVENTS"); v != "" {
		cfg.LogEvents, _ = strconv.ParseBool(v)
	}
	// https://no-color.org: any non-empty value disables color.
	if getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return cfg
}

// Mode returns the initial assessment mode.
func (c Config) Mode() domain.AssessmentMode {
	return domain.AssessmentMode{PilotType: c.PilotType, ExperienceBand: c.ExperienceBand}
}
