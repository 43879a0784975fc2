package config

import (
	"testing"

	"github.com/alexanderramin/frat/internal/domain"
	"github.com/stretchr/testify/assert"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, domain.DefaultMode(), cfg.Mode())
	assert.False(t, cfg.LogEvents)
	assert.False(t, cfg.NoColor)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg := loadFrom(envMap(map[string]string{
		"FRAT_PILOT_TYPE": "ifr",
		"FRAT_EXPERIENCE": ">100",
		"FRAT_LOG_EVENTS": "true",
		"NO_COLOR":        "1",
	}))
	assert.Equal(t, domain.PilotIFR, cfg.PilotType)
	assert.Equal(t, domain.ExperienceOver100, cfg.ExperienceBand)
	assert.True(t, cfg.LogEvents)
	assert.True(t, cfg.NoColor)
}

func TestLoadFrom_InvalidValuesFallBack(t *testing.T) {
	cfg := loadFrom(envMap(map[string]string{
		"FRAT_PILOT_TYPE": "glider",
		"FRAT_EXPERIENCE": "lots",
		"FRAT_LOG_EVENTS": "maybe",
	}))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_ReadsProcessEnv(t *testing.T) {
	t.Setenv("FRAT_PILOT_TYPE", "IFR")
	t.Setenv("FRAT_EXPERIENCE", "")
	t.Setenv("NO_COLOR", "")

	cfg := LoadConfig()
	assert.Equal(t, domain.PilotIFR, cfg.PilotType)
	assert.Equal(t, domain.ExperienceUnder100, cfg.ExperienceBand)
}
