package catalog

import (
	"testing"

	"github.com/alexanderramin/frat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitions_ShippedCatalogIsValid(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 27)
	require.NoError(t, Validate(defs))
}

func TestDefinitions_CountsPerCategory(t *testing.T) {
	counts := make(map[domain.Category]int)
	for _, d := range Definitions() {
		counts[d.Category]++
	}
	assert.Equal(t, map[domain.Category]int{
		domain.CategoryPilot:      7,
		domain.CategoryConditions: 4,
		domain.CategoryAirport:    4,
		domain.CategoryVFR:        5,
		domain.CategoryIFR:        3,
		domain.CategoryApproach:   4,
	}, counts)
}

func TestDefinitions_ReturnsCopy(t *testing.T) {
	defs := Definitions()
	defs[0].Weight = 100
	defs[0].ID = "mutated"

	again := Definitions()
	assert.Equal(t, "pilot-hours-aircraft", again[0].ID)
	assert.Equal(t, 5, again[0].Weight)
}

func TestDefinitions_ShippedTable(t *testing.T) {
	want := []struct {
		id       string
		category domain.Category
		weight   int
	}{
		{"pilot-hours-aircraft", domain.CategoryPilot, 5},
		{"pilot-hours-90days", domain.CategoryPilot, 3},
		{"pilot-after-work", domain.CategoryPilot, 4},
		{"pilot-sleep", domain.CategoryPilot, 5},
		{"pilot-instruction", domain.CategoryPilot, -1},
		{"pilot-wings", domain.CategoryPilot, -3},
		{"pilot-instrument", domain.CategoryPilot, -3},
		{"conditions-twilight", domain.CategoryConditions, 5},
		{"conditions-surface-wind", domain.CategoryConditions, 4},
		{"conditions-cross-wind", domain.CategoryConditions, 4},
		{"conditions-terrain", domain.CategoryConditions, 4},
		{"airport-towered", domain.CategoryAirport, 5},
		{"airport-runway-length", domain.CategoryAirport, 3},
		{"airport-runway-surface", domain.CategoryAirport, 3},
		{"airport-obstacles", domain.CategoryAirport, 3},
		{"vfr-ceiling", domain.CategoryVFR, 2},
		{"vfr-visibility", domain.CategoryVFR, 2},
		{"vfr-plan-filed", domain.CategoryVFR, -2},
		{"vfr-weather-reporting", domain.CategoryVFR, 4},
		{"vfr-atc-following", domain.CategoryVFR, -3},
		{"ifr-ceiling", domain.CategoryIFR, 2},
		{"ifr-visibility", domain.CategoryIFR, 2},
		{"ifr-weather-reporting", domain.CategoryIFR, 4},
		{"approach-precision", domain.CategoryApproach, -2},
		{"approach-non-precision", domain.CategoryApproach, 3},
		{"approach-no-instrument", domain.CategoryApproach, 4},
		{"approach-circling", domain.CategoryApproach, 7},
	}

	defs := Definitions()
	require.Len(t, defs, len(want))
	for i, w := range want {
		d := defs[i]
		assert.Equal(t, w.id, d.ID, "row %d", i)
		assert.Equal(t, w.category, d.Category, "category of %s", w.id)
		assert.Equal(t, w.weight, d.Weight, "weight of %s", w.id)
		assert.NotEmpty(t, d.Label, "label of %s", w.id)
	}

	assert.Equal(t, "Circling Approach", defs[26].Label)
	assert.True(t, defs[5].Mitigating())
}

func TestMaxScore_DerivedFromPositiveWeights(t *testing.T) {
	assert.Equal(t, 78, MaxScore(Definitions()))
}

func TestMaxScore_IgnoresMitigatingFactors(t *testing.T) {
	defs := []domain.FactorDef{
		{ID: "a", Category: domain.CategoryPilot, Weight: 4},
		{ID: "b", Category: domain.CategoryPilot, Weight: -9},
		{ID: "c", Category: domain.CategoryAirport, Weight: 1},
	}
	assert.Equal(t, 5, MaxScore(defs))
	assert.Equal(t, 0, MaxScore(nil))
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		defs []domain.FactorDef
		want error
	}{
		{"empty id", []domain.FactorDef{{Category: domain.CategoryPilot, Weight: 1}}, ErrEmptyID},
		{"duplicate id", []domain.FactorDef{
			{ID: "x", Category: domain.CategoryPilot, Weight: 1},
			{ID: "x", Category: domain.CategoryIFR, Weight: 2},
		}, ErrDuplicateID},
		{"unknown category", []domain.FactorDef{{ID: "x", Category: "weather", Weight: 1}}, ErrUnknownCategory},
		{"zero weight", []domain.FactorDef{{ID: "x", Category: domain.CategoryVFR}}, ErrZeroWeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(tt.defs), tt.want)
		})
	}
}
