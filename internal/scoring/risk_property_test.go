package scoring

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/frat/internal/catalog"
	"github.com/alexanderramin/frat/internal/domain"
	"github.com/stretchr/testify/assert"
)

// TestRawScore_Invariants_SumOfCheckedWeights property-tests that the raw
// score equals the sum of checked weights regardless of factor order.
func TestRawScore_Invariants_SumOfCheckedWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	defs := catalog.Definitions()

	for trial := 0; trial < 300; trial++ {
		factors := make([]domain.Factor, len(defs))
		want := 0
		for i, d := range defs {
			active := rng.Intn(2) == 1
			factors[i] = domain.Factor{FactorDef: d, Active: active}
			if active {
				want += d.Weight
			}
		}

		assert.Equal(t, want, RawScore(factors), "trial %d", trial)

		rng.Shuffle(len(factors), func(i, j int) { factors[i], factors[j] = factors[j], factors[i] })
		assert.Equal(t, want, RawScore(factors), "trial %d: shuffled order changed the score", trial)

		display := DisplayScore(want)
		assert.GreaterOrEqual(t, display, 0)
		assert.LessOrEqual(t, display, catalog.MaxScore(defs))
	}
}

// TestClassify_Invariants_MonotonicInScore checks that raising the score
// never lowers the tier, for every mode.
func TestClassify_Invariants_MonotonicInScore(t *testing.T) {
	rank := map[domain.RiskTier]int{domain.TierLow: 0, domain.TierModerate: 1, domain.TierHigh: 2}

	for _, pt := range domain.PilotTypes {
		for _, eb := range domain.ExperienceBands {
			mode := domain.AssessmentMode{PilotType: pt, ExperienceBand: eb}
			prev := domain.TierLow
			for score := 0; score <= 100; score++ {
				tier := Classify(score, mode)
				assert.GreaterOrEqual(t, rank[tier], rank[prev], "%v score %d", mode, score)
				prev = tier
			}
		}
	}
}

// TestClassify_Invariants_MoreExperienceNeverStricter checks that moving
// to the over100 band never raises the tier for the same score.
func TestClassify_Invariants_MoreExperienceNeverStricter(t *testing.T) {
	rank := map[domain.RiskTier]int{domain.TierLow: 0, domain.TierModerate: 1, domain.TierHigh: 2}

	for _, pt := range domain.PilotTypes {
		under := domain.AssessmentMode{PilotType: pt, ExperienceBand: domain.ExperienceUnder100}
		over := domain.AssessmentMode{PilotType: pt, ExperienceBand: domain.ExperienceOver100}
		for score := 0; score <= 100; score++ {
			assert.LessOrEqual(t, rank[Classify(score, over)], rank[Classify(score, under)], "%s score %d", pt, score)
		}
	}
}
