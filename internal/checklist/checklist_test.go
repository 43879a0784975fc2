package checklist

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/frat/internal/catalog"
	"github.com/alexanderramin/frat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShipped() *Checklist {
	return New(catalog.Definitions())
}

func TestNew_AllInactive(t *testing.T) {
	c := newShipped()
	assert.Len(t, c.Factors(), 27)
	for _, f := range c.Factors() {
		assert.False(t, f.Active, "factor %s should start unchecked", f.ID)
	}
	assert.Empty(t, c.ActiveIDs())
}

func TestToggle_FlipsState(t *testing.T) {
	c := newShipped()

	active, err := c.Toggle("pilot-sleep")
	require.NoError(t, err)
	assert.True(t, active)
	assert.True(t, c.IsActive("pilot-sleep"))
	assert.Equal(t, []string{"pilot-sleep"}, c.ActiveIDs())
}

func TestToggle_TwiceRestoresOriginal(t *testing.T) {
	c := newShipped()
	for _, f := range c.Factors() {
		before := c.IsActive(f.ID)
		_, err := c.Toggle(f.ID)
		require.NoError(t, err)
		_, err = c.Toggle(f.ID)
		require.NoError(t, err)
		assert.Equal(t, before, c.IsActive(f.ID), "toggle twice should restore %s", f.ID)
	}
}

func TestToggle_UnknownIDIsNotFound(t *testing.T) {
	c := newShipped()
	require.NoError(t, c.Set("vfr-ceiling", true))

	_, err := c.Toggle("vfr-cieling")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFactorNotFound)
	assert.Contains(t, err.Error(), "vfr-cieling")

	// State is untouched.
	assert.Equal(t, []string{"vfr-ceiling"}, c.ActiveIDs())
}

func TestSet(t *testing.T) {
	c := newShipped()
	require.NoError(t, c.Set("ifr-ceiling", true))
	require.NoError(t, c.Set("ifr-ceiling", true))
	assert.True(t, c.IsActive("ifr-ceiling"))

	require.NoError(t, c.Set("ifr-ceiling", false))
	assert.False(t, c.IsActive("ifr-ceiling"))

	assert.ErrorIs(t, c.Set("nope", true), ErrFactorNotFound)
}

func TestResetAll_Idempotent(t *testing.T) {
	c := newShipped()
	rng := rand.New(rand.NewSource(7))
	for _, f := range c.Factors() {
		if rng.Intn(2) == 1 {
			require.NoError(t, c.Set(f.ID, true))
		}
	}

	c.ResetAll()
	once := c.Factors()
	c.ResetAll()
	assert.Equal(t, once, c.Factors())
	assert.Empty(t, c.ActiveIDs())
}

func TestFactors_ReturnsSnapshot(t *testing.T) {
	c := newShipped()
	snap := c.Factors()
	snap[0].Active = true
	snap[0].Weight = 99

	assert.False(t, c.IsActive(snap[0].ID))
	assert.Equal(t, 5, c.Factors()[0].Weight)
}

func TestGroupByCategory_PreservesOrder(t *testing.T) {
	c := newShipped()
	require.NoError(t, c.Set("airport-obstacles", true))

	groups := c.GroupByCategory()
	require.Len(t, groups, 6)

	gotCats := make([]domain.Category, len(groups))
	for i, g := range groups {
		gotCats[i] = g.Category
	}
	assert.Equal(t, domain.Categories, gotCats)

	// Flattening the groups yields the declared catalog order.
	var flat []string
	for _, g := range groups {
		for _, f := range g.Factors {
			assert.Equal(t, g.Category, f.Category)
			flat = append(flat, f.ID)
		}
	}
	var declared []string
	for _, d := range catalog.Definitions() {
		declared = append(declared, d.ID)
	}
	assert.Equal(t, declared, flat)

	airport := groups[2]
	assert.Equal(t, domain.CategoryAirport, airport.Category)
	assert.True(t, airport.Factors[3].Active)
}

func TestGroupByCategory_OmitsEmptyCategories(t *testing.T) {
	c := New([]domain.FactorDef{
		{ID: "b", Category: domain.CategoryApproach, Weight: 1},
		{ID: "a", Category: domain.CategoryPilot, Weight: 2},
	})
	groups := c.GroupByCategory()
	require.Len(t, groups, 2)
	assert.Equal(t, domain.CategoryPilot, groups[0].Category)
	assert.Equal(t, domain.CategoryApproach, groups[1].Category)
}
