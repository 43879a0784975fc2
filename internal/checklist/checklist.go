// Package checklist tracks which catalog factors are checked.
//
// Definitions are fixed when the checklist is created; only the active
// flags change afterwards.
package checklist

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/frat/internal/domain"
)

// ErrFactorNotFound is returned when an operation names an id that is not
// part of the checklist.
var ErrFactorNotFound = errors.New("factor not found")

// Group is one category's factors in declared order.
type Group struct {
	Category domain.Category
	Factors  []domain.Factor
}

type Checklist struct {
	factors []domain.Factor
	index   map[string]int
}

// New creates a checklist over defs with every factor unchecked.
func New(defs []domain.FactorDef) *Checklist {
	c := &Checklist{
		factors: make([]domain.Factor, len(defs)),
		index:   make(map[string]int, len(defs)),
	}
	for i, d := range defs {
		c.factors[i] = domain.Factor{FactorDef: d}
		c.index[d.ID] = i
	}
	return c
}

func (c *Checklist) lookup(id string) (int, error) {
	i, ok := c.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrFactorNotFound, id)
	}
	return i, nil
}

// Toggle flips the checked state of the factor with the given id and
// returns the new state.
func (c *Checklist) Toggle(id string) (bool, error) {
	i, err := c.lookup(id)
	if err != nil {
		return false, err
	}
	c.factors[i].Active = !c.factors[i].Active
	return c.factors[i].Active, nil
}

// Set forces the checked state of one factor.
func (c *Checklist) Set(id string, active bool) error {
	i, err := c.lookup(id)
	if err != nil {
		return err
	}
	c.factors[i].Active = active
	return nil
}

// ResetAll unchecks every factor.
func (c *Checklist) ResetAll() {
	for i := range c.factors {
		c.factors[i].Active = false
	}
}

func (c *Checklist) IsActive(id string) bool {
	i, ok := c.index[id]
	return ok && c.factors[i].Active
}

// Factors returns a snapshot of every factor in declared order.
func (c *Checklist) Factors() []domain.Factor {
	out := make([]domain.Factor, len(c.factors))
	copy(out, c.factors)
	return out
}

// ActiveIDs returns the ids of checked factors in declared order.
func (c *Checklist) ActiveIDs() []string {
	var ids []string
	for _, f := range c.factors {
		if f.Active {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

// GroupByCategory partitions the checklist by category in
// domain.Categories order. Categories without factors are omitted.
func (c *Checklist) GroupByCategory() []Group {
	byCat := make(map[domain.Category][]domain.Factor)
	for _, f := range c.factors {
		byCat[f.Category] = append(byCat[f.Category], f)
	}

	groups := make([]Group, 0, len(byCat))
	for _, cat := range domain.Categories {
		if fs, ok := byCat[cat]; ok {
			groups = append(groups, Group{Category: cat, Factors: fs})
		}
	}
	return groups
}
