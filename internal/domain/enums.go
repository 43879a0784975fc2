package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPilotType      = errors.New("invalid pilot type")
	ErrInvalidExperienceBand = errors.New("invalid experience band")
	ErrInvalidCategory       = errors.New("invalid category")
)

type Category string

const (
	CategoryPilot      Category = "pilot"
	CategoryConditions Category = "conditions"
	CategoryAirport    Category = "airport"
	CategoryVFR        Category = "vfr"
	CategoryIFR        Category = "ifr"
	CategoryApproach   Category = "approach"
)

// Categories is the canonical display order of factor categories.
var Categories = []Category{
	CategoryPilot,
	CategoryConditions,
	CategoryAirport,
	CategoryVFR,
	CategoryIFR,
	CategoryApproach,
}

// Title returns the section heading for the category.
func (c Category) Title() string {
	switch c {
	case CategoryPilot:
		return "Pilot Factors"
	case CategoryConditions:
		return "Flight Conditions"
	case CategoryAirport:
		return "Airport Factors"
	case CategoryVFR:
		return "VFR Flight Plan"
	case CategoryIFR:
		return "IFR Flight Plan"
	case CategoryApproach:
		return "Approach Types"
	default:
		return "Risk Factors"
	}
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

type PilotType string

const (
	PilotVFR PilotType = "VFR"
	PilotIFR PilotType = "IFR"
)

// PilotTypes lists the selectable pilot types in menu order.
var PilotTypes = []PilotType{PilotVFR, PilotIFR}

func (p PilotType) Label() string {
	return string(p) + " Pilot"
}

func (p PilotType) Valid() bool {
	return p == PilotVFR || p == PilotIFR
}

// Next cycles VFR -> IFR -> VFR.
func (p PilotType) Next() PilotType {
	if p == PilotVFR {
		return PilotIFR
	}
	return PilotVFR
}

// ParsePilotType parses "VFR" or "IFR", case-insensitively.
func ParsePilotType(s string) (PilotType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VFR":
		return PilotVFR, nil
	case "IFR":
		return PilotIFR, nil
	default:
		return "", fmt.Errorf("%w: %q (want VFR or IFR)", ErrInvalidPilotType, s)
	}
}

type ExperienceBand string

const (
	ExperienceUnder100 ExperienceBand = "under100"
	ExperienceOver100  ExperienceBand = "over100"
)

// ExperienceBands lists the selectable experience bands in menu order.
var ExperienceBands = []ExperienceBand{ExperienceUnder100, ExperienceOver100}

func (e ExperienceBand) Label() string {
	if e == ExperienceOver100 {
		return "> 100 Hours in Type"
	}
	return "< 100 Hours in Type"
}

func (e ExperienceBand) Valid() bool {
	return e == ExperienceUnder100 || e == ExperienceOver100
}

// Next cycles under100 -> over100 -> under100.
func (e ExperienceBand) Next() ExperienceBand {
	if e == ExperienceUnder100 {
		return ExperienceOver100
	}
	return ExperienceUnder100
}

// ParseExperienceBand accepts "under100"/"over100" as well as "<100"/">100".
func ParseExperienceBand(s string) (ExperienceBand, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "under100", "<100":
		return ExperienceUnder100, nil
	case "over100", ">100":
		return ExperienceOver100, nil
	default:
		return "", fmt.Errorf("%w: %q (want under100 or over100)", ErrInvalidExperienceBand, s)
	}
}

type RiskTier string

const (
	TierLow      RiskTier = "low"
	TierModerate RiskTier = "moderate"
	TierHigh     RiskTier = "high"
)

func (t RiskTier) Label() string {
	switch t {
	case TierLow:
		return "Low Risk"
	case TierModerate:
		return "Moderate Risk"
	case TierHigh:
		return "High Risk"
	default:
		return string(t)
	}
}
