// Package combo applies NSCP 2015 strength design load combinations
// to per-case bolt group resultants.
package combo

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r3"

	"github.com/alexiusacademia/goblt/internal/statics"
)

// Combination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type Combination struct {
	ID          string
	Description string
	// Load factors for each load case
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var Combinations = []Combination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations for gravity-only connection checks
var SimplifiedCombinations = []Combination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// CaseResultants holds the reduced resultant of each load case,
// all expressed at the same reference point. Absent cases stay zero.
type CaseResultants struct {
	Dead       statics.Resultant
	Live       statics.Resultant
	Roof       statics.Resultant
	Wind       statics.Resultant
	Earthquake statics.Resultant
	Rain       statics.Resultant
}

// FromCases reduces each load case in byCase at the reference point.
// Keys are the lowercased case names; an empty or unknown key is an
// error since those loads could not be attributed to any combination
// term.
func FromCases(reference r3.Vector, byCase map[string][]statics.Load) (CaseResultants, error) {
	var cr CaseResultants
	for name, loads := range byCase {
		if name == "" {
			return CaseResultants{}, fmt.Errorf("%d load(s) have no load case assigned", len(loads))
		}
		r, err := statics.Reduce(reference, loads)
		if err != nil {
			return CaseResultants{}, fmt.Errorf("case %s: %w", name, err)
		}
		if err := cr.Assign(name, r); err != nil {
			return CaseResultants{}, err
		}
	}
	return cr, nil
}

// Factored calculates the factored resultant for the combination
func (c Combination) Factored(cases CaseResultants) statics.Resultant {
	var r statics.Resultant
	terms := []struct {
		factor float64
		res    statics.Resultant
	}{
		{c.Dead, cases.Dead},
		{c.Live, cases.Live},
		{c.Roof, cases.Roof},
		{c.Wind, cases.Wind},
		{c.Earthquake, cases.Earthquake},
		{c.Rain, cases.Rain},
	}
	for _, t := range terms {
		if t.factor == 0 {
			continue
		}
		r.Force = r.Force.Add(t.res.Force.Mul(t.factor))
		r.Moment = r.Moment.Add(t.res.Moment.Mul(t.factor))
	}
	return r
}

// Governing finds the combination with the largest factored resultant
// moment magnitude
func Governing(cases CaseResultants, combinations []Combination) (statics.Resultant, Combination) {
	var maxNorm float64
	var governing Combination
	var result statics.Resultant

	for _, combo := range combinations {
		r := combo.Factored(cases)
		if n := r.Moment.Norm(); n > maxNorm || governing.ID == "" {
			maxNorm = n
			governing = combo
			result = r
		}
	}

	return result, governing
}

// Get returns the resultant stored for a case name.
func (cr CaseResultants) Get(name string) (statics.Resultant, bool) {
	switch strings.ToLower(name) {
	case "dead":
		return cr.Dead, true
	case "live":
		return cr.Live, true
	case "roof":
		return cr.Roof, true
	case "wind":
		return cr.Wind, true
	case "earthquake":
		return cr.Earthquake, true
	case "rain":
		return cr.Rain, true
	}
	return statics.Resultant{}, false
}

// Assign places a reduced per-case resultant into the matching slot.
func (cr *CaseResultants) Assign(name string, r statics.Resultant) error {
	switch strings.ToLower(name) {
	case "dead":
		cr.Dead = r
	case "live":
		cr.Live = r
	case "roof":
		cr.Roof = r
	case "wind":
		cr.Wind = r
	case "earthquake":
		cr.Earthquake = r
	case "rain":
		cr.Rain = r
	default:
		return fmt.Errorf("unknown load case %q", name)
	}
	return nil
}
