package combo_test

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goblt/internal/combo"
	"github.com/alexiusacademia/goblt/internal/statics"
)

func TestFactored_GravityCombination(t *testing.T) {
	cases := combo.CaseResultants{
		Dead: statics.Resultant{
			Force:  r3.Vector{Z: -1000},
			Moment: r3.Vector{X: 500},
		},
		Live: statics.Resultant{
			Force:  r3.Vector{Z: -400},
			Moment: r3.Vector{X: 200},
		},
	}

	// Combination 2 of the simplified table: 1.2D + 1.6L
	r := combo.SimplifiedCombinations[1].Factored(cases)

	assert.InDelta(t, 1.2*-1000+1.6*-400, r.Force.Z, 1e-9)
	assert.InDelta(t, 1.2*500+1.6*200, r.Moment.X, 1e-9)
	assert.Zero(t, r.Force.X)
	assert.Zero(t, r.Force.Y)
}

// Factoring is linear in each case resultant.
func TestFactored_Linearity(t *testing.T) {
	base := combo.CaseResultants{
		Dead: statics.Resultant{Force: r3.Vector{X: 3, Y: -1, Z: 2}, Moment: r3.Vector{X: 7, Y: 5, Z: -4}},
	}
	doubled := combo.CaseResultants{
		Dead: statics.Resultant{Force: base.Dead.Force.Mul(2), Moment: base.Dead.Moment.Mul(2)},
	}

	c := combo.Combinations[0] // 1.4D
	r1 := c.Factored(base)
	r2 := c.Factored(doubled)

	assert.Equal(t, r1.Force.Mul(2), r2.Force)
	assert.Equal(t, r1.Moment.Mul(2), r2.Moment)
}

func TestGoverning_PicksLargestMoment(t *testing.T) {
	// Wind-dominated loading: combination 4 (1.2D + 1.0W + 1.0L)
	// should govern over the gravity combinations.
	cases := combo.CaseResultants{
		Dead: statics.Resultant{Moment: r3.Vector{X: 100}},
		Wind: statics.Resultant{Moment: r3.Vector{X: 5000}},
	}

	result, governing := combo.Governing(cases, combo.Combinations)
	assert.Equal(t, "4", governing.ID)
	assert.InDelta(t, 1.2*100+1.0*5000, result.Moment.X, 1e-9)
}

func TestGoverning_SimplifiedTable(t *testing.T) {
	cases := combo.CaseResultants{
		Dead: statics.Resultant{Moment: r3.Vector{Z: 100}},
		Live: statics.Resultant{Moment: r3.Vector{Z: 80}},
	}

	// 1.2D + 1.6L = 248 beats 1.4D = 140
	result, governing := combo.Governing(cases, combo.SimplifiedCombinations)
	assert.Equal(t, "2", governing.ID)
	assert.InDelta(t, 248, result.Moment.Z, 1e-9)
}

func TestFromCases(t *testing.T) {
	ref := r3.Vector{}
	byCase := map[string][]statics.Load{
		"dead": {
			{Point: r3.Vector{X: 0, Y: 0, Z: 1500}, Force: r3.Vector{X: -1200, Y: 2000, Z: -3000}},
		},
		"wind": {
			{Point: r3.Vector{X: 0, Y: 800, Z: 1100}, Force: r3.Vector{X: 3200, Y: 1200, Z: -1200}},
		},
	}

	cases, err := combo.FromCases(ref, byCase)
	require.NoError(t, err)

	assert.Equal(t, r3.Vector{X: -1200, Y: 2000, Z: -3000}, cases.Dead.Force)
	assert.Equal(t, r3.Vector{X: 3200, Y: 1200, Z: -1200}, cases.Wind.Force)
	assert.Equal(t, statics.Resultant{}, cases.Live)
}

func TestFromCases_Errors(t *testing.T) {
	ref := r3.Vector{}

	_, err := combo.FromCases(ref, map[string][]statics.Load{
		"": {{Force: r3.Vector{X: 1}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no load case assigned")

	_, err = combo.FromCases(ref, map[string][]statics.Load{
		"snow": {{Force: r3.Vector{X: 1}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown load case "snow"`)
}

func TestGet(t *testing.T) {
	cases := combo.CaseResultants{
		Earthquake: statics.Resultant{Force: r3.Vector{Y: 9}},
	}

	r, ok := cases.Get("Earthquake")
	require.True(t, ok)
	assert.Equal(t, r3.Vector{Y: 9}, r.Force)

	_, ok = cases.Get("snow")
	assert.False(t, ok)
}
