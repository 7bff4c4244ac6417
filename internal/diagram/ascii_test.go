package diagram_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexiusacademia/goblt/internal/diagram"
)

func TestDrawASCIIPlanView(t *testing.T) {
	data := diagram.PlanViewData{
		Name:  "Base plate BP-3",
		Units: "mm",
		Fasteners: []diagram.Point{
			{X: -75, Y: -100},
			{X: 75, Y: -100},
			{X: -75, Y: 100},
			{X: 75, Y: 100},
		},
		LoadPoints: []diagram.Point{{X: 0, Y: 800}},
		Reference:  diagram.Point{X: 0, Y: 0},
	}

	out := diagram.DrawASCIIPlanView(data)

	assert.Contains(t, out, "BOLT GROUP PLAN VIEW")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "▼")
	assert.Contains(t, out, "✛")
	assert.Contains(t, out, "Reference point at (0.0, 0.0) mm")
	// Four grid markers plus the legend marker
	assert.Equal(t, 5, strings.Count(out, "●"))
}

func TestDrawASCIIPlanView_DegenerateExtent(t *testing.T) {
	// Everything at one point must not divide by a zero span.
	data := diagram.PlanViewData{
		Fasteners: []diagram.Point{{X: 5, Y: 5}},
		Reference: diagram.Point{X: 5, Y: 5},
	}

	out := diagram.DrawASCIIPlanView(data)
	assert.Contains(t, out, "✛")
	assert.Contains(t, out, "length units")
}
