// Package group defines the JSON bolt group definition file and its
// conversion to the statics load model.
package group

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r3"

	"github.com/alexiusacademia/goblt/internal/statics"
)

// Group represents a bolt group definition
// The group is defined in its own coordinate system where:
// - X and Y span the connection plane
// - Z points out of the plane
// - Origin can be at any convenient location
type Group struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Unit system note, e.g. "N, mm". Informational only; all
	// numbers are propagated as given.
	Units string `json:"units,omitempty"`

	// Reduction target. Optional; when absent the fastener centroid
	// is used instead.
	Reference *Point `json:"reference,omitempty"`

	// Fastener pattern, used to locate the centroid. Optional when
	// an explicit reference point is given.
	Fasteners []Fastener `json:"fasteners,omitempty"`

	// External loads applied to the connection
	Loads []Load `json:"loads"`
}

// Point represents a 3D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec converts the point to an r3 vector.
func (p Point) Vec() r3.Vector {
	return r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// Vector represents a 3D force or moment component triple
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec converts to an r3 vector.
func (v Vector) Vec() r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

// Fastener represents a single bolt or anchor in the pattern
type Fastener struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	// Cross-sectional area. Optional; when any fastener carries an
	// area, all of them must, and the centroid is area-weighted.
	Area float64 `json:"area,omitempty"`

	// Optional: description of the fastener (e.g. "M20 8.8")
	Description string `json:"description,omitempty"`
}

// Vec converts the fastener position to an r3 vector.
func (f Fastener) Vec() r3.Vector {
	return r3.Vector{X: f.X, Y: f.Y, Z: f.Z}
}

// Load represents an external action applied at a point
type Load struct {
	Point Point  `json:"point"`
	Force Vector `json:"force"`

	// Applied couple at the point (optional, free vector)
	Moment Vector `json:"moment"`

	// Load case for combination runs: dead, live, roof, wind,
	// earthquake or rain (optional otherwise)
	Case string `json:"case,omitempty"`

	// Optional: description of the load (e.g. "column shear")
	Description string `json:"description,omitempty"`
}

// Validate checks if the group definition is valid
func (g *Group) Validate() error {
	if len(g.Loads) == 0 && len(g.Fasteners) == 0 {
		return &ValidationError{"group must define at least one load or fastener"}
	}
	if g.Reference == nil && len(g.Fasteners) == 0 {
		return &ValidationError{"group must define a reference point or a fastener pattern"}
	}

	weighted := false
	for _, f := range g.Fasteners {
		if f.Area != 0 {
			weighted = true
			break
		}
	}
	if weighted {
		for i, f := range g.Fasteners {
			if f.Area <= 0 {
				return &ValidationError{msg: fmt.Sprintf("fastener %d must have positive area", i+1)}
			}
		}
	}

	for i, ld := range g.Loads {
		if c := ld.Case; c != "" && !knownCase(c) {
			return &ValidationError{msg: fmt.Sprintf("load %d: unknown load case %q", i+1, c)}
		}
	}

	return nil
}

func knownCase(c string) bool {
	switch strings.ToLower(c) {
	case "dead", "live", "roof", "wind", "earthquake", "rain":
		return true
	}
	return false
}

// ReferencePoint resolves the reduction target: the explicit reference
// point when given, the fastener centroid otherwise.
func (g *Group) ReferencePoint() (r3.Vector, error) {
	if g.Reference != nil {
		return g.Reference.Vec(), nil
	}
	return statics.Centroid(g.FastenerPoints(), g.FastenerAreas())
}

// FastenerPoints returns the fastener positions as r3 vectors.
func (g *Group) FastenerPoints() []r3.Vector {
	pts := make([]r3.Vector, len(g.Fasteners))
	for i, f := range g.Fasteners {
		pts[i] = f.Vec()
	}
	return pts
}

// FastenerAreas returns the per-fastener areas, or nil when the
// pattern is unweighted.
func (g *Group) FastenerAreas() []float64 {
	weighted := false
	for _, f := range g.Fasteners {
		if f.Area != 0 {
			weighted = true
			break
		}
	}
	if !weighted {
		return nil
	}
	areas := make([]float64, len(g.Fasteners))
	for i, f := range g.Fasteners {
		areas[i] = f.Area
	}
	return areas
}

// StaticsLoads converts the group's loads to the statics model,
// preserving their order.
func (g *Group) StaticsLoads() []statics.Load {
	loads := make([]statics.Load, len(g.Loads))
	for i, ld := range g.Loads {
		loads[i] = statics.Load{
			Point:  ld.Point.Vec(),
			Force:  ld.Force.Vec(),
			Moment: ld.Moment.Vec(),
		}
	}
	return loads
}

// CaseLoads groups the loads by lowercased load case. Loads without a
// case are returned under the empty key.
func (g *Group) CaseLoads() map[string][]statics.Load {
	byCase := make(map[string][]statics.Load)
	for _, ld := range g.Loads {
		key := strings.ToLower(ld.Case)
		byCase[key] = append(byCase[key], statics.Load{
			Point:  ld.Point.Vec(),
			Force:  ld.Force.Vec(),
			Moment: ld.Moment.Vec(),
		})
	}
	return byCase
}

func vec3(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}

// ValidationError represents a group validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
