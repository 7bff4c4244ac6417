// Package statics reduces point loads applied to a rigid connection
// into an equivalent force/moment pair at a chosen reference point.
//
// All quantities are unit-agnostic: positions, forces and moments are
// simply propagated in whatever consistent unit system the caller
// supplies (the CLI conventionally uses newtons and millimeters).
package statics

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Load represents a single applied action: a force at a point in the
// connection's coordinate frame, plus an optional applied couple.
// The moment is a free vector and is additive to the resultant moment
// without any positional transformation.
type Load struct {
	Point  r3.Vector // Application point
	Force  r3.Vector // Applied force
	Moment r3.Vector // Applied couple (zero if none)
}

// Resultant is the equivalent force/moment pair at the reference
// point a set of loads was reduced to.
type Resultant struct {
	Force  r3.Vector
	Moment r3.Vector
}

// Reduce computes the single force/moment pair at reference that is
// statically equivalent to the given loads:
//
//	Fc = Σ Fi
//	Mc = Σ Mi + Σ (Pi − reference) × Fi
//
// The offset vector runs from the reference point to each load's
// application point. Reduce is pure and order-independent; it either
// fully succeeds or returns an error without a partial result.
func Reduce(reference r3.Vector, loads []Load) (Resultant, error) {
	if len(loads) == 0 {
		return Resultant{}, &InvalidInputError{"load set is empty, no resultant is defined"}
	}
	if !isFinite(reference) {
		return Resultant{}, &InvalidInputError{"reference point has a non-finite component"}
	}

	var res Resultant
	for i, ld := range loads {
		if err := validateLoad(i, ld); err != nil {
			return Resultant{}, err
		}

		res.Force = res.Force.Add(ld.Force)

		// Applied couple plus the moment of the force about the reference
		arm := ld.Point.Sub(reference)
		res.Moment = res.Moment.Add(ld.Moment).Add(arm.Cross(ld.Force))
	}

	return res, nil
}

// Transfer re-expresses a resultant known at point from as an
// equivalent resultant at point to. The force carries over unchanged;
// the moment picks up the couple of the force over the offset.
func Transfer(r Resultant, from, to r3.Vector) Resultant {
	return Resultant{
		Force:  r.Force,
		Moment: r.Moment.Add(from.Sub(to).Cross(r.Force)),
	}
}

// InvalidInputError reports a load set that cannot be reduced.
type InvalidInputError struct {
	msg string
}

func (e *InvalidInputError) Error() string {
	return e.msg
}

func validateLoad(i int, ld Load) error {
	switch {
	case !isFinite(ld.Point):
		return &InvalidInputError{msg: fmt.Sprintf("load %d: point has a non-finite component", i+1)}
	case !isFinite(ld.Force):
		return &InvalidInputError{msg: fmt.Sprintf("load %d: force has a non-finite component", i+1)}
	case !isFinite(ld.Moment):
		return &InvalidInputError{msg: fmt.Sprintf("load %d: moment has a non-finite component", i+1)}
	}
	return nil
}

func isFinite(v r3.Vector) bool {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
