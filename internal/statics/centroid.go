package statics

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Centroid computes the area-weighted centroid of a fastener pattern,
// the usual reference point for a bolt group reduction.
//
// areas may be nil or empty, in which case every fastener carries
// equal weight. When provided, areas must match points one-to-one and
// every area must be positive.
func Centroid(points []r3.Vector, areas []float64) (r3.Vector, error) {
	if len(points) == 0 {
		return r3.Vector{}, &InvalidInputError{"fastener set is empty, no centroid is defined"}
	}

	if len(areas) == 0 {
		var sum r3.Vector
		for _, p := range points {
			sum = sum.Add(p)
		}
		return sum.Mul(1 / float64(len(points))), nil
	}

	if len(areas) != len(points) {
		return r3.Vector{}, &InvalidInputError{
			msg: fmt.Sprintf("got %d areas for %d fasteners", len(areas), len(points)),
		}
	}

	var sum r3.Vector
	var total float64
	for i, p := range points {
		if areas[i] <= 0 {
			return r3.Vector{}, &InvalidInputError{
				msg: fmt.Sprintf("fastener %d: area must be positive", i+1),
			}
		}
		sum = sum.Add(p.Mul(areas[i]))
		total += areas[i]
	}

	return sum.Mul(1 / total), nil
}
