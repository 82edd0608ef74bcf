// Package mesh builds the subdivided plane the terrain is drawn on.
package mesh

import (
	"errors"
	"fmt"
	"math"
)

// MaxSubdivision keeps every vertex index within a uint16.
const MaxSubdivision = 255

// ErrSubdivision matches any rejected subdivision count.
var ErrSubdivision = errors.New("invalid subdivision")

// Subdivision is a validated count of grid cells along each side of a plane.
type Subdivision int

// NewSubdivision checks that n is between 1 and MaxSubdivision.
func NewSubdivision(n int) (Subdivision, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: must be greater than 0, got %v", ErrSubdivision, n)
	}
	if n > MaxSubdivision {
		return 0, fmt.Errorf("%w: must be at most %v, got %v", ErrSubdivision, MaxSubdivision, n)
	}
	return Subdivision(n), nil
}

// SubdivisionFromFloat accepts only finite integral values, as parsed from
// user input.
func SubdivisionFromFloat(f float64) (Subdivision, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: must be an integer, got %v", ErrSubdivision, f)
	}
	if f < 1 || f > MaxSubdivision {
		return 0, fmt.Errorf("%w: must be between 1 and %v, got %v", ErrSubdivision, MaxSubdivision, f)
	}
	return NewSubdivision(int(f))
}

// Step returns the subdivision moved by delta, held within range.
func (s Subdivision) Step(delta int) Subdivision {
	n := int(s) + delta
	if n < 1 {
		n = 1
	}
	if n > MaxSubdivision {
		n = MaxSubdivision
	}
	return Subdivision(n)
}
