package lattice

import (
	"fmt"

	"github.com/gridloom/gridloom/geom"
)

// Scaler is a Mutator that multiplies every point's coordinates by
// independent x and y factors, in place. Factors are validated at
// construction; Mutate itself cannot fail.
type Scaler struct {
	xFactor int
	yFactor int
}

// NewScaler builds a Scaler with the given per-axis factors. Each factor
// must be at least 1; anything smaller returns ErrInvalidFactor.
func NewScaler(xFactor, yFactor int) (*Scaler, error) {
	if xFactor < 1 || yFactor < 1 {
		return nil, fmt.Errorf("%w: got x=%d y=%d", ErrInvalidFactor, xFactor, yFactor)
	}
	return &Scaler{xFactor: xFactor, yFactor: yFactor}, nil
}

// Mutate scales every point of the path. The identity scaler (1, 1)
// returns false without touching any point.
// Complexity: O(n).
func (s *Scaler) Mutate(path PointPath) bool {
	if s.xFactor == 1 && s.yFactor == 1 {
		return false
	}
	path.MapPoints(func(p geom.Point) geom.Point {
		return geom.Point{X: p.X * s.xFactor, Y: p.Y * s.yFactor}
	})
	return true
}
