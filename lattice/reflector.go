package lattice

import (
	"fmt"

	"github.com/gridloom/gridloom/geom"
)

// Axis selects the reflection axis for a Reflector.
type Axis int

const (
	// AxisX reflects across the x-axis (Y negated).
	AxisX Axis = iota
	// AxisY reflects across the y-axis (X negated).
	AxisY
	// AxisBoth reflects across both axes (both coordinates negated).
	AxisBoth
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "AxisX"
	case AxisY:
		return "AxisY"
	case AxisBoth:
		return "AxisBoth"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Reflector is a Mutator that reflects every point of a path across the
// configured axis. The zero value reflects across the x-axis.
//
// Mutate always reports true: even a path symmetric about the axis has
// had the transform applied to every point.
type Reflector struct {
	Axis Axis
}

// Mutate reflects the path in place. Panics on an Axis value outside the
// declared constants; that is a programmer error, not input data.
// Complexity: O(n).
func (r *Reflector) Mutate(path PointPath) bool {
	switch r.Axis {
	case AxisX:
		path.MapPoints(geom.Point.ReflectX)
	case AxisY:
		path.MapPoints(geom.Point.ReflectY)
	case AxisBoth:
		path.MapPoints(func(p geom.Point) geom.Point {
			return p.ReflectX().ReflectY()
		})
	default:
		panic(fmt.Sprintf("lattice: invalid reflection axis %v", r.Axis))
	}
	return true
}
