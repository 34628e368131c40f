package gen

import (
	"fmt"
	"math/rand"

	"github.com/gridloom/gridloom/geom"
)

// PointList generates a random-length set of distinct 2D points with
// coordinates drawn from half-open x and y ranges.
type PointList struct {
	xMin, xMax         int
	yMin, yMax         int
	countMin, countMax int
}

// NewPointList builds a PointList. Coordinate ranges must satisfy
// min < max, the count range must be non-negative with min < max, and
// the coordinate ranges must be able to supply countMax-1 distinct
// points — rejected up front so Generate can never spin forever.
func NewPointList(xMin, xMax, yMin, yMax, countMin, countMax int) (*PointList, error) {
	if xMin >= xMax {
		return nil, fmt.Errorf("%w: x [%d, %d)", ErrCoordRange, xMin, xMax)
	}
	if yMin >= yMax {
		return nil, fmt.Errorf("%w: y [%d, %d)", ErrCoordRange, yMin, yMax)
	}
	if countMin < 0 || countMin >= countMax {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrCountRange, countMin, countMax)
	}
	if distinct := int64(xMax-xMin) * int64(yMax-yMin); distinct < int64(countMax-1) {
		return nil, fmt.Errorf("%w: %d distinct points, up to %d requested",
			ErrRangeTooSmall, distinct, countMax-1)
	}
	return &PointList{
		xMin: xMin, xMax: xMax,
		yMin: yMin, yMax: yMax,
		countMin: countMin, countMax: countMax,
	}, nil
}

// DefaultPointList returns the stock configuration: coordinates in
// [0, 5000) on both axes and between 500 and 599 points.
func DefaultPointList() *PointList {
	g, err := NewPointList(0, 5000, 0, 5000, 500, 600)
	if err != nil {
		panic(err) // the stock ranges are valid by construction
	}
	return g
}

// Points returns a fresh slice of distinct random points. Iteration
// order is insertion order, so a seeded RNG reproduces the slice
// exactly.
func (g *PointList) Points(rng *rand.Rand) []geom.Point {
	n := intn(rng, g.countMin, g.countMax)
	seen := make(map[geom.Point]struct{}, n)
	out := make([]geom.Point, 0, n)
	for len(out) < n {
		p := geom.Pt(intn(rng, g.xMin, g.xMax), intn(rng, g.yMin, g.yMax))
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Generate implements Generator[[]geom.Point]. It cannot fail.
func (g *PointList) Generate(rng *rand.Rand) ([]geom.Point, error) {
	return g.Points(rng), nil
}

var _ Generator[[]geom.Point] = (*PointList)(nil)

// Point3 is a 3D integer coordinate.
type Point3 struct {
	X, Y, Z int
}

// Point3List generates a random-length set of distinct 3D points.
type Point3List struct {
	xMin, xMax         int
	yMin, yMax         int
	zMin, zMax         int
	countMin, countMax int
}

// NewPoint3List builds a Point3List with the same validation rules as
// NewPointList, extended to the z range.
func NewPoint3List(xMin, xMax, yMin, yMax, zMin, zMax, countMin, countMax int) (*Point3List, error) {
	if xMin >= xMax {
		return nil, fmt.Errorf("%w: x [%d, %d)", ErrCoordRange, xMin, xMax)
	}
	if yMin >= yMax {
		return nil, fmt.Errorf("%w: y [%d, %d)", ErrCoordRange, yMin, yMax)
	}
	if zMin >= zMax {
		return nil, fmt.Errorf("%w: z [%d, %d)", ErrCoordRange, zMin, zMax)
	}
	if countMin < 0 || countMin >= countMax {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrCountRange, countMin, countMax)
	}
	if distinct := int64(xMax-xMin) * int64(yMax-yMin) * int64(zMax-zMin); distinct < int64(countMax-1) {
		return nil, fmt.Errorf("%w: %d distinct points, up to %d requested",
			ErrRangeTooSmall, distinct, countMax-1)
	}
	return &Point3List{
		xMin: xMin, xMax: xMax,
		yMin: yMin, yMax: yMax,
		zMin: zMin, zMax: zMax,
		countMin: countMin, countMax: countMax,
	}, nil
}

// Points returns a fresh slice of distinct random 3D points in
// insertion order.
func (g *Point3List) Points(rng *rand.Rand) []Point3 {
	n := intn(rng, g.countMin, g.countMax)
	seen := make(map[Point3]struct{}, n)
	out := make([]Point3, 0, n)
	for len(out) < n {
		p := Point3{
			X: intn(rng, g.xMin, g.xMax),
			Y: intn(rng, g.yMin, g.yMax),
			Z: intn(rng, g.zMin, g.zMax),
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Generate implements Generator[[]Point3]. It cannot fail.
func (g *Point3List) Generate(rng *rand.Rand) ([]Point3, error) {
	return g.Points(rng), nil
}

var _ Generator[[]Point3] = (*Point3List)(nil)
