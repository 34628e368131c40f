package geom

// Bound2D is an axis-aligned rectangle over integer coordinates. All four
// limits are inclusive. Construction does not enforce Min <= Max; callers
// building bounds by hand own that invariant. BoundFromPoints always
// yields the tight bounding box of its input.
type Bound2D struct {
	MinX, MaxX int
	MinY, MaxY int
}

// BoundFromPoints returns the tight bounding box of the supplied points.
// Returns ErrNoPoints when the slice is empty.
// Complexity: O(n) time, O(1) space.
func BoundFromPoints(points []Point) (Bound2D, error) {
	if len(points) == 0 {
		return Bound2D{}, ErrNoPoints
	}
	b := Bound2D{
		MinX: points[0].X, MaxX: points[0].X,
		MinY: points[0].Y, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b, nil
}

// Contains reports whether p lies within the bound, testing both axes
// against their closed intervals.
func (b Bound2D) Contains(p Point) bool {
	return b.MinX <= p.X && p.X <= b.MaxX && b.MinY <= p.Y && p.Y <= b.MaxY
}

// Normalize translates p into coordinates relative to the bound, so that
// (MinX, MinY) maps to the origin.
func (b Bound2D) Normalize(p Point) Point {
	return Point{X: p.X - b.MinX, Y: p.Y - b.MinY}
}

// Width returns the number of integer columns covered by the bound.
func (b Bound2D) Width() int { return b.MaxX - b.MinX + 1 }

// Height returns the number of integer rows covered by the bound.
func (b Bound2D) Height() int { return b.MaxY - b.MinY + 1 }
