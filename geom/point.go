package geom

// Point is a 2D integer coordinate. The zero value is the origin.
//
// Point is a plain value type: copy it freely and compare it with ==.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p translated by the negation of q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Neg returns the point with both coordinates negated.
func (p Point) Neg() Point { return Point{X: -p.X, Y: -p.Y} }

// ManhattanDist returns the Manhattan (L1) distance between p and q.
func (p Point) ManhattanDist(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// CardinalTo returns the compass direction from p toward q, and true,
// when the two points share an axis. The distance along that axis is
// irrelevant: (0,0)→(0,3) is North just as (0,0)→(0,1) is. When the
// points are equal or diagonal to each other there is no single cardinal
// direction and CardinalTo returns false.
func (p Point) CardinalTo(q Point) (Cardinal, bool) {
	switch {
	case p == q:
		return 0, false
	case p.X == q.X:
		if p.Y < q.Y {
			return CardinalNorth, true
		}
		return CardinalSouth, true
	case p.Y == q.Y:
		if p.X < q.X {
			return CardinalEast, true
		}
		return CardinalWest, true
	default:
		return 0, false
	}
}

// ReflectX returns p reflected across the x-axis (Y negated).
func (p Point) ReflectX() Point { return Point{X: p.X, Y: -p.Y} }

// ReflectY returns p reflected across the y-axis (X negated).
func (p Point) ReflectY() Point { return Point{X: -p.X, Y: p.Y} }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
