package lattice

import (
	"slices"

	"github.com/gridloom/gridloom/geom"
)

// PointPath describes a 2D path formed by traversing an ordered sequence
// of points. It is a storage contract only: implementations never enforce
// self-avoidance, unit-step segments, or closure; those properties belong
// to the mutators (and callers) that touch the path.
//
// Index arguments follow slice semantics: Insert and InsertMany accept
// 0 <= i <= Len() and panic outside that range, exactly as a slice
// expression would.
type PointPath interface {
	// Len returns the number of points that describe this path.
	Len() int

	// Get returns the point at index i, and false when i is out of range.
	Get(i int) (geom.Point, bool)

	// Points returns a fresh copy of the points in path order. Mutating
	// the returned slice does not affect the path.
	Points() []geom.Point

	// MapPoints replaces every point p with fn(p), in path order.
	MapPoints(fn func(geom.Point) geom.Point)

	// Insert places p before index i.
	Insert(i int, p geom.Point)

	// InsertMany places pts before index i, preserving their order.
	InsertMany(i int, pts []geom.Point)

	// Remove deletes and returns the point at index i; false when i is
	// out of range.
	Remove(i int) (geom.Point, bool)

	// Translate adds delta to every point in the path.
	Translate(delta geom.Point)
}

// Mutator edits a PointPath in place, optionally adding, removing or
// altering its points, and reports whether any change occurred.
type Mutator interface {
	Mutate(path PointPath) bool
}

// pointSeq is the shared storage backing Path and ClosedPath.
type pointSeq struct {
	pts []geom.Point
}

func (s *pointSeq) Len() int { return len(s.pts) }

func (s *pointSeq) Get(i int) (geom.Point, bool) {
	if i < 0 || i >= len(s.pts) {
		return geom.Point{}, false
	}
	return s.pts[i], true
}

func (s *pointSeq) Points() []geom.Point {
	return slices.Clone(s.pts)
}

func (s *pointSeq) MapPoints(fn func(geom.Point) geom.Point) {
	for i := range s.pts {
		s.pts[i] = fn(s.pts[i])
	}
}

func (s *pointSeq) Insert(i int, p geom.Point) {
	s.pts = slices.Insert(s.pts, i, p)
}

func (s *pointSeq) InsertMany(i int, pts []geom.Point) {
	s.pts = slices.Insert(s.pts, i, pts...)
}

func (s *pointSeq) Remove(i int) (geom.Point, bool) {
	if i < 0 || i >= len(s.pts) {
		return geom.Point{}, false
	}
	p := s.pts[i]
	s.pts = slices.Delete(s.pts, i, i+1)
	return p, true
}

func (s *pointSeq) Translate(delta geom.Point) {
	for i := range s.pts {
		s.pts[i] = s.pts[i].Add(delta)
	}
}

// Path is an open sequence of points with no closure constraint. The zero
// value is an empty path, ready to use.
//
// Appending or prepending does not validate that the point is absent from
// the path, nor that the path avoids self-intersection.
type Path struct {
	pointSeq
}

// PathOf builds an open path from the given points, in order.
func PathOf(pts ...geom.Point) *Path {
	return &Path{pointSeq{pts: slices.Clone(pts)}}
}

// Append adds p to the end of the path.
func (p *Path) Append(pt geom.Point) {
	p.pts = append(p.pts, pt)
}

// Prepend adds p to the front of the path.
func (p *Path) Prepend(pt geom.Point) {
	p.pts = slices.Insert(p.pts, 0, pt)
}

var (
	_ PointPath = (*Path)(nil)
	_ PointPath = (*ClosedPath)(nil)
)
