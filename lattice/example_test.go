package lattice_test

import (
	"fmt"

	"github.com/gridloom/gridloom/geom"
	"github.com/gridloom/gridloom/lattice"
)

// ExampleRect builds the canonical seed shape for loop growing: a
// clockwise unit-step rectangle whose last point duplicates the first.
func ExampleRect() {
	p, _ := lattice.Rect(10, 15)

	// width and height both count the corners, so remove the overlap (4)
	// and add the duplicated start point at the end
	fmt.Println("len:", p.Len())

	first, _ := p.Get(0)
	last, _ := p.Get(p.Len() - 1)
	fmt.Println("closed:", first == last)

	// Output:
	// len: 47
	// closed: true
}

// ExampleCondenser reduces a rectangle to its minimal corner
// representation.
func ExampleCondenser() {
	p, _ := lattice.Rect(10, 15)

	var c lattice.Condenser
	c.Mutate(p)

	for _, pt := range p.Points() {
		fmt.Println(pt)
	}

	// Output:
	// {0 0}
	// {0 14}
	// {9 14}
	// {9 0}
	// {0 0}
}

// ExampleSegmentAdder grows an irregular self-avoiding loop from a seed
// square, with a fixed seed for reproducibility.
func ExampleSegmentAdder() {
	p, _ := lattice.Rect(6, 6)
	before := p.Len()

	adder := lattice.NewSegmentAdder(
		lattice.WithSeed(42),
		lattice.WithPasses(25),
		lattice.WithAttempt(0.8),
		lattice.WithBounds(geom.Bound2D{MinX: -5, MaxX: 10, MinY: -5, MaxY: 10}),
	)
	changed := adder.Mutate(p)

	fmt.Println("changed:", changed)
	fmt.Println("grew:", p.Len() > before)

	first, _ := p.Get(0)
	last, _ := p.Get(p.Len() - 1)
	fmt.Println("still closed:", first == last)

	// Output:
	// changed: true
	// grew: true
	// still closed: true
}

// ExampleScaler stretches a path by independent per-axis factors, e.g.
// to convert cell coordinates into character-grid coordinates.
func ExampleScaler() {
	p := lattice.PathOf(
		geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0), geom.Pt(2, 1),
	)
	s, _ := lattice.NewScaler(2, 3)
	s.Mutate(p)

	fmt.Println(p.Points())

	// Output:
	// [{0 0} {2 0} {4 0} {4 3}]
}
