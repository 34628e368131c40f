package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridloom/gridloom/geom"
	"github.com/gridloom/gridloom/lattice"
)

// TestSegmentAdder_PreservesInvariants grows a loop through many seeded
// mutation calls and checks the two hard invariants after every one:
// unit steps only, and no repeated point.
func TestSegmentAdder_PreservesInvariants(t *testing.T) {
	p, err := lattice.Rect(6, 6)
	require.NoError(t, err)

	adder := lattice.NewSegmentAdder(
		lattice.WithSeed(1),
		lattice.WithPasses(5),
		lattice.WithAttempt(0.9),
	)

	for call := 0; call < 10; call++ {
		adder.Mutate(p)
		requireUnitSteps(t, p)
		requireSelfAvoiding(t, p, true)
	}
	require.Greater(t, p.Len(), 21, "with attempt=0.9 over 50 passes some bump must land")
}

func TestSegmentAdder_RespectsBounds(t *testing.T) {
	// a 2-point-wide rectangle inside its own bounding box: per the
	// contract, 100 passes must never place a point outside the box.
	p, err := lattice.Rect(2, 8)
	require.NoError(t, err)
	box, err := geom.BoundFromPoints(p.Points())
	require.NoError(t, err)

	adder := lattice.NewSegmentAdder(
		lattice.WithSeed(7),
		lattice.WithPasses(100),
		lattice.WithAttempt(1.0),
		lattice.WithBounds(box),
	)
	adder.Mutate(p)

	for _, pt := range p.Points() {
		require.True(t, box.Contains(pt), "point %v escaped bound %+v", pt, box)
	}
	requireUnitSteps(t, p)
	requireSelfAvoiding(t, p, true)
}

func TestSegmentAdder_AvoidedPointsStayClear(t *testing.T) {
	p, err := lattice.Rect(8, 8)
	require.NoError(t, err)

	hole := []geom.Point{
		geom.Pt(3, 3), geom.Pt(4, 3), geom.Pt(3, 4), geom.Pt(4, 4),
	}
	adder := lattice.NewSegmentAdder(
		lattice.WithSeed(11),
		lattice.WithPasses(50),
		lattice.WithAttempt(1.0),
		lattice.WithAvoided(hole...),
	)
	adder.Mutate(p)

	occupied := make(map[geom.Point]struct{}, p.Len())
	for _, pt := range p.Points() {
		occupied[pt] = struct{}{}
	}
	for _, h := range hole {
		_, hit := occupied[h]
		require.False(t, hit, "avoided point %v ended up on the path", h)
	}
}

func TestSegmentAdder_Deterministic(t *testing.T) {
	build := func() []geom.Point {
		p, err := lattice.Rect(5, 5)
		require.NoError(t, err)
		adder := lattice.NewSegmentAdder(
			lattice.WithSeed(42),
			lattice.WithPasses(10),
		)
		adder.Mutate(p)
		return p.Points()
	}
	require.Equal(t, build(), build(), "same seed must reproduce the same path")
}

func TestSegmentAdder_ZeroAttemptNeverMutates(t *testing.T) {
	p, err := lattice.Rect(4, 4)
	require.NoError(t, err)
	orig := p.Points()

	adder := lattice.NewSegmentAdder(
		lattice.WithSeed(3),
		lattice.WithPasses(20),
		lattice.WithAttempt(0),
	)
	require.False(t, adder.Mutate(p))
	require.Equal(t, orig, p.Points())
}

func TestSegmentAdder_OpenPath(t *testing.T) {
	// the mutator works on open unit paths too
	p := lattice.PathOf(
		geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0), geom.Pt(2, 1),
	)
	adder := lattice.NewSegmentAdder(
		lattice.WithSeed(5),
		lattice.WithPasses(10),
		lattice.WithAttempt(1.0),
	)
	adder.Mutate(p)
	requireUnitSteps(t, p)
	requireSelfAvoiding(t, p, false)
}

func TestSegmentAdder_ClearAvoided(t *testing.T) {
	adder := lattice.NewSegmentAdder(
		lattice.WithSeed(9),
		lattice.WithAttempt(1.0),
		lattice.WithPasses(20),
	)

	first, err := lattice.Rect(4, 4)
	require.NoError(t, err)
	adder.Mutate(first)

	// without clearing, the first path's footprint still blocks bumps on
	// an unrelated path occupying the same cells
	adder.ClearAvoided()

	second, err := lattice.Rect(4, 4)
	require.NoError(t, err)
	adder.Mutate(second)
	requireUnitSteps(t, second)
	requireSelfAvoiding(t, second, true)
}

func TestSegmentAdderOption_Validation(t *testing.T) {
	require.Panics(t, func() { lattice.WithPasses(0) })
	require.Panics(t, func() { lattice.WithAttempt(-0.1) })
	require.Panics(t, func() { lattice.WithAttempt(1.1) })
	require.Panics(t, func() { lattice.WithPlusBias(2) })
	require.Panics(t, func() { lattice.WithRand(nil) })
}
