package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridloom/gridloom/geom"
	"github.com/gridloom/gridloom/lattice"
)

// TestCondenser_RectToCorners matches the canonical scenario: a 10x15
// rectangle condenses to its 4 corners plus the duplicated start.
func TestCondenser_RectToCorners(t *testing.T) {
	p, err := lattice.Rect(10, 15)
	require.NoError(t, err)
	require.Equal(t, 47, p.Len())

	var c lattice.Condenser
	require.True(t, c.Mutate(p))

	require.Equal(t, []geom.Point{
		{X: 0, Y: 0},
		{X: 0, Y: 14},
		{X: 9, Y: 14},
		{X: 9, Y: 0},
		{X: 0, Y: 0},
	}, p.Points())
}

func TestCondenser_Idempotent(t *testing.T) {
	p, err := lattice.Rect(8, 5)
	require.NoError(t, err)

	var c lattice.Condenser
	require.True(t, c.Mutate(p))
	once := p.Points()

	require.False(t, c.Mutate(p), "second pass must find nothing to remove")
	require.Equal(t, once, p.Points())
}

func TestCondenser_ShortPathsUntouched(t *testing.T) {
	for _, pts := range [][]geom.Point{
		nil,
		{{X: 0, Y: 0}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
	} {
		p := lattice.PathOf(pts...)
		var c lattice.Condenser
		require.False(t, c.Mutate(p))
		require.Equal(t, len(pts), p.Len())
	}
}

func TestCondenser_Limit(t *testing.T) {
	// a straight run of 6 points has 4 removable interior points
	p := lattice.PathOf(
		geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0),
		geom.Pt(3, 0), geom.Pt(4, 0), geom.Pt(5, 0),
	)
	c := lattice.Condenser{Limit: 2}
	require.True(t, c.Mutate(p))
	require.Equal(t, 4, p.Len(), "limit 2 must remove exactly 2 points")

	// unlimited finishes the job
	rest := lattice.Condenser{}
	require.True(t, rest.Mutate(p))
	require.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}}, p.Points())
}

func TestCondenser_PreservesTurns(t *testing.T) {
	// an L with a redundant point on each leg
	p := lattice.PathOf(
		geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0),
		geom.Pt(2, 1), geom.Pt(2, 2),
	)
	var c lattice.Condenser
	require.True(t, c.Mutate(p))
	require.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}}, p.Points())
}

func TestCondenser_FirstCandidate(t *testing.T) {
	p := lattice.PathOf(
		geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0), // collinear at index 1
		geom.Pt(2, 1),
	)
	var c lattice.Condenser

	idx, ok := c.FirstCandidate(0, p)
	require.True(t, ok)
	require.Equal(t, 1, idx)

	// probing past the collinear window finds nothing
	_, ok = c.FirstCandidate(1, p)
	require.False(t, ok)

	// probing never mutates
	require.Equal(t, 4, p.Len())
}

func TestCondenser_FirstCandidate_NoCandidate(t *testing.T) {
	p := lattice.PathOf(geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1))
	var c lattice.Condenser
	_, ok := c.FirstCandidate(0, p)
	require.False(t, ok)
}
