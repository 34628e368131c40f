package grid_test

import (
	"fmt"

	"github.com/gridloom/gridloom/geom"
	"github.com/gridloom/gridloom/grid"
	"github.com/gridloom/gridloom/lattice"
)

// Example_rasterizePath shows the caller-side flow the container exists
// for: build a loop, then paint each point into a character grid. Turn
// classification (pipe glyphs from consecutive point triples) is the
// caller's business; here every path cell just becomes '#'.
func Example_rasterizePath() {
	p, _ := lattice.Rect(4, 3)

	g, _ := grid.NewCharGrid(4, 3, '.')
	for _, pt := range p.Points() {
		// grid rows grow downward, path Y grows upward
		g.Set(geom.Pt(pt.X, g.Height()-1-pt.Y), '#')
	}

	fmt.Println(grid.RenderChars(g))

	// Output:
	// ####
	// #..#
	// ####
}
