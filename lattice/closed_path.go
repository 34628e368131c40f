package lattice

import (
	"fmt"

	"github.com/gridloom/gridloom/geom"
)

// ClosedPath is a closed (loop) lattice path. For convenience the first
// and last points in the sequence are identical.
//
// Nothing here prevents a caller from manually breaking the loop, or from
// editing the path so that it is no longer unit-step; closure is
// established by construction and preserved by caller discipline.
type ClosedPath struct {
	pointSeq
}

// Rect builds a rectangular closed path of unit segments with (0, 0) as
// the lower-left corner, wound clockwise: up height-1 steps, right
// width-1, down height-1, left width-1, so the final point lands back on
// the origin and duplicates the first.
//
// Width and height must each be at least 1; anything smaller returns
// ErrInvalidDimension. The resulting length is 2*width + 2*height - 4 + 1
// (perimeter corners counted once, plus the duplicated start).
// Complexity: O(width + height).
func Rect(width, height int) (*ClosedPath, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}

	pts := make([]geom.Point, 0, 2*width+2*height-4+1)
	cur := geom.Point{}
	pts = append(pts, cur)

	for i := 1; i < height; i++ {
		cur.Y++
		pts = append(pts, cur)
	}
	for i := 1; i < width; i++ {
		cur.X++
		pts = append(pts, cur)
	}
	for i := 1; i < height; i++ {
		cur.Y--
		pts = append(pts, cur)
	}
	// the last step of this leg lands on (0, 0), duplicating the start
	for i := 1; i < width; i++ {
		cur.X--
		pts = append(pts, cur)
	}

	return &ClosedPath{pointSeq{pts: pts}}, nil
}
