package lattice

import (
	"math/rand"
	"time"

	"github.com/gridloom/gridloom/geom"
)

// SegmentAdder is a Mutator that randomly grows a unit-step path by
// bumping edges one unit sideways: an accepted bump splices two new
// points between an existing pair, turning the segment p1—p2 into
// p1—p1'—p2'—p2.
//
// Two invariants hold before and after every Mutate call on a valid
// self-avoiding unit path:
//
//   - every consecutive pair of points stays exactly one unit apart along
//     one axis (no diagonal or skipped segments are ever introduced);
//   - no point value repeats anywhere in the path or in the avoidance
//     set, which for a path of unit axis-aligned segments is strictly
//     stronger than "no crossing".
//
// Rejected bumps (probability roll, bounds violation, avoidance
// collision) are routine and silent: the edge is left alone and the pass
// continues. There is no partial application; each accepted bump is
// atomic and immediately reflected in both the path and the avoidance
// set.
//
// The avoidance set grows monotonically across Mutate calls, so a
// SegmentAdder is not safely reusable across unrelated paths unless
// ClearAvoided is called in between. Because the set is seeded from the
// path on every call, one Mutate with WithPasses(n) is cheaper than n
// Mutate calls.
type SegmentAdder struct {
	bounds   *geom.Bound2D
	passes   int
	attempt  float64
	plusBias float64
	rng      *rand.Rand
	avoid    map[geom.Point]struct{}
}

// NewSegmentAdder builds a SegmentAdder. Defaults: no bounds, one pass,
// attempt and plus-bias probabilities of 0.5, and a time-seeded RNG.
// Supply WithSeed or WithRand for reproducible output.
func NewSegmentAdder(opts ...SegmentAdderOption) *SegmentAdder {
	a := &SegmentAdder{
		passes:   defaultPasses,
		attempt:  defaultAttempt,
		plusBias: defaultPlusBias,
		avoid:    make(map[geom.Point]struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return a
}

// Avoid marks p permanently off-limits for future bumps, e.g. to keep a
// hole inside a generated shape.
func (a *SegmentAdder) Avoid(p geom.Point) {
	a.avoid[p] = struct{}{}
}

// ClearAvoided resets the avoidance set, making the adder safe to reuse
// on an unrelated path.
func (a *SegmentAdder) ClearAvoided() {
	clear(a.avoid)
}

// Mutate makes the configured number of passes over the path's edges,
// visiting them from the last index down to the first so that an
// accepted bump (which inserts two points after the current index) never
// invalidates the indices still to be visited in the same pass.
//
// For each edge (p1, p2): roll against the attempt probability; find the
// edge's axis via CardinalTo (a non-cardinal pair is skipped — it cannot
// occur on a well-formed unit path); shift both endpoints one unit
// perpendicular to the edge, with the sign chosen by the plus-bias
// probability; reject if a shifted point leaves the bounds or collides
// with the avoidance set; otherwise record both points as used and splice
// them into the path.
//
// Returns true if any edge across any pass was mutated.
// Complexity: O(passes × n) expected time, O(n) avoidance memory.
func (a *SegmentAdder) Mutate(path PointPath) bool {
	// the path's own points are always off-limits
	for _, p := range path.Points() {
		a.avoid[p] = struct{}{}
	}

	mutated := false
	for pass := 0; pass < a.passes; pass++ {
		for i := path.Len() - 2; i >= 0; i-- {
			if a.rng.Float64() >= a.attempt {
				continue
			}

			p1, _ := path.Get(i)
			p2, _ := path.Get(i + 1)
			dir, ok := p1.CardinalTo(p2)
			if !ok {
				continue
			}

			var shift geom.Point
			switch dir {
			case geom.CardinalEast, geom.CardinalWest:
				shift.Y = 1
			case geom.CardinalNorth, geom.CardinalSouth:
				shift.X = 1
			}
			if a.rng.Float64() >= a.plusBias {
				shift = shift.Neg()
			}

			q1 := p1.Add(shift)
			q2 := p2.Add(shift)

			if a.bounds != nil && (!a.bounds.Contains(q1) || !a.bounds.Contains(q2)) {
				continue
			}
			if _, used := a.avoid[q1]; used {
				continue
			}
			if _, used := a.avoid[q2]; used {
				continue
			}

			a.avoid[q1] = struct{}{}
			a.avoid[q2] = struct{}{}
			path.InsertMany(i+1, []geom.Point{q1, q2})
			mutated = true
		}
	}

	return mutated
}
