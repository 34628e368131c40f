package lattice

import (
	"fmt"
	"math/rand"

	"github.com/gridloom/gridloom/geom"
)

// Defaults for SegmentAdder construction.
const (
	// defaultPasses is the number of sweeps over the path per Mutate call.
	defaultPasses = 1
	// defaultAttempt is the chance an edge is considered for a bump at all.
	defaultAttempt = 0.5
	// defaultPlusBias is the chance a bump shifts in the positive direction.
	defaultPlusBias = 0.5
)

// SegmentAdderOption customizes a SegmentAdder during construction.
//
// Option constructors validate their arguments and panic on nonsense
// values (nil RNG, probabilities outside [0,1], passes below 1); the
// mutator itself never panics on configuration.
type SegmentAdderOption func(*SegmentAdder)

// WithBounds constrains every bump to the given bound: a shifted point
// outside it causes the bump to be rejected.
func WithBounds(b geom.Bound2D) SegmentAdderOption {
	return func(a *SegmentAdder) {
		a.bounds = &b
	}
}

// WithPasses sets how many full sweeps over the path each Mutate call
// performs. Panics when n < 1.
func WithPasses(n int) SegmentAdderOption {
	if n < 1 {
		panic(fmt.Sprintf("lattice: WithPasses(%d), need at least 1", n))
	}
	return func(a *SegmentAdder) {
		a.passes = n
	}
}

// WithAttempt sets the probability that an edge is considered for a bump.
// Panics when p is outside [0, 1].
func WithAttempt(p float64) SegmentAdderOption {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("lattice: WithAttempt(%v), need a probability in [0,1]", p))
	}
	return func(a *SegmentAdder) {
		a.attempt = p
	}
}

// WithPlusBias sets the probability that an accepted bump shifts in the
// positive-axis direction rather than the negative. Panics when p is
// outside [0, 1].
func WithPlusBias(p float64) SegmentAdderOption {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("lattice: WithPlusBias(%v), need a probability in [0,1]", p))
	}
	return func(a *SegmentAdder) {
		a.plusBias = p
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) SegmentAdderOption {
	if r == nil {
		panic("lattice: WithRand(nil)")
	}
	return func(a *SegmentAdder) {
		a.rng = r
	}
}

// WithSeed attaches a fresh *rand.Rand seeded with the given value, so a
// mutation sequence can be reproduced exactly.
func WithSeed(seed int64) SegmentAdderOption {
	return func(a *SegmentAdder) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAvoided seeds the avoidance set with points that are permanently
// off-limits for bumps, equivalent to calling Avoid for each.
func WithAvoided(points ...geom.Point) SegmentAdderOption {
	return func(a *SegmentAdder) {
		for _, p := range points {
			a.avoid[p] = struct{}{}
		}
	}
}
