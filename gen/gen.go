package gen

import "math/rand"

// Generator produces one value of T from the supplied RNG. It gives a
// heterogeneous set of generators one calling convention, so a day's
// input builder can hold a slice of them and run each in turn.
type Generator[T any] interface {
	Generate(rng *rand.Rand) (T, error)
}

// intn returns a uniform value in the half-open range [min, max).
// Callers guarantee min < max at construction time.
func intn(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min)
}
