package gen

import (
	"fmt"
	"math/rand"
)

// IntList generates a random-length slice of uniform integers. Values
// are drawn from [valueMin, valueMax) and the length from
// [countMin, countMax).
type IntList struct {
	valueMin, valueMax int
	countMin, countMax int
}

// NewIntList builds an IntList. Both ranges are half-open and must
// satisfy min < max; the count range must also be non-negative.
func NewIntList(valueMin, valueMax, countMin, countMax int) (*IntList, error) {
	if valueMin >= valueMax {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrValueRange, valueMin, valueMax)
	}
	if countMin < 0 || countMin >= countMax {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrCountRange, countMin, countMax)
	}
	return &IntList{
		valueMin: valueMin, valueMax: valueMax,
		countMin: countMin, countMax: countMax,
	}, nil
}

// DefaultIntList returns the stock configuration: values in
// [1000, 100000) and length in [1000, 1201).
func DefaultIntList() *IntList {
	g, err := NewIntList(1000, 100_000, 1000, 1201)
	if err != nil {
		panic(err) // the stock ranges are valid by construction
	}
	return g
}

// Ints returns a fresh random slice using g's configuration. Exposed
// separately from Generate so other generators can embed the behavior
// without the interface indirection.
func (g *IntList) Ints(rng *rand.Rand) []int {
	n := intn(rng, g.countMin, g.countMax)
	out := make([]int, n)
	for i := range out {
		out[i] = intn(rng, g.valueMin, g.valueMax)
	}
	return out
}

// Generate implements Generator[[]int]. It cannot fail.
func (g *IntList) Generate(rng *rand.Rand) ([]int, error) {
	return g.Ints(rng), nil
}

var _ Generator[[]int] = (*IntList)(nil)
