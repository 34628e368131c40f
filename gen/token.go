package gen

import (
	"fmt"
	"math/rand"
)

// Charsets without vowels, so generated tokens never spell anything.
const (
	LowerAlphaChars = "bcdfghjklmnpqrstvwxz"
	UpperAlphaChars = "BCDFGHJKLMNPQRSTVWXZ"
)

// Token generates short random strings from a charset, with length drawn
// from a half-open range. Useful for keyword-ish filler in textual
// puzzle inputs.
type Token struct {
	lengthMin, lengthMax int
	charset              string
}

// NewToken builds a Token. The length range must be non-negative with
// min < max, and the charset non-empty.
func NewToken(lengthMin, lengthMax int, charset string) (*Token, error) {
	if lengthMin < 0 || lengthMin >= lengthMax {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrLengthRange, lengthMin, lengthMax)
	}
	if len(charset) == 0 {
		return nil, ErrEmptyCharset
	}
	return &Token{lengthMin: lengthMin, lengthMax: lengthMax, charset: charset}, nil
}

// DefaultToken returns the stock configuration: 2-3 characters from
// LowerAlphaChars.
func DefaultToken() *Token {
	g, err := NewToken(2, 4, LowerAlphaChars)
	if err != nil {
		panic(err) // the stock configuration is valid by construction
	}
	return g
}

// Generate implements Generator[string]. It cannot fail.
func (g *Token) Generate(rng *rand.Rand) (string, error) {
	n := intn(rng, g.lengthMin, g.lengthMax)
	out := make([]byte, n)
	for i := range out {
		out[i] = g.charset[rng.Intn(len(g.charset))]
	}
	return string(out), nil
}

var _ Generator[string] = (*Token)(nil)
