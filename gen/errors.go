package gen

import "errors"

var (
	// ErrValueRange indicates a value range with min >= max.
	ErrValueRange = errors.New("gen: invalid value range")
	// ErrCountRange indicates a count range with min >= max or min < 0.
	ErrCountRange = errors.New("gen: invalid count range")
	// ErrCoordRange indicates a coordinate range with min >= max.
	ErrCoordRange = errors.New("gen: invalid coordinate range")
	// ErrRangeTooSmall indicates the coordinate ranges cannot supply the
	// requested number of distinct points.
	ErrRangeTooSmall = errors.New("gen: coordinate ranges too small for requested count")
	// ErrLengthRange indicates a token length range with min >= max or min < 0.
	ErrLengthRange = errors.New("gen: invalid length range")
	// ErrEmptyCharset indicates a token charset with no characters.
	ErrEmptyCharset = errors.New("gen: charset must not be empty")
)
