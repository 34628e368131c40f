package geom

import "errors"

var (
	// ErrParseDirection indicates a string or byte that names no known compass direction.
	ErrParseDirection = errors.New("geom: cannot parse direction")
	// ErrParseCardinal indicates a string or byte that names no cardinal direction.
	ErrParseCardinal = errors.New("geom: cannot parse cardinal direction")
	// ErrNoPoints indicates an attempt to derive a bound from an empty point set.
	ErrNoPoints = errors.New("geom: cannot derive bound from zero points")
)
