package lattice

import "errors"

var (
	// ErrInvalidDimension indicates a rectangle constructor received a width or height below 1.
	ErrInvalidDimension = errors.New("lattice: width and height must each be at least 1")
	// ErrInvalidFactor indicates a scale factor below 1.
	ErrInvalidFactor = errors.New("lattice: scale factors must each be at least 1")
)
