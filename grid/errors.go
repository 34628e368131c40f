package grid

import "errors"

var (
	// ErrEmptyGrid indicates the grid would have no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates source rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)
