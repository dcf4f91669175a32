package grid

import "errors"

// Sentinel errors for grid construction and shape checks.
var (
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrShapeMismatch indicates two grids expected to share dimensions do not.
	ErrShapeMismatch = errors.New("grid: dimensions do not match")
)
