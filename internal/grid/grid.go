package grid

import "fmt"

// Grid is a fixed-size 2D float64 buffer with row-major flat storage.
//
// The zero value is not usable; construct grids with New or FromRows.
type Grid struct {
	rows, cols int
	data       []float64
}

// New returns a zero-filled rows × cols grid.
//
// Returns ErrEmptyGrid if either dimension is not positive.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	return &Grid{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// FromRows builds a grid from a non-empty, rectangular 2D slice.
// The input is deep-copied so later mutation of values cannot alias the grid.
//
// Returns ErrEmptyGrid if values has no rows or no columns, and
// ErrNonRectangular if any row length differs from the first.
func FromRows(values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, i, len(row), cols)
		}
	}
	g := &Grid{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
	for r, row := range values {
		copy(g.data[r*cols:(r+1)*cols], row)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the sample at (row, col). Panics if out of bounds, like a
// slice index; callers that may stray use InBounds first.
func (g *Grid) At(r, c int) float64 {
	if !g.InBounds(r, c) {
		panic(fmt.Sprintf("grid: index (%d,%d) out of bounds %dx%d", r, c, g.rows, g.cols))
	}
	return g.data[r*g.cols+c]
}

// Set stores a sample at (row, col). Panics if out of bounds.
func (g *Grid) Set(r, c int, v float64) {
	if !g.InBounds(r, c) {
		panic(fmt.Sprintf("grid: index (%d,%d) out of bounds %dx%d", r, c, g.rows, g.cols))
	}
	g.data[r*g.cols+c] = v
}

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Row returns the backing slice for one row. The slice aliases the grid;
// it is intended for the line-oriented filter passes, which treat the
// source grid as read-only.
func (g *Grid) Row(r int) []float64 {
	return g.data[r*g.cols : (r+1)*g.cols]
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		rows: g.rows,
		cols: g.cols,
		data: make([]float64, len(g.data)),
	}
	copy(out.data, g.data)
	return out
}

// SameShape returns nil when both grids have identical dimensions, and a
// wrapped ErrShapeMismatch otherwise.
func (g *Grid) SameShape(o *Grid) error {
	if g.rows != o.rows || g.cols != o.cols {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, g.rows, g.cols, o.rows, o.cols)
	}
	return nil
}
