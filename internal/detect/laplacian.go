package detect

import (
	"fmt"

	"github.com/edgetools/shencastan/internal/grid"
)

// BinaryLaplacian derives the band-limited Laplacian approximation from the
// original and ISEF-smoothed grids: 1.0 where smoothed exceeds the original,
// 0.0 elsewhere. No third value ever appears in the result.
//
// Returns grid.ErrShapeMismatch if the grids differ in dimensions.
func BinaryLaplacian(original, smoothed *grid.Grid) (*grid.Grid, error) {
	if err := original.SameShape(smoothed); err != nil {
		return nil, fmt.Errorf("binary laplacian: %w", err)
	}
	out, _ := grid.New(original.Rows(), original.Cols())
	for r := 0; r < original.Rows(); r++ {
		for c := 0; c < original.Cols(); c++ {
			if smoothed.At(r, c)-original.At(r, c) > 0.0 {
				out.Set(r, c, 1.0)
			}
		}
	}
	return out, nil
}
