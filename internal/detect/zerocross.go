package detect

import (
	"fmt"

	"github.com/edgetools/shencastan/internal/grid"
)

// LocateCandidates scans the smoothed grid for valid zero-crossings of the
// binary Laplacian and returns the candidate strength grid: 0.0 where no
// candidate exists, otherwise the signed adaptive-gradient magnitude.
//
// Pixels within the border margin are never candidates. Because the
// candidacy test reads the four axial neighbors, the effective margin is at
// least one pixel even when outline is 0.
//
// Returns grid.ErrShapeMismatch if the grids differ in dimensions.
func LocateCandidates(smoothed, laplacian *grid.Grid, outline, window int) (*grid.Grid, error) {
	if err := smoothed.SameShape(laplacian); err != nil {
		return nil, fmt.Errorf("locate candidates: %w", err)
	}
	rows, cols := smoothed.Rows(), smoothed.Cols()
	out, _ := grid.New(rows, cols)

	margin := outline
	if margin < 1 {
		margin = 1
	}
	for r := margin; r < rows-margin; r++ {
		for c := margin; c < cols-margin; c++ {
			if isCandidate(smoothed, laplacian, r, c) {
				out.Set(r, c, adaptiveGradient(smoothed, laplacian, r, c, window))
			}
		}
	}
	return out, nil
}

// isCandidate applies the four directional sign-change patterns in priority
// order. The chain is keyed on the Laplacian transition: once a transition
// pattern fires, later patterns are never consulted, even if the gradient
// test for the fired pattern fails.
func isCandidate(smoothed, laplacian *grid.Grid, r, c int) bool {
	if laplacian.At(r, c) != 1.0 {
		return false
	}
	switch {
	case laplacian.At(r+1, c) == 0.0: // downward row transition
		return smoothed.At(r+1, c)-smoothed.At(r-1, c) > 0
	case laplacian.At(r, c+1) == 0.0: // downward column transition
		return smoothed.At(r, c+1)-smoothed.At(r, c-1) > 0
	case laplacian.At(r-1, c) == 0.0: // upward row transition
		return smoothed.At(r+1, c)-smoothed.At(r-1, c) < 0
	case laplacian.At(r, c-1) == 0.0: // upward column transition
		return smoothed.At(r, c+1)-smoothed.At(r, c-1) < 0
	}
	return false
}

// adaptiveGradient estimates local contrast at (r, c): window pixels are
// split by their Laplacian value into "on" and "off" populations, each side
// is averaged over the smoothed intensities, and the strength is
// avgOff - avgOn. The window spans [-window/2, window/2) in both axes;
// cells falling outside the grid are skipped.
//
// A side whose intensity sum is not positive averages to 0, the same as an
// empty population. With all-dark windows this can zero one side and drive
// the strength negative; callers pick thresholds accordingly.
func adaptiveGradient(smoothed, laplacian *grid.Grid, r, c, window int) float64 {
	half := window / 2
	var sumOn, sumOff float64
	var numOn, numOff int
	for i := -half; i < half; i++ {
		for j := -half; j < half; j++ {
			rr, cc := r+i, c+j
			if !smoothed.InBounds(rr, cc) {
				continue
			}
			if laplacian.At(rr, cc) > 0.0 {
				sumOn += smoothed.At(rr, cc)
				numOn++
			} else {
				sumOff += smoothed.At(rr, cc)
				numOff++
			}
		}
	}
	var avgOn, avgOff float64
	if sumOn > 0 {
		avgOn = sumOn / float64(numOn)
	}
	if sumOff > 0 {
		avgOff = sumOff / float64(numOff)
	}
	return avgOff - avgOn
}
