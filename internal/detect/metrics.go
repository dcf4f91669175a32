package detect

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes an edge map: how many pixels were confirmed as edges
// and the distribution of candidate strengths that fed the tracer.
type Summary struct {
	Rows, Cols int

	// EdgePixels counts confirmed edge pixels; EdgeDensity is the same as a
	// fraction of the whole grid.
	EdgePixels  int
	EdgeDensity float64

	// Candidates counts pixels with non-zero strength. Mean, StdDev and Max
	// are moments of the absolute candidate strengths; all zero when no
	// candidate exists.
	Candidates int
	Mean       float64
	StdDev     float64
	Max        float64
}

// Summarize computes edge-map statistics from a pipeline result.
func Summarize(res *Result) Summary {
	rows, cols := res.Edges.Rows(), res.Edges.Cols()
	s := Summary{Rows: rows, Cols: cols}

	var strengths []float64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if res.Edges.At(r, c) > 0 {
				s.EdgePixels++
			}
			if v := res.Strength.At(r, c); v != 0 {
				if v < 0 {
					v = -v
				}
				strengths = append(strengths, v)
			}
		}
	}
	s.EdgeDensity = float64(s.EdgePixels) / float64(rows*cols)
	s.Candidates = len(strengths)
	if len(strengths) > 0 {
		s.Mean = stat.Mean(strengths, nil)
		s.Max = floats.Max(strengths)
		if len(strengths) > 1 {
			s.StdDev = stat.StdDev(strengths, nil)
		}
	}
	return s
}
