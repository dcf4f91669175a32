package detect

import (
	"sync"
	"sync/atomic"

	"github.com/edgetools/shencastan/internal/grid"
)

// Smooth applies the Infinite Symmetric Exponential Filter to src and
// returns the smoothed grid. The filter is separable: a row pass over the
// source followed by a column pass over the intermediate result.
//
// Per line, two recursive accumulations run in opposite directions with
// coefficients b1 = (1-s)/(1+s) and b2 = s*b1:
//
//	causal[0]     = b1*in[0]
//	causal[i]     = b1*in[i] + s*causal[i-1]
//	anticausal[n-1] = b2*in[n-1]
//	anticausal[i]   = b2*in[i] + s*anticausal[i+1]
//
// The combined output is causal[i] + anticausal[i+1], except at the last
// index, which takes causal[n-1] alone: the anti-causal half has no
// successor to hand off there. The seeds and the last-index case are a
// hand-off convention between the two halves and must not be approximated.
//
// workers > 1 distributes lines across that many goroutines; every line
// reads only the source and writes only its own output line.
func Smooth(src *grid.Grid, s float64, workers int) *grid.Grid {
	rows, cols := src.Rows(), src.Cols()

	inter, _ := grid.New(rows, cols)
	eachLine(rows, workers, func(r int) {
		ln := newLineFilter(cols, s)
		ln.apply(src.Row(r), inter.Row(r))
	})

	out, _ := grid.New(rows, cols)
	eachLine(cols, workers, func(c int) {
		ln := newLineFilter(rows, s)
		in := make([]float64, rows)
		res := make([]float64, rows)
		for r := 0; r < rows; r++ {
			in[r] = inter.At(r, c)
		}
		ln.apply(in, res)
		for r := 0; r < rows; r++ {
			out.Set(r, c, res[r])
		}
	})
	return out
}

// lineFilter holds the transient causal/anti-causal accumulators for one
// line length. The accumulators never escape a pass.
type lineFilter struct {
	s, b1, b2    float64
	causal, anti []float64
}

func newLineFilter(n int, s float64) *lineFilter {
	b1 := (1 - s) / (1 + s)
	return &lineFilter{
		s:      s,
		b1:     b1,
		b2:     s * b1,
		causal: make([]float64, n),
		anti:   make([]float64, n),
	}
}

// apply runs one causal and one anti-causal sweep over in and combines the
// halves into out. len(out) must equal len(in).
func (f *lineFilter) apply(in, out []float64) {
	n := len(in)
	f.causal[0] = f.b1 * in[0]
	for i := 1; i < n; i++ {
		f.causal[i] = f.b1*in[i] + f.s*f.causal[i-1]
	}
	f.anti[n-1] = f.b2 * in[n-1]
	for i := n - 2; i >= 0; i-- {
		f.anti[i] = f.b2*in[i] + f.s*f.anti[i+1]
	}
	for i := 0; i < n-1; i++ {
		out[i] = f.causal[i] + f.anti[i+1]
	}
	out[n-1] = f.causal[n-1]
}

// eachLine runs fn for every line index in [0, n). With a single worker the
// lines run inline; otherwise workers pull indices from a shared counter.
func eachLine(n, workers int, fn func(i int)) {
	if workers <= 1 || n < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	if workers > n {
		workers = n
	}
	var next atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}
