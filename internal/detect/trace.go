package detect

import "github.com/edgetools/shencastan/internal/grid"

// Edge grid cell states during tracing. After the final strip pass only
// unvisited and confirmed remain; the driver then maps confirmed to 255.
const (
	unvisited   = 0.0
	confirmed   = 1.0
	provisional = 255.0
)

// neighborOffsets enumerates the 8-connected neighborhood in row-major
// order. Traversal order matters: the thinning level a pixel is first
// reached at depends on it.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// TraceEdges grows connected edge runs over the candidate strength grid.
//
// Non-border pixels are scanned in row-major order; every unvisited pixel
// whose strength exceeds high seeds an 8-connected traversal. A visited
// pixel is confirmed when its strength exceeds low and marked provisional
// otherwise, so weak pixels survive only through connection to a strong
// seed. When thin > 0, a chain end (a pixel none of whose neighbor
// traversals produced a mark) reached at level L is demoted back to
// provisional whenever L mod thin != 0. A final pass strips every
// provisional mark to 0, leaving a {0, 1} grid.
//
// The traversal runs on an explicit frame stack owned by this call, so
// depth is bounded by heap memory rather than the goroutine stack, and no
// traversal state outlives the call.
func TraceEdges(strength *grid.Grid, outline int, low, high float64, thin int) *grid.Grid {
	rows, cols := strength.Rows(), strength.Cols()
	edges, _ := grid.New(rows, cols)

	margin := outline
	if margin < 1 {
		margin = 1
	}
	t := tracer{strength: strength, edges: edges, low: low, thin: thin}
	for r := margin; r < rows-margin; r++ {
		for c := margin; c < cols-margin; c++ {
			if strength.At(r, c) > high && edges.At(r, c) == unvisited {
				t.traverse(r, c)
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if edges.At(r, c) == provisional {
				edges.Set(r, c, unvisited)
			}
		}
	}
	return edges
}

// tracer bundles the traversal state for one TraceEdges call. The edge grid
// is deliberately a parameter of the call, never package state.
type tracer struct {
	strength *grid.Grid
	edges    *grid.Grid
	low      float64
	thin     int
	stack    []frame
}

// frame is one suspended traversal step: the pixel, its recursion level,
// a cursor over the neighbors still to visit, and the running OR of whether
// any completed neighbor traversal produced a mark.
type frame struct {
	r, c, level int
	next        int
	entered     bool
	childMark   bool
}

// traverse is the explicit-stack equivalent of the recursive flood fill:
//
//	mark(r, c, level):
//	  if visited -> report no new territory
//	  if strength == 0 -> report nothing
//	  mark confirmed or provisional
//	  for each of 8 neighbors: childMark |= mark(nr, nc, level+1)
//	  if !childMark && level > 0 && thin > 0 && level%thin != 0: demote
//	  report a mark was produced
//
// Each frame is entered once (visit checks and marking), then resumed once
// per neighbor; completion applies the chain-end demotion and propagates
// the post-order "produced a mark" signal into the parent's childMark.
func (t *tracer) traverse(sr, sc int) {
	t.stack = append(t.stack[:0], frame{r: sr, c: sc})
	for len(t.stack) > 0 {
		f := &t.stack[len(t.stack)-1]
		if !f.entered {
			f.entered = true
			if t.edges.At(f.r, f.c) != unvisited || t.strength.At(f.r, f.c) == 0.0 {
				// Contributes no mark; the parent's childMark stays as is.
				t.stack = t.stack[:len(t.stack)-1]
				continue
			}
			if t.strength.At(f.r, f.c) > t.low {
				t.edges.Set(f.r, f.c, confirmed)
			} else {
				t.edges.Set(f.r, f.c, provisional)
			}
		}
		if f.next < len(neighborOffsets) {
			d := neighborOffsets[f.next]
			f.next++
			nr, nc := f.r+d[0], f.c+d[1]
			if !t.edges.InBounds(nr, nc) {
				continue
			}
			// f may dangle after append; it is re-taken next iteration.
			t.stack = append(t.stack, frame{r: nr, c: nc, level: f.level + 1})
			continue
		}
		if !f.childMark && f.level > 0 && t.thin > 0 && f.level%t.thin != 0 {
			t.edges.Set(f.r, f.c, provisional)
		}
		t.stack = t.stack[:len(t.stack)-1]
		if n := len(t.stack); n > 0 {
			t.stack[n-1].childMark = true
		}
	}
}
