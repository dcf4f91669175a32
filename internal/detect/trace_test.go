package detect

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgetools/shencastan/internal/grid"
)

// chainStrength builds an 8x8 strength grid with a single horizontal chain
// of candidates at row 3, columns 1 through 6, all above the high threshold.
func chainStrength(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(8, 8)
	require.NoError(t, err)
	for c := 1; c <= 6; c++ {
		g.Set(3, c, 50)
	}
	return g
}

func confirmedCells(g *grid.Grid) [][2]int {
	var cells [][2]int
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.At(r, c) == confirmed {
				cells = append(cells, [2]int{r, c})
			}
		}
	}
	return cells
}

func TestTraceEdges_Chain(t *testing.T) {
	strength := chainStrength(t)

	edges := TraceEdges(strength, 1, 10, 20, 0)
	want := [][2]int{{3, 1}, {3, 2}, {3, 3}, {3, 4}, {3, 5}, {3, 6}}
	assert.Equal(t, want, confirmedCells(edges))
}

func TestTraceEdges_Thinning(t *testing.T) {
	// The chain's only leaf is its far end, reached at traversal level 5;
	// thinning demotes it exactly when 5 mod thin != 0.
	tests := []struct {
		thin    int
		lastCol int
	}{
		{0, 6}, // disabled, leaf survives
		{1, 6}, // 5 mod 1 == 0, leaf survives
		{2, 5}, // 5 mod 2 != 0, leaf demoted
		{3, 5}, // 5 mod 3 != 0, leaf demoted
		{5, 6}, // 5 mod 5 == 0, leaf survives
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("thin=%d", tt.thin), func(t *testing.T) {
			strength := chainStrength(t)
			edges := TraceEdges(strength, 1, 10, 20, tt.thin)

			var want [][2]int
			for c := 1; c <= tt.lastCol; c++ {
				want = append(want, [2]int{3, c})
			}
			assert.Equal(t, want, confirmedCells(edges))
		})
	}
}

func TestTraceEdges_HysteresisPropagation(t *testing.T) {
	g, err := grid.New(8, 8)
	require.NoError(t, err)
	g.Set(3, 3, 50) // strong seed
	g.Set(3, 4, 15) // weak neighbor

	// Weak neighbor below low: provisional, stripped at the end.
	edges := TraceEdges(g, 1, 20, 40, 0)
	assert.Equal(t, [][2]int{{3, 3}}, confirmedCells(edges))

	// Weak neighbor above low: confirmed through its strong connection.
	edges = TraceEdges(g, 1, 10, 40, 0)
	assert.Equal(t, [][2]int{{3, 3}, {3, 4}}, confirmedCells(edges))
}

func TestTraceEdges_NoSeedAboveHigh(t *testing.T) {
	g, err := grid.New(6, 6)
	require.NoError(t, err)
	g.Set(2, 2, 30)
	g.Set(2, 3, 35)

	edges := TraceEdges(g, 1, 10, 40, 0)
	assert.Empty(t, confirmedCells(edges))
}

func TestTraceEdges_NoProvisionalSurvives(t *testing.T) {
	g, err := grid.New(8, 8)
	require.NoError(t, err)
	g.Set(3, 3, 50)
	g.Set(3, 4, 15)
	g.Set(3, 5, 12)

	edges := TraceEdges(g, 1, 20, 40, 0)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			v := edges.At(r, c)
			assert.True(t, v == unvisited || v == confirmed, "cell (%d,%d) = %v", r, c, v)
		}
	}
}

func TestTraceEdges_LargeBrightRegion(t *testing.T) {
	// A fully-bright candidate field is the pathological deep-traversal
	// case; the explicit work stack must handle it without growing the
	// goroutine stack.
	g, err := grid.New(200, 200)
	require.NoError(t, err)
	for r := 1; r < 199; r++ {
		for c := 1; c < 199; c++ {
			g.Set(r, c, 60)
		}
	}

	edges := TraceEdges(g, 1, 10, 20, 0)
	assert.Len(t, confirmedCells(edges), 198*198)
}
