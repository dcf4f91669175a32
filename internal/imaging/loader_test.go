package imaging

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/edgetools/shencastan/internal/grid"
)

func TestSaveEdges_RoundTrip(t *testing.T) {
	edges, err := grid.New(6, 8)
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	edges.Set(2, 3, 255)
	edges.Set(4, 5, 255)

	path := filepath.Join(t.TempDir(), "edges.png")
	if err := SaveEdges(path, edges); err != nil {
		t.Fatalf("SaveEdges failed: %v", err)
	}

	loaded, err := LoadGrid(path)
	if err != nil {
		t.Fatalf("LoadGrid failed: %v", err)
	}
	if loaded.Rows() != 6 || loaded.Cols() != 8 {
		t.Fatalf("dimensions: got %dx%d, want 6x8", loaded.Rows(), loaded.Cols())
	}

	for r := 0; r < 6; r++ {
		for c := 0; c < 8; c++ {
			want := 0.0
			if (r == 2 && c == 3) || (r == 4 && c == 5) {
				want = 255.0
			}
			if got := loaded.At(r, c); math.Abs(got-want) > 1e-6 {
				t.Errorf("cell (%d,%d): got %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestSaveImage_JPEG(t *testing.T) {
	edges, err := grid.New(10, 10)
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.jpg")
	if err := SaveImage(path, ToGray(edges)); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	// JPEG is lossy; only shape survives exactly.
	loaded, err := LoadGrid(path)
	if err != nil {
		t.Fatalf("LoadGrid failed: %v", err)
	}
	if loaded.Rows() != 10 || loaded.Cols() != 10 {
		t.Errorf("dimensions: got %dx%d, want 10x10", loaded.Rows(), loaded.Cols())
	}
}

func TestLoadGrid_MissingFile(t *testing.T) {
	if _, err := LoadGrid(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
