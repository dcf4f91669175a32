package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/edgetools/shencastan/internal/grid"
)

func TestOverlay(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.White)
		}
	}

	edges, err := grid.New(4, 4)
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	edges.Set(1, 2, 255)

	out, err := Overlay(src, edges, "#FF0000")
	if err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}

	// Edge pixel painted with the requested color; grid (1,2) is image (2,1).
	if got := out.RGBAAt(2, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("edge pixel: got %v, want opaque red", got)
	}
	// Non-edge pixels keep the grayscale base (white stays white).
	if got := out.RGBAAt(0, 0); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("background pixel: got %v, want white", got)
	}
}

func TestOverlay_InvalidColor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	edges, _ := grid.New(2, 2)

	if _, err := Overlay(src, edges, "not-a-color"); err == nil {
		t.Error("expected error for unparseable color")
	}
}

func TestOverlay_ShapeMismatch(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	edges, _ := grid.New(3, 3)

	_, err := Overlay(src, edges, "#00FF00")
	if !errors.Is(err, grid.ErrShapeMismatch) {
		t.Errorf("error = %v, want ErrShapeMismatch", err)
	}
}
