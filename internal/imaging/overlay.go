package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/edgetools/shencastan/internal/grid"
)

// Overlay paints detected edges over a desaturated copy of the source
// image. The source is converted to grayscale so the edge color stands out
// regardless of the original content; every pixel whose edge-grid cell is
// above zero is replaced with the given color.
//
// hexColor takes "#RRGGBB" form (e.g. "#FF0040"). Returns an error when the
// color cannot be parsed or when the edge grid does not match the image
// dimensions.
func Overlay(src image.Image, edges *grid.Grid, hexColor string) (*image.RGBA, error) {
	edgeColor, err := colorful.Hex(hexColor)
	if err != nil {
		return nil, fmt.Errorf("invalid overlay color %q: %w", hexColor, err)
	}

	bounds := src.Bounds()
	if bounds.Dy() != edges.Rows() || bounds.Dx() != edges.Cols() {
		return nil, fmt.Errorf("overlay: %dx%d image vs %dx%d edge grid: %w",
			bounds.Dx(), bounds.Dy(), edges.Cols(), edges.Rows(), grid.ErrShapeMismatch)
	}

	out := effect.Grayscale(src)
	cr, cg, cb := edgeColor.RGB255()
	mark := color.RGBA{R: cr, G: cg, B: cb, A: 255}
	for r := 0; r < edges.Rows(); r++ {
		for c := 0; c < edges.Cols(); c++ {
			if edges.At(r, c) > 0 {
				out.SetRGBA(c, r, mark)
			}
		}
	}
	return out, nil
}
