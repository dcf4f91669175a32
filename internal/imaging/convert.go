package imaging

import (
	"image"
	"image/color"

	"github.com/edgetools/shencastan/internal/grid"
)

// FromImage converts an image to an intensity grid on the [0, 255] scale.
//
// Color pixels collapse to luminance using ITU-R BT.601 weights
// (0.299*R + 0.587*G + 0.114*B); alpha is ignored. The grid dimensions
// equal the image bounds.
func FromImage(img image.Image) (*grid.Grid, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	g, err := grid.New(height, width)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, gr, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			rf := float64(r >> 8)
			gf := float64(gr >> 8)
			bf := float64(b >> 8)
			g.Set(y, x, 0.299*rf+0.587*gf+0.114*bf)
		}
	}
	return g, nil
}

// ToGray renders a grid as an 8-bit grayscale image. Every cell above zero
// becomes white (255) and all others black, matching the binary edge map
// the detector produces.
func ToGray(g *grid.Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Cols(), g.Rows()))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.At(r, c) > 0 {
				img.SetGray(c, r, color.Gray{Y: 255})
			}
		}
	}
	return img
}
