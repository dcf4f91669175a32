package imaging

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/edgetools/shencastan/internal/grid"
)

// LoadImage reads an image file (PNG, JPEG, GIF, BMP or TIFF) with EXIF
// orientation applied.
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}

// LoadGrid reads an image file and converts it to an intensity grid.
func LoadGrid(path string) (*grid.Grid, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// SaveImage writes an image to path; the encoder is chosen from the file
// extension (.png, .jpg/.jpeg, default PNG).
func SaveImage(path string, img image.Image) error {
	if err := imgio.Save(path, img, encoderFor(path)); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// SaveEdges renders an edge grid as a binary grayscale image and writes it
// to path.
func SaveEdges(path string, edges *grid.Grid) error {
	return SaveImage(path, ToGray(edges))
}

func encoderFor(path string) imgio.Encoder {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(95)
	default:
		return imgio.PNGEncoder()
	}
}
