// Package imaging bridges image files and the detector's float grids.
//
// The detector core never touches a file or a color model; this package is
// its external collaborator. It converts decoded images to single-channel
// intensity grids, renders edge grids back to grayscale images or colored
// overlays, and wraps file load/save.
//
// # Coordinate System
//
// Grid (row, col) maps to image (y, x): row 0 is the top image row. All
// pixel coordinates are 0-based.
//
// # Intensity Scale
//
// Intensities are 8-bit scale floats in [0, 255]. Color input collapses to
// luminance using ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B).
package imaging
