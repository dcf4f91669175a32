// Package grid provides the shared 2D float buffer used by every stage of
// the edge detection pipeline.
//
// A Grid is a fixed-size rows × cols array of float64 samples stored in a
// single row-major backing slice. Grids are created once (from a 2D slice or
// zero-filled by dimensions) and handed between pipeline stages; each stage
// writes exactly one grid and only reads the grids it receives.
//
// # Coordinate System
//
// Cells are addressed as (row, col), 0-based, with row 0 at the top. This
// matches the image convention used elsewhere in the module: row = Y,
// col = X.
//
// # Shape Invariant
//
// Every grid derived from an input grid shares its dimensions. Stages assert
// this with SameShape at their boundaries; a violation is a programming
// error surfaced as ErrShapeMismatch rather than silently producing a
// misaligned result.
package grid
