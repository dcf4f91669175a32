// Package detect implements the Shen-Castan edge detector.
//
// The detector is a four-stage pipeline over dense 2D float grids:
//
//  1. ISEF smoothing: a separable two-pass (rows, then columns) recursive
//     exponential filter (the Infinite Symmetric Exponential Filter)
//     producing a denoised copy of the input intensities.
//
//  2. Binary Laplacian: an elementwise band-limited Laplacian approximation,
//     1.0 where the smoothed value exceeds the original and 0.0 elsewhere.
//
//  3. Zero-crossing location: each pixel outside the border margin is tested
//     against four priority-ordered directional sign-change patterns; pixels
//     that qualify receive a signed candidate strength computed as the
//     difference of windowed Laplacian-on / Laplacian-off intensity averages.
//
//  4. Edge tracing: an 8-connected flood fill seeded at pixels whose strength
//     exceeds the high threshold, confirming connected pixels above the low
//     threshold (hysteresis) and optionally demoting periodic chain-end
//     pixels (thinning). Provisional marks are stripped, and the driver
//     normalizes the result to a {0, 255} edge map.
//
// # Traversal
//
// The edge tracer uses an explicit frame stack rather than call-stack
// recursion, so traversal depth is bounded by heap memory, not goroutine
// stack size. A fully bright input cannot exhaust the stack.
//
// # Border Handling
//
// A configurable margin (Config.Outline) around the grid perimeter is never
// examined by the locator or the tracer, so neighbor and window lookups stay
// inside the grid. Border pixels are always 0 in the output.
//
// # Concurrency
//
// Detectors are stateless between calls and safe for concurrent use on
// different grids. The smoothing passes can optionally run lines on multiple
// workers (WithWorkers); smoothing lines are mutually independent, so no
// coordination is needed. Tracing always runs seeds sequentially.
package detect
