package detect

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration validation.
var (
	// ErrSmoothingFactor indicates a smoothing factor outside (0, 1).
	ErrSmoothingFactor = errors.New("detect: smoothing factor must be in (0, 1)")
	// ErrWindowSize indicates a gradient window that is not a positive even integer.
	ErrWindowSize = errors.New("detect: window size must be a positive even integer")
	// ErrOutline indicates a negative border margin.
	ErrOutline = errors.New("detect: outline must be non-negative")
	// ErrThresholdOrder indicates low > high while hysteresis is enabled.
	ErrThresholdOrder = errors.New("detect: low threshold must not exceed high threshold")
	// ErrThinFactor indicates a negative thinning factor.
	ErrThinFactor = errors.New("detect: thin factor must be non-negative")
	// ErrOutlineTooLarge indicates a border margin that excludes every pixel
	// of the grid being processed.
	ErrOutlineTooLarge = errors.New("detect: outline excludes the entire grid")
)

// Config holds the tunable parameters of the detector.
type Config struct {
	// SmoothFactor is the ISEF smoothing factor s, 0 < s < 1. Larger values
	// smooth more aggressively.
	SmoothFactor float64

	// WindowSize is the side of the square window used for the adaptive
	// gradient estimate. Must be a positive even integer; the window spans
	// [-WindowSize/2, WindowSize/2) around the candidate in both axes.
	WindowSize int

	// Outline is the width of the border margin excluded from processing.
	// Must satisfy Outline < rows/2 and Outline < cols/2 for the grid being
	// processed, or no pixel survives the exclusion.
	Outline int

	// LowThreshold and HighThreshold are the hysteresis thresholds on
	// candidate strength. Seeds require strength above HighThreshold;
	// connected pixels are confirmed above LowThreshold.
	LowThreshold  float64
	HighThreshold float64

	// Hysteresis enables dual-threshold confirmation. When false, the low
	// threshold collapses to the high threshold and only seed-strength
	// pixels are confirmed.
	Hysteresis bool

	// ThinFactor controls periodic demotion of chain-end pixels during
	// tracing. 0 disables thinning; k > 0 demotes a chain end reached at
	// recursion level L whenever L mod k != 0.
	ThinFactor int
}

// DefaultConfig returns a configuration suitable for 8-bit intensity grids
// (samples in 0..255).
func DefaultConfig() Config {
	return Config{
		SmoothFactor:  0.9,
		WindowSize:    6,
		Outline:       4,
		LowThreshold:  20,
		HighThreshold: 30,
		Hysteresis:    true,
		ThinFactor:    0,
	}
}

// Validate checks the grid-independent constraints. The outline-vs-grid
// constraint is checked when the detector runs, since it depends on the
// input dimensions.
func (c Config) Validate() error {
	if c.SmoothFactor <= 0 || c.SmoothFactor >= 1 {
		return fmt.Errorf("%w: got %v", ErrSmoothingFactor, c.SmoothFactor)
	}
	if c.WindowSize <= 0 || c.WindowSize%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrWindowSize, c.WindowSize)
	}
	if c.Outline < 0 {
		return fmt.Errorf("%w: got %d", ErrOutline, c.Outline)
	}
	if c.Hysteresis && c.LowThreshold > c.HighThreshold {
		return fmt.Errorf("%w: low %v > high %v", ErrThresholdOrder, c.LowThreshold, c.HighThreshold)
	}
	if c.ThinFactor < 0 {
		return fmt.Errorf("%w: got %d", ErrThinFactor, c.ThinFactor)
	}
	return nil
}
