package detect

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/edgetools/shencastan/internal/grid"
)

// Detector runs the four-stage Shen-Castan pipeline with a fixed
// configuration. A Detector is immutable after construction and safe for
// concurrent use on different grids.
type Detector struct {
	cfg     Config
	workers int
	log     zerolog.Logger
}

// Option adjusts detector construction.
type Option func(*Detector)

// WithLogger attaches a structured logger; the detector emits per-stage
// debug events with durations. The default logger discards everything, so
// the library stays silent unless asked.
func WithLogger(log zerolog.Logger) Option {
	return func(d *Detector) { d.log = log }
}

// WithWorkers sets the number of goroutines used for the independent
// smoothing lines. Values below 2 keep smoothing sequential. Tracing always
// runs seeds sequentially: flood fills from different seeds may contend for
// the same pixels.
func WithWorkers(n int) Option {
	return func(d *Detector) {
		if n > 1 {
			d.workers = n
		}
	}
}

// New validates cfg and builds a Detector.
func New(cfg Config, opts ...Option) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Detector{
		cfg:     cfg,
		workers: 1,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Result carries the final binary edge map together with the intermediate
// candidate strength grid, which Summarize consumes.
type Result struct {
	// Edges holds 255.0 at confirmed edge pixels and 0.0 elsewhere.
	Edges *grid.Grid
	// Strength is the zero-crossing candidate strength grid.
	Strength *grid.Grid
}

// Detect runs the full pipeline on src and returns the {0, 255} edge grid.
// Any stage failure aborts the invocation; there is no partial result.
func (d *Detector) Detect(src *grid.Grid) (*grid.Grid, error) {
	res, err := d.Run(src)
	if err != nil {
		return nil, err
	}
	return res.Edges, nil
}

// Run is Detect with the intermediate candidate strengths exposed.
func (d *Detector) Run(src *grid.Grid) (*Result, error) {
	rows, cols := src.Rows(), src.Cols()
	if d.cfg.Outline >= (rows+1)/2 || d.cfg.Outline >= (cols+1)/2 {
		return nil, fmt.Errorf("%w: outline %d on %dx%d grid", ErrOutlineTooLarge, d.cfg.Outline, rows, cols)
	}

	low, high := d.cfg.LowThreshold, d.cfg.HighThreshold
	if !d.cfg.Hysteresis {
		low = high
	}

	start := time.Now()
	smoothed := Smooth(src, d.cfg.SmoothFactor, d.workers)
	d.stageDone("isef", start)

	start = time.Now()
	laplacian, err := BinaryLaplacian(src, smoothed)
	if err != nil {
		return nil, err
	}
	d.stageDone("binary_laplacian", start)

	start = time.Now()
	strength, err := LocateCandidates(smoothed, laplacian, d.cfg.Outline, d.cfg.WindowSize)
	if err != nil {
		return nil, err
	}
	d.stageDone("zero_crossings", start)

	start = time.Now()
	edges := TraceEdges(strength, d.cfg.Outline, low, high, d.cfg.ThinFactor)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if edges.At(r, c) > 0 {
				edges.Set(r, c, 255)
			} else {
				edges.Set(r, c, 0)
			}
		}
	}
	d.stageDone("trace", start)

	return &Result{Edges: edges, Strength: strength}, nil
}

func (d *Detector) stageDone(name string, start time.Time) {
	d.log.Debug().Str("stage", name).Dur("elapsed", time.Since(start)).Msg("stage complete")
}
