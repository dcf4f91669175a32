package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/edgetools/shencastan/internal/detect"
	"github.com/edgetools/shencastan/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := detect.DefaultConfig()

	in := flag.String("in", "", "input image (PNG, JPEG, GIF, BMP, TIFF)")
	out := flag.String("out", "edges.png", "output edge map image")
	overlay := flag.String("overlay", "", "optional path for a colored edge overlay of the input")
	overlayColor := flag.String("color", "#FF0040", "overlay edge color as #RRGGBB")
	workers := flag.Int("workers", 1, "goroutines for the smoothing passes")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	version := flag.Bool("version", false, "print version information")

	flag.Float64Var(&cfg.SmoothFactor, "smooth", cfg.SmoothFactor, "ISEF smoothing factor, 0 < s < 1")
	flag.IntVar(&cfg.WindowSize, "window", cfg.WindowSize, "adaptive gradient window size (positive even)")
	flag.IntVar(&cfg.Outline, "outline", cfg.Outline, "border margin excluded from processing")
	flag.Float64Var(&cfg.LowThreshold, "low", cfg.LowThreshold, "low hysteresis threshold")
	flag.Float64Var(&cfg.HighThreshold, "high", cfg.HighThreshold, "high hysteresis threshold")
	flag.BoolVar(&cfg.Hysteresis, "hysteresis", cfg.Hysteresis, "enable dual-threshold hysteresis")
	flag.IntVar(&cfg.ThinFactor, "thin", cfg.ThinFactor, "thinning factor (0 disables)")
	flag.Parse()

	if *version {
		fmt.Printf("shencastan %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(log, cfg, *in, *out, *overlay, *overlayColor, *workers); err != nil {
		log.Error().Err(err).Msg("edge detection failed")
		os.Exit(1)
	}
}

func run(log zerolog.Logger, cfg detect.Config, in, out, overlay, overlayColor string, workers int) error {
	det, err := detect.New(cfg, detect.WithLogger(log), detect.WithWorkers(workers))
	if err != nil {
		return err
	}

	img, err := imaging.LoadImage(in)
	if err != nil {
		return err
	}
	src, err := imaging.FromImage(img)
	if err != nil {
		return err
	}
	log.Info().Str("input", in).Int("rows", src.Rows()).Int("cols", src.Cols()).Msg("image loaded")

	res, err := det.Run(src)
	if err != nil {
		return err
	}

	sum := detect.Summarize(res)
	log.Info().
		Int("edge_pixels", sum.EdgePixels).
		Float64("edge_density", sum.EdgeDensity).
		Int("candidates", sum.Candidates).
		Float64("mean_strength", sum.Mean).
		Float64("max_strength", sum.Max).
		Msg("detection complete")

	if err := imaging.SaveEdges(out, res.Edges); err != nil {
		return err
	}
	log.Info().Str("output", out).Msg("edge map written")

	if overlay != "" {
		ov, err := imaging.Overlay(img, res.Edges, overlayColor)
		if err != nil {
			return err
		}
		if err := imaging.SaveImage(overlay, ov); err != nil {
			return err
		}
		log.Info().Str("output", overlay).Msg("overlay written")
	}
	return nil
}
