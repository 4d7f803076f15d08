//go:build withcv
// +build withcv

/*
DESCRIPTION
  orchestrate_withcv.go implements the production Core: it wires the
  Locator, QualityAnalyzer, PatchAnalyzer and Scorer into the single
  Detect call, converting the input Frame to BGR/grayscale via gocv the
  way filter/diff.go converts frames before differencing, and releasing
  every native Mat on every exit path via defer, following the
  scoped-Close discipline in filter/mog.go's Close method.

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

package orchestrate

import (
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"gocv.io/x/gocv"

	"github.com/ausocean/colorcheck/config"
	"github.com/ausocean/colorcheck/geom"
	"github.com/ausocean/colorcheck/locate"
	"github.com/ausocean/colorcheck/patch"
	"github.com/ausocean/colorcheck/quality"
	"github.com/ausocean/colorcheck/score"
	"github.com/ausocean/utils/logging"
)

var (
	nativeInitDone atomic.Bool
	nativeInitMu   sync.Mutex
)

// ensureNativeInit performs the one-time, process-wide initialization of
// the underlying OpenCV runtime, guarded by double-checked locking so
// that concurrent first calls to New (which runs it) do not race each
// other.
func ensureNativeInit() {
	if nativeInitDone.Load() {
		return
	}
	nativeInitMu.Lock()
	defer nativeInitMu.Unlock()
	if nativeInitDone.Load() {
		return
	}
	gocv.SetNumThreads(0) // let OpenCV pick the thread count for the process.
	nativeInitDone.Store(true)
}

// Core sequences the detection pipeline's five capabilities into one
// Detect call.
type Core struct {
	cfg     config.Config
	log     logging.Logger
	locator locate.Locator
	quality quality.Analyzer
	patch   patch.Analyzer
	scorer  score.Scorer
}

// New returns a production Core. The caller must Close it when done.
func New(cfg config.Config) (*Core, error) {
	ensureNativeInit()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Core{
		cfg:     cfg,
		log:     cfg.Logger,
		locator: locate.New(cfg),
		quality: quality.New(),
		patch:   patch.New(cfg),
		scorer:  score.New(cfg),
	}, nil
}

// Close releases the Locator's native detector resources.
func (c *Core) Close() error {
	return c.locator.Close()
}

// Detect runs the full pipeline on f and returns its DetectionOutput.
// Detect is not reentrant; callers must serialize calls on a given Core.
func (c *Core) Detect(f Frame) score.DetectionOutput {
	if err := f.Validate(); err != nil {
		c.logError("invalid frame", err)
		return score.DetectionOutput{Confidence: 0, Failure: score.FailureNotFound, NeedsInput: true}
	}

	out, err := c.detect(f)
	if err != nil {
		c.logError("detect fault", err)
		return score.DetectionOutput{Confidence: 0, Failure: score.FailureNotFound, NeedsInput: true}
	}
	return out
}

func (c *Core) logError(msg string, err error) {
	if c.log != nil {
		c.log.Error(msg, "error", err.Error())
	}
}

// detect performs steps 1-13 of the Orchestrator contract. Every native
// Mat it acquires is released via defer on this function's return,
// regardless of which exit path is taken.
func (c *Core) detect(f Frame) (score.DetectionOutput, error) {
	rgba, err := gocv.NewMatFromBytes(f.Height, f.Width, gocv.MatTypeCV8UC4, f.Pixels[:f.Width*f.Height*4])
	if err != nil {
		return score.DetectionOutput{}, fmt.Errorf("orchestrate: wrap pixels: %w", err)
	}
	defer rgba.Close()

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(rgba, &bgr, gocv.ColorRGBAToBGR)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(bgr, &gray, gocv.ColorBGRToGray)

	k := c.cfg.GaussianKernel
	gocv.GaussianBlur(gray, &gray, image.Pt(k, k), 0, 0, gocv.BorderDefault)

	lapVar, err := c.quality.LaplacianVariance(gray)
	if err != nil {
		return score.DetectionOutput{}, fmt.Errorf("orchestrate: laplacian variance: %w", err)
	}

	quads, err := c.locator.LocateAll(bgr)
	if err != nil {
		return score.DetectionOutput{}, fmt.Errorf("orchestrate: locate: %w", err)
	}
	if len(quads) == 0 {
		return score.DetectionOutput{Confidence: 0, Failure: score.FailureNotFound, NeedsInput: false}, nil
	}

	ranked := locate.SortByAreaDescending(quads)
	primary := ranked[0]
	var secondary geom.Quad
	hasSecondary := len(ranked) > 1
	if hasSecondary {
		secondary = ranked[1]
	}

	orderedPrimary := geom.OrderCorners(primary)

	patchScores, err := c.patch.ScorePatches(bgr, primary)
	if err != nil {
		return score.DetectionOutput{}, fmt.Errorf("orchestrate: score patches: %w", err)
	}

	primaryBBox := geom.BBox(orderedPrimary)

	var orderedSecondary geom.Quad
	var secondaryValid bool
	if hasSecondary {
		orderedSecondary = geom.OrderCorners(secondary)
		secondaryValid, err = c.patch.ValidateGrayscalePanel(bgr, secondary)
		if err != nil {
			return score.DetectionOutput{}, fmt.Errorf("orchestrate: validate grayscale panel: %w", err)
		}
	}

	contrast, err := c.quality.Contrast(gray)
	if err != nil {
		return score.DetectionOutput{}, fmt.Errorf("orchestrate: contrast: %w", err)
	}

	return c.scorer.Score(
		f.Width, f.Height,
		primaryBBox,
		lapVar, contrast,
		patchScores,
		orderedPrimary, orderedSecondary,
		secondaryValid,
		f.RotationDegrees,
	), nil
}
