//go:build withcv
// +build withcv

/*
DESCRIPTION
  patch_withcv.go implements the production PatchAnalyzer: it rectifies a
  detected chart quad to the canonical 600x400 grid with gocv's
  perspective-warp primitives (the same GetPerspectiveTransform /
  WarpPerspective pairing used for lens-distortion correction in the
  reference codebase's gocv experiments), converts to CIE L*a*b*, and
  samples each of the 24 cells via Mat.Region().Mean(), following
  filter/diff.go's Mean()-based ROI aggregation.

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

package patch

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ausocean/colorcheck/chartref"
	"github.com/ausocean/colorcheck/config"
	"github.com/ausocean/colorcheck/geom"
)

// Analyzer rectifies a detected chart quad out of a BGR frame, samples its
// 24 reference patches, and scores them against the standard table.
type Analyzer interface {
	// ScorePatches warps bgr's quad region to the canonical grid and
	// returns the average and maximum ΔE2000 across all 24 patches.
	ScorePatches(bgr gocv.Mat, quad geom.Quad) (PatchScores, error)
	// ValidateGrayscalePanel reports whether all 24 patches are
	// sufficiently achromatic (mean and max chroma under the configured
	// limits) and whether their per-row mean luminance quasi-monotonically
	// descends row to row, within the configured slack.
	ValidateGrayscalePanel(bgr gocv.Mat, quad geom.Quad) (bool, error)
}

// CVAnalyzer is the production Analyzer, backed by OpenCV via gocv.
type CVAnalyzer struct {
	cfg config.Config
}

// New returns the production PatchAnalyzer configured by cfg.
func New(cfg config.Config) *CVAnalyzer {
	return &CVAnalyzer{cfg: cfg}
}

// rectify warps the region of bgr bounded by quad to a canonical
// cfg.WarpWidth x cfg.WarpHeight canvas in Lab color space. The caller
// must Close the returned Mat.
//
// Per spec §4.4, ordering the quad's corners is this step's own
// responsibility, not something it may assume the caller already did.
func (a *CVAnalyzer) rectify(bgr gocv.Mat, quad geom.Quad) (gocv.Mat, error) {
	if bgr.Empty() {
		return gocv.NewMat(), fmt.Errorf("patch: rectify: empty image")
	}
	if quad.Empty() {
		return gocv.NewMat(), fmt.Errorf("patch: rectify: empty quad")
	}
	quad = geom.OrderCorners(quad)

	w, h := float32(a.cfg.WarpWidth), float32(a.cfg.WarpHeight)
	src := gocv.NewPoint2fVectorFromPoints([]gocv.Point2f{
		{X: float32(quad[0].X), Y: float32(quad[0].Y)},
		{X: float32(quad[1].X), Y: float32(quad[1].Y)},
		{X: float32(quad[2].X), Y: float32(quad[2].Y)},
		{X: float32(quad[3].X), Y: float32(quad[3].Y)},
	})
	defer src.Close()
	dst := gocv.NewPoint2fVectorFromPoints([]gocv.Point2f{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: h},
		{X: 0, Y: h},
	})
	defer dst.Close()

	transform := gocv.GetPerspectiveTransform(src, dst)
	defer transform.Close()

	warped := gocv.NewMat()
	gocv.WarpPerspective(bgr, &warped, transform, image.Pt(a.cfg.WarpWidth, a.cfg.WarpHeight))
	defer warped.Close()

	lab := gocv.NewMat()
	gocv.CvtColor(warped, &lab, gocv.ColorBGRToLab)
	return lab, nil
}

// sampleGrid reads the mean Lab value of a centered ROI within each cell
// of a Columns x Rows grid over lab, in row-major order, decoding each
// from OpenCV's 8-bit Lab encoding to floating-point CIE L*a*b* as it
// goes.
func (a *CVAnalyzer) sampleGrid(lab gocv.Mat) []LabSample {
	cellW := a.cfg.WarpWidth / chartref.Columns
	cellH := a.cfg.WarpHeight / chartref.Rows
	roiW := cellW / 2
	if roiW < 4 {
		roiW = 4
	}
	roiH := cellH / 2
	if roiH < 4 {
		roiH = 4
	}

	samples := make([]LabSample, 0, chartref.NumPatches)
	for row := 0; row < chartref.Rows; row++ {
		for col := 0; col < chartref.Columns; col++ {
			x := col*cellW + cellW/4
			y := row*cellH + cellH/4
			roi := lab.Region(image.Rect(x, y, x+roiW, y+roiH))
			mean := roi.Mean()
			roi.Close()
			l, aa, bb := DecodeLab8(mean.Val1, mean.Val2, mean.Val3)
			samples = append(samples, LabSample{L: l, A: aa, B: bb})
		}
	}
	return samples
}

// ScorePatches implements Analyzer.
func (a *CVAnalyzer) ScorePatches(bgr gocv.Mat, quad geom.Quad) (PatchScores, error) {
	lab, err := a.rectify(bgr, quad)
	if err != nil {
		return PatchScores{}, err
	}
	defer lab.Close()

	samples := a.sampleGrid(lab)
	deltas := make([]float64, len(samples))
	for i, s := range samples {
		ref := chartref.At(i)
		deltas[i] = DeltaE2000(s.L, s.A, s.B, ref.L, ref.A, ref.B)
	}

	return PatchScores{
		AvgDeltaE: stat.Mean(deltas, nil),
		MaxDeltaE: floats.Max(deltas),
	}, nil
}

// ValidateGrayscalePanel implements Analyzer. It samples all 24 patches
// of the grid and delegates the pass/fail classification to the
// gocv-independent ValidateGrayscaleSamples.
func (a *CVAnalyzer) ValidateGrayscalePanel(bgr gocv.Mat, quad geom.Quad) (bool, error) {
	lab, err := a.rectify(bgr, quad)
	if err != nil {
		return false, err
	}
	defer lab.Close()

	samples := a.sampleGrid(lab)
	return ValidateGrayscaleSamples(
		samples,
		chartref.Columns, chartref.Rows,
		a.cfg.GrayMeanChroma, a.cfg.GrayMaxChroma, a.cfg.LumaDescentSlack,
	), nil
}
