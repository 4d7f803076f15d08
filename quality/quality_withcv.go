//go:build withcv
// +build withcv

/*
DESCRIPTION
  quality_withcv.go implements Analyzer using gocv's accelerated Mat
  statistics and filtering, mirroring the sharpness/contrast scoring in
  cmd/rv/probe.go's turbidity probe.

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

package quality

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Analyzer computes scalar quality metrics from a single-channel 8-bit
// grayscale image.
type Analyzer interface {
	// Contrast returns clamp(stddev(gray)/64, 0, 1).
	Contrast(gray gocv.Mat) (float64, error)
	// LaplacianVariance returns the variance of a discrete Laplacian
	// response over gray, in 64-bit float precision.
	LaplacianVariance(gray gocv.Mat) (float64, error)
}

// CVAnalyzer is the production Analyzer, backed by OpenCV via gocv.
type CVAnalyzer struct{}

// New returns the production quality Analyzer.
func New() *CVAnalyzer { return &CVAnalyzer{} }

// Contrast implements Analyzer.
func (a *CVAnalyzer) Contrast(gray gocv.Mat) (float64, error) {
	if gray.Empty() {
		return 0, fmt.Errorf("quality: Contrast: empty image")
	}
	mean := gocv.NewMat()
	defer mean.Close()
	stddev := gocv.NewMat()
	defer stddev.Close()
	gocv.MeanStdDev(gray, &mean, &stddev)
	sigma := stddev.GetDoubleAt(0, 0)
	return Clamp(sigma/64.0, 0, 1), nil
}

// LaplacianVariance implements Analyzer.
func (a *CVAnalyzer) LaplacianVariance(gray gocv.Mat) (float64, error) {
	if gray.Empty() {
		return 0, fmt.Errorf("quality: LaplacianVariance: empty image")
	}
	lap := gocv.NewMat()
	defer lap.Close()
	gocv.Laplacian(gray, &lap, gocv.MatTypeCV64F, 1, 1, 0, gocv.BorderDefault)

	mean := gocv.NewMat()
	defer mean.Close()
	stddev := gocv.NewMat()
	defer stddev.Close()
	gocv.MeanStdDev(lap, &mean, &stddev)
	sigma := stddev.GetDoubleAt(0, 0)
	return sigma * sigma, nil
}
