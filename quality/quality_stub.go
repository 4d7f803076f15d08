//go:build !withcv
// +build !withcv

/*
DESCRIPTION
  quality_stub.go provides a pure-Go fallback Analyzer for builds without
  OpenCV linked (e.g. CI), following filter/filters_circleci.go's
  precedent of a CI-safe stand-in. Unlike the Locator/PatchAnalyzer
  stand-ins, this one is a genuine alternate implementation: contrast and
  Laplacian variance are simple enough to compute honestly in pure Go.

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

package quality

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Analyzer computes scalar quality metrics from a single-channel 8-bit
// grayscale image, given as a row-major pixel buffer plus dimensions.
type Analyzer interface {
	Contrast(gray []byte, w, h int) (float64, error)
	LaplacianVariance(gray []byte, w, h int) (float64, error)
}

// PureAnalyzer is the OpenCV-free fallback Analyzer.
type PureAnalyzer struct{}

// New returns the fallback quality Analyzer.
func New() *PureAnalyzer { return &PureAnalyzer{} }

// Contrast implements Analyzer.
func (a *PureAnalyzer) Contrast(gray []byte, w, h int) (float64, error) {
	if len(gray) < w*h || w <= 0 || h <= 0 {
		return 0, fmt.Errorf("quality: Contrast: buffer too small for %dx%d", w, h)
	}
	vals := make([]float64, w*h)
	for i, p := range gray[:w*h] {
		vals[i] = float64(p)
	}
	sigma := stat.StdDev(vals, nil)
	return Clamp(sigma/64.0, 0, 1), nil
}

// LaplacianVariance implements Analyzer. It applies the standard discrete
// Laplacian kernel [[0,1,0],[1,-4,1],[0,1,0]] and returns the variance of
// the response. Coordinates outside the image are clamped to the nearest
// edge pixel, so a uniform image has a zero response everywhere.
func (a *PureAnalyzer) LaplacianVariance(gray []byte, w, h int) (float64, error) {
	if len(gray) < w*h || w <= 0 || h <= 0 {
		return 0, fmt.Errorf("quality: LaplacianVariance: buffer too small for %dx%d", w, h)
	}
	at := func(x, y int) float64 {
		x = min(max(x, 0), w-1)
		y = min(max(y, 0), h-1)
		return float64(gray[y*w+x])
	}
	resp := make([]float64, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := at(x-1, y) + at(x+1, y) + at(x, y-1) + at(x, y+1) - 4*at(x, y)
			resp = append(resp, v)
		}
	}
	return stat.Variance(resp, nil), nil
}
