//go:build !withcv
// +build !withcv

/*
DESCRIPTION
  patch_stub.go provides a non-functional Analyzer stand-in for builds
  without OpenCV linked, following filter/filters_circleci.go's pattern of
  swapping in a *NoOp implementation for CI. Unlike quality's pure-Go
  fallback, there is no reasonable non-gocv way to perform perspective
  rectification and grid sampling, so this Analyzer always reports an
  error; its purpose is only to keep the package graph buildable in
  environments without cgo/OpenCV available.

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

package patch

import (
	"fmt"

	"github.com/ausocean/colorcheck/config"
	"github.com/ausocean/colorcheck/geom"
)

// Analyzer rectifies a detected chart quad out of an image buffer, samples
// its 24 reference patches, and scores them against the standard table.
type Analyzer interface {
	ScorePatches(gray []byte, w, h int, quad geom.Quad) (PatchScores, error)
	ValidateGrayscalePanel(gray []byte, w, h int, quad geom.Quad) (bool, error)
}

// NoOpAnalyzer is the non-functional stand-in Analyzer used when OpenCV is
// not linked.
type NoOpAnalyzer struct {
	cfg config.Config
}

// New returns the stand-in PatchAnalyzer.
func New(cfg config.Config) *NoOpAnalyzer {
	return &NoOpAnalyzer{cfg: cfg}
}

// ScorePatches implements Analyzer. It always fails: patch rectification
// requires the perspective-warp primitives gocv provides.
func (a *NoOpAnalyzer) ScorePatches(gray []byte, w, h int, quad geom.Quad) (PatchScores, error) {
	return PatchScores{}, fmt.Errorf("patch: ScorePatches: unavailable without OpenCV (build with -tags withcv)")
}

// ValidateGrayscalePanel implements Analyzer. It always fails, for the
// same reason as ScorePatches.
func (a *NoOpAnalyzer) ValidateGrayscalePanel(gray []byte, w, h int, quad geom.Quad) (bool, error) {
	return false, fmt.Errorf("patch: ValidateGrayscalePanel: unavailable without OpenCV (build with -tags withcv)")
}
