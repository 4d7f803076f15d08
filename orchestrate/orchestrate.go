/*
DESCRIPTION
  orchestrate.go defines the Frame input type and its validation, the one
  part of the Orchestrator that has no dependency on gocv and so can be
  shared unconditionally between the withcv and !withcv builds.

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

// Package orchestrate sequences the Locator, QualityAnalyzer,
// PatchAnalyzer and Scorer components into the single detect call
// exposed to callers.
package orchestrate

import "github.com/pkg/errors"

// Frame is one input image to Detect: row-major RGBA8, R,G,B,A octets,
// 4 bytes per pixel. The alpha channel is ignored by the pipeline.
type Frame struct {
	Width           int
	Height          int
	RotationDegrees int // One of 0, 90, 180, 270. Informational only.
	Pixels          []byte
}

// Validate reports whether f has positive dimensions and a pixel buffer
// of at least Width*Height*4 bytes. Excess trailing bytes are permitted.
func (f Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return errors.Errorf("orchestrate: invalid frame: non-positive dimensions %dx%d", f.Width, f.Height)
	}
	want := f.Width * f.Height * 4
	if len(f.Pixels) < want {
		return errors.Errorf("orchestrate: invalid frame: pixel buffer length %d, want >= %d", len(f.Pixels), want)
	}
	return nil
}
