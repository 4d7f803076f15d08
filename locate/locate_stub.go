//go:build !withcv
// +build !withcv

/*
DESCRIPTION
  locate_stub.go provides a non-functional Locator stand-in for builds
  without OpenCV linked, following filter/filters_circleci.go's pattern.
  Contour-based quad extraction is fundamentally a gocv operation in this
  codebase; there is no meaningful CI-safe alternative, so this Locator
  always returns an empty candidate list.

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

package locate

import (
	"github.com/ausocean/colorcheck/config"
	"github.com/ausocean/colorcheck/geom"
)

// Locator finds candidate chart quadrilaterals in an image buffer.
type Locator interface {
	LocateAll(bgr []byte, w, h int) ([]geom.Quad, error)
	Close() error
}

// NoOpLocator is the non-functional stand-in Locator used when OpenCV is
// not linked. It always reports zero candidates, which the Orchestrator
// correctly maps to a NotFound result.
type NoOpLocator struct {
	cfg config.Config
}

// New returns the stand-in Locator.
func New(cfg config.Config) *NoOpLocator {
	return &NoOpLocator{cfg: cfg}
}

// Close implements Locator.
func (d *NoOpLocator) Close() error { return nil }

// LocateAll implements Locator. It always returns no candidates.
func (d *NoOpLocator) LocateAll(bgr []byte, w, h int) ([]geom.Quad, error) {
	return nil, nil
}
