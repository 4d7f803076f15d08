//go:build !withcv
// +build !withcv

/*
DESCRIPTION
  orchestrate_stub.go implements Core for builds without OpenCV linked.
  It wires quality's genuine pure-Go Analyzer fallback together with
  locate's and patch's non-functional stand-ins, following
  filter/filters_circleci.go's precedent: the package stays importable
  and testable in CI, but any frame submitted to it will observe the
  Locator finding zero quads and so report NotFound.

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

package orchestrate

import (
	"github.com/ausocean/colorcheck/config"
	"github.com/ausocean/colorcheck/locate"
	"github.com/ausocean/colorcheck/patch"
	"github.com/ausocean/colorcheck/quality"
	"github.com/ausocean/colorcheck/score"
	"github.com/ausocean/utils/logging"
)

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

// New returns the CI-safe Core. The caller must Close it when done.
func New(cfg config.Config) (*Core, error) {
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

// Close implements the same resource contract as the production Core.
func (c *Core) Close() error {
	return c.locator.Close()
}

// Detect validates f, asks the stand-in Locator for candidates (always
// none), and reports NotFound without ever calling into patch or
// quality's grayscale panel paths -- matching step 6 of the Orchestrator
// contract for the empty-quads case.
func (c *Core) Detect(f Frame) score.DetectionOutput {
	if err := f.Validate(); err != nil {
		c.logError("invalid frame", err)
		return score.DetectionOutput{Confidence: 0, Failure: score.FailureNotFound, NeedsInput: true}
	}

	quads, err := c.locator.LocateAll(f.Pixels, f.Width, f.Height)
	if err != nil {
		c.logError("locate fault", err)
		return score.DetectionOutput{Confidence: 0, Failure: score.FailureNotFound, NeedsInput: true}
	}
	if len(quads) == 0 {
		return score.DetectionOutput{Confidence: 0, Failure: score.FailureNotFound, NeedsInput: false}
	}

	// Unreachable while locator is the NoOp stand-in; kept so the full
	// pipeline shape is in place for a future non-gocv Locator.
	return score.DetectionOutput{Confidence: 0, Failure: score.FailureNotFound, NeedsInput: false}
}

func (c *Core) logError(msg string, err error) {
	if c.log != nil {
		c.log.Error(msg, "error", err.Error())
	}
}
