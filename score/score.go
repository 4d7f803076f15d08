/*
DESCRIPTION
  score.go blends the geometric and photometric metrics produced by the
  rest of the pipeline into a single confidence value and a categorical
  failure reason, following the threshold-ladder style of
  revid/pipeline.go's state-transition logic (first-match-wins
  classification over a small set of named conditions).

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

// Package score blends geometric and photometric metrics into a
// confidence value and classifies detection failures.
package score

import (
	"github.com/ausocean/colorcheck/config"
	"github.com/ausocean/colorcheck/geom"
	"github.com/ausocean/colorcheck/patch"
	"github.com/ausocean/colorcheck/quality"
)

// Failure is the categorical reason a detection did not pass, or
// FailureNone if it did.
type Failure int

const (
	FailureNone Failure = iota
	FailureNotFound
	FailureLighting
	FailureBlur
	FailurePartial
)

// String implements fmt.Stringer.
func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "NONE"
	case FailureNotFound:
		return "NOT_FOUND"
	case FailureLighting:
		return "LIGHTING"
	case FailureBlur:
		return "BLUR"
	case FailurePartial:
		return "PARTIAL"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON implements json.Marshaler, encoding Failure as the
// failure_reason enum name from spec §6 rather than its int value.
func (f Failure) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

// Metrics holds every intermediate and derived score of one detection
// call. It is only produced once a chart was found; when no chart was
// found DetectionOutput.Metrics is nil.
type Metrics struct {
	AreaScore     float64 `json:"area_score"`
	AspectScore   float64 `json:"aspect_score"`
	ContrastScore float64 `json:"contrast_score"`
	BlurScore     float64 `json:"blur_score"`
	ColorScore    float64 `json:"color_score"`
	AvgDeltaE     float64 `json:"avg_delta_e"`
	MaxDeltaE     float64 `json:"max_delta_e"`

	PrimaryQuad     geom.Quad `json:"primary_quad"`
	SecondaryQuad   geom.Quad `json:"secondary_quad"`
	SecondaryValid  bool      `json:"secondary_valid"`
	FrameWidth      int       `json:"frame_width"`
	FrameHeight     int       `json:"frame_height"`
	RotationDegrees int       `json:"rotation_degrees"`
}

// DetectionOutput is the result of one Orchestrator.Detect call.
type DetectionOutput struct {
	Confidence float32  `json:"confidence"`
	Failure    Failure  `json:"failure_reason"`
	NeedsInput bool     `json:"needs_input"`
	Metrics    *Metrics `json:"metrics"` // nil when the frame failed validation or a chart was never found.
}

// Scorer blends metrics into a DetectionOutput.
type Scorer interface {
	Score(
		frameW, frameH int,
		bbox geom.BoundingBox,
		lapVar, contrastScore float64,
		patchScores patch.PatchScores,
		orderedPrimary, orderedSecondary geom.Quad,
		secondaryValid bool,
		rotationDegrees int,
	) DetectionOutput
}

// Default is the production Scorer, implementing the confidence blend
// and failure ladder of spec §4.5.
type Default struct {
	cfg config.Config
}

// New returns a production Scorer configured by cfg.
func New(cfg config.Config) *Default {
	return &Default{cfg: cfg}
}

// Score implements Scorer.
func (s *Default) Score(
	frameW, frameH int,
	bbox geom.BoundingBox,
	lapVar, contrastScore float64,
	patchScores patch.PatchScores,
	orderedPrimary, orderedSecondary geom.Quad,
	secondaryValid bool,
	rotationDegrees int,
) DetectionOutput {
	areaScore := 0.0
	if frameW > 0 && frameH > 0 {
		areaScore = (bbox.Width * bbox.Height) / float64(frameW*frameH)
	}

	aspect := bbox.Width / maxFloat(bbox.Height, 1)
	aspectScore := quality.Clamp(1-absFloat(aspect-s.cfg.ExpectedAspect)/s.cfg.ExpectedAspect, 0, 1)

	blurScore := quality.Clamp(lapVar/s.cfg.BlurReference, 0, 1)

	avgColorSub := quality.Clamp(1-patchScores.AvgDeltaE/s.cfg.PassAverageDeltaE, 0, 1)
	maxColorSub := quality.Clamp(1-patchScores.MaxDeltaE/s.cfg.PassMaxDeltaE, 0, 1)
	colorScore := quality.Clamp(0.7*avgColorSub+0.3*maxColorSub, 0, 1)

	boostedArea := quality.Clamp(areaScore*s.cfg.AreaBoostFactor, 0, 1)

	confidence := 0.7*boostedArea + 0.1*aspectScore + 0.05*contrastScore + 0.05*blurScore + 0.1*colorScore

	failure := classify(s.cfg, blurScore, areaScore, contrastScore, patchScores.AvgDeltaE)
	needsInput := failure == FailureNotFound

	return DetectionOutput{
		Confidence: float32(confidence),
		Failure:    failure,
		NeedsInput: needsInput,
		Metrics: &Metrics{
			AreaScore:       areaScore,
			AspectScore:     aspectScore,
			ContrastScore:   contrastScore,
			BlurScore:       blurScore,
			ColorScore:      colorScore,
			AvgDeltaE:       patchScores.AvgDeltaE,
			MaxDeltaE:       patchScores.MaxDeltaE,
			PrimaryQuad:     orderedPrimary,
			SecondaryQuad:   orderedSecondary,
			SecondaryValid:  secondaryValid,
			FrameWidth:      frameW,
			FrameHeight:     frameH,
			RotationDegrees: rotationDegrees,
		},
	}
}

// classify applies the first-match-wins failure ladder of spec §4.5.
func classify(cfg config.Config, blurScore, areaScore, contrastScore, avgDeltaE float64) Failure {
	switch {
	case blurScore < cfg.BlurLowThresh:
		return FailureBlur
	case areaScore < cfg.AreaLowThresh:
		return FailurePartial
	case contrastScore < cfg.ContrastLowThresh:
		return FailureLighting
	case avgDeltaE > cfg.NotFoundDeltaEGuard():
		return FailureNotFound
	default:
		return FailureNone
	}
}

// Passes reports whether out represents a passing detection: confidence
// at or above the configured threshold, no failure, and no input needed.
func Passes(out DetectionOutput, cfg config.Config) bool {
	return out.Confidence >= float32(cfg.ConfidenceThreshold) && out.Failure == FailureNone && !out.NeedsInput
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
