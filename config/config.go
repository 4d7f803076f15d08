/*
DESCRIPTION
  config.go holds the tunable constants of the ColorChecker pipeline and
  the Config struct that carries their runtime values, validated and
  defaulted the way revid/config.Config is in the reference codebase.

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

// Package config provides the configuration constants for the ColorCheck
// detection pipeline.
package config

import "github.com/ausocean/utils/logging"

// Default values for every tunable constant named in the specification.
// These are the compile-time defaults; Validate fills in any zero-valued
// Config field with the matching default and logs the substitution.
const (
	DefaultExpectedAspect     = 1.5
	DefaultBlurReference      = 120.0
	DefaultPassAverageDeltaE  = 24.0
	DefaultPassMaxDeltaE      = 40.0
	DefaultNotFoundGuardScale = 1.3 // NotFound guard = PassAverageDeltaE * this.
	DefaultConfidenceThresh   = 0.70
	DefaultDedupThreshold     = 40.0
	DefaultWarpWidth          = 600
	DefaultWarpHeight         = 400
	DefaultGaussianKernel     = 5
	DefaultGrayMeanChroma     = 55.0
	DefaultGrayMaxChroma      = 90.0
	DefaultLumaDescentSlack   = 2.0
	DefaultAreaBoostFactor    = 8.0
	DefaultMaxQuads           = 8 // Cap on candidate quads returned by LocateAll, both stages combined, after dedup.

	// DefaultBlurLowThresh, DefaultContrastLowThresh and
	// DefaultAreaLowThresh gate the Blur/Lighting/Partial failure
	// classifications in package score.
	DefaultBlurLowThresh     = 0.15
	DefaultContrastLowThresh = 0.08
	DefaultAreaLowThresh     = 0.005
)

// Config carries every tunable constant used by the pipeline. A zero-value
// Config is valid input to Validate, which fills in defaults for any
// unset (zero) field.
type Config struct {
	// Logger receives diagnostic and fault events. Must be set; Validate
	// does not default it, since there's no safe default destination for
	// log output.
	Logger logging.Logger

	ExpectedAspect     float64
	BlurReference      float64
	PassAverageDeltaE   float64
	PassMaxDeltaE       float64
	NotFoundGuardScale  float64
	ConfidenceThreshold float64
	DedupThreshold      float64
	WarpWidth           int
	WarpHeight          int
	GaussianKernel      int
	GrayMeanChroma      float64
	GrayMaxChroma       float64
	LumaDescentSlack    float64
	AreaBoostFactor     float64
	MaxQuads            int

	BlurLowThresh     float64
	ContrastLowThresh float64
	AreaLowThresh     float64
}

// NotFoundDeltaEGuard returns the ΔE above which a detection is
// reclassified as NotFound, per spec §4.5 rule 4.
func (c *Config) NotFoundDeltaEGuard() float64 {
	return c.PassAverageDeltaE * c.NotFoundGuardScale
}

// Validate fills in any zero-valued field of c with its compile-time
// default, logging each substitution via LogInvalidField. It never
// returns a non-nil error; the return type is kept for symmetry with the
// reference codebase's Config.Validate and to leave room for future
// cross-field validation.
func (c *Config) Validate() error {
	type field struct {
		name string
		cur  *float64
		def  float64
	}
	floats := []field{
		{"ExpectedAspect", &c.ExpectedAspect, DefaultExpectedAspect},
		{"BlurReference", &c.BlurReference, DefaultBlurReference},
		{"PassAverageDeltaE", &c.PassAverageDeltaE, DefaultPassAverageDeltaE},
		{"PassMaxDeltaE", &c.PassMaxDeltaE, DefaultPassMaxDeltaE},
		{"NotFoundGuardScale", &c.NotFoundGuardScale, DefaultNotFoundGuardScale},
		{"ConfidenceThreshold", &c.ConfidenceThreshold, DefaultConfidenceThresh},
		{"DedupThreshold", &c.DedupThreshold, DefaultDedupThreshold},
		{"GrayMeanChroma", &c.GrayMeanChroma, DefaultGrayMeanChroma},
		{"GrayMaxChroma", &c.GrayMaxChroma, DefaultGrayMaxChroma},
		{"LumaDescentSlack", &c.LumaDescentSlack, DefaultLumaDescentSlack},
		{"AreaBoostFactor", &c.AreaBoostFactor, DefaultAreaBoostFactor},
		{"BlurLowThresh", &c.BlurLowThresh, DefaultBlurLowThresh},
		{"ContrastLowThresh", &c.ContrastLowThresh, DefaultContrastLowThresh},
		{"AreaLowThresh", &c.AreaLowThresh, DefaultAreaLowThresh},
	}
	for _, f := range floats {
		if *f.cur == 0 {
			c.LogInvalidField(f.name, f.def)
			*f.cur = f.def
		}
	}
	if c.WarpWidth == 0 {
		c.LogInvalidField("WarpWidth", DefaultWarpWidth)
		c.WarpWidth = DefaultWarpWidth
	}
	if c.WarpHeight == 0 {
		c.LogInvalidField("WarpHeight", DefaultWarpHeight)
		c.WarpHeight = DefaultWarpHeight
	}
	if c.GaussianKernel == 0 {
		c.LogInvalidField("GaussianKernel", DefaultGaussianKernel)
		c.GaussianKernel = DefaultGaussianKernel
	}
	if c.MaxQuads == 0 {
		c.LogInvalidField("MaxQuads", DefaultMaxQuads)
		c.MaxQuads = DefaultMaxQuads
	}
	return nil
}

// LogInvalidField logs that a Config field was unset or invalid and has
// been defaulted, mirroring revid/config.Config.LogInvalidField.
func (c *Config) LogInvalidField(name string, def interface{}) {
	if c.Logger == nil {
		return
	}
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}
