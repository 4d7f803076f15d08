/*
DESCRIPTION
  config_test.go provides testing for Config's Validate method, following
  revid/config/config_test.go's dumbLogger fake and go-cmp comparison
  pattern.

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type dumbLogger struct{}

func (dl *dumbLogger) SetLevel(l int8)                           {}
func (dl *dumbLogger) Debug(msg string, args ...interface{})     {}
func (dl *dumbLogger) Info(msg string, args ...interface{})      {}
func (dl *dumbLogger) Warning(msg string, args ...interface{})   {}
func (dl *dumbLogger) Error(msg string, args ...interface{})     {}
func (dl *dumbLogger) Fatal(msg string, args ...interface{})     {}
func (dl *dumbLogger) Fatalf(format string, args ...interface{}) {}

func TestValidateDefaultsZeroConfig(t *testing.T) {
	c := Config{Logger: &dumbLogger{}}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: unexpected error: %v", err)
	}

	want := Config{
		Logger:              &dumbLogger{},
		ExpectedAspect:      DefaultExpectedAspect,
		BlurReference:       DefaultBlurReference,
		PassAverageDeltaE:   DefaultPassAverageDeltaE,
		PassMaxDeltaE:       DefaultPassMaxDeltaE,
		NotFoundGuardScale:  DefaultNotFoundGuardScale,
		ConfidenceThreshold: DefaultConfidenceThresh,
		DedupThreshold:      DefaultDedupThreshold,
		WarpWidth:           DefaultWarpWidth,
		WarpHeight:          DefaultWarpHeight,
		GaussianKernel:      DefaultGaussianKernel,
		GrayMeanChroma:      DefaultGrayMeanChroma,
		GrayMaxChroma:       DefaultGrayMaxChroma,
		LumaDescentSlack:    DefaultLumaDescentSlack,
		AreaBoostFactor:     DefaultAreaBoostFactor,
		MaxQuads:            DefaultMaxQuads,
		BlurLowThresh:       DefaultBlurLowThresh,
		ContrastLowThresh:   DefaultContrastLowThresh,
		AreaLowThresh:       DefaultAreaLowThresh,
	}
	if diff := cmp.Diff(want, c, cmp.Comparer(func(a, b *dumbLogger) bool { return true })); diff != "" {
		t.Errorf("Validate defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestValidatePreservesSetFields(t *testing.T) {
	c := Config{Logger: &dumbLogger{}, ExpectedAspect: 2.0, WarpWidth: 1200}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: unexpected error: %v", err)
	}
	if c.ExpectedAspect != 2.0 {
		t.Errorf("ExpectedAspect = %v, want 2.0 (should not be overwritten)", c.ExpectedAspect)
	}
	if c.WarpWidth != 1200 {
		t.Errorf("WarpWidth = %v, want 1200 (should not be overwritten)", c.WarpWidth)
	}
	if c.WarpHeight != DefaultWarpHeight {
		t.Errorf("WarpHeight = %v, want default %v", c.WarpHeight, DefaultWarpHeight)
	}
}

func TestNotFoundDeltaEGuard(t *testing.T) {
	c := Config{PassAverageDeltaE: 24.0, NotFoundGuardScale: 1.3}
	got := c.NotFoundDeltaEGuard()
	want := 31.2
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("NotFoundDeltaEGuard() = %v, want %v", got, want)
	}
}
