/*
DESCRIPTION
  patch.go provides the pure, image-library-independent math of the
  PatchAnalyzer: the PatchScores result type, the 8-bit Lab decode, and
  the full CIEDE2000 color-difference formula. None of this depends on
  gocv, so it is testable (and ported to the ΔE2000 verification table)
  without OpenCV linked.

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

// Package patch warps a detected chart quad to a canonical grid, samples
// its 24 patches, scores them against the standard reference table via
// CIEDE2000, and validates grayscale ramp panels.
package patch

import "math"

// PatchScores is the average and maximum ΔE2000 across the 24 sampled
// patches of a chart.
type PatchScores struct {
	AvgDeltaE float64
	MaxDeltaE float64
}

// LabSample is a decoded CIE L*a*b* sample for one patch cell of the
// canonical grid.
type LabSample struct {
	L, A, B float64
}

// DecodeLab8 converts 8-bit encoded L*a*b* channel values, as stored in an
// 8U OpenCV Lab Mat, back to floating-point CIE L*a*b*: L scaled by
// 100/255, a and b offset by -128.
func DecodeLab8(l8, a8, b8 float64) (L, a, b float64) {
	return l8 * 100.0 / 255.0, a8 - 128, b8 - 128
}

// Chroma returns sqrt(a^2+b^2) for a Lab channel pair.
func Chroma(a, b float64) float64 {
	return math.Hypot(a, b)
}

// DeltaE2000 computes the CIEDE2000 color difference between measured
// (l1,a1,b1) and reference (l2,a2,b2) CIE L*a*b* values, with parametric
// weights kL=kC=kH=1.
func DeltaE2000(l1, a1, b1, l2, a2, b2 float64) float64 {
	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)
	cBar := (c1 + c2) / 2

	g := 0.5 * (1 - math.Sqrt(math.Pow(cBar, 7)/(math.Pow(cBar, 7)+math.Pow(25, 7))))

	ap1 := (1 + g) * a1
	ap2 := (1 + g) * a2

	cp1 := math.Hypot(ap1, b1)
	cp2 := math.Hypot(ap2, b2)

	hp1 := hueAngle(b1, ap1)
	hp2 := hueAngle(b2, ap2)

	deltaLp := l2 - l1
	deltaCp := cp2 - cp1

	var deltaHpAngle float64
	switch {
	case cp1*cp2 == 0:
		deltaHpAngle = 0
	case math.Abs(hp2-hp1) <= math.Pi:
		deltaHpAngle = hp2 - hp1
	case hp2-hp1 > math.Pi:
		deltaHpAngle = hp2 - hp1 - 2*math.Pi
	default:
		deltaHpAngle = hp2 - hp1 + 2*math.Pi
	}
	deltaHp := 2 * math.Sqrt(cp1*cp2) * math.Sin(deltaHpAngle/2)

	lBar := (l1 + l2) / 2
	sl := 1 + (0.015*(lBar-50)*(lBar-50))/math.Sqrt(20+(lBar-50)*(lBar-50))

	cBarP := (cp1 + cp2) / 2
	sc := 1 + 0.045*cBarP

	var hBarP float64
	switch {
	case cp1*cp2 == 0:
		hBarP = hp1 + hp2
	case math.Abs(hp1-hp2) <= math.Pi:
		hBarP = (hp1 + hp2) / 2
	case hp1+hp2 < 2*math.Pi:
		hBarP = (hp1 + hp2 + 2*math.Pi) / 2
	default:
		hBarP = (hp1 + hp2 - 2*math.Pi) / 2
	}

	t := 1 -
		0.17*math.Cos(hBarP-deg2rad(30)) +
		0.24*math.Cos(2*hBarP) +
		0.32*math.Cos(3*hBarP+deg2rad(6)) -
		0.20*math.Cos(4*hBarP-deg2rad(63))
	sh := 1 + 0.015*cBarP*t

	deltaTheta := deg2rad(30) * math.Exp(-math.Pow((hBarP-deg2rad(275))/deg2rad(25), 2))
	rc := 2 * math.Sqrt(math.Pow(cBarP, 7)/(math.Pow(cBarP, 7)+math.Pow(25, 7)))
	rt := -rc * math.Sin(2*deltaTheta)

	lTerm := deltaLp / sl
	cTerm := deltaCp / sc
	hTerm := deltaHp / sh

	return math.Sqrt(lTerm*lTerm + cTerm*cTerm + hTerm*hTerm + rt*cTerm*hTerm)
}

// ValidateGrayscaleSamples reports whether samples — in row-major order,
// rows row-groups of cols patches each — forms a valid neutral grayscale
// panel, per spec §4.4: mean and max chroma across all cols*rows patches
// under the given limits, and the per-row mean L quasi-monotonically
// non-increasing row-to-row, i.e. L_r >= L_(r+1) - slack for every
// adjacent row pair.
func ValidateGrayscaleSamples(samples []LabSample, cols, rows int, meanChromaLimit, maxChromaLimit, slack float64) bool {
	if len(samples) != cols*rows {
		return false
	}

	chromas := make([]float64, 0, len(samples))
	rowMeans := make([]float64, rows)
	for r := 0; r < rows; r++ {
		var rowSum float64
		for c := 0; c < cols; c++ {
			s := samples[r*cols+c]
			chromas = append(chromas, Chroma(s.A, s.B))
			rowSum += s.L
		}
		rowMeans[r] = rowSum / float64(cols)
	}

	if mean(chromas) >= meanChromaLimit {
		return false
	}
	if maxOf(chromas) >= maxChromaLimit {
		return false
	}
	for r := 0; r < rows-1; r++ {
		if rowMeans[r] < rowMeans[r+1]-slack {
			return false
		}
	}
	return true
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func maxOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// hueAngle returns atan2(b, aPrime) normalized to [0, 2π).
func hueAngle(b, aPrime float64) float64 {
	h := math.Atan2(b, aPrime)
	if h < 0 {
		h += 2 * math.Pi
	}
	return h
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
