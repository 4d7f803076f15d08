/*
DESCRIPTION
  locate.go provides the pure, image-library-independent helpers of the
  Locator: candidate deduplication and area-based ranking. These operate
  on geom.Quad values only, so they are unit-testable without OpenCV
  linked.

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

// Package locate finds candidate ColorChecker chart quadrilaterals in a
// camera frame via contour detection, following the motion filters'
// contour-and-area-threshold pattern in package filter.
package locate

import (
	"sort"

	"github.com/ausocean/colorcheck/geom"
)

// Dedup removes near-duplicate quads from candidates, where "near" means
// the average corner distance to an already-kept quad is below threshold.
// Candidates are considered in input order, so earlier (by convention,
// larger-area) candidates win ties.
func Dedup(candidates []geom.Quad, threshold float64) []geom.Quad {
	var kept []geom.Quad
	for _, c := range candidates {
		dup := false
		for _, k := range kept {
			if geom.AvgCornerDist(c, k) < threshold {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, c)
		}
	}
	return kept
}

// SortByAreaDescending returns a copy of quads sorted by bounding-box area,
// largest first. Ties preserve input order (stable sort).
func SortByAreaDescending(quads []geom.Quad) []geom.Quad {
	out := make([]geom.Quad, len(quads))
	copy(out, quads)
	sort.SliceStable(out, func(i, j int) bool {
		return area(out[i]) > area(out[j])
	})
	return out
}

func area(q geom.Quad) float64 {
	b := geom.BBox(q)
	return b.Width * b.Height
}
