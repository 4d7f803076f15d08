/*
DESCRIPTION
  geom.go provides the pure planar-geometry types shared by every stage of
  the ColorChecker pipeline: points, ordered quadrilaterals and their
  axis-aligned bounding boxes. It has no dependency on any image library
  so that it can be imported by the wire-format layer without pulling in
  a cgo dependency.

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

// Package geom provides the planar geometry primitives (points, ordered
// quads, bounding boxes) used across the ColorChecker detection pipeline.
package geom

import "math"

// Point is a location in frame coordinates.
type Point struct {
	X, Y float64
}

// Quad is an ordered sequence of four corner points. Use OrderCorners to
// produce a Quad in the canonical TL, TR, BR, BL order.
type Quad [4]Point

// BoundingBox is the axis-aligned extent of a Quad, in pixels.
type BoundingBox struct {
	Width, Height float64
}

// Empty reports whether q has no corners set, i.e. the zero Quad.
func (q Quad) Empty() bool {
	return q == Quad{}
}

// OrderCorners returns the four points of pts reordered as TL, TR, BR, BL.
//
// TL minimizes x+y, BR maximizes x+y. Among the remaining two points, TR
// maximizes x-y and BL minimizes x-y. Ties are broken by insertion order,
// i.e. the earliest-indexed point among those tied for an extremum wins.
func OrderCorners(pts [4]Point) Quad {
	tl := extremum(pts[:], sumKey, false)
	br := extremum(pts[:], sumKey, true)

	// The remaining two corners, in original insertion order. Degenerate
	// input (repeated points) can make tl == br; in that case every other
	// index is a "remaining" candidate.
	var rest []Point
	for i, p := range pts {
		if i == tl && tl != br {
			continue
		}
		if i == br {
			continue
		}
		rest = append(rest, p)
	}
	for len(rest) < 2 {
		rest = append(rest, pts[tl])
	}

	trLocal, blLocal := 0, 0
	bestTR, bestBL := rest[0].X-rest[0].Y, rest[0].X-rest[0].Y
	for i, p := range rest {
		d := p.X - p.Y
		if d > bestTR {
			bestTR = d
			trLocal = i
		}
		if d < bestBL {
			bestBL = d
			blLocal = i
		}
	}
	if trLocal == blLocal && len(rest) > 1 {
		blLocal = (trLocal + 1) % len(rest)
	}

	return Quad{pts[tl], rest[trLocal], pts[br], rest[blLocal]}
}

func sumKey(p Point) float64 { return p.X + p.Y }

// extremum returns the index into pts of the point minimizing (max==false)
// or maximizing (max==true) key, breaking ties by the earliest index.
func extremum(pts []Point, key func(Point) float64, max bool) int {
	best := 0
	bestVal := key(pts[0])
	for i := 1; i < len(pts); i++ {
		v := key(pts[i])
		if (max && v > bestVal) || (!max && v < bestVal) {
			bestVal = v
			best = i
		}
	}
	return best
}

// BBox computes the axis-aligned bounding box of q, clamped to be
// nonnegative in both dimensions.
func BBox(q Quad) BoundingBox {
	minX, minY := q[0].X, q[0].Y
	maxX, maxY := q[0].X, q[0].Y
	for _, p := range q[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	w := maxX - minX
	h := maxY - minY
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return BoundingBox{Width: w, Height: h}
}

// AvgCornerDist returns the average Euclidean distance between
// corresponding corners of a and b, in the order given (no re-alignment).
func AvgCornerDist(a, b Quad) float64 {
	var sum float64
	for i := range a {
		dx := a[i].X - b[i].X
		dy := a[i].Y - b[i].Y
		sum += math.Sqrt(dx*dx + dy*dy)
	}
	return sum / float64(len(a))
}
