//go:build withcv
// +build withcv

/*
DESCRIPTION
  locate_withcv.go implements the production Locator: a two-stage
  contour-based chart detector grounded on the motion filters' contour
  pipeline (threshold, erode/dilate noise cleanup, FindContours,
  ContourArea filtering) in filter/mog.go and filter/knn.go, generalized
  from "is there motion" to "is this contour plausibly a ColorChecker
  panel" via convexity and aspect filtering plus ApproxPolyDP quad
  reduction.

AUTHORS
  ColorCheck Contributors

LICENSE
  Copyright (C) 2026 ColorCheck Contributors. All rights reserved.
*/

package locate

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/ausocean/colorcheck/config"
	"github.com/ausocean/colorcheck/geom"
)

// Locator finds candidate chart quadrilaterals in a BGR image.
type Locator interface {
	// LocateAll returns 0 or more candidate quads, deduplicated, in
	// full-image coordinates.
	LocateAll(bgr gocv.Mat) ([]geom.Quad, error)
	// Close releases native detector resources. Must be called exactly
	// once when the Locator is no longer needed.
	Close() error
}

// Detector is the production Locator, backed by OpenCV contour detection
// via gocv.
type Detector struct {
	cfg config.Config
	knl gocv.Mat
}

// New returns a production Locator configured by cfg. The caller must
// Close it when done.
func New(cfg config.Config) *Detector {
	return &Detector{
		cfg: cfg,
		knl: gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3)),
	}
}

// Close implements Locator.
func (d *Detector) Close() error {
	d.knl.Close()
	return nil
}

// LocateAll implements Locator, following the two-stage strategy of
// §4.2: a full-image pass, and, if that pass finds fewer than two quads,
// a split left/right-half pass to recover widely separated dual panels.
func (d *Detector) LocateAll(bgr gocv.Mat) ([]geom.Quad, error) {
	if bgr.Empty() {
		return nil, fmt.Errorf("locate: LocateAll: empty image")
	}

	stage1, err := d.detectIn(bgr, image.Pt(0, 0))
	if err != nil {
		return nil, err
	}

	var all []geom.Quad
	all = append(all, stage1...)

	if len(stage1) < 2 {
		w := bgr.Cols()
		h := bgr.Rows()
		left := bgr.Region(image.Rect(0, 0, w/2, h))
		stage2Left, err := d.detectIn(left, image.Pt(0, 0))
		left.Close()
		if err != nil {
			return nil, err
		}
		right := bgr.Region(image.Rect(w/2, 0, w, h))
		stage2Right, err := d.detectIn(right, image.Pt(w/2, 0))
		right.Close()
		if err != nil {
			return nil, err
		}
		all = append(all, stage2Left...)
		all = append(all, stage2Right...)
	}

	deduped := Dedup(all, d.cfg.DedupThreshold)
	if len(deduped) > d.cfg.MaxQuads {
		deduped = deduped[:d.cfg.MaxQuads]
	}
	return deduped, nil
}

// detectIn runs one pass of the contour-quad detector over roi and
// translates every returned quad's corners by origin.
func (d *Detector) detectIn(roi gocv.Mat, origin image.Point) ([]geom.Quad, error) {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(roi, &gray, gocv.ColorBGRToGray)

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(gray, &thresh, 0, 255, gocv.ThresholdBinary+gocv.ThresholdOtsu)

	gocv.Erode(thresh, &thresh, d.knl)
	gocv.Dilate(thresh, &thresh, d.knl)

	contours := gocv.FindContours(thresh, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	minArea := float64(roi.Cols()*roi.Rows()) * d.cfg.AreaLowThresh

	var quads []geom.Quad
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		if gocv.ContourArea(c) < minArea {
			continue
		}
		peri := gocv.ArcLength(c, true)
		approx := gocv.ApproxPolyDP(c, 0.02*peri, true)
		pts := approx.ToPoints()
		approx.Close()
		if len(pts) != 4 {
			continue
		}
		var corners [4]geom.Point
		for j, p := range pts {
			corners[j] = geom.Point{
				X: float64(p.X + origin.X),
				Y: float64(p.Y + origin.Y),
			}
		}
		quads = append(quads, geom.OrderCorners(corners))
	}
	return SortByAreaDescending(quads), nil
}
