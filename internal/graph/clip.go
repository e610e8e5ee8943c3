package graph

import (
	"image"
	"math"
)

// Region classifies a pixel against a rectangle. The horizontal part is one
// of inside/left/right and the vertical part one of inside/above/below, so
// the only values are 0, 1, 2, 4, 5, 6, 8, 9 and 10:
//
//	5 4 6
//	1 0 2
//	9 8 10
type Region uint8

const (
	RegionInside Region = 0
	RegionLeft   Region = 1
	RegionRight  Region = 2
	RegionAbove  Region = 4
	RegionBelow  Region = 8

	// regionNone never results from Classify. It seeds run walks so the
	// first point always starts fresh.
	regionNone Region = RegionLeft | RegionRight | RegionAbove | RegionBelow
)

// Classify returns the region of p relative to r. r.Max is exclusive, as
// with any image.Rectangle.
func Classify(r image.Rectangle, p image.Point) Region {
	var c Region
	switch {
	case p.X < r.Min.X:
		c = RegionLeft
	case p.X > r.Max.X-1:
		c = RegionRight
	}
	switch {
	case p.Y < r.Min.Y:
		c |= RegionAbove
	case p.Y > r.Max.Y-1:
		c |= RegionBelow
	}
	return c
}

// Classify returns the region of p relative to the viewport rectangle.
func (v *Viewport) Classify(p image.Point) Region {
	return Classify(v.Rect(), p)
}

// Disjoint reports whether two codes lie on a common outer side, in which
// case the segment between them cannot cross the rectangle.
func Disjoint(a, b Region) bool {
	return a&b != 0
}

// Clip moves p0, whose region is code, onto the rectangle edge crossed by
// the segment p0-p1. Edges are tried left, right, top, bottom; the first
// one whose crossing falls within the rectangle wins. Edges parallel to the
// segment are skipped. It reports false when no edge yields a crossing, and
// leaves p0 untouched in that case.
func Clip(r image.Rectangle, p0 *image.Point, code Region, p1 image.Point) bool {
	xmin, xmax := r.Min.X, r.Max.X-1
	ymin, ymax := r.Min.Y, r.Max.Y-1

	if code&RegionLeft != 0 && p0.X != p1.X {
		if y := crossAt(p0.Y, p1.Y, p0.X, p1.X, xmin); ymin <= y && y <= ymax {
			*p0 = image.Pt(xmin, y)
			return true
		}
	}
	if code&RegionRight != 0 && p0.X != p1.X {
		if y := crossAt(p0.Y, p1.Y, p0.X, p1.X, xmax); ymin <= y && y <= ymax {
			*p0 = image.Pt(xmax, y)
			return true
		}
	}
	if code&RegionAbove != 0 && p0.Y != p1.Y {
		if x := crossAt(p0.X, p1.X, p0.Y, p1.Y, ymin); xmin <= x && x <= xmax {
			*p0 = image.Pt(x, ymin)
			return true
		}
	}
	if code&RegionBelow != 0 && p0.Y != p1.Y {
		if x := crossAt(p0.X, p1.X, p0.Y, p1.Y, ymax); xmin <= x && x <= xmax {
			*p0 = image.Pt(x, ymax)
			return true
		}
	}
	return false
}

// crossAt interpolates the dependent coordinate a at which the independent
// coordinate b, running from b0 to b1, reaches edge.
func crossAt(a0, a1, b0, b1, edge int) int {
	t := float64(edge-b0) / float64(b1-b0)
	return int(math.Floor(float64(a0) + t*float64(a1-a0) + 0.5))
}

// ClipSegment clips p0-p1 against r. It returns false when nothing of the
// segment is visible.
func ClipSegment(r image.Rectangle, p0, p1 image.Point) (image.Point, image.Point, bool) {
	c0, c1 := Classify(r, p0), Classify(r, p1)
	if Disjoint(c0, c1) {
		return p0, p1, false
	}
	a, b := p0, p1
	if c0 != RegionInside && !Clip(r, &a, c0, p1) {
		return p0, p1, false
	}
	if c1 != RegionInside && !Clip(r, &b, c1, p0) {
		return p0, p1, false
	}
	return a, b, true
}
