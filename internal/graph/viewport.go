// Package graph maps application world coordinates onto a rectangular pixel
// viewport and draws clipped primitives through a Canvas.
//
// A Viewport holds the pixel rectangle (origin, extent) and the world mapping
// (center, scale in world units per pixel). World y grows upward, pixel y
// grows downward. A Renderer projects world data through a Viewport, clips
// it against the rectangle and forwards what remains to a Canvas.
//
// Nothing in this package performs I/O or blocks; a Viewport is owned by one
// goroutine and mutated in place.
package graph

import (
	"image"
	"math"
)

const (
	// MinSize is the smallest pixel extent accepted on either axis.
	MinSize = 10
	// MinScale and MaxScale bound the world units per pixel on each axis.
	MinScale = 2e-5
	MaxScale = 1e7

	// DefaultScale is the scale of a freshly created Viewport.
	DefaultScale = 0.02

	pixelLimit    = 1e6
	edgeTolerance = 0.1
	rightMargin   = 13
)

// Vec is a point in world coordinates.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

// Viewport is a pixel rectangle plus the world mapping shown in it.
type Viewport struct {
	origin image.Point
	extent image.Point

	cx, cy float64
	sx, sy float64

	tickX, tickY   float64
	labelX, labelY LabelPos

	// FitOnResize keeps the visible world range when SetPosition changes
	// the pixel extent. When false the scale is left as is.
	FitOnResize bool
}

// NewViewport returns a MinSize x MinSize viewport at the pixel origin,
// centered on world (0,0) with DefaultScale on both axes.
func NewViewport() *Viewport {
	return &Viewport{
		extent:      image.Pt(MinSize, MinSize),
		sx:          DefaultScale,
		sy:          DefaultScale,
		labelX:      LabelOutside,
		labelY:      LabelOutside,
		FitOnResize: true,
	}
}

// ToPixel projects a world point. The second result reports whether the
// unrounded position lies on the rectangle, allowing 0.1 px of slack.
//
// Coordinates are clamped to ±1e6 before rounding. Non-finite input is the
// caller's problem: the clamp does not detect NaN.
func (v *Viewport) ToPixel(x, y float64) (image.Point, bool) {
	fx, fy := v.pixelF(x, y)
	fx = clampf(fx, -pixelLimit, pixelLimit)
	fy = clampf(fy, -pixelLimit, pixelLimit)
	p := image.Pt(int(math.Floor(fx+0.5)), int(math.Floor(fy+0.5)))
	return p, v.onRect(fx, fy)
}

// pixelF is the unclamped, unrounded projection.
func (v *Viewport) pixelF(x, y float64) (fx, fy float64) {
	fx = float64(v.origin.X) + float64(v.extent.X-1)/2 + (x-v.cx)/v.sx
	fy = float64(v.origin.Y) + float64(v.extent.Y-1)/2 - (y-v.cy)/v.sy
	return fx, fy
}

// ToPixelV is ToPixel for a Vec.
func (v *Viewport) ToPixelV(w Vec) (image.Point, bool) {
	return v.ToPixel(w.X, w.Y)
}

func (v *Viewport) onRect(fx, fy float64) bool {
	x0 := float64(v.origin.X) - edgeTolerance
	y0 := float64(v.origin.Y) - edgeTolerance
	x1 := float64(v.origin.X+v.extent.X-1) + edgeTolerance
	y1 := float64(v.origin.Y+v.extent.Y-1) + edgeTolerance
	return x0 <= fx && fx <= x1 && y0 <= fy && fy <= y1
}

// ToWorld maps a pixel back to world coordinates. It is the algebraic
// inverse of the ToPixel formula, without clamping or rounding.
func (v *Viewport) ToWorld(p image.Point) Vec {
	return v.ToWorldF(float64(p.X), float64(p.Y))
}

// ToWorldF is ToWorld for fractional pixel positions.
func (v *Viewport) ToWorldF(px, py float64) Vec {
	return Vec{
		X: v.cx + (px-float64(v.origin.X)-float64(v.extent.X-1)/2)*v.sx,
		Y: v.cy - (py-float64(v.origin.Y)-float64(v.extent.Y-1)/2)*v.sy,
	}
}

// SetCenter sets the world point shown at the rectangle center.
func (v *Viewport) SetCenter(x, y float64) {
	v.cx, v.cy = x, y
}

// Center returns the world point at the rectangle center.
func (v *Viewport) Center() (x, y float64) {
	return v.cx, v.cy
}

// SetScale sets world units per pixel, clamping each axis to
// [MinScale, MaxScale].
func (v *Viewport) SetScale(sx, sy float64) {
	v.sx = clampScale(sx)
	v.sy = clampScale(sy)
}

// Scale returns world units per pixel.
func (v *Viewport) Scale() (sx, sy float64) {
	return v.sx, v.sy
}

// SetLimits fits the world rectangle xr x yr into the viewport. Axes whose
// range is empty or inverted are left unchanged.
func (v *Viewport) SetLimits(xr, yr [2]float64) {
	if xr[0] < xr[1] {
		v.cx = (xr[0] + xr[1]) / 2
		v.sx = clampScale((xr[1] - xr[0]) / float64(v.extent.X-1))
	} else {
		Logger().Debug("graph: x limits ignored", "min", xr[0], "max", xr[1])
	}
	if yr[0] < yr[1] {
		v.cy = (yr[0] + yr[1]) / 2
		v.sy = clampScale((yr[1] - yr[0]) / float64(v.extent.Y-1))
	} else {
		Logger().Debug("graph: y limits ignored", "min", yr[0], "max", yr[1])
	}
}

// Limits returns the world ranges visible at the rectangle corners.
func (v *Viewport) Limits() (xr, yr [2]float64) {
	tl := v.ToWorld(v.origin)
	br := v.ToWorld(v.origin.Add(v.extent).Sub(image.Pt(1, 1)))
	return [2]float64{tl.X, br.X}, [2]float64{br.Y, tl.Y}
}

// SetPosition places the rectangle with corners p1 (top-left) and p2
// (bottom-right, inclusive). Extents below MinSize are raised to MinSize.
// With FitOnResize the scale follows the extent so the visible world range
// is kept.
func (v *Viewport) SetPosition(p1, p2 image.Point) {
	ext := image.Pt(max(MinSize, p2.X-p1.X+1), max(MinSize, p2.Y-p1.Y+1))
	if v.FitOnResize {
		v.sx = clampScale(v.sx * float64(v.extent.X-1) / float64(ext.X-1))
		v.sy = clampScale(v.sy * float64(v.extent.Y-1) / float64(ext.Y-1))
	}
	v.origin = p1
	v.extent = ext
}

// Position returns the top-left and bottom-right (inclusive) pixels.
func (v *Viewport) Position() (p1, p2 image.Point) {
	return v.origin, v.origin.Add(v.extent).Sub(image.Pt(1, 1))
}

// Origin is the top-left pixel of the rectangle.
func (v *Viewport) Origin() image.Point { return v.origin }

// Extent is the pixel width and height of the rectangle.
func (v *Viewport) Extent() image.Point { return v.extent }

// Rect returns the rectangle as an image.Rectangle (max exclusive).
func (v *Viewport) Rect() image.Rectangle {
	return image.Rectangle{Min: v.origin, Max: v.origin.Add(v.extent)}
}

// Contains reports whether p lies on the pixel rectangle.
func (v *Viewport) Contains(p image.Point) bool {
	return Classify(v.Rect(), p) == RegionInside
}

// SetRight anchors world x at the right edge, leaving a 13 px margin for
// decorations. y becomes the vertical center.
func (v *Viewport) SetRight(x, y float64) {
	v.cx = x - float64(v.extent.X-rightMargin)*v.sx/2
	v.cy = y
}

// Right returns the world point anchored by SetRight.
func (v *Viewport) Right() (x, y float64) {
	return v.cx + float64(v.extent.X-rightMargin)*v.sx/2, v.cy
}

// Move pans the view window by dx, dy pixels. Positive dy moves it down,
// toward smaller world y.
func (v *Viewport) Move(dx, dy int) {
	v.cx += float64(dx) * v.sx
	v.cy -= float64(dy) * v.sy
}

// Zoom multiplies both scales by f about the center. f < 1 zooms in.
func (v *Viewport) Zoom(f float64) {
	if f <= 0 {
		return
	}
	v.SetScale(v.sx*f, v.sy*f)
}

// SetTick sets explicit tick spacings. Zero or negative means automatic.
func (v *Viewport) SetTick(tx, ty float64) {
	v.tickX, v.tickY = tx, ty
}

// SetLabelPos sets the label mode of each axis.
func (v *Viewport) SetLabelPos(x, y LabelPos) {
	v.labelX, v.labelY = x, y
}

// LabelPos returns the label mode of each axis.
func (v *Viewport) LabelPos() (x, y LabelPos) {
	return v.labelX, v.labelY
}

// clampScale also maps NaN to MinScale.
func clampScale(s float64) float64 {
	if !(s >= MinScale) {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}

func clampf(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
