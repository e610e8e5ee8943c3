package graph

import (
	"image"
	"image/color"
)

// LineStyle selects the stroke pattern of a primitive.
type LineStyle int

const (
	Solid LineStyle = iota
	Dot
	Dash
	DashDot
	DashDotDot
)

// HAlign is the horizontal text alignment relative to the anchor point.
type HAlign int

const (
	AlignCenter HAlign = iota
	AlignLeft
	AlignRight
)

// VAlign is the vertical text alignment relative to the anchor point.
type VAlign int

const (
	AlignMiddle VAlign = iota
	AlignTop
	AlignBottom
)

// Font names a typeface and its size in points. Backends map it to
// whatever they can render; a nil *Font means the backend default.
type Font struct {
	Name string
	Size float64
}

// Canvas is the drawing surface the Renderer issues primitives to.
// All coordinates are device pixels with y growing downward.
type Canvas interface {
	StrokePolyline(pts []image.Point, c color.Color, ls LineStyle)
	StrokeLine(p1, p2 image.Point, c color.Color, ls LineStyle)
	FillPolygon(pts []image.Point, stroke, fill color.Color, ls LineStyle)
	StrokeEllipse(center image.Point, rx, ry int, c color.Color, ls LineStyle)
	FillEllipse(center image.Point, rx, ry int, stroke, fill color.Color, ls LineStyle)
	DrawText(anchor image.Point, text string, c color.Color, h HAlign, v VAlign, rot float64, font *Font)
	MeasureText(text string, font *Font) image.Rectangle
}

// TextOrigin returns the top-left corner of a w x h text box placed at
// anchor with the given alignment. Backends without native anchoring use it.
func TextOrigin(anchor image.Point, w, h int, ha HAlign, va VAlign) image.Point {
	x, y := anchor.X, anchor.Y
	switch ha {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	switch va {
	case AlignMiddle:
		y -= h / 2
	case AlignBottom:
		y -= h
	}
	return image.Pt(x, y)
}
