package graph

import (
	"image"
	"image/color"
)

var hemOffsets = [...]image.Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// hemCanvas draws every primitive four times, shifted one pixel left,
// right, up and down in the hem colour, then once in the requested colour.
type hemCanvas struct {
	Canvas
	bg color.Color
}

// Hem wraps base so its primitives stay legible over any background.
// Measurement passes through unchanged.
func Hem(base Canvas, bg color.Color) Canvas {
	if h, ok := base.(*hemCanvas); ok {
		base = h.Canvas
	}
	return &hemCanvas{Canvas: base, bg: bg}
}

func shifted(pts []image.Point, d image.Point) []image.Point {
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(d)
	}
	return out
}

func (h *hemCanvas) StrokePolyline(pts []image.Point, c color.Color, ls LineStyle) {
	for _, d := range hemOffsets {
		h.Canvas.StrokePolyline(shifted(pts, d), h.bg, ls)
	}
	h.Canvas.StrokePolyline(pts, c, ls)
}

func (h *hemCanvas) StrokeLine(p1, p2 image.Point, c color.Color, ls LineStyle) {
	for _, d := range hemOffsets {
		h.Canvas.StrokeLine(p1.Add(d), p2.Add(d), h.bg, ls)
	}
	h.Canvas.StrokeLine(p1, p2, c, ls)
}

func (h *hemCanvas) FillPolygon(pts []image.Point, stroke, fill color.Color, ls LineStyle) {
	for _, d := range hemOffsets {
		h.Canvas.FillPolygon(shifted(pts, d), h.bg, h.bg, ls)
	}
	h.Canvas.FillPolygon(pts, stroke, fill, ls)
}

func (h *hemCanvas) StrokeEllipse(center image.Point, rx, ry int, c color.Color, ls LineStyle) {
	for _, d := range hemOffsets {
		h.Canvas.StrokeEllipse(center.Add(d), rx, ry, h.bg, ls)
	}
	h.Canvas.StrokeEllipse(center, rx, ry, c, ls)
}

func (h *hemCanvas) FillEllipse(center image.Point, rx, ry int, stroke, fill color.Color, ls LineStyle) {
	for _, d := range hemOffsets {
		h.Canvas.FillEllipse(center.Add(d), rx, ry, h.bg, h.bg, ls)
	}
	h.Canvas.FillEllipse(center, rx, ry, stroke, fill, ls)
}

func (h *hemCanvas) DrawText(anchor image.Point, text string, c color.Color, ha HAlign, va VAlign, rot float64, font *Font) {
	for _, d := range hemOffsets {
		h.Canvas.DrawText(anchor.Add(d), text, h.bg, ha, va, rot, font)
	}
	h.Canvas.DrawText(anchor, text, c, ha, va, rot, font)
}
