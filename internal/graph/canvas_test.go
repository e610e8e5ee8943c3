package graph

import (
	"image"
	"image/color"
	"testing"
)

type call struct {
	op   string
	pts  []image.Point
	c    color.Color
	ls   LineStyle
	rx   int
	ry   int
	text string
	rot  float64
	ha   HAlign
	va   VAlign
}

// recorder is a Canvas that remembers every primitive it receives.
type recorder struct {
	calls []call
}

func (r *recorder) StrokePolyline(pts []image.Point, c color.Color, ls LineStyle) {
	r.calls = append(r.calls, call{op: "polyline", pts: append([]image.Point(nil), pts...), c: c, ls: ls})
}

func (r *recorder) StrokeLine(p1, p2 image.Point, c color.Color, ls LineStyle) {
	r.calls = append(r.calls, call{op: "line", pts: []image.Point{p1, p2}, c: c, ls: ls})
}

func (r *recorder) FillPolygon(pts []image.Point, stroke, fill color.Color, ls LineStyle) {
	r.calls = append(r.calls, call{op: "polygon", pts: append([]image.Point(nil), pts...), c: fill, ls: ls})
}

func (r *recorder) StrokeEllipse(center image.Point, rx, ry int, c color.Color, ls LineStyle) {
	r.calls = append(r.calls, call{op: "ellipse", pts: []image.Point{center}, rx: rx, ry: ry, c: c, ls: ls})
}

func (r *recorder) FillEllipse(center image.Point, rx, ry int, stroke, fill color.Color, ls LineStyle) {
	r.calls = append(r.calls, call{op: "fillellipse", pts: []image.Point{center}, rx: rx, ry: ry, c: fill, ls: ls})
}

func (r *recorder) DrawText(anchor image.Point, text string, c color.Color, ha HAlign, va VAlign, rot float64, font *Font) {
	r.calls = append(r.calls, call{op: "text", pts: []image.Point{anchor}, text: text, c: c, ha: ha, va: va, rot: rot})
}

func (r *recorder) MeasureText(text string, font *Font) image.Rectangle {
	return image.Rect(0, 0, 6*len(text), 10)
}

func (r *recorder) ops(op string) []call {
	var out []call
	for _, c := range r.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

// pixelViewport returns a 100x100 viewport at the origin.
func pixelViewport() *Viewport {
	vp := NewViewport()
	vp.FitOnResize = false
	vp.SetPosition(image.Pt(0, 0), image.Pt(99, 99))
	vp.SetScale(1, 1)
	return vp
}

func TestTextOrigin(t *testing.T) {
	tests := []struct {
		name string
		ha   HAlign
		va   VAlign
		want image.Point
	}{
		{"center-middle", AlignCenter, AlignMiddle, image.Pt(45, 48)},
		{"left-top", AlignLeft, AlignTop, image.Pt(50, 50)},
		{"right-bottom", AlignRight, AlignBottom, image.Pt(40, 46)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TextOrigin(image.Pt(50, 50), 10, 4, tt.ha, tt.va)
			if got != tt.want {
				t.Errorf("TextOrigin = %v, want %v", got, tt.want)
			}
		})
	}
}
