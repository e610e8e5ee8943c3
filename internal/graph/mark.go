package graph

import (
	"image"
	"image/color"
	"math"
)

// MarkKind is a point marker shape.
type MarkKind int

const (
	MarkDot MarkKind = iota
	MarkCircle
	MarkRect
	MarkCross
	MarkLine
	MarkPlus
	MarkArrow
	MarkHScale
	MarkVScale
	MarkCompass
)

var markNames = [...]string{"dot", "circle", "rect", "cross", "line", "plus", "arrow", "hscale", "vscale", "compass"}

func (k MarkKind) String() string {
	if k < 0 || int(k) >= len(markNames) {
		return "mark?"
	}
	return markNames[k]
}

// Next cycles through the marker kinds.
func (k MarkKind) Next() MarkKind {
	return (k + 1) % MarkKind(len(markNames))
}

// markShape is a marker in pixel offsets from its anchor, y up.
type markShape struct {
	strokes [][]Vec // open polylines
	fills   [][]Vec // filled polygons
	ellipse float64 // radius of a circle about the anchor, 0 for none
	solid   bool    // fill the circle
	label   string  // text above the shape
	labelAt Vec
}

// markShapes holds one generator per kind, indexed by MarkKind.
var markShapes = [...]func(s float64) markShape{
	MarkDot:    func(s float64) markShape { return markShape{ellipse: s / 2, solid: true} },
	MarkCircle: func(s float64) markShape { return markShape{ellipse: s / 2} },
	MarkRect: func(s float64) markShape {
		h := s / 2
		return markShape{strokes: [][]Vec{{{-h, -h}, {h, -h}, {h, h}, {-h, h}, {-h, -h}}}}
	},
	MarkCross: func(s float64) markShape {
		h := s / 2
		return markShape{strokes: [][]Vec{{{-h, -h}, {h, h}}, {{-h, h}, {h, -h}}}}
	},
	MarkLine: func(s float64) markShape {
		h := s / 2
		return markShape{strokes: [][]Vec{{{-h, 0}, {h, 0}}}}
	},
	MarkPlus: func(s float64) markShape {
		h := s / 2
		return markShape{strokes: [][]Vec{{{-h, 0}, {h, 0}}, {{0, -h}, {0, h}}}}
	},
	MarkArrow: func(s float64) markShape {
		h := s / 2
		return markShape{
			strokes: [][]Vec{{{-h, 0}, {h - s/3, 0}}},
			fills:   [][]Vec{{{h, 0}, {h - s/3, s / 6}, {h - s/3, -s / 6}}},
		}
	},
	MarkHScale: func(s float64) markShape {
		h, t := s/2, s/8
		return markShape{strokes: [][]Vec{{{-h, 0}, {h, 0}}, {{-h, -t}, {-h, t}}, {{h, -t}, {h, t}}}}
	},
	MarkVScale: func(s float64) markShape {
		h, t := s/2, s/8
		return markShape{strokes: [][]Vec{{{0, -h}, {0, h}}, {{-t, -h}, {t, -h}}, {{-t, h}, {t, h}}}}
	},
	MarkCompass: func(s float64) markShape {
		h := s / 2
		return markShape{
			strokes: [][]Vec{{{0, -h}, {0, h - s/4}}, {{-s / 8, 0}, {s / 8, 0}}},
			fills:   [][]Vec{{{0, h}, {-s / 8, h - s/4}, {s / 8, h - s/4}}},
			label:   "N",
			labelAt: Vec{0, h + 2},
		}
	},
}

// shapeOf returns the offsets for kind at size s.
func shapeOf(kind MarkKind, s float64) markShape {
	if kind < 0 || int(kind) >= len(markShapes) {
		kind = MarkDot
	}
	return markShapes[kind](s)
}

// rotator turns y-up offsets into device pixels about an anchor.
type rotator struct {
	at       image.Point
	cos, sin float64
}

func newRotator(at image.Point, deg float64) rotator {
	rad := deg * math.Pi / 180
	return rotator{at: at, cos: math.Cos(rad), sin: math.Sin(rad)}
}

func (r rotator) apply(o Vec) image.Point {
	x := o.X*r.cos - o.Y*r.sin
	y := o.X*r.sin + o.Y*r.cos
	return image.Pt(r.at.X+int(math.Round(x)), r.at.Y-int(math.Round(y)))
}

func (r rotator) applyAll(os []Vec) []image.Point {
	out := make([]image.Point, len(os))
	for i, o := range os {
		out[i] = r.apply(o)
	}
	return out
}

// drawMark issues the primitives of a marker anchored at pixel q.
func (r *Renderer) drawMark(q image.Point, kind MarkKind, c color.Color, size int, rot float64) {
	sh := shapeOf(kind, float64(size))
	rt := newRotator(q, rot)
	if sh.ellipse > 0 {
		rad := int(math.Round(sh.ellipse))
		if sh.solid {
			r.c.FillEllipse(q, rad, rad, c, c, Solid)
		} else {
			r.c.StrokeEllipse(q, rad, rad, c, Solid)
		}
	}
	for _, s := range sh.strokes {
		p := rt.applyAll(s)
		if len(p) == 2 {
			r.c.StrokeLine(p[0], p[1], c, Solid)
			continue
		}
		r.c.StrokePolyline(p, c, Solid)
	}
	for _, f := range sh.fills {
		r.c.FillPolygon(rt.applyAll(f), c, c, Solid)
	}
	if sh.label != "" {
		r.DrawPixelText(rt.apply(sh.labelAt), sh.label, c, AlignCenter, AlignBottom, 0)
	}
}
