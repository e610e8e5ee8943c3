package graph

import (
	"image"
	"math"
)

const (
	labelGap = 2
	maxTicks = 1000
)

// DrawBox outlines the viewport rectangle.
func (r *Renderer) DrawBox() {
	p1, p2 := r.vp.Position()
	box := []image.Point{p1, {p2.X, p1.Y}, p2, {p1.X, p2.Y}, p1}
	r.c.StrokePolyline(box, r.style.Box, Solid)
}

// DrawAxis draws grid lines at tick multiples, the outline box and tick
// labels according to each axis' LabelPos. Ticks closer than 50 px are
// spread out first.
func (r *Renderer) DrawAxis(label, grid bool) {
	xr, yr := r.vp.Limits()
	tx, ty := r.vp.Tick()
	lx, ly := r.vp.LabelPos()
	tx = widenTick(tx, r.vp.sx, label && lx.Labelled())
	ty = widenTick(ty, r.vp.sy, label && ly.Labelled())

	xs := tickValues(xr, tx)
	ys := tickValues(yr, ty)
	if grid {
		for _, x := range xs {
			r.DrawPolyline([]Vec{{x, yr[0]}, {x, yr[1]}}, r.style.Grid, Dot)
		}
		for _, y := range ys {
			r.DrawPolyline([]Vec{{xr[0], y}, {xr[1], y}}, r.style.Grid, Dot)
		}
	}
	r.DrawBox()
	if !label {
		return
	}
	if lx.Labelled() {
		for _, x := range xs {
			r.labelX(x, tx, lx)
		}
	}
	if ly.Labelled() {
		for _, y := range ys {
			r.labelY(y, ty, ly)
		}
	}
}

// tickValues lists multiples of tick within rng, at most maxTicks of them.
func tickValues(rng [2]float64, tick float64) []float64 {
	if !(tick > 0) {
		return nil
	}
	i0 := math.Ceil(rng[0] / tick)
	i1 := math.Floor(rng[1] / tick)
	if i1-i0 >= maxTicks {
		Logger().Debug("graph: tick count capped", "tick", tick, "min", rng[0], "max", rng[1])
		i1 = i0 + maxTicks - 1
	}
	var out []float64
	for i := i0; i <= i1; i++ {
		out = append(out, i*tick)
	}
	return out
}

func (r *Renderer) labelX(x, tick float64, pos LabelPos) {
	p1, p2 := r.vp.Position()
	q, _ := r.vp.ToPixel(x, 0)
	s := FormatLabel(x, tick, pos)
	lc := r.style.Label

	switch pos {
	case LabelAxis:
		if q.Y < p1.Y || q.Y > p2.Y {
			q.Y = p2.Y
		}
		r.hemmed().DrawPixelText(image.Pt(q.X, q.Y+labelGap), s, lc, AlignCenter, AlignTop, 0)
	case LabelInsideRot:
		r.hemmed().DrawPixelText(image.Pt(q.X, p2.Y-labelGap), s, lc, AlignLeft, AlignMiddle, 90)
	case LabelOutsideRot:
		r.DrawPixelText(image.Pt(q.X, p2.Y+labelGap), s, lc, AlignRight, AlignMiddle, 90)
	default:
		if pos.Outside() {
			r.DrawPixelText(image.Pt(q.X, p2.Y+labelGap), s, lc, AlignCenter, AlignTop, 0)
		} else {
			r.hemmed().DrawPixelText(image.Pt(q.X, p2.Y-labelGap), s, lc, AlignCenter, AlignBottom, 0)
		}
	}
}

func (r *Renderer) labelY(y, tick float64, pos LabelPos) {
	p1, p2 := r.vp.Position()
	q, _ := r.vp.ToPixel(0, y)
	s := FormatLabel(y, tick, pos)
	lc := r.style.Label

	switch pos {
	case LabelAxis:
		if q.X < p1.X || q.X > p2.X {
			q.X = p1.X
		}
		r.hemmed().DrawPixelText(image.Pt(q.X-labelGap, q.Y), s, lc, AlignRight, AlignMiddle, 0)
	case LabelInsideRot:
		r.hemmed().DrawPixelText(image.Pt(p1.X+labelGap, q.Y), s, lc, AlignCenter, AlignTop, 90)
	case LabelOutsideRot:
		r.DrawPixelText(image.Pt(p1.X-labelGap, q.Y), s, lc, AlignCenter, AlignBottom, 90)
	default:
		if pos.Outside() {
			r.DrawPixelText(image.Pt(p1.X-labelGap, q.Y), s, lc, AlignRight, AlignMiddle, 0)
		} else {
			r.hemmed().DrawPixelText(image.Pt(p1.X+labelGap, q.Y), s, lc, AlignLeft, AlignMiddle, 0)
		}
	}
}
