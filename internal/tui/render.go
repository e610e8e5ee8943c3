package tui

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"goplot/internal/braille"
	"goplot/internal/graph"
)

const (
	fitMargin = 0.05 // fraction of the data range kept free around a fit
	hoverPick = 8    // px radius for snapping the hover marker to a vertex
	yLabelRef = "-0000.00"
)

// trackColor picks well separated hues for successive tracks.
func trackColor(i int) color.Color {
	return colorful.Hcl(float64((i*67+200)%360), 0.55, 0.75).Clamped()
}

// plotRect is the part of bounds left to the viewport once room for
// outside labels is taken.
func plotRect(c graph.Canvas, bounds image.Rectangle, lx, ly graph.LabelPos, font *graph.Font) (p1, p2 image.Point) {
	p1, p2 = bounds.Min, bounds.Max.Sub(image.Pt(1, 1))
	ref := c.MeasureText(yLabelRef, font)
	switch ly {
	case graph.LabelOutside, graph.LabelTimeOutside:
		p1.X += ref.Dx() + 2
	case graph.LabelOutsideRot:
		p1.X += ref.Dy() + 2
	}
	switch lx {
	case graph.LabelOutside, graph.LabelTimeOutside:
		p2.Y -= ref.Dy() + 2
	case graph.LabelOutsideRot:
		p2.Y -= ref.Dx() + 2
	}
	return p1, p2
}

// Plot draws the current view onto c, whose drawable pixels are bounds.
// The viewport is moved onto bounds first, keeping the visible range.
func (m Model) Plot(c graph.Canvas, bounds image.Rectangle, style graph.Style) {
	lx, ly := m.vp.LabelPos()
	p1, p2 := plotRect(c, bounds, lx, ly, &style.Font)
	m.vp.SetPosition(p1, p2)
	if m.follow {
		m.followLatest()
	}

	r := graph.NewRenderer(m.vp, c, style)
	r.DrawAxis(lx.Labelled() || ly.Labelled(), m.showGrid)
	if m.showRings {
		r.DrawRangeRings(true)
	}

	if m.showPolys {
		for _, poly := range m.data.Polygons {
			for i, ring := range poly {
				var fill color.Color = polyFill
				if i > 0 {
					fill = style.Background
				}
				r.DrawPolygon(ring, polyStroke, fill, graph.Solid)
			}
		}
	}
	if m.showLines {
		for i, line := range m.data.Lines {
			r.DrawPolyline(line, trackColor(i), graph.Solid)
		}
	}
	size := max(6, bounds.Dy()/60)
	if m.showPoints {
		r.DrawMarks(m.data.Points, m.mark, pointColor, size)
	}
	if m.follow {
		if last, ok := m.data.Last(); ok {
			r.DrawMarkHemmed(last, graph.MarkDot, hoverColor, size/2, 0)
		}
	}
	if m.hovering && m.hoverHit {
		r.DrawMarkHemmed(m.hoverPt, graph.MarkCircle, hoverColor, size, 0)
	}
}

// renderPlot draws the view on a w x h cell braille grid.
func (m Model) renderPlot(w, h int) string {
	c := braille.New(w, h, m.style.Background)
	m.Plot(c, c.Bounds(), m.style)
	return c.String()
}

// FitTo places the viewport on bounds of c and fits the data into it.
func (m Model) FitTo(c graph.Canvas, bounds image.Rectangle, style graph.Style) {
	lx, ly := m.vp.LabelPos()
	m.vp.SetPosition(plotRect(c, bounds, lx, ly, &style.Font))
	m.fit()
}

// fit shows the whole dataset.
func (m Model) fit() {
	if m.data.BBox.Empty() {
		return
	}
	m.vp.SetLimits(m.data.BBox.Limits(fitMargin))
}

// followLatest keeps the sample with the greatest x at the right edge.
func (m Model) followLatest() {
	if last, ok := m.data.Last(); ok {
		m.vp.SetRight(last.X, last.Y)
	}
}

// nearestVertex returns the data vertex closest to pixel q, within
// hoverPick pixels.
func (m Model) nearestVertex(q image.Point) (graph.Vec, bool) {
	best := hoverPick*hoverPick + 1
	var hit graph.Vec
	try := func(w graph.Vec) {
		p, in := m.vp.ToPixelV(w)
		if !in {
			return
		}
		d := p.Sub(q)
		if n := d.X*d.X + d.Y*d.Y; n < best {
			best, hit = n, w
		}
	}
	if m.showPoints {
		for _, w := range m.data.Points {
			try(w)
		}
	}
	if m.showLines {
		for _, l := range m.data.Lines {
			for _, w := range l {
				try(w)
			}
		}
	}
	if m.showPolys {
		for _, poly := range m.data.Polygons {
			for _, ring := range poly {
				for _, w := range ring {
					try(w)
				}
			}
		}
	}
	return hit, best <= hoverPick*hoverPick
}
