package graph

import (
	"image"
	"image/color"
	"math"
)

// MaxPrimitivePoints is the largest point count handed to one Canvas call.
// Longer runs are split into overlapping chunks.
const MaxPrimitivePoints = 30000

// Renderer draws world-space data through a Viewport onto a Canvas.
type Renderer struct {
	vp    *Viewport
	c     Canvas
	style Style
}

// NewRenderer binds a viewport, a canvas and a style.
func NewRenderer(vp *Viewport, c Canvas, style Style) *Renderer {
	return &Renderer{vp: vp, c: c, style: style}
}

func (r *Renderer) Viewport() *Viewport { return r.vp }

func (r *Renderer) Canvas() Canvas { return r.c }

func (r *Renderer) Style() Style { return r.style }

// hemmed returns a Renderer whose primitives are outlined in the
// background colour.
func (r *Renderer) hemmed() *Renderer {
	return &Renderer{vp: r.vp, c: Hem(r.c, r.style.Background), style: r.style}
}

func (r *Renderer) project(pts []Vec) []image.Point {
	out := make([]image.Point, len(pts))
	for i, w := range pts {
		out[i], _ = r.vp.ToPixel(w.X, w.Y)
	}
	return out
}

// DrawPolyline projects pts and strokes the parts that fall on the viewport.
func (r *Renderer) DrawPolyline(pts []Vec, c color.Color, ls LineStyle) {
	if len(pts) == 0 {
		return
	}
	r.DrawPixelPolyline(r.project(pts), c, ls)
}

// DrawPolylineXY is DrawPolyline over parallel coordinate slices. Extra
// elements of the longer slice are ignored.
func (r *Renderer) DrawPolylineXY(xs, ys []float64, c color.Color, ls LineStyle) {
	n := min(len(xs), len(ys))
	if n == 0 {
		return
	}
	p := make([]image.Point, n)
	for i := 0; i < n; i++ {
		p[i], _ = r.vp.ToPixel(xs[i], ys[i])
	}
	r.DrawPixelPolyline(p, c, ls)
}

// DrawPixelPolyline walks projected points and strokes each run that stays
// inside the rectangle as one polyline. Segments crossing the boundary are
// clipped and stroked on their own; segments lying wholly on one outer side
// are skipped.
func (r *Renderer) DrawPixelPolyline(p []image.Point, c color.Color, ls LineStyle) {
	rect := r.vp.Rect()
	prev := regionNone
	start := 0
	for i, q := range p {
		code := Classify(rect, q)
		if code == prev {
			continue
		}
		if code == RegionInside {
			start = i
		} else if prev == RegionInside {
			r.strokeRun(p[start:i], c, ls)
		}
		if i > 0 && !Disjoint(prev, code) {
			a, b := p[i-1], q
			switch {
			case prev != RegionInside && !Clip(rect, &a, prev, q):
				Logger().Debug("graph: segment clip failed", "from", p[i-1], "to", q, "region", prev)
			case code != RegionInside && !Clip(rect, &b, code, p[i-1]):
				Logger().Debug("graph: segment clip failed", "from", q, "to", p[i-1], "region", code)
			default:
				r.c.StrokeLine(a, b, c, ls)
			}
		}
		prev = code
	}
	if prev == RegionInside {
		r.strokeRun(p[start:], c, ls)
	}
}

// strokeRun forwards an inside run, splitting it so no call carries more
// than MaxPrimitivePoints. Consecutive chunks share an end point.
func (r *Renderer) strokeRun(run []image.Point, c color.Color, ls LineStyle) {
	if len(run) < 2 {
		return
	}
	if len(run) > MaxPrimitivePoints {
		Logger().Debug("graph: splitting long run", "points", len(run))
	}
	for len(run) > MaxPrimitivePoints {
		r.c.StrokePolyline(run[:MaxPrimitivePoints], c, ls)
		run = run[MaxPrimitivePoints-1:]
	}
	r.c.StrokePolyline(run, c, ls)
}

// DrawPolygon fills and outlines a closed shape. The shape is not clipped
// edge by edge: it is dropped when its pixel bounds miss the viewport and
// otherwise handed whole to the canvas.
func (r *Renderer) DrawPolygon(pts []Vec, stroke, fill color.Color, ls LineStyle) {
	if len(pts) < 3 {
		return
	}
	p := r.project(pts)
	if !pixelBounds(p).Overlaps(r.vp.Rect()) {
		return
	}
	r.c.FillPolygon(p, stroke, fill, ls)
}

// DrawPatch fills a closed shape without a distinct outline.
func (r *Renderer) DrawPatch(pts []Vec, fill color.Color) {
	r.DrawPolygon(pts, fill, fill, Solid)
}

// DrawCircle strokes an ellipse of world radius rad about center. On axes
// with different scales the circle is drawn as an ellipse. A circle whose
// center or radius lies beyond the ±1e6 px clamp is drawn as the world
// space arc crossing the viewport instead.
func (r *Renderer) DrawCircle(center Vec, rad float64, c color.Color, ls LineStyle) {
	fx, fy := r.vp.pixelF(center.X, center.Y)
	rxf, ryf := rad/r.vp.sx, rad/r.vp.sy
	if math.Abs(fx) > pixelLimit || math.Abs(fy) > pixelLimit || rxf > pixelLimit || ryf > pixelLimit {
		r.drawArc(center, rad, fx, fy, c, ls)
		return
	}
	p, _ := r.vp.ToPixel(center.X, center.Y)
	rx := int(rxf + 0.5)
	ry := int(ryf + 0.5)
	box := image.Rect(p.X-rx, p.Y-ry, p.X+rx+1, p.Y+ry+1)
	if !box.Overlaps(r.vp.Rect()) {
		return
	}
	r.c.StrokeEllipse(p, rx, ry, c, ls)
}

// drawArc strokes the part of the circle that can cross the viewport as a
// polyline, sampled about every 2 px. fx, fy is the unclamped pixel
// position of center.
func (r *Renderer) drawArc(center Vec, rad, fx, fy float64, c color.Color, ls LineStyle) {
	if !(rad > 0) {
		return
	}
	v := r.vp
	// viewport edges relative to the center in radius units, y up
	x0 := (float64(v.origin.X) - 0.5 - fx) * v.sx / rad
	x1 := (float64(v.origin.X+v.extent.X) - 0.5 - fx) * v.sx / rad
	y0 := (fy - float64(v.origin.Y+v.extent.Y) + 0.5) * v.sy / rad
	y1 := (fy - float64(v.origin.Y) + 0.5) * v.sy / rad
	near := math.Hypot(clampf(0, x0, x1), clampf(0, y0, y1))
	far := math.Hypot(math.Max(-x0, x1), math.Max(-y0, y1))
	if near > 1 || far < 1 {
		return
	}

	lo, hi := -math.Pi, math.Pi
	if near > 0 {
		// center off the viewport: the corners bound the visible angles
		mid := math.Atan2((y0+y1)/2, (x0+x1)/2)
		lo, hi = math.Inf(1), math.Inf(-1)
		for _, q := range [4][2]float64{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
			d := math.Remainder(math.Atan2(q[1], q[0])-mid, 2*math.Pi)
			lo, hi = math.Min(lo, d), math.Max(hi, d)
		}
		lo, hi = lo+mid, hi+mid
	}
	rpx := rad / math.Min(v.sx, v.sy)
	lo -= 2 / rpx
	hi += 2 / rpx
	n := int(math.Ceil((hi-lo)*rpx/2)) + 1
	n = min(max(n, 8), MaxPrimitivePoints)

	pts := make([]Vec, n)
	for i := range pts {
		a := lo + (hi-lo)*float64(i)/float64(n-1)
		pts[i] = Vec{center.X + rad*math.Cos(a), center.Y + rad*math.Sin(a)}
	}
	Logger().Debug("graph: circle drawn as arc", "points", n)
	r.DrawPolyline(pts, c, ls)
}

// DrawText places s at world point p. Text anchored off the viewport is
// skipped.
func (r *Renderer) DrawText(p Vec, s string, c color.Color, ha HAlign, va VAlign, rot float64) {
	q, in := r.vp.ToPixel(p.X, p.Y)
	if !in {
		return
	}
	r.DrawPixelText(q, s, c, ha, va, rot)
}

// DrawTextHemmed is DrawText outlined in the background colour.
func (r *Renderer) DrawTextHemmed(p Vec, s string, c color.Color, ha HAlign, va VAlign, rot float64) {
	r.hemmed().DrawText(p, s, c, ha, va, rot)
}

// DrawPixelText places s at a device pixel using the style font.
func (r *Renderer) DrawPixelText(q image.Point, s string, c color.Color, ha HAlign, va VAlign, rot float64) {
	f := r.style.Font
	r.c.DrawText(q, s, c, ha, va, rot, &f)
}

// DrawMark draws a marker of the given pixel size at world point p, rotated
// rot degrees counterclockwise. Markers anchored off the viewport are
// skipped.
func (r *Renderer) DrawMark(p Vec, kind MarkKind, c color.Color, size int, rot float64) {
	q, in := r.vp.ToPixel(p.X, p.Y)
	if !in {
		return
	}
	r.drawMark(q, kind, c, size, rot)
}

// DrawMarkHemmed is DrawMark outlined in the background colour.
func (r *Renderer) DrawMarkHemmed(p Vec, kind MarkKind, c color.Color, size int, rot float64) {
	r.hemmed().DrawMark(p, kind, c, size, rot)
}

// DrawMarks draws an unrotated marker at each visible point.
func (r *Renderer) DrawMarks(pts []Vec, kind MarkKind, c color.Color, size int) {
	for _, w := range pts {
		r.DrawMark(w, kind, c, size, 0)
	}
}

// pixelBounds returns the smallest rectangle holding every point.
func pixelBounds(p []image.Point) image.Rectangle {
	if len(p) == 0 {
		return image.Rectangle{}
	}
	b := image.Rectangle{Min: p[0], Max: p[0].Add(image.Pt(1, 1))}
	for _, q := range p[1:] {
		b.Min.X = min(b.Min.X, q.X)
		b.Min.Y = min(b.Min.Y, q.Y)
		b.Max.X = max(b.Max.X, q.X+1)
		b.Max.Y = max(b.Max.Y, q.Y+1)
	}
	return b
}
