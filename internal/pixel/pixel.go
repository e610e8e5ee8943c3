// Package pixel rasterizes lines, ellipses and polygons onto any grid that
// can set a single pixel. The braille and panel canvases share it.
package pixel

import (
	"image"
	"image/color"
	"math"
	"sort"

	"goplot/internal/graph"
)

// Setter is a pixel grid.
type Setter interface {
	Set(x, y int, c color.Color)
}

// dash masks, one entry per pixel step
var patterns = map[graph.LineStyle][]bool{
	graph.Dot:        {true, false},
	graph.Dash:       {true, true, true, false, false},
	graph.DashDot:    {true, true, true, false, true, false},
	graph.DashDotDot: {true, true, true, false, true, false, true, false},
}

// Pattern returns the on/off mask of a line style; nil means solid.
func Pattern(ls graph.LineStyle) []bool {
	return patterns[ls]
}

// Pen draws dashed or solid outlines clipped to bounds. The dash phase
// carries across successive segments.
type Pen struct {
	dst    Setter
	bounds image.Rectangle
	c      color.Color
	pat    []bool
	n      int
}

func NewPen(dst Setter, bounds image.Rectangle, c color.Color, ls graph.LineStyle) *Pen {
	return &Pen{dst: dst, bounds: bounds, c: c, pat: Pattern(ls)}
}

func (p *Pen) plot(x, y int) {
	if p.pat == nil || p.pat[p.n%len(p.pat)] {
		p.dst.Set(x, y, p.c)
	}
	p.n++
}

// Line draws a to b with Bresenham's algorithm after clipping to bounds.
func (p *Pen) Line(a, b image.Point) {
	a, b, ok := graph.ClipSegment(p.bounds, a, b)
	if !ok {
		return
	}
	x0, y0, x1, y1 := a.X, a.Y, b.X, b.Y
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		p.plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Polyline draws consecutive segments.
func (p *Pen) Polyline(pts []image.Point) {
	if len(pts) == 1 {
		p.Line(pts[0], pts[0])
	}
	for i := 1; i < len(pts); i++ {
		p.Line(pts[i-1], pts[i])
	}
}

// Ellipse outlines an axis-aligned ellipse.
func (p *Pen) Ellipse(c image.Point, rx, ry int) {
	p.Polyline(EllipsePoints(c, rx, ry))
}

// EllipsePoints approximates an ellipse outline by a closed polygon with
// roughly one vertex every two pixels of circumference.
func EllipsePoints(c image.Point, rx, ry int) []image.Point {
	if rx <= 0 && ry <= 0 {
		return []image.Point{c}
	}
	n := int(math.Pi*float64(rx+ry)) / 2
	n = min(max(n, 12), 4096)
	out := make([]image.Point, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = image.Pt(
			c.X+int(math.Round(float64(rx)*math.Cos(a))),
			c.Y+int(math.Round(float64(ry)*math.Sin(a))),
		)
	}
	return out
}

// FillPolygon fills pts with the even-odd rule, one scanline per row of
// bounds.
func FillPolygon(dst Setter, bounds image.Rectangle, pts []image.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	y0, y1 := pts[0].Y, pts[0].Y
	for _, q := range pts[1:] {
		y0 = min(y0, q.Y)
		y1 = max(y1, q.Y)
	}
	y0 = max(y0, bounds.Min.Y)
	y1 = min(y1, bounds.Max.Y-1)

	var xs []int
	for y := y0; y <= y1; y++ {
		xs = xs[:0]
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			if a.Y == b.Y {
				continue
			}
			if (y >= a.Y && y < b.Y) || (y >= b.Y && y < a.Y) {
				t := float64(y-a.Y) / float64(b.Y-a.Y)
				xs = append(xs, int(float64(a.X)+t*float64(b.X-a.X)))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			fillSpan(dst, bounds, y, xs[i], xs[i+1], c)
		}
	}
}

// FillEllipse fills an axis-aligned ellipse.
func FillEllipse(dst Setter, bounds image.Rectangle, c image.Point, rx, ry int, col color.Color) {
	if rx < 0 || ry < 0 {
		return
	}
	if ry == 0 {
		fillSpan(dst, bounds, c.Y, c.X-rx, c.X+rx, col)
		return
	}
	for dy := -ry; dy <= ry; dy++ {
		y := c.Y + dy
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		f := float64(dy) / float64(ry)
		hw := int(math.Round(float64(rx) * math.Sqrt(1-f*f)))
		fillSpan(dst, bounds, y, c.X-hw, c.X+hw, col)
	}
}

func fillSpan(dst Setter, bounds image.Rectangle, y, x0, x1 int, c color.Color) {
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	x0 = max(x0, bounds.Min.X)
	x1 = min(x1, bounds.Max.X-1)
	for x := x0; x <= x1; x++ {
		dst.Set(x, y, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
