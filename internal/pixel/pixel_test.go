package pixel

import (
	"image"
	"image/color"
	"testing"

	"goplot/internal/graph"
)

type grid map[image.Point]color.Color

func (g grid) Set(x, y int, c color.Color) { g[image.Pt(x, y)] = c }

var (
	white  = color.White
	bounds = image.Rect(0, 0, 20, 20)
)

func TestLine(t *testing.T) {
	tests := []struct {
		name   string
		a, b   image.Point
		ls     graph.LineStyle
		want   int
		absent []image.Point
	}{
		{"solid horizontal", image.Pt(0, 5), image.Pt(9, 5), graph.Solid, 10, nil},
		{"dotted horizontal", image.Pt(0, 5), image.Pt(9, 5), graph.Dot, 5, []image.Point{{1, 5}, {3, 5}}},
		{"diagonal", image.Pt(0, 0), image.Pt(4, 4), graph.Solid, 5, nil},
		{"clipped", image.Pt(-10, 5), image.Pt(30, 5), graph.Solid, 20, nil},
		{"outside", image.Pt(-10, -5), image.Pt(30, -5), graph.Solid, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid{}
			NewPen(g, bounds, white, tt.ls).Line(tt.a, tt.b)
			if len(g) != tt.want {
				t.Errorf("set %d pixels, want %d", len(g), tt.want)
			}
			for _, p := range tt.absent {
				if _, ok := g[p]; ok {
					t.Errorf("pixel %v set in a gap", p)
				}
			}
		})
	}
}

func TestDashPhaseCarries(t *testing.T) {
	g := grid{}
	p := NewPen(g, bounds, white, graph.Dot)
	p.Polyline([]image.Point{{0, 0}, {2, 0}, {2, 2}})
	// Points: (0,0) on, (1,0) off, (2,0) on, then (2,0) off again, (2,1) on, (2,2) off.
	for _, q := range []image.Point{{0, 0}, {2, 0}, {2, 1}} {
		if _, ok := g[q]; !ok {
			t.Errorf("pixel %v not set", q)
		}
	}
	if _, ok := g[image.Pt(2, 2)]; ok {
		t.Error("dash phase reset between segments")
	}
}

func TestEllipse(t *testing.T) {
	g := grid{}
	NewPen(g, bounds, white, graph.Solid).Ellipse(image.Pt(10, 10), 5, 3)
	for _, q := range []image.Point{{15, 10}, {5, 10}, {10, 13}, {10, 7}} {
		if _, ok := g[q]; !ok {
			t.Errorf("extreme %v not set", q)
		}
	}
	if _, ok := g[image.Pt(10, 10)]; ok {
		t.Error("outline filled the center")
	}
}

func TestFillPolygon(t *testing.T) {
	g := grid{}
	FillPolygon(g, bounds, []image.Point{{2, 2}, {8, 2}, {8, 8}, {2, 8}}, white)
	if _, ok := g[image.Pt(5, 5)]; !ok {
		t.Error("interior not filled")
	}
	if _, ok := g[image.Pt(9, 5)]; ok {
		t.Error("exterior filled")
	}

	g = grid{}
	FillPolygon(g, bounds, []image.Point{{-100, -100}, {100, -100}, {100, 100}, {-100, 100}}, white)
	if len(g) != 400 {
		t.Errorf("covering polygon set %d pixels, want 400", len(g))
	}
}

func TestFillEllipse(t *testing.T) {
	g := grid{}
	FillEllipse(g, bounds, image.Pt(10, 10), 3, 3, white)
	for _, q := range []image.Point{{10, 10}, {13, 10}, {10, 7}, {8, 12}} {
		if _, ok := g[q]; !ok {
			t.Errorf("pixel %v not filled", q)
		}
	}
	if _, ok := g[image.Pt(13, 13)]; ok {
		t.Error("corner outside the circle filled")
	}
}

func TestPattern(t *testing.T) {
	if Pattern(graph.Solid) != nil {
		t.Error("solid has a pattern")
	}
	if len(Pattern(graph.DashDotDot)) == 0 {
		t.Error("dash-dot-dot has no pattern")
	}
}
