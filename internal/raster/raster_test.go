package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"goplot/internal/graph"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func TestDashes(t *testing.T) {
	tests := []struct {
		ls   graph.LineStyle
		want []float64
	}{
		{graph.Solid, nil},
		{graph.Dot, []float64{2, 2}},
		{graph.Dash, []float64{6, 4}},
		{graph.DashDot, []float64{6, 2, 2, 2}},
		{graph.DashDotDot, []float64{6, 2, 2, 2, 2, 2}},
	}
	for _, tt := range tests {
		got := dashes(tt.ls)
		if len(got) != len(tt.want) {
			t.Errorf("dashes(%d) = %v, want %v", tt.ls, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("dashes(%d) = %v, want %v", tt.ls, got, tt.want)
				break
			}
		}
	}
}

func isBackground(img image.Image, x, y int, bg color.Color) bool {
	r1, g1, b1, _ := img.At(x, y).RGBA()
	r2, g2, b2, _ := bg.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2
}

func TestSurfaceDraw(t *testing.T) {
	style := graph.LightStyle()
	s := NewSurface(40, 20, style)
	if s.Image() != nil {
		t.Fatal("image before first frame")
	}
	if err := s.EncodePNG(&bytes.Buffer{}); !errors.Is(err, errNoFrame) {
		t.Fatalf("EncodePNG before Draw = %v", err)
	}

	err := s.Draw(func(c graph.Canvas) {
		if s.Image() != nil {
			t.Error("frame visible while drawing")
		}
		c.StrokeLine(image.Pt(0, 10), image.Pt(39, 10), red, graph.Solid)
		c.FillEllipse(image.Pt(30, 4), 3, 3, nil, red, graph.Solid)
	})
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}

	img := s.Image()
	if img.Bounds() != image.Rect(0, 0, 40, 20) {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if !isBackground(img, 0, 0, style.Background) {
		t.Error("corner is not background")
	}
	if isBackground(img, 20, 10, style.Background) {
		t.Error("line pixel is background")
	}
	if isBackground(img, 30, 4, style.Background) {
		t.Error("ellipse center is background")
	}
}

func TestSurfaceEncodePNG(t *testing.T) {
	s := NewSurface(16, 8, graph.DefaultStyle())
	if err := s.Draw(func(graph.Canvas) {}); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Errorf("decoded bounds %v", img.Bounds())
	}
}

func TestMeasureText(t *testing.T) {
	s := NewSurface(10, 10, graph.DefaultStyle())
	err := s.Draw(func(c graph.Canvas) {
		short := c.MeasureText("ab", nil)
		long := c.MeasureText("abcdef", nil)
		if short.Dx() <= 0 || long.Dx() <= short.Dx() {
			t.Errorf("widths %d, %d", short.Dx(), long.Dx())
		}
		big := c.MeasureText("ab", &graph.Font{Size: 30})
		if big.Dy() <= short.Dy() {
			t.Errorf("30pt height %d not above default %d", big.Dy(), short.Dy())
		}
		if !c.MeasureText("", nil).Empty() {
			t.Error("empty string has extent")
		}
	})
	if err != nil {
		t.Fatal(err)
	}
}

// inkBounds returns the rectangle of pixels differing from bg.
func inkBounds(img image.Image, bg color.Color) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !isBackground(img, x, y, bg) {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestDrawTextRotated(t *testing.T) {
	style := graph.LightStyle()
	font := &graph.Font{Size: 14}
	tests := []struct {
		name string
		rot  float64
		tall bool
	}{
		{"level", 0, false},
		{"up", 90, true},
		{"down", -90, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(120, 120, style)
			err := s.Draw(func(c graph.Canvas) {
				c.DrawText(image.Pt(60, 60), "MMMMMM", color.Black, graph.AlignCenter, graph.AlignMiddle, tt.rot, font)
			})
			if err != nil {
				t.Fatal(err)
			}
			ink := inkBounds(s.Image(), style.Background)
			if ink.Empty() {
				t.Fatal("no text drawn")
			}
			if got := ink.Dy() > ink.Dx(); got != tt.tall {
				t.Errorf("ink %v: taller than wide = %v, want %v", ink, got, tt.tall)
			}
			if !ink.Overlaps(image.Rect(55, 55, 65, 65)) {
				t.Errorf("ink %v not around the anchor", ink)
			}
		})
	}
}

func TestRendererOnSurface(t *testing.T) {
	style := graph.LightStyle()
	s := NewSurface(100, 100, style)
	vp := graph.NewViewport()
	vp.SetPosition(image.Pt(0, 0), image.Pt(99, 99))
	vp.SetLimits([2]float64{-10, 10}, [2]float64{-10, 10})

	err := s.Draw(func(c graph.Canvas) {
		r := graph.NewRenderer(vp, c, style)
		r.DrawAxis(true, true)
		r.DrawPolyline([]graph.Vec{{X: -20, Y: 0}, {X: 20, Y: 0}}, red, graph.Solid)
	})
	if err != nil {
		t.Fatal(err)
	}
	p, _ := vp.ToPixel(3, 0)
	if isBackground(s.Image(), p.X, p.Y, style.Background) {
		t.Errorf("clipped polyline missing at %v", p)
	}
}
