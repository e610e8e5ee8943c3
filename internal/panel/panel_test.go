package panel

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"goplot/internal/graph"
)

// fakeDisplay is an in-memory drivers.Displayer.
type fakeDisplay struct {
	w, h     int16
	px       map[image.Point]color.RGBA
	displays int
	err      error
}

func newFake(w, h int16) *fakeDisplay {
	return &fakeDisplay{w: w, h: h, px: map[image.Point]color.RGBA{}}
}

func (f *fakeDisplay) Size() (x, y int16) { return f.w, f.h }

func (f *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.px[image.Pt(int(x), int(y))] = c
}

func (f *fakeDisplay) Display() error {
	f.displays++
	return f.err
}

var (
	green = color.RGBA{G: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

func (f *fakeDisplay) inked(bg color.RGBA) image.Rectangle {
	var r image.Rectangle
	for p, c := range f.px {
		if c != bg {
			r = r.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
		}
	}
	return r
}

func TestStrokeLine(t *testing.T) {
	d := newFake(32, 16)
	c := New(d)
	c.StrokeLine(image.Pt(-5, 3), image.Pt(40, 3), green, graph.Solid)
	for x := 0; x < 32; x++ {
		if d.px[image.Pt(x, 3)] != green {
			t.Fatalf("pixel (%d, 3) not set", x)
		}
	}
	if len(d.px) != 32 {
		t.Errorf("set %d pixels, want 32", len(d.px))
	}
}

func TestClearAndFlush(t *testing.T) {
	d := newFake(8, 4)
	c := New(d)
	c.Clear(black)
	if len(d.px) != 32 {
		t.Errorf("Clear set %d pixels, want 32", len(d.px))
	}
	if err := c.Flush(); err != nil || d.displays != 1 {
		t.Errorf("Flush = %v after %d displays", err, d.displays)
	}

	d.err = errors.New("spi timeout")
	if err := c.Flush(); !errors.Is(err, d.err) {
		t.Errorf("Flush error %v does not wrap the driver error", err)
	}
}

func TestFillShapes(t *testing.T) {
	d := newFake(32, 32)
	c := New(d)
	c.FillPolygon([]image.Point{{2, 2}, {10, 2}, {10, 10}, {2, 10}}, green, green, graph.Solid)
	if d.px[image.Pt(6, 6)] != green {
		t.Error("polygon interior not filled")
	}
	c.FillEllipse(image.Pt(20, 20), 4, 4, nil, green, graph.Solid)
	if d.px[image.Pt(20, 20)] != green || d.px[image.Pt(24, 20)] != green {
		t.Error("ellipse not filled")
	}
	if _, ok := d.px[image.Pt(24, 24)]; ok {
		t.Error("ellipse fill leaked into the bounding box corner")
	}
}

func TestMeasureText(t *testing.T) {
	c := New(newFake(64, 32))
	one, three := c.MeasureText("0", nil), c.MeasureText("000", nil)
	if one.Dx() <= 0 || three.Dx() <= one.Dx() {
		t.Errorf("widths %d, %d", one.Dx(), three.Dx())
	}
	if one.Dy() != 10 {
		t.Errorf("height %d, want the line height 10", one.Dy())
	}
}

func TestDrawText(t *testing.T) {
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
			d := newFake(128, 128)
			c := New(d)
			c.DrawText(image.Pt(64, 64), "HHHHHHHH", green, graph.AlignCenter, graph.AlignMiddle, tt.rot, nil)
			ink := d.inked(color.RGBA{})
			if ink.Empty() {
				t.Fatal("no text drawn")
			}
			if got := ink.Dy() > ink.Dx(); got != tt.tall {
				t.Errorf("ink %v taller than wide = %v, want %v", ink, got, tt.tall)
			}
		})
	}
}

func TestRendererOnPanel(t *testing.T) {
	d := newFake(64, 48)
	c := New(d)
	vp := graph.NewViewport()
	vp.FitOnResize = false
	vp.SetPosition(image.Pt(0, 0), image.Pt(63, 47))
	vp.SetLimits([2]float64{0, 63}, [2]float64{0, 47})

	r := graph.NewRenderer(vp, c, graph.DefaultStyle())
	r.DrawMark(graph.V(31.5, 23.5), graph.MarkPlus, green, 6, 0)
	if d.px[image.Pt(32, 24)] != green {
		t.Error("marker center not drawn")
	}
}
