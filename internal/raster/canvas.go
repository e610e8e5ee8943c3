// Package raster draws graph primitives with the gg 2D library, for PNG
// export and any other consumer of an image.Image.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"goplot/internal/graph"
	"goplot/internal/pixel"
)

const defaultFontSize = 11

var (
	fontOnce sync.Once
	fontSrc  *text.FontSource
	fontErr  error
)

// goFont parses the embedded Go Regular face once per process.
func goFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSrc, fontErr = text.NewFontSource(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("raster: load font: %w", fontErr)
		}
	})
	return fontSrc, fontErr
}

// Canvas adapts a gg.Context to graph.Canvas. Pixel coordinates address
// pixel centers, so one-pixel strokes land on whole pixels.
//
// Canvas methods cannot fail individually; the first error from gg is kept
// and reported by Err.
type Canvas struct {
	dc    *gg.Context
	faces map[float64]text.Face
	err   error
}

var _ graph.Canvas = (*Canvas)(nil)

func NewCanvas(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc, faces: map[float64]text.Face{}}
}

// Context is the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Err returns the first drawing error, if any.
func (c *Canvas) Err() error { return c.err }

func (c *Canvas) check(err error) {
	if err != nil && c.err == nil {
		c.err = err
		graph.Logger().Warn("raster: draw failed", "err", err)
	}
}

// dashes turns a pixel on/off mask into gg dash lengths, doubled so the
// pattern stays visible under anti-aliasing.
func dashes(ls graph.LineStyle) []float64 {
	pat := pixel.Pattern(ls)
	if len(pat) == 0 {
		return nil
	}
	var out []float64
	run := 0.0
	for i, on := range pat {
		run++
		if i == len(pat)-1 || pat[i+1] != on {
			out = append(out, 2*run)
			run = 0
		}
	}
	return out
}

func (c *Canvas) pen(col color.Color, ls graph.LineStyle) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(1)
	if d := dashes(ls); d != nil {
		c.dc.SetDash(d...)
	} else {
		c.dc.ClearDash()
	}
}

func (c *Canvas) path(pts []image.Point) {
	c.dc.ClearPath()
	for i, p := range pts {
		x, y := float64(p.X)+0.5, float64(p.Y)+0.5
		if i == 0 {
			c.dc.MoveTo(x, y)
		} else {
			c.dc.LineTo(x, y)
		}
	}
}

func (c *Canvas) StrokePolyline(pts []image.Point, col color.Color, ls graph.LineStyle) {
	if len(pts) < 2 || col == nil {
		return
	}
	c.pen(col, ls)
	c.path(pts)
	c.check(c.dc.Stroke())
}

func (c *Canvas) StrokeLine(p1, p2 image.Point, col color.Color, ls graph.LineStyle) {
	c.StrokePolyline([]image.Point{p1, p2}, col, ls)
}

func (c *Canvas) FillPolygon(pts []image.Point, stroke, fill color.Color, ls graph.LineStyle) {
	if len(pts) < 3 {
		return
	}
	if fill != nil {
		c.dc.SetColor(fill)
		c.path(pts)
		c.dc.ClosePath()
		c.check(c.dc.Fill())
	}
	if stroke != nil {
		c.pen(stroke, ls)
		c.path(pts)
		c.dc.ClosePath()
		c.check(c.dc.Stroke())
	}
}

func (c *Canvas) StrokeEllipse(center image.Point, rx, ry int, col color.Color, ls graph.LineStyle) {
	if col == nil {
		return
	}
	c.pen(col, ls)
	c.dc.ClearPath()
	c.dc.DrawEllipse(float64(center.X)+0.5, float64(center.Y)+0.5, float64(rx), float64(ry))
	c.check(c.dc.Stroke())
}

func (c *Canvas) FillEllipse(center image.Point, rx, ry int, stroke, fill color.Color, ls graph.LineStyle) {
	if fill != nil {
		c.dc.SetColor(fill)
		c.dc.ClearPath()
		c.dc.DrawEllipse(float64(center.X)+0.5, float64(center.Y)+0.5, float64(rx), float64(ry))
		c.check(c.dc.Fill())
	}
	c.StrokeEllipse(center, rx, ry, stroke, ls)
}

// face returns the Go Regular face for f, caching one per size.
func (c *Canvas) face(f *graph.Font) text.Face {
	size := float64(defaultFontSize)
	if f != nil && f.Size > 0 {
		size = f.Size
	}
	if fc, ok := c.faces[size]; ok {
		return fc
	}
	src, err := goFont()
	if err != nil {
		c.check(err)
		return nil
	}
	fc := src.Face(size)
	c.faces[size] = fc
	return fc
}

func (c *Canvas) MeasureText(s string, f *graph.Font) image.Rectangle {
	fc := c.face(f)
	if fc == nil || s == "" {
		return image.Rectangle{}
	}
	w, h := text.Measure(s, fc)
	return image.Rect(0, 0, int(math.Ceil(w)), int(math.Ceil(h)))
}

// DrawText draws s with its bounding box aligned to anchor, rotated rot
// degrees counterclockwise about the anchor. gg draws glyphs straight to
// the pixmap without the transform, so rotated text is rendered level on a
// scratch context and copied over pixel by pixel.
func (c *Canvas) DrawText(anchor image.Point, s string, col color.Color, ha graph.HAlign, va graph.VAlign, rot float64, f *graph.Font) {
	fc := c.face(f)
	if fc == nil || s == "" || col == nil {
		return
	}
	box := c.MeasureText(s, f)
	ascent := fc.Metrics().Ascent

	if math.Mod(rot, 360) == 0 {
		o := graph.TextOrigin(anchor, box.Dx(), box.Dy(), ha, va)
		c.dc.SetFont(fc)
		c.dc.SetColor(col)
		c.dc.DrawString(s, float64(o.X), float64(o.Y)+ascent)
		return
	}

	scratch := gg.NewContext(max(box.Dx(), 1), max(box.Dy(), 1))
	defer scratch.Close()
	scratch.SetFont(fc)
	scratch.SetColor(col)
	scratch.DrawString(s, 0, ascent)
	glyphs, ok := scratch.Image().(*image.RGBA)
	if !ok {
		return
	}

	o := graph.TextOrigin(image.Point{}, box.Dx(), box.Dy(), ha, va)
	sin, cos := math.Sincos(rot * math.Pi / 180)
	ink := gg.FromColor(col)
	for y := 0; y < box.Dy(); y++ {
		for x := 0; x < box.Dx(); x++ {
			if glyphs.RGBAAt(x, y).A < 0x80 {
				continue
			}
			fx, fy := float64(o.X+x), float64(o.Y+y)
			px := anchor.X + int(math.Round(fx*cos+fy*sin))
			py := anchor.Y + int(math.Round(-fx*sin+fy*cos))
			if px < 0 || py < 0 || px >= c.dc.Width() || py >= c.dc.Height() {
				continue
			}
			c.dc.SetPixel(px, py, ink)
		}
	}
}
