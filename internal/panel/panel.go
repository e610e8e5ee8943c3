// Package panel draws graph primitives on small pixel displays driven by
// tinygo drivers, such as SPI LCD and OLED panels.
package panel

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"goplot/internal/graph"
	"goplot/internal/pixel"
)

// Canvas is a graph.Canvas over a drivers.Displayer. Nothing reaches the
// panel until Flush.
type Canvas struct {
	d drivers.Displayer

	font       tinyfont.Fonter
	fontHeight int16
	fontOffset int16
}

var _ graph.Canvas = (*Canvas)(nil)

// New wraps d using the ProggyTiny font.
func New(d drivers.Displayer) *Canvas {
	return &Canvas{
		d:          d,
		font:       &proggy.TinySZ8pt7b,
		fontHeight: 10,
		fontOffset: 6,
	}
}

// SetFont replaces the text font. height is the line height and offset
// the baseline distance from the top of the line, both in pixels.
func (c *Canvas) SetFont(f tinyfont.Fonter, height, offset int16) {
	c.font, c.fontHeight, c.fontOffset = f, height, offset
}

func (c *Canvas) Bounds() image.Rectangle {
	w, h := c.d.Size()
	return image.Rect(0, 0, int(w), int(h))
}

func rgba(col color.Color) color.RGBA {
	return color.RGBAModel.Convert(col).(color.RGBA)
}

// Set writes one pixel, ignoring positions off the panel.
func (c *Canvas) Set(x, y int, col color.Color) {
	if !image.Pt(x, y).In(c.Bounds()) {
		return
	}
	c.d.SetPixel(int16(x), int16(y), rgba(col))
}

// Clear paints the whole panel in col.
func (c *Canvas) Clear(col color.Color) {
	b := c.Bounds()
	ink := rgba(col)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c.d.SetPixel(int16(x), int16(y), ink)
		}
	}
}

// Flush pushes the frame to the panel.
func (c *Canvas) Flush() error {
	if err := c.d.Display(); err != nil {
		return fmt.Errorf("panel: display: %w", err)
	}
	return nil
}

func (c *Canvas) StrokePolyline(pts []image.Point, col color.Color, ls graph.LineStyle) {
	pixel.NewPen(c, c.Bounds(), col, ls).Polyline(pts)
}

func (c *Canvas) StrokeLine(p1, p2 image.Point, col color.Color, ls graph.LineStyle) {
	pixel.NewPen(c, c.Bounds(), col, ls).Line(p1, p2)
}

func (c *Canvas) FillPolygon(pts []image.Point, stroke, fill color.Color, ls graph.LineStyle) {
	if fill != nil {
		pixel.FillPolygon(c, c.Bounds(), pts, fill)
	}
	if stroke != nil && len(pts) > 0 {
		c.StrokePolyline(append(append([]image.Point(nil), pts...), pts[0]), stroke, ls)
	}
}

func (c *Canvas) StrokeEllipse(center image.Point, rx, ry int, col color.Color, ls graph.LineStyle) {
	pixel.NewPen(c, c.Bounds(), col, ls).Ellipse(center, rx, ry)
}

func (c *Canvas) FillEllipse(center image.Point, rx, ry int, stroke, fill color.Color, ls graph.LineStyle) {
	if fill != nil {
		pixel.FillEllipse(c, c.Bounds(), center, rx, ry, fill)
	}
	if stroke != nil {
		c.StrokeEllipse(center, rx, ry, stroke, ls)
	}
}

func (c *Canvas) MeasureText(s string, _ *graph.Font) image.Rectangle {
	if s == "" {
		return image.Rectangle{}
	}
	_, w := tinyfont.LineWidth(c.font, s)
	return image.Rect(0, 0, int(w), int(c.fontHeight))
}

// DrawText writes s in the panel font; the graph font is ignored. rot is
// rounded to the nearest quarter turn.
func (c *Canvas) DrawText(anchor image.Point, s string, col color.Color, ha graph.HAlign, va graph.VAlign, rot float64, _ *graph.Font) {
	if s == "" || col == nil {
		return
	}
	box := c.MeasureText(s, nil)
	o := graph.TextOrigin(image.Point{}, box.Dx(), box.Dy(), ha, va)
	// baseline start in the text frame
	fx, fy := o.X, o.Y+int(c.fontOffset)
	ink := rgba(col)

	q := int(math.Round(rot/90)) % 4
	if q < 0 {
		q += 4
	}
	switch q {
	case 0:
		tinyfont.WriteLine(c.d, c.font, int16(anchor.X+fx), int16(anchor.Y+fy), s, ink)
	case 1:
		// counterclockwise on screen is a 270 degree clockwise turn
		tinyfont.WriteLineRotated(c.d, c.font, int16(anchor.X+fy), int16(anchor.Y-fx), s, ink, tinyfont.ROTATION_270)
	case 2:
		tinyfont.WriteLineRotated(c.d, c.font, int16(anchor.X-fx), int16(anchor.Y-fy), s, ink, tinyfont.ROTATION_180)
	case 3:
		tinyfont.WriteLineRotated(c.d, c.font, int16(anchor.X-fy), int16(anchor.Y+fx), s, ink, tinyfont.ROTATION_90)
	}
}
