// Package braille is a graph.Canvas that draws on a grid of terminal cells,
// each holding a 2x4 block of braille dots. One pixel is one dot, so a
// w x h cell grid is a 2w x 4h pixel canvas.
package braille

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	runewidth "github.com/mattn/go-runewidth"

	"goplot/internal/graph"
	"goplot/internal/pixel"
)

const (
	CellW = 2
	CellH = 4

	wide = -1 // cell covered by the glyph to its left
)

// dot bits by [row][column] within a cell
var dotBits = [CellH][CellW]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type cell struct {
	mask uint8
	dot  color.Color
	text rune
	fg   color.Color
}

// Canvas is a braille drawing surface. Pixels drawn in the background
// colour erase dots instead of setting them, so hemmed primitives cut a
// clear border around themselves.
type Canvas struct {
	w, h  int
	cells []cell
	bg    color.Color

	styles map[string]lipgloss.Style
}

var _ graph.Canvas = (*Canvas)(nil)

// New returns a w x h cell canvas with background bg.
func New(w, h int, bg color.Color) *Canvas {
	w, h = max(w, 1), max(h, 1)
	return &Canvas{
		w:      w,
		h:      h,
		cells:  make([]cell, w*h),
		bg:     bg,
		styles: map[string]lipgloss.Style{},
	}
}

// Size returns the grid size in cells.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// Bounds is the pixel rectangle of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.w*CellW, c.h*CellH)
}

func (c *Canvas) Clear() {
	clear(c.cells)
}

func (c *Canvas) at(cx, cy int) *cell {
	if cx < 0 || cy < 0 || cx >= c.w || cy >= c.h {
		return nil
	}
	return &c.cells[cy*c.w+cx]
}

// Set turns one dot on, or off when col is the background.
func (c *Canvas) Set(x, y int, col color.Color) {
	if x < 0 || y < 0 {
		return
	}
	ce := c.at(x/CellW, y/CellH)
	if ce == nil {
		return
	}
	bit := dotBits[y%CellH][x%CellW]
	if c.isBackground(col) {
		ce.mask &^= bit
		return
	}
	ce.mask |= bit
	ce.dot = col
}

// Dot reports whether the dot at pixel (x, y) is on.
func (c *Canvas) Dot(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	ce := c.at(x/CellW, y/CellH)
	return ce != nil && ce.mask&dotBits[y%CellH][x%CellW] != 0
}

func (c *Canvas) isBackground(col color.Color) bool {
	if c.bg == nil || col == nil {
		return false
	}
	r1, g1, b1, a1 := col.RGBA()
	r2, g2, b2, a2 := c.bg.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
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
		ring := append(append([]image.Point(nil), pts...), pts[0])
		c.StrokePolyline(ring, stroke, ls)
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

// Lines renders each cell row as a coloured string.
func (c *Canvas) Lines() []string {
	out := make([]string, c.h)
	var row, run strings.Builder
	for y := 0; y < c.h; y++ {
		row.Reset()
		run.Reset()
		runHex := ""
		for x := 0; x < c.w; x++ {
			r, col := c.glyph(c.cells[y*c.w+x])
			if r == wide {
				continue
			}
			hex := colorHex(col)
			if hex != runHex {
				row.WriteString(c.paint(run.String(), runHex))
				run.Reset()
				runHex = hex
			}
			run.WriteRune(r)
		}
		row.WriteString(c.paint(run.String(), runHex))
		out[y] = row.String()
	}
	return out
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

func (c *Canvas) glyph(ce cell) (rune, color.Color) {
	switch {
	case ce.text != 0:
		return ce.text, ce.fg
	case ce.mask != 0:
		return rune(0x2800 + int(ce.mask)), ce.dot
	}
	return ' ', nil
}

func (c *Canvas) paint(s, hex string) string {
	if s == "" || hex == "" {
		return s
	}
	st, ok := c.styles[hex]
	if !ok {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		c.styles[hex] = st
	}
	return st.Render(s)
}

func colorHex(col color.Color) string {
	if col == nil {
		return ""
	}
	cf, ok := colorful.MakeColor(col)
	if !ok {
		return ""
	}
	return cf.Hex()
}

// textWidth is the width of s in cells.
func textWidth(s string) int {
	return runewidth.StringWidth(s)
}
