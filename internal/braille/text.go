package braille

import (
	"image"
	"image/color"
	"math"

	runewidth "github.com/mattn/go-runewidth"

	"goplot/internal/graph"
)

// DrawText overlays s on whole cells. Text at 90 or -90 degrees runs down
// a single cell column; other angles are drawn level. Text in the
// background colour blanks the cells it covers. The font is ignored.
func (c *Canvas) DrawText(anchor image.Point, s string, col color.Color, ha graph.HAlign, va graph.VAlign, rot float64, _ *graph.Font) {
	if s == "" {
		return
	}
	switch quarterTurns(rot) {
	case 1:
		c.drawVertical(anchor, s, col, ha, va, func(lx, ly int) image.Point {
			return image.Pt(anchor.X+ly, anchor.Y-lx)
		})
	case 3:
		c.drawVertical(anchor, s, col, ha, va, func(lx, ly int) image.Point {
			return image.Pt(anchor.X-ly, anchor.Y+lx)
		})
	default:
		w := textWidth(s) * CellW
		o := graph.TextOrigin(anchor, w, CellH, ha, va)
		cx := floorDiv(o.X+CellW/2, CellW)
		cy := floorDiv(o.Y+CellH/2, CellH)
		for _, r := range s {
			rw := runewidth.RuneWidth(r)
			if rw == 0 {
				continue
			}
			c.put(cx, cy, r, rw, col)
			cx += rw
		}
	}
}

// drawVertical lays runes one per cell row along the reading direction.
// toScreen maps text-frame pixels, x along the text, to canvas pixels.
func (c *Canvas) drawVertical(anchor image.Point, s string, col color.Color, ha graph.HAlign, va graph.VAlign, toScreen func(lx, ly int) image.Point) {
	rs := []rune(s)
	o := graph.TextOrigin(image.Point{}, len(rs)*CellH, CellW, ha, va)
	for i, r := range rs {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		p := toScreen(o.X+i*CellH+CellH/2, o.Y+CellW/2)
		c.put(floorDiv(p.X, CellW), floorDiv(p.Y, CellH), r, rw, col)
	}
}

func (c *Canvas) put(cx, cy int, r rune, rw int, col color.Color) {
	erase := c.isBackground(col)
	for i := 0; i < rw; i++ {
		ce := c.at(cx+i, cy)
		if ce == nil {
			continue
		}
		if next := c.at(cx+i+1, cy); next != nil && next.text == wide {
			next.text = 0
		}
		switch {
		case erase:
			ce.mask, ce.text = 0, 0
		case i == 0:
			ce.text, ce.fg = r, col
		default:
			ce.text = wide
		}
	}
}

// MeasureText returns the level extent of s in pixels.
func (c *Canvas) MeasureText(s string, _ *graph.Font) image.Rectangle {
	return image.Rect(0, 0, textWidth(s)*CellW, CellH)
}

// quarterTurns rounds rot degrees to the nearest multiple of 90 in [0, 4).
func quarterTurns(rot float64) int {
	q := int(math.Round(rot/90)) % 4
	if q < 0 {
		q += 4
	}
	return q
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
