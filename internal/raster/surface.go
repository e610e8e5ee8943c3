package raster

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/gogpu/gg"

	"goplot/internal/graph"
)

var errNoFrame = errors.New("raster: no frame drawn")

// Surface is a double-buffered raster target. Each frame is drawn on a
// fresh context and becomes visible only once drawing has finished, so
// readers never see a partial plot.
type Surface struct {
	w, h int
	bg   gg.RGBA

	mu    sync.Mutex
	front *gg.Context
}

// NewSurface returns a w x h surface cleared to bg on every frame.
func NewSurface(w, h int, style graph.Style) *Surface {
	return &Surface{w: max(w, 1), h: max(h, 1), bg: gg.FromColor(style.Background)}
}

// Size is the surface size in pixels.
func (s *Surface) Size() image.Point { return image.Pt(s.w, s.h) }

// Bounds is the drawable pixel rectangle.
func (s *Surface) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }

// Draw renders one frame with fn and presents it. On error the previous
// frame stays in place.
func (s *Surface) Draw(fn func(c graph.Canvas)) error {
	dc := gg.NewContext(s.w, s.h)
	dc.ClearWithColor(s.bg)
	c := NewCanvas(dc)
	fn(c)
	if err := c.Err(); err != nil {
		dc.Close()
		return fmt.Errorf("raster: draw frame: %w", err)
	}

	s.mu.Lock()
	old := s.front
	s.front = dc
	s.mu.Unlock()
	if old != nil {
		old.Close()
	}
	return nil
}

// Image returns a copy of the presented frame, or nil before the first
// Draw.
func (s *Surface) Image() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.front == nil {
		return nil
	}
	return s.front.Image()
}

// EncodePNG writes the presented frame as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.front == nil {
		return errNoFrame
	}
	if err := s.front.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}
