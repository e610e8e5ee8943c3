package panel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

var errNoFrame = errors.New("panel: nothing displayed yet")

// Framebuffer is a drivers.Displayer held in memory, for previewing panel
// output off the device. SetPixel draws into a back buffer; Display
// presents it.
type Framebuffer struct {
	back, front *image.RGBA
	frames      int
}

// NewFramebuffer returns a w x h framebuffer. Sizes are limited to the
// int16 range drivers use.
func NewFramebuffer(w, h int) *Framebuffer {
	w = min(max(w, 1), 1<<15-1)
	h = min(max(h, 1), 1<<15-1)
	return &Framebuffer{
		back:  image.NewRGBA(image.Rect(0, 0, w, h)),
		front: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

func (f *Framebuffer) Size() (x, y int16) {
	b := f.back.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if !image.Pt(int(x), int(y)).In(f.back.Bounds()) {
		return
	}
	f.back.SetRGBA(int(x), int(y), c)
}

func (f *Framebuffer) Display() error {
	copy(f.front.Pix, f.back.Pix)
	f.frames++
	return nil
}

// Frames counts Display calls.
func (f *Framebuffer) Frames() int { return f.frames }

// Image is the last displayed frame.
func (f *Framebuffer) Image() *image.RGBA { return f.front }

// EncodePNG writes the last displayed frame.
func (f *Framebuffer) EncodePNG(w io.Writer) error {
	if f.frames == 0 {
		return errNoFrame
	}
	if err := gg.NewContextForImage(f.front).EncodePNG(w); err != nil {
		return fmt.Errorf("panel: png: %w", err)
	}
	return nil
}
