package graph

import "image/color"

// Style carries the colours and font a Renderer decorates with.
type Style struct {
	Background color.Color
	Grid       color.Color
	Label      color.Color
	Box        color.Color
	Font       Font
}

// DefaultStyle is a dark palette matching the terminal viewer.
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{R: 0x0b, G: 0x0f, B: 0x14, A: 0xff},
		Grid:       color.RGBA{R: 0x24, G: 0x31, B: 0x41, A: 0xff},
		Label:      color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff},
		Box:        color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff},
		Font:       Font{Name: "Go", Size: 9},
	}
}

// LightStyle suits paper-like backgrounds such as exported PNG frames.
func LightStyle() Style {
	return Style{
		Background: color.White,
		Grid:       color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
		Label:      color.Black,
		Box:        color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff},
		Font:       Font{Name: "Go", Size: 11},
	}
}
