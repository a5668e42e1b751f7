package clockless

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/pixel"
)

// Strip is a 1×N drivers.Displayer over a 3-channel controller, so code
// written against TinyGo display drivers can paint a strip.
type Strip[C Chipset, O Ordering] struct {
	ctl        *Controller[C, O]
	img        pixel.Image[pixel.RGB888]
	brightness uint8
}

var _ drivers.Displayer = (*Strip[WS2812, GRB])(nil)

// NewStrip returns a strip of numLeds pixels at full brightness. It fails
// for 4-channel orders, whose pixels do not fit an RGB888 buffer.
func NewStrip[C Chipset, O Ordering](ctl *Controller[C, O], numLeds int) (*Strip[C, O], error) {
	if ctl.BytesPerPixel() != 3 {
		return nil, ErrNotRGB
	}
	return &Strip[C, O]{
		ctl:        ctl,
		img:        pixel.NewImage[pixel.RGB888](numLeds, 1),
		brightness: 255,
	}, nil
}

// Size returns the strip length and a height of 1.
func (s *Strip[C, O]) Size() (x, y int16) {
	w, h := s.img.Size()
	return int16(w), int16(h)
}

// SetPixel sets pixel x. Out of range coordinates are ignored.
func (s *Strip[C, O]) SetPixel(x, y int16, c color.RGBA) {
	w, _ := s.img.Size()
	if y != 0 || x < 0 || int(x) >= w {
		return
	}
	s.img.Set(int(x), 0, pixel.NewRGB888(c.R, c.G, c.B))
}

// Pixel returns the color of pixel x, or black when x is off the strip.
func (s *Strip[C, O]) Pixel(x int16) color.RGBA {
	if w, _ := s.img.Size(); x < 0 || int(x) >= w {
		return color.RGBA{}
	}
	return s.img.Get(int(x), 0).RGBA()
}

// Fill sets every pixel to c.
func (s *Strip[C, O]) Fill(c color.RGBA) {
	s.img.FillSolidColor(pixel.NewRGB888(c.R, c.G, c.B))
}

// SetBrightness sets the scale applied by Display.
func (s *Strip[C, O]) SetBrightness(b uint8) {
	s.brightness = b
}

// Display sends the buffer to the strip.
func (s *Strip[C, O]) Display() error {
	s.ctl.Show(s.img.RawBuffer(), s.img.Len(), s.brightness)
	return nil
}
