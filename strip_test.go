package clockless

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"tinygo.org/x/drivers"
)

func TestStrip_Display(t *testing.T) {
	ctl, sim, _ := newTestController(t)
	strip, err := NewStrip(ctl, 4)
	if err != nil {
		t.Fatal(err)
	}
	var d drivers.Displayer = strip
	if w, h := d.Size(); w != 4 || h != 1 {
		t.Errorf("Size() = %d, %d", w, h)
	}

	d.SetPixel(0, 0, color.RGBA{R: 255, A: 255})
	d.SetPixel(3, 0, color.RGBA{B: 16, A: 255})
	// Off the strip.
	d.SetPixel(4, 0, color.RGBA{G: 255, A: 255})
	d.SetPixel(-1, 0, color.RGBA{G: 255, A: 255})
	d.SetPixel(1, 1, color.RGBA{G: 255, A: 255})
	if err := d.Display(); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0, 255, 0,
		0, 0, 0,
		0, 0, 0,
		0, 0, 16,
	}
	if got := decodeFrame(t, sim); !bytes.Equal(got, want) {
		t.Errorf("wire bytes % x, want % x", got, want)
	}
	if got := strip.Pixel(0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Pixel(0) = %v", got)
	}
	for _, x := range []int16{-1, 4, 100} {
		if got := strip.Pixel(x); got != (color.RGBA{}) {
			t.Errorf("Pixel(%d) = %v, want black", x, got)
		}
	}

	strip.Fill(color.RGBA{R: 64, G: 128, B: 255})
	strip.SetBrightness(127)
	strip.Display()
	want = bytes.Repeat([]byte{64, 32, 127}, 4)
	if got := decodeFrame(t, sim); !bytes.Equal(got, want) {
		t.Errorf("wire bytes % x, want % x", got, want)
	}
}

func TestNewStrip_white(t *testing.T) {
	var port MemPort
	ctl, _, err := NewSimulated[SK6812, GRBW](DefaultConfig(), port.Pin(0), &stepClock{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewStrip(ctl, 8); !errors.Is(err, ErrNotRGB) {
		t.Errorf("4-channel strip: got %v", err)
	}
}
