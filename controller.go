package clockless

import (
	"fmt"
	"image/color"
	"time"
)

// Controller sends frames to a strip of chipset C wired in color order O.
// It is not safe for concurrent use; one frame is in flight at a time and
// callers serialise.
type Controller[C Chipset, O Ordering] struct {
	pin    FastPin
	engine Engine
	clock  Clock
	gap    *FrameGap
	order  Order
	mask   uint32
	inited bool
	// scratch holds the pixel repeated by ShowColor.
	scratch [4]byte
	nc      noCopy
}

// NewController returns a controller for pin sending through engine. The
// engine program must have been compiled for chipset C and order O.
func NewController[C Chipset, O Ordering](pin FastPin, engine Engine, clock Clock) (*Controller[C, O], error) {
	var chip C
	var ord O
	p := engine.Program()
	if p.Spec != chip.Spec() || p.Order != ord.Order() {
		return nil, fmt.Errorf("%w: have %s %s, want %s %s",
			ErrEngineMismatch, p.Spec.Name, p.Order, chip.Spec().Name, ord.Order())
	}
	return &Controller[C, O]{
		pin:    pin,
		engine: engine,
		clock:  clock,
		gap:    NewFrameGap(clock, chip.Spec().Reset),
		order:  ord.Order(),
	}, nil
}

// Init configures the pin and caches its mask. It is called by the first
// frame and may be called again.
func (c *Controller[C, O]) Init() {
	if c.inited {
		return
	}
	c.pin.Configure()
	c.mask = c.pin.Mask()
	c.inited = true
}

// Mask is the port bit of the data pin, valid after Init.
func (c *Controller[C, O]) Mask() uint32 { return c.mask }

// SetGap overrides the minimum idle time between frames.
func (c *Controller[C, O]) SetGap(d time.Duration) {
	c.gap.SetWait(d)
}

// BytesPerPixel is 3, or 4 when O has a white channel.
func (c *Controller[C, O]) BytesPerPixel() int {
	return c.order.BytesPerPixel()
}

// ShowRGB sends numLeds pixels from buf at full brightness.
func (c *Controller[C, O]) ShowRGB(buf []byte, numLeds int) {
	c.Show(buf, numLeds, 255)
}

// Show sends numLeds pixels from buf scaled by scale/256. buf holds R, G, B
// (and W) per pixel; it is read, never modified.
func (c *Controller[C, O]) Show(buf []byte, numLeds int, scale uint8) {
	c.show(buf, numLeds, c.order.BytesPerPixel(), scale)
}

// ShowColor sends col to numLeds pixels without a frame buffer. The white
// channel of a 4-channel strip is off.
func (c *Controller[C, O]) ShowColor(col color.RGBA, numLeds int, scale uint8) {
	c.ShowColorW(col, 0, numLeds, scale)
}

// ShowColorW is ShowColor with a white level for 4-channel strips. white is
// ignored for 3-channel orders.
func (c *Controller[C, O]) ShowColorW(col color.RGBA, white uint8, numLeds int, scale uint8) {
	c.scratch = [4]byte{col.R, col.G, col.B, white}
	c.show(c.scratch[:c.order.BytesPerPixel()], numLeds, 0, scale)
}

// ClearLeds turns numLeds pixels off.
func (c *Controller[C, O]) ClearLeds(numLeds int) {
	c.ShowColor(color.RGBA{}, numLeds, 255)
}

func (c *Controller[C, O]) show(data []byte, numLeds, stride int, scale uint8) {
	if numLeds <= 0 {
		return
	}
	c.Init()
	c.gap.Wait()
	w := Latch(c.pin)
	c.engine.Transmit(w, data, numLeds, stride, scale)
	c.clock.Advance(uint32(c.engine.Program().FrameDuration(numLeds) / time.Microsecond))
	c.gap.Mark()
}
