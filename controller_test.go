package clockless

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/physic"
)

func newTestController(t *testing.T) (*Controller[WS2812, GRB], *Simulator, *MemPin) {
	t.Helper()
	var port MemPort
	pin := port.Pin(5)
	ctl, sim, err := NewSimulated[WS2812, GRB](DefaultConfig(), pin, &stepClock{})
	if err != nil {
		t.Fatal(err)
	}
	return ctl, sim, pin
}

func decodeFrame(t *testing.T, sim *Simulator) []byte {
	t.Helper()
	got, err := Decode(sim.Trace().Stream(), DecodeThreshold(sim.Program().Spec))
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func TestController_Show(t *testing.T) {
	ctl, sim, pin := newTestController(t)
	buf := []byte{
		255, 0, 0,
		0, 255, 0,
		0, 0, 255,
	}
	ctl.ShowRGB(buf, 3)
	want := []byte{
		0, 255, 0,
		255, 0, 0,
		0, 0, 255,
	}
	if got := decodeFrame(t, sim); !bytes.Equal(got, want) {
		t.Errorf("wire bytes % x, want % x", got, want)
	}
	checkPulses(t, sim.Program(), sim.Trace(), want)
	if pin.Get() {
		t.Error("line left high")
	}
	if ctl.Mask() != 1<<5 {
		t.Errorf("Mask() = %#x", ctl.Mask())
	}
	if buf[0] != 255 || buf[4] != 255 || buf[8] != 255 {
		t.Error("Show modified the buffer")
	}
}

func TestController_ShowScaled(t *testing.T) {
	ctl, sim, _ := newTestController(t)
	ctl.Show([]byte{200, 100, 50}, 1, 127)
	if got, want := decodeFrame(t, sim), []byte{50, 100, 25}; !bytes.Equal(got, want) {
		t.Errorf("wire bytes %v, want %v", got, want)
	}
}

func TestController_ShowColor(t *testing.T) {
	ctl, sim, _ := newTestController(t)
	ctl.ShowColor(color.RGBA{}, 10, 255)
	pulses := sim.Trace().Pulses()
	if len(pulses) != 240 {
		t.Fatalf("%d pulses, want 240", len(pulses))
	}
	for i, p := range pulses {
		if p.Width != sim.Program().Timing.T1 {
			t.Errorf("bit %d is %d cycles wide, want a zero bit", i, p.Width)
		}
	}

	ctl.ShowColor(color.RGBA{R: 1, G: 2, B: 3}, 4, 255)
	want := bytes.Repeat([]byte{2, 1, 3}, 4)
	if got := decodeFrame(t, sim); !bytes.Equal(got, want) {
		t.Errorf("wire bytes % x, want % x", got, want)
	}

	ctl.ClearLeds(2)
	if got := decodeFrame(t, sim); !bytes.Equal(got, make([]byte, 6)) {
		t.Errorf("ClearLeds sent % x", got)
	}
}

func TestController_ShowColorW(t *testing.T) {
	var port MemPort
	ctl, sim, err := NewSimulated[SK6812, GRBW](DefaultConfig(), port.Pin(0), &stepClock{})
	if err != nil {
		t.Fatal(err)
	}
	if ctl.BytesPerPixel() != 4 {
		t.Errorf("BytesPerPixel() = %d", ctl.BytesPerPixel())
	}
	ctl.ShowColorW(color.RGBA{R: 10, G: 20, B: 30}, 40, 2, 255)
	if got, want := decodeFrame(t, sim), []byte{20, 10, 30, 40, 20, 10, 30, 40}; !bytes.Equal(got, want) {
		t.Errorf("wire bytes %v, want %v", got, want)
	}
	ctl.ShowColor(color.RGBA{R: 10, G: 20, B: 30}, 1, 255)
	if got, want := decodeFrame(t, sim), []byte{20, 10, 30, 0}; !bytes.Equal(got, want) {
		t.Errorf("wire bytes %v, want %v", got, want)
	}
}

func TestController_noLeds(t *testing.T) {
	ctl, sim, _ := newTestController(t)
	ctl.ShowRGB(nil, 0)
	ctl.ShowColor(color.RGBA{R: 255}, -1, 255)
	if sim.Frames() != 0 {
		t.Errorf("%d frames sent for no pixels", sim.Frames())
	}
}

func TestController_gap(t *testing.T) {
	fake := clockwork.NewFakeClock()
	var port MemPort
	ctl, sim, err := NewSimulated[WS2812, GRB](DefaultConfig(), port.Pin(0), NewClock(fake))
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 3)
	ctl.ShowRGB(buf, 1)

	done := make(chan struct{})
	go func() {
		ctl.ShowRGB(buf, 1)
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("second frame did not wait for the latch gap")
	case <-time.After(20 * time.Millisecond):
	}
	fake.Advance(279 * time.Microsecond)
	select {
	case <-done:
		t.Fatal("second frame started 1µs early")
	case <-time.After(20 * time.Millisecond):
	}
	fake.Advance(time.Microsecond)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("second frame never started")
	}
	if sim.Frames() != 2 {
		t.Errorf("%d frames sent, want 2", sim.Frames())
	}
}

func TestController_SetGap(t *testing.T) {
	ctl, _, _ := newTestController(t)
	ctl.SetGap(40 * time.Microsecond)
	c := &stepClock{}
	ctl.clock = c
	ctl.gap.clock = c
	ctl.ShowRGB(make([]byte, 3), 1)
	start := c.now
	ctl.ShowRGB(make([]byte, 3), 1)
	// The first frame is 30µs long and is reported through Advance.
	if waited := c.now - start; waited < 40 {
		t.Errorf("second frame started %dµs after the first", waited)
	}
}

func TestNewController_mismatch(t *testing.T) {
	var port MemPort
	tests := []struct {
		s Spec
		o Order
	}{
		{SpecSK6812, OrderGRB},
		{SpecWS2812, OrderRGB},
		{SpecWS2812, OrderGRB | WithWhite},
	}
	for _, tt := range tests {
		p, err := Compile(&CortexM, tt.s, 120*physic.MegaHertz, tt.o)
		if err != nil {
			t.Fatal(err)
		}
		_, err = NewController[WS2812, GRB](port.Pin(0), NewSimulator(p), &stepClock{})
		if !errors.Is(err, ErrEngineMismatch) {
			t.Errorf("%s %s: got %v", tt.s.Name, tt.o, err)
		}
	}
}

func TestNewSimulated_config(t *testing.T) {
	var port MemPort
	cfg := DefaultConfig()
	if err := cfg.SetArchName("avr"); err != nil {
		t.Fatal(err)
	}
	cfg.SetFrequency(16 * physic.MegaHertz)
	if _, _, err := NewSimulated[WS2812, GRB](cfg, port.Pin(0), &stepClock{}); err != nil {
		t.Errorf("WS2812 on AVR at 16MHz: %v", err)
	}
	if _, _, err := NewSimulated[SK6812, GRBW](cfg, port.Pin(0), &stepClock{}); !errors.Is(err, ErrTimingFloor) {
		t.Errorf("SK6812 on AVR at 16MHz: got %v", err)
	}
	if err := cfg.SetArchName("m68k"); !errors.Is(err, ErrUnknownArch) {
		t.Errorf("unknown arch: got %v", err)
	}

	cfg = DefaultConfig()
	cfg.SetGap(time.Millisecond)
	ctl, _, err := NewSimulated[WS2812, GRB](cfg, port.Pin(0), &stepClock{})
	if err != nil {
		t.Fatal(err)
	}
	if ctl.gap.wait != 1000 {
		t.Errorf("gap = %dµs, want 1000µs", ctl.gap.wait)
	}
}
