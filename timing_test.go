package clockless

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio/gpiostream"
	"periph.io/x/conn/v3/physic"
)

func TestSpec_Cycles(t *testing.T) {
	tests := []struct {
		s    Spec
		f    physic.Frequency
		want Timing
	}{
		{SpecWS2812, 16 * physic.MegaHertz, Timing{4, 10, 6}},
		{SpecWS2812, 48 * physic.MegaHertz, Timing{12, 30, 18}},
		{SpecWS2812, 64 * physic.MegaHertz, Timing{16, 40, 24}},
		{SpecWS2812, 120 * physic.MegaHertz, Timing{30, 75, 45}},
		{SpecWS2812, 168 * physic.MegaHertz, Timing{42, 105, 63}},
		{SpecSK6812, 120 * physic.MegaHertz, Timing{36, 72, 36}},
		// 320ns at 16MHz is 5.12 cycles.
		{SpecWS2811, 16 * physic.MegaHertz, Timing{6, 6, 11}},
	}
	for _, tt := range tests {
		if got := tt.s.Cycles(tt.f); got != tt.want {
			t.Errorf("%s at %s: got %+v, want %+v", tt.s.Name, tt.f, got, tt.want)
		}
	}
}

func TestTiming(t *testing.T) {
	tm := SpecWS2812.Cycles(64 * physic.MegaHertz)
	if tm.Period() != 80 {
		t.Errorf("Period() = %d", tm.Period())
	}
	if tm.Threshold() != 36 {
		t.Errorf("Threshold() = %d", tm.Threshold())
	}
	if d := Duration(80, 64*physic.MegaHertz); d != 1250*time.Nanosecond {
		t.Errorf("Duration(80) = %v", d)
	}
	if d := Duration(80, 0); d != 0 {
		t.Errorf("Duration at 0Hz = %v", d)
	}
	// 3 pixels of 24 bits of 1.25µs.
	if d := FrameDuration(tm, 64*physic.MegaHertz, 9); d != 90*time.Microsecond {
		t.Errorf("FrameDuration = %v", d)
	}
}

func TestMaxRefreshRate(t *testing.T) {
	// 100 pixels take 3ms plus a 280µs latch.
	f := MaxRefreshRate(SpecWS2812, 100, 3)
	if f < 304*physic.Hertz || f > 305*physic.Hertz {
		t.Errorf("MaxRefreshRate = %s, want about 304.9Hz", f)
	}
	if f := MaxRefreshRate(Spec{}, 0, 3); f != 0 {
		t.Errorf("empty spec: %s", f)
	}
}

func TestDecode(t *testing.T) {
	// 1 cycle per sample, threshold 3 samples: 2-wide pulses are zeros and
	// 4-wide pulses are ones.
	s := &gpiostream.BitStream{
		Freq: physic.MegaHertz,
		Bits: []byte{0xf3, 0x33, 0x33, 0xcc, 0xc0},
	}
	got, err := Decode(s, 3*time.Microsecond)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{0x84}; !bytes.Equal(got, want) {
		t.Errorf("Decode = % x, want % x", got, want)
	}

	s.Bits = s.Bits[:3]
	if _, err := Decode(s, 3*time.Microsecond); !errors.Is(err, ErrTruncated) {
		t.Errorf("truncated stream: got %v", err)
	}
}

func TestDecode_LSBF(t *testing.T) {
	// Eight 4-wide pulses, sampled least significant bit first.
	s := &gpiostream.BitStream{
		Freq: physic.MegaHertz,
		LSBF: true,
		Bits: []byte{0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f},
	}
	got, err := Decode(s, 3*time.Microsecond)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{0xff}; !bytes.Equal(got, want) {
		t.Errorf("Decode = % x, want % x", got, want)
	}
}

func TestDecodeThreshold(t *testing.T) {
	if got := DecodeThreshold(SpecWS2812); got != 562*time.Nanosecond {
		t.Errorf("DecodeThreshold(WS2812) = %v", got)
	}
}
