package clockless

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/physic"
)

// Spec is the wire timing of a chipset. A bit starts with a rising edge; a
// zero bit falls after T1, a one bit after T1+T2, and the next bit rises
// T1+T2+T3 after the first edge.
type Spec struct {
	Name       string
	T1, T2, T3 time.Duration
	// Reset is the idle low time after which the strip latches a frame.
	Reset time.Duration
}

func (s Spec) String() string {
	return fmt.Sprintf("%s(%v/%v/%v)", s.Name, s.T1, s.T2, s.T3)
}

// Cycles converts the wire timing into CPU cycles at freq, rounding up.
func (s Spec) Cycles(freq physic.Frequency) Timing {
	return Timing{
		T1: Cycles(s.T1, freq),
		T2: Cycles(s.T2, freq),
		T3: Cycles(s.T3, freq),
	}
}

// Cycles returns d in cycles of freq, rounded up.
func Cycles(d time.Duration, freq physic.Frequency) int {
	khz := int64(freq / physic.KiloHertz)
	return int((int64(d)*khz + 999_999) / 1_000_000)
}

// Timing is a chipset timing in CPU cycles.
type Timing struct {
	T1, T2, T3 int
}

// Period is the length of one bit in cycles.
func (t Timing) Period() int {
	return t.T1 + t.T2 + t.T3
}

// Threshold is the pulse width in cycles that separates a zero bit from a
// one bit, halfway between T1 and T1+T2.
func (t Timing) Threshold() int {
	return t.T1 + t.T2/2
}

// Duration converts a cycle count at freq back to time.
func Duration(cycles int, freq physic.Frequency) time.Duration {
	khz := int64(freq / physic.KiloHertz)
	if khz == 0 {
		return 0
	}
	return time.Duration(int64(cycles) * 1_000_000 / khz)
}

// FrameDuration is the time it takes to send n bytes with timing t at freq.
func FrameDuration(t Timing, freq physic.Frequency, n int) time.Duration {
	return Duration(t.Period()*8*n, freq)
}

// MaxRefreshRate is the highest frame rate at which numLeds pixels of
// bytesPerPixel bytes can be sent, including the reset gap of s.
func MaxRefreshRate(s Spec, numLeds, bytesPerPixel int) physic.Frequency {
	frame := time.Duration(numLeds*bytesPerPixel*8)*(s.T1+s.T2+s.T3) + s.Reset
	if frame <= 0 {
		return 0
	}
	return physic.PeriodToFrequency(frame)
}
