package clockless

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the microsecond time source of a frame gap.
//
// Interrupts are masked while a frame is sent, so a tick counter driven by an
// interrupt falls behind by up to the frame duration. The controller reports
// every frame through Advance; a clock that loses ticks adds them back, one
// that keeps counting in hardware may ignore the call.
type Clock interface {
	Micros() uint32
	Advance(us uint32)
}

// NewClock returns a Clock reading c. Advance moves it forward by an offset,
// which models a frame sent by a Simulator that takes no wall time.
func NewClock(c clockwork.Clock) Clock {
	return &clock{c: c, start: c.Now()}
}

type clock struct {
	c     clockwork.Clock
	start time.Time

	mu     sync.Mutex
	offset uint32
}

func (c *clock) Micros() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return uint32(c.c.Since(c.start)/time.Microsecond) + c.offset
}

func (c *clock) Advance(us uint32) {
	c.mu.Lock()
	c.offset += us
	c.mu.Unlock()
}

// FrameGap enforces the idle time a strip needs to latch a frame before the
// next one starts. Timestamps are kept modulo 2^16 microseconds and compared
// by modular subtraction, so a gap is correct across the wrap of the counter
// as long as it is shorter than 65536µs.
type FrameGap struct {
	clock Clock
	wait  uint16
	last  uint16
	ready bool
}

// NewFrameGap returns a gap of wait on clock. The first Wait returns
// immediately.
func NewFrameGap(clock Clock, wait time.Duration) *FrameGap {
	g := &FrameGap{clock: clock}
	g.SetWait(wait)
	g.Reset()
	return g
}

// MaxGap is the longest gap a FrameGap waits. It stays 255µs short of the
// 16-bit wrap, so a clock that ticks in steps of up to 255µs cannot jump past
// the end of the wait.
const MaxGap = 0xff00 * time.Microsecond

// SetWait changes the gap length. It is rounded up to whole microseconds and
// clamped to MaxGap.
func (g *FrameGap) SetWait(wait time.Duration) {
	us := (wait + time.Microsecond - 1) / time.Microsecond
	if limit := MaxGap / time.Microsecond; us > limit {
		us = limit
	}
	if us < 0 {
		us = 0
	}
	g.wait = uint16(us)
}

// Wait spins until the gap has elapsed since the last Mark.
func (g *FrameGap) Wait() {
	if g.ready {
		return
	}
	for uint16(g.clock.Micros())-g.last < g.wait {
	}
}

// Mark records the end of a frame.
func (g *FrameGap) Mark() {
	g.last = uint16(g.clock.Micros())
	g.ready = false
}

// Reset makes the next Wait return immediately.
func (g *FrameGap) Reset() {
	g.ready = true
}
