package clockless

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// stepClock moves forward one microsecond, or step, on every read.
type stepClock struct {
	now   uint32
	step  uint32
	reads int
}

func (c *stepClock) Micros() uint32 {
	if c.step == 0 {
		c.now++
	} else {
		c.now += c.step
	}
	c.reads++
	return c.now
}

func (c *stepClock) Advance(us uint32) { c.now += us }

func TestFrameGap_wait(t *testing.T) {
	tests := []struct {
		start uint32
		wait  time.Duration
	}{
		{start: 0, wait: 50 * time.Microsecond},
		{start: 1000, wait: 280 * time.Microsecond},
		// Mark lands just before the 16-bit wrap.
		{start: 65530, wait: 10 * time.Microsecond},
		{start: 0xffff_fff0, wait: 300 * time.Microsecond},
	}
	for _, tt := range tests {
		c := &stepClock{now: tt.start}
		g := NewFrameGap(c, tt.wait)
		g.Mark()
		marked := c.now
		g.Wait()
		if got := time.Duration(c.now-marked) * time.Microsecond; got != tt.wait {
			t.Errorf("start %d: waited %v, want %v", tt.start, got, tt.wait)
		}
	}
}

func TestFrameGap_firstFrame(t *testing.T) {
	c := &stepClock{}
	g := NewFrameGap(c, time.Millisecond)
	g.Wait()
	if c.reads != 0 {
		t.Errorf("first Wait read the clock %d times", c.reads)
	}
	g.Mark()
	g.Reset()
	g.Wait()
	if c.reads != 1 {
		t.Errorf("Wait after Reset read the clock %d times", c.reads-1)
	}
}

func TestFrameGap_SetWait(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want uint16
	}{
		{0, 0},
		{-time.Second, 0},
		{1500 * time.Nanosecond, 2},
		{280 * time.Microsecond, 280},
		{time.Second, 0xff00},
	}
	var g FrameGap
	for _, tt := range tests {
		g.SetWait(tt.d)
		if g.wait != tt.want {
			t.Errorf("SetWait(%v) = %dµs, want %dµs", tt.d, g.wait, tt.want)
		}
	}
}

func TestFrameGap_coarseClock(t *testing.T) {
	// A clock ticking every 100µs never reads the exact end of the longest
	// gap.
	c := &stepClock{step: 100}
	g := NewFrameGap(c, time.Second)
	g.Mark()
	marked := c.now
	g.Wait()
	if got := time.Duration(c.now-marked) * time.Microsecond; got < MaxGap || got >= MaxGap+100*time.Microsecond {
		t.Errorf("waited %v, want %v rounded up to the clock step", got, MaxGap)
	}
}

func TestNewClock(t *testing.T) {
	fake := clockwork.NewFakeClock()
	c := NewClock(fake)
	if c.Micros() != 0 {
		t.Fatalf("new clock reads %d", c.Micros())
	}
	fake.Advance(1500 * time.Microsecond)
	if got := c.Micros(); got != 1500 {
		t.Errorf("after 1.5ms got %dµs", got)
	}
	c.Advance(90)
	if got := c.Micros(); got != 1590 {
		t.Errorf("after Advance(90) got %dµs", got)
	}
}
