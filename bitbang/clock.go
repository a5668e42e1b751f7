//go:build tinygo && (cortexm || tinygo.riscv32 || avr)

package bitbang

import "time"

var boot = time.Now()

// RuntimeClock is a clockless.Clock reading the TinyGo runtime timer. On
// targets whose tick counter is advanced by an interrupt the ticks of a
// masked frame are lost; Compensate adds them back on Advance.
type RuntimeClock struct {
	Compensate bool
	offset     uint32
}

func (c *RuntimeClock) Micros() uint32 {
	return uint32(time.Since(boot)/time.Microsecond) + c.offset
}

func (c *RuntimeClock) Advance(us uint32) {
	if c.Compensate {
		c.offset += us
	}
}
