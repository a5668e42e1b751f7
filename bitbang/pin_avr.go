//go:build tinygo && avr

package bitbang

import (
	"machine"
	"runtime/volatile"
	"unsafe"

	"github.com/tinygo-org/clockless"
)

// Register is a memory mapped 8-bit port register.
type Register struct {
	reg *volatile.Register8
}

func (r Register) Get() uint32  { return uint32(r.reg.Get()) }
func (r Register) Set(v uint32) { r.reg.Set(uint8(v)) }

// Pin is a clockless.FastPin over a machine.Pin. AVR ports have a single
// output register, so the words returned by PortMaskSet and PortMaskClear
// carry the current state of the other pins and are latched once per frame.
type Pin struct {
	pin  machine.Pin
	mask uint8
}

// NewPin resolves the mask of p. It panics on NoPin.
func NewPin(p machine.Pin) *Pin {
	if p == machine.NoPin {
		panic("bitbang: invalid pin")
	}
	_, hi := p.PortMaskSet()
	_, lo := p.PortMaskClear()
	return &Pin{pin: p, mask: hi &^ lo}
}

// Configure makes the pin an output.
func (p *Pin) Configure() {
	p.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
}

func (p *Pin) Mask() uint32 { return uint32(p.mask) }

func (p *Pin) PortMaskSet() (clockless.Register, uint32) {
	reg, v := p.pin.PortMaskSet()
	return Register{reg}, uint32(v)
}

func (p *Pin) PortMaskClear() (clockless.Register, uint32) {
	reg, v := p.pin.PortMaskClear()
	return Register{reg}, uint32(v)
}

// port is the argument block of a generated engine. Set and clear share
// the output register.
type port struct {
	reg    unsafe.Pointer
	hi, lo uint8
}

func portOf(w clockless.Words) port {
	return port{
		reg: unsafe.Pointer(w.SetReg.(Register).reg),
		hi:  uint8(w.High),
		lo:  uint8(w.Low),
	}
}
