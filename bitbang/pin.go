//go:build tinygo && (cortexm || tinygo.riscv32)

package bitbang

import (
	"machine"
	"runtime/volatile"
	"unsafe"

	"github.com/tinygo-org/clockless"
)

// Register is a memory mapped 32-bit port register.
type Register struct {
	reg *uint32
}

func (r Register) Get() uint32  { return volatile.LoadUint32(r.reg) }
func (r Register) Set(v uint32) { volatile.StoreUint32(r.reg, v) }

// Pin is a clockless.FastPin over a machine.Pin. Ports of these targets have
// separate set and clear registers, so the stored words are the pin mask and
// do not depend on the state of other pins.
type Pin struct {
	pin      machine.Pin
	set, clr *uint32
	hi, lo   uint32
}

// NewPin resolves the port registers and mask of p. It panics on NoPin.
func NewPin(p machine.Pin) *Pin {
	if p == machine.NoPin {
		panic("bitbang: invalid pin")
	}
	set, hi := p.PortMaskSet()
	clr, lo := p.PortMaskClear()
	return &Pin{pin: p, set: set, clr: clr, hi: hi, lo: lo}
}

// Configure makes the pin an output.
func (p *Pin) Configure() {
	p.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
}

func (p *Pin) Mask() uint32 { return p.hi }

func (p *Pin) PortMaskSet() (clockless.Register, uint32) {
	return Register{p.set}, p.hi
}

func (p *Pin) PortMaskClear() (clockless.Register, uint32) {
	return Register{p.clr}, p.lo
}

// port is the argument block of a generated engine.
type port struct {
	set, clr unsafe.Pointer
	hi, lo   uint32
}

func portOf(w clockless.Words) port {
	return port{
		set: unsafe.Pointer(w.SetReg.(Register).reg),
		clr: unsafe.Pointer(w.ClearReg.(Register).reg),
		hi:  w.High,
		lo:  w.Low,
	}
}
