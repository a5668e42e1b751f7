//go:build tinygo && (cortexm || tinygo.riscv32 || avr)

// Package bitbang runs clockless bit programs on TinyGo targets.
//
// The engines are C functions with inline assembly written by
// cmd/clocklessgen for the chipsets, color orders and CPU frequencies listed
// in clockless.gen. NewEngine picks the one matching machine.CPUFrequency.
package bitbang

import (
	"errors"
	"machine"
	"runtime/interrupt"

	"periph.io/x/conn/v3/physic"

	"github.com/tinygo-org/clockless"
)

// ErrNoEngine is returned by NewEngine when no engine was generated for the
// chipset, color order and CPU frequency. Add a line to clockless.gen and run
// go generate.
var ErrNoEngine = errors.New("bitbang: no generated engine for this chipset, order and CPU frequency")

// sendFunc runs one generated program. count is the number of pixels after
// the first.
type sendFunc func(data *byte, count, stride uint32, scale uint8, p *port)

type engineFunc struct {
	chipset string
	order   clockless.Order
	freq    uint32
	send    sendFunc
}

// engines is filled by the init functions of the generated files.
var engines []engineFunc

// Engine is a clockless.Engine running a generated program with interrupts
// masked.
type Engine struct {
	prog *clockless.Program
	send sendFunc
}

// NewEngine returns the engine for chipset s and order o at the current CPU
// frequency.
func NewEngine(s clockless.Spec, o clockless.Order) (*Engine, error) {
	freq := machine.CPUFrequency()
	for _, e := range engines {
		if e.chipset != s.Name || e.order != o || e.freq != freq {
			continue
		}
		p, err := clockless.Compile(arch, s, physic.Frequency(freq)*physic.Hertz, o)
		if err != nil {
			return nil, err
		}
		return &Engine{prog: p, send: e.send}, nil
	}
	return nil, ErrNoEngine
}

// Program returns the program the engine was generated from.
func (e *Engine) Program() *clockless.Program { return e.prog }

// Transmit implements clockless.Engine.
func (e *Engine) Transmit(w clockless.Words, data []byte, n, stride int, scale uint8) {
	if n <= 0 {
		return
	}
	if uint64(n) > maxLeds {
		panic("bitbang: too many pixels for this arch")
	}
	if len(data) < (n-1)*stride+e.prog.BytesPerPixel() {
		panic("bitbang: pixel buffer shorter than numLeds")
	}
	p := portOf(w)
	mask := interrupt.Disable()
	e.send(&data[0], uint32(n-1), uint32(stride), scale, &p)
	interrupt.Restore(mask)
}
