package clockless

import (
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3/physic"
)

// Program is a bit program: the complete instruction sequence that sends a
// frame of pixels for one arch, chipset, clock frequency and color order.
//
// The program keeps the byte being sent in a shift register and fetches the
// next byte into a lookahead register during the idle parts of the current
// byte. Its registers are:
//
//	v      shift register
//	next   lookahead register
//	ptr    current pixel
//	count  pixels left after the current one
//	stride bytes per pixel, or 0 to repeat one pixel
//	scale  brightness, applied as a multiply by scale+1
//
// The pixel loop runs for all but the last pixel. The last pixel is an
// unrolled tail that does not fetch ahead, so no byte past the end of the
// pixel data is ever read.
type Program struct {
	Arch   *Arch
	Spec   Spec
	Freq   physic.Frequency
	Timing Timing
	Order  Order
	// Code holds the program binary code in 16-bit words.
	Code []uint16
	// Loop is the address of the pixel loop, Tail of the last pixel.
	Loop, Tail int
}

// Compile builds the bit program for chipset s at freq on arch a with color
// order o. It returns an error wrapping ErrTimingFloor when the chipset
// windows are too short for the instructions that must run inside them.
func Compile(a *Arch, s Spec, freq physic.Frequency, o Order) (*Program, error) {
	if a == nil {
		return nil, ErrUnknownArch
	}
	if freq <= 0 {
		return nil, ErrNoFrequency
	}
	if !o.Valid() {
		return nil, ErrUnknownOrder
	}
	t := s.Cycles(freq)
	if err := checkFloors(a, t); err != nil {
		return nil, fmt.Errorf("%w: %s at %s on %s", err, s.Name, freq, a.Name)
	}
	b := builder{arch: a, t: t}
	if err := b.frame(o.Offsets()); err != nil {
		return nil, fmt.Errorf("%w: %s at %s on %s", err, s.Name, freq, a.Name)
	}
	p := &Program{
		Arch:   a,
		Spec:   s,
		Freq:   freq,
		Timing: t,
		Order:  o,
		Code:   make([]uint16, len(b.code)),
		Loop:   b.loop,
		Tail:   b.tail,
	}
	for i, in := range b.code {
		p.Code[i] = in.Encode()
	}
	return p, nil
}

func checkFloors(a *Arch, t Timing) error {
	if k := a.balance(); k < 0 {
		return fmt.Errorf("%w: taken branch longer than store and jump by %d cycles", ErrTimingFloor, -k)
	}
	if floor := a.ALU + a.NotTaken + a.Store; t.T1 < floor {
		return fmt.Errorf("%w: T1 is %d cycles, need %d", ErrTimingFloor, t.T1, floor)
	}
	if floor := a.Jump + a.Store; t.T2 < floor {
		return fmt.Errorf("%w: T2 is %d cycles, need %d", ErrTimingFloor, t.T2, floor)
	}
	if floor := a.t3Floor(); t.T3 < floor {
		return fmt.Errorf("%w: T3 is %d cycles, need %d", ErrTimingFloor, t.T3, floor)
	}
	return nil
}

// t3Floor is the work between the last falling edge of a pixel and the first
// rising edge of the next one.
func (a *Arch) t3Floor() int {
	n := a.Store + a.ALU + a.LoopTaken
	if !a.CountFetch {
		n += a.Count
	}
	return n
}

// Instr returns the decoded instruction at addr.
func (p *Program) Instr(addr int) Instr {
	return DecodeInstr(p.Code[addr])
}

// BytesPerPixel is the pixel size the program was compiled for.
func (p *Program) BytesPerPixel() int {
	return p.Order.BytesPerPixel()
}

// FrameDuration is the time the program takes to send numLeds pixels.
func (p *Program) FrameDuration(numLeds int) time.Duration {
	return FrameDuration(p.Timing, p.Freq, numLeds*p.BytesPerPixel())
}

// String returns an assembly-like listing with the cycle cost of every
// instruction. Conditional branches show taken/not-taken costs.
func (p *Program) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "; %s %s at %s on %s, T1=%d T2=%d T3=%d\n",
		p.Spec.Name, p.Order, p.Freq, p.Arch.Name, p.Timing.T1, p.Timing.T2, p.Timing.T3)
	for addr := range p.Code {
		switch addr {
		case p.Loop:
			sb.WriteString("loop:\n")
		case p.Tail:
			sb.WriteString("tail:\n")
		}
		in := p.Instr(addr)
		cost := fmt.Sprintf("[%d]", p.Arch.Cost(in, false))
		switch in.Kind {
		case KindSkipIfSet, KindBranchMore, KindSkipIfEmpty:
			cost = fmt.Sprintf("[%d/%d]", p.Arch.Cost(in, true), p.Arch.Cost(in, false))
		}
		fmt.Fprintf(&sb, "%4d: %-16s %s\n", addr, in, cost)
	}
	return sb.String()
}

type builder struct {
	arch *Arch
	t    Timing
	code []Instr
	loop int
	tail int
}

func (b *builder) emit(in Instr) int {
	b.code = append(b.code, in)
	return len(b.code) - 1
}

// patch points the branch at addr to the next instruction to be emitted.
func (b *builder) patch(addr int) {
	b.code[addr].Arg = operand(len(b.code))
}

func (b *builder) delay(n int) {
	for _, in := range PlanDelay(b.arch, n).instrs() {
		b.emit(in)
	}
}

// slot fills a delay of n cycles, first with as much of the pending fetch
// work as fits and then with a plain delay. It returns the work left over.
func (b *builder) slot(n int, fetch []Instr) []Instr {
	for len(fetch) > 0 {
		c := b.arch.Cost(fetch[0], false)
		if c > n {
			break
		}
		b.emit(fetch[0])
		n -= c
		fetch = fetch[1:]
	}
	b.delay(n)
	return fetch
}

// step is the work bit 0 of a byte does after its falling edge.
type step uint8

const (
	stepByte  step = iota // next byte of the same pixel
	stepPixel             // next pixel, branch back to the loop
	stepEnd               // end of frame
)

func (b *builder) frame(offsets []uint8) error {
	var asm Assembler
	a := b.arch
	bpp := len(offsets)

	// The line is forced low before the first edge; timing is free here.
	b.emit(asm.StoreLow())
	b.emit(asm.Load(int(offsets[0])))
	b.emit(asm.Scale())
	b.emit(asm.Position())
	b.emit(asm.Move())
	empty := b.emit(asm.SkipIfEmpty(0))

	b.loop = len(b.code)
	for j := 0; j < bpp; j++ {
		fetch := []Instr{asm.Load(0), asm.Scale(), asm.Position()}
		st := stepByte
		if j < bpp-1 {
			fetch[0] = asm.Load(int(offsets[j+1]))
		} else {
			fetch = []Instr{asm.AddStride(), asm.Load(int(offsets[0])), asm.Scale(), asm.Position()}
			if a.CountFetch {
				fetch = append(fetch, asm.Count())
			}
			st = stepPixel
		}
		if err := b.byteBody(fetch, st); err != nil {
			return err
		}
	}

	b.tail = len(b.code)
	b.patch(empty)
	// Leaving the loop the back-edge falls through, which is shorter than
	// the taken branch every other pixel starts with.
	if pad := a.LoopTaken - a.LoopExit; pad > 0 {
		b.emit(asm.Nop(pad))
	}
	for j := 0; j < bpp; j++ {
		var fetch []Instr
		st := stepEnd
		if j < bpp-1 {
			fetch = []Instr{asm.Load(int(offsets[j+1])), asm.Scale(), asm.Position()}
			st = stepByte
		}
		if err := b.byteBody(fetch, st); err != nil {
			return err
		}
	}
	return nil
}

// byteBody emits the eight bits of the shift register, most significant
// first. fetch is scheduled into the delay slots; st is the work of bit 0.
func (b *builder) byteBody(fetch []Instr, st step) error {
	var asm Assembler
	a := b.arch
	t := b.t
	for bit := 7; bit >= 0; bit-- {
		// Phase A: rising edge, high for T1.
		b.emit(asm.StoreHigh())
		fetch = b.slot(t.T1-(a.ALU+a.NotTaken+a.Store), fetch)
		b.emit(asm.Shift())
		skip := b.emit(asm.SkipIfSet(0))

		// Phase B: a zero bit falls now, a one bit stays high for T2.
		b.emit(asm.StoreLow())
		join := b.emit(asm.Jump(0))
		b.patch(skip)
		if k := a.balance(); k > 0 {
			b.emit(asm.Nop(k))
		}
		b.patch(join)
		fetch = b.slot(t.T2-(a.Jump+a.Store), fetch)
		b.emit(asm.StoreLow())

		// Phase C: low until the next rising edge.
		if bit > 0 {
			fetch = b.slot(t.T3-a.Store, fetch)
		}
	}
	if len(fetch) > 0 {
		return fmt.Errorf("%w: no idle cycles left to fetch the next byte", ErrTimingFloor)
	}
	switch st {
	case stepByte:
		b.emit(asm.Move())
		b.delay(t.T3 - a.Store - a.ALU)
	case stepPixel:
		b.emit(asm.Move())
		b.delay(t.T3 - a.t3Floor())
		if !a.CountFetch {
			b.emit(asm.Count())
		}
		b.emit(asm.BranchMore(b.loop))
	case stepEnd:
		b.delay(t.T3 - a.Store)
	}
	return nil
}
