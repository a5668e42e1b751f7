package clockless

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiostream"
	"periph.io/x/conn/v3/physic"
)

// Engine sends frames with a bit program. Transmit sends n pixels from
// data, advancing stride bytes per pixel; a stride of 0 sends the first pixel
// n times. The line is forced low before the first bit. Engines do not
// return errors: every configuration check happens when the program is
// compiled.
type Engine interface {
	Program() *Program
	Transmit(w Words, data []byte, n, stride int, scale uint8)
}

// Edge is a level change of the data line, effective at Cycle.
type Edge struct {
	Cycle int64
	Level gpio.Level
}

// Trace is the waveform of one simulated frame.
type Trace struct {
	Freq  physic.Frequency
	Edges []Edge
	// End is the cycle at which the program finished.
	End int64
}

// Pulse is one high pulse of a trace. Period is the distance to the next
// rising edge, or 0 for the last pulse.
type Pulse struct {
	Start  int64
	Width  int
	Period int
}

// Pulses pairs the rising and falling edges of t.
func (t *Trace) Pulses() []Pulse {
	var out []Pulse
	for i := 0; i+1 < len(t.Edges); i++ {
		if t.Edges[i].Level != gpio.High || t.Edges[i+1].Level != gpio.Low {
			continue
		}
		if n := len(out); n > 0 {
			out[n-1].Period = int(t.Edges[i].Cycle - out[n-1].Start)
		}
		out = append(out, Pulse{Start: t.Edges[i].Cycle, Width: int(t.Edges[i+1].Cycle - t.Edges[i].Cycle)})
	}
	return out
}

// Stream samples the line once per cycle from cycle 0 to End. The result is
// MSB-first and padded with low samples to a whole byte.
func (t *Trace) Stream() *gpiostream.BitStream {
	n := int(t.End)
	bits := make([]byte, (n+7)/8)
	level := gpio.Low
	e := 0
	for i := 0; i < n; i++ {
		for e < len(t.Edges) && t.Edges[e].Cycle <= int64(i) {
			level = t.Edges[e].Level
			e++
		}
		if level == gpio.High {
			bits[i/8] |= 0x80 >> uint(i%8)
		}
	}
	return &gpiostream.BitStream{Bits: bits, Freq: t.Freq}
}

// Simulator is an Engine that runs a bit program on the host, charging every
// instruction the cycles of the program's arch. It stores to the port
// registers like the hardware engine and records the resulting waveform.
type Simulator struct {
	prog   *Program
	trace  Trace
	frames int
}

// NewSimulator returns a Simulator running p.
func NewSimulator(p *Program) *Simulator {
	return &Simulator{prog: p}
}

func (s *Simulator) Program() *Program { return s.prog }

// Trace returns the waveform of the last frame.
func (s *Simulator) Trace() *Trace { return &s.trace }

// Frames is the number of frames sent so far.
func (s *Simulator) Frames() int { return s.frames }

// Transmit implements Engine.
func (s *Simulator) Transmit(w Words, data []byte, n, stride int, scale uint8) {
	p := s.prog
	a := p.Arch
	s.trace = Trace{Freq: p.Freq}
	if n <= 0 {
		return
	}
	checkPixels(data, n, stride, p.BytesPerPixel())
	s.frames++

	var (
		v     uint8
		next  uint16
		flag  bool
		ptr   int
		count = n - 1
		cycle int64
		level = gpio.Low
	)
	store := func(reg Register, word uint32, l gpio.Level) {
		reg.Set(word)
		if l != level {
			level = l
			s.trace.Edges = append(s.trace.Edges, Edge{Cycle: cycle, Level: l})
		}
	}
	for pc := 0; pc < len(p.Code); {
		in := p.Instr(pc)
		pc++
		taken := false
		switch in.Kind {
		case KindSkipIfSet:
			taken = flag
		case KindBranchMore:
			taken = count != 0
		case KindSkipIfEmpty:
			taken = count == 0
		case KindJump:
			pc = int(in.Arg)
		}
		if taken {
			pc = int(in.Arg)
		}
		cycle += int64(a.Cost(in, taken))

		switch in.Kind {
		case KindStoreHigh:
			store(w.SetReg, w.High, gpio.High)
		case KindStoreLow:
			store(w.ClearReg, w.Low, gpio.Low)
		case KindShift:
			flag = v&0x80 != 0
			v <<= 1
		case KindLoad:
			next = uint16(data[ptr+int(in.Arg)])
		case KindAddStride:
			ptr += stride
		case KindScale:
			next *= uint16(scale) + 1
		case KindPosition:
			next >>= 8
		case KindMove:
			v = uint8(next)
		case KindCount:
			count--
		}
	}
	s.trace.End = cycle
}

func checkPixels(data []byte, n, stride, bpp int) {
	if len(data) < (n-1)*stride+bpp {
		panic(badPixelData)
	}
}
