package clockless

import (
	"bytes"
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

var testFreqs = []physic.Frequency{
	16 * physic.MegaHertz,
	48 * physic.MegaHertz,
	64 * physic.MegaHertz,
	120 * physic.MegaHertz,
	168 * physic.MegaHertz,
	240 * physic.MegaHertz,
}

// pattern returns n bytes that exercise both bit values in every position.
func pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*37 + 11)
	}
	return b
}

// wireBytes is what a strip should receive for n pixels of data.
func wireBytes(data []byte, n, stride int, o Order, scale uint8) []byte {
	var out []byte
	for p := 0; p < n; p++ {
		for _, off := range o.Offsets() {
			out = append(out, Scale8(data[p*stride+int(off)], scale))
		}
	}
	return out
}

// runFrame sends one frame through a fresh simulator on pin 4 of a port.
func runFrame(t *testing.T, p *Program, data []byte, n, stride int, scale uint8) *Trace {
	t.Helper()
	var port MemPort
	sim := NewSimulator(p)
	sim.Transmit(Latch(port.Pin(4)), data, n, stride, scale)
	if port.Get()&(1<<4) != 0 {
		t.Errorf("%s: line left high after the frame", p.Spec.Name)
	}
	return sim.Trace()
}

// checkPulses verifies the width and spacing of every bit against want.
func checkPulses(t *testing.T, p *Program, tr *Trace, want []byte) {
	t.Helper()
	pulses := tr.Pulses()
	if len(pulses) != len(want)*8 {
		t.Fatalf("%s at %s on %s: %d pulses, want %d", p.Spec.Name, p.Freq, p.Arch.Name, len(pulses), len(want)*8)
	}
	tm := p.Timing
	for i, pl := range pulses {
		one := want[i/8]&(0x80>>uint(i%8)) != 0
		width := tm.T1
		if one {
			width += tm.T2
		}
		if pl.Width != width {
			t.Errorf("%s at %s on %s: bit %d width %d, want %d", p.Spec.Name, p.Freq, p.Arch.Name, i, pl.Width, width)
		}
		if i < len(pulses)-1 && pl.Period != tm.Period() {
			t.Errorf("%s at %s on %s: bit %d period %d, want %d", p.Spec.Name, p.Freq, p.Arch.Name, i, pl.Period, tm.Period())
		}
	}
	last := pulses[len(pulses)-1]
	if got := tr.End - last.Start; got != int64(tm.Period()-p.Arch.Store) {
		t.Errorf("%s at %s on %s: frame ends %d cycles after the last edge, want %d", p.Spec.Name, p.Freq, p.Arch.Name, got, tm.Period()-p.Arch.Store)
	}
}

func TestSimulator_timing(t *testing.T) {
	compiled := 0
	for _, a := range []*Arch{&CortexM, &RISCV, &AVR} {
		for _, s := range chipsets {
			for _, f := range testFreqs {
				for _, o := range []Order{OrderGRB, OrderRGB | WithWhite} {
					p, err := Compile(a, s, f, o)
					if errors.Is(err, ErrTimingFloor) {
						continue
					}
					if err != nil {
						t.Fatalf("%s at %s on %s: %v", s.Name, f, a.Name, err)
					}
					compiled++
					bpp := o.BytesPerPixel()
					for _, n := range []int{1, 2, 5} {
						// Exactly sized: reading past the end panics.
						data := pattern(n * bpp)
						tr := runFrame(t, p, data, n, bpp, 255)
						checkPulses(t, p, tr, wireBytes(data, n, bpp, o, 255))
					}
				}
			}
		}
	}
	if compiled < 200 {
		t.Errorf("only %d configurations compiled", compiled)
	}
}

func TestCompile_floor(t *testing.T) {
	tests := []struct {
		a     *Arch
		s     Spec
		f     physic.Frequency
		floor bool
	}{
		// T3 of 6 cycles holds a store, a move and the loop branch.
		{&AVR, SpecWS2812, 16 * physic.MegaHertz, false},
		{&AVR, SpecSK6812, 16 * physic.MegaHertz, true},
		{&AVR, SpecWS2812, 8 * physic.MegaHertz, true},
		{&AVR, SpecWS2811, 16 * physic.MegaHertz, false},
		{&AVR, SpecWS2812, 20 * physic.MegaHertz, false},
		{&CortexM, SpecWS2812, 8 * physic.MegaHertz, true},
		{&CortexM, SpecWS2812, 48 * physic.MegaHertz, false},
		{&RISCV, SpecLPD1886, 16 * physic.MegaHertz, true},
		{&RISCV, SpecWS2812, 320 * physic.MegaHertz, false},
	}
	for _, tt := range tests {
		_, err := Compile(tt.a, tt.s, tt.f, OrderGRB)
		if got := errors.Is(err, ErrTimingFloor); got != tt.floor {
			t.Errorf("%s at %s on %s: got err %v, want floor %v", tt.s.Name, tt.f, tt.a.Name, err, tt.floor)
		}
	}
}

func TestProgram_countFetch(t *testing.T) {
	for _, tt := range []struct {
		a *Arch
		f physic.Frequency
	}{
		{&AVR, 16 * physic.MegaHertz},
		{&RISCV, 120 * physic.MegaHertz},
		{&CortexM, 120 * physic.MegaHertz},
	} {
		p, err := Compile(tt.a, SpecWS2812, tt.f, OrderGRB)
		if err != nil {
			t.Fatalf("%s: %v", tt.a.Name, err)
		}
		count := -1
		for addr := p.Loop; addr < p.Tail; addr++ {
			if p.Instr(addr).Kind == KindCount {
				if count >= 0 {
					t.Errorf("%s: second count at %d", tt.a.Name, addr)
				}
				count = addr
			}
		}
		if count < 0 {
			t.Fatalf("%s: pixel loop never counts", tt.a.Name)
		}
		// The counter is tested directly, so the decrement runs in an idle
		// slot before the last bit.
		lastBit := p.Tail - 1
		for p.Instr(lastBit).Kind != KindStoreHigh {
			lastBit--
		}
		if got := count < lastBit; got != tt.a.CountFetch {
			t.Errorf("%s: count at %d, last rising edge at %d", tt.a.Name, count, lastBit)
		}
	}

	// WS2812 at 16MHz on AVR, sent in full.
	p, err := Compile(&AVR, SpecWS2812, 16*physic.MegaHertz, OrderGRB)
	if err != nil {
		t.Fatal(err)
	}
	if p.Timing != (Timing{4, 10, 6}) {
		t.Errorf("timing %+v", p.Timing)
	}
	data := pattern(4 * 3)
	tr := runFrame(t, p, data, 4, 3, 255)
	checkPulses(t, p, tr, wireBytes(data, 4, 3, OrderGRB, 255))
}

func TestCompile_errors(t *testing.T) {
	if _, err := Compile(nil, SpecWS2812, 64*physic.MegaHertz, OrderGRB); !errors.Is(err, ErrUnknownArch) {
		t.Errorf("nil arch: got %v", err)
	}
	if _, err := Compile(&CortexM, SpecWS2812, 0, OrderGRB); !errors.Is(err, ErrNoFrequency) {
		t.Errorf("zero frequency: got %v", err)
	}
	if _, err := Compile(&CortexM, SpecWS2812, 64*physic.MegaHertz, Order(7)); !errors.Is(err, ErrUnknownOrder) {
		t.Errorf("bad order: got %v", err)
	}
}

func TestProgram_layout(t *testing.T) {
	p, err := Compile(&CortexM, SpecWS2812, 120*physic.MegaHertz, OrderGRB)
	if err != nil {
		t.Fatal(err)
	}
	if in := p.Instr(0); in.Kind != KindStoreLow {
		t.Errorf("program starts with %s, want the line forced low", in)
	}
	if in := p.Instr(p.Loop - 1); in.Kind != KindSkipIfEmpty || int(in.Arg) != p.Tail {
		t.Errorf("instruction before the loop is %s, want skip.empty %d", in, p.Tail)
	}
	if in := p.Instr(p.Tail - 1); in.Kind != KindBranchMore || int(in.Arg) != p.Loop {
		t.Errorf("instruction before the tail is %s, want branch.more %d", in, p.Loop)
	}
	pad := CortexM.LoopTaken - CortexM.LoopExit
	if in := p.Instr(p.Tail); in.Kind != KindNop || int(in.Arg) != pad {
		t.Errorf("tail starts with %s, want nop %d", in, pad)
	}
	for addr := p.Tail; addr < len(p.Code); addr++ {
		if in := p.Instr(addr); in.Kind == KindAddStride || in.Kind == KindBranchMore {
			t.Errorf("tail instruction %d is %s", addr, in)
		}
	}
	if p.BytesPerPixel() != 3 {
		t.Errorf("BytesPerPixel() = %d", p.BytesPerPixel())
	}
	if got := p.FrameDuration(3); got != 90*1000 {
		t.Errorf("FrameDuration(3) = %v, want 90µs", got)
	}
}

func TestProgram_String(t *testing.T) {
	p, err := Compile(&RISCV, SpecSK6812, 64*physic.MegaHertz, OrderGRB|WithWhite)
	if err != nil {
		t.Fatal(err)
	}
	s := p.String()
	for _, want := range []string{"; SK6812 GRBW at 64MHz on riscv", "loop:\n", "tail:\n", "skip.set", "[3/1]"} {
		if !bytes.Contains([]byte(s), []byte(want)) {
			t.Errorf("listing lacks %q", want)
		}
	}
}

func TestSimulator_scale(t *testing.T) {
	p, err := Compile(&CortexM, SpecWS2812, 64*physic.MegaHertz, OrderRGB)
	if err != nil {
		t.Fatal(err)
	}
	data := pattern(12)
	for _, scale := range []uint8{0, 1, 64, 128, 254, 255} {
		tr := runFrame(t, p, data, 4, 3, scale)
		got, err := Decode(tr.Stream(), DecodeThreshold(p.Spec))
		if err != nil {
			t.Fatal(err)
		}
		if want := wireBytes(data, 4, 3, OrderRGB, scale); !bytes.Equal(got, want) {
			t.Errorf("scale %d: got % x, want % x", scale, got, want)
		}
	}
}

func TestSimulator_repeat(t *testing.T) {
	p, err := Compile(&AVR, SpecWS2811, 16*physic.MegaHertz, OrderBGR)
	if err != nil {
		t.Fatal(err)
	}
	// A stride of 0 reads a single pixel for the whole frame.
	px := []byte{0x12, 0x34, 0x56}
	tr := runFrame(t, p, px, 7, 0, 255)
	var want []byte
	for i := 0; i < 7; i++ {
		want = append(want, 0x56, 0x34, 0x12)
	}
	checkPulses(t, p, tr, want)
}

func TestSimulator_empty(t *testing.T) {
	p, err := Compile(&CortexM, SpecWS2812, 64*physic.MegaHertz, OrderGRB)
	if err != nil {
		t.Fatal(err)
	}
	var port MemPort
	sim := NewSimulator(p)
	sim.Transmit(Latch(port.Pin(0)), nil, 0, 3, 255)
	if len(sim.Trace().Edges) != 0 || port.Writes() != 0 || sim.Frames() != 0 {
		t.Errorf("empty frame touched the line: %d edges, %d writes", len(sim.Trace().Edges), port.Writes())
	}
}

func TestSimulator_shortBuffer(t *testing.T) {
	p, err := Compile(&CortexM, SpecWS2812, 64*physic.MegaHertz, OrderGRB)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("short buffer did not panic")
		}
	}()
	var port MemPort
	NewSimulator(p).Transmit(Latch(port.Pin(0)), make([]byte, 5), 2, 3, 255)
}

func TestSimulator_otherPins(t *testing.T) {
	p, err := Compile(&CortexM, SpecWS2812, 64*physic.MegaHertz, OrderGRB)
	if err != nil {
		t.Fatal(err)
	}
	const others = 0x8001_0101
	var port MemPort
	port.Set(others)
	var sc SetClearPort
	scPin := sc.Pin(3)
	setReg, mask := sc.Pin(8).PortMaskSet()
	setReg.Set(mask)

	data := []byte{0xff, 0x00, 0xa5}
	sim := NewSimulator(p)
	for _, pin := range []FastPin{port.Pin(4), scPin} {
		sim.Transmit(Latch(pin), data, 1, 3, 255)
		if got := len(sim.Trace().Pulses()); got != 24 {
			t.Errorf("%T: %d pulses, want 24", pin, got)
		}
	}
	if port.Get() != others {
		t.Errorf("MemPort = %#x after frame, want %#x", port.Get(), others)
	}
	if sc.Get() != 1<<8 {
		t.Errorf("SetClearPort = %#x after frame, want %#x", sc.Get(), 1<<8)
	}
}

func TestTrace_Stream(t *testing.T) {
	tr := Trace{
		Freq: physic.MegaHertz,
		Edges: []Edge{
			{Cycle: 2, Level: gpio.High},
			{Cycle: 5, Level: gpio.Low},
			{Cycle: 9, Level: gpio.High},
			{Cycle: 10, Level: gpio.Low},
		},
		End: 12,
	}
	s := tr.Stream()
	if want := []byte{0x38, 0x40}; !bytes.Equal(s.Bits, want) {
		t.Errorf("Stream() = % x, want % x", s.Bits, want)
	}
	pulses := tr.Pulses()
	want := []Pulse{{Start: 2, Width: 3, Period: 7}, {Start: 9, Width: 1}}
	if len(pulses) != len(want) {
		t.Fatalf("Pulses() = %v", pulses)
	}
	for i := range want {
		if pulses[i] != want[i] {
			t.Errorf("pulse %d = %+v, want %+v", i, pulses[i], want[i])
		}
	}
}
