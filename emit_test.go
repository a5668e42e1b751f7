package clockless

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestProgram_Emit(t *testing.T) {
	tests := []struct {
		a    *Arch
		s    Spec
		f    physic.Frequency
		want []string
	}{
		{&CortexM, SpecWS2812, 120 * physic.MegaHertz, []string{
			`"  str   %[hi], %[set]                @ [2]\n"`,
			`"  bcs   2f                           @ [3/1]\n"`,
			`"  bne   4b                           @ [3/1]\n"`,
			`"  mul   %[next], %[scale], %[next]   @ [1]\n"`,
			`"  beq   5f\n"`,
			`"5:\n"`,
			`"  1: subs %[tmp], %[tmp], #1\n"`,
			"// WS2812 GRB at 120MHz: T1=30 T2=75 T3=45 cycles",
			`: "cc", "memory");`,
		}},
		{&RISCV, SpecSK6812, 160 * physic.MegaHertz, []string{
			`"  sw    %[hi], %[set]                // [1]\n"`,
			`"  bltz  %[v], 2f                     // [3/1]\n"`,
			`"  bnez  %[count], 4b                 // [3/1]\n"`,
			`"  mul   %[next], %[next], %[scale]   // [2]\n"`,
		}},
		{&AVR, SpecWS2811, 16 * physic.MegaHertz, []string{
			`"  st    %[port], %[hi]               ; [2]\n"`,
			`"  brcs  2f                           ; [2/1]\n"`,
			`"  sbrs  %B[count], 7                 ; [3/2]\n"`,
			`"  rjmp  4b\n"`,
			`"  sbrc  %B[count], 7                 ; [3/2]\n"`,
			`"  rjmp  5f\n"`,
			`"  clr   r1\n"`,
			"uint8_t *port",
			"count -= 1;",
		}},
	}
	for _, tt := range tests {
		p, err := Compile(tt.a, tt.s, tt.f, OrderGRB)
		if err != nil {
			t.Fatal(err)
		}
		fn, err := p.Emit("send_test")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(fn, "__attribute__((always_inline))\nstatic inline void send_test(") {
			t.Errorf("%s: unexpected function head:\n%.120s", tt.a.Name, fn)
		}
		for _, w := range tt.want {
			if !strings.Contains(fn, w) {
				t.Errorf("%s: output lacks %s", tt.a.Name, w)
			}
		}
		if n := strings.Count(fn, "2:\\n"); n != 8*p.BytesPerPixel()*2 {
			t.Errorf("%s: %d skip labels, want one per bit", tt.a.Name, n)
		}
		// muls is 16-bit only and limited to r0-r7.
		if strings.Contains(fn, "muls") {
			t.Errorf("%s: output uses muls", tt.a.Name)
		}
	}
}

// Every AVR template must take the cycles the cost table charges for it.
func TestSyntax_avrCycles(t *testing.T) {
	cycles := map[string]int{
		"st": 2, "ldd": 2, "mul": 2, "rjmp": 2,
		"lsl": 1, "add": 1, "adc": 1, "mov": 1,
		"subi": 1, "sbci": 1, "ldi": 1, "dec": 1, "nop": 1,
	}
	// path counts the cycles through lines when every conditional acts
	// (branch taken, skip performed) or when none does.
	path := func(lines []string, act bool) (int, error) {
		n := 0
		for i := 0; i < len(lines); i++ {
			f := strings.Fields(lines[i])
			if strings.HasSuffix(f[0], ":") {
				f = f[1:]
			}
			switch op := f[0]; op {
			case "brcs", "brne", "breq":
				if act {
					return n + 2, nil
				}
				n++
			case "sbrs", "sbrc":
				// Skips over a one-word instruction.
				if act {
					n += 2
					i++
				} else {
					n++
				}
			case "rjmp":
				return n + cycles[op], nil
			default:
				c, ok := cycles[op]
				if !ok {
					return 0, fmt.Errorf("unknown mnemonic %q", op)
				}
				n += c
			}
		}
		return n, nil
	}

	syn := syntaxes[AVR.Name]
	// A skip that acts leaves these kinds on their fall-through path.
	inverted := map[InstrKind]bool{KindBranchMore: true, KindSkipIfEmpty: true}
	for k := InstrKind(0); k < numKinds; k++ {
		if k == KindNop || k == KindDelay {
			continue
		}
		for _, act := range []bool{false, true} {
			taken := act != inverted[k]
			got, err := path(syn.ops[k], act)
			if err != nil {
				t.Errorf("%s: %v", k, err)
				continue
			}
			if want := AVR.Cost(Instr{Kind: k}, taken); got != want {
				t.Errorf("%s taken=%v: template takes %d cycles, cost table %d", k, taken, got, want)
			}
		}
	}

	// ldi, then n rounds of dec and brne with the last brne falling through.
	for n := 1; n <= 5; n++ {
		got := cycles["ldi"] + n*(cycles["dec"]+2) - 1
		if want := AVR.Cost(Instr{Kind: KindDelay, Arg: operand(n)}, false); got != want {
			t.Errorf("delay %d: template takes %d cycles, cost table %d", n, got, want)
		}
	}
	for i, want := range []string{"ldi", "dec", "brne"} {
		f := strings.Fields(syn.delay[i])
		if f[0] == "1:" {
			f = f[1:]
		}
		if f[0] != want {
			t.Errorf("delay line %d is %q, want %s", i, syn.delay[i], want)
		}
	}
}

func TestProgram_EmitRept(t *testing.T) {
	// Without counted loops every delay is a run of nops.
	a := CortexM
	a.MaxLoop = 0
	p, err := Compile(&a, SpecSK6812, 48*physic.MegaHertz, OrderGRB)
	if err != nil {
		t.Fatal(err)
	}
	fn, err := p.Emit("send_test")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(fn, `"  .rept `) || !strings.Contains(fn, `"  .endr\n"`) {
		t.Error("long nop runs are not emitted as .rept blocks")
	}
	if strings.Contains(fn, "1: subs") {
		t.Error("delay loop emitted with loops disabled")
	}
}

func TestProgram_EmitUnknownArch(t *testing.T) {
	a := CortexM
	a.Name = "m68k"
	p, err := Compile(&a, SpecWS2812, 64*physic.MegaHertz, OrderGRB)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Emit("x"); !errors.Is(err, ErrUnknownArch) {
		t.Errorf("got %v", err)
	}
}

// The checked-in engines must match what the compiler emits today.
func TestGeneratedUpToDate(t *testing.T) {
	src, err := os.ReadFile("bitbang/zz_cortexm_generated.go")
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []struct {
		s    Spec
		o    Order
		f    physic.Frequency
		name string
	}{
		{SpecWS2812, OrderGRB, 64 * physic.MegaHertz, "clockless_ws2812grb64mhz"},
		{SpecWS2812, OrderGRB, 120 * physic.MegaHertz, "clockless_ws2812grb120mhz"},
		{SpecWS2812, OrderGRB, 168 * physic.MegaHertz, "clockless_ws2812grb168mhz"},
		{SpecSK6812, OrderGRB | WithWhite, 120 * physic.MegaHertz, "clockless_sk6812grbw120mhz"},
	} {
		p, err := Compile(&CortexM, tt.s, tt.f, tt.o)
		if err != nil {
			t.Fatal(err)
		}
		fn, err := p.Emit(tt.name)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(src), fn) {
			t.Errorf("%s is stale, run go generate", tt.name)
		}
	}
}
