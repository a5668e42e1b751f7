package clockless

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// syntax is the assembly template of one arch. Operand lines use the GNU
// inline assembly names of the C function; {N} is the instruction operand
// and {L} a branch target.
type syntax struct {
	comment  string
	ops      [numKinds][]string
	delay    []string
	epilogue []string
	// function is the C function around the assembly, with @NAME, @TIMING
	// and @BODY placeholders.
	function string
}

var syntaxes = map[string]*syntax{
	"cortexm": {
		comment: "@",
		ops: [numKinds][]string{
			KindStoreHigh:   {"str   %[hi], %[set]"},
			KindStoreLow:    {"str   %[lo], %[clr]"},
			KindShift:       {"lsls  %[v], %[v], #1"},
			KindSkipIfSet:   {"bcs   {L}"},
			KindJump:        {"b     {L}"},
			KindLoad:        {"ldrb  %[next], [%[ptr], #{N}]"},
			KindAddStride:   {"adds  %[ptr], %[ptr], %[stride]"},
			KindScale:       {"mul   %[next], %[scale], %[next]"},
			KindPosition:    {"lsls  %[next], %[next], #16"},
			KindMove:        {"movs  %[v], %[next]"},
			KindCount:       {"subs  %[count], %[count], #1"},
			KindBranchMore:  {"bne   {L}"},
			KindSkipIfEmpty: {"cmp   %[count], #0", "beq   {L}"},
		},
		delay: []string{"movs  %[tmp], #{N}", "1: subs %[tmp], %[tmp], #1", "bne   1b"},
		function: `
__attribute__((always_inline))
static inline void @NAME(const uint8_t *ptr, uint32_t count, uint32_t stride, uint32_t scale, uint32_t *set, uint32_t *clr, uint32_t hi, uint32_t lo) {
	// @TIMING
	uint32_t v, next, tmp;
	scale += 1;
	__asm__ __volatile__(
@BODY	: [v]"=&r"(v),
	  [next]"=&r"(next),
	  [tmp]"=&r"(tmp),
	  [ptr]"+r"(ptr),
	  [count]"+r"(count)
	: [stride]"r"(stride),
	  [scale]"r"(scale),
	  [hi]"r"(hi),
	  [lo]"r"(lo),
	  [set]"m"(*set),
	  [clr]"m"(*clr)
	: "cc", "memory");
}
`,
	},
	"riscv": {
		comment: "//",
		ops: [numKinds][]string{
			KindStoreHigh:   {"sw    %[hi], %[set]"},
			KindStoreLow:    {"sw    %[lo], %[clr]"},
			KindShift:       {"slli  %[v], %[v], 1"},
			KindSkipIfSet:   {"bltz  %[v], {L}"},
			KindJump:        {"j     {L}"},
			KindLoad:        {"lbu   %[next], {N}(%[ptr])"},
			KindAddStride:   {"add   %[ptr], %[ptr], %[stride]"},
			KindScale:       {"mul   %[next], %[next], %[scale]"},
			KindPosition:    {"slli  %[next], %[next], 15"},
			KindMove:        {"mv    %[v], %[next]"},
			KindCount:       {"addi  %[count], %[count], -1"},
			KindBranchMore:  {"bnez  %[count], {L}"},
			KindSkipIfEmpty: {"nop", "beqz  %[count], {L}"},
		},
		delay: []string{"li    %[tmp], {N}", "1: addi %[tmp], %[tmp], -1", "bnez  %[tmp], 1b"},
		function: `
__attribute__((always_inline))
static inline void @NAME(const uint8_t *ptr, uint32_t count, uint32_t stride, uint32_t scale, uint32_t *set, uint32_t *clr, uint32_t hi, uint32_t lo) {
	// @TIMING
	uint32_t v, next, tmp;
	scale += 1;
	__asm__ __volatile__(
@BODY	: [v]"=&r"(v),
	  [next]"=&r"(next),
	  [tmp]"=&r"(tmp),
	  [ptr]"+r"(ptr),
	  [count]"+r"(count)
	: [stride]"r"(stride),
	  [scale]"r"(scale),
	  [hi]"r"(hi),
	  [lo]"r"(lo),
	  [set]"m"(*set),
	  [clr]"m"(*clr)
	: "memory");
}
`,
	},
	"avr": {
		comment: ";",
		ops: [numKinds][]string{
			KindStoreHigh:   {"st    %[port], %[hi]"},
			KindStoreLow:    {"st    %[port], %[lo]"},
			KindShift:       {"lsl   %[v]"},
			KindSkipIfSet:   {"brcs  {L}"},
			KindJump:        {"rjmp  {L}"},
			KindLoad:        {"ldd   %[next], Z+{N}"},
			KindAddStride:   {"add   r30, %[stride]", "adc   r31, %[zero]"},
			KindScale:       {"mul   %[next], %[scale]"},
			KindPosition:    {"add   r0, %[next]", "adc   r1, %[zero]", "mov   %[next], r1"},
			KindMove:        {"mov   %[v], %[next]"},
			KindCount:       {"subi  %A[count], 1", "sbci  %B[count], 0"},
			KindBranchMore:  {"sbrs  %B[count], 7", "rjmp  {L}"},
			KindSkipIfEmpty: {"sbrc  %B[count], 7", "rjmp  {L}"},
		},
		delay:    []string{"ldi   %[tmp], {N}", "1: dec %[tmp]", "brne  1b"},
		epilogue: []string{"clr   r1"},
		function: `
__attribute__((always_inline))
static inline void @NAME(const uint8_t *ptr, uint16_t count, uint8_t stride, uint8_t scale, uint8_t *port, uint8_t hi, uint8_t lo) {
	// @TIMING
	uint8_t v, next, tmp, zero = 0;
	count -= 1;
	__asm__ __volatile__(
@BODY	: [v]"=&r"(v),
	  [next]"=&r"(next),
	  [tmp]"=&d"(tmp),
	  [ptr]"+z"(ptr),
	  [count]"+d"(count)
	: [stride]"r"(stride),
	  [scale]"r"(scale),
	  [zero]"r"(zero),
	  [hi]"r"(hi),
	  [lo]"r"(lo),
	  [port]"m"(*port)
	: "r0", "memory");
}
`,
	},
}

// Branch targets are numeric local labels, one digit per role, so a label
// may be defined many times. 1 is the delay loop.
var labelDigits = map[InstrKind]string{
	KindSkipIfSet:   "2",
	KindJump:        "3",
	KindBranchMore:  "4",
	KindSkipIfEmpty: "5",
}

// Emit returns p as a C function named name with GNU inline assembly for
// p.Arch, in the form cgo accepts in a preamble. Every line carries its cycle
// cost as a comment.
func (p *Program) Emit(name string) (string, error) {
	syn, ok := syntaxes[p.Arch.Name]
	if !ok {
		return "", fmt.Errorf("%w: no assembly syntax for %s", ErrUnknownArch, p.Arch.Name)
	}

	labels := make(map[int][]string)
	for addr := range p.Code {
		in := p.Instr(addr)
		if in.branches() {
			t := int(in.Arg)
			d := labelDigits[in.Kind]
			if !contains(labels[t], d) {
				labels[t] = append(labels[t], d)
			}
		}
	}

	var lines []string
	add := func(line, cost string) {
		if cost != "" {
			line = fmt.Sprintf("  %-34s %s [%s]", line, syn.comment, cost)
		} else if !strings.HasSuffix(line, ":") {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	for addr := range p.Code {
		for _, d := range labels[addr] {
			add(d+":", "")
		}
		in := p.Instr(addr)
		cost := strconv.Itoa(p.Arch.Cost(in, false))
		switch in.Kind {
		case KindSkipIfSet, KindBranchMore, KindSkipIfEmpty:
			cost = fmt.Sprintf("%d/%d", p.Arch.Cost(in, true), p.Arch.Cost(in, false))
		}
		switch in.Kind {
		case KindNop:
			n := int(in.Arg)
			if n <= 4 {
				for i := 0; i < n; i++ {
					c := ""
					if i == 0 {
						c = cost
					}
					add("nop", c)
				}
			} else {
				add(".rept "+strconv.Itoa(n), cost)
				add("nop", "")
				add(".endr", "")
			}
		case KindDelay:
			for i, l := range syn.delay {
				c := ""
				if i == 0 {
					c = cost
				}
				add(strings.ReplaceAll(l, "{N}", strconv.Itoa(int(in.Arg))), c)
			}
		default:
			for i, l := range syn.ops[in.Kind] {
				c := ""
				if i == 0 {
					c = cost
				}
				l = strings.ReplaceAll(l, "{N}", strconv.Itoa(int(in.Arg)))
				if in.branches() {
					dir := "f"
					if int(in.Arg) <= addr {
						dir = "b"
					}
					l = strings.ReplaceAll(l, "{L}", labelDigits[in.Kind]+dir)
				}
				add(l, c)
			}
		}
	}
	for _, l := range syn.epilogue {
		add(l, "")
	}

	var body bytes.Buffer
	for _, l := range lines {
		fmt.Fprintf(&body, "\t\t%#v\n", l+"\n")
	}
	timing := fmt.Sprintf("%s %s at %s: T1=%d T2=%d T3=%d cycles",
		p.Spec.Name, p.Order, p.Freq, p.Timing.T1, p.Timing.T2, p.Timing.T3)
	fn := strings.TrimPrefix(syn.function, "\n")
	fn = strings.ReplaceAll(fn, "@NAME", name)
	fn = strings.ReplaceAll(fn, "@TIMING", timing)
	fn = strings.ReplaceAll(fn, "@BODY", body.String())
	return fn, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
