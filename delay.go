package clockless

// Delay is a busy-wait of a fixed number of cycles, built from counted loops
// followed by single-cycle nops. The zero value waits zero cycles.
type Delay struct {
	// Loops holds the iteration count of each counted loop, in order.
	Loops []int
	Nops  int
}

// PlanDelay decomposes n cycles into loops and nops on arch a so that the
// result takes exactly n cycles. Requests of zero or fewer cycles return the
// zero Delay. Loops are used from LoopThreshold upwards and never exceed
// MaxLoop iterations; longer requests chain several loops.
func PlanDelay(a *Arch, n int) Delay {
	var d Delay
	if n <= 0 {
		return d
	}
	threshold := a.LoopThreshold()
	for threshold > 0 && n >= threshold {
		iters := (n - a.ALU + (a.Taken - a.NotTaken)) / a.loopIter()
		if iters > a.MaxLoop {
			iters = a.MaxLoop
		}
		d.Loops = append(d.Loops, iters)
		n -= a.loopCost(iters)
	}
	d.Nops = n
	return d
}

// Cycles returns the number of cycles d takes on arch a.
func (d Delay) Cycles(a *Arch) int {
	n := d.Nops
	for _, iters := range d.Loops {
		n += a.loopCost(iters)
	}
	return n
}

// instrs returns the instructions that implement d.
func (d Delay) instrs() []Instr {
	var asm Assembler
	out := make([]Instr, 0, len(d.Loops)+1)
	for _, iters := range d.Loops {
		out = append(out, asm.Delay(iters))
	}
	if d.Nops > 0 {
		out = append(out, asm.Nop(d.Nops))
	}
	return out
}
