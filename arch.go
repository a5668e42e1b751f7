package clockless

// Arch is the cycle cost table of one instruction set as used by a bit
// program. Costs are in CPU cycles and assume code and data in zero wait-state
// memory. Edges take effect when a store retires, so every pulse is measured
// from the end of one store to the end of the next.
type Arch struct {
	// Name selects the assembly syntax used by Program.Emit.
	Name string
	// BuildTag is the go:build expression of generated files for this arch.
	BuildTag string

	Store     int // store of a port word
	ALU       int // shift, move, compare
	Load      int // byte load, including load-use stall
	Mul       int
	Position  int // move the scaled byte into the shift position
	Count     int // decrement of the pixel counter
	AddStride int

	Taken    int // conditional branch, taken
	NotTaken int // conditional branch, falls through
	Jump     int // unconditional branch

	// LoopTaken and LoopExit are the costs of the pixel loop back-edge. They
	// differ from Taken and NotTaken where a short branch cannot reach the
	// loop head.
	LoopTaken int
	LoopExit  int

	// CountFetch reports that the pixel loop back-edge tests the counter
	// register itself rather than condition flags. The decrement can then
	// run in any idle slot of the last byte of a pixel instead of right
	// before the branch.
	CountFetch bool

	// MaxLoop is the largest immediate a delay loop counter can be loaded
	// with. Zero disables counted loops; delays are then pure nops.
	MaxLoop int
}

// Cost tables per instruction set. The Cortex-M entry is for the Thumb-2
// cores (M3/M4/M7) with a one-cycle pipeline refill charged to branches. The
// RISC-V entry follows the SiFive E31 pipeline. AVR uses st, ldd and the
// 2-cycle hardware multiplier. Its counter runs one below the pixel count and
// the loop back-edge is sbrs on the counter sign over an rjmp, because a
// conditional branch cannot reach the head of an unrolled pixel and the bit
// test clobbers the flags.
var (
	CortexM = Arch{
		Name:     "cortexm",
		BuildTag: "tinygo && cortexm && !atsamd21 && !rp2040 && !nrf51",
		Store:    2, ALU: 1, Load: 2, Mul: 1, Position: 1, Count: 1, AddStride: 1,
		Taken: 3, NotTaken: 1, Jump: 3,
		LoopTaken: 3, LoopExit: 1,
		MaxLoop: 255,
	}
	RISCV = Arch{
		Name:     "riscv",
		BuildTag: "tinygo && tinygo.riscv32",
		Store:    1, ALU: 1, Load: 2, Mul: 2, Position: 1, Count: 1, AddStride: 1,
		Taken: 3, NotTaken: 1, Jump: 2,
		LoopTaken: 3, LoopExit: 1,
		CountFetch: true,
		MaxLoop:    2047,
	}
	AVR = Arch{
		Name:     "avr",
		BuildTag: "tinygo && avr",
		Store:    2, ALU: 1, Load: 2, Mul: 2, Position: 3, Count: 2, AddStride: 2,
		Taken: 2, NotTaken: 1, Jump: 2,
		LoopTaken: 3, LoopExit: 2,
		CountFetch: true,
		MaxLoop:    255,
	}
)

// Archs lists the known cost tables by name.
var Archs = map[string]*Arch{
	CortexM.Name: &CortexM,
	RISCV.Name:   &RISCV,
	AVR.Name:     &AVR,
}

// loopIter is the cost of one taken iteration of a delay loop.
func (a *Arch) loopIter() int { return a.ALU + a.Taken }

// loopCost is the cost of a delay loop of n iterations including the counter
// load. The final iteration falls through.
func (a *Arch) loopCost(n int) int {
	return a.ALU + n*a.loopIter() - (a.Taken - a.NotTaken)
}

// LoopThreshold is the shortest delay that is built from a counted loop. It
// is the cost of a two-iteration loop; anything shorter is nops.
func (a *Arch) LoopThreshold() int {
	if a.MaxLoop < 2 {
		return -1
	}
	return a.loopCost(2)
}

// balance is the number of nops that make the taken path of SkipIfSet as
// long as the store-and-jump path.
func (a *Arch) balance() int {
	return a.NotTaken + a.Store + a.Jump - a.Taken
}

// Cost returns the cycles one instruction takes. taken reports whether a
// conditional branch was taken and is ignored for other kinds.
func (a *Arch) Cost(in Instr, taken bool) int {
	switch in.Kind {
	case KindStoreHigh, KindStoreLow:
		return a.Store
	case KindShift, KindMove:
		return a.ALU
	case KindSkipIfSet:
		if taken {
			return a.Taken
		}
		return a.NotTaken
	case KindBranchMore:
		if taken {
			return a.LoopTaken
		}
		return a.LoopExit
	case KindSkipIfEmpty:
		if taken {
			return a.ALU + a.Taken
		}
		return a.ALU + a.NotTaken
	case KindJump:
		return a.Jump
	case KindNop:
		return int(in.Arg)
	case KindDelay:
		return a.loopCost(int(in.Arg))
	case KindLoad:
		return a.Load
	case KindAddStride:
		return a.AddStride
	case KindScale:
		return a.Mul
	case KindPosition:
		return a.Position
	case KindCount:
		return a.Count
	}
	panic(badInstr)
}
