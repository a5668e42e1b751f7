package clockless

import "fmt"

// InstrKind is an enum for the bit program instruction type. It only
// represents the kind of instruction. It cannot store the arguments.
type InstrKind uint8

const (
	// Store the high word to the set register (rising edge).
	KindStoreHigh InstrKind = iota
	// Store the low word to the clear register (falling edge).
	KindStoreLow
	// Shift the next data bit of the shift register into the flag.
	KindShift
	// Branch to Arg when the shifted bit is one.
	KindSkipIfSet
	// Unconditional branch to Arg.
	KindJump
	// Arg single-cycle nops.
	KindNop
	// Counted delay loop of Arg iterations.
	KindDelay
	// Load the byte at pointer+Arg into the lookahead register.
	KindLoad
	// Advance the pointer by the pixel stride.
	KindAddStride
	// Multiply the lookahead register by scale+1.
	KindScale
	// Move the scaled byte into the shift position.
	KindPosition
	// Copy the lookahead register into the shift register.
	KindMove
	// Decrement the pixel counter.
	KindCount
	// Branch to Arg while the pixel counter is non-zero.
	KindBranchMore
	// Branch to Arg when the pixel counter is zero.
	KindSkipIfEmpty

	numKinds
)

// This file contains the primitives for creating instructions dynamically.
// An instruction is a 16-bit word: kind in the top 4 bits, operand below.
const (
	_INSTR_KIND_Pos = 12
	_INSTR_KIND_Msk = 0xf000
	_INSTR_ARG_Msk  = 0x0fff

	// MaxArg is the largest operand an instruction word can hold.
	MaxArg = _INSTR_ARG_Msk
)

var kindNames = [numKinds]string{
	KindStoreHigh:   "store.hi",
	KindStoreLow:    "store.lo",
	KindShift:       "shift",
	KindSkipIfSet:   "skip.set",
	KindJump:        "jump",
	KindNop:         "nop",
	KindDelay:       "delay",
	KindLoad:        "load",
	KindAddStride:   "stride",
	KindScale:       "scale",
	KindPosition:    "position",
	KindMove:        "move",
	KindCount:       "count",
	KindBranchMore:  "branch.more",
	KindSkipIfEmpty: "skip.empty",
}

func (k InstrKind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Instr is one decoded bit program instruction.
type Instr struct {
	Kind InstrKind
	Arg  uint16
}

// Encode returns the 16-bit instruction word. It panics if the operand does
// not fit.
func (in Instr) Encode() uint16 {
	if in.Arg > MaxArg || in.Kind >= numKinds {
		panic(badInstr)
	}
	return uint16(in.Kind)<<_INSTR_KIND_Pos | in.Arg
}

// branches reports whether Arg is an instruction address.
func (in Instr) branches() bool {
	switch in.Kind {
	case KindSkipIfSet, KindJump, KindBranchMore, KindSkipIfEmpty:
		return true
	}
	return false
}

func (in Instr) String() string {
	switch in.Kind {
	case KindStoreHigh, KindStoreLow, KindShift, KindAddStride, KindScale, KindPosition, KindMove, KindCount:
		return in.Kind.String()
	}
	return fmt.Sprintf("%s %d", in.Kind, in.Arg)
}

// DecodeInstr splits an instruction word into kind and operand.
func DecodeInstr(w uint16) Instr {
	return Instr{Kind: InstrKind(majorInstrBits(w) >> _INSTR_KIND_Pos), Arg: w & _INSTR_ARG_Msk}
}

func majorInstrBits(w uint16) uint16 {
	return w & _INSTR_KIND_Msk
}

// Assembler provides a fluent API for building bit program instructions.
//
//	var asm Assembler
//	code := []uint16{
//		asm.StoreHigh().Encode(),
//		asm.Delay(12).Encode(),
//		asm.Shift().Encode(),
//		asm.SkipIfSet(6).Encode(),
//	}
type Assembler struct{}

func (Assembler) StoreHigh() Instr          { return Instr{Kind: KindStoreHigh} }
func (Assembler) StoreLow() Instr           { return Instr{Kind: KindStoreLow} }
func (Assembler) Shift() Instr              { return Instr{Kind: KindShift} }
func (Assembler) SkipIfSet(addr int) Instr  { return Instr{Kind: KindSkipIfSet, Arg: operand(addr)} }
func (Assembler) Jump(addr int) Instr       { return Instr{Kind: KindJump, Arg: operand(addr)} }
func (Assembler) Nop(n int) Instr           { return Instr{Kind: KindNop, Arg: operand(n)} }
func (Assembler) Delay(loops int) Instr     { return Instr{Kind: KindDelay, Arg: operand(loops)} }
func (Assembler) Load(offset int) Instr     { return Instr{Kind: KindLoad, Arg: operand(offset)} }
func (Assembler) AddStride() Instr          { return Instr{Kind: KindAddStride} }
func (Assembler) Scale() Instr              { return Instr{Kind: KindScale} }
func (Assembler) Position() Instr           { return Instr{Kind: KindPosition} }
func (Assembler) Move() Instr               { return Instr{Kind: KindMove} }
func (Assembler) Count() Instr              { return Instr{Kind: KindCount} }
func (Assembler) BranchMore(addr int) Instr { return Instr{Kind: KindBranchMore, Arg: operand(addr)} }

func (Assembler) SkipIfEmpty(addr int) Instr {
	return Instr{Kind: KindSkipIfEmpty, Arg: operand(addr)}
}

func operand(v int) uint16 {
	if v < 0 || v > MaxArg {
		panic(badInstr)
	}
	return uint16(v)
}
