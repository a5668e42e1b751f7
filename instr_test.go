package clockless

import (
	"testing"
)

func TestAssembler_encode(t *testing.T) {
	var asm Assembler
	const (
		skipOff = 6
		joinOff = 7
	)
	var program = []uint16{
		asm.StoreHigh().Encode(),        // 0: store.hi
		asm.Delay(3).Encode(),           // 1: delay 3
		asm.Shift().Encode(),            // 2: shift
		asm.SkipIfSet(skipOff).Encode(), // 3: skip.set 6
		asm.StoreLow().Encode(),         // 4: store.lo
		asm.Jump(joinOff).Encode(),      // 5: jump 7
		skipOff:// Balance the taken branch.
		asm.Nop(3).Encode(), // 6: nop 3
		joinOff:// Both paths meet here.
		asm.Load(2).Encode(), // 7: load 2
		asm.Scale().Encode(),            // 8: scale
		asm.Position().Encode(),         // 9: position
		asm.StoreLow().Encode(),         // 10: store.lo
		asm.Move().Encode(),             // 11: move
		asm.AddStride().Encode(),        // 12: stride
		asm.Count().Encode(),            // 13: count
		asm.BranchMore(0).Encode(),      // 14: branch.more 0
		asm.SkipIfEmpty(4095).Encode(),  // 15: skip.empty 4095
	}
	var expectedProgram = []uint16{
		0x0000, // 0: store.hi
		0x6003, // 1: delay 3
		0x2000, // 2: shift
		0x3006, // 3: skip.set 6
		0x1000, // 4: store.lo
		0x4007, // 5: jump 7
		0x5003, // 6: nop 3
		0x7002, // 7: load 2
		0x9000, // 8: scale
		0xa000, // 9: position
		0x1000, // 10: store.lo
		0xb000, // 11: move
		0x8000, // 12: stride
		0xc000, // 13: count
		0xd000, // 14: branch.more 0
		0xefff, // 15: skip.empty 4095
	}

	for i := range program {
		if program[i] != expectedProgram[i] {
			t.Errorf("instr %d mismatch got!=expected: %#x != %#x", i, program[i], expectedProgram[i])
		}
		in := DecodeInstr(program[i])
		if in.Encode() != program[i] {
			t.Errorf("instr %d (%s) does not survive decoding: %#x", i, in, in.Encode())
		}
	}
}

func TestInstr_String(t *testing.T) {
	var asm Assembler
	tests := []struct {
		in   Instr
		want string
	}{
		{asm.StoreHigh(), "store.hi"},
		{asm.Shift(), "shift"},
		{asm.SkipIfSet(12), "skip.set 12"},
		{asm.Delay(5), "delay 5"},
		{asm.Load(3), "load 3"},
		{asm.BranchMore(7), "branch.more 7"},
		{Instr{Kind: 15}, "kind(15) 0"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%v: got %q, want %q", tt.in.Kind, got, tt.want)
		}
	}
}

func TestAssembler_operandRange(t *testing.T) {
	var asm Assembler
	for _, v := range []int{-1, MaxArg + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("operand %d did not panic", v)
				}
			}()
			asm.Nop(v)
		}()
	}
	defer func() {
		if recover() == nil {
			t.Error("unknown kind did not panic on Encode")
		}
	}()
	Instr{Kind: numKinds}.Encode()
}
