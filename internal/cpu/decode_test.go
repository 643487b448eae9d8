package cpu

import (
	"fmt"
	"testing"
)

var unrecognized = map[uint8]bool{
	0xCB: true, 0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true,
	0xEB: true, 0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
}

func TestDecode(t *testing.T) {
	t.Run("unprefixed", func(t *testing.T) {
		for op := 0; op < 256; op++ {
			instruction, ok := Decode(uint8(op), false)
			if ok == unrecognized[uint8(op)] {
				t.Errorf("0x%02X: expected recognized %v, got %v", op, !unrecognized[uint8(op)], ok)
			}
			if !ok && instruction != nil {
				t.Errorf("0x%02X: expected nil instruction, got %v", op, instruction)
			}
		}
	})
	t.Run("prefixed", func(t *testing.T) {
		for op := 0; op < 256; op++ {
			instruction, ok := Decode(uint8(op), true)
			if !ok {
				t.Errorf("0xCB 0x%02X: expected recognized", op)
				continue
			}
			if instruction.Length() != 2 {
				t.Errorf("0xCB 0x%02X: expected length 2, got %d", op, instruction.Length())
			}
		}
	})

	for _, tc := range []struct {
		op       uint8
		prefixed bool
		want     Instruction
		text     string
		length   int
	}{
		{0x00, false, Nop{}, "NOP", 1},
		{0x01, false, LoadImm16{Dst: PairBC}, "LD BC, nn", 3},
		{0x02, false, StoreIndirect{Mode: IndirectBC}, "LD (BC), A", 1},
		{0x07, false, RotateA{Op: ShiftRLC}, "RLCA", 1},
		{0x08, false, StoreSP{}, "LD (nn), SP", 3},
		{0x09, false, AddHL{Src: PairBC}, "ADD HL, BC", 1},
		{0x10, false, Stop{}, "STOP", 2},
		{0x18, false, JR{Cond: CondAlways}, "JR e", 2},
		{0x1F, false, RotateA{Op: ShiftRR}, "RRA", 1},
		{0x20, false, JR{Cond: CondNZ}, "JR NZ, e", 2},
		{0x22, false, StoreIndirect{Mode: IndirectHLInc}, "LD (HL+), A", 1},
		{0x27, false, DAA{}, "DAA", 1},
		{0x2A, false, LoadIndirect{Mode: IndirectHLInc}, "LD A, (HL+)", 1},
		{0x2F, false, CPL{}, "CPL", 1},
		{0x31, false, LoadImm16{Dst: PairSP}, "LD SP, nn", 3},
		{0x32, false, StoreIndirect{Mode: IndirectHLDec}, "LD (HL-), A", 1},
		{0x33, false, Inc16{Target: PairSP}, "INC SP", 1},
		{0x34, false, Inc8{Target: RegHLIndirect}, "INC (HL)", 1},
		{0x36, false, LoadImm8{Dst: RegHLIndirect}, "LD (HL), n", 2},
		{0x37, false, SCF{}, "SCF", 1},
		{0x3B, false, Dec16{Target: PairSP}, "DEC SP", 1},
		{0x3D, false, Dec8{Target: RegA}, "DEC A", 1},
		{0x3E, false, LoadImm8{Dst: RegA}, "LD A, n", 2},
		{0x3F, false, CCF{}, "CCF", 1},
		{0x40, false, Load{Dst: RegB, Src: RegB}, "LD B, B", 1},
		{0x5E, false, Load{Dst: RegE, Src: RegHLIndirect}, "LD E, (HL)", 1},
		{0x70, false, Load{Dst: RegHLIndirect, Src: RegB}, "LD (HL), B", 1},
		{0x76, false, Halt{}, "HALT", 1},
		{0x86, false, ALU{Op: ALUAdd, Src: RegHLIndirect}, "ADD A, (HL)", 1},
		{0x9F, false, ALU{Op: ALUSbc, Src: RegA}, "SBC A, A", 1},
		{0xA0, false, ALU{Op: ALUAnd, Src: RegB}, "AND B", 1},
		{0xBE, false, ALU{Op: ALUCp, Src: RegHLIndirect}, "CP (HL)", 1},
		{0xC0, false, Ret{Cond: CondNZ}, "RET NZ", 1},
		{0xC1, false, Pop{Dst: StackBC}, "POP BC", 1},
		{0xC2, false, JP{Cond: CondNZ}, "JP NZ, nn", 3},
		{0xC3, false, JP{Cond: CondAlways}, "JP nn", 3},
		{0xC4, false, Call{Cond: CondNZ}, "CALL NZ, nn", 3},
		{0xC6, false, ALUImm{Op: ALUAdd}, "ADD A, n", 2},
		{0xC7, false, RST{Vector: 0x00}, "RST 00H", 1},
		{0xC9, false, Ret{Cond: CondAlways}, "RET", 1},
		{0xCD, false, Call{Cond: CondAlways}, "CALL nn", 3},
		{0xD8, false, Ret{Cond: CondC}, "RET C", 1},
		{0xD9, false, RetI{}, "RETI", 1},
		{0xE0, false, StoreHigh{}, "LDH (n), A", 2},
		{0xE2, false, StoreHighC{}, "LD (C), A", 1},
		{0xE8, false, AddSP{}, "ADD SP, e", 2},
		{0xE9, false, JPHL{}, "JP HL", 1},
		{0xEA, false, StoreAbs{}, "LD (nn), A", 3},
		{0xF0, false, LoadHigh{}, "LDH A, (n)", 2},
		{0xF1, false, Pop{Dst: StackAF}, "POP AF", 1},
		{0xF2, false, LoadHighC{}, "LD A, (C)", 1},
		{0xF3, false, DI{}, "DI", 1},
		{0xF5, false, Push{Src: StackAF}, "PUSH AF", 1},
		{0xF8, false, LoadHLSP{}, "LD HL, SP+e", 2},
		{0xF9, false, LoadSPHL{}, "LD SP, HL", 1},
		{0xFA, false, LoadAbs{}, "LD A, (nn)", 3},
		{0xFB, false, EI{}, "EI", 1},
		{0xFE, false, ALUImm{Op: ALUCp}, "CP n", 2},
		{0xFF, false, RST{Vector: 0x38}, "RST 38H", 1},
		{0x00, true, Shift{Op: ShiftRLC, Target: RegB}, "RLC B", 2},
		{0x37, true, Shift{Op: ShiftSWAP, Target: RegA}, "SWAP A", 2},
		{0x3E, true, Shift{Op: ShiftSRL, Target: RegHLIndirect}, "SRL (HL)", 2},
		{0x7E, true, Bit{Index: 7, Target: RegHLIndirect}, "BIT 7, (HL)", 2},
		{0x87, true, Res{Index: 0, Target: RegA}, "RES 0, A", 2},
		{0xFF, true, Set{Index: 7, Target: RegA}, "SET 7, A", 2},
	} {
		name := fmt.Sprintf("0x%02X", tc.op)
		if tc.prefixed {
			name = "0xCB " + name
		}
		t.Run(name, func(t *testing.T) {
			got, ok := Decode(tc.op, tc.prefixed)
			if !ok {
				t.Fatal("expected opcode to decode")
			}
			if got != tc.want {
				t.Errorf("expected %#v, got %#v", tc.want, got)
			}
			if got.String() != tc.text {
				t.Errorf("expected %q, got %q", tc.text, got.String())
			}
			if got.Length() != tc.length {
				t.Errorf("expected length %d, got %d", tc.length, got.Length())
			}
		})
	}
}
