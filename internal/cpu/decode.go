package cpu

// Prefix is the opcode that selects the CB instruction table for
// the byte that follows it.
const Prefix = 0xCB

// fields splits an opcode into its x, y and z bit fields, and the
// p and q halves of y.
//
//	xx yyy zzz
//	   ppq
func fields(op uint8) (x, y, z, p, q uint8) {
	x = op >> 6
	y = op >> 3 & 0x7
	z = op & 0x7
	p = y >> 1
	q = y & 1
	return
}

// Decode decodes op into an Instruction. When prefixed is true, op is
// the byte following Prefix and is decoded against the CB table.
// The boolean result is false for opcodes that do not exist.
func Decode(op uint8, prefixed bool) (Instruction, bool) {
	if prefixed {
		return decodeCB(op), true
	}
	return decode(op)
}

func decode(op uint8) (Instruction, bool) {
	x, y, z, p, q := fields(op)
	switch x {
	case 0: // 0x00 - 0x3F
		switch z {
		case 0:
			switch y {
			case 0:
				return Nop{}, true
			case 1:
				return StoreSP{}, true
			case 2:
				return Stop{}, true
			case 3:
				return JR{Cond: CondAlways}, true
			default: // JR cc, e
				return JR{Cond: Condition(y - 4)}, true
			}
		case 1:
			if q == 0 {
				return LoadImm16{Dst: R16(p)}, true
			}
			return AddHL{Src: R16(p)}, true
		case 2:
			if q == 0 {
				return StoreIndirect{Mode: Indirect(p)}, true
			}
			return LoadIndirect{Mode: Indirect(p)}, true
		case 3:
			if q == 0 {
				return Inc16{Target: R16(p)}, true
			}
			return Dec16{Target: R16(p)}, true
		case 4:
			return Inc8{Target: R8(y)}, true
		case 5:
			return Dec8{Target: R8(y)}, true
		case 6:
			return LoadImm8{Dst: R8(y)}, true
		case 7: // accumulator and flag operations
			switch y {
			case 4:
				return DAA{}, true
			case 5:
				return CPL{}, true
			case 6:
				return SCF{}, true
			case 7:
				return CCF{}, true
			}
			return RotateA{Op: ShiftOp(y)}, true
		}
	case 1: // 0x40 - 0x7F
		// LD (HL), (HL) would be meaningless, its encoding is HALT
		if y == 6 && z == 6 {
			return Halt{}, true
		}
		return Load{Dst: R8(y), Src: R8(z)}, true
	case 2: // 0x80 - 0xBF
		return ALU{Op: ALUOp(y), Src: R8(z)}, true
	case 3: // 0xC0 - 0xFF
		switch z {
		case 0:
			switch y {
			case 4:
				return StoreHigh{}, true
			case 5:
				return AddSP{}, true
			case 6:
				return LoadHigh{}, true
			case 7:
				return LoadHLSP{}, true
			}
			return Ret{Cond: Condition(y)}, true
		case 1:
			if q == 0 {
				return Pop{Dst: R16Stack(p)}, true
			}
			switch p {
			case 0:
				return Ret{Cond: CondAlways}, true
			case 1:
				return RetI{}, true
			case 2:
				return JPHL{}, true
			default:
				return LoadSPHL{}, true
			}
		case 2:
			switch y {
			case 4:
				return StoreHighC{}, true
			case 5:
				return StoreAbs{}, true
			case 6:
				return LoadHighC{}, true
			case 7:
				return LoadAbs{}, true
			}
			return JP{Cond: Condition(y)}, true
		case 3:
			switch y {
			case 0:
				return JP{Cond: CondAlways}, true
			case 6:
				return DI{}, true
			case 7:
				return EI{}, true
			}
			// 1 is the CB prefix, 2 - 5 are unused
		case 4:
			if y < 4 {
				return Call{Cond: Condition(y)}, true
			}
		case 5:
			if q == 0 {
				return Push{Src: R16Stack(p)}, true
			}
			if p == 0 {
				return Call{Cond: CondAlways}, true
			}
		case 6:
			return ALUImm{Op: ALUOp(y)}, true
		case 7:
			return RST{Vector: y * 8}, true
		}
	}
	return nil, false
}

// decodeCB decodes a CB-prefixed instruction. Every byte is valid.
//
//	00 000 000
//	^^ ^^^ ^^^
//	op bit reg
func decodeCB(op uint8) Instruction {
	x, y, z, _, _ := fields(op)
	switch x {
	case 0:
		return Shift{Op: ShiftOp(y), Target: R8(z)}
	case 1:
		return Bit{Index: y, Target: R8(z)}
	case 2:
		return Res{Index: y, Target: R8(z)}
	}
	return Set{Index: y, Target: R8(z)}
}
