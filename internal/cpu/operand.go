package cpu

import "fmt"

// R8 selects an 8-bit operand, as encoded in 3-bit opcode fields.
// RegHLIndirect is the byte in memory pointed to by HL.
type R8 uint8

const (
	RegB R8 = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegHLIndirect
	RegA
)

var r8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (r R8) String() string {
	if r < 8 {
		return r8Names[r]
	}
	return fmt.Sprintf("R8(%d)", uint8(r))
}

// R16 selects a register pair in the 16-bit load and arithmetic
// instructions.
type R16 uint8

const (
	PairBC R16 = iota
	PairDE
	PairHL
	PairSP
)

// Reg16 returns the register file entry r selects.
func (r R16) Reg16() Reg16 {
	return [4]Reg16{BC, DE, HL, SP}[r&3]
}

func (r R16) String() string {
	return r.Reg16().String()
}

// R16Stack selects a register pair for PUSH and POP, where AF takes
// the place of SP.
type R16Stack uint8

const (
	StackBC R16Stack = iota
	StackDE
	StackHL
	StackAF
)

// Reg16 returns the register file entry r selects.
func (r R16Stack) Reg16() Reg16 {
	return [4]Reg16{BC, DE, HL, AF}[r&3]
}

func (r R16Stack) String() string {
	return r.Reg16().String()
}

// Indirect selects the pointer used by LD (rr), A and LD A, (rr).
type Indirect uint8

const (
	IndirectBC Indirect = iota
	IndirectDE
	IndirectHLInc // HL, incremented after the access
	IndirectHLDec // HL, decremented after the access
)

var indirectNames = [4]string{"BC", "DE", "HL+", "HL-"}

func (i Indirect) String() string {
	return indirectNames[i&3]
}

// Condition is the flag test of a conditional jump, call or return.
type Condition uint8

const (
	CondNZ Condition = iota
	CondZ
	CondNC
	CondC
	CondAlways
)

var conditionNames = [5]string{"NZ", "Z", "NC", "C", ""}

func (c Condition) String() string {
	if c <= CondAlways {
		return conditionNames[c]
	}
	return fmt.Sprintf("Condition(%d)", uint8(c))
}

// test reports whether the condition holds for f.
func (c Condition) test(f Flags) bool {
	switch c {
	case CondNZ:
		return !f.Zero
	case CondZ:
		return f.Zero
	case CondNC:
		return !f.Carry
	case CondC:
		return f.Carry
	}
	return true
}

// ALUOp is one of the eight accumulator operations.
type ALUOp uint8

const (
	ALUAdd ALUOp = iota
	ALUAdc
	ALUSub
	ALUSbc
	ALUAnd
	ALUXor
	ALUOr
	ALUCp
)

var aluNames = [8]string{"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP"}

func (o ALUOp) String() string {
	return aluNames[o&7]
}

// mnemonic renders the operation against operand, spelling out the
// accumulator where assemblers conventionally do.
func (o ALUOp) mnemonic(operand string) string {
	switch o {
	case ALUAdd, ALUAdc, ALUSbc:
		return o.String() + " A, " + operand
	}
	return o.String() + " " + operand
}

// ShiftOp is one of the eight CB-prefixed rotate and shift operations.
// The first four double as the accumulator rotates RLCA, RRCA, RLA and RRA.
type ShiftOp uint8

const (
	ShiftRLC ShiftOp = iota
	ShiftRRC
	ShiftRL
	ShiftRR
	ShiftSLA
	ShiftSRA
	ShiftSWAP
	ShiftSRL
)

var shiftNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

func (o ShiftOp) String() string {
	return shiftNames[o&7]
}
