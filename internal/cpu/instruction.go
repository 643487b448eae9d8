package cpu

import (
	"fmt"
)

// Instruction is a decoded SM83 instruction. The set of
// implementations is closed: one struct per instruction family,
// each carrying only the operand selectors it needs.
//
// String returns the conventional mnemonic with immediates left as
// placeholders: n (8-bit), nn (16-bit) and e (signed 8-bit).
type Instruction interface {
	fmt.Stringer
	// Length returns the encoded size in bytes, including any
	// prefix and immediate operands.
	Length() int

	instruction()
}

type (
	// Nop does nothing.
	Nop struct{}
	// Stop enters the stopped state. It is encoded as 0x10 0x00.
	Stop struct{}
	// Halt enters the halted state.
	Halt struct{}
	// DI disables interrupts.
	DI struct{}
	// EI enables interrupts after the following instruction.
	EI struct{}
	// DAA adjusts A for binary coded decimal arithmetic.
	DAA struct{}
	// CPL complements A.
	CPL struct{}
	// SCF sets the carry flag.
	SCF struct{}
	// CCF complements the carry flag.
	CCF struct{}

	// LoadImm8 loads an 8-bit immediate into Dst.
	LoadImm8 struct{ Dst R8 }
	// LoadImm16 loads a 16-bit immediate into Dst.
	LoadImm16 struct{ Dst R16 }
	// Load copies Src into Dst.
	Load struct{ Dst, Src R8 }
	// StoreIndirect stores A at the address held in a register pair.
	StoreIndirect struct{ Mode Indirect }
	// LoadIndirect loads A from the address held in a register pair.
	LoadIndirect struct{ Mode Indirect }
	// StoreSP stores SP at an immediate address.
	StoreSP struct{}
	// StoreHigh stores A at 0xFF00 plus an 8-bit immediate.
	StoreHigh struct{}
	// LoadHigh loads A from 0xFF00 plus an 8-bit immediate.
	LoadHigh struct{}
	// StoreHighC stores A at 0xFF00 plus C.
	StoreHighC struct{}
	// LoadHighC loads A from 0xFF00 plus C.
	LoadHighC struct{}
	// StoreAbs stores A at an immediate address.
	StoreAbs struct{}
	// LoadAbs loads A from an immediate address.
	LoadAbs struct{}
	// LoadHLSP loads SP plus a signed immediate into HL.
	LoadHLSP struct{}
	// LoadSPHL copies HL into SP.
	LoadSPHL struct{}
	// Push pushes a register pair onto the stack.
	Push struct{ Src R16Stack }
	// Pop pops a register pair off the stack.
	Pop struct{ Dst R16Stack }

	// ALU performs Op between A and Src.
	ALU struct {
		Op  ALUOp
		Src R8
	}
	// ALUImm performs Op between A and an 8-bit immediate.
	ALUImm struct{ Op ALUOp }
	// AddHL adds a register pair to HL.
	AddHL struct{ Src R16 }
	// AddSP adds a signed immediate to SP.
	AddSP struct{}
	// Inc8 increments an 8-bit operand.
	Inc8 struct{ Target R8 }
	// Dec8 decrements an 8-bit operand.
	Dec8 struct{ Target R8 }
	// Inc16 increments a register pair.
	Inc16 struct{ Target R16 }
	// Dec16 decrements a register pair.
	Dec16 struct{ Target R16 }

	// RotateA rotates the accumulator (RLCA, RRCA, RLA, RRA). Only
	// the four rotate ops are valid.
	RotateA struct{ Op ShiftOp }
	// Shift is a CB-prefixed rotate, shift or swap of Target.
	Shift struct {
		Op     ShiftOp
		Target R8
	}
	// Bit tests bit Index of Target.
	Bit struct {
		Index  uint8
		Target R8
	}
	// Res clears bit Index of Target.
	Res struct {
		Index  uint8
		Target R8
	}
	// Set sets bit Index of Target.
	Set struct {
		Index  uint8
		Target R8
	}

	// JR jumps relative to the address of the next instruction.
	JR struct{ Cond Condition }
	// JP jumps to an immediate address.
	JP struct{ Cond Condition }
	// JPHL jumps to the address in HL.
	JPHL struct{}
	// Call pushes the return address and jumps to an immediate address.
	Call struct{ Cond Condition }
	// Ret pops the return address into PC.
	Ret struct{ Cond Condition }
	// RetI returns and enables interrupts.
	RetI struct{}
	// RST calls the fixed address Vector.
	RST struct{ Vector uint8 }
)

func (Nop) String() string  { return "NOP" }
func (Stop) String() string { return "STOP" }
func (Halt) String() string { return "HALT" }
func (DI) String() string   { return "DI" }
func (EI) String() string   { return "EI" }
func (DAA) String() string  { return "DAA" }
func (CPL) String() string  { return "CPL" }
func (SCF) String() string  { return "SCF" }
func (CCF) String() string  { return "CCF" }

func (i LoadImm8) String() string      { return fmt.Sprintf("LD %v, n", i.Dst) }
func (i LoadImm16) String() string     { return fmt.Sprintf("LD %v, nn", i.Dst) }
func (i Load) String() string          { return fmt.Sprintf("LD %v, %v", i.Dst, i.Src) }
func (i StoreIndirect) String() string { return fmt.Sprintf("LD (%v), A", i.Mode) }
func (i LoadIndirect) String() string  { return fmt.Sprintf("LD A, (%v)", i.Mode) }
func (StoreSP) String() string         { return "LD (nn), SP" }
func (StoreHigh) String() string       { return "LDH (n), A" }
func (LoadHigh) String() string        { return "LDH A, (n)" }
func (StoreHighC) String() string      { return "LD (C), A" }
func (LoadHighC) String() string       { return "LD A, (C)" }
func (StoreAbs) String() string        { return "LD (nn), A" }
func (LoadAbs) String() string         { return "LD A, (nn)" }
func (LoadHLSP) String() string        { return "LD HL, SP+e" }
func (LoadSPHL) String() string        { return "LD SP, HL" }
func (i Push) String() string          { return fmt.Sprintf("PUSH %v", i.Src) }
func (i Pop) String() string           { return fmt.Sprintf("POP %v", i.Dst) }

func (i ALU) String() string    { return i.Op.mnemonic(i.Src.String()) }
func (i ALUImm) String() string { return i.Op.mnemonic("n") }
func (i AddHL) String() string  { return fmt.Sprintf("ADD HL, %v", i.Src) }
func (AddSP) String() string    { return "ADD SP, e" }
func (i Inc8) String() string   { return fmt.Sprintf("INC %v", i.Target) }
func (i Dec8) String() string   { return fmt.Sprintf("DEC %v", i.Target) }
func (i Inc16) String() string  { return fmt.Sprintf("INC %v", i.Target) }
func (i Dec16) String() string  { return fmt.Sprintf("DEC %v", i.Target) }

func (i RotateA) String() string { return i.Op.String() + "A" }
func (i Shift) String() string   { return fmt.Sprintf("%v %v", i.Op, i.Target) }
func (i Bit) String() string     { return fmt.Sprintf("BIT %d, %v", i.Index, i.Target) }
func (i Res) String() string     { return fmt.Sprintf("RES %d, %v", i.Index, i.Target) }
func (i Set) String() string     { return fmt.Sprintf("SET %d, %v", i.Index, i.Target) }

func (i JR) String() string   { return conditional("JR", i.Cond, "e") }
func (i JP) String() string   { return conditional("JP", i.Cond, "nn") }
func (JPHL) String() string   { return "JP HL" }
func (i Call) String() string { return conditional("CALL", i.Cond, "nn") }
func (i Ret) String() string  { return conditional("RET", i.Cond, "") }
func (RetI) String() string   { return "RETI" }
func (i RST) String() string  { return fmt.Sprintf("RST %02XH", i.Vector) }

// conditional renders a control flow mnemonic, omitting the
// condition when it is CondAlways.
func conditional(name string, cond Condition, operand string) string {
	switch {
	case cond == CondAlways && operand == "":
		return name
	case cond == CondAlways:
		return name + " " + operand
	case operand == "":
		return name + " " + cond.String()
	}
	return name + " " + cond.String() + ", " + operand
}

func (Nop) Length() int           { return 1 }
func (Stop) Length() int          { return 2 }
func (Halt) Length() int          { return 1 }
func (DI) Length() int            { return 1 }
func (EI) Length() int            { return 1 }
func (DAA) Length() int           { return 1 }
func (CPL) Length() int           { return 1 }
func (SCF) Length() int           { return 1 }
func (CCF) Length() int           { return 1 }
func (LoadImm8) Length() int      { return 2 }
func (LoadImm16) Length() int     { return 3 }
func (Load) Length() int          { return 1 }
func (StoreIndirect) Length() int { return 1 }
func (LoadIndirect) Length() int  { return 1 }
func (StoreSP) Length() int       { return 3 }
func (StoreHigh) Length() int     { return 2 }
func (LoadHigh) Length() int      { return 2 }
func (StoreHighC) Length() int    { return 1 }
func (LoadHighC) Length() int     { return 1 }
func (StoreAbs) Length() int      { return 3 }
func (LoadAbs) Length() int       { return 3 }
func (LoadHLSP) Length() int      { return 2 }
func (LoadSPHL) Length() int      { return 1 }
func (Push) Length() int          { return 1 }
func (Pop) Length() int           { return 1 }
func (ALU) Length() int           { return 1 }
func (ALUImm) Length() int        { return 2 }
func (AddHL) Length() int         { return 1 }
func (AddSP) Length() int         { return 2 }
func (Inc8) Length() int          { return 1 }
func (Dec8) Length() int          { return 1 }
func (Inc16) Length() int         { return 1 }
func (Dec16) Length() int         { return 1 }
func (RotateA) Length() int       { return 1 }
func (Shift) Length() int         { return 2 }
func (Bit) Length() int           { return 2 }
func (Res) Length() int           { return 2 }
func (Set) Length() int           { return 2 }
func (JR) Length() int            { return 2 }
func (JP) Length() int            { return 3 }
func (JPHL) Length() int          { return 1 }
func (Call) Length() int          { return 3 }
func (Ret) Length() int           { return 1 }
func (RetI) Length() int          { return 1 }
func (RST) Length() int           { return 1 }

func (Nop) instruction()           {}
func (Stop) instruction()          {}
func (Halt) instruction()          {}
func (DI) instruction()            {}
func (EI) instruction()            {}
func (DAA) instruction()           {}
func (CPL) instruction()           {}
func (SCF) instruction()           {}
func (CCF) instruction()           {}
func (LoadImm8) instruction()      {}
func (LoadImm16) instruction()     {}
func (Load) instruction()          {}
func (StoreIndirect) instruction() {}
func (LoadIndirect) instruction()  {}
func (StoreSP) instruction()       {}
func (StoreHigh) instruction()     {}
func (LoadHigh) instruction()      {}
func (StoreHighC) instruction()    {}
func (LoadHighC) instruction()     {}
func (StoreAbs) instruction()      {}
func (LoadAbs) instruction()       {}
func (LoadHLSP) instruction()      {}
func (LoadSPHL) instruction()      {}
func (Push) instruction()          {}
func (Pop) instruction()           {}
func (ALU) instruction()           {}
func (ALUImm) instruction()        {}
func (AddHL) instruction()         {}
func (AddSP) instruction()         {}
func (Inc8) instruction()          {}
func (Dec8) instruction()          {}
func (Inc16) instruction()         {}
func (Dec16) instruction()         {}
func (RotateA) instruction()       {}
func (Shift) instruction()         {}
func (Bit) instruction()           {}
func (Res) instruction()           {}
func (Set) instruction()           {}
func (JR) instruction()            {}
func (JP) instruction()            {}
func (JPHL) instruction()          {}
func (Call) instruction()          {}
func (Ret) instruction()           {}
func (RetI) instruction()          {}
func (RST) instruction()           {}
