package cpu

import (
	"fmt"
	"github.com/thelolagemann/sm83/internal/types"
)

// Reg16 names one of the 16-bit registers. AF, BC, DE and HL are views
// over their 8-bit halves, SP and PC have storage of their own.
type Reg16 uint8

const (
	AF Reg16 = iota
	BC
	DE
	HL
	SP
	PC
)

func (r Reg16) String() string {
	switch r {
	case AF:
		return "AF"
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case SP:
		return "SP"
	case PC:
		return "PC"
	}
	return fmt.Sprintf("Reg16(%d)", uint8(r))
}

// Registers is the SM83 register file. The zero value is a valid,
// zeroed register file.
type Registers struct {
	A types.Register
	B types.Register
	C types.Register
	D types.Register
	E types.Register
	H types.Register
	L types.Register
	F Flags

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
}

// pair returns the view for BC, DE or HL.
func (r *Registers) pair(reg Reg16) (types.RegisterPair, bool) {
	switch reg {
	case BC:
		return types.NewRegisterPair(&r.B, &r.C), true
	case DE:
		return types.NewRegisterPair(&r.D, &r.E), true
	case HL:
		return types.NewRegisterPair(&r.H, &r.L), true
	}
	return types.RegisterPair{}, false
}

// Get16 returns the value of the given 16-bit register, or 0 for an
// unknown one.
func (r *Registers) Get16(reg Reg16) uint16 {
	switch reg {
	case AF:
		return uint16(r.A)<<8 | uint16(r.F.Byte())
	case SP:
		return r.SP
	case PC:
		return r.PC
	}
	if p, ok := r.pair(reg); ok {
		return p.Uint16()
	}
	return 0
}

// Set16 sets the given 16-bit register. Setting AF reconstructs the
// flags from the low byte, discarding its low nibble. Unknown registers
// are ignored.
func (r *Registers) Set16(reg Reg16, value uint16) {
	switch reg {
	case AF:
		r.A = uint8(value >> 8)
		r.F = FlagsFromByte(uint8(value))
	case SP:
		r.SP = value
	case PC:
		r.PC = value
	default:
		if p, ok := r.pair(reg); ok {
			p.SetUint16(value)
		}
	}
}

// HL returns the value of the HL register pair, the most
// commonly used pointer register.
func (r *Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// Get8 returns the value of one of the seven 8-bit registers. The
// RegHLIndirect operand lives in memory, so it reads as 0.
func (r *Registers) Get8(reg R8) uint8 {
	if p := r.register(reg); p != nil {
		return *p
	}
	return 0
}

// Set8 sets one of the seven 8-bit registers. Setting RegHLIndirect
// has no effect.
func (r *Registers) Set8(reg R8, value uint8) {
	if p := r.register(reg); p != nil {
		*p = value
	}
}

// register returns a pointer to the 8-bit register selected by reg,
// or nil for RegHLIndirect, which is not a register.
func (r *Registers) register(reg R8) *types.Register {
	switch reg {
	case RegB:
		return &r.B
	case RegC:
		return &r.C
	case RegD:
		return &r.D
	case RegE:
		return &r.E
	case RegH:
		return &r.H
	case RegL:
		return &r.L
	case RegA:
		return &r.A
	}
	return nil
}

func (r Registers) String() string {
	return fmt.Sprintf("A:%02X F:%s B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X",
		r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L, r.SP, r.PC)
}
