// Package cpu implements the Sharp SM83 instruction set: the register
// file, the opcode decoder and the fetch/decode/execute loop.
package cpu

import (
	"fmt"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is the halt CPU mode.
	ModeHalt
	// ModeStop is the stop CPU mode.
	ModeStop
)

// CPU represents the SM83 CPU. It is responsible for executing
// instructions against its bus.
type CPU struct {
	// Registers contains the 8-bit registers, the flags, SP and PC.
	Registers

	// IME is the interrupt master enable flag. Nothing delivers
	// interrupts, it only records what the program asked for.
	IME bool
	// eiPending is set by EI, IME follows after the next instruction.
	eiPending bool

	// Debug logs every executed instruction at debug level.
	Debug bool

	bus  mmu.Bus
	log  log.Logger
	mode mode
}

// NewCPU creates a new CPU executing against the given bus, with a
// zeroed register file. A nil logger discards all output.
func NewCPU(bus mmu.Bus, logger log.Logger) *CPU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &CPU{
		bus: bus,
		log: logger,
	}
}

// Reset zeroes the register file and returns the CPU to normal mode.
// Memory is left as is.
func (c *CPU) Reset() {
	c.Registers = Registers{}
	c.IME = false
	c.eiPending = false
	c.mode = ModeNormal
}

// SetLogger replaces the logger errors and traces are written to.
func (c *CPU) SetLogger(logger log.Logger) {
	c.log = logger
}

// Halted returns true after a HALT instruction.
func (c *CPU) Halted() bool {
	return c.mode == ModeHalt
}

// Stopped returns true after a STOP instruction.
func (c *CPU) Stopped() bool {
	return c.mode == ModeStop
}

// Step fetches, decodes and executes a single instruction. A halted
// or stopped CPU does nothing and returns nil.
//
// An opcode that does not decode returns a *DecodeError, and a
// decoded instruction without semantics an *UnimplementedError. In
// both cases PC is left at the faulting instruction.
func (c *CPU) Step() error {
	if c.mode != ModeNormal {
		return nil
	}

	at := c.PC
	opcode := c.readInstruction()
	prefixed := opcode == Prefix
	if prefixed {
		opcode = c.readOperand()
	}

	instruction, ok := Decode(opcode, prefixed)
	if !ok {
		c.PC = at
		err := &DecodeError{Opcode: opcode, Address: at, Prefixed: prefixed}
		c.log.Errorf("%v", err)
		return err
	}

	if c.Debug {
		c.trace(at)
	}

	enableIME := c.eiPending
	if err := c.execute(instruction, at); err != nil {
		c.PC = at
		c.log.Errorf("%v", err)
		return err
	}
	// EI takes effect once the instruction after it has completed,
	// unless a DI got in between
	if enableIME && c.eiPending {
		c.IME = true
		c.eiPending = false
	}

	return nil
}

func (c *CPU) trace(at uint16) {
	d, err := Disassemble(c.bus, at)
	if err != nil {
		return
	}
	c.log.Debugf("%04X  %-20s %v", at, d.Text, c.Registers)
}

// readInstruction reads the next instruction from memory.
func (c *CPU) readInstruction() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand from memory. The same as
// readInstruction, but reads clearer at call sites.
func (c *CPU) readOperand() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a little-endian 16-bit operand.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return utils.BytesToUint16(high, low)
}

// read returns the value of an 8-bit operand, reading memory for
// RegHLIndirect.
func (c *CPU) read(r R8) uint8 {
	if r == RegHLIndirect {
		return c.bus.Read(c.Registers.HL())
	}
	return *c.register(r)
}

// write sets an 8-bit operand, writing memory for RegHLIndirect.
func (c *CPU) write(r R8, value uint8) {
	if r == RegHLIndirect {
		c.bus.Write(c.Registers.HL(), value)
		return
	}
	*c.register(r) = value
}

var _ types.Stater = (*CPU)(nil)

// LoadState restores the CPU from s.
func (c *CPU) LoadState(s *types.State) {
	c.A = s.Read8()
	c.F = FlagsFromByte(s.Read8())
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.IME = s.ReadBool()
	c.eiPending = s.ReadBool()
	c.mode = s.Read8()
}

// Validate reports whether a restored CPU is in a state Step can make
// progress from.
func (c *CPU) Validate() error {
	if c.mode > ModeStop {
		return fmt.Errorf("%w 0x%02X", ErrInvalidMode, c.mode)
	}
	return nil
}

// SaveState appends the CPU to s.
func (c *CPU) SaveState(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F.Byte())
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.WriteBool(c.IME)
	s.WriteBool(c.eiPending)
	s.Write8(c.mode)
}
