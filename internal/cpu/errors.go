package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedOpcode is the error underlying every *DecodeError.
	ErrUnrecognizedOpcode = errors.New("cpu: unrecognized opcode")
	// ErrUnimplemented is the error underlying every *UnimplementedError.
	ErrUnimplemented = errors.New("cpu: unimplemented instruction")
	// ErrInvalidMode is returned by Validate for a mode byte that is
	// neither normal, halted nor stopped.
	ErrInvalidMode = errors.New("cpu: invalid mode")
)

// DecodeError reports an opcode that does not decode to any
// instruction. It is fatal: the CPU will not make further progress
// until PC is changed.
type DecodeError struct {
	Opcode   uint8
	Address  uint16
	Prefixed bool
}

func (e *DecodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: unrecognized opcode 0x%02X 0x%02X at 0x%04X", Prefix, e.Opcode, e.Address)
	}
	return fmt.Sprintf("cpu: unrecognized opcode 0x%02X at 0x%04X", e.Opcode, e.Address)
}

func (e *DecodeError) Unwrap() error {
	return ErrUnrecognizedOpcode
}

// UnimplementedError reports an instruction that decoded, but that
// the CPU has no execution semantics for.
type UnimplementedError struct {
	Instruction Instruction
	Address     uint16
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("cpu: unimplemented instruction %v at 0x%04X", e.Instruction, e.Address)
}

func (e *UnimplementedError) Unwrap() error {
	return ErrUnimplemented
}
