package cpu

import (
	"fmt"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/pkg/utils"
)

// Disassembly is a single decoded instruction as found in memory.
type Disassembly struct {
	Address     uint16
	Bytes       []byte
	Instruction Instruction
	// Text is the mnemonic with its immediates filled in, e.g. "JP 0x0150".
	Text string
}

func (d Disassembly) String() string {
	return fmt.Sprintf("%04X  % -9X %s", d.Address, d.Bytes, d.Text)
}

// Disassemble decodes the instruction at address without executing
// it. Reading wraps at the end of memory, like the CPU does.
func Disassemble(bus mmu.Bus, address uint16) (Disassembly, error) {
	opcode := bus.Read(address)
	prefixed := opcode == Prefix
	raw := []byte{opcode}
	if prefixed {
		opcode = bus.Read(address + 1)
		raw = append(raw, opcode)
	}

	instruction, ok := Decode(opcode, prefixed)
	if !ok {
		return Disassembly{Address: address, Bytes: raw}, &DecodeError{Opcode: opcode, Address: address, Prefixed: prefixed}
	}

	for i := len(raw); i < instruction.Length(); i++ {
		raw = append(raw, bus.Read(address+uint16(i)))
	}

	return Disassembly{
		Address:     address,
		Bytes:       raw,
		Instruction: instruction,
		Text:        render(instruction, address, raw),
	}, nil
}

// render substitutes the immediate placeholders of the mnemonic.
func render(instruction Instruction, address uint16, raw []byte) string {
	text := instruction.String()
	switch len(raw) {
	case 2:
		if prefixed := raw[0] == Prefix; prefixed {
			return text
		}
		n := raw[1]
		switch instruction.(type) {
		case JR:
			target := uint16(int32(address) + 2 + int32(int8(n)))
			return replaceOperand(text, "e", fmt.Sprintf("0x%04X", target))
		case AddSP:
			return fmt.Sprintf("ADD SP, %d", int8(n))
		case LoadHLSP:
			return fmt.Sprintf("LD HL, SP%+d", int8(n))
		case Stop:
			return text
		}
		return replaceOperand(text, "n", fmt.Sprintf("0x%02X", n))
	case 3:
		nn := utils.BytesToUint16(raw[2], raw[1])
		return replaceOperand(text, "nn", fmt.Sprintf("0x%04X", nn))
	}
	return text
}

// replaceOperand replaces the last whole-word occurrence of
// placeholder in text.
func replaceOperand(text, placeholder, value string) string {
	for i := len(text) - len(placeholder); i >= 0; i-- {
		if text[i:i+len(placeholder)] != placeholder {
			continue
		}
		before := i == 0 || !isWord(text[i-1])
		after := i+len(placeholder) == len(text) || !isWord(text[i+len(placeholder)])
		if before && after {
			return text[:i] + value + text[i+len(placeholder):]
		}
	}
	return text
}

func isWord(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z'
}
