package cpu

import "github.com/thelolagemann/sm83/pkg/utils"

// push pushes a 16 bit value onto the stack, high byte first.
func (c *CPU) push(value uint16) {
	high, low := utils.Uint16ToBytes(value)
	c.SP--
	c.bus.Write(c.SP, high)
	c.SP--
	c.bus.Write(c.SP, low)
}

// pop pops a 16 bit value off the stack.
func (c *CPU) pop() uint16 {
	low := c.bus.Read(c.SP)
	c.SP++
	high := c.bus.Read(c.SP)
	c.SP++
	return utils.BytesToUint16(high, low)
}

// jumpRelative jumps to the address relative to the end of the
// instruction. The offset is consumed whether or not the jump is
// taken.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(cond Condition) {
	offset := int8(c.readOperand())
	if cond.test(c.F) {
		c.PC = uint16(int32(c.PC) + int32(offset))
	}
}

// jumpAbsolute jumps to the 16-bit immediate address.
//
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute(cond Condition) {
	address := c.readOperand16()
	if cond.test(c.F) {
		c.PC = address
	}
}

// call pushes the address of the next instruction onto the stack and
// jumps to the 16-bit immediate address.
//
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) call(cond Condition) {
	address := c.readOperand16()
	if cond.test(c.F) {
		c.push(c.PC)
		c.PC = address
	}
}

// ret pops the return address off the stack and jumps to it.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) ret(cond Condition) {
	if cond.test(c.F) {
		c.PC = c.pop()
	}
}

// restart pushes the address of the next instruction onto the stack
// and jumps to one of the eight fixed vectors.
//
//	RST n
//	n = 00H, 08H, 10H, 18H, 20H, 28H, 30H, 38H
func (c *CPU) restart(vector uint8) {
	c.push(c.PC)
	c.PC = uint16(vector)
}
