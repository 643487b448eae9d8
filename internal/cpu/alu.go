package cpu

import "github.com/thelolagemann/sm83/internal/types"

// setFlags sets all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = Flags{Zero: zero, Subtract: subtract, HalfCarry: halfCarry, Carry: carry}
}

// alu performs one of the eight accumulator operations with n.
func (c *CPU) alu(op ALUOp, n uint8) {
	switch op {
	case ALUAdd:
		c.add(n, 0)
	case ALUAdc:
		c.add(n, c.F.carryBit())
	case ALUSub:
		c.A = c.sub(n, 0)
	case ALUSbc:
		c.A = c.sub(n, c.F.carryBit())
	case ALUAnd:
		c.and(n)
	case ALUXor:
		c.xor(n)
	case ALUOr:
		c.or(n)
	case ALUCp:
		c.sub(n, 0)
	}
}

// add adds n and carry to the A Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n, carry uint8) {
	sum := uint16(c.A) + uint16(n) + uint16(carry)
	halfCarry := c.A&types.LowNibble+n&types.LowNibble+carry > types.LowNibble
	c.A = uint8(sum)
	c.setFlags(c.A == 0, false, halfCarry, sum > 0xFF)
}

// sub subtracts n and carry from the A Register, returning the
// result. CP discards the result and keeps the flags.
//
//	SUB n
//	SBC A, n
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n, carry uint8) uint8 {
	diff := int16(c.A) - int16(n) - int16(carry)
	halfBorrow := int16(c.A&types.LowNibble)-int16(n&types.LowNibble)-int16(carry) < 0
	result := uint8(diff)
	c.setFlags(result == 0, true, halfBorrow, diff < 0)
	return result
}

// and performs a bitwise AND operation on n and the A Register.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// increment increments n by 1.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.setFlags(result == 0, false, n&types.LowNibble == types.LowNibble, c.F.Carry)
	return result
}

// decrement decrements n by 1.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.setFlags(result == 0, true, n&types.LowNibble == 0, c.F.Carry)
	return result
}

// addHL adds n to the HL Register pair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.HL()
	sum := uint32(hl) + uint32(n)
	c.setFlags(c.F.Zero, false, hl&0x0FFF+n&0x0FFF > 0x0FFF, sum > 0xFFFF)
	c.Set16(HL, uint16(sum))
}

// addSPSigned returns SP plus the signed offset e. Used by both
// ADD SP, e and LD HL, SP+e.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3 of the low byte.
//	C - Set if carry from bit 7 of the low byte.
func (c *CPU) addSPSigned(e uint8) uint16 {
	low := uint8(c.SP)
	c.setFlags(
		false,
		false,
		low&types.LowNibble+e&types.LowNibble > types.LowNibble,
		uint16(low)+uint16(e) > 0xFF,
	)
	return uint16(int32(c.SP) + int32(int8(e)))
}

// decimalAdjust adjusts the A Register so that the last addition or
// subtraction reads as binary coded decimal.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if register A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	carry := c.F.Carry
	if !c.F.Subtract {
		if c.F.Carry || c.A > 0x99 {
			c.A += 0x60
			carry = true
		}
		if c.F.HalfCarry || c.A&types.LowNibble > 0x09 {
			c.A += 0x06
		}
	} else {
		if c.F.Carry {
			c.A -= 0x60
		}
		if c.F.HalfCarry {
			c.A -= 0x06
		}
	}
	c.setFlags(c.A == 0, c.F.Subtract, false, carry)
}

// complement flips every bit of the A Register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = ^c.A
	c.setFlags(c.F.Zero, true, true, c.F.Carry)
}

// setCarryFlag sets the carry flag.
//
//	SCF
func (c *CPU) setCarryFlag() {
	c.setFlags(c.F.Zero, false, false, true)
}

// complementCarryFlag inverts the carry flag.
//
//	CCF
func (c *CPU) complementCarryFlag() {
	c.setFlags(c.F.Zero, false, false, !c.F.Carry)
}
