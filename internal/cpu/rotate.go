package cpu

import (
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/bits"
)

// shift applies one of the CB rotate and shift operations to n,
// returning the result and the bit shifted out.
func (c *CPU) shift(op ShiftOp, n uint8) (uint8, bool) {
	switch op {
	case ShiftRLC:
		return n<<1 | n>>7, bits.Test(n, 7)
	case ShiftRRC:
		return n>>1 | n<<7, bits.Test(n, 0)
	case ShiftRL:
		return n<<1 | c.F.carryBit(), bits.Test(n, 7)
	case ShiftRR:
		return n>>1 | c.F.carryBit()<<7, bits.Test(n, 0)
	case ShiftSLA:
		return n << 1, bits.Test(n, 7)
	case ShiftSRA:
		return n>>1 | n&types.Bit7, bits.Test(n, 0)
	case ShiftSWAP:
		return n<<4 | n>>4, false
	case ShiftSRL:
		return n >> 1, bits.Test(n, 0)
	}
	return n, false
}

// rotateA rotates the A Register.
//
//	RLCA, RRCA, RLA, RRA
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 (left) or bit 0 (right).
func (c *CPU) rotateA(op ShiftOp) {
	result, carry := c.shift(op, c.A)
	c.A = result
	c.setFlags(false, false, false, carry)
}

// shiftOperand performs a CB rotate or shift on an 8-bit operand.
//
//	RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit shifted out, reset by SWAP.
func (c *CPU) shiftOperand(op ShiftOp, target R8) {
	result, carry := c.shift(op, c.read(target))
	c.write(target, result)
	c.setFlags(result == 0, false, false, carry)
}

// testBit tests bit n of the target.
//
//	BIT n, r
//
// Flags affected:
//
//	Z - Set if bit n of register r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(index uint8, target R8) {
	c.setFlags(!bits.Test(c.read(target), index), false, true, c.F.Carry)
}

// resetBit clears bit n of the target. No flags are affected.
func (c *CPU) resetBit(index uint8, target R8) {
	c.write(target, bits.Reset(c.read(target), index))
}

// setBit sets bit n of the target. No flags are affected.
func (c *CPU) setBit(index uint8, target R8) {
	c.write(target, bits.Set(c.read(target), index))
}
