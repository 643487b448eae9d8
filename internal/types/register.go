package types

// Register represents an SM83 register which is used to hold an 8-bit value.
// The CPU has 7 general registers: A, B, C, D, E, H and L. The flag register
// is kept separately as a set of booleans, see cpu.Flags.
type Register = uint8

// RegisterPair represents a pair of Registers which is used to hold a 16-bit
// value. A RegisterPair owns no storage of its own, it is a view over the two
// registers it points to, high byte first.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// NewRegisterPair returns a RegisterPair viewing high and low.
func NewRegisterPair(high, low *Register) RegisterPair {
	return RegisterPair{High: high, Low: low}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}
