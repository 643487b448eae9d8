package cpu

import (
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/bits"
)

type Flag = uint8

// Bit positions of each flag in the F register. The low nibble of
// F is always 0.
const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags holds the four CPU flags.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// FlagsFromByte unpacks the top nibble of b into Flags. The low
// nibble is ignored.
func FlagsFromByte(b uint8) Flags {
	return Flags{
		Zero:      bits.Test(b, FlagZero),
		Subtract:  bits.Test(b, FlagSubtract),
		HalfCarry: bits.Test(b, FlagHalfCarry),
		Carry:     bits.Test(b, FlagCarry),
	}
}

// Byte packs the flags into the F register layout.
func (f Flags) Byte() uint8 {
	return (bits.From(f.Zero, FlagZero) |
		bits.From(f.Subtract, FlagSubtract) |
		bits.From(f.HalfCarry, FlagHalfCarry) |
		bits.From(f.Carry, FlagCarry)) & types.HighNibble
}

// String renders the flags as e.g. "Z-HC", with a dash for each
// flag that is not set.
func (f Flags) String() string {
	s := []byte("----")
	if f.Zero {
		s[0] = 'Z'
	}
	if f.Subtract {
		s[1] = 'N'
	}
	if f.HalfCarry {
		s[2] = 'H'
	}
	if f.Carry {
		s[3] = 'C'
	}
	return string(s)
}

// carryBit returns the carry flag as 0 or 1.
func (f Flags) carryBit() uint8 {
	if f.Carry {
		return 1
	}
	return 0
}
