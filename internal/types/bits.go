package types

const Bit7 = 0x80

const (
	LowNibble  = 0x0F
	HighNibble = 0xF0
)
