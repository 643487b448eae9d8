package bits

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// From returns a byte with only the bit at the given index set
// when v is true, and 0 otherwise.
func From(v bool, i uint8) uint8 {
	if v {
		return 1 << i
	}
	return 0
}
