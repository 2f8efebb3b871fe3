package bit

// Combine combines two 8 bit values into a single 16 bit value.
// The high byte will be the most significant one.
func Combine(high, low uint8) uint16 {
	return (uint16(high) << 8) | uint16(low)
}

// CheckedAdd adds two 8 bit unsigned values and detects if an overflow happened.
func CheckedAdd(a, b uint8) (result uint8, overflow bool) {
	overflow = false
	highBits := (uint16(a) + uint16(b)) & 0xFF00

	if highBits > 0 {
		overflow = true
	}

	result = a + b
	return
}

// HighNibble returns the top 4 bits of a byte.
func HighNibble(value uint8) uint8 {
	return value >> 4
}

// LowNibble returns the bottom 4 bits of a byte.
func LowNibble(value uint8) uint8 {
	return value & 0xF
}

// BCD splits a byte into its decimal digits: hundreds, tens and ones.
func BCD(value uint8) (hundreds, tens, ones uint8) {
	hundreds = value / 100
	tens = (value / 10) % 10
	ones = value % 10
	return
}
