package cpu

import "github.com/fagyapong/pschip8/pschip8/bit"

// opcode is a 16-bit instruction word with accessors for the standard
// operand fields.
type opcode uint16

// class is the top nibble, selecting the instruction family.
func (o opcode) class() uint8 {
	return bit.HighNibble(uint8(o >> 8))
}

// x is the register index in bits 8-11.
func (o opcode) x() uint8 {
	return bit.LowNibble(uint8(o >> 8))
}

// y is the register index in bits 4-7.
func (o opcode) y() uint8 {
	return bit.HighNibble(uint8(o))
}

// n is the low nibble.
func (o opcode) n() uint8 {
	return bit.LowNibble(uint8(o))
}

// kk is the low byte.
func (o opcode) kk() uint8 {
	return uint8(o)
}

// nnn is the low 12 bits, used as an address.
func (o opcode) nnn() uint16 {
	return uint16(o) & 0x0FFF
}
