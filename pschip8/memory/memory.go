package memory

import (
	"fmt"
)

const (
	// Size is the total addressable memory of the machine.
	Size = 4096
	// ProgramStart is the address where loaded programs begin execution.
	ProgramStart = 0x200
	// FontStart is the base address of the builtin hex digit sprites.
	FontStart = 0x0
	// FontSpriteSize is the height in bytes of a single hex digit sprite.
	FontSpriteSize = 5
)

// fontSprites holds the 16 builtin 5-byte sprites for hex digits 0-F.
// They are copied into the low interpreter area once at construction
// and never written again.
var fontSprites = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the flat 4 KiB address space shared by the interpreter
// area (font sprites), the loaded program and its scratch space.
type Memory struct {
	bytes [Size]byte
}

// New returns memory with the font table loaded at FontStart.
func New() *Memory {
	m := &Memory{}
	copy(m.bytes[FontStart:], fontSprites[:])
	return m
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) byte {
	return m.bytes[address]
}

// Write stores a byte at the given address.
func (m *Memory) Write(address uint16, value byte) {
	m.bytes[address] = value
}

// Slice returns up to length bytes starting at the given address.
// The result is clipped at the end of memory rather than wrapping.
func (m *Memory) Slice(start, length uint16) []byte {
	if start >= Size {
		return nil
	}
	end := uint32(start) + uint32(length)
	if end > Size {
		end = Size
	}
	return m.bytes[start:end]
}

// LoadProgram copies raw program bytes to ProgramStart. Programs larger
// than the space above the interpreter area are rejected.
func (m *Memory) LoadProgram(data []byte) error {
	if len(data) > Size-ProgramStart {
		return fmt.Errorf("program too large: %d bytes, max %d", len(data), Size-ProgramStart)
	}
	copy(m.bytes[ProgramStart:], data)
	return nil
}

// LoadWords writes 16-bit instruction words to ProgramStart in
// big-endian byte order.
func (m *Memory) LoadWords(words []uint16) error {
	if len(words)*2 > Size-ProgramStart {
		return fmt.Errorf("program too large: %d words, max %d", len(words), (Size-ProgramStart)/2)
	}
	address := ProgramStart
	for _, word := range words {
		m.bytes[address] = byte(word >> 8)
		m.bytes[address+1] = byte(word)
		address += 2
	}
	return nil
}
