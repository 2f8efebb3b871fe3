package cpu

import (
	"fmt"
	"math/rand/v2"

	"github.com/fagyapong/pschip8/pschip8/bit"
	"github.com/fagyapong/pschip8/pschip8/memory"
)

const (
	instructionWidth = 2
	stackDepth       = 16
)

// Display is the drawing surface used by the clear and draw instructions.
type Display interface {
	Draw(x, y uint8, sprite []byte) bool
	Clear()
}

// Keypad exposes the current pressed state of the 16-symbol keypad.
type Keypad interface {
	IsPressed(symbol uint8) bool
}

// Timers exposes the delay and sound countdown timers.
type Timers interface {
	Delay() uint8
	SetDelay(value uint8)
	SetSound(value uint8)
}

// Memory is the byte-addressable memory consumed by fetch and the
// load/store instructions.
type Memory interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
	Slice(start, length uint16) []byte
}

// CPU holds the register file, call stack and the fetch/decode/dispatch
// machinery. One Cycle call executes exactly one instruction.
type CPU struct {
	v     [16]uint8
	i     uint16
	pc    uint16
	sp    uint8
	stack [stackDepth]uint16

	// Key-wait suspension (Fx0A). While waiting is set no instruction
	// executes; PC still points at the wait instruction so a quit mid-wait
	// leaves the machine halted on it.
	waiting bool
	waitReg uint8

	randByte func() uint8

	mem     Memory
	display Display
	keypad  Keypad
	timers  Timers
}

// New returns a CPU with PC at the program start address.
func New(mem Memory, display Display, keypad Keypad, timers Timers) *CPU {
	return &CPU{
		pc:       memory.ProgramStart,
		randByte: func() uint8 { return uint8(rand.UintN(256)) },
		mem:      mem,
		display:  display,
		keypad:   keypad,
		timers:   timers,
	}
}

// Cycle fetches, decodes and executes a single instruction.
func (c *CPU) Cycle() error {
	op, err := c.fetch()
	if err != nil {
		return err
	}
	c.execute(op)
	return nil
}

// fetch reads the big-endian instruction word at PC.
func (c *CPU) fetch() (opcode, error) {
	if uint32(c.pc)+1 >= memory.Size {
		return 0, fmt.Errorf("instruction fetch out of bounds: pc=0x%04X", c.pc)
	}
	return opcode(bit.Combine(c.mem.Read(c.pc), c.mem.Read(c.pc+1))), nil
}

// execute dispatches on the top nibble, then on sub-fields within the
// class. The opcode class space is total over 0x0-0xF; unlisted
// sub-cases are no-ops that still advance PC per the class's policy.
func (c *CPU) execute(op opcode) {
	switch op.class() {
	case 0x0:
		c.opSys(op)
	case 0x1:
		c.pc = op.nnn()
	case 0x2:
		c.opCall(op)
	case 0x3:
		c.skipIf(c.v[op.x()] == op.kk())
	case 0x4:
		c.skipIf(c.v[op.x()] != op.kk())
	case 0x5:
		c.skipIf(c.v[op.x()] == c.v[op.y()])
	case 0x6:
		c.v[op.x()] = op.kk()
		c.pc += instructionWidth
	case 0x7:
		c.opAddImmediate(op)
	case 0x8:
		c.opALU(op)
	case 0x9:
		c.skipIf(c.v[op.x()] != c.v[op.y()])
	case 0xA:
		c.i = op.nnn()
		c.pc += instructionWidth
	case 0xB:
		c.pc = op.nnn() + uint16(c.v[0])
	case 0xC:
		c.v[op.x()] = c.randByte() & op.kk()
		c.pc += instructionWidth
	case 0xD:
		c.opDraw(op)
	case 0xE:
		c.opKey(op)
	case 0xF:
		c.opMisc(op)
	default:
		// The top nibble always matches one of the cases above; this
		// arm exists only as a terminal safety net.
		panic(fmt.Sprintf("unreachable opcode class: 0x%04X", uint16(op)))
	}
}

// skipIf advances past the next instruction when the condition holds.
func (c *CPU) skipIf(condition bool) {
	c.pc += instructionWidth
	if condition {
		c.pc += instructionWidth
	}
}

// AwaitingKey reports whether execution is suspended on a key wait.
func (c *CPU) AwaitingKey() bool {
	return c.waiting
}

// CompleteKeyWait finishes a key-wait suspension by storing the pressed
// symbol and resuming past the wait instruction.
func (c *CPU) CompleteKeyWait(symbol uint8) {
	if !c.waiting {
		return
	}
	c.v[c.waitReg] = symbol
	c.pc += instructionWidth
	c.waiting = false
}

// Restart resets PC to address zero and cancels any pending key wait.
// Register and memory contents are left untouched.
func (c *CPU) Restart() {
	c.pc = 0
	c.waiting = false
}

// SetRandSource overrides the random byte source. Used by tests to pin
// the Cxkk instruction.
func (c *CPU) SetRandSource(fn func() uint8) {
	c.randByte = fn
}
