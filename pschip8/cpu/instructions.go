package cpu

import (
	"github.com/fagyapong/pschip8/pschip8/bit"
	"github.com/fagyapong/pschip8/pschip8/memory"
)

// opSys handles the 0x0 class: clear screen and subroutine return.
// Other 0nnn forms (the historical machine-code call) advance PC and do
// nothing.
func (c *CPU) opSys(op opcode) {
	switch op.nnn() {
	case 0x0E0:
		c.pc += instructionWidth
		c.display.Clear()
	case 0x0EE:
		c.pc = c.pop()
	default:
		c.pc += instructionWidth
	}
}

// opCall pushes the return address and jumps to nnn.
func (c *CPU) opCall(op opcode) {
	c.push(c.pc + instructionWidth)
	c.pc = op.nnn()
}

// opAddImmediate implements 7xkk. This interpreter's ADD-immediate
// writes the carry flag, unlike most documented variants; the write
// happens before the store so 7Fkk leaves the sum in VF.
func (c *CPU) opAddImmediate(op opcode) {
	sum, carry := bit.CheckedAdd(c.v[op.x()], op.kk())
	c.setFlag(carry)
	c.v[op.x()] = sum
	c.pc += instructionWidth
}

// opALU handles the 8xyN register-register operations, selected by the
// low nibble. Flag writes precede the destination store so that x == 0xF
// keeps the result.
func (c *CPU) opALU(op opcode) {
	x, y := op.x(), op.y()
	vx, vy := c.v[x], c.v[y]

	switch op.n() {
	case 0x0:
		c.v[x] = vy
	case 0x1:
		c.v[x] = vx | vy
	case 0x2:
		c.v[x] = vx & vy
	case 0x3:
		c.v[x] = vx ^ vy
	case 0x4:
		sum, carry := bit.CheckedAdd(vx, vy)
		c.setFlag(carry)
		c.v[x] = sum
	case 0x5:
		// SUB clamps to zero when Vx <= Vy instead of wrapping.
		if vx > vy {
			c.setFlag(true)
			c.v[x] = vx - vy
		} else {
			c.setFlag(false)
			c.v[x] = 0
		}
	case 0x6:
		c.setFlag(vx&0x01 == 0x01)
		c.v[x] = vx >> 1
	case 0x7:
		// SUBN has the same clamp behavior with operands swapped.
		if vy > vx {
			c.setFlag(true)
			c.v[x] = vy - vx
		} else {
			c.setFlag(false)
			c.v[x] = 0
		}
	case 0xE:
		c.setFlag(vx&0x80 == 0x80)
		c.v[x] = vx << 1
	}
	c.pc += instructionWidth
}

// opDraw implements Dxyn: blit the n-byte sprite at memory[I] to
// (Vx, Vy) and record erasure in VF.
func (c *CPU) opDraw(op opcode) {
	c.pc += instructionWidth
	sprite := c.mem.Slice(c.i, uint16(op.n()))
	erased := c.display.Draw(c.v[op.x()], c.v[op.y()], sprite)
	c.setFlag(erased)
}

// opKey handles Ex9E/ExA1: skip on keypad state.
func (c *CPU) opKey(op opcode) {
	switch op.kk() {
	case 0x9E:
		c.skipIf(c.keypad.IsPressed(c.v[op.x()]))
	case 0xA1:
		c.skipIf(!c.keypad.IsPressed(c.v[op.x()]))
	default:
		c.pc += instructionWidth
	}
}

// opMisc handles the 0xF class, selected by the low byte.
func (c *CPU) opMisc(op opcode) {
	x := op.x()
	c.pc += instructionWidth

	switch op.kk() {
	case 0x07:
		c.v[x] = c.timers.Delay()
	case 0x0A:
		// Suspend on the wait instruction itself; CompleteKeyWait
		// advances PC once a key-down arrives.
		c.pc -= instructionWidth
		c.waiting = true
		c.waitReg = x
	case 0x15:
		c.timers.SetDelay(c.v[x])
	case 0x18:
		c.timers.SetSound(c.v[x])
	case 0x1E:
		c.i += uint16(c.v[x])
	case 0x29:
		// Font lookup is only defined for hex digits.
		if c.v[x] <= 0xF {
			c.i = memory.FontStart + uint16(c.v[x])*memory.FontSpriteSize
		}
	case 0x33:
		hundreds, tens, ones := bit.BCD(c.v[x])
		c.mem.Write(c.i, hundreds)
		c.mem.Write(c.i+1, tens)
		c.mem.Write(c.i+2, ones)
	case 0x55:
		for r := uint8(0); r <= x; r++ {
			c.mem.Write(c.i+uint16(r), c.v[r])
		}
	case 0x65:
		for r := uint8(0); r <= x; r++ {
			c.v[r] = c.mem.Read(c.i + uint16(r))
		}
	}
}

func (c *CPU) setFlag(set bool) {
	if set {
		c.v[0xF] = 1
	} else {
		c.v[0xF] = 0
	}
}
