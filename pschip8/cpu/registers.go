package cpu

// Register returns the value of general register Vindex. The index must
// be a 4-bit nibble extracted from a decoded instruction; the array
// bound enforces that contract.
func (c *CPU) Register(index uint8) uint8 {
	return c.v[index]
}

// SetRegister stores a value into general register Vindex.
func (c *CPU) SetRegister(index uint8, value uint8) {
	c.v[index] = value
}

// PC returns the current program counter.
func (c *CPU) PC() uint16 {
	return c.pc
}

// I returns the current address register.
func (c *CPU) I() uint16 {
	return c.i
}

// SP returns the current stack pointer.
func (c *CPU) SP() uint8 {
	return c.sp
}

// push stores a return address at SP and advances it. The pointer wraps
// at depth-1 instead of saturating or faulting; see the project design
// notes on call stack overflow.
func (c *CPU) push(address uint16) {
	c.stack[c.sp] = address
	c.sp = (c.sp + 1) % (stackDepth - 1)
}

// pop decrements SP and reads the return address. An empty stack
// saturates at slot zero.
func (c *CPU) pop() uint16 {
	if c.sp > 0 {
		c.sp--
	}
	return c.stack[c.sp]
}

// Snapshot captures the register file for logging and debugging.
type Snapshot struct {
	V  [16]uint8
	I  uint16
	PC uint16
	SP uint8
}

func (c *CPU) Snapshot() Snapshot {
	return Snapshot{V: c.v, I: c.i, PC: c.pc, SP: c.sp}
}
