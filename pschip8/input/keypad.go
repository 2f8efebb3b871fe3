package input

// Keypad holds the current pressed state of the 16-symbol keypad plus
// the most recent key-down, which feeds the blocking wait-for-key
// instruction. Truth about what is held lives with the backend feeding
// this state; the execution engine only queries it.
type Keypad struct {
	pressed [16]bool
	pending int // last key-down since the previous TakeKeyPress, -1 if none
}

func NewKeypad() *Keypad {
	return &Keypad{pending: -1}
}

// Press records a key-down for the given symbol.
func (k *Keypad) Press(symbol uint8) {
	k.pressed[symbol&0xF] = true
	k.pending = int(symbol & 0xF)
}

// Release records a key-up for the given symbol.
func (k *Keypad) Release(symbol uint8) {
	k.pressed[symbol&0xF] = false
}

// IsPressed reports whether the given symbol is currently held.
func (k *Keypad) IsPressed(symbol uint8) bool {
	return k.pressed[symbol&0xF]
}

// TakeKeyPress consumes the pending key-down event, if any. Used to
// complete a wait-for-key suspension.
func (k *Keypad) TakeKeyPress() (uint8, bool) {
	if k.pending < 0 {
		return 0, false
	}
	symbol := uint8(k.pending)
	k.pending = -1
	return symbol, true
}

// Reset clears all held keys and any pending key-down.
func (k *Keypad) Reset() {
	k.pressed = [16]bool{}
	k.pending = -1
}
