package action

// Action represents input actions that can be performed in the interpreter
type Action int

const (
	// Keypad symbols 0-F. These must stay in order: the keypad symbol
	// value is derived from the distance to Key0.
	Key0 Action = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF

	// Interpreter controls
	MachineQuit
	MachineReset
	MachinePauseToggle
	MachineStepFrame
	MachineSnapshot
	MachineTestPatternCycle
)

// KeypadSymbol returns the 4-bit keypad symbol for keypad actions.
func KeypadSymbol(a Action) (uint8, bool) {
	if a >= Key0 && a <= KeyF {
		return uint8(a - Key0), true
	}
	return 0, false
}

var names = map[Action]string{
	MachineQuit:             "quit",
	MachineReset:            "reset",
	MachinePauseToggle:      "pause toggle",
	MachineStepFrame:        "step frame",
	MachineSnapshot:         "snapshot",
	MachineTestPatternCycle: "test pattern cycle",
}

func (a Action) String() string {
	if symbol, ok := KeypadSymbol(a); ok {
		return "key " + string(rune("0123456789ABCDEF"[symbol]))
	}
	if name, ok := names[a]; ok {
		return name
	}
	return "unknown"
}
