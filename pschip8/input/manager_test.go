package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fagyapong/pschip8/pschip8/input/action"
	"github.com/fagyapong/pschip8/pschip8/input/event"
)

func TestManager_KeypadRouting(t *testing.T) {
	k := NewKeypad()
	m := NewManager(k)

	m.Trigger(action.Key5, event.Press)
	assert.True(t, k.IsPressed(5))

	m.Trigger(action.Key5, event.Release)
	assert.False(t, k.IsPressed(5))
}

func TestManager_KeypadNotDebounced(t *testing.T) {
	k := NewKeypad()
	m := NewManager(k)

	// Rapid press/release pairs must all land in keypad state.
	for i := 0; i < 3; i++ {
		m.Trigger(action.KeyA, event.Press)
		assert.True(t, k.IsPressed(0xA))
		m.Trigger(action.KeyA, event.Release)
		assert.False(t, k.IsPressed(0xA))
	}
}

func TestManager_ControlCallback(t *testing.T) {
	m := NewManager(NewKeypad())

	fired := 0
	m.On(action.MachineReset, event.Press, func() { fired++ })

	m.Trigger(action.MachineReset, event.Press)
	assert.Equal(t, 1, fired)

	// Second press within the debounce window is dropped.
	m.Trigger(action.MachineReset, event.Press)
	assert.Equal(t, 1, fired)
}

func TestKeypad_TakeKeyPress(t *testing.T) {
	k := NewKeypad()

	_, ok := k.TakeKeyPress()
	assert.False(t, ok, "no pending key on a fresh keypad")

	k.Press(0xC)
	symbol, ok := k.TakeKeyPress()
	assert.True(t, ok)
	assert.Equal(t, uint8(0xC), symbol)

	_, ok = k.TakeKeyPress()
	assert.False(t, ok, "pending key is consumed")
}

func TestKeypad_Reset(t *testing.T) {
	k := NewKeypad()
	k.Press(3)
	k.Press(7)

	k.Reset()

	assert.False(t, k.IsPressed(3))
	assert.False(t, k.IsPressed(7))
	_, ok := k.TakeKeyPress()
	assert.False(t, ok)
}
