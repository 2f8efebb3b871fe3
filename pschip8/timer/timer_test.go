package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelayTimer_Monotonic(t *testing.T) {
	tm := New()
	tm.SetDelay(5)

	for i := 5; i > 0; i-- {
		assert.Equal(t, uint8(i), tm.Delay())
		tm.Tick()
	}

	assert.Equal(t, uint8(0), tm.Delay())

	// Stays at zero, no underflow.
	tm.Tick()
	tm.Tick()
	assert.Equal(t, uint8(0), tm.Delay())
}

func TestSoundTimer_DrivesGate(t *testing.T) {
	tm := New()
	assert.False(t, tm.SoundActive())

	tm.SetSound(2)

	tm.Tick()
	assert.True(t, tm.SoundActive(), "gate asserted while sound timer counts down")
	assert.Equal(t, uint8(1), tm.Sound())

	tm.Tick()
	assert.True(t, tm.SoundActive())
	assert.Equal(t, uint8(0), tm.Sound())

	tm.Tick()
	assert.False(t, tm.SoundActive(), "gate deasserted once the timer hits zero")
}

func TestTimers_Independent(t *testing.T) {
	tm := New()
	tm.SetDelay(3)
	tm.SetSound(1)

	tm.Tick()

	assert.Equal(t, uint8(2), tm.Delay())
	assert.Equal(t, uint8(0), tm.Sound())
}
