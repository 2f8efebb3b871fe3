package timer

import "sync/atomic"

// Timer holds the two 8-bit countdown timers. Both saturate at zero and
// are decremented at most once per frame by Tick.
//
// The sound gate is the single piece of state shared with the audio
// output goroutine, so it is an atomic bool: Tick writes it, the audio
// callback reads it, and nothing else crosses that boundary.
type Timer struct {
	delay uint8
	sound uint8
	gate  atomic.Bool
}

func New() *Timer {
	return &Timer{}
}

// Tick advances both timers by one frame. While the sound timer is
// nonzero the audio gate stays asserted.
func (t *Timer) Tick() {
	if t.sound > 0 {
		t.sound--
		t.gate.Store(true)
	} else {
		t.gate.Store(false)
	}

	if t.delay > 0 {
		t.delay--
	}
}

func (t *Timer) Delay() uint8 {
	return t.delay
}

func (t *Timer) SetDelay(value uint8) {
	t.delay = value
}

func (t *Timer) Sound() uint8 {
	return t.sound
}

func (t *Timer) SetSound(value uint8) {
	t.sound = value
}

// SoundActive reports the audio gate. Safe to call from the audio
// output goroutine.
func (t *Timer) SoundActive() bool {
	return t.gate.Load()
}
