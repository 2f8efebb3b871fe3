package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fagyapong/pschip8/pschip8/memory"
)

// stubDisplay records blit calls and returns a canned erasure result.
type stubDisplay struct {
	cleared bool
	drawX   uint8
	drawY   uint8
	sprite  []byte
	erased  bool
}

func (d *stubDisplay) Draw(x, y uint8, sprite []byte) bool {
	d.drawX, d.drawY = x, y
	d.sprite = append([]byte(nil), sprite...)
	return d.erased
}

func (d *stubDisplay) Clear() {
	d.cleared = true
}

// stubKeypad reports a fixed set of held symbols.
type stubKeypad struct {
	held [16]bool
}

func (k *stubKeypad) IsPressed(symbol uint8) bool {
	return k.held[symbol&0xF]
}

// stubTimers is a plain value store without countdown behavior.
type stubTimers struct {
	delay uint8
	sound uint8
}

func (t *stubTimers) Delay() uint8         { return t.delay }
func (t *stubTimers) SetDelay(value uint8) { t.delay = value }
func (t *stubTimers) SetSound(value uint8) { t.sound = value }

type testMachine struct {
	cpu     *CPU
	mem     *memory.Memory
	display *stubDisplay
	keypad  *stubKeypad
	timers  *stubTimers
}

// newTestMachine loads the given instruction words and returns a CPU
// wired to stub peripherals.
func newTestMachine(t *testing.T, words ...uint16) *testMachine {
	t.Helper()

	mem := memory.New()
	require.NoError(t, mem.LoadWords(words))

	m := &testMachine{
		mem:     mem,
		display: &stubDisplay{},
		keypad:  &stubKeypad{},
		timers:  &stubTimers{},
	}
	m.cpu = New(mem, m.display, m.keypad, m.timers)
	return m
}

func (m *testMachine) step(t *testing.T) {
	t.Helper()
	require.NoError(t, m.cpu.Cycle())
}

func TestFetch_BigEndian(t *testing.T) {
	m := newTestMachine(t, 0x6A42)

	m.step(t)

	assert.Equal(t, uint8(0x42), m.cpu.Register(0xA))
}

func TestFetch_OutOfBounds(t *testing.T) {
	m := newTestMachine(t)
	m.cpu.pc = memory.Size - 1

	err := m.cpu.Cycle()
	assert.Error(t, err)
}

func TestCycle_AdvancesPC(t *testing.T) {
	m := newTestMachine(t, 0x6005)

	m.step(t)

	assert.Equal(t, uint16(memory.ProgramStart+2), m.cpu.PC())
}

func TestKeyWait_Suspends(t *testing.T) {
	m := newTestMachine(t, 0xF30A)

	m.step(t)

	assert.True(t, m.cpu.AwaitingKey())
	assert.Equal(t, uint16(memory.ProgramStart), m.cpu.PC(), "PC stays on the wait instruction")
}

func TestKeyWait_Completes(t *testing.T) {
	m := newTestMachine(t, 0xF30A)
	m.step(t)

	m.cpu.CompleteKeyWait(0xB)

	assert.False(t, m.cpu.AwaitingKey())
	assert.Equal(t, uint8(0xB), m.cpu.Register(3))
	assert.Equal(t, uint16(memory.ProgramStart+2), m.cpu.PC())
}

func TestCompleteKeyWait_IgnoredWhenNotWaiting(t *testing.T) {
	m := newTestMachine(t, 0x6005)
	m.step(t)

	pc := m.cpu.PC()
	m.cpu.CompleteKeyWait(0xB)

	assert.Equal(t, pc, m.cpu.PC())
	assert.Equal(t, uint8(0x05), m.cpu.Register(0))
}

func TestRestart_CancelsWait(t *testing.T) {
	m := newTestMachine(t, 0xF30A)
	m.step(t)

	m.cpu.SetRegister(4, 0x99)
	m.cpu.Restart()

	assert.False(t, m.cpu.AwaitingKey())
	assert.Equal(t, uint16(0), m.cpu.PC())
	assert.Equal(t, uint8(0x99), m.cpu.Register(4), "registers survive a restart")
}
