package pschip8

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fagyapong/pschip8/pschip8/backend"
	"github.com/fagyapong/pschip8/pschip8/cpu"
	"github.com/fagyapong/pschip8/pschip8/input"
	"github.com/fagyapong/pschip8/pschip8/input/action"
	"github.com/fagyapong/pschip8/pschip8/input/event"
	"github.com/fagyapong/pschip8/pschip8/memory"
	"github.com/fagyapong/pschip8/pschip8/timer"
	"github.com/fagyapong/pschip8/pschip8/timing"
	"github.com/fagyapong/pschip8/pschip8/video"
)

// State is the scheduler's machine state. The key-wait instruction is
// modeled as an explicit state rather than an inline block so that
// restart and quit compose with normal frame pacing.
type State int

const (
	Running State = iota
	AwaitingKey
	Paused
	Stopped
)

// Machine wires the execution engine to memory, display, timers and
// keypad, and drives one instruction + one timer tick per frame.
type Machine struct {
	cpu     *cpu.CPU
	mem     *memory.Memory
	frame   *video.FrameBuffer
	timers  *timer.Timer
	keypad  *input.Keypad
	manager *input.Manager

	state      State
	stepOnce   bool // run a single frame while paused
	frameCount uint64
}

// New creates a machine with no program loaded.
func New() *Machine {
	m := &Machine{
		mem:    memory.New(),
		frame:  video.NewFrameBuffer(),
		timers: timer.New(),
		keypad: input.NewKeypad(),
		state:  Running,
	}
	m.cpu = cpu.New(m.mem, m.frame, m.keypad, m.timers)

	m.manager = input.NewManager(m.keypad)
	m.manager.On(action.MachineQuit, event.Press, m.Quit)
	m.manager.On(action.MachineReset, event.Press, m.Reset)
	m.manager.On(action.MachinePauseToggle, event.Press, m.togglePause)
	m.manager.On(action.MachineStepFrame, event.Press, m.requestStep)

	return m
}

// NewWithFile creates a machine and loads the program at path into it.
func NewWithFile(path string) (*Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program: %w", err)
	}

	m := New()
	if err := m.mem.LoadProgram(data); err != nil {
		return nil, err
	}

	slog.Info("Loaded program", "path", path, "bytes", len(data))
	return m, nil
}

// NewWithProgram creates a machine from instruction words, stored
// big-endian at the program start address.
func NewWithProgram(words []uint16) (*Machine, error) {
	m := New()
	if err := m.mem.LoadWords(words); err != nil {
		return nil, err
	}
	return m, nil
}

// RunFrame advances the machine by one frame: one instruction and one
// timer tick. While suspended on a key wait, nothing executes and the
// timers hold still until a key-down arrives.
func (m *Machine) RunFrame() error {
	switch m.state {
	case Stopped:
		return nil
	case Paused:
		if !m.stepOnce {
			return nil
		}
		m.stepOnce = false
	case AwaitingKey:
		if symbol, ok := m.keypad.TakeKeyPress(); ok {
			m.cpu.CompleteKeyWait(symbol)
			m.state = Running
		}
		return nil
	}

	if err := m.cpu.Cycle(); err != nil {
		return err
	}
	m.timers.Tick()
	m.frameCount++

	if m.cpu.AwaitingKey() {
		// Drop any key-down recorded before the wait started: Fx0A
		// waits for the next press, not a buffered one.
		m.keypad.TakeKeyPress()
		m.state = AwaitingKey
	}
	return nil
}

// Run drives the main loop against a backend until the machine stops.
func (m *Machine) Run(b backend.Backend, limiter timing.Limiter) error {
	defer b.Cleanup()

	for m.state != Stopped {
		events, err := b.Update(m.frame)
		if err != nil {
			return err
		}
		m.frame.MarkPresented()
		m.Apply(events)

		if err := m.RunFrame(); err != nil {
			snapshot := m.cpu.Snapshot()
			slog.Error("Execution halted", "error", err, "pc", fmt.Sprintf("0x%04X", snapshot.PC))
			return err
		}

		limiter.WaitForNextFrame()
	}
	return nil
}

// Apply routes backend input events through the input manager.
func (m *Machine) Apply(events []backend.InputEvent) {
	for _, ev := range events {
		m.manager.Trigger(ev.Action, ev.Type)
	}
}

// Reset returns the program counter to address zero and clears the
// display, cancelling any pending key wait. Register and memory
// contents are preserved.
func (m *Machine) Reset() {
	slog.Info("Machine reset")
	m.cpu.Restart()
	m.frame.Clear()
	m.keypad.Reset()
	if m.state != Stopped {
		m.state = Running
	}
}

// Quit puts the machine in its terminal state.
func (m *Machine) Quit() {
	slog.Info("Machine stopped", "frames", m.frameCount)
	m.state = Stopped
}

func (m *Machine) togglePause() {
	switch m.state {
	case Running, AwaitingKey:
		m.state = Paused
		slog.Info("Machine paused")
	case Paused:
		m.state = Running
		slog.Info("Machine resumed")
	}
}

func (m *Machine) requestStep() {
	if m.state == Paused {
		m.stepOnce = true
	}
}

// GetCurrentFrame returns the display grid.
func (m *Machine) GetCurrentFrame() *video.FrameBuffer {
	return m.frame
}

// AudioGate exposes the sound timer gate for the audio device.
func (m *Machine) AudioGate() *timer.Timer {
	return m.timers
}

// State returns the current scheduler state.
func (m *Machine) State() State {
	return m.state
}

// FrameCount returns the number of executed frames.
func (m *Machine) FrameCount() uint64 {
	return m.frameCount
}

// CPU exposes the execution engine for debugging and tests.
func (m *Machine) CPU() *cpu.CPU {
	return m.cpu
}
