package input

import (
	"time"

	"github.com/fagyapong/pschip8/pschip8/input/action"
	"github.com/fagyapong/pschip8/pschip8/input/event"
)

const (
	// debounceDuration is the minimum time between debounced control events
	debounceDuration = 300 * time.Millisecond
)

// Manager routes input actions: keypad actions are written straight to
// the keypad state, control actions (quit, reset, pause...) fire
// registered callbacks. Control presses are debounced; keypad keys are
// not, since programs depend on seeing every press and release.
type Manager struct {
	handlers      map[action.Action]map[event.Type][]func()
	lastTriggered map[action.Action]time.Time
	keypad        *Keypad
}

func NewManager(k *Keypad) *Manager {
	return &Manager{
		handlers:      make(map[action.Action]map[event.Type][]func()),
		lastTriggered: make(map[action.Action]time.Time),
		keypad:        k,
	}
}

// On registers a callback for a specific action and event type
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}
	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger handles the given action and event type.
func (m *Manager) Trigger(act action.Action, evt event.Type) {
	// Keypad symbols go directly to keypad state.
	if symbol, ok := action.KeypadSymbol(act); ok {
		if m.keypad != nil {
			switch evt {
			case event.Press:
				m.keypad.Press(symbol)
			case event.Release:
				m.keypad.Release(symbol)
			}
		}
		return
	}

	// Control actions are debounced on press.
	if evt == event.Press {
		now := time.Now()
		if now.Sub(m.lastTriggered[act]) < debounceDuration {
			return
		}
		m.lastTriggered[act] = now
	}

	for _, callback := range m.handlers[act][evt] {
		callback()
	}
}
