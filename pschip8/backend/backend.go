package backend

import (
	"github.com/fagyapong/pschip8/pschip8/input/action"
	"github.com/fagyapong/pschip8/pschip8/input/event"
	"github.com/fagyapong/pschip8/pschip8/video"
)

// Backend represents a complete interpreter platform (rendering + input).
// Backends are responsible for:
// - Rendering dirty frames to their specific output (terminal, SDL window)
// - Translating platform-specific input events to Actions
// - Handling backend-specific features (snapshots, test patterns)
type Backend interface {
	// Init configures the backend. Required before calling Update.
	Init(config Config) error

	// Update polls platform events and renders the frame if it is dirty.
	// Returns the input events collected since the previous call.
	Update(frame *video.FrameBuffer) ([]InputEvent, error)

	// Cleanup releases resources when shutting down.
	Cleanup() error
}

// Config holds configuration for backends.
type Config struct {
	Title       string
	Scale       int  // pixel scale factor for windowed backends
	TestPattern bool // display a test pattern instead of the program
}

// InputEvent is a translated platform input event.
type InputEvent struct {
	Action action.Action
	Type   event.Type
}
