package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/fagyapong/pschip8/pschip8/backend"
	"github.com/fagyapong/pschip8/pschip8/input/action"
	"github.com/fagyapong/pschip8/pschip8/input/event"
	"github.com/fagyapong/pschip8/pschip8/video"
)

const (
	width  = video.FramebufferWidth
	height = video.FramebufferHeight

	minTermWidth  = width + 2
	minTermHeight = height/2 + 2

	// keyTimeout synthesizes key releases: terminals only report
	// key-down, so a key not repeated within this window counts as
	// released. Slightly longer than a typical repeat interval.
	keyTimeout = 100 * time.Millisecond
)

// runeMapping lays the 16-symbol pad over the left of a QWERTY board:
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
var runeMapping = map[rune]action.Action{
	'1': action.Key1, '2': action.Key2, '3': action.Key3, '4': action.KeyC,
	'q': action.Key4, 'w': action.Key5, 'e': action.Key6, 'r': action.KeyD,
	'a': action.Key7, 's': action.Key8, 'd': action.Key9, 'f': action.KeyE,
	'z': action.KeyA, 'x': action.Key0, 'c': action.KeyB, 'v': action.KeyF,
}

// keyMapping maps special tcell keys to control actions.
var keyMapping = map[tcell.Key]action.Action{
	tcell.KeyEscape: action.MachineQuit,
	tcell.KeyCtrlC:  action.MachineQuit,
	tcell.KeyCtrlR:  action.MachineReset,
}

// controlRunes are control actions reachable from plain runes.
var controlRunes = map[rune]action.Action{
	' ': action.MachinePauseToggle,
	'n': action.MachineStepFrame,
	't': action.MachineTestPatternCycle,
}

// Backend renders the display grid to a terminal using tcell, packing
// two pixel rows into each text row with half-block runes.
type Backend struct {
	screen     tcell.Screen
	running    bool
	config     backend.Config
	eventQueue []backend.InputEvent

	keyStates  map[action.Action]time.Time // last press time per keypad action
	activeKeys map[action.Action]bool      // keypad actions held in the previous frame

	testPatternFrame *video.FrameBuffer
	testPatternType  int
}

// New creates a new terminal backend
func New() *Backend {
	return &Backend{}
}

func (t *Backend) Init(config backend.Config) error {
	t.config = config
	t.keyStates = make(map[action.Action]time.Time)
	t.activeKeys = make(map[action.Action]bool)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}

	t.screen = screen
	t.running = true

	if config.TestPattern {
		t.testPatternFrame = video.NewFrameBuffer()
		t.generateTestPattern(0)
	}

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	go t.handleSignals()

	return nil
}

// Update polls terminal events, synthesizes press/release pairs from
// key repeats, and renders the frame when it is dirty.
func (t *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	var events []backend.InputEvent
	now := time.Now()

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev, now)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	currentlyActive := make(map[action.Action]bool)

	for act, lastPressed := range t.keyStates {
		if now.Sub(lastPressed) < keyTimeout {
			currentlyActive[act] = true
			if !t.activeKeys[act] {
				events = append(events, backend.InputEvent{Action: act, Type: event.Press})
			} else {
				events = append(events, backend.InputEvent{Action: act, Type: event.Hold})
			}
		} else {
			delete(t.keyStates, act)
		}
	}

	for act := range t.activeKeys {
		if !currentlyActive[act] {
			events = append(events, backend.InputEvent{Action: act, Type: event.Release})
		}
	}
	t.activeKeys = currentlyActive

	events = append(events, t.eventQueue...)
	t.eventQueue = nil

	if !t.running {
		return events, nil
	}

	renderFrame := frame
	if t.config.TestPattern {
		renderFrame = t.testPatternFrame
	}

	if renderFrame.Dirty() {
		t.render(renderFrame)
		t.screen.Show()
	}

	return events, nil
}

func (t *Backend) Cleanup() error {
	if t.screen != nil {
		slog.Info("Cleaning up terminal backend")
		t.screen.Fini()
	}
	return nil
}

func (t *Backend) handleSignals() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	<-signals
	t.running = false
	t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: action.MachineQuit, Type: event.Press})
}

func (t *Backend) processKeyEvent(ev *tcell.EventKey, now time.Time) {
	if act, exists := keyMapping[ev.Key()]; exists {
		if act == action.MachineQuit {
			t.running = false
		}
		t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: act, Type: event.Press})
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}

	r := ev.Rune()
	if act, exists := runeMapping[r]; exists {
		t.keyStates[act] = now
		return
	}
	if act, exists := controlRunes[r]; exists {
		if act == action.MachineTestPatternCycle && t.config.TestPattern {
			t.testPatternType = (t.testPatternType + 1) % 2
			t.generateTestPattern(t.testPatternType)
		}
		t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: act, Type: event.Press})
	}
}

// render draws the grid with half blocks, two pixel rows per text row.
func (t *Backend) render(frame *video.FrameBuffer) {
	termWidth, termHeight := t.screen.Size()
	if termWidth < minTermWidth || termHeight < minTermHeight {
		t.screen.Clear()
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		for i, ch := range msg {
			t.screen.SetContent(i, termHeight/2, ch, nil, style)
		}
		return
	}

	t.screen.Clear()
	t.drawBorder()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			top := frame.GetPixel(uint(x), uint(y))
			bottom := frame.GetPixel(uint(x), uint(y+1))

			var ch rune
			switch {
			case top && bottom:
				ch = '█'
			case top:
				ch = '▀'
			case bottom:
				ch = '▄'
			default:
				ch = ' '
			}
			t.screen.SetContent(x+1, y/2+1, ch, nil, style)
		}
	}
}

func (t *Backend) drawBorder() {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for x := 0; x <= width+1; x++ {
		t.screen.SetContent(x, 0, '─', nil, style)
		t.screen.SetContent(x, height/2+1, '─', nil, style)
	}
	for y := 0; y <= height/2+1; y++ {
		t.screen.SetContent(0, y, '│', nil, style)
		t.screen.SetContent(width+1, y, '│', nil, style)
	}
	t.screen.SetContent(0, 0, '┌', nil, style)
	t.screen.SetContent(width+1, 0, '┐', nil, style)
	t.screen.SetContent(0, height/2+1, '└', nil, style)
	t.screen.SetContent(width+1, height/2+1, '┘', nil, style)
}

func (t *Backend) generateTestPattern(patternType int) {
	switch patternType {
	case 0: // Checkerboard
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				t.testPatternFrame.SetPixel(uint(x), uint(y), (x/4+y/4)%2 == 0)
			}
		}
	case 1: // Vertical stripes
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				t.testPatternFrame.SetPixel(uint(x), uint(y), (x/2)%2 == 0)
			}
		}
	}
}
