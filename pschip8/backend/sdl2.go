//go:build sdl2

package backend

import (
	"fmt"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/fagyapong/pschip8/pschip8/input/action"
	"github.com/fagyapong/pschip8/pschip8/input/event"
	"github.com/fagyapong/pschip8/pschip8/video"
)

const defaultScale = 8

// sdlKeyMapping lays the 16-symbol pad over the left of a QWERTY board,
// same layout as the terminal backend.
var sdlKeyMapping = map[sdl.Keycode]action.Action{
	sdl.K_1: action.Key1, sdl.K_2: action.Key2, sdl.K_3: action.Key3, sdl.K_4: action.KeyC,
	sdl.K_q: action.Key4, sdl.K_w: action.Key5, sdl.K_e: action.Key6, sdl.K_r: action.KeyD,
	sdl.K_a: action.Key7, sdl.K_s: action.Key8, sdl.K_d: action.Key9, sdl.K_f: action.KeyE,
	sdl.K_z: action.KeyA, sdl.K_x: action.Key0, sdl.K_c: action.KeyB, sdl.K_v: action.KeyF,
}

var sdlControlMapping = map[sdl.Keycode]action.Action{
	sdl.K_ESCAPE: action.MachineQuit,
	sdl.K_F5:     action.MachineReset,
	sdl.K_SPACE:  action.MachinePauseToggle,
	sdl.K_n:      action.MachineStepFrame,
}

// SDL2Backend implements the Backend interface using SDL2 bindings.
// Note: building this requires SDL2 development libraries installed.
// Default builds skip this and use a stubbed backend, see build tags (sdl2).
type SDL2Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32
	running  bool
	config   Config
}

// NewSDL2Backend creates a new SDL2 backend
func NewSDL2Backend() *SDL2Backend {
	return &SDL2Backend{}
}

func (s *SDL2Backend) Init(config Config) error {
	s.config = config

	s.scale = defaultScale
	if config.Scale > 0 {
		s.scale = int32(config.Scale)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %v", err)
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		video.FramebufferWidth*s.scale,
		video.FramebufferHeight*s.scale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %v", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %v", err)
	}
	s.renderer = renderer
	s.running = true

	slog.Info("SDL2 backend initialized", "scale", s.scale)
	return nil
}

func (s *SDL2Backend) Update(frame *video.FrameBuffer) ([]InputEvent, error) {
	var events []InputEvent

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			s.running = false
			events = append(events, InputEvent{Action: action.MachineQuit, Type: event.Press})

		case *sdl.KeyboardEvent:
			if act, ok := sdlKeyMapping[e.Keysym.Sym]; ok {
				switch e.Type {
				case sdl.KEYDOWN:
					if e.Repeat == 0 {
						events = append(events, InputEvent{Action: act, Type: event.Press})
					}
				case sdl.KEYUP:
					events = append(events, InputEvent{Action: act, Type: event.Release})
				}
				continue
			}
			if act, ok := sdlControlMapping[e.Keysym.Sym]; ok && e.Type == sdl.KEYDOWN {
				if act == action.MachineQuit {
					s.running = false
				}
				events = append(events, InputEvent{Action: act, Type: event.Press})
			}
		}
	}

	if s.running && frame.Dirty() {
		s.renderFrame(frame)
	}

	return events, nil
}

func (s *SDL2Backend) Cleanup() error {
	slog.Info("Cleaning up SDL2 backend")

	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()

	return nil
}

func (s *SDL2Backend) renderFrame(frame *video.FrameBuffer) {
	s.renderer.SetDrawColor(0, 0, 0, 255)
	s.renderer.Clear()

	s.renderer.SetDrawColor(255, 255, 255, 255)
	pixels := frame.ToSlice()
	for y := int32(0); y < video.FramebufferHeight; y++ {
		for x := int32(0); x < video.FramebufferWidth; x++ {
			if !pixels[y*video.FramebufferWidth+x] {
				continue
			}
			s.renderer.FillRect(&sdl.Rect{
				X: x * s.scale,
				Y: y * s.scale,
				W: s.scale,
				H: s.scale,
			})
		}
	}

	s.renderer.Present()
}
