// This file is part of rtinput.
//
// rtinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rtinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rtinput.  If not, see <https://www.gnu.org/licenses/>.

package sdlinput

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/jetsetilly/rtinput/logger"
	"github.com/jetsetilly/rtinput/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Config for the SDL backend.
type Config struct {
	// attach to this window. if nil then the window with keyboard focus is
	// used, or mouse focus if no window has keyboard focus
	Window *sdl.Window

	// create a window if there is no window to attach to
	Create bool
	Title  string
	Width  int
	Height int
}

// Backend implements the userinput.Backend and userinput.JoystickInfo
// interfaces for SDL.
type Backend struct {
	handler userinput.Handler

	window    *sdl.Window
	ownWindow bool

	// sdl was initialised by Open() and should be shut down by Close()
	ownInit bool

	// joysticks are numbered in the order they were opened. SDL events
	// refer to joysticks by instance ID
	joysticks []*sdl.Joystick
	instances map[sdl.JoystickID]int
}

// Open the SDL backend.
func Open(cfg Config) (*Backend, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	b := &Backend{
		instances: make(map[sdl.JoystickID]int),
	}

	if sdl.WasInit(sdl.INIT_VIDEO) == 0 {
		if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK); err != nil {
			return nil, fmt.Errorf("sdl: %w", err)
		}
		b.ownInit = true
	} else if err := sdl.InitSubSystem(sdl.INIT_JOYSTICK); err != nil {
		logger.Logf(logger.Allow, "sdl", "joysticks unavailable: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	b.window = cfg.Window
	if b.window == nil {
		b.window = sdl.GetKeyboardFocus()
	}
	if b.window == nil {
		b.window = sdl.GetMouseFocus()
	}
	if b.window == nil {
		if !cfg.Create {
			b.quit()
			return nil, errors.New("sdl: no window")
		}

		w, err := sdl.CreateWindow(cfg.Title,
			sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
			int32(cfg.Width), int32(cfg.Height),
			sdl.WINDOW_SHOWN|sdl.WINDOW_ALLOW_HIGHDPI)
		if err != nil {
			b.quit()
			return nil, fmt.Errorf("sdl: %w", err)
		}
		b.window = w
		b.ownWindow = true
	}

	// add joysticks
	for i := 0; i < sdl.NumJoysticks(); i++ {
		b.openJoystick(i)
	}
	if len(b.joysticks) == 0 {
		logger.Log(logger.Allow, "sdl", "no joysticks found")
	}

	return b, nil
}

func (b *Backend) openJoystick(index int) {
	joy := sdl.JoystickOpen(index)
	if joy == nil || !joy.Attached() {
		return
	}
	if _, ok := b.instances[joy.InstanceID()]; ok {
		return
	}
	logger.Logf(logger.Allow, "sdl", "joystick: %s", joy.Name())
	b.instances[joy.InstanceID()] = len(b.joysticks)
	b.joysticks = append(b.joysticks, joy)
}

func (b *Backend) quit() {
	if b.ownInit {
		sdl.Quit()
		b.ownInit = false
	}
}

// Window returns the SDL window that the backend is attached to.
func (b *Backend) Window() *sdl.Window {
	return b.window
}

// Name implements the userinput.Backend interface.
func (b *Backend) Name() string {
	return "sdl"
}

// SetHandler implements the userinput.Backend interface.
func (b *Backend) SetHandler(h userinput.Handler) {
	b.handler = h
}

// Pump implements the userinput.Backend interface.
func (b *Backend) Pump() error {
	if b.handler == nil {
		return errors.New("sdl: no handler")
	}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		b.dispatch(ev, sdl.GetTicks())
	}

	return nil
}

func (b *Backend) dispatch(ev sdl.Event, ticks uint32) {
	h := b.handler

	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		logger.Log(logger.Allow, "sdl", "quit requested")

	case *sdl.KeyboardEvent:
		if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
			return
		}
		name := userinput.NormaliseKeyName(sdl.GetKeyName(ev.Keysym.Sym))
		if name == "" {
			return
		}
		h.RecordKeyDown(name, h.Now()-eventAge(ticks, ev.Timestamp))

	case *sdl.MouseMotionEvent:
		h.RecordMotion(h.Now() - eventAge(ticks, ev.Timestamp))

	case *sdl.MouseButtonEvent:
		button, ok := mouseButton(ev.Button)
		if !ok {
			return
		}
		switch ev.Type {
		case sdl.MOUSEBUTTONDOWN:
			h.RecordButtonDown(button, h.Now()-eventAge(ticks, ev.Timestamp))
		case sdl.MOUSEBUTTONUP:
			h.RecordButtonUp(button)
		}

	case *sdl.MouseWheelEvent:
		dx, dy := float64(ev.X), float64(ev.Y)
		if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dx, dy = -dx, -dy
		}
		h.RecordWheel(dx, dy)

	case *sdl.JoyAxisEvent:
		if id, ok := b.instances[ev.Which]; ok {
			h.RecordJoyAxis(id, int(ev.Axis), axisValue(ev.Value))
		}

	case *sdl.JoyButtonEvent:
		if id, ok := b.instances[ev.Which]; ok {
			h.RecordJoyButton(id, int(ev.Button), ev.State == sdl.PRESSED)
		}

	case *sdl.JoyHatEvent:
		if id, ok := b.instances[ev.Which]; ok {
			if dir := hatDirection(ev.Value); dir != userinput.DPadNone {
				h.RecordJoyHat(id, int(ev.Hat), dir)
			}
		}

	case *sdl.JoyDeviceAddedEvent:
		b.openJoystick(int(ev.Which))
	}
}

// Discard implements the userinput.Backend interface.
func (b *Backend) Discard(scope userinput.Scope) error {
	sdl.PumpEvents()
	sdl.FlushEvents(eventRange(scope))
	return nil
}

// MousePos implements the userinput.Backend interface.
func (b *Backend) MousePos() (float64, float64, error) {
	x, y, _ := sdl.GetMouseState()
	return float64(x), float64(y), nil
}

// SetMousePos implements the userinput.Backend interface.
func (b *Backend) SetMousePos(x, y float64) error {
	b.window.WarpMouseInWindow(int32(x), int32(y))
	return nil
}

// MouseVisible implements the userinput.Backend interface.
func (b *Backend) MouseVisible() (bool, error) {
	v, err := sdl.ShowCursor(sdl.QUERY)
	if err != nil {
		return false, fmt.Errorf("sdl: %w", err)
	}
	return v == sdl.ENABLE, nil
}

// SetMouseVisible implements the userinput.Backend interface.
func (b *Backend) SetMouseVisible(visible bool) error {
	toggle := sdl.DISABLE
	if visible {
		toggle = sdl.ENABLE
	}
	if _, err := sdl.ShowCursor(toggle); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// WindowSize implements the userinput.Backend interface.
func (b *Backend) WindowSize() (int, int) {
	w, h := b.window.GetSize()
	return int(w), int(h)
}

// Close implements the userinput.Backend interface.
func (b *Backend) Close() error {
	for _, j := range b.joysticks {
		j.Close()
	}
	b.joysticks = nil
	clear(b.instances)

	var err error
	if b.ownWindow && b.window != nil {
		err = b.window.Destroy()
		b.window = nil
	}

	b.quit()

	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// NumJoysticks implements the userinput.JoystickInfo interface.
func (b *Backend) NumJoysticks() int {
	return len(b.joysticks)
}

// JoystickName implements the userinput.JoystickInfo interface.
func (b *Backend) JoystickName(id int) string {
	if id < 0 || id >= len(b.joysticks) {
		return ""
	}
	return b.joysticks[id].Name()
}

// JoystickCaps implements the userinput.JoystickInfo interface.
func (b *Backend) JoystickCaps(id int) (int, int, int) {
	if id < 0 || id >= len(b.joysticks) {
		return 0, 0, 0
	}
	j := b.joysticks[id]
	return j.NumAxes(), j.NumButtons(), j.NumHats()
}
