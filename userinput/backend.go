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

package userinput

import (
	"strings"

	"github.com/jetsetilly/rtinput/curated"
	"github.com/jetsetilly/rtinput/logger"
)

// Sentinal error patterns.
const (
	BackendUnavailable   = "userinput: no backend available (tried %s)"
	UnsupportedOperation = "%s: %s not supported"
)

// Unsupported returns an UnsupportedOperation error for the named backend and
// operation.
func Unsupported(backend string, operation string) error {
	return curated.Errorf(UnsupportedOperation, backend, operation)
}

// Handler receives normalised input from a Backend. Calls to a Handler are
// only made from inside Backend.Pump().
type Handler interface {
	// Now is the current time on the handler's clock. Backends use it to
	// timestamp events, correcting for the age of the event if the library
	// reports when the event happened.
	Now() float64

	RecordKeyDown(name string, t float64)
	RecordButtonDown(b MouseButton, t float64)
	RecordButtonUp(b MouseButton)
	RecordWheel(dx, dy float64)
	RecordMotion(t float64)

	// joystick axis values are normalised to the range -1 to 1
	RecordJoyButton(id int, button int, down bool)
	RecordJoyAxis(id int, axis int, value float64)
	RecordJoyHat(id int, hat int, dir DPad)
}

// Backend is the capability set required of a windowing/input library.
//
// Positions are in pixels with the origin at the top-left of the window and y
// increasing downwards.
type Backend interface {
	// Name of backend. Used in log entries and errors.
	Name() string

	// SetHandler must be called before the first call to Pump().
	SetHandler(h Handler)

	// Pump dispatches all pending events to the handler.
	Pump() error

	// Discard pending events in the scope without dispatching them.
	Discard(scope Scope) error

	MousePos() (x float64, y float64, err error)
	SetMousePos(x float64, y float64) error
	MouseVisible() (bool, error)
	SetMouseVisible(visible bool) error

	// WindowSize is the size of the window, in pixels, receiving input.
	WindowSize() (w int, h int)

	Close() error
}

// JoystickInfo is implemented by backends that support joysticks.
type JoystickInfo interface {
	NumJoysticks() int
	JoystickName(id int) string
	JoystickCaps(id int) (axes int, buttons int, hats int)
}

// Probe is a candidate backend.
type Probe struct {
	Name string
	Open func() (Backend, error)
}

// Select tries each probe in turn and returns the first backend that opens
// without error.
func Select(probes ...Probe) (Backend, error) {
	names := make([]string, 0, len(probes))

	for _, p := range probes {
		names = append(names, p.Name)

		b, err := p.Open()
		if err != nil {
			logger.Logf(logger.Allow, "userinput", "%s backend unavailable: %v", p.Name, err)
			continue
		}

		logger.Logf(logger.Allow, "userinput", "using %s backend", b.Name())
		return b, nil
	}

	if len(names) == 0 {
		names = append(names, "nothing")
	}

	return nil, curated.Errorf(BackendUnavailable, strings.Join(names, ", "))
}
