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
	"testing"

	"github.com/jetsetilly/rtinput/buffer"
	"github.com/jetsetilly/rtinput/clock"
	"github.com/jetsetilly/rtinput/logger"
	"github.com/jetsetilly/rtinput/test"
	"github.com/jetsetilly/rtinput/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

var _ userinput.Backend = (*Backend)(nil)
var _ userinput.JoystickInfo = (*Backend)(nil)

func newTestBackend() (*Backend, *buffer.Store, *clock.Manual) {
	src := &clock.Manual{}
	src.Set(10.0)
	s := buffer.NewStore(src)
	s.SetInputLogging(logger.PermissionFunc(func() bool { return false }))
	b := &Backend{
		handler:   s,
		instances: map[sdl.JoystickID]int{7: 0},
	}
	return b, s, src
}

func TestEventAge(t *testing.T) {
	test.ExpectApproximate(t, eventAge(1500, 1000), 0.5, 0.0001)
	test.ExpectEquality(t, eventAge(1000, 1500), 0.0)
	test.ExpectEquality(t, eventAge(1000, 0), 0.0)
}

func TestAxisValue(t *testing.T) {
	test.ExpectEquality(t, axisValue(32767), 1.0)
	test.ExpectEquality(t, axisValue(-32768), -1.0)
	test.ExpectEquality(t, axisValue(0), 0.0)
}

func TestMouseDispatch(t *testing.T) {
	b, s, src := newTestBackend()
	src.Advance(1.0)

	b.dispatch(&sdl.MouseButtonEvent{
		Type:      sdl.MOUSEBUTTONDOWN,
		Timestamp: 1000,
		Button:    sdl.BUTTON_RIGHT,
	}, 1250)

	buttons, latency := s.Buttons()
	test.ExpectSuccess(t, buttons[userinput.MouseButtonRight])
	test.ExpectFailure(t, buttons[userinput.MouseButtonLeft])

	// the store's button clocks were reset at time 10.0 and the press
	// happened a quarter of a second before the pump at time 11.0
	test.ExpectApproximate(t, latency[userinput.MouseButtonRight], 0.75, 0.0001)

	b.dispatch(&sdl.MouseButtonEvent{
		Type:   sdl.MOUSEBUTTONUP,
		Button: sdl.BUTTON_RIGHT,
	}, 1250)
	buttons, _ = s.Buttons()
	test.ExpectFailure(t, buttons[userinput.MouseButtonRight])

	// extra buttons are ignored
	b.dispatch(&sdl.MouseButtonEvent{
		Type:   sdl.MOUSEBUTTONDOWN,
		Button: sdl.BUTTON_X1,
	}, 1250)
	buttons, _ = s.Buttons()
	test.ExpectEquality(t, buttons, [userinput.NumMouseButtons]bool{})

	b.dispatch(&sdl.MouseWheelEvent{Y: 2}, 0)
	b.dispatch(&sdl.MouseWheelEvent{X: 1, Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED}, 0)
	dx, dy := s.TakeWheelDelta()
	test.ExpectEquality(t, dx, -1.0)
	test.ExpectEquality(t, dy, 1.0)
}

func TestKeyDispatch(t *testing.T) {
	b, s, _ := newTestBackend()

	b.dispatch(&sdl.KeyboardEvent{
		Type:      sdl.KEYDOWN,
		Timestamp: 900,
		Keysym:    sdl.Keysym{Sym: sdl.K_a},
	}, 1000)

	// repeats and key releases are ignored
	b.dispatch(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Repeat: 1,
		Keysym: sdl.Keysym{Sym: sdl.K_a},
	}, 1000)
	b.dispatch(&sdl.KeyboardEvent{
		Type:   sdl.KEYUP,
		Keysym: sdl.Keysym{Sym: sdl.K_a},
	}, 1000)

	keys := s.DrainKeys(nil)
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0].Name, "a")
	test.ExpectApproximate(t, keys[0].Time, 9.9, 0.0001)
}

func TestJoystickDispatch(t *testing.T) {
	b, s, _ := newTestBackend()

	b.dispatch(&sdl.JoyAxisEvent{Which: 7, Axis: 1, Value: -32768}, 0)
	b.dispatch(&sdl.JoyButtonEvent{Which: 7, Button: 2, State: sdl.PRESSED}, 0)
	b.dispatch(&sdl.JoyHatEvent{Which: 7, Hat: 0, Value: sdl.HAT_RIGHTUP}, 0)

	// unknown instance
	b.dispatch(&sdl.JoyButtonEvent{Which: 3, Button: 0, State: sdl.PRESSED}, 0)

	j := s.Joystick(0)
	test.DemandEquality(t, len(j.Axes), 2)
	test.ExpectEquality(t, j.Axes[1], -1.0)
	test.DemandEquality(t, len(j.Buttons), 3)
	test.ExpectSuccess(t, j.Buttons[2])
	test.DemandEquality(t, len(j.Hats), 1)
	test.ExpectEquality(t, j.Hats[0], userinput.DPadRightUp)

	test.ExpectEquality(t, len(s.Joystick(1).Buttons), 0)
}

func TestEventRange(t *testing.T) {
	lo, hi := eventRange(userinput.ScopeKeyboard)
	test.ExpectEquality(t, lo, uint32(sdl.KEYDOWN))
	test.ExpectSuccess(t, hi >= lo)

	lo, hi = eventRange(userinput.ScopeAll)
	test.ExpectEquality(t, lo, uint32(sdl.FIRSTEVENT))
	test.ExpectEquality(t, hi, uint32(sdl.LASTEVENT))
}
