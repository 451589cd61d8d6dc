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
	"github.com/jetsetilly/rtinput/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// eventAge returns the number of seconds between an event's SDL timestamp and
// the current SDL tick count.
func eventAge(ticks uint32, stamp uint32) float64 {
	if stamp == 0 || stamp > ticks {
		return 0
	}
	return float64(ticks-stamp) / 1000.0
}

func mouseButton(b uint8) (userinput.MouseButton, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return userinput.MouseButtonLeft, true
	case sdl.BUTTON_MIDDLE:
		return userinput.MouseButtonMiddle, true
	case sdl.BUTTON_RIGHT:
		return userinput.MouseButtonRight, true
	}
	return userinput.MouseButtonLeft, false
}

func hatDirection(v uint8) userinput.DPad {
	switch v {
	case sdl.HAT_CENTERED:
		return userinput.DPadCentre
	case sdl.HAT_UP:
		return userinput.DPadUp
	case sdl.HAT_DOWN:
		return userinput.DPadDown
	case sdl.HAT_LEFT:
		return userinput.DPadLeft
	case sdl.HAT_RIGHT:
		return userinput.DPadRight
	case sdl.HAT_LEFTUP:
		return userinput.DPadLeftUp
	case sdl.HAT_LEFTDOWN:
		return userinput.DPadLeftDown
	case sdl.HAT_RIGHTUP:
		return userinput.DPadRightUp
	case sdl.HAT_RIGHTDOWN:
		return userinput.DPadRightDown
	}
	return userinput.DPadNone
}

// axisValue normalises an SDL axis value to the range -1 to 1.
func axisValue(v int16) float64 {
	if v < 0 {
		return float64(v) / 32768.0
	}
	return float64(v) / 32767.0
}

// eventRange returns the range of SDL event types for the scope.
func eventRange(scope userinput.Scope) (uint32, uint32) {
	switch scope {
	case userinput.ScopeKeyboard:
		return sdl.KEYDOWN, sdl.TEXTINPUT
	case userinput.ScopeMouse:
		return sdl.MOUSEMOTION, sdl.MOUSEWHEEL
	case userinput.ScopeJoystick:
		return sdl.JOYAXISMOTION, sdl.JOYDEVICEREMOVED
	}
	return sdl.FIRSTEVENT, sdl.LASTEVENT
}
