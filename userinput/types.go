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
)

// MouseButton identifies one of the three mouse buttons tracked by the input
// system. The values are suitable for use as array indices.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	NumMouseButtons
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonRight:
		return "right"
	}
	return "unknown"
}

// AllMouseButtons is a convenience list of every MouseButton.
var AllMouseButtons = []MouseButton{MouseButtonLeft, MouseButtonMiddle, MouseButtonRight}

// DPad is the direction of a joystick hat.
type DPad int

// List of valid DPad values.
const (
	DPadNone DPad = iota
	DPadCentre
	DPadUp
	DPadDown
	DPadLeft
	DPadRight
	DPadLeftUp
	DPadLeftDown
	DPadRightUp
	DPadRightDown
)

func (d DPad) String() string {
	switch d {
	case DPadNone:
		return "none"
	case DPadCentre:
		return "centre"
	case DPadUp:
		return "up"
	case DPadDown:
		return "down"
	case DPadLeft:
		return "left"
	case DPadRight:
		return "right"
	case DPadLeftUp:
		return "left up"
	case DPadLeftDown:
		return "left down"
	case DPadRightUp:
		return "right up"
	case DPadRightDown:
		return "right down"
	}
	return "unknown"
}

// XY returns the hat direction as a pair of values in the range -1 to 1. Up
// is positive y.
func (d DPad) XY() (int, int) {
	switch d {
	case DPadUp:
		return 0, 1
	case DPadDown:
		return 0, -1
	case DPadLeft:
		return -1, 0
	case DPadRight:
		return 1, 0
	case DPadLeftUp:
		return -1, 1
	case DPadLeftDown:
		return -1, -1
	case DPadRightUp:
		return 1, 1
	case DPadRightDown:
		return 1, -1
	}
	return 0, 0
}

// Scope selects a category of input events. Used when clearing events.
type Scope int

// List of valid Scope values.
const (
	ScopeAll Scope = iota
	ScopeKeyboard
	ScopeMouse
	ScopeJoystick
)

func (s Scope) String() string {
	switch s {
	case ScopeKeyboard:
		return "keyboard"
	case ScopeMouse:
		return "mouse"
	case ScopeJoystick:
		return "joystick"
	}
	return "all"
}

// ParseScope converts a string to a Scope. The empty string and any
// unrecognised string is ScopeAll.
func ParseScope(s string) Scope {
	switch strings.ToLower(s) {
	case "keyboard":
		return ScopeKeyboard
	case "mouse":
		return ScopeMouse
	case "joystick":
		return ScopeJoystick
	}
	return ScopeAll
}

// Includes returns true if the Scope s covers the Scope t.
func (s Scope) Includes(t Scope) bool {
	return s == ScopeAll || s == t
}
