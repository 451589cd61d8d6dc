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

// aliases maps the various names used by backend libraries to the names seen
// by experiment scripts. keys are lower case.
var aliases = map[string]string{
	" ":           "space",
	"enter":       "return",
	"esc":         "escape",
	"left shift":  "lshift",
	"right shift": "rshift",
	"left ctrl":   "lctrl",
	"right ctrl":  "rctrl",
	"left alt":    "lalt",
	"right alt":   "ralt",
	"left gui":    "lsuper",
	"right gui":   "rsuper",
	"shift_l":     "lshift",
	"shift_r":     "rshift",
	"control_l":   "lctrl",
	"control_r":   "rctrl",
	"alt_l":       "lalt",
	"alt_r":       "ralt",
	"super_l":     "lsuper",
	"super_r":     "rsuper",
	"pgup":        "pageup",
	"page up":     "pageup",
	"prior":       "pageup",
	"pgdn":        "pagedown",
	"page down":   "pagedown",
	"next":        "pagedown",
	"backspace2":  "backspace",
	"del":         "delete",
	"caps lock":   "capslock",
	"caps_lock":   "capslock",
	",":           "comma",
	".":           "period",
	"/":           "slash",
	"\\":          "backslash",
	"-":           "minus",
	"=":           "equal",
	";":           "semicolon",
	"'":           "apostrophe",
	"`":           "grave",
	"[":           "bracketleft",
	"]":           "bracketright",
}

// NormaliseKeyName converts a key name from a backend library into the
// canonical form.
func NormaliseKeyName(name string) string {
	if name == " " {
		return "space"
	}

	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return ""
	}

	if a, ok := aliases[n]; ok {
		return a
	}

	// keypad keys
	for _, pfx := range []string{"keypad ", "kp_", "num_", "num "} {
		if strings.HasPrefix(n, pfx) {
			k := strings.TrimPrefix(n, pfx)
			if k == "enter" {
				k = "return"
			}
			return "num_" + strings.ReplaceAll(k, " ", "_")
		}
	}

	// some libraries name digits with a leading underscore
	if len(n) > 1 {
		n = strings.TrimLeft(n, "_")
	}

	return strings.ReplaceAll(n, " ", "_")
}
