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

package xinput

import (
	"fmt"

	"github.com/jezek/xgb/xproto"
)

// names of keysyms outside of the printable latin-1 range.
var keysymNames = map[xproto.Keysym]string{
	0xff08: "backspace",
	0xff09: "tab",
	0xff0d: "return",
	0xff13: "pause",
	0xff14: "scrolllock",
	0xff1b: "escape",
	0xff50: "home",
	0xff51: "left",
	0xff52: "up",
	0xff53: "right",
	0xff54: "down",
	0xff55: "pageup",
	0xff56: "pagedown",
	0xff57: "end",
	0xff61: "print",
	0xff63: "insert",
	0xff67: "menu",
	0xff7f: "numlock",
	0xff8d: "num_return",
	0xffaa: "num_multiply",
	0xffab: "num_add",
	0xffad: "num_subtract",
	0xffae: "num_decimal",
	0xffaf: "num_divide",
	0xffbd: "num_equal",
	0xffe1: "lshift",
	0xffe2: "rshift",
	0xffe3: "lctrl",
	0xffe4: "rctrl",
	0xffe5: "capslock",
	0xffe9: "lalt",
	0xffea: "ralt",
	0xffeb: "lsuper",
	0xffec: "rsuper",
	0xffff: "delete",
}

// keysymName returns the name of the keysym before normalisation. Returns the
// empty string for unknown keysyms.
func keysymName(sym xproto.Keysym) string {
	switch {
	case sym >= 0x20 && sym <= 0x7e:
		return string(rune(sym))
	case sym >= 0xffb0 && sym <= 0xffb9:
		return fmt.Sprintf("num_%d", sym-0xffb0)
	case sym >= 0xffbe && sym <= 0xffd5:
		return fmt.Sprintf("f%d", sym-0xffbe+1)
	}
	return keysymNames[sym]
}

// keymap is the keyboard mapping of the X server.
type keymap struct {
	min     xproto.Keycode
	perCode int
	syms    []xproto.Keysym
}

// keysym returns the unshifted keysym for the key code.
func (k keymap) keysym(code xproto.Keycode) xproto.Keysym {
	if code < k.min || k.perCode == 0 {
		return 0
	}
	i := int(code-k.min) * k.perCode
	if i >= len(k.syms) {
		return 0
	}
	return k.syms[i]
}
