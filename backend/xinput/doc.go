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

// Package xinput is the X11 implementation of the userinput.Backend interface.
// It uses an existing window, identified by its X11 window ID, or creates a
// new one.
//
// Key names are found by looking up the unshifted keysym of the key code in
// the server's keyboard mapping. Cursor visibility is changed with the XFIXES
// extension. The X11 protocol has no way of querying cursor visibility so
// MouseVisible() always returns an UnsupportedOperation error.
//
// Event timestamps are in server milliseconds. When the handler is set, an
// empty property is changed on the window and the timestamp of the resulting
// PropertyNotify event anchors the server clock to the handler's clock. Event
// times are mapped through that anchor so an event keeps its time however late
// it is pumped. The anchor is moved back if an event maps to a time after the
// pump.
package xinput
