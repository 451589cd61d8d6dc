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

// Package buffer holds the state that sits between a userinput.Backend and
// the query functions used by experiment scripts. The Store records key
// presses, mouse button state, press latencies, the wheel accumulator, the
// move clock and joystick state.
//
// The Store implements userinput.Handler and so is updated by the backend
// during a call to Pump(). It is read and drained by the event package.
//
// There is no locking. All calls must be made from the goroutine that created
// the Store. Building with the "assertions" tag causes any call from another
// goroutine to panic.
package buffer
