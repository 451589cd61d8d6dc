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

// Package userinput is the contract between the input system and whichever
// windowing/input library is providing raw device events. It can be thought
// of as a translation layer: backend packages translate their library's
// events into calls on a Handler, and the rest of the input system only ever
// sees the Backend interface.
//
// Backend callbacks are only ever made from inside Backend.Pump(). Between
// pumps, input is queued by the backend itself. This is the entire
// synchronisation discipline of the input system and it means that a Backend
// and its Handler must be used from a single goroutine.
//
// Exactly one backend is active at a time. The Select() function tries a list
// of Probes in order and returns the first backend that opens successfully.
//
// Key names are normalised with NormaliseKeyName() so that scripts see the
// same names whichever backend is in use: lower case, "space", "return",
// "escape", "left", "lshift", "num_1", "f1", etc.
package userinput
