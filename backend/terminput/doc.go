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

// Package terminput is the terminal implementation of the userinput.Backend
// interface. Character cells are treated as pixels.
//
// Terminals report mouse buttons as a mask of the buttons currently held.
// Presses and releases are found by comparing each mask with the previous
// mask. Terminals cannot move the mouse cursor or change its visibility and
// those operations return UnsupportedOperation errors.
//
// Terminal events are read by a goroutine and appended to an unbounded list.
// No event is dropped however long it is between pumps. The list is emptied by
// Pump() and all handler calls are made from Pump().
package terminput
