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

// Package logger is the central log for the input system. Backends log the
// devices they find and the events they drop, the event buffer logs key presses
// and mouse clicks as data, and the mouse logs operations that the active
// backend does not support.
//
// Every logging call takes a Permission. Use logger.Allow when the entry should
// always be made. The event buffer uses a Permission tied to the "log.input"
// preference so that input logging can be switched off during timing critical
// sections.
package logger
