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

// Package sdlinput is the SDL implementation of the userinput.Backend
// interface. It attaches to an existing SDL window, the window with keyboard
// focus, or a new window if the configuration asks for one.
//
// SDL queues events between calls to Pump(). The timestamps of queued events
// are corrected for the time spent in the queue.
//
// The package also provides a Canvas for the pointer package, drawing with the
// window's sdl.Renderer.
package sdlinput
