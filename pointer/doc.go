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

// Package pointer implements a software pointer for use when the system cursor
// is hidden. The Overlay type wraps an event.Mouse and keeps its own position,
// which is moved by the relative motion of the mouse and clamped to a virtual
// box.
//
// The position of the Overlay is not re-synchronised with the position of the
// system cursor except by SetLimit(). If the backend reports no relative
// motion then the Overlay does not move.
package pointer
