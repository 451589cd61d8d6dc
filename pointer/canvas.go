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

package pointer

import (
	"github.com/jetsetilly/rtinput/units"
)

// Drawable is anything that can be drawn on a Canvas.
type Drawable interface {
	Draw() error
}

// Positioner is anything that can be positioned on a Canvas. The position is
// in the window's units.
type Positioner interface {
	SetPos(pos units.Vec) error
}

// Pointer is the graphic drawn at the position of the Overlay.
type Pointer interface {
	Drawable
	Positioner
}

// Canvas is the rendering surface for the Overlay.
type Canvas interface {
	units.Window

	// NewOutline creates a drawable polyline through the vertices
	NewOutline(vertices []units.Vec) (Drawable, error)

	// NewCrosshair creates the default pointer
	NewCrosshair() (Pointer, error)
}
