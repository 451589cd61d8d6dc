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

package event

import (
	"math"

	"github.com/jetsetilly/rtinput/units"
)

// Distance is the movement threshold used by Mouse.MouseMoved(). Valid
// Distance values are AnyMovement, Radius and the result of Axes().
type Distance interface {
	exceeded(prev, cur units.Vec) bool
}

type anyMovement struct{}

func (anyMovement) exceeded(prev, cur units.Vec) bool {
	return prev.X != cur.X || prev.Y != cur.Y
}

// AnyMovement is exceeded by any change of position.
var AnyMovement Distance = anyMovement{}

// Radius is exceeded when the straight line distance between positions is
// greater than the radius.
type Radius float64

func (r Radius) exceeded(prev, cur units.Vec) bool {
	return units.Distance(prev, cur) > float64(r)
}

type axes struct {
	dx, dy float64
}

func (a axes) exceeded(prev, cur units.Vec) bool {
	return math.Abs(cur.X-prev.X) > a.dx || math.Abs(cur.Y-prev.Y) > a.dy
}

// Axes returns a Distance that is exceeded when the movement on either axis is
// greater than the corresponding value.
func Axes(dx, dy float64) Distance {
	return axes{dx: dx, dy: dy}
}

// Reset is the reset behaviour of Mouse.MouseMoved(). Valid Reset values are
// NoReset, ResetClock, ResetHere and the result of ResetTo().
type Reset interface {
	reset()
}

type noReset struct{}
type resetClock struct{}
type resetHere struct{}
type resetTo units.Vec

func (noReset) reset()    {}
func (resetClock) reset() {}
func (resetHere) reset()  {}
func (resetTo) reset()    {}

// List of Reset values.
var (
	// NoReset compares the current position with the previous position
	NoReset Reset = noReset{}

	// ResetClock resets the move clock
	ResetClock Reset = resetClock{}

	// ResetHere makes the current position the reference position
	ResetHere Reset = resetHere{}
)

// ResetTo makes the specified position the reference position.
func ResetTo(v units.Vec) Reset {
	return resetTo(v)
}
