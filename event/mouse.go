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
	"github.com/jetsetilly/rtinput/logger"
	"github.com/jetsetilly/rtinput/units"
	"github.com/jetsetilly/rtinput/userinput"
)

// Mouse queries the position and buttons of the mouse.
type Mouse struct {
	ctx *Context
	win units.Window

	lastPos units.Vec
	hasLast bool

	prevPos units.Vec
	hasPrev bool

	// the most recent distance measured by MouseMoved()
	moveDistance float64
}

// MouseOption is used to configure a new Mouse.
type MouseOption func(*Mouse)

// WithVisible sets the visibility of the system cursor.
func WithVisible(visible bool) MouseOption {
	return func(m *Mouse) {
		_ = m.SetVisible(visible)
	}
}

// WithPos moves the system cursor to the specified position.
func WithPos(pos units.Vec) MouseOption {
	return func(m *Mouse) {
		_ = m.SetPos(pos)
	}
}

// backendWindow is used when no window is given to NewMouse().
type backendWindow struct {
	b userinput.Backend
}

func (w backendWindow) Size() (int, int) {
	return w.b.WindowSize()
}

func (w backendWindow) Units() units.Units {
	return units.Pix
}

func (w backendWindow) Monitor() units.Monitor {
	return units.Monitor{}
}

// NewMouse creates a Mouse for the window. If win is nil then the backend's
// window is used, with pixel units. Errors from the options are logged but are
// not fatal.
func (c *Context) NewMouse(win units.Window, opts ...MouseOption) *Mouse {
	if win == nil {
		win = backendWindow{b: c.backend}
	}

	m := &Mouse{
		ctx: c,
		win: win,
	}

	for _, o := range opts {
		o(m)
	}

	return m
}

// Window returns the window used by the mouse.
func (m *Mouse) Window() units.Window {
	return m.win
}

// GetPos returns the position of the mouse in the window's units, with the
// origin at the centre of the window and y increasing upwards.
func (m *Mouse) GetPos() (units.Vec, error) {
	x, y, err := m.ctx.backend.MousePos()
	if err != nil {
		return m.lastPos, m.ctx.report(err, "mouse")
	}

	pos, err := units.ToWindowUnits(m.win, units.FromDevice(m.win, x, y))
	if err != nil {
		return m.lastPos, err
	}

	m.lastPos = pos
	m.hasLast = true

	return pos, nil
}

// GetRel returns the movement of the mouse since the previous call to GetRel()
// or GetPos(). If the position has never been sampled then the absolute
// position is returned.
func (m *Mouse) GetRel() (units.Vec, error) {
	if !m.hasLast {
		return m.GetPos()
	}

	last := m.lastPos

	pos, err := m.GetPos()
	if err != nil {
		return units.Vec{}, err
	}

	return pos.Sub(last), nil
}

// MouseMoved samples the mouse position and reports whether it has moved.
//
// With NoReset the new position is compared with the position sampled by the
// previous call to GetPos(). A nil Distance is the same as AnyMovement.
//
// With ResetClock the move clock is reset and the result is always false.
//
// With ResetHere or ResetTo() the reference position is set to the current
// position or the given position. If distance is not nil then the current
// position is immediately compared with the new reference position. Otherwise
// the result is false.
//
// The first call on a Mouse that has never sampled a position compares the
// position with itself.
func (m *Mouse) MouseMoved(distance Distance, reset Reset) (bool, error) {
	m.prevPos = m.lastPos
	m.hasPrev = m.hasLast

	cur, err := m.GetPos()
	if err != nil {
		return false, err
	}

	if !m.hasPrev {
		m.prevPos = cur
		m.hasPrev = true
	}

	if reset == nil {
		reset = NoReset
	}

	switch r := reset.(type) {
	case noReset:
		if distance == nil {
			distance = AnyMovement
		}
	case resetClock:
		m.ctx.store.ResetMoveClock()
		return false, nil
	case resetHere:
		m.prevPos = cur
		if distance == nil {
			return false, nil
		}
	case resetTo:
		m.prevPos = units.Vec(r)
		if distance == nil {
			return false, nil
		}
	default:
		return false, nil
	}

	m.moveDistance = units.Distance(m.prevPos, cur)

	return distance.exceeded(m.prevPos, cur), nil
}

// MoveDistance returns the straight line distance measured by the most recent
// call to MouseMoved().
func (m *Mouse) MoveDistance() float64 {
	return m.moveDistance
}

// MouseMoveTime returns the number of seconds since the mouse last moved. It
// is zero if move tracking is disabled.
func (m *Mouse) MouseMoveTime() float64 {
	return m.ctx.store.MoveTime()
}

// GetWheelRel returns the movement of the wheel since the previous call.
func (m *Mouse) GetWheelRel() (float64, float64) {
	return m.ctx.store.TakeWheelDelta()
}

// GetPressed returns the state of the left, middle and right buttons.
func (m *Mouse) GetPressed() ([userinput.NumMouseButtons]bool, error) {
	b, _, err := m.GetPressedTimes()
	return b, err
}

// GetPressedTimes returns the state of the buttons and, for each button, the
// time between the most recent call to ClickReset() and the most recent press.
func (m *Mouse) GetPressedTimes() ([userinput.NumMouseButtons]bool, [userinput.NumMouseButtons]float64, error) {
	if err := m.ctx.backend.Pump(); err != nil {
		return [userinput.NumMouseButtons]bool{}, [userinput.NumMouseButtons]float64{}, err
	}
	b, t := m.ctx.store.Buttons()
	return b, t, nil
}

// ClickReset resets the press clocks of the buttons. All buttons are reset if
// none are specified.
func (m *Mouse) ClickReset(buttons ...userinput.MouseButton) {
	m.ctx.store.ResetButtonClocks(buttons...)
}

// GetVisible returns the visibility of the system cursor.
func (m *Mouse) GetVisible() (bool, error) {
	v, err := m.ctx.backend.MouseVisible()
	return v, m.ctx.report(err, "mouse")
}

// SetVisible sets the visibility of the system cursor.
func (m *Mouse) SetVisible(visible bool) error {
	return m.ctx.report(m.ctx.backend.SetMouseVisible(visible), "mouse")
}

// SetPos moves the system cursor to the position, specified in the window's
// units.
func (m *Mouse) SetPos(pos units.Vec) error {
	pix, err := units.ToPixels(m.win, pos)
	if err != nil {
		return err
	}

	x, y := units.ToDevice(m.win, pix)
	if err := m.ctx.backend.SetMousePos(x, y); err != nil {
		return m.ctx.report(err, "mouse")
	}

	logger.Logf(logger.Allow, "mouse", "position set to %.2f, %.2f", pos.X, pos.Y)

	return nil
}
