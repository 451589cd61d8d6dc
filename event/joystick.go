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
	"github.com/jetsetilly/rtinput/buffer"
	"github.com/jetsetilly/rtinput/userinput"
)

// NumJoysticks returns the number of joysticks available to the backend. It is
// zero if the backend does not support joysticks.
func (c *Context) NumJoysticks() int {
	if ji, ok := c.backend.(userinput.JoystickInfo); ok {
		return ji.NumJoysticks()
	}
	return 0
}

// Joystick queries the state of a single joystick.
type Joystick struct {
	ctx *Context
	id  int
}

// Joystick returns the Joystick with the specified id. Joysticks are numbered
// from zero.
func (c *Context) Joystick(id int) *Joystick {
	return &Joystick{ctx: c, id: id}
}

// ID returns the joystick's id.
func (j *Joystick) ID() int {
	return j.id
}

// Name returns the name of the joystick as reported by the backend.
func (j *Joystick) Name() string {
	if ji, ok := j.ctx.backend.(userinput.JoystickInfo); ok {
		return ji.JoystickName(j.id)
	}
	return ""
}

func (j *Joystick) caps() (int, int, int) {
	if ji, ok := j.ctx.backend.(userinput.JoystickInfo); ok {
		return ji.JoystickCaps(j.id)
	}
	return 0, 0, 0
}

// GetNumAxes returns the number of axes on the joystick.
func (j *Joystick) GetNumAxes() int {
	a, _, _ := j.caps()
	return max(a, len(j.ctx.store.Joystick(j.id).Axes))
}

// GetNumButtons returns the number of buttons on the joystick.
func (j *Joystick) GetNumButtons() int {
	_, b, _ := j.caps()
	return max(b, len(j.ctx.store.Joystick(j.id).Buttons))
}

// GetNumHats returns the number of hats on the joystick.
func (j *Joystick) GetNumHats() int {
	_, _, h := j.caps()
	return max(h, len(j.ctx.store.Joystick(j.id).Hats))
}

func (j *Joystick) state() (buffer.JoyState, error) {
	if err := j.ctx.backend.Pump(); err != nil {
		return buffer.JoyState{}, err
	}
	return j.ctx.store.Joystick(j.id), nil
}

// GetAxis returns the value of the axis in the range -1 to 1. Axes that have
// never moved are zero.
func (j *Joystick) GetAxis(axis int) (float64, error) {
	s, err := j.state()
	if err != nil || axis < 0 || axis >= len(s.Axes) {
		return 0, err
	}
	return s.Axes[axis], nil
}

// GetButton returns true if the button is pressed.
func (j *Joystick) GetButton(button int) (bool, error) {
	s, err := j.state()
	if err != nil || button < 0 || button >= len(s.Buttons) {
		return false, err
	}
	return s.Buttons[button], nil
}

// GetHat returns the direction of the hat.
func (j *Joystick) GetHat(hat int) (userinput.DPad, error) {
	s, err := j.state()
	if err != nil || hat < 0 || hat >= len(s.Hats) {
		return userinput.DPadCentre, err
	}
	return s.Hats[hat], nil
}

// GetAllAxes returns the value of every axis.
func (j *Joystick) GetAllAxes() ([]float64, error) {
	s, err := j.state()
	if err != nil {
		return nil, err
	}
	a := make([]float64, j.GetNumAxes())
	copy(a, s.Axes)
	return a, nil
}

// GetAllButtons returns the state of every button.
func (j *Joystick) GetAllButtons() ([]bool, error) {
	s, err := j.state()
	if err != nil {
		return nil, err
	}
	b := make([]bool, j.GetNumButtons())
	copy(b, s.Buttons)
	return b, nil
}

// GetAllHats returns the direction of every hat.
func (j *Joystick) GetAllHats() ([]userinput.DPad, error) {
	s, err := j.state()
	if err != nil {
		return nil, err
	}
	h := make([]userinput.DPad, j.GetNumHats())
	for i := range h {
		h[i] = userinput.DPadCentre
	}
	copy(h, s.Hats)
	return h, nil
}
