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

package event_test

import (
	"testing"

	"github.com/jetsetilly/rtinput/event"
	"github.com/jetsetilly/rtinput/test"
	"github.com/jetsetilly/rtinput/userinput"
)

func TestNoJoysticks(t *testing.T) {
	ctx := event.NewContext(newFake(nil), nil, quiet)
	test.ExpectEquality(t, ctx.NumJoysticks(), 0)

	j := ctx.Joystick(0)
	test.ExpectEquality(t, j.Name(), "")
	test.ExpectEquality(t, j.GetNumAxes(), 0)

	v, err := j.GetAxis(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0.0)

	h, err := j.GetHat(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h, userinput.DPadCentre)
}

func TestJoystick(t *testing.T) {
	f := joystickFake{fake: newFake(nil)}
	ctx := event.NewContext(f, nil, quiet)
	test.ExpectEquality(t, ctx.NumJoysticks(), 1)

	j := ctx.Joystick(0)
	test.ExpectEquality(t, j.Name(), "test pad")
	test.ExpectEquality(t, j.GetNumAxes(), 4)
	test.ExpectEquality(t, j.GetNumButtons(), 8)
	test.ExpectEquality(t, j.GetNumHats(), 1)

	f.pending = []input{axis(0, 1, -0.5), axis(1, 0, 1.0)}

	v, err := j.GetAxis(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, -0.5)

	all, err := j.GetAllAxes()
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(all), 4)
	test.ExpectEquality(t, all[0], 0.0)
	test.ExpectEquality(t, all[1], -0.5)

	buttons, err := j.GetAllButtons()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(buttons), 8)

	hats, err := j.GetAllHats()
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(hats), 1)
	test.ExpectEquality(t, hats[0], userinput.DPadCentre)

	// the second joystick is unaffected by the first
	v, err = ctx.Joystick(1).GetAxis(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 1.0)
}
