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
	"github.com/jetsetilly/rtinput/clock"
	"github.com/jetsetilly/rtinput/userinput"
)

// input is a single event delivered by the fake backend.
type input struct {
	scope    userinput.Scope
	dispatch func(h userinput.Handler)
}

func key(name string, t float64) input {
	return input{
		scope:    userinput.ScopeKeyboard,
		dispatch: func(h userinput.Handler) { h.RecordKeyDown(name, t) },
	}
}

func press(b userinput.MouseButton, t float64) input {
	return input{
		scope:    userinput.ScopeMouse,
		dispatch: func(h userinput.Handler) { h.RecordButtonDown(b, t) },
	}
}

func wheel(dx, dy float64) input {
	return input{
		scope:    userinput.ScopeMouse,
		dispatch: func(h userinput.Handler) { h.RecordWheel(dx, dy) },
	}
}

func axis(id, a int, v float64) input {
	return input{
		scope:    userinput.ScopeJoystick,
		dispatch: func(h userinput.Handler) { h.RecordJoyAxis(id, a, v) },
	}
}

// fake is a userinput.Backend that delivers scripted events.
type fake struct {
	handler userinput.Handler

	// manual clock is advanced by step on every pump
	src  *clock.Manual
	step float64

	// events that have arrived but not yet been dispatched
	pending []input

	// each pump moves the first entry of the script to pending
	script [][]input

	pumps     int
	discarded []userinput.Scope

	x, y        float64
	visible     bool
	noSetPos    bool
	noVisQuery  bool
	width       int
	height      int
	joystickIDs int
}

func newFake(src *clock.Manual) *fake {
	return &fake{
		src:     src,
		visible: true,
		width:   800,
		height:  600,
		x:       400,
		y:       300,
	}
}

func (f *fake) Name() string {
	return "fake"
}

func (f *fake) SetHandler(h userinput.Handler) {
	f.handler = h
}

func (f *fake) Pump() error {
	f.pumps++
	if f.src != nil {
		f.src.Advance(f.step)
	}
	if len(f.script) > 0 {
		f.pending = append(f.pending, f.script[0]...)
		f.script = f.script[1:]
	}
	p := f.pending
	f.pending = nil
	for _, e := range p {
		e.dispatch(f.handler)
	}
	return nil
}

func (f *fake) Discard(scope userinput.Scope) error {
	f.discarded = append(f.discarded, scope)
	kept := f.pending[:0]
	for _, e := range f.pending {
		if !scope.Includes(e.scope) {
			kept = append(kept, e)
		}
	}
	f.pending = kept
	return nil
}

func (f *fake) MousePos() (float64, float64, error) {
	return f.x, f.y, nil
}

func (f *fake) SetMousePos(x, y float64) error {
	if f.noSetPos {
		return userinput.Unsupported(f.Name(), "SetMousePos")
	}
	f.x, f.y = x, y
	return nil
}

func (f *fake) MouseVisible() (bool, error) {
	if f.noVisQuery {
		return false, userinput.Unsupported(f.Name(), "MouseVisible")
	}
	return f.visible, nil
}

func (f *fake) SetMouseVisible(visible bool) error {
	f.visible = visible
	return nil
}

func (f *fake) WindowSize() (int, int) {
	return f.width, f.height
}

func (f *fake) Close() error {
	return nil
}

// joystickFake adds the userinput.JoystickInfo capability.
type joystickFake struct {
	*fake
}

func (f joystickFake) NumJoysticks() int {
	return 1
}

func (f joystickFake) JoystickName(id int) string {
	return "test pad"
}

func (f joystickFake) JoystickCaps(id int) (int, int, int) {
	return 4, 8, 1
}
