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

package main

import (
	"github.com/jetsetilly/rtinput/clock"
	"github.com/jetsetilly/rtinput/event"
	"github.com/jetsetilly/rtinput/units"
	"github.com/jetsetilly/rtinput/userinput"
)

// the number of key presses shown.
const keyHistory = 8

type keyLine struct {
	name string

	// time since start of session
	time float64

	// reaction time since start of trial
	rt float64
}

type joyLine struct {
	name    string
	axes    []float64
	buttons []bool
	hats    []userinput.DPad
}

// snapshot is the state of input at one moment. snapshot is sent to the
// bubbletea program as a message.
type snapshot struct {
	backend string
	units   units.Units

	keys  []keyLine
	trial int

	pos      units.Vec
	buttons  [userinput.NumMouseButtons]bool
	times    [userinput.NumMouseButtons]float64
	wheel    units.Vec
	moved    bool
	moveTime float64
	visible  string

	joysticks []joyLine

	status string
	quit   bool
}

// probe samples input from an event context.
type probe struct {
	ctx     *event.Context
	mouse   *event.Mouse
	session *clock.Clock
	rt      *event.KeyResponse

	keys  []keyLine
	trial int
	wheel units.Vec
}

func newProbe(ctx *event.Context, win units.Window) *probe {
	p := &probe{
		ctx:     ctx,
		mouse:   ctx.NewMouse(win),
		session: clock.NewClockWithSource(ctx.Source()),
		rt:      event.NewKeyResponse(ctx.Source()),
	}
	p.rt.Start()
	return p
}

// sample pumps the backend and returns the current state.
func (p *probe) sample() (snapshot, error) {
	s := snapshot{
		backend: p.ctx.Backend().Name(),
		units:   p.mouse.Window().Units(),
	}

	keys, err := p.ctx.GetKeysStamped(nil, nil)
	if err != nil {
		return s, err
	}
	for _, k := range keys {
		switch k.Name {
		case "escape", "ctrl-c":
			s.quit = true
		case "space":
			// the trial starts at the time of the key press
			p.trial++
			p.rt.Clock.ResetTo(p.rt.Clock.Source().Now() - k.Time)
		}

		p.rt.Record(k, false)
		p.keys = append(p.keys, keyLine{
			name: k.Name,
			time: k.Time - p.session.TimeAtLastReset(),
			rt:   p.rt.RT,
		})
	}
	if len(p.keys) > keyHistory {
		p.keys = p.keys[len(p.keys)-keyHistory:]
	}
	s.keys = append(s.keys, p.keys...)
	s.trial = p.trial

	// compared with the position from the previous sample
	s.moved, err = p.mouse.MouseMoved(event.AnyMovement, event.NoReset)
	if err != nil {
		return s, err
	}
	s.moveTime = p.mouse.MouseMoveTime()

	s.pos, err = p.mouse.GetPos()
	if err != nil {
		return s, err
	}

	s.buttons, s.times, err = p.mouse.GetPressedTimes()
	if err != nil {
		return s, err
	}

	dx, dy := p.mouse.GetWheelRel()
	p.wheel = p.wheel.Add(units.Vec{X: dx, Y: dy})
	s.wheel = p.wheel


	if v, err := p.mouse.GetVisible(); err != nil {
		s.visible = "unknown"
	} else if v {
		s.visible = "visible"
	} else {
		s.visible = "hidden"
	}

	for id := range p.ctx.NumJoysticks() {
		j := p.ctx.Joystick(id)
		l := joyLine{name: j.Name()}
		if l.axes, err = j.GetAllAxes(); err != nil {
			return s, err
		}
		if l.buttons, err = j.GetAllButtons(); err != nil {
			return s, err
		}
		if l.hats, err = j.GetAllHats(); err != nil {
			return s, err
		}
		s.joysticks = append(s.joysticks, l)
	}

	return s, nil
}
