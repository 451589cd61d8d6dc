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
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/rtinput/clock"
	"github.com/jetsetilly/rtinput/config"
	"github.com/jetsetilly/rtinput/event"
	"github.com/jetsetilly/rtinput/logger"
	"github.com/jetsetilly/rtinput/test"
	"github.com/jetsetilly/rtinput/units"
	"github.com/jetsetilly/rtinput/userinput"
)

// device is a backend with a list of pending key presses. each call to Pump()
// adds the next entry of the script to the pending list.
type device struct {
	handler userinput.Handler
	keys    []string
	script  [][]string
	x, y    float64
}

func (d *device) Name() string {
	return "device"
}

func (d *device) SetHandler(h userinput.Handler) {
	d.handler = h
}

func (d *device) Pump() error {
	if len(d.script) > 0 {
		d.keys = append(d.keys, d.script[0]...)
		d.script = d.script[1:]
	}
	for _, k := range d.keys {
		d.handler.RecordKeyDown(k, d.handler.Now())
	}
	d.keys = d.keys[:0]
	return nil
}

func (d *device) Discard(scope userinput.Scope) error {
	if scope.Includes(userinput.ScopeKeyboard) {
		d.keys = d.keys[:0]
	}
	return nil
}

func (d *device) MousePos() (float64, float64, error) {
	return d.x, d.y, nil
}

func (d *device) SetMousePos(x, y float64) error {
	d.x, d.y = x, y
	return nil
}

func (d *device) MouseVisible() (bool, error) {
	return true, nil
}

func (d *device) SetMouseVisible(visible bool) error {
	return nil
}

func (d *device) WindowSize() (int, int) {
	return 200, 100
}

func (d *device) Close() error {
	return nil
}

func TestSample(t *testing.T) {
	src := &clock.Manual{}
	d := &device{x: 150, y: 50}
	cfg := config.Default()
	test.DemandSuccess(t, cfg.Window.Units.Set("norm"))

	win := &window{backend: d, cfg: cfg}
	ctx := event.NewContext(d, src, event.WithInputLogging(logger.PermissionFunc(func() bool {
		return false
	})))
	p := newProbe(ctx, win)

	src.Set(1.0)
	d.keys = append(d.keys, "a")
	s, err := p.sample()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.backend, "device")
	test.ExpectEquality(t, s.units, units.Norm)
	test.DemandEquality(t, len(s.keys), 1)
	test.ExpectEquality(t, s.keys[0].name, "a")
	test.ExpectApproximate(t, s.keys[0].time, 1.0, 0.0001)
	test.ExpectApproximate(t, s.keys[0].rt, 1.0, 0.0001)
	test.ExpectApproximate(t, s.pos.X, 0.5, 0.0001)
	test.ExpectApproximate(t, s.pos.Y, 0.0, 0.0001)
	test.ExpectEquality(t, s.visible, "visible")
	test.ExpectFailure(t, s.quit)

	// space starts a new trial
	src.Set(2.0)
	d.keys = append(d.keys, "space")
	s, err = p.sample()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.trial, 1)

	src.Set(2.5)
	d.keys = append(d.keys, "b")
	s, err = p.sample()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(s.keys), 3)
	test.ExpectApproximate(t, s.keys[2].rt, 0.5, 0.0001)

	// history is limited
	for range keyHistory {
		d.keys = append(d.keys, "c")
	}
	s, err = p.sample()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(s.keys), keyHistory)

	d.keys = append(d.keys, "escape")
	s, err = p.sample()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, s.quit)
}

func TestRender(t *testing.T) {
	s := snapshot{
		backend: "device",
		keys:    []keyLine{{name: "return", time: 1.5, rt: 0.25}},
		joysticks: []joyLine{{
			name:    "pad",
			axes:    []float64{0.5},
			buttons: []bool{true, false},
			hats:    []userinput.DPad{userinput.DPadUp},
		}},
	}
	s.buttons[userinput.MouseButtonLeft] = true

	out := render(s, plain)
	test.ExpectSuccess(t, strings.Contains(out, "BACKEND: device"))
	test.ExpectSuccess(t, strings.Contains(out, "return"))
	test.ExpectSuccess(t, strings.Contains(out, "left   down"))
	test.ExpectSuccess(t, strings.Contains(out, "right  up"))
	test.ExpectSuccess(t, strings.Contains(out, "buttons *."))
	test.ExpectSuccess(t, strings.Contains(out, "hat 0 up"))
	test.ExpectSuccess(t, strings.Contains(out, "JOYSTICKS (1)"))
}

func TestModel(t *testing.T) {
	var m model
	next, cmd := m.Update(snapshot{backend: "device"})
	test.ExpectEquality(t, next.(model).snap.backend, "device")
	test.ExpectSuccess(t, cmd != nil)
	test.ExpectSuccess(t, strings.Contains(next.View(), "device"))
}

func TestKeys(t *testing.T) {
	d := &device{
		script: [][]string{{"a"}, {"b"}, {"escape"}, {"c"}},
	}
	ctx := event.NewContext(d, nil, event.WithInputLogging(logger.PermissionFunc(func() bool {
		return false
	})))

	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, keys(ctx, event.NoTimeout, "", tw))
	test.ExpectSuccess(t, tw.Contains(" a\n"), tw.String())
	test.ExpectSuccess(t, tw.Contains(" b\n"), tw.String())
	test.ExpectSuccess(t, tw.Contains(" escape\n"), tw.String())
	test.ExpectFailure(t, tw.Contains(" c\n"), tw.String())

	// key list
	d.script = [][]string{{"a"}, {"b"}, {"escape"}}
	tw.Clear()
	test.ExpectSuccess(t, keys(ctx, event.NoTimeout, "B", tw))
	test.ExpectFailure(t, tw.Contains(" a\n"), tw.String())
	test.ExpectSuccess(t, tw.Contains(" b\n"), tw.String())

	// timeout
	tw.Clear()
	test.ExpectSuccess(t, keys(ctx, 0.01, "", tw))
	test.ExpectSuccess(t, tw.Compare("timeout\n"), tw.String())
}

func TestRunConfig(t *testing.T) {
	stdout := &test.CompareWriter{}
	stderr := &test.CompareWriter{}

	fn := filepath.Join(t.TempDir(), "missing.yml")
	ret := run([]string{"-config", fn, "-prefs", "wait_poll::0.5", "config"}, stdout, stderr)
	test.ExpectEquality(t, ret, exitOK, stderr.String())
	test.ExpectSuccess(t, stdout.Contains("wait_poll: 0.5"), stdout.String())
	test.ExpectSuccess(t, stdout.Contains("backends:"), stdout.String())
}

func TestRunArgs(t *testing.T) {
	stdout := &test.CompareWriter{}
	stderr := &test.CompareWriter{}

	test.ExpectEquality(t, run([]string{"-help"}, stdout, stderr), exitOK)
	test.ExpectSuccess(t, stdout.Contains("available sub-modes: PROBE, KEYS, CONFIG"), stdout.String())

	test.ExpectEquality(t, run([]string{"-nosuchflag"}, stdout, stderr), exitArgs)

	fn := filepath.Join(t.TempDir(), "missing.yml")
	test.ExpectEquality(t, run([]string{"-config", fn, "-prefs", "backends::amiga"}, stdout, stderr), exitConfig)
}

func TestTeaDisplay(t *testing.T) {
	d := &teaDisplay{snaps: make(chan snapshot, 1)}

	var shown int
	d.start(func() error {
		for range d.snaps {
			shown++
		}
		return nil
	})
	test.ExpectFailure(t, d.exited())

	// show never blocks
	d.show(snapshot{})
	d.show(snapshot{})
	d.show(snapshot{})

	d.close()
	test.ExpectSuccess(t, d.exited())
	test.ExpectSuccess(t, d.exited())
	test.ExpectSuccess(t, d.err)
	test.ExpectSuccess(t, shown > 0)

	// program that ends before the display is closed
	d = &teaDisplay{snaps: make(chan snapshot, 1)}
	d.start(func() error {
		return errors.New("no terminal")
	})
	<-d.done
	test.ExpectSuccess(t, d.exited())
	d.show(snapshot{})
	d.close()
	test.ExpectFailure(t, d.err)
}
