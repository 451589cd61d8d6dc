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

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/rtinput/config"
	"github.com/jetsetilly/rtinput/curated"
	"github.com/jetsetilly/rtinput/prefs"
	"github.com/jetsetilly/rtinput/test"
	"github.com/jetsetilly/rtinput/units"
)

const example = `
backends: [x11, terminal]
wait_poll: 0.005
log:
  input: false
window:
  width: 1024
  units: cm
  monitor:
    width_cm: 40
    distance_cm: 57
`

func writeFile(t *testing.T, dir string, data string) string {
	t.Helper()
	fn := filepath.Join(dir, "rtinput.yml")
	err := os.WriteFile(fn, []byte(data), 0o600)
	test.DemandSuccess(t, err)
	return fn
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	test.ExpectEquality(t, cfg.Backends.String(), "sdl,x11,terminal")
	test.ExpectEquality(t, cfg.MoveClock.Get().(bool), true)
	test.ExpectEquality(t, cfg.WaitPoll.Get().(float64), 0.0)
	test.ExpectEquality(t, cfg.Log.Echo.Get().(bool), false)
	test.ExpectEquality(t, cfg.Log.Input.Get().(bool), true)
	test.ExpectEquality(t, cfg.Window.Title.String(), "rtinput")

	g := cfg.Geometry()
	w, h := g.Size()
	test.ExpectEquality(t, w, 800)
	test.ExpectEquality(t, h, 600)
	test.ExpectEquality(t, g.Units(), units.Pix)
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(example))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, cfg.Backends.String(), "x11,terminal")
	test.ExpectEquality(t, cfg.WaitPoll.Get().(float64), 0.005)

	// keys not in the document keep their default value
	test.ExpectEquality(t, cfg.Log.Echo.Get().(bool), false)
	test.ExpectEquality(t, cfg.Log.Input.Get().(bool), false)
	test.ExpectEquality(t, cfg.Window.Height.Get().(int), 600)

	g := cfg.Geometry()
	test.ExpectEquality(t, g.Units(), units.Cm)
	test.ExpectEquality(t, g.Monitor().WidthCm, 40.0)
	test.ExpectEquality(t, g.Monitor().DistanceCm, 57.0)
	test.ExpectEquality(t, g.Monitor().WidthPix, 1024)

	test.ExpectEquality(t, len(cfg.ContextOptions()), 3)
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"backends: [sdl, wayland]",
		"wait_poll: -1",
		"window: {units: furlongs}",
		"window: {width: 0}",
		"unknown_key: true",
		"move_clock: [1, 2]",
	}
	for _, c := range cases {
		_, err := config.Parse([]byte(c))
		test.ExpectFailure(t, err, c)
		test.ExpectSuccess(t, curated.Is(err, config.ConfigError), c)
	}
}

func TestLoadMissing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.String(), config.Default().String())
}

func TestCommandLinePrecedence(t *testing.T) {
	fn := writeFile(t, t.TempDir(), example)

	prefs.PushCommandLineStack("wait_poll::0.25; window.units::norm; log.echo::true")

	cfg, err := config.Load(fn)
	test.DemandSuccess(t, err)

	// command line beats the file
	test.ExpectEquality(t, cfg.WaitPoll.Get().(float64), 0.25)
	test.ExpectEquality(t, cfg.Window.Units.String(), "norm")

	// command line beats the default
	test.ExpectEquality(t, cfg.Log.Echo.Get().(bool), true)

	// file beats the default
	test.ExpectEquality(t, cfg.Window.Width.Get().(int), 1024)

	// values have been used
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineError(t *testing.T) {
	prefs.PushCommandLineStack("backends::amiga")
	defer prefs.PopCommandLineStack()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, config.ConfigError))
}

func TestMarshal(t *testing.T) {
	cfg, err := config.Parse([]byte(example))
	test.DemandSuccess(t, err)

	data, err := cfg.Marshal()
	test.DemandSuccess(t, err)

	again, err := config.Parse(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, again.String(), cfg.String())
}

func TestLookup(t *testing.T) {
	cfg := config.Default()
	p, ok := cfg.Lookup("window.monitor.distance_cm")
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, p.Set("57"))
	test.ExpectEquality(t, cfg.Geometry().Monitor().DistanceCm, 57.0)

	_, ok = cfg.Lookup("window.depth")
	test.ExpectFailure(t, ok)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := writeFile(t, dir, "wait_poll: 0.1")

	w, err := config.Watch(fn)
	test.DemandSuccess(t, err)
	defer w.Close()

	// nothing has changed
	cfg, err := w.Poll()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, cfg == nil)

	writeFile(t, dir, "wait_poll: 0.2")

	deadline := time.Now().Add(2 * time.Second)
	for cfg == nil && err == nil && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
		cfg, err = w.Poll()
	}
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cfg != nil)
	test.ExpectEquality(t, cfg.WaitPoll.Get().(float64), 0.2)
}
