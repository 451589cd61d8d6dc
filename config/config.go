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

package config

import (
	"errors"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/jetsetilly/rtinput/curated"
	"github.com/jetsetilly/rtinput/event"
	"github.com/jetsetilly/rtinput/logger"
	"github.com/jetsetilly/rtinput/paths"
	"github.com/jetsetilly/rtinput/prefs"
	"github.com/jetsetilly/rtinput/units"
	"gopkg.in/yaml.v2"
)

// Sentinal error patterns.
const (
	ConfigError = "config: %s: %v"
)

// the name of the configuration file in the resource path.
const filename = "rtinput.yml"

// names of the input backends that can appear in the backends list.
var BackendNames = []string{"sdl", "x11", "terminal"}

// Monitor calibration.
type Monitor struct {
	WidthCm    prefs.Float `yaml:"width_cm"`
	DistanceCm prefs.Float `yaml:"distance_cm"`
}

// Window geometry used when a backend creates its own window.
type Window struct {
	Width   prefs.Int    `yaml:"width"`
	Height  prefs.Int    `yaml:"height"`
	Title   prefs.String `yaml:"title"`
	Units   prefs.String `yaml:"units"`
	Monitor Monitor      `yaml:"monitor"`
}

// Log settings.
type Log struct {
	// echo log entries to stderr as they are created
	Echo prefs.Bool `yaml:"echo"`

	// log every key press and mouse button press
	Input prefs.Bool `yaml:"input"`
}

// X11 specific settings.
type X11 struct {
	// ID of an existing window to attach to. zero means create a window
	Window prefs.Int `yaml:"window"`
}

// Config is the complete rtinput configuration.
type Config struct {
	// order in which backends are tried
	Backends prefs.List `yaml:"backends"`

	MoveClock prefs.Bool  `yaml:"move_clock"`
	WaitPoll  prefs.Float `yaml:"wait_poll"`

	Log    Log    `yaml:"log"`
	Window Window `yaml:"window"`
	X11    X11    `yaml:"x11"`

	group *prefs.Group
}

// Default returns a configuration with default values.
func Default() *Config {
	cfg := &Config{}
	cfg.group = prefs.NewGroup()

	cfg.group.Add("backends", &cfg.Backends)
	cfg.group.Add("move_clock", &cfg.MoveClock)
	cfg.group.Add("wait_poll", &cfg.WaitPoll)
	cfg.group.Add("log.echo", &cfg.Log.Echo)
	cfg.group.Add("log.input", &cfg.Log.Input)
	cfg.group.Add("window.width", &cfg.Window.Width)
	cfg.group.Add("window.height", &cfg.Window.Height)
	cfg.group.Add("window.title", &cfg.Window.Title)
	cfg.group.Add("window.units", &cfg.Window.Units)
	cfg.group.Add("window.monitor.width_cm", &cfg.Window.Monitor.WidthCm)
	cfg.group.Add("window.monitor.distance_cm", &cfg.Window.Monitor.DistanceCm)
	cfg.group.Add("x11.window", &cfg.X11.Window)

	cfg.Backends.Set(BackendNames)
	cfg.MoveClock.Set(true)
	cfg.WaitPoll.Set(0.0)
	cfg.Log.Echo.Set(false)
	cfg.Log.Input.Set(true)
	cfg.Window.Width.Set(800)
	cfg.Window.Height.Set(600)
	cfg.Window.Title.Set("rtinput")
	cfg.Window.Units.Set("pix")
	cfg.Window.Monitor.WidthCm.Set(0.0)
	cfg.Window.Monitor.DistanceCm.Set(0.0)
	cfg.X11.Window.Set(0)

	cfg.Backends.SetHookPre(func(v prefs.Value) error {
		for _, n := range v.([]string) {
			if !slices.Contains(BackendNames, n) {
				return curated.Errorf(ConfigError, "backends", "unknown backend "+n)
			}
		}
		return nil
	})
	cfg.WaitPoll.SetHookPre(func(v prefs.Value) error {
		if v.(float64) < 0 {
			return curated.Errorf(ConfigError, "wait_poll", "cannot be negative")
		}
		return nil
	})
	cfg.Window.Units.SetHookPre(func(v prefs.Value) error {
		if _, err := units.Parse(v.(string)); err != nil {
			return curated.Errorf(ConfigError, "window.units", err)
		}
		return nil
	})
	positive := func(key string) func(prefs.Value) error {
		return func(v prefs.Value) error {
			if v.(int) <= 0 {
				return curated.Errorf(ConfigError, key, "must be greater than zero")
			}
			return nil
		}
	}
	cfg.Window.Width.SetHookPre(positive("window.width"))
	cfg.Window.Height.SetHookPre(positive("window.height"))

	return cfg
}

// DefaultPath returns the path of the configuration file in the rtinput
// resource directory.
func DefaultPath() (string, error) {
	return paths.ResourcePath("", filename)
}

// Load configuration from the YAML file and then apply any values on the
// command line stack. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, curated.Errorf(ConfigError, path, err)
		}
		logger.Logf(logger.Allow, "config", "%s not found. using defaults", path)
	} else if err := cfg.parse(data); err != nil {
		return nil, curated.Errorf(ConfigError, path, err)
	}

	if err := cfg.group.ApplyCommandLine(); err != nil {
		return nil, curated.Errorf(ConfigError, "command line", err)
	}

	return cfg, nil
}

// Parse configuration from YAML data. Command line values are not applied.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.parse(data); err != nil {
		return nil, curated.Errorf(ConfigError, "yaml", err)
	}
	return cfg, nil
}

func (cfg *Config) parse(data []byte) error {
	return yaml.UnmarshalStrict(data, cfg)
}

// Marshal the configuration as YAML.
func (cfg *Config) Marshal() ([]byte, error) {
	doc := make(map[string]interface{})
	for _, k := range cfg.group.Keys() {
		p, _ := cfg.group.Lookup(k)

		m := doc
		parts := strings.Split(k, ".")
		for _, n := range parts[:len(parts)-1] {
			sub, ok := m[n].(map[string]interface{})
			if !ok {
				sub = make(map[string]interface{})
				m[n] = sub
			}
			m = sub
		}
		m[parts[len(parts)-1]] = p.Get()
	}
	return yaml.Marshal(doc)
}

// String returns the configuration as a command line string.
func (cfg *Config) String() string {
	return cfg.group.String()
}

// Lookup the preference value for a command line key.
func (cfg *Config) Lookup(key string) (prefs.Pref, bool) {
	return cfg.group.Lookup(key)
}

// Geometry returns the window geometry described by the configuration. The
// width of the monitor in pixels is taken to be the width of the window.
func (cfg *Config) Geometry() units.Geometry {
	u, _ := units.Parse(cfg.Window.Units.String())
	w := cfg.Window.Width.Get().(int)
	return units.Geometry{
		Width:  w,
		Height: cfg.Window.Height.Get().(int),
		Unit:   u,
		Mon: units.Monitor{
			WidthCm:    cfg.Window.Monitor.WidthCm.Get().(float64),
			DistanceCm: cfg.Window.Monitor.DistanceCm.Get().(float64),
			WidthPix:   w,
		},
	}
}

// ContextOptions returns the options for event.NewContext() described by the
// configuration.
func (cfg *Config) ContextOptions() []event.Option {
	poll := time.Duration(cfg.WaitPoll.Get().(float64) * float64(time.Second))

	input := cfg.Log.Input.Get().(bool)

	return []event.Option{
		event.WithWaitPoll(poll),
		event.WithMoveClock(cfg.MoveClock.Get().(bool)),
		event.WithInputLogging(logger.PermissionFunc(func() bool {
			return input
		})),
	}
}

// ApplyLogging sets the logger echo according to the configuration.
func (cfg *Config) ApplyLogging(echo io.Writer) {
	if cfg.Log.Echo.Get().(bool) {
		logger.SetEcho(echo)
	} else {
		logger.SetEcho(nil)
	}
}
