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

package backend

import (
	"github.com/jetsetilly/rtinput/backend/sdlinput"
	"github.com/jetsetilly/rtinput/backend/terminput"
	"github.com/jetsetilly/rtinput/backend/xinput"
	"github.com/jetsetilly/rtinput/config"
	"github.com/jetsetilly/rtinput/userinput"
)

type opener func(cfg *config.Config) (userinput.Backend, error)

// functions to open each backend named in the configuration.
var openers = map[string]opener{
	"sdl": func(cfg *config.Config) (userinput.Backend, error) {
		return sdlinput.Open(sdlinput.Config{
			Create: true,
			Title:  cfg.Window.Title.String(),
			Width:  cfg.Window.Width.Get().(int),
			Height: cfg.Window.Height.Get().(int),
		})
	},
	"x11": func(cfg *config.Config) (userinput.Backend, error) {
		return xinput.Open(xinput.Config{
			Window: uint32(cfg.X11.Window.Get().(int)),
			Title:  cfg.Window.Title.String(),
			Width:  cfg.Window.Width.Get().(int),
			Height: cfg.Window.Height.Get().(int),
		})
	},
	"terminal": func(_ *config.Config) (userinput.Backend, error) {
		return terminput.Open()
	},
}

// Probes returns the backend probes in the order given by the configuration.
func Probes(cfg *config.Config) []userinput.Probe {
	var probes []userinput.Probe
	for _, name := range cfg.Backends.Items() {
		open, ok := openers[name]
		if !ok {
			continue
		}
		probes = append(probes, userinput.Probe{
			Name: name,
			Open: func() (userinput.Backend, error) {
				return open(cfg)
			},
		})
	}
	return probes
}

// Open the first backend in the configuration that is available.
func Open(cfg *config.Config) (userinput.Backend, error) {
	return userinput.Select(Probes(cfg)...)
}
