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
	"github.com/jetsetilly/rtinput/config"
	"github.com/jetsetilly/rtinput/units"
	"github.com/jetsetilly/rtinput/userinput"
)

// window is the size of the backend window with the units and monitor
// calibration of the configuration. The configuration can be changed while
// the probe is running.
type window struct {
	backend userinput.Backend
	cfg     *config.Config
}

func (w *window) Size() (int, int) {
	return w.backend.WindowSize()
}

func (w *window) Units() units.Units {
	return w.cfg.Geometry().Units()
}

func (w *window) Monitor() units.Monitor {
	mon := w.cfg.Geometry().Monitor()
	mon.WidthPix, _ = w.Size()
	return mon
}
