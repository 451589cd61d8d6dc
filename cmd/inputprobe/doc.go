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

// Inputprobe opens an input backend and shows the live state of the keyboard,
// mouse and joysticks. It is useful for checking that a backend works on a
// particular machine and for checking monitor calibration.
//
// Usage:
//
//	inputprobe [-config path] [-prefs "key::value; ..."] [-log] [MODE] [mode flags]
//
// Modes are:
//
//	PROBE	live view of input state (the default)
//	KEYS	print key presses as they happen
//	CONFIG	print the configuration as YAML
//
// In PROBE mode the escape key (pressed in the input window) quits and the
// space key starts a new trial; reaction times are measured from the start of
// the trial. With the -watch flag the configuration file is reloaded when it
// changes.
//
// When the terminal backend is used the state is drawn on the terminal by the
// backend. Otherwise the state is drawn on the terminal with bubbletea.
package main
