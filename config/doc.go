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

// Package config loads rtinput configuration from a YAML file. Missing files
// and missing keys take default values. Values can be overridden from the
// command line with the prefs command line stack. For example:
//
//	prefs.PushCommandLineStack("backends::terminal; wait_poll::0.01")
//	cfg, err := config.Load(config.DefaultPath())
//
// A Watcher reloads the configuration file when it changes. Watcher.Poll()
// never blocks and so can be called between trials without disturbing the
// timing of input.
package config
