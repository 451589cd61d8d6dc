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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// The first argument after any flags is checked against the list of
// sub-modes. If it matches then that sub-mode is selected, otherwise the
// default sub-mode (the first in the list) is selected and the argument is
// left for the program. For example, for a program with sub-modes PROBE and
// KEYS:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PROBE", "KEYS")
//	config := md.AddString("config", "", "path to configuration file")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PROBE":
//		md.NewMode()
//		watch := md.AddBool("watch", false, "reload configuration")
//		p, err = md.Parse()
//		...
//	}
//
// Sub-mode names are case insensitive on the command line and are upper case
// in the mode path. The mode path is the list of modes selected so far,
// separated by a forward slash. For example, "PROBE" or "KEYS".
//
// Help for the current mode is printed to the Output writer when the -help
// flag is given. The help includes the list of sub-modes and any text added
// with AdditionalHelp().
package modalflag
