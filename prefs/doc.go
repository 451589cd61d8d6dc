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

// Package prefs implements typed preference values. Values can be set from
// Go values or from strings, and from YAML documents by way of the
// UnmarshalYAML() function of each type.
//
// Each type can have a hook function called just before and just after the
// value is changed.
//
// A Group associates keys with values. The ApplyCommandLine() function of a
// Group sets values from the top of the command line stack. See the
// PushCommandLineStack() function for the command line format.
package prefs
