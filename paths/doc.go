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

// Package paths contains functions to prepare paths to rtinput resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the default configuration file.
//
//	p, err := paths.ResourcePath("", "rtinput.yml")
//
// In development builds the base path is ".rtinput" in the program's current
// directory. In release builds (built with the "release" tag) the base path
// is in the user's config directory, as returned by os.UserConfigDir(). On a
// modern Linux system the path returned in the example above will be:
//
//	/home/user/.config/rtinput/rtinput.yml
//
// The directory containing the resource is created if it doesn't exist.
package paths
