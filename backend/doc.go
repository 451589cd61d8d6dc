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

// Package backend opens an input backend according to the configuration. The
// backends named in the configuration are tried in order and the first one
// that opens is used.
//
// Applications that already own an SDL window, or an X11 window, should open
// the backend directly with the sdlinput or xinput packages.
package backend
