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

package clock

// Manual is a Source whose time only changes when told to. Useful for testing
// and for replaying recorded sessions.
type Manual struct {
	now float64
}

// Now implements the Source interface.
func (m *Manual) Now() float64 {
	return m.now
}

// Set the current time. Time is allowed to go backwards.
func (m *Manual) Set(t float64) {
	m.now = t
}

// Advance the current time by the number of seconds.
func (m *Manual) Advance(secs float64) {
	m.now += secs
}
