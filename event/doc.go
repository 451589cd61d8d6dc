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

// Package event is the query interface used by experiment scripts. It provides
// keyboard queries through the Context type, mouse queries through the Mouse
// type and joystick queries through the Joystick type.
//
// A Context binds a userinput.Backend to a buffer.Store. Every query that
// needs up-to-date input pumps the backend first, so that events queued by
// the backend are recorded in the Store before it is read.
//
// Nothing in this package runs in the background. WaitKeys() is the only
// function that blocks and it can only be ended by a qualifying key press or
// by the timeout.
//
// Timestamps are absolute times measured by the Context's clock.Source.
// Reaction times are found by subtracting the TimeAtLastReset() of a
// clock.Clock that was reset at stimulus onset:
//
//	rt := clock.NewClock()
//	// draw stimulus and reset clock
//	rt.Reset()
//	keys, _ := ctx.GetKeysStamped([]string{"left", "right"}, rt)
//
// The Mouse type keeps a record of the previous position and so GetPos() is
// not idempotent. MouseMoved() and GetRel() compare the position with the
// position recorded by the previous call.
package event
