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

package xinput

import "github.com/jezek/xgb/xproto"

// serverClock maps X server timestamps, which are milliseconds that wrap at
// 32 bits, to seconds on the handler's clock.
type serverClock struct {
	anchored bool
	offset   float64

	// most recent server timestamp and the number of times the server clock
	// has wrapped
	last  xproto.Timestamp
	wraps int
}

const wrapSeconds = float64(1<<32) / 1000.0

// seconds returns the server time in seconds, accounting for wrapping.
func (c *serverClock) seconds(t xproto.Timestamp) float64 {
	if c.anchored && t < c.last && c.last-t > 1<<31 {
		c.wraps++
	}
	c.last = t
	return float64(c.wraps)*wrapSeconds + float64(t)/1000.0
}

// anchor the clock so that server time t is local time now.
func (c *serverClock) anchor(t xproto.Timestamp, now float64) {
	c.anchored = true
	c.last = t
	c.wraps = 0
	c.offset = now - float64(t)/1000.0
}

// local returns the local time of server time t. If the clock has not been
// anchored then it is anchored with t as now.
//
// An event cannot have happened after now so a mapping that is ahead of now
// means the offset has drifted. The offset is moved back to match.
func (c *serverClock) local(t xproto.Timestamp, now float64) float64 {
	if !c.anchored {
		c.anchor(t, now)
		return now
	}
	l := c.offset + c.seconds(t)
	if l > now {
		c.offset -= l - now
		return now
	}
	return l
}
