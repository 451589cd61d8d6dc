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

package clock_test

import (
	"testing"

	"github.com/jetsetilly/rtinput/clock"
	"github.com/jetsetilly/rtinput/test"
)

func TestClock(t *testing.T) {
	src := &clock.Manual{}
	src.Set(10.0)

	c := clock.NewClockWithSource(src)
	test.ExpectEquality(t, c.TimeAtLastReset(), 10.0)
	test.ExpectEquality(t, c.Elapsed(), 0.0)

	src.Advance(0.5)
	test.ExpectEquality(t, c.Elapsed(), 0.5)

	c.Reset()
	test.ExpectEquality(t, c.TimeAtLastReset(), 10.5)
	test.ExpectEquality(t, c.Elapsed(), 0.0)

	c.ResetTo(2.0)
	test.ExpectEquality(t, c.Elapsed(), 2.0)
	test.ExpectEquality(t, c.TimeAtLastReset(), 8.5)
}

func TestMonotonic(t *testing.T) {
	c := clock.NewClock()
	a := c.Elapsed()
	b := c.Elapsed()
	test.ExpectSuccess(t, a >= 0.0)
	test.ExpectSuccess(t, b >= a)
	test.ExpectSuccess(t, clock.Now() >= c.TimeAtLastReset())
}
