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

// Package clock provides the timing primitive used throughout the input
// system. All times are float64 seconds. Absolute times are measured from an
// origin fixed by the Source, which for the default Source is the moment the
// package was initialised.
//
// A Clock records the absolute time of its most recent reset. Elapsed time is
// the difference between the current time and that reset time. Reaction times
// are calculated by resetting a Clock at stimulus onset and subtracting its
// TimeAtLastReset() from the absolute time of the response.
package clock

import "time"

// Source is a monotonic time source.
type Source interface {
	// Now returns the current absolute time in seconds.
	Now() float64
}

type monotonic struct {
	origin time.Time
}

// Now implements the Source interface. time.Since() uses the monotonic clock
// reading in the origin value so the result is not affected by changes to the
// wall clock.
func (m monotonic) Now() float64 {
	return time.Since(m.origin).Seconds()
}

// Monotonic is the default Source.
var Monotonic Source = monotonic{origin: time.Now()}

// Now returns the current time of the Monotonic source.
func Now() float64 {
	return Monotonic.Now()
}

// Clock measures time elapsed since its most recent reset.
type Clock struct {
	src       Source
	lastReset float64
}

// NewClock creates a Clock using the Monotonic source. The clock is reset on
// creation.
func NewClock() *Clock {
	return NewClockWithSource(Monotonic)
}

// NewClockWithSource creates a Clock with the specified Source. The clock is
// reset on creation.
func NewClockWithSource(src Source) *Clock {
	if src == nil {
		src = Monotonic
	}
	return &Clock{
		src:       src,
		lastReset: src.Now(),
	}
}

// Reset the clock so that the elapsed time is zero.
func (c *Clock) Reset() {
	c.lastReset = c.src.Now()
}

// ResetTo resets the clock so that the elapsed time is the given number of
// seconds. A negative value means the clock will count up to zero.
func (c *Clock) ResetTo(elapsed float64) {
	c.lastReset = c.src.Now() - elapsed
}

// Elapsed returns the number of seconds since the most recent reset.
func (c *Clock) Elapsed() float64 {
	return c.src.Now() - c.lastReset
}

// TimeAtLastReset returns the absolute time of the most recent reset.
func (c *Clock) TimeAtLastReset() float64 {
	return c.lastReset
}

// Source returns the time source used by the clock.
func (c *Clock) Source() Source {
	return c.src
}
