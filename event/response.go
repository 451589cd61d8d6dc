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

package event

import (
	"github.com/jetsetilly/rtinput/buffer"
	"github.com/jetsetilly/rtinput/clock"
)

// KeyResponse collects the key presses made in response to a single trial.
type KeyResponse struct {
	// the keys pressed, in order
	Keys []string

	// whether the response was correct
	Corr bool

	// reaction time of the most recent key press. only valid if HasRT is true
	RT    float64
	HasRT bool

	// reset at stimulus onset
	Clock *clock.Clock

	// true until Start() is called
	ClockNeedsReset bool
}

// NewKeyResponse is the preferred method of initialisation for the KeyResponse
// type. A nil source means the clock.Monotonic source is used.
func NewKeyResponse(src clock.Source) *KeyResponse {
	return &KeyResponse{
		Clock:           clock.NewClockWithSource(src),
		ClockNeedsReset: true,
	}
}

// Start resets the clock, if it needs resetting. Should be called at stimulus
// onset.
func (r *KeyResponse) Start() {
	if r.ClockNeedsReset {
		r.Clock.Reset()
		r.ClockNeedsReset = false
	}
}

// Record adds a key press to the response. The key event time must be an
// absolute time from the same clock source as the response clock.
func (r *KeyResponse) Record(ev buffer.KeyEvent, correct bool) {
	r.Keys = append(r.Keys, ev.Name)
	r.Corr = correct
	r.RT = ev.Time - r.Clock.TimeAtLastReset()
	r.HasRT = true
}
