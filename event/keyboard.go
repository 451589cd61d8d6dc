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
	"slices"
	"time"

	"github.com/jetsetilly/rtinput/buffer"
	"github.com/jetsetilly/rtinput/clock"
	"github.com/jetsetilly/rtinput/logger"
	"github.com/jetsetilly/rtinput/userinput"
)

// NoTimeout can be used as the maxWait argument to WaitKeys().
const NoTimeout = -1.0

// GetKeys returns the names of keys pressed since the previous call.
//
// If keyList is nil then all key presses are returned. Otherwise only key
// presses named in keyList are returned and other key presses are kept for a
// later call.
func (c *Context) GetKeys(keyList []string) ([]string, error) {
	keys, err := c.GetKeysStamped(keyList, nil)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.Name)
	}

	return names, nil
}

// GetKeysStamped is the same as GetKeys() but returns the time of each key
// press as well as the name.
//
// If rel is nil then times are absolute. Otherwise times are relative to the
// most recent reset of the rel clock.
func (c *Context) GetKeysStamped(keyList []string, rel *clock.Clock) ([]buffer.KeyEvent, error) {
	if err := c.backend.Pump(); err != nil {
		return nil, err
	}

	keys := c.store.DrainKeys(keyList)

	if rel != nil {
		ref := rel.TimeAtLastReset()
		for i := range keys {
			keys[i].Time -= ref
		}
	}

	return keys, nil
}

// WaitKeys waits for a key press and returns its name in a one-element slice.
//
// Key presses that happened before the call are discarded. If keyList is not
// nil then key presses not in the list are also discarded, and the wait
// continues. If no qualifying key is pressed within maxWait seconds the
// function returns nil. A negative maxWait (NoTimeout) means wait forever.
//
// The calling goroutine is blocked for the duration of the wait.
func (c *Context) WaitKeys(maxWait float64, keyList []string) ([]string, error) {
	if err := c.ClearEvents(userinput.ScopeKeyboard); err != nil {
		return nil, err
	}

	timer := clock.NewClockWithSource(c.src)

	for maxWait < 0 || timer.Elapsed() < maxWait {
		keys, err := c.GetKeys(nil)
		if err != nil {
			return nil, err
		}

		for _, k := range keys {
			if keyList == nil || slices.Contains(keyList, k) {
				logger.Logf(logger.Allow, "keyboard", "key pressed: %s", k)
				return []string{k}, nil
			}
		}

		if c.waitPoll > 0 {
			time.Sleep(c.waitPoll)
		}
	}

	return nil, nil
}
