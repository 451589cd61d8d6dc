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
	"time"

	"github.com/jetsetilly/rtinput/buffer"
	"github.com/jetsetilly/rtinput/clock"
	"github.com/jetsetilly/rtinput/curated"
	"github.com/jetsetilly/rtinput/logger"
	"github.com/jetsetilly/rtinput/userinput"
)

// Context is the connection between a backend and the query functions.
type Context struct {
	backend userinput.Backend
	store   *buffer.Store
	src     clock.Source

	// time to sleep between passes of WaitKeys(). zero means no sleep
	waitPoll time.Duration
}

// Option is used to configure a new Context.
type Option func(*Context)

// WithWaitPoll sets the time between each pass of WaitKeys(). The default is
// zero, meaning that WaitKeys() pumps the backend as often as possible.
func WithWaitPoll(d time.Duration) Option {
	return func(c *Context) {
		c.waitPoll = max(d, 0)
	}
}

// WithMoveClock enables or disables move tracking.
func WithMoveClock(enabled bool) Option {
	return func(c *Context) {
		if enabled {
			c.store.StartMoveClock()
		} else {
			c.store.StopMoveClock()
		}
	}
}

// WithInputLogging sets the permission for logging of individual key presses
// and mouse button presses.
func WithInputLogging(perm logger.Permission) Option {
	return func(c *Context) {
		c.store.SetInputLogging(perm)
	}
}

// NewContext is the preferred method of initialisation for the Context type.
// A new buffer.Store is created and registered as the backend's handler. A nil
// source means the clock.Monotonic source is used.
func NewContext(b userinput.Backend, src clock.Source, opts ...Option) *Context {
	if src == nil {
		src = clock.Monotonic
	}

	c := &Context{
		backend: b,
		store:   buffer.NewStore(src),
		src:     src,
	}

	for _, o := range opts {
		o(c)
	}

	b.SetHandler(c.store)

	return c
}

// Backend returns the backend used by the Context.
func (c *Context) Backend() userinput.Backend {
	return c.backend
}

// Store returns the buffer.Store used by the Context.
func (c *Context) Store() *buffer.Store {
	return c.store
}

// Source returns the clock source used by the Context.
func (c *Context) Source() clock.Source {
	return c.src
}

// Pump the backend. Pending events are recorded in the Store.
func (c *Context) Pump() error {
	return c.backend.Pump()
}

// ClearEvents discards all events in the scope. Events that have been pumped
// into the key buffer are also discarded for the keyboard scope.
func (c *Context) ClearEvents(scope userinput.Scope) error {
	return c.report(c.store.Clear(scope, c.backend), "clear")
}

// StartMoveClock enables move tracking and resets the move clock.
func (c *Context) StartMoveClock() {
	c.store.StartMoveClock()
}

// StopMoveClock disables move tracking.
func (c *Context) StopMoveClock() {
	c.store.StopMoveClock()
}

// ResetMoveClock resets the move clock, starting it if necessary.
func (c *Context) ResetMoveClock() {
	c.store.ResetMoveClock()
}

// report logs unsupported operation errors. The error is returned unchanged.
func (c *Context) report(err error, tag string) error {
	if curated.Is(err, userinput.UnsupportedOperation) {
		logger.Log(logger.Allow, tag, err)
	}
	return err
}
