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

package terminput

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/rtinput/logger"
	"github.com/jetsetilly/rtinput/userinput"
)

// Backend implements the userinput.Backend interface for terminals.
type Backend struct {
	handler userinput.Handler
	screen  tcell.Screen

	// events read from the screen by the reader goroutine. the list is
	// unbounded and is swapped out by drain()
	crit     sync.Mutex
	incoming []tcell.Event

	pending []tcell.Event

	// most recent mouse state
	mouseX  int
	mouseY  int
	buttons tcell.ButtonMask
}

// Open the terminal backend on the controlling terminal.
func Open() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return OpenScreen(screen)
}

// OpenScreen opens the terminal backend on a tcell.Screen. The screen must not
// have been initialised.
func OpenScreen(screen tcell.Screen) (*Backend, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	screen.EnableMouse()

	b := &Backend{
		screen: screen,
	}

	go b.read()

	w, h := screen.Size()
	logger.Logf(logger.Allow, "terminal", "%dx%d cells", w, h)

	return b, nil
}

// read events from the screen until the screen is finalised.
func (b *Backend) read() {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		b.crit.Lock()
		b.incoming = append(b.incoming, ev)
		b.crit.Unlock()
	}
}

// Screen returns the tcell.Screen used by the backend.
func (b *Backend) Screen() tcell.Screen {
	return b.screen
}

// Name implements the userinput.Backend interface.
func (b *Backend) Name() string {
	return "terminal"
}

// SetHandler implements the userinput.Backend interface.
func (b *Backend) SetHandler(h userinput.Handler) {
	b.handler = h
}

// move all events read from the screen to the pending list.
func (b *Backend) drain() {
	b.crit.Lock()
	in := b.incoming
	b.incoming = nil
	b.crit.Unlock()

	b.pending = append(b.pending, in...)
}

// Pump implements the userinput.Backend interface.
func (b *Backend) Pump() error {
	if b.handler == nil {
		return errors.New("terminal: no handler")
	}

	b.drain()

	p := b.pending
	b.pending = nil
	for _, ev := range p {
		b.dispatch(ev)
	}

	return nil
}

// eventAge returns the number of seconds since the event happened.
func eventAge(ev tcell.Event) float64 {
	when := ev.When()
	if when.IsZero() {
		return 0
	}
	return max(time.Since(when).Seconds(), 0)
}

// keyName returns the name of the key before normalisation.
func keyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	if n, ok := tcell.KeyNames[ev.Key()]; ok {
		return n
	}
	return ""
}

// buttons in the order of userinput.MouseButton values.
var buttonMasks = [userinput.NumMouseButtons]tcell.ButtonMask{
	tcell.ButtonPrimary,
	tcell.ButtonMiddle,
	tcell.ButtonSecondary,
}

func (b *Backend) dispatch(ev tcell.Event) {
	h := b.handler

	switch e := ev.(type) {
	case *tcell.EventKey:
		name := userinput.NormaliseKeyName(keyName(e))
		if name == "" {
			return
		}
		h.RecordKeyDown(name, h.Now()-eventAge(ev))

	case *tcell.EventMouse:
		t := h.Now() - eventAge(ev)

		x, y := e.Position()
		if x != b.mouseX || y != b.mouseY {
			b.mouseX, b.mouseY = x, y
			h.RecordMotion(t)
		}

		mask := e.Buttons()
		for i, m := range buttonMasks {
			if mask&m != 0 && b.buttons&m == 0 {
				h.RecordButtonDown(userinput.MouseButton(i), t)
			} else if mask&m == 0 && b.buttons&m != 0 {
				h.RecordButtonUp(userinput.MouseButton(i))
			}
		}
		b.buttons = mask

		var dx, dy float64
		if mask&tcell.WheelUp != 0 {
			dy++
		}
		if mask&tcell.WheelDown != 0 {
			dy--
		}
		if mask&tcell.WheelLeft != 0 {
			dx--
		}
		if mask&tcell.WheelRight != 0 {
			dx++
		}
		if dx != 0 || dy != 0 {
			h.RecordWheel(dx, dy)
		}
	}
}

func scopeOf(ev tcell.Event) (userinput.Scope, bool) {
	switch ev.(type) {
	case *tcell.EventKey:
		return userinput.ScopeKeyboard, true
	case *tcell.EventMouse:
		return userinput.ScopeMouse, true
	}
	return userinput.ScopeAll, false
}

// Discard implements the userinput.Backend interface.
func (b *Backend) Discard(scope userinput.Scope) error {
	b.drain()

	kept := b.pending[:0]
	for _, ev := range b.pending {
		if s, ok := scopeOf(ev); ok && scope.Includes(s) {
			continue
		}
		kept = append(kept, ev)
	}
	clear(b.pending[len(kept):])
	b.pending = kept

	return nil
}

// MousePos implements the userinput.Backend interface. The position is the
// position reported by the most recent mouse event.
func (b *Backend) MousePos() (float64, float64, error) {
	return float64(b.mouseX), float64(b.mouseY), nil
}

// SetMousePos implements the userinput.Backend interface.
func (b *Backend) SetMousePos(x, y float64) error {
	return userinput.Unsupported(b.Name(), "SetMousePos")
}

// MouseVisible implements the userinput.Backend interface.
func (b *Backend) MouseVisible() (bool, error) {
	return true, userinput.Unsupported(b.Name(), "MouseVisible")
}

// SetMouseVisible implements the userinput.Backend interface.
func (b *Backend) SetMouseVisible(visible bool) error {
	return userinput.Unsupported(b.Name(), "SetMouseVisible")
}

// WindowSize implements the userinput.Backend interface.
func (b *Backend) WindowSize() (int, int) {
	return b.screen.Size()
}

// Close implements the userinput.Backend interface.
func (b *Backend) Close() error {
	b.screen.Fini()
	return nil
}
