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

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/rtinput/logger"
	"github.com/jetsetilly/rtinput/userinput"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xfixes"
	"github.com/jezek/xgb/xproto"
)

// Config for the X11 backend.
type Config struct {
	// display name. the empty string means the DISPLAY environment variable
	Display string

	// existing window to attach to. zero means a new window is created
	Window uint32

	Title  string
	Width  int
	Height int
}

const eventMask = xproto.EventMaskKeyPress |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskPropertyChange

// name of the empty property changed on the window to obtain a server timestamp
const timestampProperty = "_RTINPUT_TIMESTAMP"

// Backend implements the userinput.Backend interface for X11.
type Backend struct {
	handler userinput.Handler

	conn      *xgb.Conn
	window    xproto.Window
	ownWindow bool
	keys      keymap

	// xfixes extension is available
	xfixes bool

	width  int
	height int

	clock serverClock

	// events read from the connection but not yet dispatched
	pending []xgb.Event
}

// Open the X11 backend.
func Open(cfg Config) (*Backend, error) {
	conn, err := xgb.NewConnDisplay(cfg.Display)
	if err != nil {
		return nil, fmt.Errorf("x11: %w", err)
	}

	b := &Backend{
		conn: conn,
	}

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)

	if cfg.Window == 0 {
		err = b.createWindow(screen, cfg)
	} else {
		b.window = xproto.Window(cfg.Window)
		err = xproto.ChangeWindowAttributesChecked(conn, b.window, xproto.CwEventMask, []uint32{eventMask}).Check()
	}
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: %w", err)
	}

	geom, err := xproto.GetGeometry(conn, xproto.Drawable(b.window)).Reply()
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("x11: %w", err)
	}
	b.width = int(geom.Width)
	b.height = int(geom.Height)

	count := byte(setup.MaxKeycode - setup.MinKeycode + 1)
	mapping, err := xproto.GetKeyboardMapping(conn, setup.MinKeycode, count).Reply()
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("x11: %w", err)
	}
	b.keys = keymap{
		min:     setup.MinKeycode,
		perCode: int(mapping.KeysymsPerKeycode),
		syms:    mapping.Keysyms,
	}

	if err := xfixes.Init(conn); err != nil {
		logger.Logf(logger.Allow, "x11", "xfixes unavailable: %v", err)
	} else if _, err := xfixes.QueryVersion(conn, 4, 0).Reply(); err != nil {
		logger.Logf(logger.Allow, "x11", "xfixes unavailable: %v", err)
	} else {
		b.xfixes = true
	}

	logger.Logf(logger.Allow, "x11", "window %d (%dx%d)", b.window, b.width, b.height)

	return b, nil
}

func (b *Backend) createWindow(screen *xproto.ScreenInfo, cfg Config) error {
	win, err := xproto.NewWindowId(b.conn)
	if err != nil {
		return err
	}

	err = xproto.CreateWindowChecked(b.conn, screen.RootDepth, win, screen.Root,
		0, 0, uint16(cfg.Width), uint16(cfg.Height), 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{screen.BlackPixel, eventMask}).Check()
	if err != nil {
		return err
	}

	b.window = win
	b.ownWindow = true

	if cfg.Title != "" {
		_ = xproto.ChangePropertyChecked(b.conn, xproto.PropModeReplace, win,
			xproto.AtomWmName, xproto.AtomString, 8,
			uint32(len(cfg.Title)), []byte(cfg.Title)).Check()
	}

	return xproto.MapWindowChecked(b.conn, win).Check()
}

// Window returns the X11 ID of the window the backend is attached to.
func (b *Backend) Window() uint32 {
	return uint32(b.window)
}

// Name implements the userinput.Backend interface.
func (b *Backend) Name() string {
	return "x11"
}

// SetHandler implements the userinput.Backend interface. The X server clock
// is synchronised with the handler's clock.
func (b *Backend) SetHandler(h userinput.Handler) {
	b.handler = h
	if h == nil || b.conn == nil {
		return
	}
	if err := b.syncClock(); err != nil {
		logger.Logf(logger.Allow, "x11", "server clock: %v", err)
	}
}

// syncClock changes an empty property on the window and anchors the server
// clock to the timestamp of the resulting PropertyNotify event. Other events
// that arrive in the meantime are added to the pending queue.
func (b *Backend) syncClock() error {
	atom, err := xproto.InternAtom(b.conn, false, uint16(len(timestampProperty)), timestampProperty).Reply()
	if err != nil {
		return err
	}

	err = xproto.ChangePropertyChecked(b.conn, xproto.PropModeAppend, b.window,
		atom.Atom, xproto.AtomString, 8, 0, nil).Check()
	if err != nil {
		return err
	}

	for {
		ev, err := b.conn.WaitForEvent()
		if err != nil {
			logger.Logf(logger.Allow, "x11", "%v", err)
			continue
		}
		if ev == nil {
			return errors.New("connection closed")
		}
		if e, ok := ev.(xproto.PropertyNotifyEvent); ok && e.Window == b.window && e.Atom == atom.Atom {
			b.clock.anchor(e.Time, b.handler.Now())
			return nil
		}
		b.pending = append(b.pending, ev)
	}
}

// read all events waiting on the connection into the pending queue.
func (b *Backend) read() error {
	for {
		ev, err := b.conn.PollForEvent()
		if err != nil {
			logger.Logf(logger.Allow, "x11", "%v", err)
			continue
		}
		if ev == nil {
			return nil
		}
		b.pending = append(b.pending, ev)
	}
}

// Pump implements the userinput.Backend interface.
func (b *Backend) Pump() error {
	if b.handler == nil {
		return errors.New("x11: no handler")
	}

	if err := b.read(); err != nil {
		return err
	}

	p := b.pending
	b.pending = nil
	b.dispatch(p, b.handler.Now())

	return nil
}

// eventTime returns the server timestamp of input events.
func eventTime(ev xgb.Event) (xproto.Timestamp, bool) {
	switch ev := ev.(type) {
	case xproto.KeyPressEvent:
		return ev.Time, true
	case xproto.ButtonPressEvent:
		return ev.Time, true
	case xproto.ButtonReleaseEvent:
		return ev.Time, true
	case xproto.MotionNotifyEvent:
		return ev.Time, true
	}
	return 0, false
}

func (b *Backend) dispatch(events []xgb.Event, now float64) {
	stamp := func(ev xgb.Event) float64 {
		t, _ := eventTime(ev)
		return b.clock.local(t, now)
	}

	h := b.handler

	for _, ev := range events {
		switch e := ev.(type) {
		case xproto.KeyPressEvent:
			name := keysymName(b.keys.keysym(e.Detail))
			if name == "" {
				logger.Logf(logger.Allow, "x11", "unknown key code %d", e.Detail)
				continue
			}
			h.RecordKeyDown(userinput.NormaliseKeyName(name), stamp(ev))

		case xproto.ButtonPressEvent:
			switch e.Detail {
			case xproto.ButtonIndex1:
				h.RecordButtonDown(userinput.MouseButtonLeft, stamp(ev))
			case xproto.ButtonIndex2:
				h.RecordButtonDown(userinput.MouseButtonMiddle, stamp(ev))
			case xproto.ButtonIndex3:
				h.RecordButtonDown(userinput.MouseButtonRight, stamp(ev))
			case xproto.ButtonIndex4:
				h.RecordWheel(0, 1)
			case xproto.ButtonIndex5:
				h.RecordWheel(0, -1)
			case 6:
				h.RecordWheel(-1, 0)
			case 7:
				h.RecordWheel(1, 0)
			}

		case xproto.ButtonReleaseEvent:
			switch e.Detail {
			case xproto.ButtonIndex1:
				h.RecordButtonUp(userinput.MouseButtonLeft)
			case xproto.ButtonIndex2:
				h.RecordButtonUp(userinput.MouseButtonMiddle)
			case xproto.ButtonIndex3:
				h.RecordButtonUp(userinput.MouseButtonRight)
			}

		case xproto.MotionNotifyEvent:
			h.RecordMotion(stamp(ev))

		case xproto.ConfigureNotifyEvent:
			if e.Window == b.window {
				b.width = int(e.Width)
				b.height = int(e.Height)
			}
		}
	}
}

// scopeOf returns the scope of an event. The bool is false for events that
// are not input events.
func scopeOf(ev xgb.Event) (userinput.Scope, bool) {
	switch ev.(type) {
	case xproto.KeyPressEvent, xproto.KeyReleaseEvent:
		return userinput.ScopeKeyboard, true
	case xproto.ButtonPressEvent, xproto.ButtonReleaseEvent, xproto.MotionNotifyEvent:
		return userinput.ScopeMouse, true
	}
	return userinput.ScopeAll, false
}

// discard removes events in the scope from the pending queue. Events that are
// not input events are kept.
func (b *Backend) discard(scope userinput.Scope) {
	kept := b.pending[:0]
	for _, ev := range b.pending {
		if s, ok := scopeOf(ev); ok && scope.Includes(s) {
			continue
		}
		kept = append(kept, ev)
	}
	clear(b.pending[len(kept):])
	b.pending = kept
}

// Discard implements the userinput.Backend interface.
func (b *Backend) Discard(scope userinput.Scope) error {
	if err := b.read(); err != nil {
		return err
	}
	b.discard(scope)
	return nil
}

// MousePos implements the userinput.Backend interface.
func (b *Backend) MousePos() (float64, float64, error) {
	r, err := xproto.QueryPointer(b.conn, b.window).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("x11: %w", err)
	}
	return float64(r.WinX), float64(r.WinY), nil
}

// SetMousePos implements the userinput.Backend interface.
func (b *Backend) SetMousePos(x, y float64) error {
	err := xproto.WarpPointerChecked(b.conn, xproto.WindowNone, b.window,
		0, 0, 0, 0, int16(x), int16(y)).Check()
	if err != nil {
		return fmt.Errorf("x11: %w", err)
	}
	return nil
}

// MouseVisible implements the userinput.Backend interface.
func (b *Backend) MouseVisible() (bool, error) {
	return false, userinput.Unsupported(b.Name(), "MouseVisible")
}

// SetMouseVisible implements the userinput.Backend interface.
func (b *Backend) SetMouseVisible(visible bool) error {
	if !b.xfixes {
		return userinput.Unsupported(b.Name(), "SetMouseVisible")
	}

	var err error
	if visible {
		err = xfixes.ShowCursorChecked(b.conn, b.window).Check()
	} else {
		err = xfixes.HideCursorChecked(b.conn, b.window).Check()
	}
	if err != nil {
		return fmt.Errorf("x11: %w", err)
	}
	return nil
}

// WindowSize implements the userinput.Backend interface.
func (b *Backend) WindowSize() (int, int) {
	return b.width, b.height
}

// Close implements the userinput.Backend interface.
func (b *Backend) Close() error {
	if b.ownWindow {
		_ = xproto.DestroyWindowChecked(b.conn, b.window).Check()
		b.ownWindow = false
	}
	b.conn.Close()
	return nil
}
