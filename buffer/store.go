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

package buffer

import (
	"github.com/jetsetilly/rtinput/clock"
	"github.com/jetsetilly/rtinput/logger"
	"github.com/jetsetilly/rtinput/userinput"
)

// KeyEvent is a single key press. Time is absolute, as measured by the
// Store's clock source.
type KeyEvent struct {
	Name string
	Time float64
}

// JoyState is the most recent state of a single joystick. Axis values are in
// the range -1 to 1.
type JoyState struct {
	Axes    []float64
	Buttons []bool
	Hats    []userinput.DPad
}

func (j JoyState) copy() JoyState {
	return JoyState{
		Axes:    append([]float64(nil), j.Axes...),
		Buttons: append([]bool(nil), j.Buttons...),
		Hats:    append([]userinput.DPad(nil), j.Hats...),
	}
}

// Store is the input state for a single backend.
type Store struct {
	confinement

	src clock.Source

	keys []KeyEvent

	buttons      [userinput.NumMouseButtons]bool
	latency      [userinput.NumMouseButtons]float64
	buttonClocks [userinput.NumMouseButtons]*clock.Clock

	wheelX float64
	wheelY float64

	moveTracking bool
	moveClock    *clock.Clock

	joysticks map[int]*JoyState

	// whether key presses and mouse buttons are written to the log
	inputLog logger.Permission
}

// NewStore is the preferred method of initialisation for the Store type. A nil
// source means the clock.Monotonic source is used. Move tracking is enabled.
func NewStore(src clock.Source) *Store {
	if src == nil {
		src = clock.Monotonic
	}

	s := &Store{
		confinement:  newConfinement(),
		src:          src,
		moveTracking: true,
		moveClock:    clock.NewClockWithSource(src),
		joysticks:    make(map[int]*JoyState),
		inputLog:     logger.Allow,
	}

	for i := range s.buttonClocks {
		s.buttonClocks[i] = clock.NewClockWithSource(src)
	}

	return s
}

// SetInputLogging sets the permission used when logging key presses and mouse
// button presses.
func (s *Store) SetInputLogging(perm logger.Permission) {
	s.check()
	s.inputLog = perm
}

// Now implements the userinput.Handler interface.
func (s *Store) Now() float64 {
	return s.src.Now()
}

// Source returns the clock source used by the Store.
func (s *Store) Source() clock.Source {
	return s.src
}

// RecordKeyDown implements the userinput.Handler interface.
func (s *Store) RecordKeyDown(name string, t float64) {
	s.check()
	s.keys = append(s.keys, KeyEvent{Name: name, Time: t})
	logger.Logf(s.inputLog, "keyboard", "keypress: %s", name)
}

// RecordButtonDown implements the userinput.Handler interface.
func (s *Store) RecordButtonDown(b userinput.MouseButton, t float64) {
	s.check()
	if b < 0 || b >= userinput.NumMouseButtons {
		return
	}
	s.buttons[b] = true
	s.latency[b] = t - s.buttonClocks[b].TimeAtLastReset()
	logger.Logf(s.inputLog, "mouse", "%s button pressed", b)
}

// RecordButtonUp implements the userinput.Handler interface.
func (s *Store) RecordButtonUp(b userinput.MouseButton) {
	s.check()
	if b < 0 || b >= userinput.NumMouseButtons {
		return
	}
	s.buttons[b] = false
}

// RecordWheel implements the userinput.Handler interface.
func (s *Store) RecordWheel(dx, dy float64) {
	s.check()
	s.wheelX += dx
	s.wheelY += dy
}

// RecordMotion implements the userinput.Handler interface.
func (s *Store) RecordMotion(t float64) {
	s.check()
	if s.moveTracking {
		s.moveClock.ResetTo(s.src.Now() - t)
	}
}

func (s *Store) joystick(id int) *JoyState {
	j, ok := s.joysticks[id]
	if !ok {
		j = &JoyState{}
		s.joysticks[id] = j
	}
	return j
}

// RecordJoyButton implements the userinput.Handler interface.
func (s *Store) RecordJoyButton(id int, button int, down bool) {
	s.check()
	if button < 0 {
		return
	}
	j := s.joystick(id)
	for len(j.Buttons) <= button {
		j.Buttons = append(j.Buttons, false)
	}
	j.Buttons[button] = down
	if down {
		logger.Logf(s.inputLog, "joystick", "joystick %d: button %d pressed", id, button)
	}
}

// RecordJoyAxis implements the userinput.Handler interface.
func (s *Store) RecordJoyAxis(id int, axis int, value float64) {
	s.check()
	if axis < 0 {
		return
	}
	j := s.joystick(id)
	for len(j.Axes) <= axis {
		j.Axes = append(j.Axes, 0)
	}
	j.Axes[axis] = min(max(value, -1), 1)
}

// RecordJoyHat implements the userinput.Handler interface.
func (s *Store) RecordJoyHat(id int, hat int, dir userinput.DPad) {
	s.check()
	if hat < 0 {
		return
	}
	j := s.joystick(id)
	for len(j.Hats) <= hat {
		j.Hats = append(j.Hats, userinput.DPadCentre)
	}
	j.Hats[hat] = dir
}

// DrainKeys removes and returns key events from the buffer.
//
// If the filter is nil then every key event is returned and the buffer is
// emptied. Otherwise only the key events named in the filter are returned.
// Key events not named by the filter remain in the buffer in their original
// order. An empty but non-nil filter matches nothing.
func (s *Store) DrainKeys(filter []string) []KeyEvent {
	s.check()

	if filter == nil {
		keys := s.keys
		s.keys = nil
		return keys
	}

	match := make(map[string]bool, len(filter))
	for _, f := range filter {
		match[f] = true
	}

	var drained []KeyEvent
	kept := s.keys[:0]
	for _, k := range s.keys {
		if match[k.Name] {
			drained = append(drained, k)
		} else {
			kept = append(kept, k)
		}
	}

	// zero the tail so the backing array doesn't keep key names alive
	clear(s.keys[len(kept):])
	s.keys = kept

	return drained
}

// Pending returns the number of key events in the buffer.
func (s *Store) Pending() int {
	return len(s.keys)
}

// ResetButtonClocks resets the press clock of each button. If no buttons are
// specified then all buttons are reset.
func (s *Store) ResetButtonClocks(buttons ...userinput.MouseButton) {
	s.check()
	if len(buttons) == 0 {
		buttons = userinput.AllMouseButtons
	}
	for _, b := range buttons {
		if b < 0 || b >= userinput.NumMouseButtons {
			continue
		}
		s.buttonClocks[b].Reset()
	}
}

// TakeWheelDelta returns the accumulated wheel movement and zeroes the
// accumulator.
func (s *Store) TakeWheelDelta() (float64, float64) {
	s.check()
	dx, dy := s.wheelX, s.wheelY
	s.wheelX = 0
	s.wheelY = 0
	return dx, dy
}

// Clear discards events from the backend that have not yet been dispatched.
// The keyboard scope (and the all scope) also empties the key buffer. The
// backend can be nil.
func (s *Store) Clear(scope userinput.Scope, b userinput.Backend) error {
	s.check()

	if scope.Includes(userinput.ScopeKeyboard) {
		s.keys = nil
	}

	if b == nil {
		return nil
	}

	return b.Discard(scope)
}

// StartMoveClock enables move tracking and resets the move clock.
func (s *Store) StartMoveClock() {
	s.check()
	s.moveTracking = true
	s.moveClock.Reset()
}

// StopMoveClock disables move tracking.
func (s *Store) StopMoveClock() {
	s.check()
	s.moveTracking = false
}

// ResetMoveClock resets the move clock. If move tracking is disabled then it
// is started.
func (s *Store) ResetMoveClock() {
	s.StartMoveClock()
}

// MoveTracking returns true if move tracking is enabled.
func (s *Store) MoveTracking() bool {
	return s.moveTracking
}

// MoveTime returns the number of seconds since the most recent mouse motion.
// Returns zero if move tracking is disabled.
func (s *Store) MoveTime() float64 {
	if !s.moveTracking {
		return 0
	}
	return s.moveClock.Elapsed()
}

// Buttons returns the current state of the mouse buttons and the latency of
// the most recent press of each button.
func (s *Store) Buttons() ([userinput.NumMouseButtons]bool, [userinput.NumMouseButtons]float64) {
	return s.buttons, s.latency
}

// Joystick returns a copy of the most recent state of the joystick.
func (s *Store) Joystick(id int) JoyState {
	if j, ok := s.joysticks[id]; ok {
		return j.copy()
	}
	return JoyState{}
}
