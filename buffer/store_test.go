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

package buffer_test

import (
	"testing"

	"github.com/jetsetilly/rtinput/buffer"
	"github.com/jetsetilly/rtinput/clock"
	"github.com/jetsetilly/rtinput/logger"
	"github.com/jetsetilly/rtinput/test"
	"github.com/jetsetilly/rtinput/userinput"
)

var _ userinput.Handler = (*buffer.Store)(nil)

// discarder records the scope of calls to Discard(). the other methods are
// never called by the Store.
type discarder struct {
	userinput.Backend
	scopes []userinput.Scope
}

func (d *discarder) Discard(scope userinput.Scope) error {
	d.scopes = append(d.scopes, scope)
	return nil
}

func names(keys []buffer.KeyEvent) []string {
	n := make([]string, 0, len(keys))
	for _, k := range keys {
		n = append(n, k.Name)
	}
	return n
}

func expectNames(t *testing.T, keys []buffer.KeyEvent, expected ...string) {
	t.Helper()
	n := names(keys)
	if !test.ExpectEquality(t, len(n), len(expected)) {
		return
	}
	for i := range n {
		test.ExpectEquality(t, n[i], expected[i], i)
	}
}

func TestUnfilteredDrain(t *testing.T) {
	s := buffer.NewStore(&clock.Manual{})
	s.SetInputLogging(logger.PermissionFunc(func() bool { return false }))

	s.RecordKeyDown("a", 1.0)
	s.RecordKeyDown("b", 2.0)
	s.RecordKeyDown("c", 3.0)

	keys := s.DrainKeys(nil)
	expectNames(t, keys, "a", "b", "c")
	test.ExpectEquality(t, keys[1].Time, 2.0)

	keys = s.DrainKeys(nil)
	test.ExpectEquality(t, len(keys), 0)
	test.ExpectEquality(t, s.Pending(), 0)
}

func TestFilteredDrain(t *testing.T) {
	s := buffer.NewStore(&clock.Manual{})
	s.SetInputLogging(logger.PermissionFunc(func() bool { return false }))

	for i, k := range []string{"a", "b", "c", "a"} {
		s.RecordKeyDown(k, float64(i))
	}

	keys := s.DrainKeys([]string{"a"})
	expectNames(t, keys, "a", "a")
	test.ExpectEquality(t, keys[0].Time, 0.0)
	test.ExpectEquality(t, keys[1].Time, 3.0)

	// keys not matched by the filter remain
	keys = s.DrainKeys(nil)
	expectNames(t, keys, "b", "c")

	// an empty filter matches nothing
	s.RecordKeyDown("x", 4.0)
	keys = s.DrainKeys([]string{})
	test.ExpectEquality(t, len(keys), 0)
	test.ExpectEquality(t, s.Pending(), 1)
}

func TestWheelDelta(t *testing.T) {
	s := buffer.NewStore(&clock.Manual{})
	s.RecordWheel(1, -1)
	s.RecordWheel(2, -1)

	dx, dy := s.TakeWheelDelta()
	test.ExpectEquality(t, dx, 3.0)
	test.ExpectEquality(t, dy, -2.0)

	dx, dy = s.TakeWheelDelta()
	test.ExpectEquality(t, dx, 0.0)
	test.ExpectEquality(t, dy, 0.0)
}

func TestButtonLatency(t *testing.T) {
	src := &clock.Manual{}
	s := buffer.NewStore(src)
	s.SetInputLogging(logger.PermissionFunc(func() bool { return false }))

	s.ResetButtonClocks(userinput.MouseButtonLeft)
	src.Advance(0.25)
	s.RecordButtonDown(userinput.MouseButtonLeft, src.Now())

	// querying later does not change the latency
	src.Advance(4.75)
	state, latency := s.Buttons()
	test.ExpectSuccess(t, state[userinput.MouseButtonLeft])
	test.ExpectApproximate(t, latency[userinput.MouseButtonLeft], 0.25, 0.001)

	// release does not change the latency
	s.RecordButtonUp(userinput.MouseButtonLeft)
	state, latency = s.Buttons()
	test.ExpectFailure(t, state[userinput.MouseButtonLeft])
	test.ExpectApproximate(t, latency[userinput.MouseButtonLeft], 0.25, 0.001)

	// resetting all clocks and pressing again
	s.ResetButtonClocks()
	src.Advance(0.5)
	s.RecordButtonDown(userinput.MouseButtonRight, src.Now())
	state, latency = s.Buttons()
	test.ExpectSuccess(t, state[userinput.MouseButtonRight])
	test.ExpectApproximate(t, latency[userinput.MouseButtonRight], 0.5, 0.001)

	// out of range buttons are ignored
	s.RecordButtonDown(userinput.MouseButton(10), src.Now())
	s.RecordButtonUp(userinput.MouseButton(-1))
}

func TestMoveClock(t *testing.T) {
	src := &clock.Manual{}
	s := buffer.NewStore(src)
	test.ExpectSuccess(t, s.MoveTracking())

	src.Advance(2.0)
	test.ExpectApproximate(t, s.MoveTime(), 2.0, 0.001)

	s.RecordMotion(src.Now())
	test.ExpectEquality(t, s.MoveTime(), 0.0)

	src.Advance(1.0)
	s.StopMoveClock()
	test.ExpectEquality(t, s.MoveTime(), 0.0)

	// motion is ignored when tracking is disabled
	s.RecordMotion(src.Now())
	test.ExpectFailure(t, s.MoveTracking())

	s.ResetMoveClock()
	test.ExpectSuccess(t, s.MoveTracking())
	src.Advance(0.5)
	test.ExpectApproximate(t, s.MoveTime(), 0.5, 0.001)

	s.StartMoveClock()
	test.ExpectEquality(t, s.MoveTime(), 0.0)

	// motion that happened before the pump
	src.Advance(3.0)
	s.RecordMotion(src.Now() - 0.75)
	test.ExpectApproximate(t, s.MoveTime(), 0.75, 0.001)
}

func TestClear(t *testing.T) {
	s := buffer.NewStore(&clock.Manual{})
	s.SetInputLogging(logger.PermissionFunc(func() bool { return false }))
	d := &discarder{}

	s.RecordKeyDown("a", 0)
	test.ExpectSuccess(t, s.Clear(userinput.ScopeMouse, d))
	test.ExpectEquality(t, s.Pending(), 1)

	test.ExpectSuccess(t, s.Clear(userinput.ScopeKeyboard, d))
	test.ExpectEquality(t, s.Pending(), 0)

	s.RecordKeyDown("b", 0)
	test.ExpectSuccess(t, s.Clear(userinput.ScopeAll, nil))
	test.ExpectEquality(t, s.Pending(), 0)

	test.DemandEquality(t, len(d.scopes), 2)
	test.ExpectEquality(t, d.scopes[0], userinput.ScopeMouse)
	test.ExpectEquality(t, d.scopes[1], userinput.ScopeKeyboard)
}

func TestJoystick(t *testing.T) {
	s := buffer.NewStore(&clock.Manual{})
	s.SetInputLogging(logger.PermissionFunc(func() bool { return false }))

	s.RecordJoyAxis(0, 1, 0.5)
	s.RecordJoyAxis(0, 2, 7)
	s.RecordJoyButton(0, 3, true)
	s.RecordJoyHat(0, 0, userinput.DPadLeft)

	j := s.Joystick(0)
	test.DemandEquality(t, len(j.Axes), 3)
	test.ExpectEquality(t, j.Axes[0], 0.0)
	test.ExpectEquality(t, j.Axes[1], 0.5)
	test.ExpectEquality(t, j.Axes[2], 1.0)
	test.DemandEquality(t, len(j.Buttons), 4)
	test.ExpectSuccess(t, j.Buttons[3])
	test.DemandEquality(t, len(j.Hats), 1)
	test.ExpectEquality(t, j.Hats[0], userinput.DPadLeft)

	// the returned state is a copy
	j.Axes[1] = -1
	test.ExpectEquality(t, s.Joystick(0).Axes[1], 0.5)

	// unknown joystick
	test.ExpectEquality(t, len(s.Joystick(5).Axes), 0)
}

func TestInputLogging(t *testing.T) {
	logger.Clear()

	s := buffer.NewStore(&clock.Manual{})
	s.RecordKeyDown("q", 0)

	entries := logger.Copy()
	test.DemandEquality(t, len(entries), 1)
	test.ExpectEquality(t, entries[0].Tag, "keyboard")
	test.ExpectEquality(t, entries[0].Detail, "keypress: q")

	logger.Clear()
	s.SetInputLogging(logger.PermissionFunc(func() bool { return false }))
	s.RecordKeyDown("q", 0)
	test.ExpectEquality(t, len(logger.Copy()), 0)
}
