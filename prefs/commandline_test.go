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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/rtinput/prefs"
	"github.com/jetsetilly/rtinput/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// single value but with additional space
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// more than one key/value in the prefs string. remaining string will
	// will be sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// check invalid prefs string
	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// check (partically) invalid prefs string
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	// get prefs value that doesn't exist after pushing a parially invalid prefs string
	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineStack(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("foo::bar")

	// add another command line group
	prefs.PushCommandLineStack("baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineGroup(t *testing.T) {
	var poll prefs.Float
	var units prefs.String
	var backends prefs.List

	g := prefs.NewGroup()
	test.ExpectSuccess(t, g.Add("wait_poll", &poll))
	test.ExpectSuccess(t, g.Add("window.units", &units))
	test.ExpectSuccess(t, g.Add("backends", &backends))
	test.ExpectFailure(t, g.Add("backends", &backends))

	prefs.PushCommandLineStack("wait_poll::0.5; backends::x11, terminal; unknown::1")
	test.ExpectSuccess(t, g.ApplyCommandLine())
	test.ExpectEquality(t, poll.Get().(float64), 0.5)
	test.ExpectEquality(t, units.String(), "")
	test.ExpectEquality(t, backends.String(), "x11,terminal")

	// used values are removed from the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::1")

	test.ExpectEquality(t, g.String(), "backends::x11,terminal; wait_poll::0.5; window.units::")

	// bad value
	prefs.PushCommandLineStack("wait_poll::fast")
	test.ExpectFailure(t, g.ApplyCommandLine())
	prefs.PopCommandLineStack()
}
