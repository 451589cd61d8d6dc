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
	"errors"
	"testing"

	"github.com/jetsetilly/rtinput/prefs"
	"github.com/jetsetilly/rtinput/test"
)

func TestBool(t *testing.T) {
	var p prefs.Bool
	test.ExpectEquality(t, p.String(), "false")
	test.ExpectSuccess(t, p.Set(true))
	test.ExpectEquality(t, p.Get().(bool), true)
	test.ExpectSuccess(t, p.Set("TRUE"))
	test.ExpectEquality(t, p.Get().(bool), true)
	test.ExpectSuccess(t, p.Set("yes"))
	test.ExpectEquality(t, p.Get().(bool), false)
	test.ExpectFailure(t, p.Set(1))
}

func TestInt(t *testing.T) {
	var p prefs.Int
	test.ExpectEquality(t, p.String(), "0")
	test.ExpectSuccess(t, p.Set("42"))
	test.ExpectEquality(t, p.Get().(int), 42)
	test.ExpectSuccess(t, p.Set(uint32(7)))
	test.ExpectEquality(t, p.Get().(int), 7)
	test.ExpectFailure(t, p.Set("forty"))
	test.ExpectEquality(t, p.Get().(int), 7)
}

func TestFloat(t *testing.T) {
	var p prefs.Float
	test.ExpectEquality(t, p.String(), "0")
	test.ExpectSuccess(t, p.Set("0.25"))
	test.ExpectEquality(t, p.Get().(float64), 0.25)
	test.ExpectEquality(t, p.String(), "0.25")
	test.ExpectSuccess(t, p.Set(2))
	test.ExpectEquality(t, p.Get().(float64), 2.0)
	test.ExpectSuccess(t, p.Reset())
	test.ExpectEquality(t, p.Get().(float64), 0.0)
}

func TestString(t *testing.T) {
	var p prefs.String
	test.ExpectSuccess(t, p.Set("rtinput"))
	test.ExpectEquality(t, p.String(), "rtinput")
	p.SetMaxLen(2)
	test.ExpectEquality(t, p.String(), "rt")
	test.ExpectSuccess(t, p.Set("abc"))
	test.ExpectEquality(t, p.String(), "ab")
}

func TestList(t *testing.T) {
	var p prefs.List
	test.ExpectEquality(t, len(p.Items()), 0)
	test.ExpectSuccess(t, p.Set(" sdl, ,x11 "))
	test.ExpectEquality(t, p.String(), "sdl,x11")

	// items is a copy
	l := p.Items()
	l[0] = "terminal"
	test.ExpectEquality(t, p.String(), "sdl,x11")

	test.ExpectSuccess(t, p.Set([]string{"terminal"}))
	test.ExpectEquality(t, p.String(), "terminal")
	test.ExpectFailure(t, p.Set(10))
}

func TestHooks(t *testing.T) {
	var p prefs.Int

	var post int
	p.SetHookPost(func(v prefs.Value) error {
		post = v.(int)
		return nil
	})
	p.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})

	test.ExpectSuccess(t, p.Set(10))
	test.ExpectEquality(t, post, 10)

	// pre hook prevents the change
	test.ExpectFailure(t, p.Set(-1))
	test.ExpectEquality(t, p.Get().(int), 10)
	test.ExpectEquality(t, post, 10)
}
