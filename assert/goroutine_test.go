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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/rtinput/assert"
	"github.com/jetsetilly/rtinput/test"
)

func TestGoRoutineID(t *testing.T) {
	id := assert.GetGoRoutineID()
	test.ExpectInequality(t, id, 0)
	test.ExpectEquality(t, assert.GetGoRoutineID(), id)

	other := make(chan uint64)
	go func() {
		other <- assert.GetGoRoutineID()
	}()
	test.ExpectInequality(t, <-other, id)
}

func TestConfined(t *testing.T) {
	c := assert.NewConfined("test")

	// same goroutine
	c.Check()

	panicked := make(chan bool)
	go func() {
		defer func() {
			panicked <- recover() != nil
		}()
		c.Check()
	}()
	test.ExpectSuccess(t, <-panicked)
}
