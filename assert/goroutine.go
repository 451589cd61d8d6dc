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

// Package assert contains checks that are only useful during development and
// testing.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identifier for the current goroutine. The result
// is different between goroutines and consistent for a given goroutine.
//
// It should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Confined records the goroutine that created it.
type Confined struct {
	owner string
	id    uint64
}

// NewConfined returns a Confined value for the current goroutine. The owner
// string is used in the panic message.
func NewConfined(owner string) Confined {
	return Confined{
		owner: owner,
		id:    GetGoRoutineID(),
	}
}

// Check panics if called from a goroutine other than the one that created
// the Confined value.
func (c Confined) Check() {
	if id := GetGoRoutineID(); id != c.id {
		panic(fmt.Sprintf("%s: created on goroutine %d used on goroutine %d", c.owner, c.id, id))
	}
}
