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

//go:build !release

package paths

import (
	"os"
	"testing"
	"time"

	"github.com/jetsetilly/rtinput/test"
)

func TestPaths(t *testing.T) {
	t.Chdir(t.TempDir())

	pth, err := ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".rtinput/foo/bar/baz")

	// directory has been created
	_, err = os.Stat(".rtinput/foo/bar")
	test.ExpectSuccess(t, err)

	pth, err = ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".rtinput/foo/bar")

	pth, err = ResourcePath("", "rtinput.yml")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".rtinput/rtinput.yml")

	pth, err = ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".rtinput")
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("inputprobe", "sdl", n), "inputprobe_sdl_20240305_140709")
	test.ExpectEquality(t, uniqueFilename("inputprobe", "  ", n), "inputprobe_20240305_140709")
}
