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

package backend

import (
	"errors"
	"testing"

	"github.com/jetsetilly/rtinput/config"
	"github.com/jetsetilly/rtinput/curated"
	"github.com/jetsetilly/rtinput/test"
	"github.com/jetsetilly/rtinput/userinput"
)

// stub embeds the interface. only Name() is called by the tests
type stub struct {
	userinput.Backend
	name string
}

func (s stub) Name() string {
	return s.name
}

func replaceOpeners(t *testing.T, available ...string) *[]string {
	t.Helper()

	tried := &[]string{}

	prev := openers
	t.Cleanup(func() {
		openers = prev
	})

	openers = make(map[string]opener)
	for _, name := range config.BackendNames {
		openers[name] = func(_ *config.Config) (userinput.Backend, error) {
			*tried = append(*tried, name)
			for _, a := range available {
				if a == name {
					return stub{name: name}, nil
				}
			}
			return nil, errors.New("not here")
		}
	}

	return tried
}

func TestOpenOrder(t *testing.T) {
	tried := replaceOpeners(t, "x11", "terminal")

	cfg := config.Default()
	test.ExpectSuccess(t, cfg.Backends.Set("terminal, sdl, x11"))

	b, err := Open(cfg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.Name(), "terminal")
	test.ExpectEquality(t, len(*tried), 1)
}

func TestOpenFallback(t *testing.T) {
	tried := replaceOpeners(t, "x11")

	b, err := Open(config.Default())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.Name(), "x11")
	test.DemandEquality(t, len(*tried), 2)
	test.ExpectEquality(t, (*tried)[0], "sdl")
}

func TestOpenUnavailable(t *testing.T) {
	tried := replaceOpeners(t)

	cfg := config.Default()
	test.ExpectSuccess(t, cfg.Backends.Set("sdl,terminal"))

	_, err := Open(cfg)
	test.ExpectSuccess(t, curated.Is(err, userinput.BackendUnavailable))
	test.ExpectEquality(t, err.Error(), "userinput: no backend available (tried sdl, terminal)")
	test.ExpectEquality(t, len(*tried), 2)
}
