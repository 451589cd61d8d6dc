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

package prefs

import (
	"fmt"
	"sort"
)

// Group associates keys with preference values.
type Group struct {
	entries map[string]Pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]Pref),
	}
}

// Add a preference value to the group. Keys must be unique.
func (g *Group) Add(key string, p Pref) error {
	if _, ok := g.entries[key]; ok {
		return fmt.Errorf("prefs: key %s already in group", key)
	}
	g.entries[key] = p
	return nil
}

// Lookup the preference value for the key.
func (g *Group) Lookup(key string) (Pref, bool) {
	p, ok := g.entries[key]
	return p, ok
}

// Keys returns the keys in the group in sorted order.
func (g *Group) Keys() []string {
	keys := make([]string, 0, len(g.entries))
	for k := range g.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all values in the group.
func (g *Group) Reset() error {
	for _, k := range g.Keys() {
		if err := g.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// ApplyCommandLine sets values from the top of the command line stack. Values
// that are used are removed from the stack.
func (g *Group) ApplyCommandLine() error {
	for _, k := range g.Keys() {
		ok, v := GetCommandLinePref(k)
		if !ok {
			continue
		}
		if err := g.entries[k].Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// String returns the group as a command line string.
func (g *Group) String() string {
	s := ""
	for i, k := range g.Keys() {
		if i > 0 {
			s += "; "
		}
		s += fmt.Sprintf("%s::%s", k, g.entries[k].String())
	}
	return s
}
