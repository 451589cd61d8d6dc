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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are the "expected" errors of the input system: a missing
// backend, an operation the active backend cannot perform, an unusable
// pointer object. Anything else is an uncurated error and should be treated
// as unexpected.
//
// Curated errors are created with the Errorf() function. The first argument
// is a pattern rather than a format string, because the pattern identifies
// the error. Packages export their patterns as constants:
//
//	const UnsupportedOperation = "%s: %s not supported"
//
//	err := curated.Errorf(UnsupportedOperation, "terminal", "SetMousePos")
//	if curated.Is(err, UnsupportedOperation) {
//		// carry on without the feature
//	}
//
// Has() is similar to Is() but searches the chain of curated errors that were
// passed as values to Errorf().
//
// The Error() function normalises the message by removing duplicate adjacent
// parts. This means a package can wrap an error with its own prefix without
// worrying whether the error already carries that prefix:
//
//	curated.Errorf("sdl: %v", curated.Errorf("sdl: no window"))
//
// prints "sdl: no window".
package curated
