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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The "Expect" functions report a failure and allow the test to continue. The
// "Demand" functions are fatal to the test and should be used when a value is
// relied upon by the rest of the test, for example the length of a slice that
// is about to be indexed.
//
// ExpectSuccess and ExpectFailure test for success and failure under generic
// conditions. A nil value is considered a success because of how errors are
// conventionally returned.
//
// ExpectApproximate is useful for timing values, which in this module are
// float64 seconds.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output, for example from the logger.
package test
