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

// Package units converts positions between device pixels and the unit system
// configured for a window. Pixel positions given to and returned by this
// package have their origin at the centre of the window with y increasing
// upwards.
//
// Physical units (cm and deg) require the monitor to have been calibrated.
package units

import (
	"math"
	"strings"

	"github.com/jetsetilly/rtinput/curated"
)

// Sentinal error patterns.
const (
	UnknownUnits = "units: unknown units (%s)"
	Uncalibrated = "units: monitor not calibrated for %s"
)

// Units is the unit system used by a window.
type Units int

// List of valid Units values.
const (
	Pix Units = iota
	Norm
	Cm
	Deg
)

func (u Units) String() string {
	switch u {
	case Pix:
		return "pix"
	case Norm:
		return "norm"
	case Cm:
		return "cm"
	case Deg:
		return "deg"
	}
	return "unknown"
}

// Parse a units string. Case insensitive.
func Parse(s string) (Units, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pix", "pixels":
		return Pix, nil
	case "norm":
		return Norm, nil
	case "cm":
		return Cm, nil
	case "deg", "degs":
		return Deg, nil
	}
	return Pix, curated.Errorf(UnknownUnits, s)
}

// Vec is a position or displacement.
type Vec struct {
	X, Y float64
}

// Add returns v+w.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v-w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

// Distance returns the straight-line distance between a and b.
func Distance(a, b Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Monitor describes the physical display. Required for cm and deg units.
type Monitor struct {
	// physical width of the visible screen area
	WidthCm float64

	// distance from the observer to the screen
	DistanceCm float64

	// horizontal resolution of the screen
	WidthPix int
}

// Window is the part of the rendering system that the input system needs to
// know about.
type Window interface {
	// Size of window in pixels
	Size() (w, h int)
	Units() Units
	Monitor() Monitor
}

// Geometry is a simple implementation of Window.
type Geometry struct {
	Width, Height int
	Unit          Units
	Mon           Monitor
}

// Size implements the Window interface.
func (g Geometry) Size() (int, int) {
	return g.Width, g.Height
}

// Units implements the Window interface.
func (g Geometry) Units() Units {
	return g.Unit
}

// Monitor implements the Window interface.
func (g Geometry) Monitor() Monitor {
	return g.Mon
}
