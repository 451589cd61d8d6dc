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

package units

import "github.com/jetsetilly/rtinput/curated"

// the small-angle approximation of one degree of visual angle, expressed as a
// fraction of viewing distance
const cmPerDegPerCm = 0.017455

func cmPerPix(mon Monitor) (float64, error) {
	if mon.WidthCm <= 0 || mon.WidthPix <= 0 {
		return 0, curated.Errorf(Uncalibrated, "cm")
	}
	return mon.WidthCm / float64(mon.WidthPix), nil
}

func cmPerDeg(mon Monitor) (float64, error) {
	if mon.DistanceCm <= 0 {
		return 0, curated.Errorf(Uncalibrated, "deg")
	}
	return mon.DistanceCm * cmPerDegPerCm, nil
}

// ToWindowUnits converts a pixel position to the window's units.
func ToWindowUnits(win Window, pix Vec) (Vec, error) {
	switch win.Units() {
	case Pix:
		return pix, nil

	case Norm:
		w, h := win.Size()
		return Vec{X: pix.X * 2.0 / float64(w), Y: pix.Y * 2.0 / float64(h)}, nil

	case Cm:
		c, err := cmPerPix(win.Monitor())
		if err != nil {
			return Vec{}, err
		}
		return Vec{X: pix.X * c, Y: pix.Y * c}, nil

	case Deg:
		c, err := cmPerPix(win.Monitor())
		if err != nil {
			return Vec{}, err
		}
		d, err := cmPerDeg(win.Monitor())
		if err != nil {
			return Vec{}, err
		}
		return Vec{X: pix.X * c / d, Y: pix.Y * c / d}, nil
	}

	return Vec{}, curated.Errorf(UnknownUnits, win.Units())
}

// ToPixels converts a position in the window's units to pixels.
func ToPixels(win Window, v Vec) (Vec, error) {
	switch win.Units() {
	case Pix:
		return v, nil

	case Norm:
		w, h := win.Size()
		return Vec{X: v.X * float64(w) / 2.0, Y: v.Y * float64(h) / 2.0}, nil

	case Cm:
		c, err := cmPerPix(win.Monitor())
		if err != nil {
			return Vec{}, err
		}
		return Vec{X: v.X / c, Y: v.Y / c}, nil

	case Deg:
		c, err := cmPerPix(win.Monitor())
		if err != nil {
			return Vec{}, err
		}
		d, err := cmPerDeg(win.Monitor())
		if err != nil {
			return Vec{}, err
		}
		return Vec{X: v.X * d / c, Y: v.Y * d / c}, nil
	}

	return Vec{}, curated.Errorf(UnknownUnits, win.Units())
}

// FromDevice converts a device position, with the origin at the top-left of
// the window and y increasing downwards, to a centred pixel position with y
// increasing upwards.
func FromDevice(win Window, x, y float64) Vec {
	w, h := win.Size()
	return Vec{X: x - float64(w)/2.0, Y: float64(h)/2.0 - y}
}

// ToDevice is the inverse of FromDevice.
func ToDevice(win Window, v Vec) (x, y float64) {
	w, h := win.Size()
	return v.X + float64(w)/2.0, float64(h)/2.0 - v.Y
}
