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

package sdlinput

import (
	"fmt"

	"github.com/jetsetilly/rtinput/pointer"
	"github.com/jetsetilly/rtinput/units"
	"github.com/veandco/go-sdl2/sdl"
)

// size of crosshair in pixels, from centre to the end of each arm
const crosshairSize = 8

// Canvas implements the pointer.Canvas interface for an SDL window.
type Canvas struct {
	units.Window
	renderer *sdl.Renderer
	colour   sdl.Color
}

// NewCanvas creates a Canvas for the backend's window. The window argument
// describes the units used by the Overlay and must be the same size as the
// backend's window.
func NewCanvas(b *Backend, win units.Window) (*Canvas, error) {
	rnd, err := b.window.GetRenderer()
	if err != nil || rnd == nil {
		rnd, err = sdl.CreateRenderer(b.window, -1, sdl.RENDERER_ACCELERATED)
		if err != nil {
			return nil, fmt.Errorf("sdl: %w", err)
		}
	}

	return &Canvas{
		Window:   win,
		renderer: rnd,
		colour:   sdl.Color{R: 255, G: 255, B: 255, A: 255},
	}, nil
}

// SetColour sets the colour used for subsequent drawing.
func (c *Canvas) SetColour(col sdl.Color) {
	c.colour = col
}

// point converts a position in window units to a renderer point.
func (c *Canvas) point(v units.Vec) (sdl.Point, error) {
	pix, err := units.ToPixels(c.Window, v)
	if err != nil {
		return sdl.Point{}, err
	}
	x, y := units.ToDevice(c.Window, pix)
	return sdl.Point{X: int32(x), Y: int32(y)}, nil
}

func (c *Canvas) lines(points []sdl.Point) error {
	if err := c.renderer.SetDrawColor(c.colour.R, c.colour.G, c.colour.B, c.colour.A); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	if err := c.renderer.DrawLines(points); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

type outline struct {
	c      *Canvas
	points []sdl.Point
}

func (o *outline) Draw() error {
	return o.c.lines(o.points)
}

// NewOutline implements the pointer.Canvas interface.
func (c *Canvas) NewOutline(vertices []units.Vec) (pointer.Drawable, error) {
	o := &outline{c: c}
	for _, v := range vertices {
		p, err := c.point(v)
		if err != nil {
			return nil, err
		}
		o.points = append(o.points, p)
	}
	return o, nil
}

type crosshair struct {
	c   *Canvas
	pos sdl.Point
}

func (x *crosshair) SetPos(pos units.Vec) error {
	p, err := x.c.point(pos)
	if err != nil {
		return err
	}
	x.pos = p
	return nil
}

func (x *crosshair) Draw() error {
	err := x.c.lines([]sdl.Point{
		{X: x.pos.X - crosshairSize, Y: x.pos.Y},
		{X: x.pos.X + crosshairSize, Y: x.pos.Y},
	})
	if err != nil {
		return err
	}
	return x.c.lines([]sdl.Point{
		{X: x.pos.X, Y: x.pos.Y - crosshairSize},
		{X: x.pos.X, Y: x.pos.Y + crosshairSize},
	})
}

// NewCrosshair implements the pointer.Canvas interface.
func (c *Canvas) NewCrosshair() (pointer.Pointer, error) {
	return &crosshair{c: c}, nil
}
