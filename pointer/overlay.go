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

package pointer

import (
	"github.com/jetsetilly/rtinput/curated"
	"github.com/jetsetilly/rtinput/event"
	"github.com/jetsetilly/rtinput/units"
	"github.com/jetsetilly/rtinput/userinput"
)

// Sentinal error patterns.
const (
	InvalidPointer = "pointer: %T needs Draw() and SetPos() methods"
)

// Limits specifies the edges of the virtual box. A nil edge is left unchanged
// by SetLimit(), or takes the edge of the window if it has never been set.
type Limits struct {
	Left   *float64
	Top    *float64
	Right  *float64
	Bottom *float64
}

// Edge is a convenience function for setting a field of the Limits type.
func Edge(v float64) *float64 {
	return &v
}

// VirtualBox is the area within which the Overlay can move.
type VirtualBox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Overlay is a software pointer constrained to a virtual box.
type Overlay struct {
	mouse  *event.Mouse
	canvas Canvas

	pointer Pointer
	outline Drawable

	box      VirtualBox
	hasEdges [4]bool

	showLimits bool
	visible    bool

	x, y float64
}

type options struct {
	limits     Limits
	showLimits bool
	pointer    any
	pos        *units.Vec
	visible    bool
}

// Option is used to configure a new Overlay.
type Option func(*options)

// WithLimits sets the edges of the virtual box.
func WithLimits(l Limits) Option {
	return func(o *options) {
		o.limits = l
	}
}

// WithShowLimits causes the outline of the virtual box to be drawn.
func WithShowLimits(show bool) Option {
	return func(o *options) {
		o.showLimits = show
	}
}

// WithPointer sets the pointer graphic. The value must implement the Pointer
// interface. By default the Canvas' crosshair is used.
func WithPointer(p any) Option {
	return func(o *options) {
		o.pointer = p
	}
}

// WithPos sets the initial position of the Overlay. The default position is
// the centre of the window.
func WithPos(pos units.Vec) Option {
	return func(o *options) {
		o.pos = &pos
	}
}

// WithVisible sets whether the pointer graphic is drawn.
func WithVisible(visible bool) Option {
	return func(o *options) {
		o.visible = visible
	}
}

// NewOverlay is the preferred method of initialisation for the Overlay type.
// The system cursor is hidden.
func NewOverlay(mouse *event.Mouse, canvas Canvas, opts ...Option) (*Overlay, error) {
	opt := options{visible: true}
	for _, o := range opts {
		o(&opt)
	}

	ov := &Overlay{
		mouse:      mouse,
		canvas:     canvas,
		showLimits: opt.showLimits,
		visible:    opt.visible,
	}

	if opt.pointer != nil {
		if err := ov.SetPointer(opt.pointer); err != nil {
			return nil, err
		}
	} else {
		p, err := canvas.NewCrosshair()
		if err != nil {
			return nil, err
		}
		ov.pointer = p
	}

	_ = mouse.SetVisible(false)

	if err := ov.SetLimit(opt.limits); err != nil {
		return nil, err
	}

	if opt.pos != nil {
		ov.x, ov.y = opt.pos.X, opt.pos.Y
	} else {
		ov.x, ov.y = 0, 0
	}

	return ov, nil
}

// Mouse returns the wrapped event.Mouse.
func (ov *Overlay) Mouse() *event.Mouse {
	return ov.mouse
}

// Limits returns the current virtual box.
func (ov *Overlay) Limits() VirtualBox {
	return ov.box
}

// GetPos returns the position of the Overlay after moving it by the relative
// motion of the mouse.
func (ov *Overlay) GetPos() (units.Vec, error) {
	rel, err := ov.mouse.GetRel()
	if err != nil {
		return units.Vec{X: ov.x, Y: ov.y}, err
	}

	ov.x = min(max(ov.x+rel.X, ov.box.Left), ov.box.Right)
	ov.y = min(max(ov.y+rel.Y, ov.box.Bottom), ov.box.Top)

	return units.Vec{X: ov.x, Y: ov.y}, nil
}

// SetPos moves the pointer graphic. If pos is nil then the graphic is moved to
// the result of GetPos().
func (ov *Overlay) SetPos(pos *units.Vec) error {
	if pos == nil {
		p, err := ov.GetPos()
		if err != nil {
			return err
		}
		pos = &p
	}
	return ov.pointer.SetPos(*pos)
}

// Draw the Overlay. Should be called once per frame.
func (ov *Overlay) Draw() error {
	if err := ov.SetPos(nil); err != nil {
		return err
	}

	if ov.showLimits && ov.outline != nil {
		if err := ov.outline.Draw(); err != nil {
			return err
		}
	}

	if ov.visible {
		return ov.pointer.Draw()
	}

	return nil
}

// SetPointer changes the pointer graphic. The value must implement the Pointer
// interface.
func (ov *Overlay) SetPointer(obj any) error {
	p, ok := obj.(Pointer)
	if !ok {
		return curated.Errorf(InvalidPointer, obj)
	}
	ov.pointer = p
	return nil
}

// SetLimit changes the edges of the virtual box. Edges that have never been
// set are taken from the size of the window.
//
// The position of the Overlay is re-synchronised with the position of the
// system cursor.
func (ov *Overlay) SetLimit(l Limits) error {
	w, h := ov.canvas.Size()
	half, err := units.ToWindowUnits(ov.canvas, units.Vec{X: float64(w) / 2, Y: float64(h) / 2})
	if err != nil {
		return err
	}

	edges := []struct {
		v    *float64
		edge *float64
		def  float64
	}{
		{v: l.Left, edge: &ov.box.Left, def: -half.X},
		{v: l.Top, edge: &ov.box.Top, def: half.Y},
		{v: l.Right, edge: &ov.box.Right, def: half.X},
		{v: l.Bottom, edge: &ov.box.Bottom, def: -half.Y},
	}

	for i, e := range edges {
		if e.v != nil {
			*e.edge = *e.v
			ov.hasEdges[i] = true
		} else if !ov.hasEdges[i] {
			*e.edge = e.def
			ov.hasEdges[i] = true
		}
	}

	ov.outline, err = ov.canvas.NewOutline([]units.Vec{
		{X: ov.box.Left, Y: ov.box.Top},
		{X: ov.box.Right, Y: ov.box.Top},
		{X: ov.box.Right, Y: ov.box.Bottom},
		{X: ov.box.Left, Y: ov.box.Bottom},
		{X: ov.box.Left, Y: ov.box.Top},
	})
	if err != nil {
		return err
	}

	_ = ov.mouse.SetVisible(true)
	pos, err := ov.mouse.GetPos()
	_ = ov.mouse.SetVisible(false)
	if err != nil {
		return err
	}

	ov.x, ov.y = pos.X, pos.Y

	return nil
}

// SetShowLimits sets whether the outline of the virtual box is drawn.
func (ov *Overlay) SetShowLimits(show bool) {
	ov.showLimits = show
}

// GetVisible returns whether the pointer graphic is drawn.
func (ov *Overlay) GetVisible() bool {
	return ov.visible
}

// SetVisible sets whether the pointer graphic is drawn. The system cursor is
// not affected.
func (ov *Overlay) SetVisible(visible bool) {
	ov.visible = visible
}

// GetRel forwards to the wrapped event.Mouse.
func (ov *Overlay) GetRel() (units.Vec, error) {
	return ov.mouse.GetRel()
}

// GetWheelRel forwards to the wrapped event.Mouse.
func (ov *Overlay) GetWheelRel() (float64, float64) {
	return ov.mouse.GetWheelRel()
}

// MouseMoved forwards to the wrapped event.Mouse.
func (ov *Overlay) MouseMoved(distance event.Distance, reset event.Reset) (bool, error) {
	return ov.mouse.MouseMoved(distance, reset)
}

// MouseMoveTime forwards to the wrapped event.Mouse.
func (ov *Overlay) MouseMoveTime() float64 {
	return ov.mouse.MouseMoveTime()
}

// GetPressed forwards to the wrapped event.Mouse.
func (ov *Overlay) GetPressed() ([userinput.NumMouseButtons]bool, error) {
	return ov.mouse.GetPressed()
}

// GetPressedTimes forwards to the wrapped event.Mouse.
func (ov *Overlay) GetPressedTimes() ([userinput.NumMouseButtons]bool, [userinput.NumMouseButtons]float64, error) {
	return ov.mouse.GetPressedTimes()
}

// ClickReset forwards to the wrapped event.Mouse.
func (ov *Overlay) ClickReset(buttons ...userinput.MouseButton) {
	ov.mouse.ClickReset(buttons...)
}
