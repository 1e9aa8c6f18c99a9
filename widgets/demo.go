package widgets

import (
	"errors"

	"microgui/buffer"
	"microgui/graphics"
)

// Demo exercises every primitive, scaled to the bounds it is given.
type Demo[P any] struct {
	Palette Palette[P]
}

func NewDemo[P any](pal Palette[P]) *Demo[P] {
	return &Demo[P]{Palette: pal}
}

func (d *Demo[P]) Render(g *graphics.Graphics[P], b buffer.Buff[P]) error {
	bounds := g.Bounds()
	w, h := bounds.W, bounds.H
	pal := d.Palette

	var errs []error
	try := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	// Lines
	try(g.DrawLine(b, graphics.Pt(20, 20), graphics.Pt(w-20, 20), pal.Ink))
	try(g.DrawLine(b, graphics.Pt(0, 0), graphics.Pt(w, h), pal.Ink))
	try(g.DrawLine(b, graphics.Pt(0, h), graphics.Pt(w, 0), pal.Ink))

	try(g.DrawPolyline(b, []graphics.Point{
		{X: w / 6 * 1, Y: h / 8 * 2},
		{X: w / 6 * 2, Y: h / 8 * 1},
		{X: w / 6 * 3, Y: h / 8 * 2},
		{X: w / 6 * 4, Y: h / 8 * 1},
		{X: w / 6 * 5, Y: h / 8 * 2},
	}, pal.Ink))

	// Circles
	r := w / 4
	cx, cy := (w-r)/2, (h-r)/2
	try(g.DrawEllipse(b, graphics.R(cx-r/5*3, cy, r, r), pal.Red))
	try(g.DrawEllipse(b, graphics.R(cx, cy, r, r), pal.Green))
	try(g.DrawEllipse(b, graphics.R(cx+r/5*3, cy, r, r), pal.Blue))

	// Rectangles
	try(g.DrawRect(b, graphics.R(w/7*1-16, h/8*6-16, w/7*5+32, h/6+32), pal.Ink))
	try(g.FillRect(b, graphics.R(w/7*1, h/8*6, w/7, h/6), pal.Red))
	try(g.FillRect(b, graphics.R(w/7*3, h/8*6, w/7, h/6), pal.Green))
	try(g.FillRect(b, graphics.R(w/7*5, h/8*6, w/7, h/6), pal.Blue))

	return errors.Join(errs...)
}
