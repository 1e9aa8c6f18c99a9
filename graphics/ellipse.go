package graphics

import "microgui/buffer"

// DrawEllipse draws the outline of the ellipse inscribed in the box running
// from (r.X, r.Y) to (r.X+r.W, r.Y+r.H), using the integer midpoint
// algorithm. Boxes with a zero semi-axis draw nothing.
func (g *Graphics[P]) DrawEllipse(b buffer.Setter[P], r Rect, p P) error {
	pl := g.plotter(b, p)
	ellipse(r, pl.plot)
	return pl.err
}

func ellipse(r Rect, plot func(x, y int)) {
	left, right := r.X, r.X+r.W
	top, bottom := r.Y, r.Y+r.H

	a := (right - left + 1) / 2
	b := (bottom - top + 1) / 2
	if a <= 0 || b <= 0 {
		return
	}

	a2, b2 := a*a, b*b
	twoA2, twoB2 := 2*a2, 2*b2
	fourA2, fourB2 := 4*a2, 4*b2

	x, y := 0, b
	s := a2*(1-2*b) + twoB2
	t := b2 - twoA2*(2*b-1)

	quadrants := func() {
		plot(right+x-a, bottom+y-b)
		plot(left-x+a, bottom+y-b)
		plot(left-x+a, top-y+b)
		plot(right+x-a, top-y+b)
	}

	quadrants()
	for {
		switch {
		case s < 0:
			s += twoB2 * (2*x + 3)
			t += fourB2 * (x + 1)
			x++
		case t < 0:
			s += twoB2*(2*x+3) - fourA2*(y-1)
			t += fourB2*(x+1) - twoA2*(2*y-3)
			x++
			y--
		default:
			s -= fourA2 * (y - 1)
			t -= twoA2 * (2*y - 3)
			y--
		}
		quadrants()
		if y <= 0 {
			break
		}
	}
	// Flat ellipses reach y == 0 before x == a. Stopping there, as the
	// plain midpoint walk does, leaves the ends of the major axis open, so
	// the remaining x steps are plotted on the axis.
	for x < a {
		x++
		quadrants()
	}
}
