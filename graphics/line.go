package graphics

import "microgui/buffer"

// DrawLine draws a line between p1 and p2, both included, using
// Bresenham's algorithm.
//
// The walk always starts at the endpoint with the smaller coordinate on the
// major axis, so swapping p1 and p2 plots the same pixels.
func (g *Graphics[P]) DrawLine(b buffer.Setter[P], p1, p2 Point, p P) error {
	pl := g.plotter(b, p)
	line(p1, p2, pl.plot)
	return pl.err
}

// line calls plot once for every pixel of the segment.
func line(p1, p2 Point, plot func(x, y int)) {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	xMajor := abs(dx) > abs(dy)
	if (xMajor && dx < 0) || (!xMajor && dy < 0) {
		p1, p2 = p2, p1
		dx, dy = -dx, -dy
	}

	sx, sy := sign(dx), sign(dy)
	dx, dy = abs(dx), abs(dy)

	a := p1
	// The loop advances before comparing, so the stop coordinate is one
	// step past p2.
	end := Point{X: p2.X + sx, Y: p2.Y + sy}

	if xMajor {
		accum := dx / 2
		for {
			plot(a.X, a.Y)
			accum -= dy
			if accum < 0 {
				accum += dx
				a.Y += sy
			}
			a.X += sx
			if a.X == end.X {
				break
			}
		}
		return
	}

	accum := dy / 2
	for {
		plot(a.X, a.Y)
		accum -= dx
		if accum < 0 {
			accum += dy
			a.X += sx
		}
		a.Y += sy
		if a.Y == end.Y {
			break
		}
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
