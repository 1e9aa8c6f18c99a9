package graphics

import "microgui/buffer"

// DrawRect draws the one pixel wide outline of r. Corners are plotted twice.
func (g *Graphics[P]) DrawRect(b buffer.Setter[P], r Rect, p P) error {
	if r.Empty() {
		return nil
	}
	pl := g.plotter(b, p)
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X; x < r.X+r.W; x++ {
		pl.plot(x, r.Y)
		pl.plot(x, bottom)
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		pl.plot(r.X, y)
		pl.plot(right, y)
	}
	return pl.err
}

// FillRect plots every pixel of r.
func (g *Graphics[P]) FillRect(b buffer.Setter[P], r Rect, p P) error {
	pl := g.plotter(b, p)
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			pl.plot(r.X+dx, r.Y+dy)
		}
	}
	return pl.err
}

// DrawPolyline draws a line between each consecutive pair of points.
// Fewer than two points draw nothing.
func (g *Graphics[P]) DrawPolyline(b buffer.Setter[P], points []Point, p P) error {
	pl := g.plotter(b, p)
	for i := 1; i < len(points); i++ {
		line(points[i-1], points[i], pl.plot)
	}
	return pl.err
}

// DrawPolygon is DrawPolyline with the last point joined back to the first.
func (g *Graphics[P]) DrawPolygon(b buffer.Setter[P], points []Point, p P) error {
	if len(points) < 2 {
		return nil
	}
	pl := g.plotter(b, p)
	for i := 1; i < len(points); i++ {
		line(points[i-1], points[i], pl.plot)
	}
	line(points[len(points)-1], points[0], pl.plot)
	return pl.err
}
