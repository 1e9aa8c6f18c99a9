// Package graphics rasterizes lines, rectangles, polylines and ellipses
// onto any buffer.Setter through a clipping, translating context.
//
// All arithmetic is integer only. A context clips against its own width
// and height in local coordinates, then offsets the surviving pixels into
// the target buffer.
package graphics

import "microgui/buffer"

// Graphics is the rendering context handed to widgets. It shifts and clips
// rendering to a rectangle of the target buffer; it never owns the buffer.
type Graphics[P any] struct {
	x, y, w, h int
}

// New creates a context with the given offset and limits.
func New[P any](x, y, w, h int) *Graphics[P] {
	return &Graphics[P]{x: x, y: y, w: w, h: h}
}

// Bounds returns the context rectangle in buffer coordinates.
func (g *Graphics[P]) Bounds() Rect {
	return Rect{X: g.x, Y: g.y, W: g.w, H: g.h}
}

// SetBounds replaces the context rectangle. Scene graphs push a child
// rectangle before rendering a subtree and restore the old one afterwards.
func (g *Graphics[P]) SetBounds(r Rect) {
	g.x, g.y, g.w, g.h = r.X, r.Y, r.W, r.H
}

// Set writes a single pixel at local coordinate (x, y). Pixels outside
// [0,w) x [0,h) are dropped without error.
func (g *Graphics[P]) Set(b buffer.Setter[P], x, y int, p P) error {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return nil
	}
	return b.Set(g.x+x, g.y+y, p)
}

// plotter collects the first error of a primitive while letting it keep
// drawing the remaining pixels.
type plotter[P any] struct {
	g   *Graphics[P]
	b   buffer.Setter[P]
	p   P
	err error
}

func (pl *plotter[P]) plot(x, y int) {
	if err := pl.g.Set(pl.b, x, y, pl.p); err != nil && pl.err == nil {
		pl.err = err
	}
}

func (g *Graphics[P]) plotter(b buffer.Setter[P], p P) *plotter[P] {
	return &plotter[P]{g: g, b: b, p: p}
}
