package widgets

import (
	"microgui/buffer"
	"microgui/graphics"
)

// Chart plots the most recent samples as a polyline, newest on the right.
// Samples are expected in [0, 1]; 0 is the bottom row.
type Chart[P any] struct {
	Ink     P
	samples []float64
	size    int
}

// NewChart keeps at most size samples.
func NewChart[P any](ink P, size int) *Chart[P] {
	return &Chart[P]{Ink: ink, size: size}
}

// Push appends a sample, dropping the oldest once the chart is full.
func (c *Chart[P]) Push(v float64) {
	c.samples = append(c.samples, clamp01(v))
	if len(c.samples) > c.size {
		c.samples = c.samples[len(c.samples)-c.size:]
	}
}

func (c *Chart[P]) Len() int { return len(c.samples) }

func (c *Chart[P]) Render(g *graphics.Graphics[P], b buffer.Buff[P]) error {
	bounds := g.Bounds()
	if len(c.samples) == 0 || bounds.W <= 0 || bounds.H <= 0 {
		return nil
	}
	step := 1
	if c.size > 1 {
		step = max(1, (bounds.W-1)/(c.size-1))
	}
	x0 := bounds.W - 1 - step*(len(c.samples)-1)
	pts := make([]graphics.Point, len(c.samples))
	for i, v := range c.samples {
		pts[i] = graphics.Point{
			X: x0 + step*i,
			Y: bounds.H - 1 - int(v*float64(bounds.H-1)+0.5),
		}
	}
	if len(pts) == 1 {
		return g.Set(b, pts[0].X, pts[0].Y, c.Ink)
	}
	return g.DrawPolyline(b, pts, c.Ink)
}
