package widgets

import (
	"math"

	"microgui/buffer"
	"microgui/graphics"
)

// Gauge is a horizontal bar filled in proportion to Value, which should
// return a number in [0, 1]. Values outside that range are clamped.
type Gauge[P any] struct {
	Value func() float64
	Ink   P
}

func NewGauge[P any](ink P, value func() float64) *Gauge[P] {
	return &Gauge[P]{Value: value, Ink: ink}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (gg *Gauge[P]) Render(g *graphics.Graphics[P], b buffer.Buff[P]) error {
	bounds := g.Bounds()
	if err := g.DrawRect(b, graphics.R(0, 0, bounds.W, bounds.H), gg.Ink); err != nil {
		return err
	}
	v := 0.0
	if gg.Value != nil {
		v = clamp01(gg.Value())
	}
	inner := bounds.W - 2
	fill := int(math.Round(float64(inner) * v))
	return g.FillRect(b, graphics.R(1, 1, fill, bounds.H-2), gg.Ink)
}
