package widgets

import (
	"microgui/buffer"
	"microgui/graphics"
)

// Bitmap is an 8x8 monochrome image, one byte per row, most significant
// bit on the left.
type Bitmap [8]byte

// Icon draws a Bitmap with its top left corner at the layer origin.
type Icon[P any] struct {
	Bitmap Bitmap
	Ink    P
}

func NewIcon[P any](bm Bitmap, ink P) *Icon[P] {
	return &Icon[P]{Bitmap: bm, Ink: ink}
}

func (ic *Icon[P]) Render(g *graphics.Graphics[P], b buffer.Buff[P]) error {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if (ic.Bitmap[row]>>(7-col))&1 == 1 {
				if err := g.Set(b, col, row, ic.Ink); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
