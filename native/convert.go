// Package native connects buffers to real displays: pixel conversion for
// host surfaces, BMP snapshots, a serial monochrome LCD, and an SDL2
// preview window (build tag sdl).
package native

import (
	"image"
	"image/color"

	"microgui/buffer"
	"microgui/pixel"
)

// Policy decides what colour a monochrome bit becomes on a host surface.
// The core only stores ink/blank; polarity belongs to the backend.
type Policy int

const (
	// InkBlack shows set bits as black on a white background.
	InkBlack Policy = iota
	// InkWhite shows set bits as white on a black background.
	InkWhite
)

var (
	opaqueBlack = color.RGBA{0x00, 0x00, 0x00, 0xff}
	opaqueWhite = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Mono returns the conversion for monochrome pixels under the policy.
func (pol Policy) Mono() func(pixel.BW) color.RGBA {
	ink, blank := opaqueBlack, opaqueWhite
	if pol == InkWhite {
		ink, blank = blank, ink
	}
	return func(p pixel.BW) color.RGBA {
		if p {
			return ink
		}
		return blank
	}
}

// ToRGBA converts every pixel of b with conv. Porch and trailer bytes are
// skipped. Alpha is up to conv; the helpers below always make it opaque.
func ToRGBA[P pixel.Format[P]](b *buffer.Buffer[P], conv func(P) color.RGBA) *image.RGBA {
	w, h := b.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var zero P
	for y := 0; y < h; y++ {
		row, _ := b.Row(y) // y < h
		out := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			c := conv(zero.Load(row, x))
			out[x*4+0] = c.R
			out[x*4+1] = c.G
			out[x*4+2] = c.B
			out[x*4+3] = c.A
		}
	}
	return img
}

func MonoToRGBA(b *buffer.Buffer[pixel.BW], pol Policy) *image.RGBA {
	return ToRGBA(b, pol.Mono())
}

func RGB24ToRGBA(b *buffer.Buffer[pixel.RGB24]) *image.RGBA {
	return ToRGBA(b, func(p pixel.RGB24) color.RGBA {
		return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
	})
}

func Grey8ToRGBA(b *buffer.Buffer[pixel.Grey8]) *image.RGBA {
	return ToRGBA(b, func(p pixel.Grey8) color.RGBA {
		return color.RGBA{R: p.Y, G: p.Y, B: p.Y, A: 0xff}
	})
}
