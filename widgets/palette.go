// Package widgets contains small renderables built on the graphics
// primitives. Widgets draw in local coordinates starting at (0, 0); place
// them on screen by wrapping them in a gui.Layer.
package widgets

import "microgui/pixel"

// Palette is the set of pixel values a widget draws with.
type Palette[P any] struct {
	Ink, Paper       P
	Red, Green, Blue P
}

// MonoPalette draws everything in black on white.
func MonoPalette[P pixel.Mono[P]]() Palette[P] {
	ink := pixel.Black[P]()
	return Palette[P]{Ink: ink, Paper: pixel.White[P](), Red: ink, Green: ink, Blue: ink}
}

// ColorPalette uses the format's primaries for accents.
func ColorPalette[P pixel.Color[P]]() Palette[P] {
	return Palette[P]{
		Ink:   pixel.Black[P](),
		Paper: pixel.White[P](),
		Red:   pixel.Red[P](),
		Green: pixel.Green[P](),
		Blue:  pixel.Blue[P](),
	}
}
