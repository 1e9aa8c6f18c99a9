package main

import (
	"fmt"
	"image"

	"microgui/buffer"
	"microgui/gui"
	"microgui/native"
	"microgui/pixel"
)

// Display owns the frame memory and the GUI that draws into it.
type Display struct {
	Width, Height int
	Frame         *buffer.Buffer[pixel.BW]
	GUI           *gui.Gui[pixel.BW]
}

func NewDisplay(width, height int) (*Display, error) {
	data := make([]byte, buffer.Len[pixel.BW](width, height, 0, 0))
	fb, err := buffer.New[pixel.BW](width, height, 0, 0, data)
	if err != nil {
		return nil, fmt.Errorf("frame buffer: %w", err)
	}
	return &Display{
		Width:  width,
		Height: height,
		Frame:  fb,
		GUI:    gui.New[pixel.BW](width, height),
	}, nil
}

func (d *Display) Clear() {
	d.Frame.Clear(pixel.White[pixel.BW]())
}

// Draw clears the frame and renders the active window into it.
func (d *Display) Draw() error {
	d.Clear()
	return d.GUI.Render(d.Frame)
}

// Image converts the frame for host surfaces, ink shown black.
func (d *Display) Image() *image.RGBA {
	return native.MonoToRGBA(d.Frame, native.InkBlack)
}
