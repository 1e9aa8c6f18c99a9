package main

import (
	"microgui/graphics"
	"microgui/gui"
	"microgui/pixel"
	"microgui/widgets"
)

var (
	IconCPU   = widgets.Bitmap{0x24, 0x7e, 0xc3, 0x5a, 0x5a, 0xc3, 0x7e, 0x24}
	IconRAM   = widgets.Bitmap{0x00, 0xff, 0x81, 0xb5, 0xb5, 0x81, 0xff, 0xaa}
	IconDisk  = widgets.Bitmap{0x7e, 0x81, 0x81, 0x99, 0x99, 0x81, 0x85, 0x7e}
	IconClock = widgets.Bitmap{0x3c, 0x42, 0x91, 0x91, 0x9d, 0x81, 0x42, 0x3c}
	IconRX    = widgets.Bitmap{0x18, 0x18, 0x18, 0x18, 0xdb, 0x7e, 0x3c, 0x18}
	IconTX    = widgets.Bitmap{0x18, 0x3c, 0x7e, 0xdb, 0x18, 0x18, 0x18, 0x18}
)

// iconLayer places an 8x8 icon with its top left corner at (x, y).
func iconLayer(x, y int, icon widgets.Bitmap) *gui.Layer[pixel.BW] {
	return gui.NewLayer[pixel.BW](graphics.R(x, y, 8, 8), widgets.NewIcon(icon, pixel.Black[pixel.BW]()))
}
