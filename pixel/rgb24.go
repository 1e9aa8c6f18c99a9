package pixel

import "fmt"

// RGB24 is three 8-bit channels stored as consecutive R, G, B bytes.
type RGB24 struct {
	R, G, B uint8
}

func (RGB24) Black() RGB24 { return RGB24{0x00, 0x00, 0x00} }
func (RGB24) White() RGB24 { return RGB24{0xff, 0xff, 0xff} }
func (RGB24) Red() RGB24   { return RGB24{0xff, 0x00, 0x00} }
func (RGB24) Green() RGB24 { return RGB24{0x00, 0xff, 0x00} }
func (RGB24) Blue() RGB24  { return RGB24{0x00, 0x00, 0xff} }

func (RGB24) BitsPerPixel() int { return 24 }

func (RGB24) RowBytes(width int) int { return width * 3 }

func (p RGB24) Store(line []byte, x int) {
	i := x * 3
	line[i+0] = p.R
	line[i+1] = p.G
	line[i+2] = p.B
}

func (RGB24) Load(line []byte, x int) RGB24 {
	i := x * 3
	return RGB24{R: line[i+0], G: line[i+1], B: line[i+2]}
}

// Hex creates a color from a 0xRRGGBB value.
func Hex(hex uint32) RGB24 {
	return RGB24{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
	}
}

func (p RGB24) String() string {
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}
