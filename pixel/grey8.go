package pixel

// Grey8 is a single 8-bit intensity channel, one byte per pixel.
type Grey8 struct {
	Y uint8
}

func (Grey8) Black() Grey8 { return Grey8{0x00} }
func (Grey8) White() Grey8 { return Grey8{0xff} }

func (Grey8) BitsPerPixel() int { return 8 }

func (Grey8) RowBytes(width int) int { return width }

func (p Grey8) Store(line []byte, x int) { line[x] = p.Y }

func (Grey8) Load(line []byte, x int) Grey8 { return Grey8{Y: line[x]} }
