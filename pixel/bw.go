package pixel

// BW is a packed monochrome pixel. True means ink is present.
type BW bool

func (BW) Black() BW { return true }
func (BW) White() BW { return false }

func (BW) BitsPerPixel() int { return 1 }

func (BW) RowBytes(width int) int { return (width + 7) / 8 }

// Store sets or clears bit 7-x%8 of byte x/8, most significant bit first.
func (p BW) Store(line []byte, x int) {
	mask := byte(0x80) >> uint(x%8)
	if p {
		line[x/8] |= mask
	} else {
		line[x/8] &^= mask
	}
}

func (BW) Load(line []byte, x int) BW {
	mask := byte(0x80) >> uint(x%8)
	return line[x/8]&mask != 0
}
