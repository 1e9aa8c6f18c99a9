// Package buffer implements a display buffer over a caller-supplied byte
// region.
//
// Rows are laid out back to back. Each row is porch bytes of padding, the
// packed pixels of the row, then trailer bytes of padding:
//
//	| porch | packed pixels (RowBytes(width)) | trailer |
//
// The buffer borrows the region: it never allocates, grows or copies it.
package buffer

import (
	"fmt"
	"math"
	"strings"

	"microgui/pixel"
)

// Setter is the capability rasterizers draw through.
type Setter[P any] interface {
	Set(x, y int, p P) error
}

// Buff is the set of operations a graphics buffer offers.
type Buff[P any] interface {
	Setter[P]
	Get(x, y int) (P, error)
	Size() (width, height int)
	Clear(p P)
}

// Buffer is a display buffer over a single pixel format.
type Buffer[P pixel.Format[P]] struct {
	width          int
	height         int
	porchBytes     int
	trailerBytes   int
	lineWidthBytes int
	data           []byte
}

var (
	_ Buff[pixel.BW]    = (*Buffer[pixel.BW])(nil)
	_ Buff[pixel.RGB24] = (*Buffer[pixel.RGB24])(nil)
	_ Buff[pixel.Grey8] = (*Buffer[pixel.Grey8])(nil)
)

// LineWidthBytes returns the size in bytes of one row of a P buffer,
// padding included.
func LineWidthBytes[P pixel.Format[P]](width, porch, trailer int) int {
	var p P
	return porch + p.RowBytes(width) + trailer
}

// Len returns the minimum backing region size for a P buffer.
func Len[P pixel.Format[P]](width, height, porch, trailer int) int {
	return LineWidthBytes[P](width, porch, trailer) * height
}

// lineWidth is LineWidthBytes with overflow detection. Sizes must be
// non-negative.
func lineWidth[P pixel.Format[P]](width, porch, trailer int) (int, bool) {
	var p P
	if width > (math.MaxInt-7)/p.BitsPerPixel() {
		return 0, false
	}
	row := p.RowBytes(width)
	if porch > math.MaxInt-trailer || row > math.MaxInt-porch-trailer {
		return 0, false
	}
	return porch + row + trailer, true
}

// New binds a buffer to data. The region must hold at least
// Len[P](width, height, porch, trailer) bytes.
func New[P pixel.Format[P]](width, height, porch, trailer int, data []byte) (*Buffer[P], error) {
	if width < 0 || height < 0 || porch < 0 || trailer < 0 {
		return nil, fmt.Errorf("%w: %dx%d porch %d trailer %d",
			ErrInvalidDimensions, width, height, porch, trailer)
	}
	lwb, ok := lineWidth[P](width, porch, trailer)
	if !ok || (height > 0 && lwb > math.MaxInt/height) {
		return nil, fmt.Errorf("%w: %dx%d porch %d trailer %d does not fit in memory",
			ErrSizeMismatch, width, height, porch, trailer)
	}
	if need := lwb * height; len(data) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d for %dx%d",
			ErrSizeMismatch, len(data), need, width, height)
	}
	return &Buffer[P]{
		width:          width,
		height:         height,
		porchBytes:     porch,
		trailerBytes:   trailer,
		lineWidthBytes: lwb,
		data:           data,
	}, nil
}

func (b *Buffer[P]) check(x, y int) error {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return &OutOfRangeError{X: x, Y: y, Width: b.width, Height: b.height}
	}
	return nil
}

// Row returns the packed pixel span of row y, without porch or trailer.
// The slice aliases the backing region.
func (b *Buffer[P]) Row(y int) ([]byte, error) {
	if y < 0 || y >= b.height {
		return nil, &OutOfRangeError{X: 0, Y: y, Width: b.width, Height: b.height}
	}
	return b.row(y), nil
}

// row is Row for a y already known to be in range.
func (b *Buffer[P]) row(y int) []byte {
	var p P
	start := b.lineWidthBytes*y + b.porchBytes
	return b.data[start : start+p.RowBytes(b.width)]
}

// Set writes one pixel.
func (b *Buffer[P]) Set(x, y int, p P) error {
	if err := b.check(x, y); err != nil {
		return err
	}
	p.Store(b.row(y), x)
	return nil
}

// Get reads one pixel.
func (b *Buffer[P]) Get(x, y int) (P, error) {
	var p P
	if err := b.check(x, y); err != nil {
		return p, err
	}
	return p.Load(b.row(y), x), nil
}

// Clear sets every pixel to p. Padding bytes are left alone.
func (b *Buffer[P]) Clear(p P) {
	if b.width == 0 || b.height == 0 {
		return
	}
	first := b.row(0)
	for x := 0; x < b.width; x++ {
		p.Store(first, x)
	}
	// Copying whole rows is only safe when no byte of the row holds bits
	// that belong to no pixel.
	if len(first)*8 != b.width*p.BitsPerPixel() {
		for y := 1; y < b.height; y++ {
			row := b.row(y)
			for x := 0; x < b.width; x++ {
				p.Store(row, x)
			}
		}
		return
	}
	for y := 1; y < b.height; y++ {
		copy(b.row(y), first)
	}
}

func (b *Buffer[P]) Size() (width, height int) {
	return b.width, b.height
}

func (b *Buffer[P]) LineWidthBytes() int { return b.lineWidthBytes }
func (b *Buffer[P]) PorchBytes() int     { return b.porchBytes }
func (b *Buffer[P]) TrailerBytes() int   { return b.trailerBytes }

// Data returns the whole backing region, padding included.
func (b *Buffer[P]) Data() []byte {
	return b.data[:b.lineWidthBytes*b.height]
}

func (b *Buffer[P]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[width: %dpx height: %dpx porch: %dB trailer: %dB line_width: %dB data:\n",
		b.width, b.height, b.porchBytes, b.trailerBytes, b.lineWidthBytes)
	for y := 0; y < b.height; y++ {
		start := y * b.lineWidthBytes
		fmt.Fprintf(&sb, "\t% x\n", b.data[start:start+b.lineWidthBytes])
	}
	sb.WriteString("]")
	return sb.String()
}
