package native

import (
	"fmt"
	"io"
	"time"

	"microgui/buffer"
	"microgui/gui"
	"microgui/pixel"
)

// PackColumns re-packs a monochrome buffer into the column-banded layout
// used by graphic LCD controllers: rows are grouped in bands of 8, each
// band is one byte per column, and bit n of a byte is row band*8+n.
func PackColumns(b *buffer.Buffer[pixel.BW]) []byte {
	w, h := b.Size()
	bands := (h + 7) / 8
	out := make([]byte, bands*w)
	var zero pixel.BW
	for y := 0; y < h; y++ {
		row, _ := b.Row(y) // y < h
		base := (y / 8) * w
		bit := byte(1) << uint(y%8)
		for x := 0; x < w; x++ {
			if zero.Load(row, x) {
				out[base+x] |= bit
			}
		}
	}
	return out
}

// Interleave orders fixed size blocks of frame as all even blocks followed
// by all odd blocks. With 64-byte blocks on a 128 pixel wide panel that is
// the left half of every band, then the right half.
func Interleave(frame []byte, block int) [][]byte {
	var out [][]byte
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < len(frame); i += block {
			if (i/block)%2 != pass {
				continue
			}
			out = append(out, frame[i:min(i+block, len(frame))])
		}
	}
	return out
}

// Port is the part of a serial port the LCD needs. go.bug.st/serial ports
// satisfy it.
type Port interface {
	io.ReadWriteCloser
	SetReadTimeout(t time.Duration) error
}

var (
	cmdReset     = []byte{0x1b, 0x40}
	cmdCursorOff = []byte{0x0b}
	cmdClear     = []byte{0x0c}
	cmdGraphics  = []byte{0x1b, 0x47}
)

// LCD drives a serial graphic LCD.
type LCD struct {
	port Port
	cfg  SerialConfig
}

// NewLCD wraps an already open port.
func NewLCD(port Port, cfg SerialConfig) *LCD {
	return &LCD{port: port, cfg: cfg.withDefaults()}
}

func (l *LCD) Port() Port { return l.port }

func (l *LCD) write(data []byte) error {
	n, err := l.port.Write(data)
	if err != nil {
		return fmt.Errorf("serial write: %w", err)
	}
	if n < len(data) {
		return fmt.Errorf("serial write: wrote only %d of %d bytes: %w", n, len(data), io.ErrShortWrite)
	}
	return nil
}

// Init resets the controller, hides the cursor and clears the screen.
func (l *LCD) Init() error {
	for _, cmd := range [][]byte{cmdReset, cmdCursorOff, cmdClear} {
		if err := l.write(cmd); err != nil {
			return err
		}
		time.Sleep(l.cfg.Settle)
	}
	gui.Logger().Debug("lcd: initialised", "device", l.cfg.Device)
	return nil
}

// Present sends a full frame.
func (l *LCD) Present(b *buffer.Buffer[pixel.BW]) error {
	w, h := b.Size()
	if w != l.cfg.Width || h != l.cfg.Height {
		return fmt.Errorf("lcd: frame is %dx%d, panel is %dx%d", w, h, l.cfg.Width, l.cfg.Height)
	}
	if err := l.write(cmdGraphics); err != nil {
		return err
	}
	for _, blk := range Interleave(PackColumns(b), l.cfg.BlockSize) {
		if err := l.write(blk); err != nil {
			return err
		}
	}
	return nil
}

func (l *LCD) Close() error {
	return l.port.Close()
}
