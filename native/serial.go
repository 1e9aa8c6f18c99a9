package native

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// SerialConfig describes the panel and the port it hangs off.
type SerialConfig struct {
	Device   string
	BaudRate int
	// Width and Height are the panel size in pixels.
	Width, Height int
	// Settle is the pause after each initialisation command.
	Settle time.Duration
	// BlockSize is the transfer unit of a frame.
	BlockSize int
}

// DefaultSerialConfig is a 128x64 panel on the first onboard UART.
func DefaultSerialConfig() SerialConfig {
	return SerialConfig{
		Device:    "/dev/ttyS1",
		BaudRate:  115200,
		Width:     128,
		Height:    64,
		Settle:    5 * time.Millisecond,
		BlockSize: 64,
	}
}

func (c SerialConfig) withDefaults() SerialConfig {
	d := DefaultSerialConfig()
	if c.Device == "" {
		c.Device = d.Device
	}
	if c.BaudRate <= 0 {
		c.BaudRate = d.BaudRate
	}
	if c.Width <= 0 || c.Height <= 0 {
		c.Width, c.Height = d.Width, d.Height
	}
	if c.BlockSize <= 0 {
		c.BlockSize = d.BlockSize
	}
	return c
}

// OpenLCD opens the serial device 8N1 and returns an uninitialised LCD.
func OpenLCD(cfg SerialConfig) (*LCD, error) {
	cfg = cfg.withDefaults()
	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(cfg.Device, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.Device, err)
	}
	return NewLCD(port, cfg), nil
}
