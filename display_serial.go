//go:build !sdl

package main

import (
	"context"

	"microgui/buffer"
	"microgui/gui"
	"microgui/native"
	"microgui/pixel"
)

// serialScreen is the LCD on the serial port with its key pad.
type serialScreen struct {
	lcd  *native.LCD
	keys *KeyHandler
}

func openScreen(ctx context.Context, cfg config) (screen, error) {
	sc := native.DefaultSerialConfig()
	sc.Device = cfg.device
	sc.BaudRate = cfg.baud
	sc.Width, sc.Height = cfg.width, cfg.height
	lcd, err := native.OpenLCD(sc)
	if err != nil {
		return nil, err
	}
	if err := lcd.Init(); err != nil {
		lcd.Close()
		return nil, err
	}
	keys := NewKeyHandler()
	keys.Start(ctx, lcd.Port())
	return &serialScreen{lcd: lcd, keys: keys}, nil
}

func (s *serialScreen) Present(fb *buffer.Buffer[pixel.BW]) error { return s.lcd.Present(fb) }
func (s *serialScreen) Events() <-chan gui.Event                  { return s.keys.Events }
func (s *serialScreen) Close() error                              { return s.lcd.Close() }
