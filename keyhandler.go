package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"microgui/gui"
	"microgui/native"
)

const (
	KEY_HELP  = 0x41
	KEY_LEFT  = 0x42
	KEY_ESC   = 0x43
	KEY_UP    = 0x44
	KEY_ENTER = 0x45
	KEY_DOWN  = 0x46
	KEY_RIGHT = 0x47
)

var keyEvents = map[byte]gui.ID{
	KEY_HELP:  gui.Help,
	KEY_LEFT:  gui.Left,
	KEY_ESC:   gui.Back,
	KEY_UP:    gui.Up,
	KEY_ENTER: gui.Select,
	KEY_DOWN:  gui.Down,
	KEY_RIGHT: gui.Right,
}

func decodeKey(key byte) (gui.Event, bool) {
	id, ok := keyEvents[key]
	return gui.Event{ID: id}, ok
}

// KeyHandler turns key pad bytes into GUI events.
type KeyHandler struct {
	Events chan gui.Event
}

func NewKeyHandler() *KeyHandler {
	return &KeyHandler{Events: make(chan gui.Event, 16)}
}

// Start reads the port until ctx is cancelled or the port fails, then
// closes Events.
func (kh *KeyHandler) Start(ctx context.Context, port native.Port) {
	go func() {
		defer close(kh.Events)
		buf := make([]byte, 1)
		for ctx.Err() == nil {
			if err := port.SetReadTimeout(100 * time.Millisecond); err != nil {
				slog.Error("key pad: set read timeout", "err", err)
				return
			}
			n, err := port.Read(buf)
			if err != nil {
				if ctx.Err() == nil && !errors.Is(err, io.EOF) {
					slog.Error("key pad: read", "err", err)
				}
				return
			}
			if n == 1 {
				kh.handleKey(ctx, buf[0])
			}
		}
	}()
}

func (kh *KeyHandler) handleKey(ctx context.Context, key byte) {
	e, ok := decodeKey(key)
	if !ok {
		slog.Debug("key pad: unknown key", "key", key)
		return
	}
	slog.Debug("key pressed", "key", key, "event", e)
	select {
	case kh.Events <- e:
	case <-ctx.Done():
	}
}
