//go:build sdl

package main

import (
	"context"
	"log/slog"
	"runtime"

	"microgui/buffer"
	"microgui/gui"
	"microgui/native"
	"microgui/pixel"
)

// SDL wants every call on the thread that initialised it.
func init() { runtime.LockOSThread() }

// sdlScreen previews the LCD in a desktop window.
type sdlScreen struct {
	win    *native.SDLWindow
	events chan gui.Event
}

func openScreen(_ context.Context, cfg config) (screen, error) {
	win, err := native.NewSDLWindow("lcdinator", cfg.width, cfg.height, cfg.scale)
	if err != nil {
		return nil, err
	}
	return &sdlScreen{win: win, events: make(chan gui.Event, 16)}, nil
}

func (s *sdlScreen) Present(fb *buffer.Buffer[pixel.BW]) error {
	return s.win.Present(native.MonoToRGBA(fb, native.InkBlack))
}

// Poll moves pending window input onto the event channel.
func (s *sdlScreen) Poll() error {
	events, quit := s.win.Poll()
	if quit {
		return errQuit
	}
	for _, e := range events {
		select {
		case s.events <- e:
		default:
			slog.Warn("input queue full, event dropped", "event", e)
		}
	}
	return nil
}

func (s *sdlScreen) Events() <-chan gui.Event { return s.events }
func (s *sdlScreen) Close() error             { return s.win.Close() }
