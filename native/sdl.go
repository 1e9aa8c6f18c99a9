//go:build sdl

package native

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"microgui/gui"
)

// SDLWindow previews frames in a desktop window. The window is scale
// times the frame size; the renderer stretches the texture.
type SDLWindow struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	width    int
	height   int
	scale    int
}

// NewSDLWindow initialises SDL and opens a window for width x height
// frames. It must be called from the main goroutine.
func NewSDLWindow(title string, width, height, scale int) (*SDLWindow, error) {
	if scale < 1 {
		scale = 1
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	w := &SDLWindow{width: width, height: height, scale: scale}
	var err error
	w.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width*scale), int32(height*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("sdl create window: %w", err)
	}
	w.renderer, err = sdl.CreateRenderer(w.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("sdl create renderer: %w", err)
	}
	// ABGR8888 matches image.RGBA byte order on little endian hosts.
	w.texture, err = w.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING,
		int32(width), int32(height))
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("sdl create texture: %w", err)
	}
	return w, nil
}

// Present uploads img and shows it.
func (w *SDLWindow) Present(img *image.RGBA) error {
	b := img.Bounds()
	if b.Dx() != w.width || b.Dy() != w.height {
		return fmt.Errorf("sdl: frame is %dx%d, window is %dx%d", b.Dx(), b.Dy(), w.width, w.height)
	}
	rect := &sdl.Rect{X: 0, Y: 0, W: int32(w.width), H: int32(w.height)}
	if err := w.texture.Update(rect, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		return fmt.Errorf("sdl texture update: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("sdl clear: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("sdl copy: %w", err)
	}
	w.renderer.Present()
	return nil
}

var sdlKeys = map[sdl.Keycode]gui.ID{
	sdl.K_UP:        gui.Up,
	sdl.K_DOWN:      gui.Down,
	sdl.K_LEFT:      gui.Left,
	sdl.K_RIGHT:     gui.Right,
	sdl.K_RETURN:    gui.Select,
	sdl.K_BACKSPACE: gui.Back,
	sdl.K_h:         gui.Help,
}

// Poll collects pending input. quit is true once the window was closed or
// Escape was pressed. Mouse clicks are reported in frame coordinates.
func (w *SDLWindow) Poll() (events []gui.Event, quit bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			if e.Keysym.Sym == sdl.K_ESCAPE {
				quit = true
				continue
			}
			if id, ok := sdlKeys[e.Keysym.Sym]; ok {
				events = append(events, gui.Event{ID: id})
			}
		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
				events = append(events, gui.Event{
					ID: gui.Click,
					X:  int(e.X) / w.scale,
					Y:  int(e.Y) / w.scale,
				})
			}
		}
	}
	return events, quit
}

func (w *SDLWindow) Close() error {
	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.Quit()
	return nil
}
