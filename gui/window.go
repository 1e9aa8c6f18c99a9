package gui

import (
	"microgui/buffer"
	"microgui/graphics"
)

// OnLoad is called when a window becomes part of the window stack.
type OnLoad interface {
	OnLoad()
}

// OnUnload is called when a window is popped from the stack.
type OnUnload interface {
	OnUnload()
}

// OnEvent receives the events dispatched to a window.
type OnEvent interface {
	OnEvent(e Event)
}

// Window is the top level unit of the GUI: a base layer plus optional
// lifecycle and event handlers.
type Window[P any] struct {
	base     *Layer[P]
	onLoad   OnLoad
	onUnload OnUnload
	onEvent  OnEvent
}

// NewWindow creates a w x h window whose base layer uses renderer.
func NewWindow[P any](w, h int, renderer Renderable[P]) *Window[P] {
	return &Window[P]{base: NewLayer(graphics.R(0, 0, w, h), renderer)}
}

// BindHandlers sets the optional handlers. Nil handlers are skipped.
func (w *Window[P]) BindHandlers(onLoad OnLoad, onUnload OnUnload, onEvent OnEvent) {
	w.onLoad = onLoad
	w.onUnload = onUnload
	w.onEvent = onEvent
}

// Layer returns the base layer, to attach child layers.
func (w *Window[P]) Layer() *Layer[P] { return w.base }

func (w *Window[P]) Render(g *graphics.Graphics[P], b buffer.Buff[P]) error {
	return w.base.Render(g, b)
}

func (w *Window[P]) OnLoad() {
	if w.onLoad != nil {
		w.onLoad.OnLoad()
	}
}

func (w *Window[P]) OnUnload() {
	if w.onUnload != nil {
		w.onUnload.OnUnload()
	}
}

func (w *Window[P]) OnEvent(e Event) {
	if w.onEvent != nil {
		w.onEvent.OnEvent(e)
	}
}
