package gui

import (
	"errors"

	"microgui/buffer"
	"microgui/graphics"
)

// ErrNoWindow is returned when the window stack is empty.
var ErrNoWindow = errors.New("gui: no window")

// Gui is the top level object: a window stack rendered through one
// screen-sized graphics context. Only the topmost window is rendered and
// receives events.
type Gui[P any] struct {
	graphics *graphics.Graphics[P]
	windows  []*Window[P]
}

// New creates a GUI for a w x h screen.
func New[P any](w, h int) *Gui[P] {
	return &Gui[P]{graphics: graphics.New[P](0, 0, w, h)}
}

// PushWindow loads w and makes it the active window.
func (g *Gui[P]) PushWindow(w *Window[P]) {
	w.OnLoad()
	g.windows = append(g.windows, w)
	Logger().Debug("gui: window pushed", "depth", len(g.windows))
}

// PopWindow unloads and removes the active window. The previous window, if
// any, becomes active again. It returns nil when the stack is empty.
func (g *Gui[P]) PopWindow() *Window[P] {
	n := len(g.windows)
	if n == 0 {
		return nil
	}
	w := g.windows[n-1]
	g.windows[n-1] = nil
	g.windows = g.windows[:n-1]
	w.OnUnload()
	Logger().Debug("gui: window popped", "depth", len(g.windows))
	return w
}

// Active returns the topmost window or nil.
func (g *Gui[P]) Active() *Window[P] {
	if len(g.windows) == 0 {
		return nil
	}
	return g.windows[len(g.windows)-1]
}

// Depth returns the number of windows on the stack.
func (g *Gui[P]) Depth() int { return len(g.windows) }

// Render draws the active window into b. Widget failures are logged and
// the rest of the frame is still drawn; only an empty stack is an error.
func (g *Gui[P]) Render(b buffer.Buff[P]) error {
	active := g.Active()
	if active == nil {
		return ErrNoWindow
	}
	if err := active.Render(g.graphics, b); err != nil {
		Logger().Warn("gui: frame rendered with errors", "err", err)
	}
	return nil
}

// Event passes e to the active window.
func (g *Gui[P]) Event(e Event) error {
	active := g.Active()
	if active == nil {
		return ErrNoWindow
	}
	Logger().Debug("gui: event", "event", e)
	active.OnEvent(e)
	return nil
}

// Drain dispatches every event already queued on events without blocking
// and returns how many were handled. Events arriving with no window on the
// stack are discarded.
func (g *Gui[P]) Drain(events <-chan Event) int {
	n := 0
	for {
		select {
		case e, ok := <-events:
			if !ok {
				return n
			}
			_ = g.Event(e)
			n++
		default:
			return n
		}
	}
}
