// Package gui composes renderable widgets into layers and windows and keeps
// the window stack that receives rendering and input.
//
// The buffer is never stored in the tree. Gui.Render owns it for the
// duration of a pass and hands it down to every Render call.
package gui

import (
	"errors"

	"microgui/buffer"
	"microgui/graphics"
)

// Renderable is anything that can draw itself through a graphics context.
type Renderable[P any] interface {
	Render(g *graphics.Graphics[P], b buffer.Buff[P]) error
}

// RenderFunc adapts a function to Renderable.
type RenderFunc[P any] func(g *graphics.Graphics[P], b buffer.Buff[P]) error

func (f RenderFunc[P]) Render(g *graphics.Graphics[P], b buffer.Buff[P]) error {
	return f(g, b)
}

// Layer groups a renderer and child layers under a rectangle relative to
// its parent.
type Layer[P any] struct {
	bounds   graphics.Rect
	visible  bool
	renderer Renderable[P]
	children []*Layer[P]
}

// NewLayer creates a visible layer. renderer may be nil for pure containers.
func NewLayer[P any](bounds graphics.Rect, renderer Renderable[P]) *Layer[P] {
	return &Layer[P]{bounds: bounds, visible: true, renderer: renderer}
}

func (l *Layer[P]) Bounds() graphics.Rect { return l.bounds }

func (l *Layer[P]) SetBounds(r graphics.Rect) { l.bounds = r }

func (l *Layer[P]) Visible() bool { return l.visible }

func (l *Layer[P]) SetVisible(visible bool) { l.visible = visible }

func (l *Layer[P]) SetRenderer(r Renderable[P]) { l.renderer = r }

// AddChild appends a child layer. Children render in insertion order,
// before the layer's own renderer.
func (l *Layer[P]) AddChild(child *Layer[P]) {
	l.children = append(l.children, child)
}

func (l *Layer[P]) Children() []*Layer[P] { return l.children }

// clip narrows the parent context rectangle to the layer.
func (l *Layer[P]) clip(parent graphics.Rect) graphics.Rect {
	return graphics.Rect{
		X: parent.X + l.bounds.X,
		Y: parent.Y + l.bounds.Y,
		W: max(0, min(l.bounds.W, parent.W-l.bounds.X)),
		H: max(0, min(l.bounds.H, parent.H-l.bounds.Y)),
	}
}

// Render draws the children and then the layer's renderer inside the layer
// rectangle. The context bounds are restored before returning. Every
// failure is collected; one failing child does not stop the others.
func (l *Layer[P]) Render(g *graphics.Graphics[P], b buffer.Buff[P]) error {
	if !l.visible {
		return nil
	}

	parent := g.Bounds()
	g.SetBounds(l.clip(parent))
	defer g.SetBounds(parent)

	var errs []error
	for _, child := range l.children {
		if err := child.Render(g, b); err != nil {
			errs = append(errs, err)
		}
	}
	if l.renderer != nil {
		if err := l.renderer.Render(g, b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
