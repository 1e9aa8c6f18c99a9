package gui

import (
	"errors"
	"testing"

	"microgui/buffer"
	"microgui/graphics"
	"microgui/pixel"
)

func newBuffer(t *testing.T, w, h int) *buffer.Buffer[pixel.BW] {
	t.Helper()
	b, err := buffer.New[pixel.BW](w, h, 0, 0, make([]byte, buffer.Len[pixel.BW](w, h, 0, 0)))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// boundsProbe records the context bounds it was rendered with.
type boundsProbe struct {
	seen []graphics.Rect
	err  error
}

func (p *boundsProbe) Render(g *graphics.Graphics[pixel.BW], _ buffer.Buff[pixel.BW]) error {
	p.seen = append(p.seen, g.Bounds())
	return p.err
}

func TestLayerBoundsPropagation(t *testing.T) {
	var parentProbe, childProbe boundsProbe
	parent := NewLayer[pixel.BW](graphics.R(10, 5, 40, 30), &parentProbe)
	child := NewLayer[pixel.BW](graphics.R(30, 2, 20, 50), &childProbe)
	parent.AddChild(child)

	g := graphics.New[pixel.BW](0, 0, 64, 64)
	if err := parent.Render(g, newBuffer(t, 64, 64)); err != nil {
		t.Fatal(err)
	}
	if got := parentProbe.seen[0]; got != graphics.R(10, 5, 40, 30) {
		t.Errorf("parent bounds = %v", got)
	}
	// The child is clipped to what is left of its parent.
	if got := childProbe.seen[0]; got != graphics.R(40, 7, 10, 28) {
		t.Errorf("child bounds = %v", got)
	}
	if got := g.Bounds(); got != graphics.R(0, 0, 64, 64) {
		t.Errorf("bounds not restored: %v", got)
	}
}

func TestLayerRenderOrderAndVisibility(t *testing.T) {
	var order []string
	rec := func(name string) Renderable[pixel.BW] {
		return RenderFunc[pixel.BW](func(*graphics.Graphics[pixel.BW], buffer.Buff[pixel.BW]) error {
			order = append(order, name)
			return nil
		})
	}
	root := NewLayer(graphics.R(0, 0, 8, 8), rec("root"))
	a := NewLayer(graphics.R(0, 0, 8, 8), rec("a"))
	hidden := NewLayer(graphics.R(0, 0, 8, 8), rec("hidden"))
	hidden.SetVisible(false)
	root.AddChild(a)
	root.AddChild(hidden)

	if err := root.Render(graphics.New[pixel.BW](0, 0, 8, 8), newBuffer(t, 8, 8)); err != nil {
		t.Fatal(err)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "root" {
		t.Errorf("render order = %v, want [a root]", order)
	}
}

func TestLayerCollectsErrors(t *testing.T) {
	errA := errors.New("a failed")
	errRoot := errors.New("root failed")
	var after boundsProbe
	root := NewLayer[pixel.BW](graphics.R(0, 0, 8, 8), &boundsProbe{err: errRoot})
	root.AddChild(NewLayer[pixel.BW](graphics.R(0, 0, 8, 8), &boundsProbe{err: errA}))
	root.AddChild(NewLayer[pixel.BW](graphics.R(0, 0, 8, 8), &after))

	err := root.Render(graphics.New[pixel.BW](0, 0, 8, 8), newBuffer(t, 8, 8))
	if !errors.Is(err, errA) || !errors.Is(err, errRoot) {
		t.Errorf("err = %v, want both failures", err)
	}
	if len(after.seen) != 1 {
		t.Errorf("layer after a failing sibling was not rendered")
	}
}

type handlers struct {
	log    *[]string
	name   string
	events []Event
}

func (h *handlers) OnLoad()         { *h.log = append(*h.log, h.name+" load") }
func (h *handlers) OnUnload()       { *h.log = append(*h.log, h.name+" unload") }
func (h *handlers) OnEvent(e Event) { h.events = append(h.events, e) }

func TestWindowStack(t *testing.T) {
	var log []string
	g := New[pixel.BW](8, 8)
	if g.PopWindow() != nil {
		t.Errorf("PopWindow on an empty stack returned a window")
	}
	if err := g.Render(newBuffer(t, 8, 8)); !errors.Is(err, ErrNoWindow) {
		t.Errorf("Render with no window = %v", err)
	}

	h1 := &handlers{log: &log, name: "w1"}
	h2 := &handlers{log: &log, name: "w2"}
	w1 := NewWindow[pixel.BW](8, 8, nil)
	w1.BindHandlers(h1, h1, h1)
	w2 := NewWindow[pixel.BW](8, 8, nil)
	w2.BindHandlers(h2, h2, h2)

	g.PushWindow(w1)
	g.PushWindow(w2)
	if g.Active() != w2 || g.Depth() != 2 {
		t.Fatalf("active window is not the last pushed")
	}
	g.Event(Event{ID: Select})
	if len(h2.events) != 1 || len(h1.events) != 0 {
		t.Errorf("event went to the wrong window: w1 %v w2 %v", h1.events, h2.events)
	}

	if g.PopWindow() != w2 || g.Active() != w1 {
		t.Errorf("PopWindow did not restore the previous window")
	}
	want := []string{"w1 load", "w2 load", "w2 unload"}
	if len(log) != len(want) {
		t.Fatalf("lifecycle = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("lifecycle = %v, want %v", log, want)
			break
		}
	}
}

func TestRenderOnlyActiveWindow(t *testing.T) {
	var bottom, top boundsProbe
	g := New[pixel.BW](16, 16)
	g.PushWindow(NewWindow[pixel.BW](16, 16, &bottom))
	g.PushWindow(NewWindow[pixel.BW](16, 16, &top))
	if err := g.Render(newBuffer(t, 16, 16)); err != nil {
		t.Fatal(err)
	}
	if len(bottom.seen) != 0 || len(top.seen) != 1 {
		t.Errorf("bottom rendered %d times, top %d", len(bottom.seen), len(top.seen))
	}
}

func TestRenderSurvivesWidgetError(t *testing.T) {
	b := newBuffer(t, 8, 8)
	g := New[pixel.BW](16, 16)
	w := NewWindow[pixel.BW](16, 16, nil)
	// The screen is larger than the buffer: the line runs off its end.
	w.Layer().AddChild(NewLayer(graphics.R(0, 0, 16, 16), Renderable[pixel.BW](RenderFunc[pixel.BW](
		func(gfx *graphics.Graphics[pixel.BW], b buffer.Buff[pixel.BW]) error {
			return gfx.DrawLine(b, graphics.Pt(0, 0), graphics.Pt(15, 0), true)
		}))))
	g.PushWindow(w)
	if err := g.Render(b); err != nil {
		t.Fatalf("Render = %v, want widget errors to be logged only", err)
	}
	if p, _ := b.Get(7, 0); !p {
		t.Errorf("in-range part of the line was not drawn")
	}
}

func TestDrain(t *testing.T) {
	var log []string
	h := &handlers{log: &log}
	w := NewWindow[pixel.BW](8, 8, nil)
	w.BindHandlers(nil, nil, h)
	g := New[pixel.BW](8, 8)
	g.PushWindow(w)

	events := make(chan Event, 4)
	events <- Event{ID: Up}
	events <- Event{ID: Click, X: 3, Y: 4}
	events <- Event{ID: Back}

	if n := g.Drain(events); n != 3 {
		t.Errorf("Drain = %d, want 3", n)
	}
	if len(h.events) != 3 || h.events[0].ID != Up || h.events[1] != (Event{ID: Click, X: 3, Y: 4}) || h.events[2].ID != Back {
		t.Errorf("events out of order: %v", h.events)
	}
	if n := g.Drain(events); n != 0 {
		t.Errorf("second Drain = %d, want 0", n)
	}
	close(events)
	if n := g.Drain(events); n != 0 {
		t.Errorf("Drain on a closed channel = %d", n)
	}
}

func TestEventString(t *testing.T) {
	if s := (Event{ID: Click, X: 1, Y: 2}).String(); s != "Click(1,2)" {
		t.Errorf("got %q", s)
	}
	if s := Left.String(); s != "Left" {
		t.Errorf("got %q", s)
	}
	if s := ID(42).String(); s != "ID(42)" {
		t.Errorf("got %q", s)
	}
}
