package main

import (
	"errors"
	"log/slog"

	"microgui/buffer"
	"microgui/graphics"
	"microgui/gui"
	"microgui/pixel"
	"microgui/widgets"
)

var ink = pixel.Black[pixel.BW]()

// Screens is the set of pages cycled with Left/Right plus the about
// overlay opened with Help.
type Screens struct {
	ui      *gui.Gui[pixel.BW]
	pages   []*gui.Window[pixel.BW]
	about   *gui.Window[pixel.BW]
	current int

	rx, tx *widgets.Chart[pixel.BW]
}

// NewScreens builds every page for a w x h display and shows the first.
func NewScreens(ui *gui.Gui[pixel.BW], w, h int, m *Metrics) *Screens {
	s := &Screens{ui: ui}
	samples := max(2, (w-10-1)/4+1)
	s.rx = widgets.NewChart(ink, samples)
	s.tx = widgets.NewChart(ink, samples)

	s.pages = []*gui.Window[pixel.BW]{
		systemPage(w, h, m),
		s.networkPage(w, h),
		gui.NewWindow[pixel.BW](w, h, widgets.NewDemo(widgets.MonoPalette[pixel.BW]())),
	}
	names := []pageName{"system", "network", "demo"}
	for i, p := range s.pages {
		p.BindHandlers(names[i], nil, s)
	}
	s.about = gui.NewWindow[pixel.BW](w, h, gui.RenderFunc[pixel.BW](drawEmblem))
	s.about.BindHandlers(pageName("about"), nil, s)

	ui.PushWindow(s.pages[0])
	return s
}

type pageName string

func (n pageName) OnLoad() { slog.Debug("screen shown", "screen", string(n)) }

// Current is the index of the page under the about overlay, if any.
func (s *Screens) Current() int { return s.current }

// AboutOpen reports whether the about overlay is showing.
func (s *Screens) AboutOpen() bool { return s.ui.Active() == s.about }

// Sample feeds the latest network rates into the charts.
func (s *Screens) Sample(m *Metrics) {
	s.rx.Push(m.RX())
	s.tx.Push(m.TX())
}

func (s *Screens) OnEvent(e gui.Event) {
	if s.AboutOpen() {
		if e.ID == gui.Back || e.ID == gui.Help {
			s.ui.PopWindow()
		}
		return
	}
	switch e.ID {
	case gui.Left:
		s.show(s.current - 1)
	case gui.Right:
		s.show(s.current + 1)
	case gui.Back:
		s.show(0)
	case gui.Help:
		s.ui.PushWindow(s.about)
	}
}

func (s *Screens) show(i int) {
	n := len(s.pages)
	i = ((i % n) + n) % n
	if i == s.current {
		return
	}
	s.ui.PopWindow()
	s.current = i
	s.ui.PushWindow(s.pages[i])
}

func systemPage(w, h int, m *Metrics) *gui.Window[pixel.BW] {
	win := gui.NewWindow[pixel.BW](w, h, nil)
	rows := []struct {
		icon  widgets.Bitmap
		value func() float64
	}{
		{IconCPU, m.CPU},
		{IconRAM, m.Memory},
		{IconDisk, m.Disk},
		{IconClock, m.Uptime},
	}
	rowH := h / len(rows)
	for i, row := range rows {
		y := i*rowH + (rowH-8)/2
		win.Layer().AddChild(iconLayer(0, y, row.icon))
		win.Layer().AddChild(gui.NewLayer[pixel.BW](graphics.R(10, y, w-10, 8), widgets.NewGauge(ink, row.value)))
	}
	return win
}

func (s *Screens) networkPage(w, h int) *gui.Window[pixel.BW] {
	half := h / 2
	win := gui.NewWindow[pixel.BW](w, h, gui.RenderFunc[pixel.BW](
		func(g *graphics.Graphics[pixel.BW], b buffer.Buff[pixel.BW]) error {
			return g.DrawLine(b, graphics.Pt(0, half), graphics.Pt(w-1, half), ink)
		}))
	win.Layer().AddChild(iconLayer(0, 2, IconRX))
	win.Layer().AddChild(gui.NewLayer[pixel.BW](graphics.R(10, 0, w-10, half-1), s.rx))
	win.Layer().AddChild(iconLayer(0, half+2, IconTX))
	win.Layer().AddChild(gui.NewLayer[pixel.BW](graphics.R(10, half+1, w-10, h-half-1), s.tx))
	return win
}

func drawEmblem(g *graphics.Graphics[pixel.BW], b buffer.Buff[pixel.BW]) error {
	r := g.Bounds()
	d := min(r.W, r.H) - 8
	cx, cy := r.W/2, r.H/2
	diamond := []graphics.Point{
		graphics.Pt(cx, cy-d/2),
		graphics.Pt(cx+d/2, cy),
		graphics.Pt(cx, cy+d/2),
		graphics.Pt(cx-d/2, cy),
	}
	return errors.Join(
		g.DrawRect(b, graphics.R(0, 0, r.W, r.H), ink),
		g.DrawEllipse(b, graphics.R(cx-d/2, cy-d/2, d, d), ink),
		g.DrawPolygon(b, diamond, ink),
		g.FillRect(b, graphics.R(cx-d/8, cy-d/8, d/4, d/4), ink),
	)
}
