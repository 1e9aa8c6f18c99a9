package graphics

import (
	"bytes"
	"errors"
	"sort"
	"testing"

	"microgui/buffer"
	"microgui/pixel"
)

// recorder is a buffer.Setter that remembers every write.
type recorder struct {
	calls []Point
}

func (r *recorder) Set(x, y int, _ pixel.BW) error {
	r.calls = append(r.calls, Point{x, y})
	return nil
}

func (r *recorder) set() map[Point]bool {
	m := make(map[Point]bool, len(r.calls))
	for _, c := range r.calls {
		m[c] = true
	}
	return m
}

func sorted(m map[Point]bool) []Point {
	pts := make([]Point, 0, len(m))
	for p := range m {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

func equalPoints(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func newBuffer(t *testing.T, w, h int) (*buffer.Buffer[pixel.BW], []byte) {
	t.Helper()
	data := make([]byte, buffer.Len[pixel.BW](w, h, 1, 1))
	b, err := buffer.New[pixel.BW](w, h, 1, 1, data)
	if err != nil {
		t.Fatal(err)
	}
	return b, data
}

func TestSetTranslates(t *testing.T) {
	b, _ := newBuffer(t, 16, 16)
	g := New[pixel.BW](3, 4, 8, 8)
	if err := g.Set(b, 1, 2, true); err != nil {
		t.Fatal(err)
	}
	if p, _ := b.Get(4, 6); !p {
		t.Errorf("pixel not written at the translated position")
	}
}

func TestSetClips(t *testing.T) {
	b, data := newBuffer(t, 16, 16)
	before := append([]byte(nil), data...)
	g := New[pixel.BW](2, 2, 4, 4)

	for _, c := range []Point{{4, 0}, {0, 4}, {10, 10}, {-1, 0}, {0, -1}} {
		if err := g.Set(b, c.X, c.Y, true); err != nil {
			t.Errorf("Set%v returned %v for a clipped pixel", c, err)
		}
	}
	if !bytes.Equal(before, data) {
		t.Errorf("clipped writes modified the buffer")
	}
}

func TestBounds(t *testing.T) {
	g := New[pixel.BW](1, 2, 3, 4)
	if got := g.Bounds(); got != R(1, 2, 3, 4) {
		t.Errorf("Bounds() = %v", got)
	}
	g.SetBounds(R(5, 6, 7, 8))
	if got := g.Bounds(); got != R(5, 6, 7, 8) {
		t.Errorf("Bounds() after SetBounds = %v", got)
	}
}

func TestDrawLineSinglePoint(t *testing.T) {
	var rec recorder
	g := New[pixel.BW](0, 0, 16, 16)
	g.DrawLine(&rec, Pt(0, 0), Pt(0, 0), true)
	if len(rec.calls) != 1 || rec.calls[0] != Pt(0, 0) {
		t.Errorf("calls = %v, want [(0,0)]", rec.calls)
	}
}

func TestDrawLineKnown(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   []Point
	}{
		{"shallow", Pt(0, 0), Pt(4, 2), []Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}},
		{"horizontal", Pt(1, 3), Pt(4, 3), []Point{{1, 3}, {2, 3}, {3, 3}, {4, 3}}},
		{"vertical up", Pt(2, 3), Pt(2, 0), []Point{{2, 0}, {2, 1}, {2, 2}, {2, 3}}},
		{"diagonal", Pt(3, 0), Pt(0, 3), []Point{{3, 0}, {2, 1}, {1, 2}, {0, 3}}},
	}
	for _, tt := range tests {
		var rec recorder
		g := New[pixel.BW](0, 0, 16, 16)
		g.DrawLine(&rec, tt.p1, tt.p2, true)
		if got := sorted(rec.set()); !equalPoints(got, sorted(pointSet(tt.want))) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func pointSet(pts []Point) map[Point]bool {
	m := make(map[Point]bool)
	for _, p := range pts {
		m[p] = true
	}
	return m
}

func TestDrawLineProperties(t *testing.T) {
	pts := []Point{{0, 0}, {7, 2}, {2, 9}, {11, 11}, {5, 5}, {0, 12}, {13, 1}, {6, 0}}
	g := New[pixel.BW](0, 0, 32, 32)
	for _, p1 := range pts {
		for _, p2 := range pts {
			var fwd, rev recorder
			g.DrawLine(&fwd, p1, p2, true)
			g.DrawLine(&rev, p2, p1, true)

			if !equalPoints(sorted(fwd.set()), sorted(rev.set())) {
				t.Errorf("%v-%v not symmetric: %v vs %v", p1, p2, sorted(fwd.set()), sorted(rev.set()))
			}
			if len(fwd.calls) != len(fwd.set()) {
				t.Errorf("%v-%v plotted a pixel twice: %v", p1, p2, fwd.calls)
			}
			want := max(abs(p2.X-p1.X), abs(p2.Y-p1.Y)) + 1
			if len(fwd.calls) != want {
				t.Errorf("%v-%v plotted %d pixels, want %d", p1, p2, len(fwd.calls), want)
			}
			s := fwd.set()
			if !s[p1] || !s[p2] {
				t.Errorf("%v-%v missing an endpoint", p1, p2)
			}
		}
	}
}

func TestDrawRectInsideClippedContext(t *testing.T) {
	var rec recorder
	g := New[pixel.BW](2, 2, 10, 10)
	g.DrawRect(&rec, R(3, 3, 2, 2), true)
	want := []Point{{5, 5}, {6, 5}, {5, 6}, {6, 6}}
	if got := sorted(rec.set()); !equalPoints(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDrawRectClipsToContext(t *testing.T) {
	var rec recorder
	g := New[pixel.BW](0, 0, 4, 4)
	g.DrawRect(&rec, R(2, 2, 4, 4), true)
	for _, c := range rec.calls {
		if c.X >= 4 || c.Y >= 4 {
			t.Errorf("plotted %v outside the context", c)
		}
	}
	want := []Point{{2, 2}, {3, 2}, {2, 3}}
	if got := sorted(rec.set()); !equalPoints(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDrawRectOutline(t *testing.T) {
	var rec recorder
	g := New[pixel.BW](0, 0, 16, 16)
	g.DrawRect(&rec, R(1, 1, 4, 3), true)
	s := rec.set()
	if len(s) != 10 {
		t.Errorf("outline has %d pixels, want 10: %v", len(s), sorted(s))
	}
	if s[Pt(2, 2)] || s[Pt(3, 2)] {
		t.Errorf("outline filled its interior")
	}
	if !s[Pt(4, 3)] || s[Pt(5, 1)] || s[Pt(1, 4)] {
		t.Errorf("outline edges wrong: %v", sorted(s))
	}

	var empty recorder
	g.DrawRect(&empty, R(1, 1, 0, 5), true)
	if len(empty.calls) != 0 {
		t.Errorf("zero width rect plotted %v", empty.calls)
	}
}

func TestFillRect(t *testing.T) {
	b, _ := newBuffer(t, 16, 16)
	g := New[pixel.BW](1, 1, 15, 15)
	if err := g.FillRect(b, R(2, 3, 4, 5), true); err != nil {
		t.Fatal(err)
	}
	count := 0
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			p, _ := b.Get(x, y)
			inside := x >= 3 && x < 7 && y >= 4 && y < 9
			if bool(p) != inside {
				t.Errorf("(%d,%d) = %v, want %v", x, y, p, inside)
			}
			if p {
				count++
			}
		}
	}
	if count != 20 {
		t.Errorf("filled %d pixels, want 20", count)
	}
}

func TestDrawPolyline(t *testing.T) {
	g := New[pixel.BW](0, 0, 16, 16)

	for _, pts := range [][]Point{nil, {Pt(3, 3)}} {
		var rec recorder
		g.DrawPolyline(&rec, pts, true)
		if len(rec.calls) != 0 {
			t.Errorf("%d points plotted %v", len(pts), rec.calls)
		}
	}

	var rec recorder
	g.DrawPolyline(&rec, []Point{{0, 0}, {3, 0}, {3, 3}}, true)
	want := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {3, 2}, {3, 3}}
	if got := sorted(rec.set()); !equalPoints(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDrawPolygonCloses(t *testing.T) {
	var rec recorder
	g := New[pixel.BW](0, 0, 16, 16)
	g.DrawPolygon(&rec, []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, true)
	if got := len(rec.set()); got != 8 {
		t.Errorf("square polygon has %d pixels, want 8", got)
	}
}

func TestDrawEllipseDegenerate(t *testing.T) {
	g := New[pixel.BW](0, 0, 16, 16)
	for _, r := range []Rect{R(2, 2, 0, 5), R(2, 2, 5, 0), R(0, 0, 0, 0)} {
		var rec recorder
		g.DrawEllipse(&rec, r, true)
		if len(rec.calls) != 0 {
			t.Errorf("%v plotted %v", r, rec.calls)
		}
	}
}

func TestDrawEllipseCircle(t *testing.T) {
	var rec recorder
	g := New[pixel.BW](0, 0, 16, 16)
	g.DrawEllipse(&rec, R(0, 0, 4, 4), true)
	want := []Point{
		{1, 0}, {2, 0}, {3, 0},
		{0, 1}, {4, 1},
		{0, 2}, {4, 2},
		{0, 3}, {4, 3},
		{1, 4}, {2, 4}, {3, 4},
	}
	if got := sorted(rec.set()); !equalPoints(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDrawEllipseFlatReachesTips(t *testing.T) {
	var rec recorder
	g := New[pixel.BW](0, 0, 16, 16)
	g.DrawEllipse(&rec, R(0, 0, 7, 1), true)
	var want []Point
	for x := 0; x <= 7; x++ {
		want = append(want, Pt(x, 0), Pt(x, 1))
	}
	got := sorted(rec.set())
	if !equalPoints(got, sorted(pointSet(want))) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDrawEllipseSymmetry(t *testing.T) {
	for _, r := range []Rect{R(0, 0, 20, 10), R(3, 5, 8, 24), R(1, 1, 30, 2)} {
		var rec recorder
		g := New[pixel.BW](0, 0, 64, 64)
		g.DrawEllipse(&rec, r, true)
		s := rec.set()
		minX, maxX, minY, maxY := 1<<30, -1, 1<<30, -1
		for p := range s {
			mirror := Pt(2*r.X+r.W-p.X, 2*r.Y+r.H-p.Y)
			if !s[mirror] {
				t.Errorf("%v: %v has no mirror %v", r, p, mirror)
			}
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		}
		if minX != r.X || maxX != r.X+r.W || minY != r.Y || maxY != r.Y+r.H {
			t.Errorf("%v: extent x[%d,%d] y[%d,%d]", r, minX, maxX, minY, maxY)
		}
	}
}

func TestPrimitiveKeepsDrawingAfterError(t *testing.T) {
	b, _ := newBuffer(t, 8, 8)
	// The context is larger than the buffer.
	g := New[pixel.BW](0, 0, 16, 16)
	err := g.DrawLine(b, Pt(0, 2), Pt(12, 2), true)
	if !errors.Is(err, buffer.ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
	for x := 0; x < 8; x++ {
		if p, _ := b.Get(x, 2); !p {
			t.Errorf("in-range pixel (%d,2) not drawn", x)
		}
	}
}

func TestDrawThroughOffsetContextOnRGB(t *testing.T) {
	data := make([]byte, buffer.Len[pixel.RGB24](8, 8, 0, 0))
	b, err := buffer.New[pixel.RGB24](8, 8, 0, 0, data)
	if err != nil {
		t.Fatal(err)
	}
	g := New[pixel.RGB24](4, 4, 4, 4)
	red := pixel.Red[pixel.RGB24]()
	if err := g.DrawLine(b, Pt(0, 0), Pt(7, 0), red); err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 8; x++ {
		p, _ := b.Get(x, 4)
		if want := x >= 4; (p == red) != want {
			t.Errorf("(%d,4) = %v", x, p)
		}
	}
}
