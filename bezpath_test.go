package smartedge

import (
	"slices"
	"testing"
)

func TestBezPathSegments(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.CubicTo(Pt(20, 0), Pt(30, 10), Pt(30, 20))

	want := []CubicBez{
		{Pt(0, 0), Pt(0, 0), Pt(10, 0), Pt(10, 0)},
		{Pt(10, 0), Pt(20, 0), Pt(30, 10), Pt(30, 20)},
	}
	diff(t, want, slices.Collect(p.Segments()))
}

func TestBezPathStartEnd(t *testing.T) {
	if _, ok := BezPath(nil).Start(); ok {
		t.Error("empty path has a start point")
	}
	if _, ok := BezPath(nil).End(); ok {
		t.Error("empty path has an end point")
	}

	p := BezPath{MoveTo(Pt(1, 2)), CubicTo(Pt(3, 4), Pt(5, 6), Pt(7, 8))}
	start, _ := p.Start()
	end, _ := p.End()
	diff(t, Pt(1, 2), start)
	diff(t, Pt(7, 8), end)
}

func TestBezPathControlBox(t *testing.T) {
	p := BezPath{MoveTo(Pt(1, 2)), CubicTo(Pt(-3, 4), Pt(5, 16), Pt(7, 8))}
	diff(t, Rect{-3, 2, 7, 16}, p.ControlBox())
	diff(t, Rect{}, BezPath(nil).ControlBox())

	c := CubicBez{Pt(1, 2), Pt(-3, 4), Pt(5, 16), Pt(7, 8)}
	diff(t, p.ControlBox(), c.ControlBox())
}

func TestPathElementEndPoint(t *testing.T) {
	if pt, _ := CubicTo(Pt(1, 1), Pt(2, 2), Pt(3, 3)).EndPoint(); pt != Pt(3, 3) {
		t.Errorf("got %v, want (3, 3)", pt)
	}
	if _, ok := (PathElement{}).EndPoint(); ok {
		t.Error("invalid element has an end point")
	}
}
