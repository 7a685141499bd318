package smartedge

import (
	"math"
	"testing"
)

func TestClampedBSplineDegenerate(t *testing.T) {
	if p := ClampedBSpline(nil); len(p) != 0 {
		t.Errorf("got %v for no points", p)
	}
	if p := ClampedBSpline([]Point{Pt(1, 1)}); len(p) != 0 {
		t.Errorf("got %v for a single point", p)
	}
	diff(t, BezPath{MoveTo(Pt(1, 2)), LineTo(Pt(3, 4))}, ClampedBSpline([]Point{Pt(1, 2), Pt(3, 4)}))
}

func TestClampedBSplineThreePoints(t *testing.T) {
	got := ClampedBSpline([]Point{Pt(0, 0), Pt(150, 0), Pt(300, 0)})
	want := BezPath{
		MoveTo(Pt(0, 0)),
		CubicTo(Pt(50, 0), Pt(100, 0), Pt(150, 0)),
		CubicTo(Pt(200, 0), Pt(250, 0), Pt(300, 0)),
	}
	diff(t, want, got)
}

func TestClampedBSplineExactEndpoints(t *testing.T) {
	pts := []Point{Pt(0.1, 0.3), Pt(17.7, -3.1), Pt(40.3, 9.9), Pt(77.7, 1.1), Pt(91.3, 0.7)}
	p := ClampedBSpline(pts)
	if len(p) != len(pts) {
		t.Fatalf("got %d elements, want %d", len(p), len(pts))
	}
	if p[0] != MoveTo(pts[0]) {
		t.Errorf("path starts with %v, want %v", p[0], MoveTo(pts[0]))
	}
	for _, el := range p[1:] {
		if el.Kind != CubicToKind {
			t.Errorf("got %v, want cubic", el)
		}
	}
	if end, _ := p.End(); end != pts[len(pts)-1] {
		t.Errorf("path ends at %v, want %v", end, pts[len(pts)-1])
	}
}

func TestClampedBSplineStraight(t *testing.T) {
	s, e := Pt(0, 0), Pt(300, 400)
	l := Line{s, e}
	n := l.Normal()
	p := ClampedBSpline(ControlPoints(s, e, 60))
	for c := range p.Segments() {
		for i := range 11 {
			pt := c.Eval(float64(i) / 10)
			if d := math.Abs(pt.Sub(s).Dot(n)); d > 1e-9 {
				t.Errorf("%v is %g away from the straight line", pt, d)
			}
		}
	}
}

func TestClampedBSplineContinuous(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(100, -20), Pt(200, -35), Pt(300, -20), Pt(400, 0)}
	p := ClampedBSpline(pts)
	var prev CubicBez
	i := 0
	for c := range p.Segments() {
		if i > 0 && c.Start() != prev.End() {
			t.Errorf("segment %d starts at %v, previous ends at %v", i, c.Start(), prev.End())
		}
		if c.IsNaN() || c.IsInf() {
			t.Errorf("segment %d is %v", i, c)
		}
		prev = c
		i++
	}
	if i != len(pts)-1 {
		t.Errorf("got %d segments, want %d", i, len(pts)-1)
	}
}
