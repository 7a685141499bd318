package smartedge

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	epsilon := 1e-9
	if d := math.Abs(l.Length() - want); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
}

func TestLineNormal(t *testing.T) {
	l := Line{Pt(0, 0), Pt(400, 0)}
	diff(t, l.Direction(), Vec(1, 0), cmpopts.EquateApprox(0, 1e-15))
	// A point below the line in a y-down system is on the positive side.
	if side := Pt(200, 50).Sub(l.Eval(0.5)).Dot(l.Normal()); side <= 0 {
		t.Errorf("got side %g, want > 0", side)
	}

	l = Line{Pt(10, 10), Pt(40, 50)}
	diff(t, l.Normal(), Vec(-0.8, 0.6), cmpopts.EquateApprox(0, 1e-12))
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(0.0, math.Inf(1))}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestLinePathElements(t *testing.T) {
	l := Line{Pt(1, 2), Pt(3, 4)}
	diff(t, BezPath(slices.Collect(l.PathElements())), BezPath{MoveTo(Pt(1, 2)), LineTo(Pt(3, 4))})
	diff(t, l.Cubic(), CubicBez{Pt(1, 2), Pt(1, 2), Pt(3, 4), Pt(3, 4)})
}
