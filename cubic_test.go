package smartedge

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezEval(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 30), Pt(90, 30), Pt(90, 0)}
	diff(t, c.Start(), c.Eval(0))
	diff(t, c.End(), c.Eval(1))
	diff(t, Pt(45, 22.5), c.Eval(0.5), cmpopts.EquateApprox(0, 1e-12))

	// A line raised to a cubic stays on the line.
	l := Line{Pt(0, 0), Pt(10, 20)}
	for _, ts := range []float64{0.25, 0.5, 0.75} {
		pt := l.Cubic().Eval(ts)
		if d := pt.Sub(l.P0).Dot(l.Normal()); d > 1e-12 || d < -1e-12 {
			t.Errorf("%v is %g away from the line", pt, d)
		}
	}
}
