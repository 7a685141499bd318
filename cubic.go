package smartedge

import (
	"iter"
)

// CubicBez is a cubic Bézier segment. Routed edges are chains of these.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(c.P0)) &&
			yield(CubicTo(c.P1, c.P2, c.P3))
	}
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	d := Vec2(c.P2).Mul(mt * 3.0)
	e := Vec2(c.P3)
	v := a.Add(b.Add(d.Add(e.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// ControlBox returns the rectangle spanned by the four control points. It always
// contains the curve.
func (c CubicBez) ControlBox() Rect {
	return NewRectFromPoints(c.P0, c.P0).
		UnionPoint(c.P1).
		UnionPoint(c.P2).
		UnionPoint(c.P3)
}
