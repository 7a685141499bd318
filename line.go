package smartedge

import (
	"iter"
)

// Line represents a line segment, such as the direct connection between an edge's
// source and target.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at parameter t, with t = 0 being P0 and t = 1 being P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Direction returns the unit vector pointing from P0 to P1. It is NaN for lines of
// zero length.
func (l Line) Direction() Vec2 {
	return l.P1.Sub(l.P0).Normalize()
}

// Normal returns the unit vector perpendicular to the line, which is [Line.Direction]
// turned by 90°. Points on the positive side of the line have a positive dot product
// with it.
func (l Line) Normal() Vec2 {
	return l.Direction().Turn90()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(l.P0)) &&
			yield(LineTo(l.P1))
	}
}

// Cubic returns the line as a degenerate cubic Bézier.
func (l Line) Cubic() CubicBez {
	return CubicBez{l.P0, l.P0, l.P1, l.P1}
}
