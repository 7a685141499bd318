package smartedge

// ClampedBSpline converts control points into a smooth Bézier path.
//
// The points are treated as the control polygon of a uniform cubic B-spline whose
// first and last points are tripled, which clamps the curve to start at pts[0] and
// end at pts[len(pts)-1]. Every span of the spline is converted to an equivalent
// cubic Bézier, giving len(pts)−1 cubic segments. The start and end of the result
// are assigned from pts directly rather than computed, so they match the input
// exactly.
//
// Two points produce a single line. Fewer than two points produce an empty path.
func ClampedBSpline(pts []Point) BezPath {
	switch len(pts) {
	case 0, 1:
		return nil
	case 2:
		return BezPath{MoveTo(pts[0]), LineTo(pts[1])}
	}

	first, last := pts[0], pts[len(pts)-1]
	ext := make([]Point, 0, len(pts)+4)
	ext = append(ext, first, first)
	ext = append(ext, pts...)
	ext = append(ext, last, last)

	n := len(pts) - 1
	p := make(BezPath, 0, n+1)
	p.MoveTo(first)
	for i := range n {
		p1, p2, p3 := Vec2(ext[i+2]), Vec2(ext[i+3]), Vec2(ext[i+4])

		c1 := Point(p1.Mul(2).Add(p2).Div(3))
		c2 := Point(p1.Add(p2.Mul(2)).Div(3))
		var end Point
		if i == n-1 {
			end = last
		} else {
			end = Point(p1.Add(p2.Mul(4)).Add(p3).Div(6))
		}
		p.CubicTo(c1, c2, end)
	}
	return p
}
