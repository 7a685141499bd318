package smartedge

import (
	"math"
)

// minControlPoints is the smallest number of control points of a non-degenerate
// edge. Three points leave one interior point free to bend.
const minControlPoints = 3

// maxControlPoints bounds the number of control points, and with it the memory
// and time spent on a single edge.
const maxControlPoints = 10000

// ControlPoints discretizes the straight line from s to t into evenly spaced
// control points, roughly spacing units apart.
//
// The number of points is max(3, ⌈|t−s| / spacing⌉), but at most 10000, so very
// small spacings or very long lines coarsen the discretization rather than
// exhaust memory. The first point is s and the last point is t, both exactly. If s
// and t coincide, the result is the degenerate sequence [s, s]. A non-positive
// spacing selects [DefaultSpacing].
func ControlPoints(s, t Point, spacing float64) []Point {
	if spacing <= 0 {
		spacing = DefaultSpacing
	}
	l := Line{s, t}
	length := l.Length()
	if length == 0 {
		return []Point{s, s}
	}

	n := maxControlPoints
	if c := math.Ceil(length / spacing); c < maxControlPoints {
		n = max(minControlPoints, int(c))
	}
	pts := make([]Point, n)
	for i := 1; i < n-1; i++ {
		pts[i] = l.Eval(float64(i) / float64(n-1))
	}
	pts[0] = s
	pts[n-1] = t
	return pts
}
