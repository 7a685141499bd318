package smartedge

// minDistance is the distance below which a control point and an obstacle are
// considered coincident. Their force has the maximum magnitude, but as they lie
// on neither side of the normal it cancels out.
const minDistance = 1e-9

// Relax iteratively pushes the interior points of pts away from nearby obstacles.
// pts is modified in place; the first and last points are never moved.
//
// All displacement happens along a single normal: the unit vector perpendicular to
// the line from the first to the last point. It is computed once and not updated as
// points move, trading natural-looking curves for stability. Each pass k of
// opts.Iterations scales its displacement by 1 − k/opts.Iterations so that the
// system settles instead of oscillating.
//
// The force a single obstacle at distance d exerts on a point is
//
//	ForceStrength · (1 − d/InfluenceRadius) / (d/NodeRadius)
//
// for d < InfluenceRadius and zero otherwise. Obstacles on the positive side of the
// normal push the point towards the negative side and vice versa. Obstacles lying
// exactly on the line through the point parallel to the edge, including obstacles
// coinciding with the point, are on neither side and exert no force. The
// summed force on a point is clamped to ±MaxForce per pass.
//
// Forces only depend on obstacle positions, never on other control points, so the
// result is independent of the order in which points are visited. Sequences with
// fewer than three points, or whose end points coincide, are left unchanged.
func Relax(pts []Point, obstacles []Point, opts Options) {
	opts = opts.withDefaults()
	if len(pts) < minControlPoints || len(obstacles) == 0 {
		return
	}
	l := Line{pts[0], pts[len(pts)-1]}
	if l.Length() == 0 {
		return
	}
	normal := l.Normal()

	n := float64(opts.Iterations)
	for k := range opts.Iterations {
		attenuation := 1 - float64(k)/n
		for i := 1; i < len(pts)-1; i++ {
			var total float64
			for _, o := range obstacles {
				total -= repulsion(pts[i], o, normal, opts)
			}
			total = max(-opts.MaxForce, min(opts.MaxForce, total))
			pts[i] = pts[i].Translate(normal.Mul(total * attenuation))
		}
	}
}

// repulsion returns the force obstacle o exerts on pt, signed by the side of the
// normal the obstacle is on. opts must have its defaults applied.
func repulsion(pt, o Point, normal Vec2, opts Options) float64 {
	d := pt.Distance(o)
	if d >= opts.InfluenceRadius {
		return 0
	}
	var f float64
	if d < minDistance {
		f = opts.MaxForce
	} else {
		f = opts.ForceStrength * (1 - d/opts.InfluenceRadius) / (d / opts.NodeRadius)
	}
	side := o.Sub(pt).Dot(normal)
	switch {
	case side < 0:
		return -f
	case side > 0:
		return f
	default:
		return 0
	}
}
