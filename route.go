package smartedge

// Anchor is the fixed start or end of a routed edge: the position where the edge
// attaches to its node, and the ID of that node.
type Anchor struct {
	ID string
	Pt Point
}

// Obstacle is the center of a node that edges should avoid.
//
// The ID identifies the node. Obstacles are matched against an edge's anchors by ID,
// never by position, to exclude the edge's own nodes.
type Obstacle struct {
	ID string
	Pt Point
}

// ObstacleFromBox returns an obstacle at the center of the node occupying box.
func ObstacleFromBox(id string, box Rect) Obstacle {
	return Obstacle{ID: id, Pt: box.Center()}
}

// Route computes the path of an edge from src to dst that bends away from
// obstacles.
//
// obstacles may contain every node of the diagram; those whose ID matches src.ID or
// dst.ID are ignored. The straight line between the anchors is discretized with
// [ControlPoints], relaxed with [Relax] and smoothed with [ClampedBSpline]. The
// resulting path starts exactly at src.Pt and ends exactly at dst.Pt. When the two
// anchors coincide, the path is a move-to followed by a zero-length line-to.
//
// Route never fails for finite input. Coordinates must not be NaN or infinite;
// this is not checked. Route keeps no state between calls and may be called
// concurrently.
func Route(src, dst Anchor, obstacles []Obstacle, opts Options) BezPath {
	opts = opts.withDefaults()
	pts := ControlPoints(src.Pt, dst.Pt, opts.Spacing)
	if len(pts) < minControlPoints {
		return BezPath{MoveTo(src.Pt), LineTo(dst.Pt)}
	}
	Relax(pts, obstacleCenters(src, dst, obstacles), opts)
	return ClampedBSpline(pts)
}

// obstacleCenters returns the positions of all obstacles other than the
// anchors' own nodes.
func obstacleCenters(src, dst Anchor, obstacles []Obstacle) []Point {
	out := make([]Point, 0, len(obstacles))
	for _, o := range obstacles {
		if o.ID == src.ID || o.ID == dst.ID {
			continue
		}
		out = append(out, o.Pt)
	}
	return out
}
