// Package smartedge routes the edges of node diagrams around the nodes they don't
// connect.
//
// Given the two anchors of an edge and the centers of the diagram's nodes, [Route]
// computes a smooth path that starts exactly at the source anchor, ends exactly at
// the target anchor, and bends away from any node close enough to overlap the
// edge. Node placement is not the concern of this package; positions come from
// whatever layout the caller uses.
//
// # Pipeline
//
// Routing is a sequence of pure steps, each of which is exported so that it can
// be used and inspected on its own:
//
//   - [ControlPoints] discretizes the straight line between the anchors into
//     evenly spaced control points. Longer edges get more points.
//   - [Relax] iteratively pushes the interior control points away from nearby
//     obstacles, perpendicular to the direct line, with a linearly decaying
//     strength so that the points settle.
//   - [ClampedBSpline] interprets the relaxed points as a clamped uniform cubic
//     B-spline and converts it to a chain of cubic Béziers.
//   - [BezPath.SVG] and [WriteSVG] serialize the result as SVG path data.
//
// All parameters of the computation are collected in [Options]. The zero value
// uses the documented defaults, such as [DefaultSpacing] and
// [DefaultInfluenceRadius].
//
// # Bézier paths
//
// Routes are returned as [BezPath] values, slices of [PathElement]. Path elements
// are akin to drawing commands in graphics APIs like PostScript or SVG: a pen move
// ([MoveTo]) followed by drawing commands ([LineTo], [CubicTo]), all in absolute
// coordinates. [BezPath.Segments] offers the alternative view of self-contained
// [CubicBez] segments with explicit start points.
//
// # Concurrency
//
// Nothing in this package retains state between calls. Routing one edge is
// independent of routing any other, and [RouteAll] routes the edges of a whole
// diagram in parallel. Callers that re-render frequently should cache paths
// themselves; every call recomputes from scratch.
//
// # Preconditions
//
// Coordinates must be finite. Routing never fails for finite input: coincident
// anchors yield a zero-length line, and obstacles that are absent or out of reach
// leave the direct line unchanged.
package smartedge
