package smartedge

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
)

// PathElement is one drawing command of a [BezPath].
//
// A valid path has a MoveTo at its beginning. For LineTo only P0 is used; for CubicTo
// P0 and P1 are the control handles and P2 is the end point.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case CubicToKind:
		kind = "CubicTo"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN()
}

// EndPoint returns the end point of the path element, or false if the element is
// invalid.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind:
		return el.P0, true
	case LineToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// BezPath is a Bézier path, stored as a slice of path elements. It is the output of
// the router: a move-to followed by either a single line-to or a chain of cubic
// Béziers, all in absolute coordinates.
//
// A BezPath does not reference the inputs it was computed from.
type BezPath []PathElement

// Push appends a path element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// CubicTo pushes a "cubic to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Segments returns an iterator over the drawn segments of the path, each expressed
// as a cubic Bézier with an explicit start point. Lines are returned as degenerate
// cubics. Move-to elements only update the current position.
func (p BezPath) Segments() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		var last Point
		for _, el := range p {
			switch el.Kind {
			case MoveToKind:
				last = el.P0
			case LineToKind:
				if !yield(Line{last, el.P0}.Cubic()) {
					return
				}
				last = el.P0
			case CubicToKind:
				if !yield(CubicBez{last, el.P0, el.P1, el.P2}) {
					return
				}
				last = el.P2
			}
		}
	}
}

// Start returns the point the path starts at, or false if the path is empty.
func (p BezPath) Start() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[0].EndPoint()
}

// End returns the point the path ends at, or false if the path is empty.
func (p BezPath) End() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[len(p)-1].EndPoint()
}

// IsInf reports whether any element of the path has infinite coordinates.
func (p BezPath) IsInf() bool {
	for _, el := range p {
		if el.IsInf() {
			return true
		}
	}
	return false
}

// IsNaN reports whether any element of the path has NaN coordinates.
func (p BezPath) IsNaN() bool {
	for _, el := range p {
		if el.IsNaN() {
			return true
		}
	}
	return false
}

// ControlBox returns a rectangle that conservatively encloses the path.
//
// It uses control points directly rather than computing tight bounds for curve
// elements. The control box of an empty path is the zero rectangle.
func (p BezPath) ControlBox() Rect {
	first := true
	var cbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for i := range p {
		el := p[i]
		switch el.Kind {
		case MoveToKind, LineToKind:
			addPt(el.P0)
		case CubicToKind:
			addPt(el.P0)
			addPt(el.P1)
			addPt(el.P2)
		}
	}

	return cbox
}

// SVG converts the path to an SVG path string. See [SVG].
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

// WriteSVG writes the path as an SVG path string to w. See [WriteSVG].
func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}
