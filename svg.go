package smartedge

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands,
// suitable for the d attribute of a path element.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// Coordinates are absolute. With the default options every coordinate is
// written with enough digits to round-trip exactly, so the first and last
// coordinates of a routed edge match its anchors.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var buf []byte
	appendPt := func(pt Point) {
		buf = opts.appendCoord(buf, pt.X)
		buf = append(buf, ',')
		buf = opts.appendCoord(buf, pt.Y)
	}
	sep := false
	for el := range seq {
		buf = buf[:0]
		if sep {
			buf = append(buf, ' ')
		}
		sep = true
		switch el.Kind {
		case MoveToKind:
			buf = append(buf, 'M')
			appendPt(el.P0)
		case LineToKind:
			buf = append(buf, 'L')
			appendPt(el.P0)
		case CubicToKind:
			buf = append(buf, 'C')
			appendPt(el.P0)
			buf = append(buf, ' ')
			appendPt(el.P1)
			buf = append(buf, ' ')
			appendPt(el.P2)
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// appendCoord appends the decimal form of n to buf. Without a maximum precision
// this is the shortest form that parses back to n exactly.
func (opts SVGOptions) appendCoord(buf []byte, n float64) []byte {
	if opts.MaxPrecision <= 0 {
		return strconv.AppendFloat(buf, n, 'f', -1, 64)
	}
	start := len(buf)
	buf = strconv.AppendFloat(buf, n, 'f', opts.MaxPrecision, 64)
	buf = bytes.TrimRight(buf, "0")
	buf = bytes.TrimSuffix(buf, []byte("."))
	if string(buf[start:]) == "-0" {
		buf = append(buf[:start], '0')
	}
	return buf
}
