package main

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/smartedge"
)

// margin is the space left around the diagram's contents.
const margin = 20.0

// renderSVG writes a standalone SVG document showing the diagram's nodes as
// circles and its edges as the routed paths.
func renderSVG(w io.Writer, d *Diagram, paths []smartedge.BezPath, opts smartedge.SVGOptions) error {
	bw := bufio.NewWriter(w)

	var bounds smartedge.Rect
	for i, n := range d.Nodes {
		if i == 0 {
			bounds = d.box(n)
		} else {
			bounds = bounds.Union(d.box(n))
		}
	}
	for _, p := range paths {
		if len(p) > 0 {
			bounds = bounds.Union(p.ControlBox())
		}
	}
	bounds = bounds.Inflate(margin, margin)

	num := func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		num(bounds.X0), num(bounds.Y0), num(bounds.Width()), num(bounds.Height()))

	for i, p := range paths {
		fmt.Fprintf(bw, `<path id="%s" d="`, escape(d.Edges[i].ID))
		if err := p.WriteSVG(bw, opts); err != nil {
			return err
		}
		fmt.Fprintln(bw, `" fill="none" stroke="#10b981" stroke-width="2" />`)
	}
	for _, n := range d.Nodes {
		box := d.box(n)
		c := box.Center()
		r := min(box.Width(), box.Height()) / 2
		fmt.Fprintf(bw, `<circle id="%s" cx="%s" cy="%s" r="%s" fill="#6366f1" />`+"\n",
			escape(n.ID), num(c.X), num(c.Y), num(r))
		fmt.Fprintf(bw, `<text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" fill="white">%s</text>`+"\n",
			num(c.X), num(c.Y), escape(n.ID))
	}
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

func escape(s string) string {
	var sb strings.Builder
	xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
