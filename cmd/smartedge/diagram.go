package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"honnef.co/go/smartedge"
)

// defaultNodeSize is the width and height of nodes whose size isn't given.
const defaultNodeSize = 120.0

// Diagram is the on-disk description of a diagram. JSON documents are accepted
// as well, since they are valid YAML.
type Diagram struct {
	// NodeSize is the default width and height of nodes.
	NodeSize float64 `yaml:"nodeSize" validate:"gte=0,finite"`
	Nodes    []Node  `yaml:"nodes" validate:"required,min=1,dive"`
	Edges    []Edge  `yaml:"edges" validate:"dive"`
}

// Node is a node positioned by its top left corner.
type Node struct {
	ID     string  `yaml:"id" validate:"required"`
	X      float64 `yaml:"x" validate:"finite"`
	Y      float64 `yaml:"y" validate:"finite"`
	Width  float64 `yaml:"width" validate:"gte=0,finite"`
	Height float64 `yaml:"height" validate:"gte=0,finite"`
}

type Edge struct {
	ID     string `yaml:"id"`
	Source string `yaml:"source" validate:"required"`
	Target string `yaml:"target" validate:"required"`
}

var errInvalidDiagram = errors.New("invalid diagram")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Coordinates must be finite before they reach the router.
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.Float64 && f.Kind() != reflect.Float32 {
			return false
		}
		x := f.Float()
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	}); err != nil {
		panic(err)
	}
	return v
}

// decodeDiagram reads and validates a diagram.
func decodeDiagram(r io.Reader) (*Diagram, error) {
	var d Diagram
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", errInvalidDiagram)
		}
		return nil, fmt.Errorf("decoding diagram: %w", err)
	}
	if err := validate.Struct(&d); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidDiagram, err)
	}
	for i := range d.Edges {
		if d.Edges[i].ID == "" {
			d.Edges[i].ID = fmt.Sprintf("%s->%s", d.Edges[i].Source, d.Edges[i].Target)
		}
	}
	return &d, nil
}

// size returns the size of n, falling back to the diagram's node size.
func (d *Diagram) size(n Node) smartedge.Size {
	def := d.NodeSize
	if def == 0 {
		def = defaultNodeSize
	}
	sz := smartedge.Sz(n.Width, n.Height)
	if sz.Width == 0 {
		sz.Width = def
	}
	if sz.Height == 0 {
		sz.Height = def
	}
	return sz
}

// box returns the rectangle occupied by n.
func (d *Diagram) box(n Node) smartedge.Rect {
	return smartedge.NewRectFromOrigin(smartedge.Pt(n.X, n.Y), d.size(n))
}

// obstacles returns the centers of all nodes.
func (d *Diagram) obstacles() []smartedge.Obstacle {
	out := make([]smartedge.Obstacle, len(d.Nodes))
	for i, n := range d.Nodes {
		out[i] = smartedge.ObstacleFromBox(n.ID, d.box(n))
	}
	return out
}

func (d *Diagram) edges() []smartedge.Edge {
	out := make([]smartedge.Edge, len(d.Edges))
	for i, e := range d.Edges {
		out[i] = smartedge.Edge{ID: e.ID, Source: e.Source, Target: e.Target}
	}
	return out
}
