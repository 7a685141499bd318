package smartedge

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrUnknownNode is returned when an edge references a node that isn't part of
	// the diagram.
	ErrUnknownNode = errors.New("unknown node")
	// ErrDuplicateNode is returned when two nodes share an ID.
	ErrDuplicateNode = errors.New("duplicate node")
)

// Edge connects two nodes of a diagram, identified by their IDs.
type Edge struct {
	ID     string
	Source string
	Target string
}

// RouteAll routes every edge of a diagram, using all nodes as obstacles. Anchors are
// the centers of the source and target nodes.
//
// Edges are routed concurrently. The returned paths are in the same order as
// edges. RouteAll returns an error wrapping [ErrUnknownNode] or [ErrDuplicateNode]
// for inconsistent diagrams, or the context's error if ctx is canceled before all
// edges have been routed.
func RouteAll(ctx context.Context, nodes []Obstacle, edges []Edge, opts Options) ([]BezPath, error) {
	byID := make(map[string]Obstacle, len(nodes))
	for _, n := range nodes {
		if _, ok := byID[n.ID]; ok {
			return nil, fmt.Errorf("node %q: %w", n.ID, ErrDuplicateNode)
		}
		byID[n.ID] = n
	}
	anchors := make([][2]Anchor, len(edges))
	for i, e := range edges {
		src, ok := byID[e.Source]
		if !ok {
			return nil, fmt.Errorf("edge %q: source %q: %w", e.ID, e.Source, ErrUnknownNode)
		}
		dst, ok := byID[e.Target]
		if !ok {
			return nil, fmt.Errorf("edge %q: target %q: %w", e.ID, e.Target, ErrUnknownNode)
		}
		anchors[i] = [2]Anchor{{ID: src.ID, Pt: src.Pt}, {ID: dst.ID, Pt: dst.Pt}}
	}

	paths := make([]BezPath, len(edges))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range edges {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			paths[i] = Route(anchors[i][0], anchors[i][1], nodes, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
