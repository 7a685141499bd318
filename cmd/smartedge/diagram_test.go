package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/smartedge"
)

func TestDecodeDiagram(t *testing.T) {
	d, err := decodeDiagram(strings.NewReader(testDiagramYAML))
	require.NoError(t, err)
	require.Len(t, d.Nodes, 3)
	require.Len(t, d.Edges, 2)
	assert.Equal(t, "ab", d.Edges[0].ID)
	assert.Equal(t, "a->c", d.Edges[1].ID)
}

func TestDiagramObstacles(t *testing.T) {
	d := &Diagram{
		Nodes: []Node{
			{ID: "a", X: 0, Y: 0},
			{ID: "b", X: 100, Y: 50, Width: 40, Height: 20},
		},
	}
	want := []smartedge.Obstacle{
		{ID: "a", Pt: smartedge.Pt(60, 60)},
		{ID: "b", Pt: smartedge.Pt(120, 60)},
	}
	assert.Equal(t, want, d.obstacles())

	d.NodeSize = 10
	assert.Equal(t, smartedge.Pt(5, 5), d.obstacles()[0].Pt)
}

func TestDecodeDiagramInvalid(t *testing.T) {
	_, err := decodeDiagram(strings.NewReader("nodes: [{id: a, x: .inf, y: 0}]"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInvalidDiagram))
}
