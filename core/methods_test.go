// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/starpath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGraph_AddVertex verifies vertex lifecycle rules.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))

	// duplicate is a no-op
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())

	v, err := g.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, "A", v.ID)
	assert.NotNil(t, v.Metadata)

	_, err = g.Vertex("X")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	tests := []struct {
		name string
		opts []core.GraphOption
		from string
		to   string
		w    float64
		want error
	}{
		{"empty from", nil, "", "B", 0, core.ErrEmptyVertexID},
		{"empty to", nil, "A", "", 0, core.ErrEmptyVertexID},
		{"weight on unweighted", nil, "A", "B", 2, core.ErrBadWeight},
		{"NaN weight", []core.GraphOption{core.WithWeighted()}, "A", "B", math.NaN(), core.ErrBadWeight},
		{"loop forbidden", nil, "A", "A", 0, core.ErrLoopNotAllowed},
		{"loop allowed", []core.GraphOption{core.WithLoops()}, "A", "A", 0, nil},
		{"weighted ok", []core.GraphOption{core.WithWeighted()}, "A", "B", 2.5, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			_, err := g.AddEdge(tc.from, tc.to, tc.w)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGraph_MultiEdges(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	// undirected mirror counts as a parallel edge as well
	_, err = g.AddEdge("B", "A", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	m := core.NewGraph(core.WithMultiEdges())
	_, err = m.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = m.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, m.EdgeCount())

	ids, err := m.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ids, "neighbor IDs are unique")
}

func TestGraph_DirectedAdjacency(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 4)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.True(t, g.HasDirectedEdges())

	out, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, out)

	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	assert.Equal(t, 4.0, e.Weight)
	assert.True(t, e.Directed)
}

func TestGraph_UndirectedNeighbors(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", 2)
	require.NoError(t, err)

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbs, 2)
	assert.Equal(t, "B", nbs[0].Other("A"))
	assert.Equal(t, "C", nbs[1].Other("A"))
	assert.False(t, g.HasDirectedEdges())

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(eid))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)
	_, err = g.GetEdge(eid)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	// vertices survive edge removal
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
}

// TestGraph_DeterministicOrder anchors creation order for Edges and
// lexical order for Vertices, including the "e2" < "e10" case.
func TestGraph_DeterministicOrder(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("A", "B", 0)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("0"))

	edges := g.Edges()
	require.Len(t, edges, 12)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e2", edges[1].ID)
	assert.Equal(t, "e10", edges[9].ID)
	assert.Equal(t, []string{"0", "A", "B"}, g.Vertices())
}

func TestGraph_Flags(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	assert.True(t, g.Directed())
	assert.True(t, g.Weighted())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())

	d := core.NewGraph()
	assert.False(t, d.Directed())
	assert.False(t, d.Weighted())
}
