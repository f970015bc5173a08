package wgraph_test

import (
	"math"
	"testing"

	"github.com/senseweave/watset/wgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := wgraph.NewGraph[string]()
	err := g.AddEdge("a", "a", 1)
	require.ErrorIs(t, err, wgraph.ErrSelfLoop)
}

func TestAddEdgeRejectsNegativeWeight(t *testing.T) {
	g := wgraph.NewGraph[string]()
	err := g.AddEdge("a", "b", -1)
	require.ErrorIs(t, err, wgraph.ErrNegativeWeight)
}

func TestAddEdgeRejectsNaNWeight(t *testing.T) {
	g := wgraph.NewGraph[string]()
	err := g.AddEdge("a", "b", math.NaN())
	require.ErrorIs(t, err, wgraph.ErrNaNWeight)
}

func TestAddEdgeIsUndirectedAndLastWriteWins(t *testing.T) {
	g := wgraph.NewGraph[string]()
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "a", 2))

	w, err := g.EdgeWeight("a", "b")
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)

	w, err = g.EdgeWeight("b", "a")
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
}

func TestEdgesOfUnknownVertex(t *testing.T) {
	g := wgraph.NewGraph[string]()
	_, err := g.EdgesOf("ghost")
	require.ErrorIs(t, err, wgraph.ErrVertexNotFound)
}

func TestMaxIncidentWeightIsolated(t *testing.T) {
	g := wgraph.NewGraph[string]()
	g.AddVertex("a")
	_, ok := g.MaxIncidentWeight("a")
	assert.False(t, ok)
}

func TestMaxIncidentWeightTie(t *testing.T) {
	g := wgraph.NewGraph[string]()
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("a", "c", 1))
	require.NoError(t, g.AddEdge("a", "d", 0.5))

	max, ok := g.MaxIncidentWeight("a")
	require.True(t, ok)
	assert.Equal(t, 1.0, max)
}

func TestOppositeVertex(t *testing.T) {
	e := wgraph.Edge[string]{From: "a", To: "b", Weight: 1}
	v, err := e.OppositeVertex("a")
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	_, err = e.OppositeVertex("z")
	require.ErrorIs(t, err, wgraph.ErrOpaqueVertex)
}

func TestInducedSubgraphExcludesOutsideEdges(t *testing.T) {
	g := wgraph.NewGraph[string]()
	require.NoError(t, g.AddEdge("x", "a", 1))
	require.NoError(t, g.AddEdge("x", "b", 1))
	require.NoError(t, g.AddEdge("a", "b", 3))
	require.NoError(t, g.AddEdge("a", "c", 5)) // c not in neighborhood

	sub := g.InducedSubgraph([]string{"a", "b"})
	assert.ElementsMatch(t, []string{"a", "b"}, sub.VertexSet())

	w, err := sub.EdgeWeight("a", "b")
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)

	_, err = sub.EdgeWeight("a", "c")
	require.ErrorIs(t, err, wgraph.ErrEdgeNotFound)
}

func TestDigraphAddEdgeDedups(t *testing.T) {
	d := wgraph.NewDigraph[string]([]string{"a", "b"})
	d.AddEdge("a", "b")
	d.AddEdge("a", "b")

	succ, err := d.Successors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, succ)
}

func TestBuilderDedupsVerticesAndOverwritesEdges(t *testing.T) {
	b := wgraph.NewBuilder[string]()
	b.Vertex("a").Vertex("a").Vertex("b")
	require.NoError(t, b.Edge("a", "b", 1))
	require.NoError(t, b.Edge("a", "b", 4))

	g := b.Build()
	assert.Equal(t, 2, g.Order())
	w, err := g.EdgeWeight("a", "b")
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)
}
