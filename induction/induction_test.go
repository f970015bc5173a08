package induction_test

import (
	"testing"

	"github.com/senseweave/watset/cluster"
	"github.com/senseweave/watset/cluster/together"
	"github.com/senseweave/watset/induction"
	"github.com/senseweave/watset/wgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInduceNoNeighborsReturnsEmpty(t *testing.T) {
	g := wgraph.NewGraph[string]()
	g.AddVertex("x")

	contexts, err := induction.Induce[string](g, "x", together.New[string])
	require.NoError(t, err)
	assert.Empty(t, contexts)
}

func TestInduceTogetherYieldsOneContext(t *testing.T) {
	g := wgraph.NewGraph[string]()
	require.NoError(t, g.AddEdge("x", "a", 1))
	require.NoError(t, g.AddEdge("x", "b", 2))
	require.NoError(t, g.AddEdge("a", "b", 5)) // edge within neighborhood, ignored for weights

	contexts, err := induction.Induce[string](g, "x", together.New[string])
	require.NoError(t, err)
	require.Len(t, contexts, 1)
	assert.Equal(t, map[string]float64{"a": 1, "b": 2}, contexts[0])
}

func TestInduceUnknownVertex(t *testing.T) {
	g := wgraph.NewGraph[string]()
	g.AddVertex("a")

	_, err := induction.Induce[string](g, "ghost", together.New[string])
	require.Error(t, err)
}

// splitClusterer is a two-group fake clusterer used to verify that Induce
// produces one context per local cluster, grounded on spec.md §8 scenario 6
// (bank should split into {river,water} and {money,loan}).
type splitClusterer struct {
	fitted   bool
	clusters []map[string]struct{}
}

func newSplitClusterer() cluster.Clusterer[string] { return &splitClusterer{} }

func (s *splitClusterer) Fit(g *wgraph.Graph[string]) error {
	left := map[string]struct{}{}
	right := map[string]struct{}{}
	for _, v := range g.VertexOrder() {
		switch v {
		case "river", "water":
			left[v] = struct{}{}
		default:
			right[v] = struct{}{}
		}
	}
	s.clusters = []map[string]struct{}{left, right}
	s.fitted = true
	return nil
}

func (s *splitClusterer) Clusters() ([]map[string]struct{}, error) {
	if !s.fitted {
		return nil, cluster.ErrNotFitted
	}
	return s.clusters, nil
}

func TestInduceTwoSenseScenario(t *testing.T) {
	g := wgraph.NewGraph[string]()
	require.NoError(t, g.AddEdge("bank", "river", 1))
	require.NoError(t, g.AddEdge("bank", "water", 1))
	require.NoError(t, g.AddEdge("bank", "money", 1))
	require.NoError(t, g.AddEdge("bank", "loan", 1))
	require.NoError(t, g.AddEdge("river", "water", 1))
	require.NoError(t, g.AddEdge("money", "loan", 1))

	contexts, err := induction.Induce[string](g, "bank", newSplitClusterer)
	require.NoError(t, err)
	require.Len(t, contexts, 2)
	assert.Equal(t, map[string]float64{"river": 1, "water": 1}, contexts[0])
	assert.Equal(t, map[string]float64{"money": 1, "loan": 1}, contexts[1])
}
