package together_test

import (
	"testing"

	"github.com/senseweave/watset/cluster"
	"github.com/senseweave/watset/cluster/together"
	"github.com/senseweave/watset/wgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTogetherSingleCluster(t *testing.T) {
	g := wgraph.NewGraph[string]()
	require.NoError(t, g.AddEdge("a", "b", 1))
	g.AddVertex("c")

	c := together.New[string]()
	require.NoError(t, c.Fit(g))

	clusters, err := c.Clusters()
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, map[string]struct{}{"a": {}, "b": {}, "c": {}}, clusters[0])
}

func TestTogetherEmptyGraph(t *testing.T) {
	g := wgraph.NewGraph[string]()
	c := together.New[string]()
	require.NoError(t, c.Fit(g))

	clusters, err := c.Clusters()
	require.NoError(t, err)
	assert.Empty(t, clusters)
}

func TestTogetherNotFitted(t *testing.T) {
	c := together.New[string]()
	_, err := c.Clusters()
	require.ErrorIs(t, err, cluster.ErrNotFitted)
}
