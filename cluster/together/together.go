package together

import (
	"github.com/senseweave/watset/cluster"
	"github.com/senseweave/watset/wgraph"
)

// Clusterer places every vertex of the fitted graph into one cluster. An
// empty graph fits to zero clusters (there is nothing to group).
type Clusterer[V comparable] struct {
	fitted   bool
	clusters []map[V]struct{}
}

var _ cluster.Clusterer[string] = (*Clusterer[string])(nil)

// New constructs a fresh, unfitted Clusterer. Matches cluster.Factory[V].
func New[V comparable]() cluster.Clusterer[V] {
	return &Clusterer[V]{}
}

// Fit collects every vertex of g into a single cluster.
// Complexity: O(|V|).
func (c *Clusterer[V]) Fit(g *wgraph.Graph[V]) error {
	vertices := g.VertexOrder()
	if len(vertices) == 0 {
		c.clusters = []map[V]struct{}{}
		c.fitted = true
		return nil
	}

	whole := make(map[V]struct{}, len(vertices))
	for _, v := range vertices {
		whole[v] = struct{}{}
	}

	c.clusters = []map[V]struct{}{whole}
	c.fitted = true

	return nil
}

// Clusters returns the result of the most recent Fit, or
// cluster.ErrNotFitted if Fit has not yet run.
func (c *Clusterer[V]) Clusters() ([]map[V]struct{}, error) {
	if !c.fitted {
		return nil, cluster.ErrNotFitted
	}

	return c.clusters, nil
}
