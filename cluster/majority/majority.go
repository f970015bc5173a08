package majority

import (
	"slices"
	"sort"

	"github.com/senseweave/watset/argmax"
	"github.com/senseweave/watset/cluster"
	"github.com/senseweave/watset/wgraph"
)

// defaultMaxIterations bounds the label-propagation loop so a pathological
// oscillation (rare once tie-breaking is deterministic) cannot spin
// forever.
const defaultMaxIterations = 20

// Clusterer runs deterministic label propagation over the fitted graph.
// MaxIterations defaults to 20 when left at zero.
type Clusterer[V comparable] struct {
	MaxIterations int

	fitted   bool
	clusters []map[V]struct{}
}

var _ cluster.Clusterer[string] = (*Clusterer[string])(nil)

// New constructs a fresh Clusterer with the default iteration bound.
// Matches cluster.Factory[V].
func New[V comparable]() cluster.Clusterer[V] {
	return &Clusterer[V]{MaxIterations: defaultMaxIterations}
}

// Fit runs label propagation to convergence (or MaxIterations, whichever
// comes first): every vertex starts labeled with itself, then on each pass
// adopts the label with the greatest total incident edge weight among its
// neighbors, ties broken by the label vertex's position in g's insertion
// order (the closest deterministic analogue to lexicographic order for an
// unordered vertex type).
//
// Complexity: O(iterations · (|V| + |E|)).
func (c *Clusterer[V]) Fit(g *wgraph.Graph[V]) error {
	vertices := g.VertexOrder()
	indexOf := make(map[V]int, len(vertices))
	for i, v := range vertices {
		indexOf[v] = i
	}

	labels := make(map[V]V, len(vertices))
	for _, v := range vertices {
		labels[v] = v
	}

	limit := c.MaxIterations
	if limit <= 0 {
		limit = defaultMaxIterations
	}

	for iter := 0; iter < limit; iter++ {
		changed := false
		for _, u := range vertices {
			nbrs, err := g.Neighbors(u)
			if err != nil || len(nbrs) == 0 {
				continue
			}

			weights := make(map[V]float64, len(nbrs))
			for _, v := range nbrs {
				w, err := g.EdgeWeight(u, v)
				if err != nil {
					continue
				}
				weights[labels[v]] += w
			}

			candidates := make([]V, 0, len(weights))
			for l := range weights {
				candidates = append(candidates, l)
			}
			sort.Slice(candidates, func(i, j int) bool {
				return indexOf[candidates[i]] < indexOf[candidates[j]]
			})

			best, ok := argmax.Argmax(slices.Values(candidates), nil, func(l V) float64 { return weights[l] })
			if ok && best != labels[u] {
				labels[u] = best
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	c.clusters = groupByLabel(vertices, labels)
	c.fitted = true

	return nil
}

// groupByLabel collects vertices sharing a label into clusters, emitting
// clusters in the order their label was first seen in vertex insertion
// order (deterministic given a stable input graph).
func groupByLabel[V comparable](vertices []V, labels map[V]V) []map[V]struct{} {
	members := make(map[V][]V)
	for _, v := range vertices {
		l := labels[v]
		members[l] = append(members[l], v)
	}

	clusters := make([]map[V]struct{}, 0, len(members))
	seen := make(map[V]bool, len(members))
	for _, v := range vertices {
		l := labels[v]
		if seen[l] {
			continue
		}
		seen[l] = true

		set := make(map[V]struct{}, len(members[l]))
		for _, m := range members[l] {
			set[m] = struct{}{}
		}
		clusters = append(clusters, set)
	}

	return clusters
}

// Clusters returns the result of the most recent Fit, or
// cluster.ErrNotFitted if Fit has not yet run.
func (c *Clusterer[V]) Clusters() ([]map[V]struct{}, error) {
	if !c.fitted {
		return nil, cluster.ErrNotFitted
	}

	return c.clusters, nil
}
