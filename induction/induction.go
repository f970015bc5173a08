package induction

import (
	"fmt"

	"github.com/senseweave/watset/cluster"
	"github.com/senseweave/watset/wgraph"
)

// Induce implements spec.md §4.6 for a single target vertex x:
//
//  1. Build the subgraph induced by neighbors(x) — x itself is excluded —
//     preserving the weights of every edge between pairs of neighbors.
//  2. Fit localFactory() on that subgraph to obtain clusters {K_1,...,K_k}.
//  3. For each K_i, build a context map ctx_i where ctx_i[y] = w(x,y) for
//     every y ∈ K_i.
//
// Returns the contexts in the order the local clusterer produced its
// clusters (stable given a stable neighborhood graph, per spec.md §5). If x
// has no neighbors, returns an empty, non-nil slice — the caller (Watset)
// is responsible for synthesizing the single empty-context sense spec.md
// §4.7 step 1 describes for that case.
//
// Complexity: O(deg(x) + Σ_{y∈N(x)} deg(y)) to build the subgraph, plus
// the local clusterer's own cost on that subgraph.
func Induce[V comparable](g *wgraph.Graph[V], x V, localFactory cluster.Factory[V]) ([]map[V]float64, error) {
	neighbors, err := g.Neighbors(x)
	if err != nil {
		return nil, fmt.Errorf("induction: neighbors of %v: %w", x, err)
	}
	if len(neighbors) == 0 {
		return []map[V]float64{}, nil
	}

	ego := g.InducedSubgraph(neighbors)

	local := localFactory()
	if err := local.Fit(ego); err != nil {
		return nil, fmt.Errorf("induction: local clusterer fit for %v: %w", x, err)
	}
	egoClusters, err := local.Clusters()
	if err != nil {
		return nil, fmt.Errorf("induction: local clusterer clusters for %v: %w", x, err)
	}

	contexts := make([]map[V]float64, 0, len(egoClusters))
	for _, k := range egoClusters {
		ctx := make(map[V]float64, len(k))
		for y := range k {
			w, err := g.EdgeWeight(x, y)
			if err != nil {
				return nil, fmt.Errorf("induction: weight(%v,%v): %w", x, y, err)
			}
			ctx[y] = w
		}
		contexts = append(contexts, ctx)
	}

	return contexts, nil
}
