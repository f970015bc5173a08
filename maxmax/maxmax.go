package maxmax

import (
	"github.com/senseweave/watset/cluster"
	"github.com/senseweave/watset/wgraph"
)

// MaxMax runs the algorithm of spec.md §4.5 on a single graph. It satisfies
// cluster.Clusterer[V]; construct one instance per graph (New()), call
// Fit(g) once, then read Clusters() or the derived-state accessors below.
type MaxMax[V comparable] struct {
	fitted   bool
	maximal  map[V]map[V]struct{}
	digraph  *wgraph.Digraph[V]
	roots    map[V]bool
	clusters []map[V]struct{}
}

var _ cluster.Clusterer[string] = (*MaxMax[string])(nil)

// New constructs an unfitted MaxMax instance.
func New[V comparable]() *MaxMax[V] {
	return &MaxMax[V]{}
}

// Fit runs the three-stage MaxMax algorithm on g (spec.md §4.5):
//
//  1. Preparation: for each vertex u, compute M(u), the set of neighbors
//     sharing u's maximum incident edge weight (empty if u is isolated).
//  2. Graph transformation: build the directed maximal-neighbor graph D —
//     for each undirected edge (u,v), add v→u to D if v ∈ M(u), and add
//     u→v if u ∈ M(v). Both branches may fire on the same edge; D dedupes.
//  3. Cluster extraction: sweep vertices in insertion order, demoting to
//     non-root every vertex reachable (in D) from a still-root vertex's
//     successors, then collect, for each surviving root, every vertex
//     reachable from it in D (including itself) as one cluster.
//
// Re-fitting an instance discards and recomputes all derived state from
// scratch (spec.md §3's "single run" lifecycle).
//
// Complexity: O(|V|+|E|) for steps 1–2; O(|V|+|E|) amortized for step 3 —
// the demotion sweep visits each vertex once globally, and the final
// per-root reachability walk in step 4 is bounded by the size of its
// output cluster.
func (m *MaxMax[V]) Fit(g *wgraph.Graph[V]) error {
	vertices := g.VertexOrder()

	maximal := computeMaximal(g, vertices)
	digraph := buildDigraph(g, vertices, maximal)
	roots := sweepRoots(digraph, vertices)
	clusters := collectClusters(digraph, vertices, roots)

	m.maximal = maximal
	m.digraph = digraph
	m.roots = roots
	m.clusters = clusters
	m.fitted = true

	return nil
}

// computeMaximal implements step 1: M(u) = {v : w(u,v) = max incident
// weight of u}, empty for an isolated vertex.
func computeMaximal[V comparable](g *wgraph.Graph[V], vertices []V) map[V]map[V]struct{} {
	maximal := make(map[V]map[V]struct{}, len(vertices))
	for _, u := range vertices {
		set := make(map[V]struct{})
		max, ok := g.MaxIncidentWeight(u)
		if ok {
			edges, _ := g.EdgesOf(u)
			for _, e := range edges {
				if e.Weight == max {
					set[e.To] = struct{}{}
				}
			}
		}
		maximal[u] = set
	}

	return maximal
}

// buildDigraph implements step 2.
func buildDigraph[V comparable](g *wgraph.Graph[V], vertices []V, maximal map[V]map[V]struct{}) *wgraph.Digraph[V] {
	d := wgraph.NewDigraph[V](vertices)
	for _, e := range g.EdgeSet() {
		u, v := e.From, e.To
		if _, ok := maximal[u][v]; ok {
			d.AddEdge(v, u)
		}
		if _, ok := maximal[v][u]; ok {
			d.AddEdge(u, v)
		}
	}

	return d
}

// sweepRoots implements step 3: deterministic root-demotion sweep over
// vertices in insertion order.
func sweepRoots[V comparable](d *wgraph.Digraph[V], vertices []V) map[V]bool {
	roots := make(map[V]bool, len(vertices))
	for _, v := range vertices {
		roots[v] = true
	}

	for _, v := range vertices {
		if !roots[v] {
			continue
		}

		succ, _ := d.Successors(v)
		frontier := make([]V, 0, len(succ))
		seen := make(map[V]struct{}, len(succ))
		for _, s := range succ {
			if s == v {
				continue
			}
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				frontier = append(frontier, s)
			}
		}

		for i := 0; i < len(frontier); i++ {
			u := frontier[i]
			roots[u] = false

			next, _ := d.Successors(u)
			for _, w := range next {
				if w == v {
					continue
				}
				if _, ok := seen[w]; ok {
					continue
				}
				seen[w] = struct{}{}
				frontier = append(frontier, w)
			}
		}
	}

	return roots
}

// collectClusters implements step 4: for each surviving root, the set of
// vertices reachable from it in D, including itself.
func collectClusters[V comparable](d *wgraph.Digraph[V], vertices []V, roots map[V]bool) []map[V]struct{} {
	clusters := make([]map[V]struct{}, 0)
	for _, v := range vertices {
		if !roots[v] {
			continue
		}

		reached := map[V]struct{}{v: {}}
		frontier := []V{v}
		for i := 0; i < len(frontier); i++ {
			succ, _ := d.Successors(frontier[i])
			for _, s := range succ {
				if _, ok := reached[s]; ok {
					continue
				}
				reached[s] = struct{}{}
				frontier = append(frontier, s)
			}
		}

		clusters = append(clusters, reached)
	}

	return clusters
}

// Clusters returns the clusters produced by the most recent Fit, or
// ErrNotFitted if Fit has not yet run.
func (m *MaxMax[V]) Clusters() ([]map[V]struct{}, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	return m.clusters, nil
}

// Maximal returns M(u) for every vertex, as computed by the most recent
// Fit. Returns ErrNotFitted if Fit has not yet run.
func (m *MaxMax[V]) Maximal() (map[V]map[V]struct{}, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	return m.maximal, nil
}

// Digraph returns the maximal-neighbor digraph built by the most recent
// Fit. Returns ErrNotFitted if Fit has not yet run.
func (m *MaxMax[V]) Digraph() (*wgraph.Digraph[V], error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	return m.digraph, nil
}

// Roots returns the final root flag R(v) for every vertex. Returns
// ErrNotFitted if Fit has not yet run.
func (m *MaxMax[V]) Roots() (map[V]bool, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	return m.roots, nil
}
