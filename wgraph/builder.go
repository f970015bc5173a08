package wgraph

// Builder assembles a Graph incrementally, deduplicating vertices
// (AddVertex is idempotent) and edges (AddEdge is last-write-wins). It adds
// nothing over calling Graph's methods directly; it exists so callers that
// construct a graph from a stream of (possibly repeated) vertex/edge
// declarations — e.g. parsing an edge list — have a single entry point that
// documents the dedup contract, matching the "builder semantics" spec.md §3
// and §9 call out for the sense graph.
type Builder[V comparable] struct {
	g *Graph[V]
}

// NewBuilder starts a new Builder around an empty Graph.
func NewBuilder[V comparable]() *Builder[V] {
	return &Builder[V]{g: NewGraph[V]()}
}

// Vertex declares v, a no-op if v was already declared.
func (b *Builder[V]) Vertex(v V) *Builder[V] {
	b.g.AddVertex(v)
	return b
}

// Edge declares the undirected edge (u,v) with weight w. If (u,v) was
// already declared, the new weight overwrites the old one (last-write-wins,
// see spec.md §3/§9).
func (b *Builder[V]) Edge(u, v V, w float64) error {
	return b.g.AddEdge(u, v, w)
}

// Build returns the assembled Graph.
func (b *Builder[V]) Build() *Graph[V] {
	return b.g
}

// InducedSubgraph returns the graph induced by the given vertex set: every
// vertex in vs, plus every edge of g whose both endpoints are in vs. Used
// by sense induction (C6) to build a node's ego network; the target vertex
// itself is excluded by the caller passing neighbors(x) rather than
// including x in vs.
//
// Complexity: O(|vs| + Σ_{v∈vs} deg(v)). Concurrency: safe, read lock on g.
func (g *Graph[V]) InducedSubgraph(vs []V) *Graph[V] {
	keep := make(map[V]struct{}, len(vs))
	for _, v := range vs {
		keep[v] = struct{}{}
	}

	out := NewGraph[V]()
	for _, v := range vs {
		out.AddVertex(v)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, u := range vs {
		for v, w := range g.adjacency[u] {
			if _, ok := keep[v]; !ok {
				continue
			}
			// Each unordered pair appears from both sides; write both ways is
			// idempotent since weight is identical from either direction.
			out.adjacency[u][v] = w
			out.adjacency[v][u] = w
		}
	}

	return out
}
