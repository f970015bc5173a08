// File: api.go
// Role: thin public facade — read-only getters for Graph and Digraph (the
// constructors live in types.go). No algorithmic logic lives here; see
// methods_*.go for mutation and traversal helpers.
package wgraph

// HasVertex reports whether v is present in g.
// Complexity: O(1). Concurrency: safe, read lock.
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[v]
	return ok
}

// VertexSet returns every vertex in g, in no particular order.
// Complexity: O(|V|). Concurrency: safe, read lock.
func (g *Graph[V]) VertexSet() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}

	return out
}

// EdgeSet returns every edge in g exactly once (From/To order is arbitrary
// per edge but each unordered pair appears once).
// Complexity: O(|V|+|E|). Concurrency: safe, read lock.
func (g *Graph[V]) EdgeSet() []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[V]map[V]struct{}, len(g.adjacency))
	out := make([]Edge[V], 0)
	for u, nbrs := range g.adjacency {
		for v, w := range nbrs {
			if seen[v] != nil {
				if _, done := seen[v][u]; done {
					continue
				}
			}
			if seen[u] == nil {
				seen[u] = make(map[V]struct{})
			}
			seen[u][v] = struct{}{}
			out = append(out, Edge[V]{From: u, To: v, Weight: w})
		}
	}

	return out
}

// VertexOrder returns every vertex in g in first-insertion order, the
// deterministic iteration order spec.md §4.5/§5 requires for MaxMax's
// cluster extraction sweep.
// Complexity: O(|V|). Concurrency: safe, read lock.
func (g *Graph[V]) VertexOrder() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// Order returns the number of vertices in g. Complexity: O(1).
func (g *Graph[V]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Size returns the number of undirected edges in g. Complexity: O(|V|+|E|).
func (g *Graph[V]) Size() int {
	return len(g.EdgeSet())
}

// HasVertex reports whether v is present in d.
// Complexity: O(1). Concurrency: safe, read lock.
func (d *Digraph[V]) HasVertex(v V) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.vertices[v]
	return ok
}

// VertexSet returns every vertex in d, in no particular order.
// Complexity: O(|V|). Concurrency: safe, read lock.
func (d *Digraph[V]) VertexSet() []V {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]V, 0, len(d.vertices))
	for v := range d.vertices {
		out = append(out, v)
	}

	return out
}
