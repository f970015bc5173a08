// Package wgraph provides the two graph primitives the clustering core is
// built on:
//
//	Graph[V]   — a simple, undirected, weighted graph used as the input to
//	             both MaxMax and Watset.
//	Digraph[V] — a simple directed, unweighted graph used only by MaxMax to
//	             hold the maximal-neighbor transform.
//
// Both are generic over a comparable vertex type V, guarded internally by a
// sync.RWMutex so they can be built or read from multiple goroutines, and
// expose the narrow, read-mostly query surface the algorithms need:
// vertex/edge enumeration, edge weight lookup, and opposite-vertex
// resolution. Neither type dictates a file format or serialization; callers
// assemble the graph however they like via AddVertex/AddEdge, or via the
// Builder helper which deduplicates vertices and edges as they're added.
package wgraph
