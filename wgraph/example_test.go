package wgraph_test

import (
	"fmt"
	"sort"

	"github.com/senseweave/watset/wgraph"
)

// ExampleGraph_AddEdge builds a small weighted triangle and reports its
// incident edges for one vertex.
func ExampleGraph_AddEdge() {
	g := wgraph.NewGraph[string]()
	_ = g.AddEdge("a", "b", 1)
	_ = g.AddEdge("b", "c", 2)
	_ = g.AddEdge("a", "c", 3)

	edges, _ := g.EdgesOf("a")
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })
	for _, e := range edges {
		fmt.Printf("%s-%s:%.0f\n", e.From, e.To, e.Weight)
	}
	// Output:
	// a-b:1
	// a-c:3
}

// ExampleGraph_InducedSubgraph shows building an ego network around "x" —
// the induced subgraph keeps only edges between x's own neighbors.
func ExampleGraph_InducedSubgraph() {
	g := wgraph.NewGraph[string]()
	_ = g.AddEdge("x", "a", 1)
	_ = g.AddEdge("x", "b", 1)
	_ = g.AddEdge("a", "b", 5)

	neighbors, _ := g.Neighbors("x")
	ego := g.InducedSubgraph(neighbors)

	fmt.Println(ego.Order(), ego.Size())
	// Output:
	// 2 1
}

// ExampleBuilder demonstrates assembling a graph from a stream of
// possibly-repeated declarations, with last-write-wins on a repeated edge.
func ExampleBuilder() {
	g := wgraph.NewBuilder[string]().
		Vertex("a").
		Vertex("b")

	_ = g.Edge("a", "b", 1)
	_ = g.Edge("a", "b", 4)
	built := g.Build()

	w, _ := built.EdgeWeight("a", "b")
	fmt.Println(w)
	// Output:
	// 4
}
