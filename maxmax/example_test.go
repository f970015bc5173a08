package maxmax_test

import (
	"fmt"
	"sort"

	"github.com/senseweave/watset/maxmax"
	"github.com/senseweave/watset/wgraph"
)

// ExampleMaxMax_Fit runs MaxMax on two disjoint edges: a–b and c–d share no
// vertex, so each pair is mutually maximal and forms its own cluster.
func ExampleMaxMax_Fit() {
	g := wgraph.NewGraph[string]()
	_ = g.AddEdge("a", "b", 1)
	_ = g.AddEdge("c", "d", 1)

	m := maxmax.New[string]()
	if err := m.Fit(g); err != nil {
		fmt.Println("error:", err)
		return
	}

	clusters, _ := m.Clusters()
	printed := make([]string, 0, len(clusters))
	for _, c := range clusters {
		vs := make([]string, 0, len(c))
		for v := range c {
			vs = append(vs, v)
		}
		sort.Strings(vs)
		printed = append(printed, fmt.Sprint(vs))
	}
	sort.Strings(printed)
	for _, p := range printed {
		fmt.Println(p)
	}
	// Output:
	// [a b]
	// [c d]
}
