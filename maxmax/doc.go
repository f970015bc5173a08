// Package maxmax implements the MaxMax graph-clustering algorithm
// (spec.md §4.5): a deterministic, single-pass rewrite of an undirected
// weighted graph into a directed "maximal-neighbor" graph, followed by a
// root-reachability sweep that extracts the final clusters.
//
// Complexity: O(|V|+|E|) for preparation and the directed transform;
// cluster extraction is O(|V|+|E|) amortized (the root-demotion sweep
// visits each node once globally; each root's own BFS is bounded by the
// size of its eventual cluster).
//
// Usage is the same validate-then-run-then-return shape as
// github.com/senseweave/watset's other algorithm packages: construct a
// *MaxMax, call Fit(g) once, then read Clusters() (or the lower-level
// Maximal()/Digraph()/Roots() views exposed after a successful Fit).
package maxmax
