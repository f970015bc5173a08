// Package together implements the trivial "all together" clusterer
// (spec.md §4.8): every vertex of the input graph lands in a single
// cluster. It serves as a baseline for comparison and as a degenerate local
// or global clusterer (the "Trivial-local-clusterer collapse" law in
// spec.md §8).
package together
