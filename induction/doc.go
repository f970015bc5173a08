// Package induction implements per-node sense induction (spec.md §4.6): for
// a target vertex x, build the subgraph induced by x's neighbors (x itself
// excluded), cluster it with a caller-supplied local clusterer, and turn
// each resulting cluster into a context weight map over x's edges.
package induction
