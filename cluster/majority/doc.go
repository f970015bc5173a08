// Package majority implements a deterministic label-propagation clusterer:
// each vertex starts in its own cluster, then repeatedly adopts the label
// held by the greatest total incident edge weight among its neighbors,
// until no vertex changes label or MaxIterations is reached. Ties between
// candidate labels are broken by each vertex's position in the graph's
// insertion order, so a run is fully reproducible given the same graph.
package majority
