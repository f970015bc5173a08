package cluster

import (
	"errors"

	"github.com/senseweave/watset/wgraph"
)

// ErrNotFitted is returned by Clusters when called before Fit has
// completed successfully.
var ErrNotFitted = errors.New("cluster: Clusters called before a successful Fit")

// Clusterer is the capability every clustering algorithm in this module
// implements: a single Fit call over a graph, and a Clusters accessor for
// the result. Implementations must be safe to call Fit once; concurrent use
// of the same instance is undefined (spec.md §4.9), so Factory constructs a
// fresh instance per call.
type Clusterer[V comparable] interface {
	// Fit computes the clustering of g. Calling Fit again on an instance
	// that already has a result resets and recomputes from scratch.
	Fit(g *wgraph.Graph[V]) error

	// Clusters returns the most recent Fit result, or ErrNotFitted if Fit
	// has not yet completed successfully.
	Clusters() ([]map[V]struct{}, error)
}

// Factory constructs a fresh Clusterer[V] instance for a given graph. Both
// the local and global clusterer plug-in points (spec.md §6) are factories
// rather than shared instances so a single Watset run can fit many
// independent ego networks without any instance sharing mutable state.
//
// A Factory must be pure: calling it twice must not let one instance's
// state leak into the other.
type Factory[V comparable] func() Clusterer[V]
