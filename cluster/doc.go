// Package cluster defines the capability contract shared by every
// clusterer in this module — MaxMax, Watset, the bundled "together" and
// "majority" clusterers, and any caller-supplied local/global clusterer
// (spec.md §4.9 / §6).
//
// The contract is a narrow interface, not a base type: Fit computes the
// clustering from a graph, Clusters returns it (failing with ErrNotFitted
// if called first), matching the "capability, not inheritance" design note
// in spec.md §9.
package cluster
