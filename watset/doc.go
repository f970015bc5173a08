// Package watset implements the Watset meta-clustering algorithm
// (spec.md §4.7): a local–global fuzzy clusterer that induces per-node
// senses from ego-network clustering, disambiguates each sense's context
// against the resulting sense inventory, assembles a weighted sense graph,
// and runs a global clusterer over it — projecting the sense clusters back
// onto the original items.
//
// The orchestrator fans out across two barriers (spec.md §5): sense
// induction across every vertex of the input graph, then context
// disambiguation across every induced sense, each joined with a
// sync.WaitGroup before the next stage reads the prior stage's results —
// the same goroutine-per-item + single Wait() shape the teacher's
// concurrency tests use for its own concurrent map operations.
package watset
