package maxmax

import "errors"

// ErrNotFitted is returned by the read-only accessors (Maximal, Digraph,
// Roots, Clusters) when called before Fit has completed successfully.
var ErrNotFitted = errors.New("maxmax: called before a successful Fit")

// ErrAlreadyFitted... intentionally does not exist: spec.md §3 treats a
// re-run as a fresh computation ("repeated calls recompute from scratch"),
// so Fit always resets and recomputes rather than rejecting a second call.
