// Package simil defines the context-similarity plug-in contract (spec.md
// §4.3 / §6) used during sense disambiguation, and supplies cosine
// similarity as the default implementation.
//
// A Func[V] compares two sparse weight maps over the same vertex type and
// must be symmetric and non-negative; it has no notion of which map is
// "query" vs. "document".
package simil
