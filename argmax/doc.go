// Package argmax provides single-pass argmax utilities over a Go 1.23
// range-over-func iterator, used by sense disambiguation (spec.md §4.4) to
// pick the best-matching sense of a neighbor item.
//
// Argmax returns the first element achieving the maximum score (a
// deterministic tie-break); ArgmaxRandom tracks every element tied at the
// current maximum and returns a uniformly random one given a caller-supplied
// *rand.Rand, so it is deterministic for a fixed RNG and input order.
package argmax
