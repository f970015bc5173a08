package argmax

import (
	"iter"
	"math"
	"math/rand"
)

// Argmax iterates seq exactly once, skipping any element for which filter
// returns false (a nil filter accepts everything), and returns the first
// element achieving the maximum score() along with true. If no element
// passes the filter, it returns the zero value and false.
//
// A NaN score never wins over a finite one: once any element has scored
// finite, later NaN scores are ignored rather than getting "stuck" as the
// winner (NaN compares false to everything, including itself). If every
// scored element is NaN, the first one is returned, since there is no
// finite candidate to prefer instead — callers that must treat an
// all-NaN sequence as an error should check for that themselves.
//
// Complexity: O(n) calls to score/filter where n is the sequence length.
func Argmax[V any](seq iter.Seq[V], filter func(V) bool, score func(V) float64) (V, bool) {
	var (
		best    V
		bestSet bool
		bestVal float64
	)

	for v := range seq {
		if filter != nil && !filter(v) {
			continue
		}
		s := score(v)
		switch {
		case !bestSet:
			best, bestVal, bestSet = v, s, true
		case math.IsNaN(bestVal) && !math.IsNaN(s):
			best, bestVal = v, s
		case !math.IsNaN(bestVal) && math.IsNaN(s):
			// keep the current finite best; a NaN score never wins.
		case s > bestVal:
			best, bestVal = v, s
		}
	}

	return best, bestSet
}

// ArgmaxRandom iterates seq exactly once, maintaining the set of elements
// tied at the current maximum score (replacing it on a strict improvement
// and appending to it on a tie), then returns a uniformly random element
// from that set using rng. Returns the zero value and false iff seq is
// empty.
//
// As with Argmax, a NaN score never displaces a finite tie set. If every
// scored element is NaN, the first one is kept: NaN values cannot be
// compared for a tie either, so there is no well-defined tie set to build.
//
// Complexity: O(n) calls to score, O(k) extra space for the current tie set
// (k ≤ n).
func ArgmaxRandom[V any](seq iter.Seq[V], score func(V) float64, rng *rand.Rand) (V, bool) {
	var (
		ties       []V
		bestVal    float64
		bestFinite bool
	)

	for v := range seq {
		s := score(v)
		finite := !math.IsNaN(s)
		switch {
		case len(ties) == 0:
			ties = append(ties, v)
			bestVal, bestFinite = s, finite
		case finite && !bestFinite:
			ties = ties[:0]
			ties = append(ties, v)
			bestVal, bestFinite = s, finite
		case !finite && bestFinite:
			// keep the current finite tie set; a NaN score never wins.
		case finite == bestFinite && s == bestVal:
			ties = append(ties, v)
		case finite && s > bestVal:
			ties = ties[:0]
			ties = append(ties, v)
			bestVal = s
		}
	}

	if len(ties) == 0 {
		var zero V
		return zero, false
	}

	return ties[rng.Intn(len(ties))], true
}
