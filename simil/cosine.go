package simil

import "math"

// Func compares two sparse weight maps over vertex type V and returns a
// similarity score. Implementations must be symmetric
// (Func(a,b) == Func(b,a)) and non-negative.
type Func[V comparable] func(a, b map[V]float64) float64

// Cosine computes cosine similarity between a and b treated as sparse
// vectors: Σ a[k]·b[k] / (‖a‖·‖b‖). Returns 0 if either vector has zero
// norm, so it never divides by zero and is always defined.
//
// Complexity: O(min(len(a), len(b))) for the dot product (iterating the
// smaller map), O(len(a)+len(b)) total with the norms.
func Cosine[V comparable](a, b map[V]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// Iterate the smaller map for the dot product; only keys present in
	// both contribute.
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}

	var dot float64
	for k, sv := range small {
		if lv, ok := large[k]; ok {
			dot += sv * lv
		}
	}

	normA := norm(a)
	normB := norm(b)
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (normA * normB)
}

func norm[V comparable](m map[V]float64) float64 {
	var sumSq float64
	for _, v := range m {
		sumSq += v * v
	}

	return math.Sqrt(sumSq)
}
