package sense

import (
	"math"
	"slices"
	"sort"

	"github.com/senseweave/watset/argmax"
	"github.com/senseweave/watset/simil"
)

// Disambiguate rewrites context into a sense-level map: for every (y, w) in
// context with y not in exclude, it picks the sense s* of y (from inv[y])
// maximizing sim(context, inv[y][s*]) — ties broken by lowest sense index,
// which is the deterministic "first-seen" order since sense indices are
// assigned densely in induction order — and writes s* → w into the result.
//
// If inv[y] is empty, y is silently skipped (spec.md §4.4). If sim produces
// a NaN or infinite score for every candidate sense of some y, Disambiguate
// returns ErrSenseUnresolved; the caller (Watset) treats this as fatal.
//
// Complexity: O(Σ_y |inv[y]|) similarity evaluations.
func Disambiguate[V comparable](inv Inventory[V], sim simil.Func[V], context map[V]float64, exclude map[V]struct{}) (map[ID[V]]float64, error) {
	result := make(map[ID[V]]float64, len(context))

	for y, w := range context {
		if _, skip := exclude[y]; skip {
			continue
		}

		senses := inv[y]
		if len(senses) == 0 {
			continue
		}

		ids := make([]ID[V], 0, len(senses))
		for id := range senses {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i].index < ids[j].index })

		var sawFinite bool
		best, ok := argmax.Argmax(slices.Values(ids), nil, func(id ID[V]) float64 {
			s := sim(context, senses[id])
			if !math.IsNaN(s) && !math.IsInf(s, 0) {
				sawFinite = true
			}
			return s
		})
		if !ok {
			continue
		}
		if !sawFinite {
			return nil, ErrSenseUnresolved
		}

		result[best] = w
	}

	return result, nil
}
