package sense

import "errors"

// ErrSenseUnresolved indicates that an item in a context had a non-empty
// sense set, but similarity scoring against every one of its senses produced
// a non-comparable value (NaN or ±Inf), so no sense could be selected.
// Fatal to the current Watset run (spec.md §7).
var ErrSenseUnresolved = errors.New("sense: could not resolve a best-matching sense (non-comparable similarity score)")

// ID is an opaque identity pairing an item with a non-negative sense index.
// Two IDs constructed with the same (item, index) compare equal; ID is
// comparable so it can be used directly as a map key.
type ID[V comparable] struct {
	item  V
	index int
}

// New constructs the sense identified by (item, index).
func New[V comparable](item V, index int) ID[V] {
	return ID[V]{item: item, index: index}
}

// Item returns the item this sense belongs to.
func (s ID[V]) Item() V { return s.item }

// Index returns this sense's index among its item's senses.
func (s ID[V]) Index() int { return s.index }

// Inventory maps each item to its senses and each sense to its (sparse)
// context weight map over neighbor items (spec.md §3, "Sense inventory").
type Inventory[V comparable] map[V]map[ID[V]]map[V]float64

// Contexts maps each sense to its disambiguated context: a map from senses
// of its neighbors to the original edge weight (spec.md §3,
// "Disambiguated contexts").
type Contexts[V comparable] map[ID[V]]map[ID[V]]float64
