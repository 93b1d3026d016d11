package relation

import (
	"github.com/saylorsolutions/collx/structures/set"
	"iter"
)

// SetView is a live, map-like projection of one side of a plain relation, from each key to its partners.
// Every key in a SetView has at least one partner.
// Writes are forwarded into the relation, so the other side stays in sync.
type SetView[K, P comparable] struct {
	x        *index[K, P, struct{}]
	readOnly bool
}

// Len returns the number of keys on this side.
func (v *SetView[K, P]) Len() int {
	return v.x.buckets.Len()
}

func (v *SetView[K, P]) Has(key K) bool {
	_, ok := v.x.lookup(key)
	return ok
}

// Get returns a live [PartnerSet] for key, if key has partners.
func (v *SetView[K, P]) Get(key K) (*PartnerSet[K, P], bool) {
	b, ok := v.x.lookup(key)
	if !ok {
		return nil, false
	}
	return &PartnerSet[K, P]{b: b, readOnly: v.readOnly}, true
}

// Put replaces the partners of key, returning the previous partners.
// An empty set of partners removes key.
func (v *SetView[K, P]) Put(key K, partners set.Set[P]) set.Set[P] {
	const op = "put"
	v.writable(op)
	return set.Set[P](v.x.replaceKey(op, key, map[P]struct{}(partners)))
}

// Delete removes key and all of its associations, returning the partners it had.
func (v *SetView[K, P]) Delete(key K) set.Set[P] {
	const op = "delete"
	v.writable(op)
	return set.Set[P](v.x.removeKey(op, key))
}

// Clear removes every association in the relation, on both sides.
func (v *SetView[K, P]) Clear() {
	const op = "clear"
	v.writable(op)
	v.x.clearAll(op)
}

// Keys iterates the keys of this side.
func (v *SetView[K, P]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range failFast(v.x.shared, v.x.buckets.All()) {
			if !yield(key) {
				return
			}
		}
	}
}

// All iterates the keys of this side with a live [PartnerSet] for each.
func (v *SetView[K, P]) All() iter.Seq2[K, *PartnerSet[K, P]] {
	return func(yield func(K, *PartnerSet[K, P]) bool) {
		for key, b := range failFast(v.x.shared, v.x.buckets.All()) {
			if !yield(key, &PartnerSet[K, P]{b: b, readOnly: v.readOnly}) {
				return
			}
		}
	}
}

// Map copies this side into a map of partner sets.
func (v *SetView[K, P]) Map() map[K]set.Set[P] {
	m := make(map[K]set.Set[P], v.Len())
	for key, b := range v.x.buckets.All() {
		m[key] = set.FromKeys(b.snapshot())
	}
	return m
}

func (v *SetView[K, P]) String() string {
	return formatIndex(v.x)
}

func (v *SetView[K, P]) writable(op string) {
	if v.readOnly {
		reject(op, nil, ErrReadOnly)
	}
}

// MapView is a live, map-like projection of one side of a value relation, from each key to its partners and their values.
// It follows the same rules as [SetView].
type MapView[K, P comparable, V any] struct {
	x        *index[K, P, V]
	readOnly bool
}

// Len returns the number of keys on this side.
func (v *MapView[K, P, V]) Len() int {
	return v.x.buckets.Len()
}

func (v *MapView[K, P, V]) Has(key K) bool {
	_, ok := v.x.lookup(key)
	return ok
}

// Get returns a live [PartnerMap] for key, if key has partners.
func (v *MapView[K, P, V]) Get(key K) (*PartnerMap[K, P, V], bool) {
	b, ok := v.x.lookup(key)
	if !ok {
		return nil, false
	}
	return &PartnerMap[K, P, V]{b: b, readOnly: v.readOnly}, true
}

// Put replaces the partners of key, returning the previous partners and their values.
// An empty map of partners removes key.
func (v *MapView[K, P, V]) Put(key K, partners map[P]V) map[P]V {
	const op = "put"
	v.writable(op)
	return v.x.replaceKey(op, key, partners)
}

// Delete removes key and all of its associations, returning the partners and values it had.
func (v *MapView[K, P, V]) Delete(key K) map[P]V {
	const op = "delete"
	v.writable(op)
	return v.x.removeKey(op, key)
}

// Clear removes every association in the relation, on both sides.
func (v *MapView[K, P, V]) Clear() {
	const op = "clear"
	v.writable(op)
	v.x.clearAll(op)
}

// Keys iterates the keys of this side.
func (v *MapView[K, P, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range failFast(v.x.shared, v.x.buckets.All()) {
			if !yield(key) {
				return
			}
		}
	}
}

// All iterates the keys of this side with a live [PartnerMap] for each.
func (v *MapView[K, P, V]) All() iter.Seq2[K, *PartnerMap[K, P, V]] {
	return func(yield func(K, *PartnerMap[K, P, V]) bool) {
		for key, b := range failFast(v.x.shared, v.x.buckets.All()) {
			if !yield(key, &PartnerMap[K, P, V]{b: b, readOnly: v.readOnly}) {
				return
			}
		}
	}
}

// Map copies this side into a map of partner maps.
func (v *MapView[K, P, V]) Map() map[K]map[P]V {
	m := make(map[K]map[P]V, v.Len())
	for key, b := range v.x.buckets.All() {
		m[key] = b.snapshot()
	}
	return m
}

func (v *MapView[K, P, V]) String() string {
	return formatIndex(v.x)
}

func (v *MapView[K, P, V]) writable(op string) {
	if v.readOnly {
		reject(op, nil, ErrReadOnly)
	}
}
