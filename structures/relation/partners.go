package relation

import (
	"github.com/saylorsolutions/collx/structures/set"
	"iter"
	"slices"
)

// PartnerSet is a live view of the partners of one key in a plain relation.
// Changes made through it are mirrored on the other side of the relation, just like changes made through [Mappings].
//
// Once the key loses its last partner, the PartnerSet is detached: it stays empty and rejects writes with [ErrDetached], even if the key is associated again later.
// Fetch a new PartnerSet in that case.
// Replacing the partners of either key never detaches it, as long as the association survives the replacement.
type PartnerSet[K, P comparable] struct {
	b        *bucket[K, P, struct{}]
	readOnly bool
}

// Key returns the key whose partners are viewed.
func (p *PartnerSet[K, P]) Key() K {
	return p.b.key
}

// Detached reports whether the key has lost all of its partners since this PartnerSet was retrieved.
func (p *PartnerSet[K, P]) Detached() bool {
	return p.b.detached
}

func (p *PartnerSet[K, P]) Len() int {
	return p.b.items.Len()
}

func (p *PartnerSet[K, P]) Has(partner P) bool {
	return p.b.has(partner)
}

// Add associates partner with the key, returning true if the association is new.
func (p *PartnerSet[K, P]) Add(partner P) bool {
	const op = "add"
	p.b.writable(op, p.readOnly)
	p.b.index.requirePartner(op, p.b.key, partner)
	_, existed := p.b.put(op, partner, struct{}{})
	p.b.index.shared.audit(op)
	return !existed
}

// Remove dissociates partner from the key, returning true if they were associated.
// Removing the last partner detaches this PartnerSet.
func (p *PartnerSet[K, P]) Remove(partner P) bool {
	const op = "remove"
	p.b.writable(op, p.readOnly)
	if !p.b.has(partner) {
		return false
	}
	p.b.remove(op, partner)
	p.b.index.shared.audit(op)
	return true
}

// Clear removes every partner of the key, which detaches this PartnerSet.
func (p *PartnerSet[K, P]) Clear() {
	const op = "clear"
	p.b.writable(op, p.readOnly)
	p.b.clear(op)
	p.b.index.shared.audit(op)
}

// All iterates the partners in the order of the partner side's [Factory].
func (p *PartnerSet[K, P]) All() iter.Seq[P] {
	return func(yield func(P) bool) {
		for partner := range failFast(p.b.index.shared, p.b.items.All()) {
			if !yield(partner) {
				return
			}
		}
	}
}

// Slice copies the partners into a slice, in iteration order.
func (p *PartnerSet[K, P]) Slice() []P {
	if p.Len() == 0 {
		return nil
	}
	return slices.Collect(p.All())
}

// Set copies the partners into a [set.Set].
func (p *PartnerSet[K, P]) Set() set.Set[P] {
	return set.FromSeq(p.All())
}

func (p *PartnerSet[K, P]) String() string {
	return formatBucket(p.b)
}

// PartnerMap is a live view of the partners of one key in a value relation, and the value stored with each association.
// It has the same detachment rules as [PartnerSet].
type PartnerMap[K, P comparable, V any] struct {
	b        *bucket[K, P, V]
	readOnly bool
}

// Key returns the key whose partners are viewed.
func (p *PartnerMap[K, P, V]) Key() K {
	return p.b.key
}

// Detached reports whether the key has lost all of its partners since this PartnerMap was retrieved.
func (p *PartnerMap[K, P, V]) Detached() bool {
	return p.b.detached
}

func (p *PartnerMap[K, P, V]) Len() int {
	return p.b.items.Len()
}

func (p *PartnerMap[K, P, V]) Has(partner P) bool {
	return p.b.has(partner)
}

func (p *PartnerMap[K, P, V]) Get(partner P) (V, bool) {
	return p.b.get(partner)
}

// Put associates partner with the key, or overwrites the value of an existing association on both sides.
// The previous value is returned if there was one.
func (p *PartnerMap[K, P, V]) Put(partner P, val V) (V, bool) {
	const op = "put"
	p.b.writable(op, p.readOnly)
	p.b.index.requireEntry(op, p.b.key, partner, val)
	prev, existed := p.b.put(op, partner, val)
	p.b.index.shared.audit(op)
	return prev, existed
}

// Remove dissociates partner from the key, returning the value it was stored with.
// Removing the last partner detaches this PartnerMap.
func (p *PartnerMap[K, P, V]) Remove(partner P) (V, bool) {
	const op = "remove"
	p.b.writable(op, p.readOnly)
	if !p.b.has(partner) {
		var mt V
		return mt, false
	}
	prev, removed := p.b.remove(op, partner)
	p.b.index.shared.audit(op)
	return prev, removed
}

// Clear removes every partner of the key, which detaches this PartnerMap.
func (p *PartnerMap[K, P, V]) Clear() {
	const op = "clear"
	p.b.writable(op, p.readOnly)
	p.b.clear(op)
	p.b.index.shared.audit(op)
}

// All iterates partners and values in the order of the partner side's [Factory].
func (p *PartnerMap[K, P, V]) All() iter.Seq2[P, V] {
	return failFast(p.b.index.shared, p.b.items.All())
}

// Map copies the partners and values into a map.
func (p *PartnerMap[K, P, V]) Map() map[P]V {
	return p.b.snapshot()
}

func (p *PartnerMap[K, P, V]) String() string {
	return formatBucket(p.b)
}
