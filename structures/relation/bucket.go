package relation

import (
	"github.com/saylorsolutions/collx/assert"
)

// bucket holds the partners of one key on one side of a relation.
// Every change to its items is mirrored into the sibling index before the change is reported to the caller.
//
// A bucket is detached once it's emptied outside a reuse cycle. It's no longer indexed at that point, and it rejects writes from then on.
type bucket[K, P comparable, V any] struct {
	key      K
	items    container[P, V]
	index    *index[K, P, V]
	detached bool
	reusing  bool
}

func (b *bucket[K, P, V]) writable(op string, readOnly bool) {
	if readOnly {
		reject(op, b.key, ErrReadOnly)
	}
	if b.detached {
		reject(op, b.key, ErrDetached)
	}
}

func (b *bucket[K, P, V]) has(partner P) bool {
	if b.index.sibling.nilKey && isNil(partner) {
		return false
	}
	_, ok := b.items.Get(partner)
	return ok
}

func (b *bucket[K, P, V]) get(partner P) (V, bool) {
	if b.index.sibling.nilKey && isNil(partner) {
		var mt V
		return mt, false
	}
	return b.items.Get(partner)
}

// put adds or overwrites partner.
// Re-adding a partner to a plain relation changes nothing on either side.
func (b *bucket[K, P, V]) put(op string, partner P, val V) (V, bool) {
	b.writable(op, false)
	prev, existed := b.items.Put(partner, val)
	if existed && !b.index.shared.valued {
		return prev, true
	}
	if !existed {
		b.index.shared.modified()
	}
	b.index.sibling.mirrorInsert(partner, b.key, val)
	return prev, existed
}

// remove deletes partner, then cleans up whichever side was emptied by it.
func (b *bucket[K, P, V]) remove(op string, partner P) (V, bool) {
	b.writable(op, false)
	prev, ok := b.items.Delete(partner)
	if !ok {
		return prev, false
	}
	b.index.shared.modified()
	b.index.sibling.mirrorRemove(partner, b.key)
	if !b.reusing && b.items.Len() == 0 {
		b.index.drop(b)
	}
	return prev, true
}

// clear removes every partner, which detaches the bucket unless it's being reused.
func (b *bucket[K, P, V]) clear(op string) {
	b.writable(op, false)
	for partner := range b.items.All() {
		b.remove(op, partner)
	}
}

// clearForReuse removes every partner missing from keep with full mirroring, but leaves the bucket indexed and attached so it can be refilled.
// Partners in keep are left alone, so nothing is detached on their side. A nil keep clears everything.
func (b *bucket[K, P, V]) clearForReuse(op string, keep map[P]V) {
	b.writable(op, false)
	b.reusing = true
	defer func() {
		b.reusing = false
	}()
	for partner := range b.items.All() {
		if _, ok := keep[partner]; !ok {
			b.remove(op, partner)
		}
	}
	assert.True("reused bucket stays attached", !b.detached)
}

func (b *bucket[K, P, V]) snapshot() map[P]V {
	snap := make(map[P]V, b.items.Len())
	for partner, val := range b.items.All() {
		snap[partner] = val
	}
	return snap
}
