package relation

import (
	"fmt"
	"github.com/saylorsolutions/collx/assert"
	"iter"
)

// Side names one of the two indices of a relation.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// index maps the keys of one side to their buckets.
// Indices only exist in pairs, each referring to the other as its sibling, and both are owned by the same store.
type index[K, P comparable, V any] struct {
	side     Side
	buckets  container[K, *bucket[K, P, V]]
	newItems func() container[P, V]
	sibling  *index[P, K, V]
	shared   *shared
	nilKey   bool
}

func newIndexPair[L, R comparable, V any](left Factory[L], right Factory[R], sh *shared) (*index[L, R, V], *index[R, L, V]) {
	lx := &index[L, R, V]{
		side:    Left,
		buckets: newContainer[L, *bucket[L, R, V]](left),
		newItems: func() container[R, V] {
			return newContainer[R, V](right)
		},
		shared: sh,
		nilKey: canBeNil[L](),
	}
	rx := &index[R, L, V]{
		side:    Right,
		buckets: newContainer[R, *bucket[R, L, V]](right),
		newItems: func() container[L, V] {
			return newContainer[L, V](left)
		},
		shared: sh,
		nilKey: canBeNil[R](),
	}
	lx.sibling, rx.sibling = rx, lx
	return lx, rx
}

func (x *index[K, P, V]) requireKey(op string, key K) {
	if x.nilKey && isNil(key) {
		reject(op, nil, fmt.Errorf("%w: nil key", ErrInvalidArgument))
	}
}

func (x *index[K, P, V]) requirePartner(op string, key K, partner P) {
	if x.sibling.nilKey && isNil(partner) {
		reject(op, key, fmt.Errorf("%w: nil partner", ErrInvalidArgument))
	}
}

func (x *index[K, P, V]) requireEntry(op string, key K, partner P, val V) {
	x.requirePartner(op, key, partner)
	if x.shared.nilValue && isNil(val) {
		reject(op, key, fmt.Errorf("%w: nil value for partner %v", ErrInvalidArgument, partner))
	}
}

func (x *index[K, P, V]) requireEntries(op string, key K, entries map[P]V) {
	x.requireKey(op, key)
	for partner, val := range entries {
		x.requireEntry(op, key, partner, val)
	}
}

func (x *index[K, P, V]) lookup(key K) (*bucket[K, P, V], bool) {
	if x.nilKey && isNil(key) {
		return nil, false
	}
	return x.buckets.Get(key)
}

func (x *index[K, P, V]) getOrCreate(key K) *bucket[K, P, V] {
	b, ok := x.buckets.Get(key)
	if !ok {
		b = &bucket[K, P, V]{key: key, items: x.newItems(), index: x}
		x.buckets.Put(key, b)
	}
	return b
}

// drop detaches an emptied bucket and removes it from this index.
func (x *index[K, P, V]) drop(b *bucket[K, P, V]) {
	assert.True("dropped bucket is empty", b.items.Len() == 0)
	b.detached = true
	x.buckets.Delete(b.key)
	x.shared.debug("bucket detached", "side", x.side, "key", b.key)
}

// mirrorInsert records the reciprocal of a sibling insert, directly in the bucket's items.
func (x *index[K, P, V]) mirrorInsert(key K, partner P, val V) {
	x.getOrCreate(key).items.Put(partner, val)
}

// mirrorRemove deletes the reciprocal of a sibling removal, dropping the bucket if that empties it.
func (x *index[K, P, V]) mirrorRemove(key K, partner P) {
	b, ok := x.buckets.Get(key)
	if !ok {
		return
	}
	b.items.Delete(partner)
	if b.items.Len() == 0 {
		x.drop(b)
	}
}

func (x *index[K, P, V]) put(op string, key K, partner P, val V) (V, bool) {
	x.requireKey(op, key)
	x.requireEntry(op, key, partner, val)
	prev, existed := x.getOrCreate(key).put(op, partner, val)
	x.shared.audit(op)
	return prev, existed
}

// putAll adds every entry under key, returning true if the relation grew.
func (x *index[K, P, V]) putAll(op string, key K, entries map[P]V) bool {
	x.requireEntries(op, key, entries)
	if len(entries) == 0 {
		return false
	}
	var (
		b     = x.getOrCreate(key)
		grown bool
	)
	for partner, val := range entries {
		if _, existed := b.put(op, partner, val); !existed {
			grown = true
		}
	}
	x.shared.audit(op)
	return grown
}

func (x *index[K, P, V]) get(key K, partner P) (V, bool) {
	b, ok := x.lookup(key)
	if !ok {
		var mt V
		return mt, false
	}
	return b.get(partner)
}

func (x *index[K, P, V]) contains(key K, partner P) bool {
	b, ok := x.lookup(key)
	return ok && b.has(partner)
}

func (x *index[K, P, V]) remove(op string, key K, partner P) (V, bool) {
	x.requireKey(op, key)
	x.requirePartner(op, key, partner)
	b, ok := x.lookup(key)
	if !ok || !b.has(partner) {
		var mt V
		return mt, false
	}
	prev, removed := b.remove(op, partner)
	x.shared.audit(op)
	return prev, removed
}

// removeKey removes every association of key, returning what was removed.
// A nil map is returned if key wasn't present.
func (x *index[K, P, V]) removeKey(op string, key K) map[P]V {
	x.requireKey(op, key)
	b, ok := x.lookup(key)
	if !ok {
		return nil
	}
	prev := b.snapshot()
	b.clear(op)
	x.shared.debug("key removed", "side", x.side, "key", key, "count", len(prev))
	x.shared.audit(op)
	return prev
}

// replaceKey swaps the associations of key for entries, returning the previous associations.
// An existing bucket is reused rather than detached, so partner views held by callers stay live.
// Partners that appear in both the old and new associations are never removed, only overwritten.
func (x *index[K, P, V]) replaceKey(op string, key K, entries map[P]V) map[P]V {
	x.requireEntries(op, key, entries)
	if len(entries) == 0 {
		return x.removeKey(op, key)
	}
	var prev map[P]V
	b, ok := x.buckets.Get(key)
	if ok {
		prev = b.snapshot()
		b.clearForReuse(op, entries)
	} else {
		b = x.getOrCreate(key)
	}
	for partner, val := range entries {
		b.put(op, partner, val)
	}
	x.shared.debug("key replaced", "side", x.side, "key", key, "previous", len(prev), "current", len(entries))
	x.shared.audit(op)
	return prev
}

// size counts associations by walking every bucket.
func (x *index[K, P, V]) size() int {
	var n int
	for _, b := range x.buckets.All() {
		n += b.items.Len()
	}
	return n
}

// clearAll empties both indices, detaching every bucket on either side.
func (x *index[K, P, V]) clearAll(op string) {
	n := x.size()
	for _, b := range x.buckets.All() {
		b.items.Clear()
		b.detached = true
	}
	for _, b := range x.sibling.buckets.All() {
		b.items.Clear()
		b.detached = true
	}
	x.buckets.Clear()
	x.sibling.buckets.Clear()
	if n > 0 {
		x.shared.modified()
		x.shared.debug("relation cleared", "associations", n)
	}
	x.shared.audit(op)
}

// associations flattens the index into one association per key and partner.
// Any structural change made while the sequence is being consumed panics with [ErrConcurrentModification].
func (x *index[K, P, V]) associations() iter.Seq[Association[K, P, V]] {
	return func(yield func(Association[K, P, V]) bool) {
		expected := x.shared.mods
		for key, b := range x.buckets.All() {
			for partner, val := range b.items.All() {
				if !yield(Association[K, P, V]{Left: key, Right: partner, Value: val}) {
					return
				}
				if x.shared.mods != expected {
					reject("iterate", nil, ErrConcurrentModification)
				}
			}
		}
	}
}

// failFast guards a sequence over live relation state against structural changes made between steps.
func failFast[K, V any](sh *shared, seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		expected := sh.mods
		for key, val := range seq {
			if !yield(key, val) {
				return
			}
			if sh.mods != expected {
				reject("iterate", nil, ErrConcurrentModification)
			}
		}
	}
}
