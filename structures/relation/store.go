package relation

import (
	"github.com/saylorsolutions/collx/assert"
	"reflect"
)

// store owns the index pair of one relation.
// Inverting a store produces another store value over the same indices and shared state, so nothing is ever copied.
type store[L, R comparable, V any] struct {
	left   *index[L, R, V]
	right  *index[R, L, V]
	shared *shared
}

func newStore[L, R comparable, V any](left Factory[L], right Factory[R], valued bool, opts []Option) *store[L, R, V] {
	conf := newConfig(opts)
	sh := &shared{
		log:      conf.log,
		valued:   valued,
		nilValue: valued && canBeNil[V](),
	}
	s := &store[L, R, V]{shared: sh}
	s.left, s.right = newIndexPair[L, R, V](left, right, sh)
	if conf.verify {
		sh.verify = s.verify
	}
	return s
}

func (s *store[L, R, V]) inverse() *store[R, L, V] {
	return &store[R, L, V]{left: s.right, right: s.left, shared: s.shared}
}

// verify audits both indices against each other, reporting every violation found.
func (s *store[L, R, V]) verify() error {
	audit := assert.CollectErrors("; ")
	auditIndex(audit, s.left)
	auditIndex(audit, s.right)
	return audit.Wrap(ErrCorrupted)
}

func auditIndex[K, P comparable, V any](audit *assert.Collector, x *index[K, P, V]) {
	for key, b := range x.buckets.All() {
		audit.
			Check(!b.detached, "%s key %v: indexed partners are detached", x.side, key).
			Check(b.key == key, "%s key %v: indexed under the wrong key %v", x.side, b.key, key).
			Check(b.items.Len() > 0, "%s key %v: empty partners left in index", x.side, key)
		for partner, val := range b.items.All() {
			mirror, ok := x.sibling.buckets.Get(partner)
			if !ok {
				audit.AddString("%s association (%v, %v): %s key %v missing", x.side, key, partner, x.sibling.side, partner)
				continue
			}
			mval, ok := mirror.items.Get(key)
			if !ok {
				audit.AddString("%s association (%v, %v): not mirrored", x.side, key, partner)
				continue
			}
			audit.Check(reflect.DeepEqual(val, mval), "%s association (%v, %v): value %v mirrored as %v", x.side, key, partner, val, mval)
		}
	}
}
