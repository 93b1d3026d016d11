package relation

import (
	"iter"
)

// ValueMappings is a many-to-many relation that stores a value with each association.
// The value is held on both sides, and overwriting it updates both sides before returning.
//
// Nil values are rejected with [ErrInvalidArgument], so Get never has to distinguish a missing association from a stored nil.
// The zero value is an empty, hash backed relation ready to use.
// ValueMappings is not safe for concurrent use.
type ValueMappings[L, R comparable, V any] struct {
	store    *store[L, R, V]
	inverse  *ValueMappings[R, L, V]
	readOnly bool
}

// NewValues creates an empty [ValueMappings] backed by built-in maps on both sides.
func NewValues[L, R comparable, V any](opts ...Option) *ValueMappings[L, R, V] {
	return NewValuesWith[L, R, V](Hash[L](), Hash[R](), opts...)
}

// NewValuesWith creates an empty [ValueMappings] with the given container strategy for each side.
func NewValuesWith[L, R comparable, V any](left Factory[L], right Factory[R], opts ...Option) *ValueMappings[L, R, V] {
	return &ValueMappings[L, R, V]{store: newStore[L, R, V](left, right, true, opts)}
}

func (m *ValueMappings[L, R, V]) init() {
	if m == nil {
		panic("nil ValueMappings")
	}
	if m.store == nil {
		m.store = newStore[L, R, V](Hash[L](), Hash[R](), true, nil)
	}
}

func (m *ValueMappings[L, R, V]) writable(op string) {
	if m.readOnly {
		reject(op, nil, ErrReadOnly)
	}
}

// Put associates left with right under val, returning the previous value if the association already existed.
func (m *ValueMappings[L, R, V]) Put(left L, right R, val V) (V, bool) {
	const op = "put"
	m.init()
	m.writable(op)
	return m.store.left.put(op, left, right, val)
}

// Get returns the value stored with the association of left and right.
func (m *ValueMappings[L, R, V]) Get(left L, right R) (V, bool) {
	m.init()
	return m.store.left.get(left, right)
}

// PutAllForLeftKey associates left with every right key in entries, returning true if any association is new.
// Values of existing associations are overwritten.
func (m *ValueMappings[L, R, V]) PutAllForLeftKey(left L, entries map[R]V) bool {
	const op = "put all"
	m.init()
	m.writable(op)
	return m.store.left.putAll(op, left, entries)
}

// PutAllForRightKey associates right with every left key in entries, returning true if any association is new.
func (m *ValueMappings[L, R, V]) PutAllForRightKey(right R, entries map[L]V) bool {
	return m.Invert().PutAllForLeftKey(right, entries)
}

// Remove dissociates left and right, returning the value that was stored with them.
func (m *ValueMappings[L, R, V]) Remove(left L, right R) (V, bool) {
	const op = "remove"
	m.init()
	m.writable(op)
	return m.store.left.remove(op, left, right)
}

// RemoveLeftKey removes every association of left, returning its right keys and values.
// The returned map is nil if left had no associations.
func (m *ValueMappings[L, R, V]) RemoveLeftKey(left L) map[R]V {
	const op = "remove left key"
	m.init()
	m.writable(op)
	return m.store.left.removeKey(op, left)
}

// RemoveRightKey removes every association of right, returning its left keys and values.
func (m *ValueMappings[L, R, V]) RemoveRightKey(right R) map[L]V {
	return m.Invert().RemoveLeftKey(right)
}

// ReplaceLeftKey makes entries the exact associations of left, returning the previous associations.
// An empty entries removes left entirely.
// Right keys kept by the replacement have their values overwritten in place, so their partner maps stay live.
func (m *ValueMappings[L, R, V]) ReplaceLeftKey(left L, entries map[R]V) map[R]V {
	const op = "replace left key"
	m.init()
	m.writable(op)
	return m.store.left.replaceKey(op, left, entries)
}

// ReplaceRightKey makes entries the exact associations of right, returning the previous associations.
func (m *ValueMappings[L, R, V]) ReplaceRightKey(right R, entries map[L]V) map[L]V {
	return m.Invert().ReplaceLeftKey(right, entries)
}

func (m *ValueMappings[L, R, V]) Contains(left L, right R) bool {
	m.init()
	return m.store.left.contains(left, right)
}

func (m *ValueMappings[L, R, V]) ContainsLeftKey(left L) bool {
	m.init()
	_, ok := m.store.left.lookup(left)
	return ok
}

func (m *ValueMappings[L, R, V]) ContainsRightKey(right R) bool {
	return m.Invert().ContainsLeftKey(right)
}

// GetAllForLeftKey returns a live [PartnerMap] of the right keys and values associated with left.
func (m *ValueMappings[L, R, V]) GetAllForLeftKey(left L) (*PartnerMap[L, R, V], bool) {
	return m.LeftView().Get(left)
}

// GetAllForRightKey returns a live [PartnerMap] of the left keys and values associated with right.
func (m *ValueMappings[L, R, V]) GetAllForRightKey(right R) (*PartnerMap[R, L, V], bool) {
	return m.RightView().Get(right)
}

// Size returns the number of associations.
func (m *ValueMappings[L, R, V]) Size() int {
	m.init()
	return m.store.left.size()
}

func (m *ValueMappings[L, R, V]) IsEmpty() bool {
	m.init()
	return m.store.left.buckets.Len() == 0
}

// Clear removes every association.
func (m *ValueMappings[L, R, V]) Clear() {
	const op = "clear"
	m.init()
	m.writable(op)
	m.store.left.clearAll(op)
}

// LeftView returns a live view from each left key to its right keys and values.
func (m *ValueMappings[L, R, V]) LeftView() *MapView[L, R, V] {
	m.init()
	return &MapView[L, R, V]{x: m.store.left, readOnly: m.readOnly}
}

// RightView returns a live view from each right key to its left keys and values.
func (m *ValueMappings[L, R, V]) RightView() *MapView[R, L, V] {
	m.init()
	return &MapView[R, L, V]{x: m.store.right, readOnly: m.readOnly}
}

// All iterates every association, grouped by left key.
// Structural changes made during iteration panic with [ErrConcurrentModification], but overwriting values is allowed.
func (m *ValueMappings[L, R, V]) All() iter.Seq[Association[L, R, V]] {
	m.init()
	return m.store.left.associations()
}

// Cursor opens a [Cursor] over every association, grouped by left key.
func (m *ValueMappings[L, R, V]) Cursor() *Cursor[L, R, V] {
	m.init()
	return newCursor(m.store.left, m.readOnly)
}

// Invert returns the same relation with left and right swapped, without copying anything.
func (m *ValueMappings[L, R, V]) Invert() *ValueMappings[R, L, V] {
	m.init()
	if m.inverse == nil {
		m.inverse = &ValueMappings[R, L, V]{
			store:    m.store.inverse(),
			inverse:  m,
			readOnly: m.readOnly,
		}
	}
	return m.inverse
}

// ReadOnly returns a view of the relation that panics with [ErrReadOnly] on any attempt to change it.
func (m *ValueMappings[L, R, V]) ReadOnly() *ValueMappings[L, R, V] {
	m.init()
	if m.readOnly {
		return m
	}
	return &ValueMappings[L, R, V]{store: m.store, readOnly: true}
}

// Verify checks that both sides of the relation agree on every association and value.
func (m *ValueMappings[L, R, V]) Verify() error {
	m.init()
	return m.store.verify()
}

func (m *ValueMappings[L, R, V]) String() string {
	m.init()
	return formatIndex(m.store.left)
}
