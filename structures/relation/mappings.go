package relation

import (
	"github.com/saylorsolutions/collx/structures/set"
	"iter"
)

// Mappings is a many-to-many relation between left keys and right keys.
// Both directions are indexed, so lookups from either side cost the same, at the expense of storing every association twice.
//
// The zero value is an empty, hash backed relation ready to use.
// Mappings is not safe for concurrent use.
type Mappings[L, R comparable] struct {
	store    *store[L, R, struct{}]
	inverse  *Mappings[R, L]
	readOnly bool
}

// New creates an empty [Mappings] backed by built-in maps on both sides.
func New[L, R comparable](opts ...Option) *Mappings[L, R] {
	return NewWith(Hash[L](), Hash[R](), opts...)
}

// NewWith creates an empty [Mappings] with the given container strategy for each side.
func NewWith[L, R comparable](left Factory[L], right Factory[R], opts ...Option) *Mappings[L, R] {
	return &Mappings[L, R]{store: newStore[L, R, struct{}](left, right, false, opts)}
}

func (m *Mappings[L, R]) init() {
	if m == nil {
		panic("nil Mappings")
	}
	if m.store == nil {
		m.store = newStore[L, R, struct{}](Hash[L](), Hash[R](), false, nil)
	}
}

func (m *Mappings[L, R]) writable(op string) {
	if m.readOnly {
		reject(op, nil, ErrReadOnly)
	}
}

// Put associates left with right, returning true if the association is new.
// Putting an existing association changes nothing.
func (m *Mappings[L, R]) Put(left L, right R) bool {
	const op = "put"
	m.init()
	m.writable(op)
	_, existed := m.store.left.put(op, left, right, struct{}{})
	return !existed
}

// PutAllForLeftKey associates left with every one of rights, returning true if any association is new.
func (m *Mappings[L, R]) PutAllForLeftKey(left L, rights ...R) bool {
	const op = "put all"
	m.init()
	m.writable(op)
	return m.store.left.putAll(op, left, map[R]struct{}(set.New(rights...)))
}

// PutAllForRightKey associates right with every one of lefts, returning true if any association is new.
func (m *Mappings[L, R]) PutAllForRightKey(right R, lefts ...L) bool {
	return m.Invert().PutAllForLeftKey(right, lefts...)
}

// Remove dissociates left and right, returning true if they were associated.
// A key that loses its last partner is removed from its side.
func (m *Mappings[L, R]) Remove(left L, right R) bool {
	const op = "remove"
	m.init()
	m.writable(op)
	_, removed := m.store.left.remove(op, left, right)
	return removed
}

// RemoveLeftKey removes every association of left, returning the right keys it was associated with.
// The returned set is nil if left had no associations.
func (m *Mappings[L, R]) RemoveLeftKey(left L) set.Set[R] {
	const op = "remove left key"
	m.init()
	m.writable(op)
	return set.Set[R](m.store.left.removeKey(op, left))
}

// RemoveRightKey removes every association of right, returning the left keys it was associated with.
func (m *Mappings[L, R]) RemoveRightKey(right R) set.Set[L] {
	return m.Invert().RemoveLeftKey(right)
}

// ReplaceLeftKey makes rights the exact set of right keys associated with left, returning the previous set.
// An empty rights removes left entirely.
// Partner sets held for left, and for right keys kept by the replacement, stay live.
func (m *Mappings[L, R]) ReplaceLeftKey(left L, rights set.Set[R]) set.Set[R] {
	const op = "replace left key"
	m.init()
	m.writable(op)
	return set.Set[R](m.store.left.replaceKey(op, left, map[R]struct{}(rights)))
}

// ReplaceRightKey makes lefts the exact set of left keys associated with right, returning the previous set.
func (m *Mappings[L, R]) ReplaceRightKey(right R, lefts set.Set[L]) set.Set[L] {
	return m.Invert().ReplaceLeftKey(right, lefts)
}

func (m *Mappings[L, R]) Contains(left L, right R) bool {
	m.init()
	return m.store.left.contains(left, right)
}

func (m *Mappings[L, R]) ContainsLeftKey(left L) bool {
	m.init()
	_, ok := m.store.left.lookup(left)
	return ok
}

func (m *Mappings[L, R]) ContainsRightKey(right R) bool {
	return m.Invert().ContainsLeftKey(right)
}

// GetAllForLeftKey returns a live [PartnerSet] of the right keys associated with left.
func (m *Mappings[L, R]) GetAllForLeftKey(left L) (*PartnerSet[L, R], bool) {
	return m.LeftView().Get(left)
}

// GetAllForRightKey returns a live [PartnerSet] of the left keys associated with right.
func (m *Mappings[L, R]) GetAllForRightKey(right R) (*PartnerSet[R, L], bool) {
	return m.RightView().Get(right)
}

// Size returns the number of associations.
// It's computed on each call by summing the partners of every left key.
func (m *Mappings[L, R]) Size() int {
	m.init()
	return m.store.left.size()
}

func (m *Mappings[L, R]) IsEmpty() bool {
	m.init()
	return m.store.left.buckets.Len() == 0
}

// Clear removes every association.
func (m *Mappings[L, R]) Clear() {
	const op = "clear"
	m.init()
	m.writable(op)
	m.store.left.clearAll(op)
}

// LeftView returns a live view from each left key to its right keys.
func (m *Mappings[L, R]) LeftView() *SetView[L, R] {
	m.init()
	return &SetView[L, R]{x: m.store.left, readOnly: m.readOnly}
}

// RightView returns a live view from each right key to its left keys.
func (m *Mappings[L, R]) RightView() *SetView[R, L] {
	m.init()
	return &SetView[R, L]{x: m.store.right, readOnly: m.readOnly}
}

// All iterates every association, grouped by left key.
// Structural changes made during iteration panic with [ErrConcurrentModification]; use [Mappings.Cursor] to remove while iterating.
func (m *Mappings[L, R]) All() iter.Seq2[L, R] {
	m.init()
	x := m.store.left
	return func(yield func(L, R) bool) {
		for a := range x.associations() {
			if !yield(a.Left, a.Right) {
				return
			}
		}
	}
}

// Cursor opens a [Cursor] over every association, grouped by left key.
func (m *Mappings[L, R]) Cursor() *Cursor[L, R, struct{}] {
	m.init()
	return newCursor(m.store.left, m.readOnly)
}

// Invert returns the same relation with left and right swapped.
// Nothing is copied, so changes through either one are visible in both, and inverting the inverse returns m itself.
func (m *Mappings[L, R]) Invert() *Mappings[R, L] {
	m.init()
	if m.inverse == nil {
		m.inverse = &Mappings[R, L]{
			store:    m.store.inverse(),
			inverse:  m,
			readOnly: m.readOnly,
		}
	}
	return m.inverse
}

// ReadOnly returns a view of the relation that panics with [ErrReadOnly] on any attempt to change it.
// Views, partner sets, cursors, and inverses obtained from it are read-only as well.
func (m *Mappings[L, R]) ReadOnly() *Mappings[L, R] {
	m.init()
	if m.readOnly {
		return m
	}
	return &Mappings[L, R]{store: m.store, readOnly: true}
}

// Verify checks that both sides of the relation agree, and that no key is left without partners.
// A non-nil error wraps [ErrCorrupted], and should never be seen outside of a bug in this package.
func (m *Mappings[L, R]) Verify() error {
	m.init()
	return m.store.verify()
}

func (m *Mappings[L, R]) String() string {
	m.init()
	return formatIndex(m.store.left)
}
