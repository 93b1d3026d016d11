package relation

import (
	"fmt"
	"iter"
)

// Cursor walks the associations of a relation one at a time, and can remove the association it's positioned on.
//
// Any other structural change to the relation while a Cursor is open makes the next call to Next or Remove panic with [ErrConcurrentModification].
// A Cursor is closed automatically once Next returns false.
// Close must be called when abandoning a Cursor early, to release its iteration state.
type Cursor[L, R comparable, V any] struct {
	x          *index[L, R, V]
	readOnly   bool
	expected   uint64
	nextKey    func() (L, *bucket[L, R, V], bool)
	stopKeys   func()
	nextItem   func() (R, V, bool)
	stopItem   func()
	bucket     *bucket[L, R, V]
	current    Association[L, R, V]
	positioned bool
	closed     bool
}

func newCursor[L, R comparable, V any](x *index[L, R, V], readOnly bool) *Cursor[L, R, V] {
	c := &Cursor[L, R, V]{
		x:        x,
		readOnly: readOnly,
		expected: x.shared.mods,
	}
	c.nextKey, c.stopKeys = iter.Pull2(x.buckets.All())
	return c
}

func (c *Cursor[L, R, V]) checkMods(op string) {
	if c.x.shared.mods != c.expected {
		c.Close()
		reject(op, nil, ErrConcurrentModification)
	}
}

// Next moves to the next association, and reports whether there was one.
func (c *Cursor[L, R, V]) Next() bool {
	if c.closed {
		return false
	}
	c.checkMods("next")
	c.positioned = false
	for {
		if c.nextItem != nil {
			if partner, val, ok := c.nextItem(); ok {
				c.current = Association[L, R, V]{Left: c.bucket.key, Right: partner, Value: val}
				c.positioned = true
				return true
			}
			c.stopItem()
			c.nextItem, c.stopItem = nil, nil
		}
		_, b, ok := c.nextKey()
		if !ok {
			c.Close()
			return false
		}
		c.bucket = b
		c.nextItem, c.stopItem = iter.Pull2(b.items.All())
	}
}

// Association returns the association the Cursor was last positioned on by Next.
func (c *Cursor[L, R, V]) Association() Association[L, R, V] {
	return c.current
}

// Remove deletes the current association from the relation, with the same cleanup as removing it directly.
// It panics with [ErrIllegalState] if Next hasn't positioned the Cursor on an association since the last Remove.
func (c *Cursor[L, R, V]) Remove() {
	const op = "remove"
	if c.readOnly {
		reject(op, nil, ErrReadOnly)
	}
	if !c.positioned {
		reject(op, nil, fmt.Errorf("%w: cursor is not positioned on an association", ErrIllegalState))
	}
	c.checkMods(op)
	c.bucket.remove(op, c.current.Right)
	c.positioned = false
	c.expected = c.x.shared.mods
	c.x.shared.audit(op)
}

// Close releases the Cursor. It's safe to call more than once.
func (c *Cursor[L, R, V]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.positioned = false
	if c.stopItem != nil {
		c.stopItem()
		c.nextItem, c.stopItem = nil, nil
	}
	c.stopKeys()
}
