package relation

import (
	"cmp"
	"fmt"
	"github.com/emirpasic/gods/trees/redblacktree"
	"iter"
)

// Strategy identifies the kind of container a [Factory] produces.
type Strategy int

const (
	Hashed Strategy = iota // Hashed containers iterate in an unspecified order.
	Sorted                 // Sorted containers iterate in ascending key order.
)

func (s Strategy) String() string {
	switch s {
	case Hashed:
		return "hashed"
	case Sorted:
		return "sorted"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Factory supplies the containers keyed by one side of a relation.
// That covers the side's own index, as well as every bucket on the opposite side, since those buckets hold this side's keys as partners.
//
// The zero value is equivalent to [Hash].
type Factory[K comparable] struct {
	strategy Strategy
	compare  func(a, b K) int
}

// Hash creates a [Factory] backed by built-in maps.
func Hash[K comparable]() Factory[K] {
	return Factory[K]{strategy: Hashed}
}

// Ordered creates a [Factory] backed by red-black trees using the natural ordering of K.
func Ordered[K cmp.Ordered]() Factory[K] {
	return OrderedFunc[K](cmp.Compare[K])
}

// OrderedFunc creates a [Factory] backed by red-black trees ordered by compare.
// The compare function must return a negative number when a < b, zero when a == b, and a positive number when a > b.
func OrderedFunc[K comparable](compare func(a, b K) int) Factory[K] {
	if compare == nil {
		panic("nil compare function")
	}
	return Factory[K]{strategy: Sorted, compare: compare}
}

// Strategy reports which kind of container this [Factory] produces.
func (f Factory[K]) Strategy() Strategy {
	return f.strategy
}

func newContainer[K comparable, V any](f Factory[K]) container[K, V] {
	if f.strategy == Sorted {
		return newTreeContainer[K, V](f.compare)
	}
	return hashContainer[K, V]{}
}

// container is the minimal map contract shared by outer indices and buckets.
// All must tolerate deletion of the entry being yielded, and entries deleted before they're reached are not yielded.
type container[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, val V) (V, bool)
	Delete(key K) (V, bool)
	Len() int
	Clear()
	All() iter.Seq2[K, V]
}

var (
	_ container[string, int] = hashContainer[string, int]{}
	_ container[string, int] = (*treeContainer[string, int])(nil)
)

type hashContainer[K comparable, V any] map[K]V

func (c hashContainer[K, V]) Get(key K) (V, bool) {
	val, ok := c[key]
	return val, ok
}

func (c hashContainer[K, V]) Put(key K, val V) (V, bool) {
	prev, ok := c[key]
	c[key] = val
	return prev, ok
}

func (c hashContainer[K, V]) Delete(key K) (V, bool) {
	prev, ok := c[key]
	if ok {
		delete(c, key)
	}
	return prev, ok
}

func (c hashContainer[K, V]) Len() int {
	return len(c)
}

func (c hashContainer[K, V]) Clear() {
	clear(c)
}

func (c hashContainer[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, val := range c {
			if !yield(key, val) {
				return
			}
		}
	}
}

type treeContainer[K comparable, V any] struct {
	tree *redblacktree.Tree
}

func newTreeContainer[K comparable, V any](compare func(a, b K) int) *treeContainer[K, V] {
	return &treeContainer[K, V]{
		tree: redblacktree.NewWith(func(a, b interface{}) int {
			return compare(a.(K), b.(K))
		}),
	}
}

// unbox is used instead of a bare type assertion so interface typed values never panic on the way out of the tree.
func unbox[T any](v interface{}) T {
	val, _ := v.(T)
	return val
}

func (c *treeContainer[K, V]) Get(key K) (V, bool) {
	val, ok := c.tree.Get(key)
	if !ok {
		var mt V
		return mt, false
	}
	return unbox[V](val), true
}

func (c *treeContainer[K, V]) Put(key K, val V) (V, bool) {
	prev, ok := c.Get(key)
	c.tree.Put(key, val)
	return prev, ok
}

func (c *treeContainer[K, V]) Delete(key K) (V, bool) {
	prev, ok := c.Get(key)
	if ok {
		c.tree.Remove(key)
	}
	return prev, ok
}

func (c *treeContainer[K, V]) Len() int {
	return c.tree.Size()
}

func (c *treeContainer[K, V]) Clear() {
	c.tree.Clear()
}

// All walks the tree by repeatedly searching for the next greater key from the root.
// Node pointers aren't held across a yield, because removal may restructure the tree underneath.
func (c *treeContainer[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		node := c.tree.Left()
		for node != nil {
			key := node.Key.(K)
			if !yield(key, unbox[V](node.Value)) {
				return
			}
			node = c.higher(key)
		}
	}
}

// higher finds the node with the smallest key strictly greater than key, or nil.
func (c *treeContainer[K, V]) higher(key K) *redblacktree.Node {
	var found *redblacktree.Node
	node := c.tree.Root
	for node != nil {
		if c.tree.Comparator(node.Key, key) > 0 {
			found = node
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return found
}
