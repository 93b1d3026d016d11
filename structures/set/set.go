package set

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Set formalizes set semantics for a map of comparable values to empty structs.
// A nil Set may be read from, and the methods that add values will allocate a new Set as needed.
type Set[T comparable] map[T]struct{}

// New creates a new [Set] from the given values.
// The returned [Set] will have no values if none are given.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// FromKeys will create a new [Set] from the keys of the given map, if any are present.
func FromKeys[T comparable, E any](vals map[T]E) Set[T] {
	s := make(Set[T], len(vals))
	for v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// FromSeq creates a new [Set] from every value produced by seq.
func FromSeq[T comparable](seq iter.Seq[T]) Set[T] {
	s := Set[T]{}
	for v := range seq {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Slice() []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Collect(maps.Keys(s))
}

// All iterates the values of the [Set] in an unspecified order.
func (s Set[T]) All() iter.Seq[T] {
	return maps.Keys(s)
}

func (s Set[T]) Add(val T, others ...T) Set[T] {
	if s == nil {
		s = Set[T]{}
	}
	s[val] = struct{}{}
	for _, v := range others {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Remove(val T, others ...T) Set[T] {
	if s == nil {
		s = Set[T]{}
	}
	delete(s, val)
	for _, v := range others {
		delete(s, v)
	}
	return s
}

func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// HasAny determines if any of the given values are present in the [Set].
// If the parameter list is empty, then false is returned.
func (s Set[T]) HasAny(values ...T) bool {
	if len(s) == 0 {
		return false
	}
	for _, value := range values {
		if s.Has(value) {
			return true
		}
	}
	return false
}

// HasAll determines if all given values are present in the [Set].
// If the parameter list is empty, then false is returned.
func (s Set[T]) HasAll(values ...T) bool {
	if len(s) == 0 {
		return false
	}
	if len(values) == 0 {
		return false
	}
	for _, value := range values {
		if !s.Has(value) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold exactly the same values.
// A nil [Set] is equal to an empty one.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// Intersection returns a new [Set] with only the values common between sets.
func (s Set[T]) Intersection(other Set[T]) Set[T] {
	inter := Set[T]{}
	for v := range other {
		if s.Has(v) {
			inter.Add(v)
		}
	}
	return inter
}

// Difference returns a new [Set] with the common values between sets removed.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	diff := Set[T]{}
	for v := range s {
		if !other.Has(v) {
			diff.Add(v)
		}
	}
	return diff
}

// Union returns a new [Set] with all values from both sets.
func (s Set[T]) Union(other Set[T]) Set[T] {
	union := make(Set[T], max(len(s), len(other)))
	maps.Copy(union, s)
	maps.Copy(union, other)
	return union
}

func (s Set[T]) Copy() Set[T] {
	return FromKeys(s)
}

// Sorted returns the values of the [Set] in ascending order.
// A nil slice is returned for an empty [Set].
func Sorted[T cmp.Ordered](s Set[T]) []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(s))
}
