package set

import (
	"github.com/stretchr/testify/assert"
	"slices"
	"sort"
	"testing"
)

func TestSet_Slice(t *testing.T) {
	set := New[string]()
	slice := set.Slice()
	assert.Nil(t, slice)
	assert.Len(t, slice, 0)
	set = New("a", "b")
	set.Add("c", "d")
	set.Remove("d", "e")
	assert.True(t, set.HasAll("a", "b", "c"))
	assert.Empty(t, set.Difference(New("a", "b", "c")))

	slice = set.Slice()
	assert.Len(t, slice, 3)
	sort.Strings(slice)
	assert.Equal(t, "a", slice[0])
	assert.Equal(t, "b", slice[1])
	assert.Equal(t, "c", slice[2])
}

func TestSet_Slice_NilSet(t *testing.T) {
	var set Set[int]
	assert.Nil(t, set.Slice())
	assert.Empty(t, set.Slice())
	assert.Nil(t, set.Copy().Slice())
	assert.Empty(t, set.Copy().Slice())
}

func TestFromSeq(t *testing.T) {
	set := FromSeq(slices.Values([]int{3, 1, 3, 2}))
	assert.Len(t, set, 3)
	assert.True(t, set.HasAll(1, 2, 3))
	assert.Empty(t, FromSeq(slices.Values([]int(nil))))
}

func TestSet_All(t *testing.T) {
	set := New(1, 2, 3)
	var sum int
	for v := range set.All() {
		sum += v
	}
	assert.Equal(t, 6, sum)

	var nilSet Set[int]
	for range nilSet.All() {
		t.Fatal("Nil set should have no values")
	}
}

func TestSet_Equal(t *testing.T) {
	var nilSet Set[string]
	assert.True(t, nilSet.Equal(New[string]()))
	assert.True(t, New("a", "b").Equal(New("b", "a")))
	assert.False(t, New("a", "b").Equal(New("a")))
	assert.False(t, New("a", "b").Equal(New("a", "c")))
}

func TestSet_Union(t *testing.T) {
	union := New(1, 2).Union(New(2, 3))
	assert.Equal(t, []int{1, 2, 3}, Sorted(union))
	assert.Empty(t, Set[int](nil).Union(nil))
}

func TestSet_Copy(t *testing.T) {
	orig := New("a")
	cp := orig.Copy()
	cp.Add("b")
	assert.False(t, orig.Has("b"), "Copy should not share storage")
}

func TestSorted(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Sorted(New("c", "a", "b")))
	assert.Nil(t, Sorted(New[string]()))
}
