package avlset

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptySet(t *testing.T) {
	s := New[int]()
	assert.True(t, s.Empty())
	assert.Zero(t, s.Len())
	assert.Equal(t, s.End(), s.Begin())
	assert.Equal(t, s.End(), s.Find(42))
	assert.Equal(t, s.End(), s.LowerBound(42))
	assert.False(t, s.First().Ok)
	assert.False(t, s.Last().Ok)
}

func TestScenario(t *testing.T) {
	s := FromSlice(5, 3, 8, 1, 4, 7, 9)
	require.Equal(t, 7, s.Len())
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, slices.Collect(s.All()))
	assert.Equal(t, s.End(), s.Find(6))
	lb := s.LowerBound(6)
	require.NotEqual(t, s.End(), lb)
	assert.Equal(t, 7, lb.Value())
	s.Remove(5)
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, slices.Collect(s.All()))
}

func TestIdempotence(t *testing.T) {
	s := New[int]()
	assert.True(t, s.CheckedAdd(3))
	assert.False(t, s.CheckedAdd(3))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.CheckedRemove(3))
	assert.False(t, s.CheckedRemove(3))
	assert.Zero(t, s.Len())
}

func TestRoundTrip(t *testing.T) {
	s := FromSlice(2, 4, 6)
	s.Add(5)
	it := s.Find(5)
	require.NotEqual(t, s.End(), it)
	assert.Equal(t, 5, it.Value())
	s.Remove(5)
	assert.Equal(t, s.End(), s.Find(5))
	assert.False(t, s.Contains(5))
}

func TestLowerBound(t *testing.T) {
	s := FromSlice(10, 20, 30)
	for _, tc := range []struct {
		query    int
		expected int
	}{
		{5, 10},
		{10, 10},
		{11, 20},
		{20, 20},
		{29, 30},
		{30, 30},
	} {
		it := s.LowerBound(tc.query)
		require.NotEqual(t, s.End(), it, "query %d", tc.query)
		assert.Equal(t, tc.expected, it.Value(), "query %d", tc.query)
	}
	assert.Equal(t, s.End(), s.LowerBound(31))
}

func TestFirstLast(t *testing.T) {
	s := FromSlice(3, 1, 2)
	assert.Equal(t, 1, s.First().Value)
	assert.Equal(t, 3, s.Last().Value)
	s.Clear()
	assert.True(t, s.Empty())
	assert.False(t, s.First().Ok)
	assert.Equal(t, s.End(), s.Begin())
}

// Equivalence under the ordering is what dedupes, not Go equality: with a
// case-folding less, "go" and "GO" are one element and the first insert wins.
func TestStrictWeakOrdering(t *testing.T) {
	s := NewFunc[string](func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})
	s.Add("Go")
	s.Add("GO")
	s.Add("rust")
	require.Equal(t, 2, s.Len())
	it := s.Find("gO")
	require.NotEqual(t, s.End(), it)
	assert.Equal(t, "Go", it.Value())
	s.Remove("gO")
	assert.False(t, s.Contains("go"))
	assert.Equal(t, 1, s.Len())
}

func TestFromSeq(t *testing.T) {
	s := FromSeq(slices.Values([]int{3, 1, 3, 2}))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(s.All()))
}

func TestRemoveDescendingAndAscending(t *testing.T) {
	s := New[int]()
	for i := 0; i < 64; i++ {
		s.Add(i)
	}
	for i := 63; i >= 32; i-- {
		s.Remove(i)
	}
	for i := 0; i < 16; i++ {
		s.Remove(i)
	}
	assert.Equal(t, 16, s.Len())
	assert.Equal(t, 16, s.First().Value)
	assert.Equal(t, 31, s.Last().Value)
}
