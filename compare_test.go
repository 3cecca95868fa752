package simplevector

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualBasics(t *testing.T) {
	a := NewFromSlice(1, 2, 3)
	b := NewFromSlice(1, 2, 3)
	c := NewFromSlice(1, 2)
	d := NewFromSlice(1, 2, 4)

	assert.True(t, Equal(a, b))
	assert.True(t, Equal(a, a))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, d))
	assert.True(t, NotEqual(a, d))
	assert.True(t, Equal(New[int](), New[int]()))
}

func TestEqualIgnoresCapacity(t *testing.T) {
	a := NewFromSlice(1, 2)
	b := NewWithCapacity[int](64)
	b.PushBack(1)
	b.PushBack(2)
	assert.True(t, Equal(a, b))
}

func TestEqualLaws(t *testing.T) {
	reflexive := func(xs []int) bool {
		v := NewFromSlice(xs...)
		return Equal(v, v) && !NotEqual(v, v)
	}
	require.NoError(t, quick.Check(reflexive, nil))

	symmetric := func(xs, ys []int) bool {
		a, b := NewFromSlice(xs...), NewFromSlice(ys...)
		return Equal(a, b) == Equal(b, a)
	}
	require.NoError(t, quick.Check(symmetric, nil))
}

func TestLessLexicographic(t *testing.T) {
	cases := []struct {
		name string
		a, b []int
		less bool
	}{
		{"first element decides", []int{1, 9, 9}, []int{2, 0, 0}, true},
		{"later element decides", []int{1, 2, 3}, []int{1, 2, 4}, true},
		{"prefix orders first", []int{1, 2}, []int{1, 2, 0}, true},
		{"equal is not less", []int{1, 2, 3}, []int{1, 2, 3}, false},
		{"empty before anything", nil, []int{0}, true},
		{"empty vs empty", nil, nil, false},
		{"greater is not less", []int{5}, []int{4, 9}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewFromSlice(tc.a...)
			b := NewFromSlice(tc.b...)
			assert.Equal(t, tc.less, Less(a, b))
		})
	}
}

func TestDerivedOrderings(t *testing.T) {
	condition := func(xs, ys []int) bool {
		a, b := NewFromSlice(xs...), NewFromSlice(ys...)
		if Greater(a, b) != Less(b, a) {
			return false
		}
		if LessOrEqual(a, b) != !Less(b, a) {
			return false
		}
		if GreaterOrEqual(a, b) != !Less(a, b) {
			return false
		}
		// strict weak ordering: irreflexive and asymmetric
		if Less(a, a) || (Less(a, b) && Less(b, a)) {
			return false
		}
		// equal vectors are mutually not-less
		if Equal(a, b) && (Less(a, b) || Less(b, a)) {
			return false
		}
		// trichotomy over comparable ints
		return Equal(a, b) || Less(a, b) || Less(b, a)
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestOrderingStrings(t *testing.T) {
	a := NewFromSlice("apple", "pear")
	b := NewFromSlice("apple", "plum")
	assert.True(t, Less(a, b))
	assert.True(t, Greater(b, a))
	assert.True(t, LessOrEqual(a, a))
	assert.True(t, GreaterOrEqual(a, a))
}
