package simplevector

import "cmp"

// Free comparison functions over whole vectors, following the element type's
// natural equality and ordering. Equality needs only comparable elements;
// the ordered comparisons need cmp.Ordered.

// Equal reports whether a and b have the same size and pairwise-equal
// elements in order.
func Equal[T comparable](a, b *SimpleVector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, av := range a.Items() {
		if av != *b.Ref(i) {
			return false
		}
	}
	return true
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *SimpleVector[T]) bool {
	return !Equal(a, b)
}

// Less reports whether a orders before b lexicographically: the first
// unequal element pair decides; a proper prefix orders before its extension.
func Less[T cmp.Ordered](a, b *SimpleVector[T]) bool {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		av, bv := *a.Ref(i), *b.Ref(i)
		if av < bv {
			return true
		}
		if bv < av {
			return false
		}
	}
	return a.Len() < b.Len()
}

// LessOrEqual reports a <= b under lexicographic ordering.
func LessOrEqual[T cmp.Ordered](a, b *SimpleVector[T]) bool {
	return !Less(b, a)
}

// Greater reports a > b under lexicographic ordering.
func Greater[T cmp.Ordered](a, b *SimpleVector[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual reports a >= b under lexicographic ordering.
func GreaterOrEqual[T cmp.Ordered](a, b *SimpleVector[T]) bool {
	return !Less(a, b)
}
