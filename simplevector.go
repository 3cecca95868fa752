package simplevector

import (
	"errors"
	"fmt"
	"iter"
)

// ErrIndexOutOfRange is returned by At when the index is not a live position.
var ErrIndexOutOfRange = errors.New("index out of range")

// SimpleVector is a dynamically resizable, contiguously stored sequence built
// on a single ArrayPtr. Elements in [0, size) are live; slots in
// [size, capacity) are allocated zero-value placeholders and never read as
// data.
//
// Every growing operation builds the replacement block completely before
// swapping it in, so a failure mid-growth leaves the vector unmodified.
//
// Not safe for concurrent use; share only with external synchronization.
type SimpleVector[T any] struct {
	items    ArrayPtr[T]
	size     int
	capacity int
}

// New returns an empty vector with no allocation.
func New[T any]() *SimpleVector[T] {
	return &SimpleVector[T]{}
}

// NewWithSize returns a vector of size zero-valued elements, with capacity
// equal to size.
func NewWithSize[T any](size int) *SimpleVector[T] {
	return &SimpleVector[T]{
		items:    NewArrayPtr[T](size),
		size:     size,
		capacity: size,
	}
}

// NewFill returns a vector of size elements, each set to value.
func NewFill[T any](size int, value T) *SimpleVector[T] {
	v := NewWithSize[T](size)
	for i := range v.items.Get() {
		*v.items.At(i) = value
	}
	return v
}

// NewFromSlice returns a vector holding the given values in order. The
// values are copied; the vector shares no storage with the caller.
func NewFromSlice[T any](values ...T) *SimpleVector[T] {
	v := NewWithSize[T](len(values))
	copy(v.items.Get(), values)
	return v
}

// Clone is the copy constructor: a fresh block sized to the source's live
// element count, deep-copied. Mutating the clone never affects v.
func (v *SimpleVector[T]) Clone() *SimpleVector[T] {
	c := NewWithSize[T](v.size)
	copy(c.items.Get(), v.Items())
	return c
}

// CopyAssign replaces v's contents with a deep copy of rhs's live elements.
// Assigning a vector to itself is a no-op. The new capacity equals rhs's
// size: the block is sized to the elements it carries.
func (v *SimpleVector[T]) CopyAssign(rhs *SimpleVector[T]) {
	if v == rhs {
		return
	}
	tmp := NewArrayPtr[T](rhs.size)
	copy(tmp.Get(), rhs.Items())
	tmp.Swap(&v.items)
	v.size = rhs.size
	v.capacity = rhs.size
}

// Move transfers v's storage into a new vector, leaving v valid and empty.
func (v *SimpleVector[T]) Move() *SimpleVector[T] {
	m := New[T]()
	m.MoveAssign(v)
	return m
}

// MoveAssign takes rhs's storage and bookkeeping, leaving rhs valid and
// empty with zero capacity.
func (v *SimpleVector[T]) MoveAssign(rhs *SimpleVector[T]) {
	if v == rhs {
		return
	}
	v.items.MoveAssign(&rhs.items)
	v.size, rhs.size = rhs.size, 0
	v.capacity, rhs.capacity = rhs.capacity, 0
}

// Len returns the number of live elements.
func (v *SimpleVector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated storage slots.
func (v *SimpleVector[T]) Cap() int {
	return v.capacity
}

// IsEmpty reports whether the vector holds no live elements.
func (v *SimpleVector[T]) IsEmpty() bool {
	return v.size == 0
}

// Ref returns a reference to the element at index i without a bounds check
// against size. Contract: i < Len(). The hot-path access; use At when the
// index is not already known good.
func (v *SimpleVector[T]) Ref(i int) *T {
	return v.items.At(i)
}

// At returns a reference to the element at index i, or an error wrapping
// ErrIndexOutOfRange when i is not a live position. This is the only access
// path that validates bounds at runtime.
func (v *SimpleVector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, v.size)
	}
	return v.items.At(i), nil
}

// Clear sets the size to 0. Capacity is kept and trailing elements are left
// in place as logically absent slots; storage is not released to the GC.
func (v *SimpleVector[T]) Clear() {
	v.size = 0
}

// Resize sets the live element count to newSize. Shrinking only lowers the
// watermark. Growing within capacity exposes slots that still hold their
// zero values from allocation time. Growing past capacity reallocates to
// max(newSize, 2*capacity) with construct-then-swap.
func (v *SimpleVector[T]) Resize(newSize int) {
	if newSize <= v.capacity {
		v.size = newSize
		return
	}

	newCapacity := max(newSize, 2*v.capacity)
	tmp := NewArrayPtr[T](newCapacity)
	copy(tmp.Get(), v.Items())
	tmp.Swap(&v.items)
	v.size = newSize
	v.capacity = newCapacity
}

// Reserve grows capacity to exactly newCapacity, preserving size and element
// order. A request at or below the current capacity is a no-op; capacity
// never decreases.
func (v *SimpleVector[T]) Reserve(newCapacity int) {
	if newCapacity <= v.capacity {
		return
	}

	tmp := NewArrayPtr[T](newCapacity)
	copy(tmp.Get(), v.Items())
	tmp.Swap(&v.items)
	v.capacity = newCapacity
}

// PushBack appends value. When storage is full the capacity doubles
// (max(2*capacity, 1)); the new block is fully assembled, value included,
// before it replaces the old one.
func (v *SimpleVector[T]) PushBack(value T) {
	if v.size != v.capacity {
		*v.items.At(v.size) = value
		v.size++
		return
	}

	newCapacity := max(2*v.capacity, 1)
	tmp := NewArrayPtr[T](newCapacity)
	copy(tmp.Get(), v.Items())
	*tmp.At(v.size) = value

	tmp.Swap(&v.items)
	v.size++
	v.capacity = newCapacity
}

// Insert places value at position pos, shifting the suffix one slot right,
// and returns pos. Contract: 0 <= pos <= Len(); insertion at the end is
// permitted. Violations panic. Growth follows the PushBack doubling policy,
// assembling prefix, value and suffix into the new block in one pass.
func (v *SimpleVector[T]) Insert(pos int, value T) int {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("simplevector: Insert position %d outside [0, %d]", pos, v.size))
	}

	if v.size != v.capacity {
		raw := v.items.Get()
		// copy is overlap-safe, equivalent to a backward move here
		copy(raw[pos+1:v.size+1], raw[pos:v.size])
		raw[pos] = value
		v.size++
		return pos
	}

	newCapacity := max(2*v.capacity, 1)
	tmp := NewArrayPtr[T](newCapacity)
	old := v.Items()
	copy(tmp.Get(), old[:pos])
	*tmp.At(pos) = value
	copy(tmp.Get()[pos+1:], old[pos:])

	tmp.Swap(&v.items)
	v.size++
	v.capacity = newCapacity
	return pos
}

// PopBack removes the last element by lowering the watermark. Contract:
// the vector is non-empty; popping an empty vector panics.
func (v *SimpleVector[T]) PopBack() {
	if v.size == 0 {
		panic("simplevector: PopBack on empty vector")
	}
	v.size--
}

// Erase removes the element at position pos, shifting the suffix one slot
// left, and returns pos (where the next element now resides). Contract:
// 0 <= pos < Len(). Violations panic.
func (v *SimpleVector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic(fmt.Sprintf("simplevector: Erase position %d outside [0, %d)", pos, v.size))
	}

	raw := v.items.Get()
	copy(raw[pos:v.size-1], raw[pos+1:v.size])
	v.size--
	return pos
}

// Swap exchanges storage, size and capacity with other in constant time.
func (v *SimpleVector[T]) Swap(other *SimpleVector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// Items returns the mutable window over exactly the live elements. The slice
// aliases the vector's storage and is invalidated by any growing operation.
// An empty vector yields nil, never a dangling non-nil slice.
func (v *SimpleVector[T]) Items() []T {
	if v.size == 0 {
		return nil
	}
	return v.items.Get()[:v.size]
}

// Values returns a read-only, restartable forward traversal of the live
// elements. Obtaining it has no side effects; ranging may be repeated.
func (v *SimpleVector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.items.At(i)) {
				return
			}
		}
	}
}
