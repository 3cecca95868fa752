package simplevector

// ArrayPtr is a move-only handle to one contiguous block of element storage.
// The block's length is fixed at construction and never changes in place; at
// most one ArrayPtr owns a given block at a time. Copying the struct by
// assignment breaks that contract — transfer ownership with Move, MoveAssign,
// Release or Swap instead.
//
// There is no resizing here. Growth lives one layer up, in SimpleVector.
type ArrayPtr[T any] struct {
	raw []T // len == cap == fixed block length; nil when empty
}

// NewArrayPtr allocates a block of size zero-valued elements. A size of 0
// allocates nothing and yields the empty state. Allocation failure is fatal;
// there is no recovery path for a container without backing storage.
func NewArrayPtr[T any](size int) ArrayPtr[T] {
	if size == 0 {
		return ArrayPtr[T]{}
	}
	return ArrayPtr[T]{raw: make([]T, size)}
}

// Adopt takes ownership of a caller-provided block without allocating.
// The caller must not retain or use raw afterward.
func Adopt[T any](raw []T) ArrayPtr[T] {
	return ArrayPtr[T]{raw: raw}
}

// Move transfers the owned block into a new ArrayPtr, leaving p empty but
// valid. This is the move-construction path.
func (p *ArrayPtr[T]) Move() ArrayPtr[T] {
	return Adopt(p.Release())
}

// MoveAssign drops p's current block and takes ownership of src's, leaving
// src empty but valid.
func (p *ArrayPtr[T]) MoveAssign(src *ArrayPtr[T]) {
	p.raw = src.Release()
}

// Release relinquishes ownership and returns the raw block; p is reset to
// the empty state. The caller becomes responsible for the block's lifetime.
// On an empty ArrayPtr it returns nil.
func (p *ArrayPtr[T]) Release() []T {
	raw := p.raw
	p.raw = nil
	return raw
}

// At returns a reference to the element at index i. No bounds check beyond
// the runtime's own; callers are expected to index within the block. This is
// the unchecked low-level primitive.
func (p *ArrayPtr[T]) At(i int) *T {
	return &p.raw[i]
}

// Owns reports whether p currently holds a non-empty allocation.
func (p *ArrayPtr[T]) Owns() bool {
	return p.raw != nil
}

// Get returns the raw block without transferring ownership; nil when empty.
func (p *ArrayPtr[T]) Get() []T {
	return p.raw
}

// Len returns the fixed length of the owned block, 0 when empty.
func (p *ArrayPtr[T]) Len() int {
	return len(p.raw)
}

// Swap exchanges the owned blocks of p and other in constant time. No
// allocation, no element moves.
func (p *ArrayPtr[T]) Swap(other *ArrayPtr[T]) {
	p.raw, other.raw = other.raw, p.raw
}
