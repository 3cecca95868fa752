package simplevector

// ReserveRequest carries a requested capacity. It exists to route
// construction through the reserve path instead of the size-based
// constructors; the request itself allocates nothing.
type ReserveRequest struct {
	capacity int
}

// Reserve builds a ReserveRequest for capacityToReserve slots.
func Reserve(capacityToReserve int) ReserveRequest {
	return ReserveRequest{capacity: capacityToReserve}
}

// Capacity returns the requested slot count.
func (r ReserveRequest) Capacity() int {
	return r.capacity
}

// NewFromReserve returns an empty vector with capacity pre-grown to the
// request's value. Size stays 0.
func NewFromReserve[T any](req ReserveRequest) *SimpleVector[T] {
	return NewWithCapacity[T](req.Capacity())
}

// NewWithCapacity returns an empty vector with at least n slots reserved.
func NewWithCapacity[T any](n int) *SimpleVector[T] {
	v := New[T]()
	v.Reserve(n)
	return v
}
