// The intent of valuepool is to pool value objects without heap identity.
//
// Different than [opool.Pool], which stores references and hands out the
// objects themselves, a valuepool [Pool] owns a fixed-capacity contiguous
// store and hands out slot indices:
//   - TryAcquire pops a free slot index and returns a copy of its contents
//   - Release pushes the index back, making the slot reusable
//
// The index is the handle. The slot is the authoritative object: mutate it
// through [Pool.At] (or the slice returned by [Pool.Items]), not through
// the copy returned by TryAcquire — the copy never writes back.
//
//	pool, _ := valuepool.New[Particle](1024)
//
//	p, idx, ok := pool.TryAcquire()
//	if !ok {
//	  // pool exhausted, capacity is hard
//	}
//	_ = p // copy of the slot's last contents
//
//	pool.At(idx).Velocity = v // in-place edit of the slot
//	defer pool.Release(idx)
//
// Capacity is fixed at construction. There is no overflow policy and no
// allocation on the acquire path. Free slots are reused in LIFO order.
//
// A Pool is not safe for concurrent use, same as the rest of opool.
package valuepool

import "errors"

var (
	// ErrInvalidCapacity is returned by New for capacities <= 0.
	ErrInvalidCapacity = errors.New("valuepool: capacity must be positive")

	// ErrIndexOutOfRange is returned by Release for an index outside
	// [0, capacity).
	ErrIndexOutOfRange = errors.New("valuepool: index out of range")
)

// Pool is a fixed-capacity, index-addressed pool of value objects.
type Pool[T any] struct {
	items []T
	free  []int // LIFO free list of slot indices
	top   int   // -1 when exhausted, len(items)-1 when all free
}

// New is the constructor of a *valuepool.Pool holding capacity slots.
// All slots start free, with the free list built as [0, 1, ..., capacity-1]
// so the first acquisitions pop the highest indices first.
func New[T any](capacity int) (*Pool[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	free := make([]int, capacity)
	for i := range free {
		free[i] = i
	}

	return &Pool[T]{
		items: make([]T, capacity),
		free:  free,
		top:   capacity - 1,
	}, nil
}

// TryAcquire pops a free slot. Returns a copy of the slot's current
// contents, the slot index and true; or the zero value, -1 and false
// when every slot is in use.
func (p *Pool[T]) TryAcquire() (value T, index int, ok bool) {
	if p.top < 0 {
		return value, -1, false
	}

	index = p.free[p.top]
	p.top--

	return p.items[index], index, true
}

// Release pushes index back onto the free list.
// Returns ErrIndexOutOfRange when index does not address a slot, leaving
// the free list untouched.
//
// Releasing an index that is not currently acquired, or releasing the
// same index twice, puts duplicate entries on the free list and is not
// detected. Callers must release each acquired index exactly once.
func (p *Pool[T]) Release(index int) error {
	if index < 0 || index >= len(p.items) {
		return ErrIndexOutOfRange
	}

	p.top++
	p.free[p.top] = index

	return nil
}

// At returns a pointer to the slot at index, for in-place mutation.
// Panics on an out of range index, like a slice access would.
func (p *Pool[T]) At(index int) *T {
	return &p.items[index]
}

// Items returns the live backing store for bulk iteration.
// The slice aliases pool memory: it contains free and in-use slots alike,
// and the pool keeps writing to it on future acquisitions.
func (p *Pool[T]) Items() []T {
	return p.items
}

// Capacity returns the fixed number of slots.
func (p *Pool[T]) Capacity() int {
	return len(p.items)
}

// FreeCount returns the number of slots currently free.
func (p *Pool[T]) FreeCount() int {
	return p.top + 1
}

// UsedCount returns the number of slots currently acquired.
func (p *Pool[T]) UsedCount() int {
	return len(p.items) - p.top - 1
}
