package opool

import (
	"io"
	"reflect"
	"runtime"
)

// Pool is a type-safe object pool with an explicit free store.
//
// Unlike a sync.Pool, instances are kept on a plain LIFO stack and are
// never evicted behind the caller's back: an instance stays in the pool
// until acquired, destroyed by capacity pressure, or cleared.
//
// A Pool is not safe for concurrent use. It is meant for single-threaded
// hot loops (per-frame allocations, parsers, codecs) where the cost of
// synchronization is not wanted.
type Pool[T any] struct {
	factory   func() T
	onAcquire func(T)
	onRelease func(T)
	onDestroy func(T)
	overflow  func() T

	// available is the free store. The top of the stack is the most
	// recently released instance, so reuse favors warm objects.
	available []T

	totalCreated int
	maxSize      int // 0 means unbounded

	hits      int
	misses    int
	destroyed int

	tracker *tracker
	closed  bool
}

// New is the constructor of an *opool.Pool.
// Receives the constructor of the type T, plus functional options.
//
// Returns ErrNilFactory if factory is nil and ErrNegativeSize if
// WithInitialSize or WithMaxSize received a negative value.
func New[T any](factory func() T, opts ...Option[T]) (*Pool[T], error) {
	if factory == nil {
		return nil, ErrNilFactory
	}

	var c poolConfig[T]

	for _, opt := range opts {
		opt(&c)
	}

	if c.initialSize < 0 || c.maxSize < 0 {
		return nil, ErrNegativeSize
	}

	p := &Pool[T]{
		factory:   factory,
		onAcquire: c.onAcquire,
		onRelease: c.onRelease,
		onDestroy: c.onDestroy,
		overflow:  c.overflow,
		maxSize:   c.maxSize,
	}

	if p.overflow == nil {
		// default policy: construct anyway, uncounted. The capacity
		// bounds the free store, not the number of live instances.
		p.overflow = factory
	}

	if c.debug {
		p.tracker = newTracker()
	}

	p.Prewarm(c.initialSize)

	// last-resort teardown if the owner forgets to call Close.
	runtime.SetFinalizer(p, (*Pool[T]).Close)

	return p, nil
}

// Acquire fetch one instance from the pool.
// Pops the most recently released instance if any, otherwise creates
// another object via the factory. Once TotalCreated reaches the
// configured max size, further creation goes through the overflow
// policy instead and is not counted.
func (p *Pool[T]) Acquire() T {
	if n := len(p.available); n > 0 {
		obj := p.pop()
		p.hits++
		p.tracker.acquired(obj)

		if p.onAcquire != nil {
			p.onAcquire(obj)
		}

		return obj
	}

	p.misses++

	if p.maxSize == 0 || p.totalCreated < p.maxSize {
		obj := p.factory()
		p.totalCreated++
		p.tracker.constructed(obj)

		if p.onAcquire != nil {
			p.onAcquire(obj)
		}

		return obj
	}

	obj := p.overflow()
	p.tracker.constructed(obj)

	return obj
}

// Release return the instance to the pool.
// No-op on a nil reference. The onRelease hook runs unconditionally,
// then the instance is either pushed back onto the free store or, when
// the store is already at max size, destroyed.
//
// Releasing the same instance twice corrupts the free store. It is not
// detected unless the pool was built WithDebug.
func (p *Pool[T]) Release(obj T) {
	if isNilRef(obj) {
		return
	}

	if p.onRelease != nil {
		p.onRelease(obj)
	}

	p.tracker.released(obj)

	if p.maxSize > 0 && len(p.available) >= p.maxSize {
		p.destroy(obj)

		return
	}

	p.available = append(p.available, obj)
	p.tracker.pooled(obj)
}

// Prewarm creates up to count instances directly into the free store,
// bypassing the onAcquire hook. When the pool is bounded, creation
// stops as soon as the store is full. Each instance created counts
// toward TotalCreated.
func (p *Pool[T]) Prewarm(count int) {
	for i := 0; i < count; i++ {
		if p.maxSize > 0 && len(p.available) >= p.maxSize {
			return
		}

		obj := p.factory()
		p.totalCreated++
		p.available = append(p.available, obj)
		p.tracker.pooled(obj)
	}
}

// Clear destroys every instance in the free store and resets
// TotalCreated to zero. Instances currently held by callers are not
// affected.
func (p *Pool[T]) Clear() {
	for len(p.available) > 0 {
		p.destroy(p.pop())
	}

	p.totalCreated = 0
}

// Resize updates the max size of the free store.
// Returns ErrNegativeSize on a negative value, leaving the pool
// untouched. When shrinking below the current free store size, the
// excess most recently released instances are destroyed.
func (p *Pool[T]) Resize(newMaxSize int) error {
	if newMaxSize < 0 {
		return ErrNegativeSize
	}

	for len(p.available) > newMaxSize {
		p.destroy(p.pop())
	}

	p.maxSize = newMaxSize

	return nil
}

// Close tears the pool down: equivalent to Clear, plus it unregisters
// the finalizer installed by New. Safe to call multiple times.
func (p *Pool[T]) Close() {
	if p.closed {
		return
	}

	p.closed = true
	runtime.SetFinalizer(p, nil)
	p.Clear()
}

// Count returns the number of instances sitting in the free store.
func (p *Pool[T]) Count() int {
	return len(p.available)
}

// TotalCreated returns how many instances this pool ever constructed,
// excluding instances produced by the overflow policy.
func (p *Pool[T]) TotalCreated() int {
	return p.totalCreated
}

// MaxSize returns the free store capacity ceiling, 0 when unbounded.
func (p *Pool[T]) MaxSize() int {
	return p.maxSize
}

func (p *Pool[T]) pop() T {
	n := len(p.available)
	obj := p.available[n-1]

	var zero T

	p.available[n-1] = zero // do not retain the reference
	p.available = p.available[:n-1]

	return obj
}

func (p *Pool[T]) destroy(obj T) {
	p.destroyed++
	p.tracker.destroyed(obj)

	if p.onDestroy != nil {
		p.onDestroy(obj)
	}

	if closer, ok := any(obj).(io.Closer); ok {
		_ = closer.Close()
	}
}

// isNilRef reports whether obj is an absent reference: a nil interface
// value or a nil pointer-like value boxed in one.
func isNilRef[T any](obj T) bool {
	v := any(obj)
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
