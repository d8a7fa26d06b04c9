// Package lease binds a borrowed instance to its source pool so it is
// released exactly once, no matter how the borrowing scope exits.
//
// It consumes only the public Acquire/Release contract of [opool.Pool].
package lease

import "github.com/peczenyj/opool"

// Lease holds one acquired instance and the pool it came from.
type Lease[T any] struct {
	pool     *opool.Pool[T]
	value    T
	released bool
}

// Take acquires an instance from p and wraps it in a Lease.
func Take[T any](p *opool.Pool[T]) *Lease[T] {
	return &Lease[T]{
		pool:  p,
		value: p.Acquire(),
	}
}

// Value returns the borrowed instance.
// The zero value of T after the lease was released.
func (l *Lease[T]) Value() T {
	return l.value
}

// Release returns the instance to the pool.
// Further calls are no-ops, so it is safe to both defer a Release and
// call it early.
func (l *Lease[T]) Release() {
	if l.released {
		return
	}

	l.released = true
	l.pool.Release(l.value)

	var zero T

	l.value = zero
}

// With acquires an instance, runs fn with it, and releases it on the
// way out, including on panic unwind.
func With[T any](p *opool.Pool[T], fn func(T)) {
	obj := p.Acquire()
	defer p.Release(obj)

	fn(obj)
}
