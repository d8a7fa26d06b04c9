package opool

type poolConfig[T any] struct {
	onAcquire   func(T)
	onRelease   func(T)
	onDestroy   func(T)
	overflow    func() T
	initialSize int
	maxSize     int
	debug       bool
}

// Option type.
type Option[T any] func(*poolConfig[T])

// WithOnAcquire is a functional option.
// The hook runs after an instance is selected for handoff, whether it
// was recycled or freshly constructed. It does not run on instances
// produced by the overflow policy.
func WithOnAcquire[T any](hook func(T)) Option[T] {
	return func(c *poolConfig[T]) {
		c.onAcquire = hook
	}
}

// WithOnRelease is a functional option.
// The hook runs on every Release before the instance is recycled or
// destroyed, so it is the place to reset mutable state.
func WithOnRelease[T any](hook func(T)) Option[T] {
	return func(c *poolConfig[T]) {
		c.onRelease = hook
	}
}

// WithOnDestroy is a functional option.
// The hook runs when an instance is permanently discarded: released
// into a full free store, trimmed by Resize, or dropped by Clear/Close.
func WithOnDestroy[T any](hook func(T)) Option[T] {
	return func(c *poolConfig[T]) {
		c.onDestroy = hook
	}
}

// WithInitialSize is a functional option.
// The pool pre-warms count instances at construction time.
func WithInitialSize[T any](count int) Option[T] {
	return func(c *poolConfig[T]) {
		c.initialSize = count
	}
}

// WithMaxSize is a functional option.
// Caps the free store at n recycled instances; 0 keeps it unbounded.
// The cap constrains recycling, not the number of concurrently live
// instances: see WithOverflowPolicy.
func WithMaxSize[T any](n int) Option[T] {
	return func(c *poolConfig[T]) {
		c.maxSize = n
	}
}

// WithOverflowPolicy is a functional option.
// The policy supplies an instance once TotalCreated has reached the max
// size and the free store is empty. Instances it produces are not
// counted by TotalCreated; released into a full pool they are destroyed
// rather than recycled. The default policy is the pool factory itself.
func WithOverflowPolicy[T any](policy func() T) Option[T] {
	return func(c *poolConfig[T]) {
		c.overflow = policy
	}
}

// WithDebug is a functional option.
// Enables misuse detection: Release panics on a double release or on an
// instance that did not come from this pool. Costs one map lookup per
// operation and requires the dynamic type of T to be comparable, so it
// is meant for tests and debug builds only.
func WithDebug[T any]() Option[T] {
	return func(c *poolConfig[T]) {
		c.debug = true
	}
}
