package opool

import "errors"

var (
	// ErrNilFactory is returned by New when no factory is given.
	// A pool cannot produce instances without one.
	ErrNilFactory = errors.New("opool: factory must not be nil")

	// ErrNegativeSize is returned when a negative size is given to
	// New (via WithInitialSize or WithMaxSize) or to Resize.
	ErrNegativeSize = errors.New("opool: size must not be negative")
)
