package opool

// AcquireBatch appends count acquired instances to dst and returns the
// extended slice. It is plain repeated Acquire: there is no atomicity
// across the batch, and instances already appended stay acquired if a
// hook panics partway.
func (p *Pool[T]) AcquireBatch(dst []T, count int) []T {
	for i := 0; i < count; i++ {
		dst = append(dst, p.Acquire())
	}

	return dst
}

// ReleaseBatch releases every instance of objs, in order.
// Same caveat as AcquireBatch: instances released before a hook panic
// stay released.
func (p *Pool[T]) ReleaseBatch(objs []T) {
	for _, obj := range objs {
		p.Release(obj)
	}
}
