package opool

// tracker is the misuse detector behind WithDebug.
// It keeps identity sets of the instances currently pooled and
// currently outstanding, so a double release or a foreign release is
// caught at the call site instead of corrupting the free store later.
//
// A nil *tracker is valid and does nothing, which keeps the hot path
// branch-cheap when debugging is off.
type tracker struct {
	outstanding map[any]struct{}
	free        map[any]struct{}
}

func newTracker() *tracker {
	return &tracker{
		outstanding: make(map[any]struct{}),
		free:        make(map[any]struct{}),
	}
}

// constructed records an instance handed to a caller without passing
// through the free store (factory or overflow policy).
func (t *tracker) constructed(obj any) {
	if t == nil {
		return
	}

	t.outstanding[obj] = struct{}{}
}

// acquired records an instance moving from the free store to a caller.
func (t *tracker) acquired(obj any) {
	if t == nil {
		return
	}

	delete(t.free, obj)
	t.outstanding[obj] = struct{}{}
}

// released validates a Release call and records the handback.
func (t *tracker) released(obj any) {
	if t == nil {
		return
	}

	if _, ok := t.free[obj]; ok {
		panic("opool: double release, instance is already in the pool")
	}

	if _, ok := t.outstanding[obj]; !ok {
		panic("opool: release of an instance not acquired from this pool")
	}

	delete(t.outstanding, obj)
}

// pooled records an instance entering the free store.
func (t *tracker) pooled(obj any) {
	if t == nil {
		return
	}

	t.free[obj] = struct{}{}
}

// destroyed records an instance leaving the pool for good.
func (t *tracker) destroyed(obj any) {
	if t == nil {
		return
	}

	delete(t.free, obj)
}
