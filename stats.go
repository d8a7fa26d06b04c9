package opool

// Stats is a point-in-time snapshot of pool counters.
// Counters are plain ints updated without synchronization, like the
// rest of the pool state.
type Stats struct {
	// Available is the current free store size.
	Available int
	// TotalCreated is the number of instances constructed by the pool,
	// overflow instances excluded.
	TotalCreated int
	// Hits counts Acquire calls served from the free store.
	Hits int
	// Misses counts Acquire calls that had to construct an instance,
	// through the factory or the overflow policy.
	Misses int
	// Destroyed counts instances permanently discarded by capacity
	// pressure, Resize, Clear or Close.
	Destroyed int
}

// Stats returns the current counters.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Available:    len(p.available),
		TotalCreated: p.totalCreated,
		Hits:         p.hits,
		Misses:       p.misses,
		Destroyed:    p.destroyed,
	}
}
