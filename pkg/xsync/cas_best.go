package xsync

// CASBest is a lock-free cell holding a running "best so far" float64
// metric, updated by a compare-and-swap retry loop rather than a mutex.
//
// It is the primitive parallel nearness search uses to maintain β (the
// best metric seen), aabb_min, and aabb_max under contention from many
// concurrent dual-tree-nearness tasks: any task may attempt to install a
// better value, and a task that loses the race simply re-reads the winner
// and decides whether to retry.
//
// The update predicate only needs to be "better than", not a total order;
// it is evaluated against the freshest value on every retry (relaxed load),
// and a successful swap is the only point other goroutines observe (release).
type CASBest struct {
	bits AtomicFloat64
}

// NewCASBest creates a CASBest seeded with val.
func NewCASBest(val float64) *CASBest {
	b := &CASBest{}
	b.bits.Store(val)

	return b
}

// Load returns the current value.
func (c *CASBest) Load() float64 { return c.bits.Load() }

// UpdateIfBetter installs val as the new best if better(val, current) is
// true, retrying against the freshest value if another goroutine wins the
// race first. It returns true iff this call installed val.
func (c *CASBest) UpdateIfBetter(val float64, better func(candidate, current float64) bool) bool {
	for {
		cur := c.bits.Load()
		if !better(val, cur) {
			return false
		}
		if c.bits.BitwiseCompareAndSwap(cur, val) {
			return true
		}
	}
}
