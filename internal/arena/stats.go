package arena

// Stats is a snapshot of arena usage.
type Stats struct {
	Live        int     // Occupied slots
	Capacity    int     // Slots across all blocks
	NumBlocks   int     // Allocated blocks
	BlockSize   int     // Slots per block
	Utilization float64 // Live / Capacity (0.0-1.0)
	Acquires    uint64  // Historical: successful acquisitions
	Releases    uint64  // Historical: released slots, including Reset
	Exhausted   uint64  // Historical: acquisitions refused by the growth policy
}

// Utilization returns the ratio of live slots to capacity.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(a.live) / float64(capacity)
}

// Stats returns a snapshot of arena statistics.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Live:        a.live,
		Capacity:    a.Cap(),
		NumBlocks:   len(a.blocks),
		BlockSize:   a.blockSize,
		Utilization: a.Utilization(),
		Acquires:    a.acquires,
		Releases:    a.releases,
		Exhausted:   a.exhausted,
	}
}
