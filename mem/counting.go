package mem

import "sync/atomic"

// Counting is an Allocator that tallies traffic. Tests use it to prove
// that an operation did or did not allocate.
type Counting struct {
	allocs   atomic.Int64
	deallocs atomic.Int64
	live     atomic.Int64
}

// Stats is a point-in-time snapshot of a Counting allocator.
type Stats struct {
	Allocations   int64
	Deallocations int64
	LiveBytes     int64
}

// NewCounting returns a Counting allocator with zeroed tallies.
func NewCounting() *Counting {
	return &Counting{}
}

func (c *Counting) Allocate(size int) error {
	c.allocs.Add(1)
	c.live.Add(int64(size))
	return nil
}

func (c *Counting) Deallocate(size int) {
	c.deallocs.Add(1)
	c.live.Add(-int64(size))
}

// Stats returns the current tallies.
func (c *Counting) Stats() Stats {
	return Stats{
		Allocations:   c.allocs.Load(),
		Deallocations: c.deallocs.Load(),
		LiveBytes:     c.live.Load(),
	}
}
