package mem

import "sync/atomic"

// Counter is the reference-count capability a policy supplies to a
// container. A counter starts at one reference.
type Counter interface {
	// Increment records one more reference.
	Increment()
	// Decrement drops one reference and reports whether it was the last.
	Decrement() bool
	// IsUnique reports whether exactly one reference is live.
	IsUnique() bool
}

// AtomicCounter counts references with atomic operations, making it safe
// to increment and decrement from concurrent handles.
//
// Underflow and increment-after-release are programming errors and panic.
type AtomicCounter struct {
	n atomic.Int64
}

// NewAtomicCounter returns an AtomicCounter holding one reference.
func NewAtomicCounter() *AtomicCounter {
	c := &AtomicCounter{}
	c.n.Store(1)
	return c
}

func (c *AtomicCounter) Increment() {
	if c.n.Add(1) < 2 {
		panic("mem: increment of a released counter")
	}
}

func (c *AtomicCounter) Decrement() bool {
	n := c.n.Add(-1)
	if n < 0 {
		panic("mem: counter underflow")
	}
	return n == 0
}

func (c *AtomicCounter) IsUnique() bool {
	return c.n.Load() == 1
}

// SerialCounter counts references with a plain integer. It is cheaper
// than AtomicCounter but all handles must stay on one goroutine.
type SerialCounter struct {
	n int64
}

// NewSerialCounter returns a SerialCounter holding one reference.
func NewSerialCounter() *SerialCounter {
	return &SerialCounter{n: 1}
}

func (c *SerialCounter) Increment() {
	c.n++
	if c.n < 2 {
		panic("mem: increment of a released counter")
	}
}

func (c *SerialCounter) Decrement() bool {
	c.n--
	if c.n < 0 {
		panic("mem: counter underflow")
	}
	return c.n == 0
}

func (c *SerialCounter) IsUnique() bool {
	return c.n == 1
}

// AtomicCounters is a counter factory for New.
func AtomicCounters() Counter { return NewAtomicCounter() }

// SerialCounters is a counter factory for New.
func SerialCounters() Counter { return NewSerialCounter() }
