package mem

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrOutOfMemory is returned by budget-enforcing allocators when an
// allocation would exceed the budget.
var ErrOutOfMemory = errors.New("mem: allocation budget exhausted")

// Limit is an Allocator that enforces a byte budget. Allocations past
// the budget are refused with an error wrapping ErrOutOfMemory.
type Limit struct {
	budget int64
	used   atomic.Int64
}

// NewLimit returns a Limit admitting at most budget live bytes.
func NewLimit(budget int64) *Limit {
	return &Limit{budget: budget}
}

func (l *Limit) Allocate(size int) error {
	for {
		used := l.used.Load()
		next := used + int64(size)
		if next > l.budget {
			return fmt.Errorf("%w: %d of %d bytes in use, need %d more",
				ErrOutOfMemory, used, l.budget, size)
		}
		if l.used.CompareAndSwap(used, next) {
			return nil
		}
	}
}

func (l *Limit) Deallocate(size int) {
	if l.used.Add(-int64(size)) < 0 {
		panic("mem: deallocate below zero")
	}
}

// InUse returns the bytes currently admitted.
func (l *Limit) InUse() int64 { return l.used.Load() }

// Budget returns the configured budget.
func (l *Limit) Budget() int64 { return l.budget }
