package box

import (
	"sync"

	"github.com/persistkit/persist/mem"
)

// Pool recycles the storage behind boxes so that churning through
// short-lived boxed values does not allocate. A box obtained from a pool
// behaves like any other box; its final Release returns the storage to
// the pool instead of discarding it, and Update on a pool-backed box
// draws its copy from the pool as well.
//
// Storage lifetime is owned by the pool (and ultimately the garbage
// collector), so pooled holders bypass the policy's allocator; the policy
// contributes only the reference counters.
type Pool[T any] struct {
	pool  sync.Pool
	pol   mem.Policy
	reset func(*T)
}

// NewPool returns a pool using the default policy's counters. reset, if
// non-nil, is called on the value as storage returns to the pool; use it
// to keep reusable capacity (slices, maps) alive across cycles. A nil
// reset zeroes the value instead.
func NewPool[T any](reset func(*T)) *Pool[T] {
	return NewPoolIn(mem.Default(), reset)
}

// NewPoolIn is NewPool with an explicit policy for the counters.
func NewPoolIn[T any](pol mem.Policy, reset func(*T)) *Pool[T] {
	p := &Pool[T]{pol: pol, reset: reset}
	p.pool.New = func() any {
		return &holder[T]{pol: pol, size: holderSize[T](), pool: p}
	}
	return p
}

// Get returns a box holding v, backed by recycled storage when any is
// available.
func (p *Pool[T]) Get(v T) Box[T] {
	h := p.pool.Get().(*holder[T])
	h.value = v
	h.rc = p.pol.NewCounter()
	return Box[T]{h: h}
}

func (p *Pool[T]) put(h *holder[T]) {
	if p.reset != nil {
		p.reset(&h.value)
	} else {
		var zero T
		h.value = zero
	}
	h.rc = nil
	p.pool.Put(h)
}
