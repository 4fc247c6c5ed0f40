package mem

// Allocator is the storage admission and accounting capability. The
// garbage collector owns the actual bytes; Allocate asks permission for
// a container allocation of the given size, Deallocate reports that the
// storage is no longer referenced.
type Allocator interface {
	Allocate(size int) error
	Deallocate(size int)
}

// Policy bundles an Allocator with a reference counter factory. Every
// container value is backed by exactly one policy for its whole life.
type Policy interface {
	Allocator
	NewCounter() Counter
}

type policy struct {
	Allocator
	counters func() Counter
}

func (p policy) NewCounter() Counter { return p.counters() }

// New assembles a Policy from an allocator and a counter factory.
func New(alloc Allocator, counters func() Counter) Policy {
	return policy{Allocator: alloc, counters: counters}
}

// NopAllocator admits every allocation and keeps no state.
type NopAllocator struct{}

func (NopAllocator) Allocate(int) error { return nil }
func (NopAllocator) Deallocate(int)     {}

var (
	defaultPolicy = New(NopAllocator{}, AtomicCounters)
	serialPolicy  = New(NopAllocator{}, SerialCounters)
)

// Default returns the shared default policy: unlimited allocation with
// atomic counters. Its Allocate never fails.
func Default() Policy { return defaultPolicy }

// Serial returns the shared single-goroutine policy: unlimited allocation
// with non-atomic counters. Its Allocate never fails.
func Serial() Policy { return serialPolicy }
