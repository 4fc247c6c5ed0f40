// Package mem supplies the memory policy used by the persist containers.
//
// A policy bundles two capabilities:
//   - Allocator: admission and accounting for container storage. Go's
//     garbage collector owns the bytes; the allocator decides whether a
//     container may take them (quota), and observes the traffic
//     (counting, metrics, trace).
//   - Counter: the reference count primitive that decides value lifetime
//     and uniqueness.
//
// # Policies
//
// Default() is what containers use when no policy is given: unlimited
// allocation with atomic counters, safe for handles spread across
// goroutines. Serial() swaps in non-atomic counters for single-goroutine
// workloads. New() assembles a custom policy from any Allocator and any
// counter factory.
//
// # Allocators
//
//	NopAllocator    admits everything (the default)
//	Limit           enforces a byte budget, refusing with ErrOutOfMemory
//	Counting        tallies allocations for tests and tools
//	Metrics         Prometheus instrumentation around another allocator
//	Trace           slog debug logging around another allocator
//
// Allocators compose by wrapping:
//
//	pol := mem.New(
//	    mem.NewTrace(logger, mem.NewLimit(1<<20)),
//	    mem.AtomicCounters,
//	)
//
// # Thread safety
//
// The policy choice decides the container's concurrency contract. A
// container built on SerialCounters inherits single-goroutine-only
// semantics; this is configuration, not a core guarantee.
package mem
