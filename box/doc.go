// Package box implements an immutable, copy-on-write container for a
// single value, with shared ownership through reference counting.
//
// A Box is a handle to one value. Duplicating the handle with Clone is
// cheap: both handles reference the same storage and the value is never
// copied. The value cannot be changed through a handle; Update yields a
// new box instead. When a handle can prove it holds the only reference,
// UpdateOwned mutates in place and skips the allocation entirely.
//
// # Ownership discipline
//
// A Box is a handle, not a plain value:
//   - duplicate it with Clone (shares ownership, bumps the count)
//   - transfer it with Move (the source becomes invalid)
//   - give it up with Release (the last release destroys the value)
//
// Assigning one Box variable to another with = copies the handle without
// adjusting the count. The copy aliases the original; releasing both is a
// contract violation and panics through counter underflow. Use Clone or
// Move instead.
//
// An invalid box (zero value, or after Move / Release / UpdateOwned) must
// not be read; Get panics on it.
//
// # Updates
//
//	a := box.New(5)
//	b := a.Clone()
//	c, _ := b.Update(func(v int) int { return v + 1 })
//	// a.Get() == 5, b.Get() == 5, c.Get() == 6
//
//	d := box.New(5)
//	e, _ := d.UpdateOwned(func(v int) int { return v + 1 })
//	// d is invalid; e.Get() == 6, no allocation occurred
//
// # Memory policy
//
// Every box is backed by a mem.Policy supplying its allocator and its
// reference counter. The plain constructors use mem.Default(); the In
// variants take an explicit policy and surface allocation refusal as an
// error. See the mem package.
//
// # Concurrency
//
// With the default (atomic) policy, handles to the same value may live on
// different goroutines. The value is only ever mutated through a provably
// unique handle, so readers never race with writers. UpdateOwned's
// uniqueness check is sound because new references are only minted by
// Clone on an existing handle: if the count is one, the caller holds the
// only handle and no other goroutine can increment. Sharing a single
// *Box between goroutines is a race on the handle itself and is outside
// the contract.
package box
