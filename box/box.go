package box

import (
	"unsafe"

	"github.com/persistkit/persist/mem"
)

// holder is the single allocation backing one boxed value: the value, its
// reference count, and the policy that admitted it. Exactly one holder
// backs a live box; a holder lives as long as at least one box references
// it and is torn down exactly once, by the release that drops the count
// to zero.
type holder[T any] struct {
	value T
	rc    mem.Counter
	pol   mem.Policy
	size  int
	pool  *Pool[T] // non-nil only for pool-recycled holders
}

func holderSize[T any]() int {
	var h holder[T]
	return int(unsafe.Sizeof(h))
}

// newHolder admits storage through the policy, then constructs the value.
// If construct panics, the admitted storage is returned before the panic
// propagates, so accounting never leaks on a failed initialization.
func newHolder[T any](pol mem.Policy, construct func() T) (*holder[T], error) {
	size := holderSize[T]()
	if err := pol.Allocate(size); err != nil {
		return nil, err
	}
	h := &holder[T]{pol: pol, size: size}
	constructed := false
	defer func() {
		if !constructed {
			pol.Deallocate(size)
		}
	}()
	h.value = construct()
	constructed = true
	h.rc = pol.NewCounter()
	return h, nil
}

// release drops one reference. The last release zeroes the value (so any
// references it holds are dropped immediately) and returns the storage to
// the pool or the policy.
func (h *holder[T]) release() {
	if !h.rc.Decrement() {
		return
	}
	if h.pool != nil {
		h.pool.put(h)
		return
	}
	var zero T
	h.value = zero
	h.pol.Deallocate(h.size)
}

// Box is a shared-ownership handle to one immutable value. The zero Box
// is invalid. See the package documentation for the ownership discipline.
type Box[T any] struct {
	h *holder[T]
}

// Zero returns a box holding the zero value of T, backed by the default
// policy.
func Zero[T any]() Box[T] {
	b, _ := ZeroIn[T](mem.Default())
	return b
}

// ZeroIn returns a box holding the zero value of T, backed by pol.
func ZeroIn[T any](pol mem.Policy) (Box[T], error) {
	return EmplaceIn(pol, func() T {
		var v T
		return v
	})
}

// New returns a box holding v, backed by the default policy.
func New[T any](v T) Box[T] {
	b, _ := NewIn(mem.Default(), v)
	return b
}

// NewIn returns a box holding v, backed by pol.
func NewIn[T any](pol mem.Policy, v T) (Box[T], error) {
	return EmplaceIn(pol, func() T { return v })
}

// Emplace returns a box holding the value built by construct, backed by
// the default policy. Use it when the value is assembled from several
// inputs and an intermediate copy would be wasteful.
func Emplace[T any](construct func() T) Box[T] {
	b, _ := EmplaceIn(mem.Default(), construct)
	return b
}

// EmplaceIn returns a box holding the value built by construct, backed by
// pol. A panic out of construct propagates unchanged; the box is never
// observable in a partially constructed state.
func EmplaceIn[T any](pol mem.Policy, construct func() T) (Box[T], error) {
	h, err := newHolder(pol, construct)
	if err != nil {
		return Box[T]{}, err
	}
	return Box[T]{h: h}, nil
}

// Valid reports whether b holds a value. A box is invalid as the zero
// value and after Move, Release, or UpdateOwned.
func (b Box[T]) Valid() bool { return b.h != nil }

// Get returns the boxed value. It panics on an invalid box.
func (b Box[T]) Get() T {
	if b.h == nil {
		panic("box: Get on an invalid box")
	}
	return b.h.value
}

// Clone returns a new handle sharing ownership of b's value. The value
// itself is never copied.
func (b *Box[T]) Clone() Box[T] {
	if b.h == nil {
		panic("box: Clone of an invalid box")
	}
	b.h.rc.Increment()
	return Box[T]{h: b.h}
}

// Move transfers b's reference to the returned box and invalidates b.
// The reference count does not change.
func (b *Box[T]) Move() Box[T] {
	out := Box[T]{h: b.h}
	b.h = nil
	return out
}

// Release gives up b's reference and invalidates it. The release that
// drops the last reference destroys the value and reclaims its storage.
// Releasing an invalid box is a no-op.
func (b *Box[T]) Release() {
	if b.h == nil {
		return
	}
	h := b.h
	b.h = nil
	h.release()
}

// Swap exchanges the contents of two boxes.
func Swap[T any](a, b *Box[T]) {
	a.h, b.h = b.h, a.h
}

// Assign replaces b's reference with a new reference to other's value,
// releasing whatever b held before. Implemented as clone-and-swap, so no
// partial state is observable and self-assignment is safe.
func (b *Box[T]) Assign(other *Box[T]) {
	tmp := other.Clone()
	Swap(b, &tmp)
	tmp.Release()
}

// AssignMove moves other's reference into b by exchange: other ends up
// holding whatever b held before, to be reclaimed when other is released.
func (b *Box[T]) AssignMove(other *Box[T]) {
	Swap(b, other)
}

// Shares reports whether a and b reference the same underlying storage.
// Invalid boxes share nothing.
func Shares[T any](a, b Box[T]) bool {
	return a.h != nil && a.h == b.h
}
