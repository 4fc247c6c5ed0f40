package box

// Update returns a new box holding fn applied to b's value. The receiver
// keeps its reference and may be used afterward; its value and storage
// are never touched, so other handles to the same value are unaffected.
//
// The new box comes from the receiver's pool when it is pool-backed, and
// from the receiver's policy otherwise. An allocation refusal is returned
// unchanged and leaves b intact.
func (b *Box[T]) Update(fn func(T) T) (Box[T], error) {
	if b.h == nil {
		panic("box: Update on an invalid box")
	}
	if b.h.pool != nil {
		return b.h.pool.Get(fn(b.h.value)), nil
	}
	h := b.h
	return EmplaceIn(h.pol, func() T { return fn(h.value) })
}

// UpdateOwned consumes b and returns a box holding fn applied to its
// value. It is the update form to use when the receiver is being given
// up ("this was my only remaining use of the value"):
//
//   - If b holds the only reference, the value is mutated in place and
//     the same storage is handed to the result. No allocation occurs.
//   - Otherwise the value is shared, so a fresh box is built from
//     fn(value) and b's reference to the shared storage is released.
//
// Either way b is invalid afterward. On an allocation refusal b is left
// untouched and still valid.
//
// The in-place branch is sound under concurrency because references are
// only minted by Clone on an existing handle: when the count is one, the
// caller's handle is the only one, so no other goroutine can increment
// between the check and the mutation. See the package documentation.
func (b *Box[T]) UpdateOwned(fn func(T) T) (Box[T], error) {
	if b.h == nil {
		panic("box: UpdateOwned on an invalid box")
	}
	if b.h.rc.IsUnique() {
		b.h.value = fn(b.h.value)
		return b.Move(), nil
	}
	out, err := b.Update(fn)
	if err != nil {
		return Box[T]{}, err
	}
	b.Release()
	return out, nil
}
