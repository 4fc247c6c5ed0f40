package box

// Equal reports whether a and b hold equal values. Boxes referencing the
// same storage compare equal without touching the values. Both operands
// must be valid boxes; comparing a value against a box goes through
// ValueEqual instead, which never allocates.
func Equal[T comparable](a, b Box[T]) bool {
	if a.h == nil || b.h == nil {
		panic("box: Equal on an invalid box")
	}
	return a.h == b.h || a.h.value == b.h.value
}

// EqualFunc is Equal for value types without built-in comparison, using
// eq for the value comparison. The identity fast path still applies.
func EqualFunc[T any](a, b Box[T], eq func(T, T) bool) bool {
	if a.h == nil || b.h == nil {
		panic("box: EqualFunc on an invalid box")
	}
	return a.h == b.h || eq(a.h.value, b.h.value)
}

// ValueEqual reports whether b's value equals v, comparing directly
// against the held value. No box is ever built for the comparison.
func ValueEqual[T comparable](b Box[T], v T) bool {
	return b.Get() == v
}
