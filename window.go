package seqnum

import "golang.org/x/exp/constraints"

// Window operations over serial numbers. A window [first, first+size)
// is the set a receiver is prepared to accept; all membership tests
// below wrap at the modulus like the values themselves. Sizes must stay
// below half the sequence space for the tests to be meaningful, the
// same bound Add places on its offset.

// Sizeof returns the size of the window [v, w).
func (v Value[T]) Sizeof(w Value[T]) T {
	return w.n - v.n
}

// InRange checks if v is in the range [a, b), i.e., a <= v < b.
func (v Value[T]) InRange(a, b Value[T]) bool {
	return v.n-a.n < b.n-a.n
}

// InWindow checks if v is in the window that starts at first and spans
// size sequence numbers.
func (v Value[T]) InWindow(first Value[T], size T) bool {
	return v.InRange(first, first.Add(size))
}

// UpdateForward advances v by s in place.
func (v *Value[T]) UpdateForward(s T) {
	v.n += s
}

// Overlap checks if the window [a, a+asize) overlaps with the window
// [x, x+xsize).
func Overlap[T constraints.Unsigned](a Value[T], asize T, x Value[T], xsize T) bool {
	return a.LessThan(x.Add(xsize)) && x.LessThan(a.Add(asize))
}
