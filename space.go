package seqnum

import (
	"errors"
	"fmt"
	mathbits "math/bits"

	"golang.org/x/exp/constraints"
)

// ErrBits is returned by NewSpace for a bit width the storage type
// cannot carry or that leaves no legal increment.
var ErrBits = errors.New("seqnum: unusable space width")

// Space is a serial number space of fewer bits than its storage type
// carries, such as a 24-bit counter kept in a uint32. Serial numbers in
// the space are plain T values below 2^bits; every operation masks its
// result back into the space. A Space of the storage type's full width
// behaves exactly like Value over the same type.
//
// The zero Space is not usable; construct with NewSpace.
type Space[T constraints.Unsigned] struct {
	mask T
	half T
}

// NewSpace returns the serial number space of 2^bits values carried in
// storage type T. It returns ErrBits unless 2 <= bits <= bitwidth(T):
// a 1-bit space has no offset below half its modulus, so no two
// distinct values in it can ever be ordered.
func NewSpace[T constraints.Unsigned](bits int) (Space[T], error) {
	width := mathbits.Len64(uint64(^T(0)))
	if bits < 2 || bits > width {
		return Space[T]{}, fmt.Errorf("%w: %d bits in %d-bit storage", ErrBits, bits, width)
	}
	mask := ^T(0)
	if bits < width {
		mask = T(1)<<bits - 1
	}
	return Space[T]{mask: mask, half: T(1) << (bits - 1)}, nil
}

// Bits returns the width of the space in bits.
func (s Space[T]) Bits() int {
	return mathbits.Len64(uint64(s.mask))
}

// Modulus returns the number of distinct serial numbers in the space,
// or 0 when the modulus equals the storage type's full range and does
// not fit in T.
func (s Space[T]) Modulus() T {
	return s.mask + 1
}

// From converts a raw unsigned integer to a serial number of the space,
// discarding bits outside it.
func (s Space[T]) From(raw T) T {
	return raw & s.mask
}

// Compare orders a and b by circular distance within the space, with
// the same contract as Value.Compare. Bits outside the space are
// ignored.
func (s Space[T]) Compare(a, b T) Ordering {
	diff := (a - b) & s.mask
	switch {
	case diff == 0:
		return Equal
	case diff == s.half:
		return Opposite
	case diff < s.half:
		return Greater
	default:
		return Less
	}
}

// LessThan checks if a is before b within the space. It is false for an
// antipodal pair.
func (s Space[T]) LessThan(a, b T) bool {
	return s.Compare(a, b) == Less
}

// GreaterThan checks if a is after b within the space. It is false for
// an antipodal pair.
func (s Space[T]) GreaterThan(a, b T) bool {
	return s.Compare(a, b) == Greater
}

// Add returns v advanced by k, wrapping at the space's modulus. As with
// Value.Add, the result compares greater than v only while k is below
// half the modulus.
func (s Space[T]) Add(v, k T) T {
	return (v + k) & s.mask
}

// AddChecked is Add restricted to offsets below half the modulus; it
// returns ErrOffsetOutOfRange for any other k.
func (s Space[T]) AddChecked(v, k T) (T, error) {
	if k >= s.half {
		return v & s.mask, ErrOffsetOutOfRange
	}
	return s.Add(v, k), nil
}

// Next returns the serial number of the space following v.
func (s Space[T]) Next(v T) T {
	return s.Add(v, 1)
}

// Sizeof returns the size of the window [v, w) within the space.
func (s Space[T]) Sizeof(v, w T) T {
	return (w - v) & s.mask
}

// InWindow checks if v is in the window that starts at first and spans
// size sequence numbers of the space.
func (s Space[T]) InWindow(v, first, size T) bool {
	return s.Sizeof(first, v) < size&s.mask
}
