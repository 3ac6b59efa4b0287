/*
package seqnum implements serial number arithmetic as per RFC 1982.

Serial numbers are fixed-width unsigned counters that wrap around at
their modulus, so two of them are ordered by their circular distance
rather than by raw magnitude: with 16-bit values, 1000 comes after
65000, because 65000 plus a small increment wraps past zero and reaches
1000. The comparison is undefined for a pair sitting exactly half the
sequence space apart; Compare reports that case as [Opposite] instead of
picking a direction.
*/
package seqnum

import (
	"errors"
	"strconv"

	"golang.org/x/exp/constraints"
)

// ErrOffsetOutOfRange is returned by AddChecked for offsets of half the
// sequence space or more, for which RFC 1982 does not guarantee the sum
// still compares greater than the addend.
var ErrOffsetOutOfRange = errors.New("seqnum: offset exceeds half the sequence space")

// Ordering is the result of comparing two serial numbers.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
	// Opposite reports an antipodal pair: two values exactly half the
	// sequence space apart, for which RFC 1982 defines no order.
	Opposite Ordering = 2
)

func (o Ordering) String() (s string) {
	switch o {
	case Less:
		s = "less"
	case Equal:
		s = "equal"
	case Greater:
		s = "greater"
	case Opposite:
		s = "opposite"
	default:
		s = "unknown"
	}
	return s
}

// Value is a serial number in the space whose modulus is the full range
// of its storage type, i.e. 2^8 through 2^64 depending on T. The zero
// Value is serial number 0. Values of equal T are comparable with ==,
// which is plain bitwise equality; circular order comes from Compare.
//
// For serial spaces narrower than their storage type, see Space.
type Value[T constraints.Unsigned] struct {
	n T
}

// Widths of Value in common use. Every bit pattern of the storage type
// is a valid serial number in these spaces.
type (
	V8  = Value[uint8]
	V16 = Value[uint16]
	V32 = Value[uint32]
	V64 = Value[uint64]
)

// From converts a raw unsigned integer to the serial number with the
// same representation.
func From[T constraints.Unsigned](raw T) Value[T] {
	return Value[T]{n: raw}
}

// Uint returns the underlying unsigned integer of v.
func (v Value[T]) Uint() T { return v.n }

func (v Value[T]) String() string {
	return strconv.FormatUint(uint64(v.n), 10)
}

// half returns 2^(W-1) for a W-bit storage type.
func half[T constraints.Unsigned]() T {
	return ^T(0)>>1 + 1
}

// Compare orders v and w by circular distance: v is greater than w when
// it is ahead of w by less than half the sequence space. An antipodal
// pair yields Opposite, never an arbitrary direction.
func (v Value[T]) Compare(w Value[T]) Ordering {
	diff := v.n - w.n
	switch h := half[T](); {
	case diff == 0:
		return Equal
	case diff == h:
		return Opposite
	case diff < h:
		return Greater
	default:
		return Less
	}
}

// LessThan checks if v is before w, i.e., v < w. It is false for an
// antipodal pair, as is w.LessThan(v).
func (v Value[T]) LessThan(w Value[T]) bool {
	return v.Compare(w) == Less
}

// LessThanEq returns true if v==w or v is before i.e., v < w.
func (v Value[T]) LessThanEq(w Value[T]) bool {
	return v == w || v.LessThan(w)
}

// GreaterThan checks if v is after w, i.e., v > w. It is false for an
// antipodal pair, as is w.GreaterThan(v).
func (v Value[T]) GreaterThan(w Value[T]) bool {
	return v.Compare(w) == Greater
}

// Add returns v advanced by s, wrapping at the modulus. The result is
// guaranteed to compare greater than v only while s is below half the
// sequence space; past that the sum is still deterministic but its
// order relative to v is unspecified. Use AddChecked to reject such
// offsets instead.
func (v Value[T]) Add(s T) Value[T] {
	return Value[T]{n: v.n + s}
}

// AddChecked is Add restricted to the offsets RFC 1982 permits. It
// returns ErrOffsetOutOfRange for s of half the sequence space or more,
// leaving v unchanged in the returned value.
func (v Value[T]) AddChecked(s T) (Value[T], error) {
	if s >= half[T]() {
		return v, ErrOffsetOutOfRange
	}
	return v.Add(s), nil
}

// Next returns the serial number following v.
func (v Value[T]) Next() Value[T] {
	return v.Add(1)
}
