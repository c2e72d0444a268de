// Package bitfield provides typed views over single bits and contiguous
// bit-spans within fixed-width register words. It performs pure value
// transformation only; no I/O.
package bitfield

import "golang.org/x/exp/constraints"

// Bit reports whether bit n of bits is set. Bit 0 is the least significant.
func Bit[T constraints.Unsigned](bits T, n uint8) bool {
	return bits>>n&1 != 0
}

// SetBit returns bits with bit n set (v true) or cleared (v false).
// No other bits change.
func SetBit[T constraints.Unsigned](bits T, n uint8, v bool) T {
	if v {
		return bits | 1<<n
	}
	return bits &^ (1 << n)
}

// Field describes a contiguous bit-span within a register word. Off is the
// position of the span's least significant bit, Width the number of bits.
type Field[T constraints.Unsigned] struct {
	Off   uint8
	Width uint8
}

// Mask returns the field's mask, aligned at its offset.
func (f Field[T]) Mask() T {
	return (T(1)<<f.Width - 1) << f.Off
}

// Get extracts the field's bits from the register word, right-aligned.
func (f Field[T]) Get(bits T) T {
	return bits >> f.Off & (T(1)<<f.Width - 1)
}

// Insert returns the register word with the field's span replaced by v.
// Values wider than the field are truncated to Width bits; bits outside the
// span are untouched.
func (f Field[T]) Insert(bits, v T) T {
	return bits&^f.Mask() | v&(T(1)<<f.Width-1)<<f.Off
}
