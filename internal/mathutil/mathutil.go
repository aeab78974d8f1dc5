// Package mathutil contains word-level helpers shared by the fixed-point code.
package mathutil

import "math/bits"

// WordBits is the number of bits in a single word.
const WordBits = 32

// FloorDivMod returns q and r, such as n = q*d + r and 0 <= r < |d|.
// Unlike the / and % operators, the quotient is rounded towards negative infinity.
func FloorDivMod(n, d int) (q, r int) {
	q, r = n/d, n%d
	if r < 0 {
		if d > 0 {
			q--
			r += d
		} else {
			q++
			r -= d
		}
	}
	return q, r
}

// SplitShift splits a bit shift into a whole-word part and a bit residue in [0, 32).
func SplitShift(n int) (wordShift int, bitShift uint) {
	q, r := FloorDivMod(n, WordBits)
	return q, uint(r)
}

// LeadingZeroWords returns the number of zero words at the beginning of ws.
func LeadingZeroWords(ws []uint32) int {
	for i, w := range ws {
		if w != 0 {
			return i
		}
	}
	return len(ws)
}

// TrailingZeroWords returns the number of zero words at the end of ws.
func TrailingZeroWords(ws []uint32) int {
	for i := len(ws) - 1; i >= 0; i-- {
		if ws[i] != 0 {
			return len(ws) - 1 - i
		}
	}
	return len(ws)
}

// IsZeroWords returns true if all the words are zero.
func IsZeroWords(ws []uint32) bool {
	return LeadingZeroWords(ws) == len(ws)
}

// Normalize64 combines three consecutive words, the first of which must be non-zero,
// into a 64-bit value, shifted left so that the highest set bit of w0 becomes bit 63.
// Returns that value and the number of leading zero bits in w0.
func Normalize64(w0, w1, w2 uint32) (x uint64, lz int) {
	lz = bits.LeadingZeros32(w0)
	x = (uint64(w0)<<WordBits | uint64(w1)) << uint(lz)
	x |= uint64(w2) >> uint(WordBits-lz)
	return x, lz
}

// Shl128 returns the 128-bit value (hi, lo) = m << s, where s < 64.
func Shl128(m uint64, s uint) (hi, lo uint64) {
	return m >> (64 - s), m << s
}
