// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixed implements an arbitrary-precision binary fixed-point number.
// It keeps world coordinates and scale factors exact at zoom depths,
// where float32 and float64 values have no fractional precision left.
package fixed

import (
	"github.com/avdva/deepfixed/internal/mathutil"
)

const (
	wordBits = mathutil.WordBits
)

var (
	zero Value

	// One is the value of 1.
	One = Value{point: 1, words: []uint32{1}}
)

// Value is a signed binary fixed-point number with an unbounded number of words.
// It is stored in a sign-magnitude form:
//
//	neg   - true for negative numbers.
//	point - the number of integer words. May be negative, or exceed the number of words.
//	words - 32-bit words, most significant first.
//
// For instance, {point: 1, words: [3, 0x80000000]} is 3.5,
// and {point: -1, words: [1]} is 2^-64.
// Words outside of the buffer are implicitly zero.
//
// The zero Value is zero. Values don't share their buffers:
// operations return new values, and pointer-receiver methods only change the receiver.
// Value is not safe for concurrent use.
type Value struct {
	neg   bool
	point int32
	words []uint32
}

// FromParts returns a value built from a sign, a point and words.
// The words are copied, and the result is not trimmed.
func FromParts(neg bool, point int32, words []uint32) Value {
	return Value{neg: neg, point: point, words: copyWords(words)}
}

// FromInt64 returns a value for given integer.
func FromInt64(i int64) Value {
	neg := i < 0
	u := uint64(i)
	if neg {
		u = -u
	}
	v := Value{neg: neg, point: 2, words: []uint32{uint32(u >> wordBits), uint32(u)}}
	v.Trim()
	return v
}

// IsNeg returns true if the sign flag is set.
// Notice, that a negative zero (see FromFloat32) is also reported as negative.
func (v Value) IsNeg() bool {
	return v.neg
}

// IsZero returns true if all the words are zero.
func (v Value) IsZero() bool {
	return mathutil.IsZeroWords(v.words)
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v Value) Sign() int {
	if v.IsZero() {
		return 0
	}
	if v.neg {
		return -1
	}
	return 1
}

// Point returns the number of integer words.
func (v Value) Point() int32 {
	return v.point
}

// Len returns the number of stored words.
func (v Value) Len() int {
	return len(v.words)
}

// DecLen returns the number of fractional words.
// It is negative, if the point is beyond the stored words.
func (v Value) DecLen() int {
	return len(v.words) - int(v.point)
}

// Word returns i-th stored word, or zero, if i is out of range.
func (v Value) Word(i int) uint32 {
	if i < 0 || i >= len(v.words) {
		return 0
	}
	return v.words[i]
}

// Words returns a copy of the stored words.
func (v Value) Words() []uint32 {
	return copyWords(v.words)
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	v.words = copyWords(v.words)
	return v
}

// Trimmed returns a trimmed copy of v. See Trim.
func (v Value) Trimmed() Value {
	v = v.Clone()
	v.Trim()
	return v
}

// Trim removes leading and trailing zero words.
// If nothing is left, v becomes a canonical zero with a positive sign and a zero point.
func (v *Value) Trim() {
	lead := mathutil.LeadingZeroWords(v.words)
	if lead == len(v.words) {
		*v = zero
		return
	}
	trail := mathutil.TrailingZeroWords(v.words)
	v.words = v.words[lead : len(v.words)-trail]
	v.point -= int32(lead)
}

// SetWholeLen changes the number of integer words to n.
// Zero words are added to the front, or the most significant words are dropped.
func (v *Value) SetWholeLen(n int) {
	diff := n - int(v.point)
	switch {
	case diff > 0:
		words := make([]uint32, diff+len(v.words))
		copy(words[diff:], v.words)
		v.words = words
	case diff < 0:
		drop := -diff
		if drop > len(v.words) {
			drop = len(v.words)
		}
		v.words = copyWords(v.words[drop:])
	}
	v.point = int32(n)
}

// SetDecLen changes the number of fractional words to n,
// truncating the least significant words, or appending zero ones.
// If the resulting buffer has no words, v keeps its point and sign.
func (v *Value) SetDecLen(n int) {
	v.resize(int(v.point) + n)
}

// SetPrecision sets the number of stored words to exactly n,
// truncating the least significant words, or appending zero ones.
// If the resulting buffer is empty, the point is reset to zero.
func (v *Value) SetPrecision(n int) {
	v.resize(n)
	if len(v.words) == 0 {
		v.point = 0
	}
}

func (v *Value) resize(n int) {
	if n <= 0 {
		v.words = nil
		return
	}
	words := make([]uint32, n)
	copy(words, v.words)
	v.words = words
}

// wordAt returns a word by its level, which is its position relative to the point.
// Level 0 is the least significant integer word, -1 is the first fractional one.
func (v Value) wordAt(level int) uint32 {
	return v.Word(int(v.point) - 1 - level)
}

func copyWords(words []uint32) []uint32 {
	if len(words) == 0 {
		return nil
	}
	result := make([]uint32, len(words))
	copy(result, words)
	return result
}
