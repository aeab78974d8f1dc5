// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"math/bits"

	"github.com/avdva/deepfixed/internal/mathutil"
)

// Add returns v + other.
// The result grows by a word, if the sum overflows the most significant word.
func (v Value) Add(other Value) Value {
	return add(v, other, other.neg)
}

// Sub returns v - other.
func (v Value) Sub(other Value) Value {
	return add(v, other, !other.neg)
}

// AddAssign sets v to v + other.
func (v *Value) AddAssign(other Value) {
	*v = v.Add(other)
}

// SubAssign sets v to v - other.
func (v *Value) SubAssign(other Value) {
	*v = v.Sub(other)
}

// MulAssign sets v to v * other.
func (v *Value) MulAssign(other Value) {
	*v = v.Mul(other)
}

// Neg returns -v. Negating zero gives a negative zero, which trims to zero.
func (v Value) Neg() Value {
	v = v.Clone()
	v.neg = !v.neg
	return v
}

// Abs returns |v|.
func (v Value) Abs() Value {
	v = v.Clone()
	v.neg = false
	return v
}

// add calculates a + b, where b's sign is replaced with bNeg.
// Both operands are aligned by their points, and the words are processed
// from the least significant to the most significant one.
// Equal signs add magnitudes. Otherwise, b's magnitude is subtracted from a's,
// and a final borrow means, that |b| > |a|: the sign is flipped,
// and the two's complement of the words is the resulting magnitude.
func add(a, b Value, bNeg bool) Value {
	top := a.point
	if b.point > top {
		top = b.point
	}
	low := a.DecLen()
	if l := b.DecLen(); l > low {
		low = l
	}
	n := int(top) + low
	if n <= 0 {
		return zero
	}
	words := make([]uint32, n)
	same := a.neg == bNeg
	var carry uint32
	for i := n - 1; i >= 0; i-- {
		level := int(top) - 1 - i
		x, y := a.wordAt(level), b.wordAt(level)
		if same {
			words[i], carry = bits.Add32(x, y, carry)
		} else {
			words[i], carry = bits.Sub32(x, y, carry)
		}
	}
	result := Value{neg: a.neg, point: top, words: words}
	if carry != 0 {
		if same {
			result.words = append([]uint32{1}, words...)
			result.point++
		} else {
			result.neg = !result.neg
			negateWords(result.words)
		}
	}
	result.Trim()
	return result
}

// negateWords replaces the words with their two's complement.
func negateWords(words []uint32) {
	carry := uint32(1)
	for i := len(words) - 1; i >= 0; i-- {
		words[i], carry = bits.Add32(^words[i], 0, carry)
	}
}

// Mul returns v * other.
// The result has len(v)+len(other) words before trimming, so no precision is lost.
func (v Value) Mul(other Value) Value {
	la, lb := len(v.words), len(other.words)
	if la == 0 || lb == 0 {
		return zero
	}
	words := make([]uint32, la+lb)
	for i := la - 1; i >= 0; i-- {
		x := v.words[i]
		var carry uint32
		for j := lb - 1; j >= 0; j-- {
			hi, lo := bits.Mul32(x, other.words[j])
			k := i + j + 1
			// words[k] + x*y + carry < 2^64, so hi+c1+c2 fits a word.
			sum, c1 := bits.Add32(words[k], lo, 0)
			sum, c2 := bits.Add32(sum, carry, 0)
			words[k] = sum
			carry = hi + c1 + c2
		}
		words[i] = carry
	}
	result := Value{
		neg:   v.neg != other.neg,
		point: v.point + other.point,
		words: words,
	}
	result.Trim()
	return result
}

// Shift returns v * 2^-n. Positive n shifts to the right, making the magnitude smaller,
// negative n shifts to the left.
// The resulting point must fit an int32, so |n| must stay below 2^36
// for values with a small point; larger shifts wrap the point.
func (v Value) Shift(n int) Value {
	wordShift, bitShift := mathutil.SplitShift(n)
	result := Value{neg: v.neg, point: v.point - int32(wordShift)}
	if bitShift == 0 {
		result.words = copyWords(v.words)
	} else {
		words := make([]uint32, len(v.words), len(v.words)+1)
		var rem uint32
		for i, w := range v.words {
			words[i] = w>>bitShift | rem
			rem = w << (wordBits - bitShift)
		}
		if rem != 0 {
			words = append(words, rem)
		}
		result.words = words
	}
	result.Trim()
	return result
}

// Rsh returns v >> n, which is v * 2^-n.
func (v Value) Rsh(n int) Value {
	return v.Shift(n)
}

// Lsh returns v << n, which is v * 2^n.
func (v Value) Lsh(n int) Value {
	return v.Shift(-n)
}
