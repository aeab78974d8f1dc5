// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"github.com/avdva/deepfixed/internal/mathutil"
)

// Eq returns v == other.
func (v Value) Eq(other Value) bool {
	return v.Cmp(other) == 0
}

// Less returns v < other.
func (v Value) Less(other Value) bool {
	return v.Cmp(other) < 0
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (v Value) Cmp(other Value) int {
	s1, s2 := v.Sign(), other.Sign()
	if s1 > s2 {
		return 1
	} else if s1 < s2 {
		return -1
	}
	return cmpAbs(v, other) * s1
}

// cmpAbs compares magnitudes word by word, starting from the most significant one.
func cmpAbs(a, b Value) int {
	top := a.point
	if b.point > top {
		top = b.point
	}
	low := a.DecLen()
	if l := b.DecLen(); l > low {
		low = l
	}
	for level := int(top) - 1; level >= -low; level-- {
		x, y := a.wordAt(level), b.wordAt(level)
		switch {
		case x > y:
			return 1
		case x < y:
			return -1
		}
	}
	return 0
}

// Trunc returns the integer part of v, rounding towards zero.
func (v Value) Trunc() Value {
	integ, _ := v.splitPoint()
	return integ
}

// Frac returns the fractional part of v, which is v - v.Trunc().
// It has the same sign as v.
func (v Value) Frac() Value {
	return v.Sub(v.Trunc())
}

// Floor returns the greatest integer value <= v.
func (v Value) Floor() Value {
	integ, frac := v.splitPoint()
	if v.neg && frac {
		return integ.Sub(One)
	}
	return integ
}

// Ceil returns the least integer value >= v.
func (v Value) Ceil() Value {
	integ, frac := v.splitPoint()
	if !v.neg && frac {
		return integ.Add(One)
	}
	return integ
}

// splitPoint returns v with all fractional words dropped,
// and whether any of the dropped words was non-zero.
func (v Value) splitPoint() (integ Value, frac bool) {
	integ = Value{neg: v.neg, point: v.point}
	switch p := int(v.point); {
	case p <= 0:
		frac = !mathutil.IsZeroWords(v.words)
		integ.point = 0
	case p >= len(v.words):
		integ.words = copyWords(v.words)
	default:
		integ.words = copyWords(v.words[:p])
		frac = !mathutil.IsZeroWords(v.words[p:])
	}
	integ.Trim()
	return integ, frac
}
