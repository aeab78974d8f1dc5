// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"math"

	"github.com/avdva/deepfixed/internal/mathutil"
)

// floatFormat describes an IEEE-754 binary format.
type floatFormat struct {
	mantBits uint // stored mantissa bits, without the implicit one
	expBits  uint
	bias     int
}

var (
	float32Format = floatFormat{mantBits: 23, expBits: 8, bias: 127}
	float64Format = floatFormat{mantBits: 52, expBits: 11, bias: 1023}
)

func (f floatFormat) signBit() uint64 {
	return 1 << (f.mantBits + f.expBits)
}

func (f floatFormat) expMask() uint64 {
	return 1<<f.expBits - 1
}

func (f floatFormat) mantMask() uint64 {
	return 1<<f.mantBits - 1
}

// FromFloat32 returns an exact value for given float32.
// A negative zero gives a negative value with no words, which converts back to -0.
// Infinities and NaNs aren't special-cased: their exponent field is used as is.
func FromFloat32(f float32) Value {
	return fromFloatBits(uint64(math.Float32bits(f)), float32Format)
}

// FromFloat64 returns an exact value for given float64. See FromFloat32.
func FromFloat64(f float64) Value {
	return fromFloatBits(math.Float64bits(f), float64Format)
}

// Float32 returns the value as a float32.
// Bits beyond the float32 mantissa are truncated, not rounded.
// Values too small for a subnormal float32 become a signed zero,
// values too large become a signed infinity.
func (v Value) Float32() float32 {
	return math.Float32frombits(uint32(toFloatBits(v, float32Format)))
}

// Float64 returns the value as a float64. See Float32.
func (v Value) Float64() float64 {
	return math.Float64frombits(toFloatBits(v, float64Format))
}

func fromFloatBits(b uint64, f floatFormat) Value {
	e := int(b >> f.mantBits & f.expMask())
	m := b & f.mantMask()
	if e == 0 {
		// subnormals have the scale of the smallest normal exponent, but no implicit one.
		e = 1
	} else {
		m |= 1 << f.mantBits
	}
	var v Value
	if m != 0 {
		// the value is m * 2^scale. m is placed across three words, the lowest of which
		// is at level floor(scale/32). Trim drops the words, that have no bits of m.
		scale := e - f.bias - int(f.mantBits)
		level, sh := mathutil.SplitShift(scale)
		hi, lo := mathutil.Shl128(m, sh)
		v = Value{
			point: int32(level + 3),
			words: []uint32{uint32(hi), uint32(lo >> wordBits), uint32(lo)},
		}
		v.Trim()
	}
	v.neg = b&f.signBit() != 0
	return v
}

func toFloatBits(v Value, f floatFormat) uint64 {
	var sign uint64
	if v.neg {
		sign = f.signBit()
	}
	lead := mathutil.LeadingZeroWords(v.words)
	if lead == len(v.words) {
		return sign
	}
	x, lz := mathutil.Normalize64(v.words[lead], v.Word(lead+1), v.Word(lead+2))
	// exponent of the highest set bit.
	exp := (int(v.point)-1-lead)*wordBits + (wordBits - 1 - lz)
	if exp > int(f.expMask())-1-f.bias {
		return sign | f.expMask()<<f.mantBits
	}
	mant := x >> (63 - f.mantBits) // mantBits+1 significant bits, including the implicit one.
	minExp := 1 - f.bias
	if exp >= minExp {
		return sign | uint64(exp+f.bias)<<f.mantBits | mant&f.mantMask()
	}
	sh := minExp - exp
	if sh > int(f.mantBits) {
		return sign
	}
	return sign | mant>>uint(sh)
}
