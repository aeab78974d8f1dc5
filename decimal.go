// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	bigFive = big.NewInt(5)
)

// Decimal returns the exact decimal value of v.
// Every binary fraction has a finite decimal representation, as 2^-k = 5^k * 10^-k.
func (v Value) Decimal() decimal.Decimal {
	v = v.Trimmed()
	if len(v.words) == 0 {
		return decimal.Zero
	}
	mant := new(big.Int)
	for _, w := range v.words {
		mant.Lsh(mant, wordBits)
		mant.Or(mant, new(big.Int).SetUint64(uint64(w)))
	}
	if v.neg {
		mant.Neg(mant)
	}
	fracBits := v.DecLen() * wordBits
	if fracBits <= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(-fracBits)), 0)
	}
	pow := new(big.Int).Exp(bigFive, big.NewInt(int64(fracBits)), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, pow), -int32(fracBits))
}

// StringExact returns all the decimal digits of the value.
func (v Value) StringExact() string {
	return v.Decimal().String()
}

// FromDecimal returns a value for given decimal.
// The integer part is exact, the fractional part is truncated to fracWords words.
func FromDecimal(d decimal.Decimal, fracWords int) Value {
	if fracWords < 0 {
		fracWords = 0
	}
	scale := new(big.Int).Lsh(big.NewInt(1), uint(fracWords*wordBits))
	i := new(big.Int).Set(d.Mul(decimal.NewFromBigInt(scale, 0)).BigInt())
	neg := i.Sign() < 0
	b := i.Abs(i).Bytes()
	n := (len(b) + wordSize - 1) / wordSize
	buf := make([]byte, n*wordSize)
	copy(buf[len(buf)-len(b):], b)
	v := Value{neg: neg, point: int32(n - fracWords), words: make([]uint32, n)}
	for k := range v.words {
		v.words[k] = binary.BigEndian.Uint32(buf[k*wordSize:])
	}
	v.Trim()
	return v
}

// FromString parses a decimal string, like "-0.74364388703715870475", into a value.
// See FromDecimal.
func FromString(s string, fracWords int) (Value, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return zero, fmt.Errorf("parsing failed: %w", err)
	}
	return FromDecimal(d, fracWords), nil
}

// MustFromString is like FromString, but panics on errors.
func MustFromString(s string, fracWords int) Value {
	v, err := FromString(s, fracWords)
	if err != nil {
		panic(fmt.Sprintf("MustFromString(%q) failed: %v", s, err))
	}
	return v
}
