// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCmp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y   Value
		result int
	}{
		{zero, zero, 0},
		{zero, negZero, 0},
		{FromParts(true, 3, []uint32{0, 0}), zero, 0},
		{One, FromParts(false, 3, []uint32{0, 0, 1, 0}), 0},
		{One, zero, 1},
		{One.Neg(), zero, -1},
		{One.Neg(), FromFloat32(0.5), -1},
		{FromInt64(-1), FromInt64(-2), 1},
		{FromInt64(1 << 40), FromFloat32(0.5), 1},
		{FromFloat32(0.5), FromFloat32(0.25), 1},
		{FromFloat32(-0.5), FromFloat32(-0.25), -1},
		{One.Rsh(1000), One.Rsh(1001), 1},
		{One.Rsh(1000).Neg(), One.Rsh(1001).Neg(), -1},
		{One.Add(One.Rsh(1000)), One, 1},
		{One.Sub(One.Rsh(1000)), One, -1},
		{One.Lsh(100), One.Lsh(100).Sub(One.Rsh(100)), 1},
		{FromParts(false, 1, []uint32{1, 0xffffffff}), FromParts(false, 2, []uint32{0, 2}), -1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.result, test.x.Cmp(test.y))
			a.Equal(-test.result, test.y.Cmp(test.x))
			a.Equal(test.result == 0, test.x.Eq(test.y))
			a.Equal(test.result < 0, test.x.Less(test.y))
			a.Equal(test.result > 0, test.y.Less(test.x))
		})
	}
}

func TestCmpFloat(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(1))
	random := func() float64 {
		return rnd.NormFloat64() * math.Pow(2, float64(rnd.Intn(100)-50))
	}
	for i := 0; i < 10000; i++ {
		x, y := random(), random()
		if i%10 == 0 {
			y = x
		}
		expected := 0
		switch {
		case x < y:
			expected = -1
		case x > y:
			expected = 1
		}
		a.Equal(expected, FromFloat64(x).Cmp(FromFloat64(y)), "%v <=> %v", x, y)
	}
}

func TestRounding(t *testing.T) {
	a := assert.New(t)
	tests := []float64{
		0,
		0.5,
		-0.5,
		1,
		-1,
		3.75,
		-3.75,
		4294967296.25,
		-4294967296.25,
		4294967295.5,
		-4294967295.5,
		1e-30,
		-1e-30,
		1e30,
		-1e30,
		123456789.123,
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := FromFloat64(test)
			a.True(v.Floor().Eq(FromFloat64(math.Floor(test))), "floor(%v) = %v", test, v.Floor())
			a.True(v.Ceil().Eq(FromFloat64(math.Ceil(test))), "ceil(%v) = %v", test, v.Ceil())
			a.True(v.Trunc().Eq(FromFloat64(math.Trunc(test))), "trunc(%v) = %v", test, v.Trunc())
			a.Equal(test-math.Trunc(test), v.Frac().Float64(), "frac(%v)", test)
		})
	}
}

func TestRoundingDeep(t *testing.T) {
	a := assert.New(t)
	big := One.Lsh(100)
	eps := One.Rsh(100)
	a.Equal(big, big.Add(eps).Floor())
	a.Equal(big.Add(One), big.Add(eps).Ceil())
	a.Equal(big, big.Add(eps).Trunc())
	a.Equal(eps, big.Add(eps).Frac())
	a.Equal(big.Add(One).Neg(), big.Add(eps).Neg().Floor())
	a.Equal(big.Neg(), big.Add(eps).Neg().Ceil())
	a.Equal(eps.Neg(), big.Add(eps).Neg().Frac())
	a.Equal(One.Neg(), eps.Neg().Floor())
	a.Equal(zero, eps.Neg().Ceil())
	a.Equal(zero, eps.Trunc())
	a.Equal(big, big.Floor())
	a.Equal(big, big.Ceil())
	a.Equal(zero, big.Frac())

	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := FromFloat64(rnd.NormFloat64()).Mul(FromFloat64(rnd.NormFloat64())).Lsh(rnd.Intn(200) - 100)
		floor, ceil, trunc := v.Floor(), v.Ceil(), v.Trunc()
		a.True(floor.Frac().IsZero(), "%#v", v)
		a.True(ceil.Frac().IsZero(), "%#v", v)
		a.False(v.Less(floor), "%#v", v)
		a.True(v.Less(floor.Add(One)), "%#v", v)
		a.False(ceil.Less(v), "%#v", v)
		a.True(ceil.Sub(One).Less(v), "%#v", v)
		a.True(trunc.Add(v.Frac()).Eq(v), "%#v", v)
		a.True(v.Frac().Abs().Less(One), "%#v", v)
	}
}
