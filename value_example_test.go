// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"fmt"
)

func ExampleValue() {
	x := MustFromString("-0.74364388703715870475", 4)
	step := One.Rsh(100)
	moved := x.Add(step)
	fmt.Printf("x = %.10f, step = %v\n", x, step)
	fmt.Printf("fixed: moved - x == step: %v\n", moved.Sub(x).Eq(step))

	f := x.Float64()
	fmt.Printf("float64: moved - x == 0: %v\n", f+step.Float64()-f == 0)

	fmt.Printf("%b\n", FromFloat32(-3.75))

	// Output:
	// x = -0.7436438870, step = 7.888609e-31
	// fixed: moved - x == step: true
	// float64: moved - x == 0: true
	// -00000000000000000000000000000011.11000000000000000000000000000000
}

func ExampleValue_AppendBytes() {
	v := FromFloat32(1.5)
	v.SetPrecision(3)
	data := v.AppendBytes(nil)
	fmt.Printf("% x\n", data)

	decoded, rest, err := DecodeBytes(data, 3)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%v, %d words, %d bytes left\n", decoded, decoded.Len(), len(rest))

	// Output:
	// 00 00 00 00 01 00 00 00 01 00 00 00 00 00 00 80 00 00 00 00
	// 1.5, 3 words, 0 bytes left
}

func ExampleValue_SetWholeLen() {
	x := FromFloat32(-0.0016598016)
	fmt.Printf("%d %d %08x\n", x.Point(), x.Len(), x.Words())

	x.SetWholeLen(1)
	x.SetDecLen(3)
	fmt.Printf("%d %d %08x\n", x.Point(), x.Len(), x.Words())

	// Output:
	// 0 2 [006cc6d9 80000000]
	// 1 4 [00000000 006cc6d9 80000000 00000000]
}
