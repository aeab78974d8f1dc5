// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	delim     = '.'
	separator = '_'
	zeroWord  = "00000000000000000000000000000000"
)

// String returns an approximate decimal representation of the value,
// which is the shortest representation of v.Float32().
// Use StringExact to get all the digits.
func (v Value) String() string {
	return strconv.FormatFloat(float64(v.Float32()), 'g', -1, 32)
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	return v.String() + fmt.Sprintf(" {%v, %v, %08x}", v.neg, v.point, v.words)
}

// BinaryString returns all the bits of the value.
// Words are separated by '_', and the point is marked with '.'.
// Implicit zero words between the point and the stored words are printed too.
// For instance, 3.5 is
//
//	00000000000000000000000000000011.10000000000000000000000000000000
func (v Value) BinaryString() string {
	var builder strings.Builder
	v.toBinaryBuilder(&builder)
	return builder.String()
}

func (v Value) toBinaryBuilder(builder *strings.Builder) {
	if v.neg {
		builder.WriteByte('-')
	}
	if len(v.words) == 0 {
		builder.WriteByte('0')
		return
	}
	point := int(v.point)
	first := true
	writeWord := func(i int, w uint32) {
		switch {
		case i == point:
			builder.WriteByte(delim)
		case !first:
			builder.WriteByte(separator)
		}
		first = false
		s := strconv.FormatUint(uint64(w), 2)
		builder.WriteString(zeroWord[:len(zeroWord)-len(s)])
		builder.WriteString(s)
	}
	for i := point; i < 0; i++ {
		writeWord(i, 0)
	}
	for i, w := range v.words {
		writeWord(i, w)
	}
	for i := len(v.words); i < point; i++ {
		writeWord(i, 0)
	}
}

// Format implements fmt.Formatter.
// %b prints BinaryString, %e, %f, %g and their variants format v.Float64(),
// %s and %v print String, and %#v prints GoString.
func (v Value) Format(f fmt.State, verb rune) {
	switch verb {
	case 'b':
		io.WriteString(f, v.BinaryString())
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(f, fmt.FormatString(f, verb), v.Float64())
	case 'v':
		if f.Flag('#') {
			io.WriteString(f, v.GoString())
			return
		}
		fallthrough
	case 's':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), v.String())
	default:
		fmt.Fprintf(f, "%%!%c(fixed.Value=%s)", verb, v.String())
	}
}
