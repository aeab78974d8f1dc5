// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	wordSize = 4
	// headerLen is the size of the sign and the point in the encoded form.
	headerLen = 2 * wordSize
)

var (
	errShortBuffer = errors.New("short buffer")
)

// AppendBytes appends the value to dst in the GPU layout and returns the extended buffer:
//
//	[sign: u32][point: i32][word 0: u32]...[word n-1: u32]
//
// All the numbers are little-endian. There is no length prefix and no padding,
// so the reader must know the number of words in advance. Use SetPrecision,
// or SetWholeLen and SetDecLen, to fix the number of words before encoding.
func (v Value) AppendBytes(dst []byte) []byte {
	var sign uint32
	if v.neg {
		sign = 1
	}
	dst = binary.LittleEndian.AppendUint32(dst, sign)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(v.point))
	for _, w := range v.words {
		dst = binary.LittleEndian.AppendUint32(dst, w)
	}
	return dst
}

// EncodedLen returns the number of bytes AppendBytes adds.
func (v Value) EncodedLen() int {
	return headerLen + wordSize*len(v.words)
}

// DecodeBytes reads a value with the given number of words, encoded by AppendBytes.
// Returns the value and the rest of the buffer.
func DecodeBytes(src []byte, words int) (Value, []byte, error) {
	if words < 0 {
		words = 0
	}
	need := headerLen + wordSize*words
	if len(src) < need {
		return zero, src, fmt.Errorf("%w: need %d bytes, got %d", errShortBuffer, need, len(src))
	}
	v := Value{
		neg:   binary.LittleEndian.Uint32(src) != 0,
		point: int32(binary.LittleEndian.Uint32(src[wordSize:])),
	}
	if words > 0 {
		v.words = make([]uint32, words)
		for i := range v.words {
			v.words[i] = binary.LittleEndian.Uint32(src[headerLen+wordSize*i:])
		}
	}
	return v, src[need:], nil
}
