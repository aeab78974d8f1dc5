// Copyright 2020 Aleksandr Demakin. All rights reserved.

package view

import (
	"bytes"
	"encoding/binary"
	"math"

	fixed "github.com/avdva/deepfixed"
)

const (
	viewAlign = 8
	resetLen  = 4
)

// ComputeView is the view uniform of the compute shader:
//
//	[reset: u32][level: i32][width: u32][height: u32][stretch: f32 x2][scale][x][y]
//
// where scale, x and y are fixed-point values with the same number of words,
// in the layout of fixed.Value.AppendBytes. The block is zero-padded to 8 bytes.
type ComputeView struct {
	data []byte
}

// NewComputeView packs the camera with the given number of words per value.
func NewComputeView(c Camera, reset bool, words int) ComputeView {
	x, y := ShapePosition(c.X, words), ShapePosition(c.Y, words)
	scale := ShapeScale(c.Zoom.Mult(), words)
	return newComputeView(reset, c.Width, c.Height, c.Stretch(), c.Zoom.Level(), scale, x, y)
}

// ShapePosition returns a copy of v with a single integer word and words-1 fractional ones.
// Integer bits above the first word are dropped.
func ShapePosition(v fixed.Value, words int) fixed.Value {
	v = v.Clone()
	v.SetWholeLen(1)
	v.SetDecLen(words - 1)
	return v
}

// ShapeScale returns a copy of v with its most significant words.
func ShapeScale(v fixed.Value, words int) fixed.Value {
	v = v.Clone()
	v.SetPrecision(words)
	return v
}

// DefaultComputeView returns a view with a reset flag, an empty viewport and zero values of three words.
// It is what the shader sees before the first camera update.
func DefaultComputeView() ComputeView {
	val := fixed.FromParts(false, 0, []uint32{0, 0, 0})
	return newComputeView(true, 0, 0, [2]float32{}, 0, val, val, val)
}

func newComputeView(reset bool, width, height uint32, stretch [2]float32, level int32, scale, x, y fixed.Value) ComputeView {
	size := resetLen*6 + scale.EncodedLen() + x.EncodedLen() + y.EncodedLen()
	data := make([]byte, 0, size+viewAlign)
	var r uint32
	if reset {
		r = 1
	}
	data = binary.LittleEndian.AppendUint32(data, r)
	data = binary.LittleEndian.AppendUint32(data, uint32(level))
	data = binary.LittleEndian.AppendUint32(data, width)
	data = binary.LittleEndian.AppendUint32(data, height)
	data = binary.LittleEndian.AppendUint32(data, math.Float32bits(stretch[0]))
	data = binary.LittleEndian.AppendUint32(data, math.Float32bits(stretch[1]))
	data = scale.AppendBytes(data)
	data = x.AppendBytes(data)
	data = y.AppendBytes(data)
	if rem := len(data) % viewAlign; rem != 0 {
		data = append(data, make([]byte, viewAlign-rem)...)
	}
	return ComputeView{data: data}
}

// Bytes returns the packed view. The slice must not be modified.
func (v ComputeView) Bytes() []byte {
	return v.data
}

// Reset returns the value of the reset flag.
func (v ComputeView) Reset() bool {
	return len(v.data) >= resetLen && binary.LittleEndian.Uint32(v.data) != 0
}

// SetReset changes the reset flag in place.
func (v *ComputeView) SetReset(reset bool) {
	if len(v.data) < resetLen {
		return
	}
	var r uint32
	if reset {
		r = 1
	}
	binary.LittleEndian.PutUint32(v.data, r)
}

// Equal returns true if both views describe the same camera. The reset flag is ignored.
func (v ComputeView) Equal(other ComputeView) bool {
	if len(v.data) < resetLen || len(other.data) < resetLen {
		return len(v.data) == len(other.data)
	}
	return bytes.Equal(v.data[resetLen:], other.data[resetLen:])
}

// Tracker remembers the last uploaded view, so that the shader restarts
// its accumulated work only when the camera actually changes.
type Tracker struct {
	last  ComputeView
	words int
}

// NewTracker returns a tracker, which starts from DefaultComputeView.
func NewTracker(words int) *Tracker {
	return &Tracker{last: DefaultComputeView(), words: words}
}

// Update packs the camera and sets the reset flag, if the view differs from the previous one.
// Returns the view and whether the number of words has changed,
// which means the shader and its work buffer must be rebuilt.
func (t *Tracker) Update(c Camera, words int) (ComputeView, bool) {
	v := NewComputeView(c, false, words)
	if !v.Equal(t.last) {
		v.SetReset(true)
	}
	resized := words != t.words
	t.words = words
	t.last = v
	return v, resized
}

// WorkSize returns the number of words in the shader's work buffer:
// every pixel keeps two complex numbers of words+2 words per part, and an iteration counter.
func WorkSize(width, height uint32, words int) int {
	varWidth := (2 + words) * 2
	return int(width) * int(height) * (varWidth*2 + 1)
}
