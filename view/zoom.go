// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package view keeps a deep zoom camera in fixed-point coordinates
// and packs it into the byte block, consumed by the compute shader.
package view

import (
	"math"

	fixed "github.com/avdva/deepfixed"
)

// Zoom is a zoom depth, which is 2^(level-exp).
// The level is a whole number of halvings, and exp is a fractional correction
// kept in (-0.5, 0.5] by Scroll.
type Zoom struct {
	exp     float32
	level   int32
	mult    fixed.Value
	invMult fixed.Value
}

// NewZoom returns a zoom for given level and exponent.
// The exponent is not normalized.
func NewZoom(level int32, exp float32) Zoom {
	z := Zoom{exp: exp, level: level}
	z.update()
	return z
}

// Level returns the whole part of the zoom depth.
func (z Zoom) Level() int32 {
	return z.level
}

// Exp returns the fractional exponent.
func (z Zoom) Exp() float32 {
	return z.exp
}

// RelZoom returns 2^exp.
func (z Zoom) RelZoom() float32 {
	return exp2(z.exp)
}

// Mult returns the size of a screen unit in world units, which is 2^-level * 2^exp.
func (z Zoom) Mult() fixed.Value {
	return z.mult.Clone()
}

// InvMult returns the number of screen units in a world unit, which is 2^level * 2^-exp.
func (z Zoom) InvMult() fixed.Value {
	return z.invMult.Clone()
}

// Scroll zooms in by delta, so positive values make Mult smaller.
func (z *Zoom) Scroll(delta float32) {
	z.exp -= delta
	for z.exp <= -0.5 {
		z.exp++
		z.level++
	}
	for z.exp > 0.5 {
		z.exp--
		z.level--
	}
	z.update()
}

func (z *Zoom) update() {
	rel := exp2(z.exp)
	z.mult = fixed.One.Rsh(int(z.level)).Mul(fixed.FromFloat32(rel))
	z.invMult = fixed.One.Lsh(int(z.level)).Mul(fixed.FromFloat32(1 / rel))
}

func exp2(f float32) float32 {
	return float32(math.Exp2(float64(f)))
}

// Precision returns the number of words, enough to address pixels at given zoom level.
func Precision(level int32) int {
	words := int(math.Round(float64(level)/15 + 2))
	if words < 1 {
		words = 1
	}
	return words
}
