// Copyright 2020 Aleksandr Demakin. All rights reserved.

package view

import (
	fixed "github.com/avdva/deepfixed"
)

const (
	defaultExp = 2.1
	// speed is the distance in screen units, the camera moves per second.
	speed = 0.5
)

// Camera is a viewport over the world plane.
type Camera struct {
	X, Y          fixed.Value
	Zoom          Zoom
	Width, Height uint32
}

// DefaultCamera returns a camera, which shows the whole Mandelbrot set.
func DefaultCamera(width, height uint32) Camera {
	return Camera{
		X:      fixed.FromFloat32(-0.5),
		Zoom:   NewZoom(0, defaultExp),
		Width:  width,
		Height: height,
	}
}

// Move moves the camera by dx and dy screen units per second for the given time.
// Positive dy moves up.
func (c *Camera) Move(dx, dy int, seconds float32) {
	step := fixed.FromFloat32(seconds * speed).Mul(c.Zoom.Mult())
	if dx != 0 {
		c.X.AddAssign(step.Mul(fixed.FromInt64(int64(dx))))
	}
	if dy != 0 {
		c.Y.AddAssign(step.Mul(fixed.FromInt64(int64(dy))))
	}
}

// Stretch returns the scale, mapping the longer side of the viewport to [-1, 1].
func (c Camera) Stretch() [2]float32 {
	w, h := float32(c.Width), float32(c.Height)
	if c.Width < c.Height {
		return [2]float32{w / h, 1}
	}
	return [2]float32{1, h / w}
}

// InvStretch returns the inverse of Stretch.
func (c Camera) InvStretch() [2]float32 {
	w, h := float32(c.Width), float32(c.Height)
	if c.Width < c.Height {
		return [2]float32{h / w, 1}
	}
	return [2]float32{1, w / h}
}

// RelativeTo returns the position and the scale of c in the screen space of a snapshot,
// taken by another camera. The position is offset from the snapshot's center.
// Only the result is converted to floats, so the snapshot may be arbitrarily deep.
func (c Camera) RelativeTo(snapshot Camera) (pos [2]float32, scale float32) {
	aspect := c.InvStretch()
	inv := snapshot.Zoom.InvMult()
	pos[0] = c.X.Sub(snapshot.X).Mul(inv).Float32() * aspect[0] * 2
	pos[1] = c.Y.Sub(snapshot.Y).Mul(inv).Float32() * aspect[1] * 2
	scale = c.Zoom.Mult().Mul(inv).Float32()
	return pos, scale
}
