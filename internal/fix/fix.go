// Package fix provides the fixed-point arithmetic used for sub-pixel
// stepping during sprite scaling and rotation resampling. Values are
// golang.org/x/image/math/fixed Int52_12 quantities: 52 integer bits and
// 12 fractional bits, enough headroom to accumulate a step error below a
// quarter pixel across any realistic framebuffer span.
package fix

import "golang.org/x/image/math/fixed"

// One is the fixed-point representation of 1.0.
const One fixed.Int52_12 = 1 << 12

// FromInt converts an integer to fixed point.
func FromInt(i int) fixed.Int52_12 {
	return fixed.Int52_12(int64(i) << 12)
}

// FromFloat converts a float to fixed point, truncating extra precision.
func FromFloat(f float64) fixed.Int52_12 {
	return fixed.Int52_12(f * (1 << 12))
}

// Floor returns the integer part of a fixed-point value, rounding toward
// negative infinity.
func Floor(v fixed.Int52_12) int {
	return int(v >> 12)
}

// Step returns the per-increment advance that divides span into n equal
// steps. Truncation guarantees n accumulated steps never overshoot span.
func Step(span fixed.Int52_12, n int) fixed.Int52_12 {
	return span / fixed.Int52_12(n)
}

// Vec is a fixed-point position with a per-step increment, used to walk a
// straight line through source or destination pixel space.
type Vec struct {
	X, Y   fixed.Int52_12
	DX, DY fixed.Int52_12
}

// NewVec returns a vector positioned at src whose n Advance calls walk it
// to dst in equal increments.
func NewVec(srcX, srcY, dstX, dstY float64, n int) Vec {
	return Vec{
		X:  FromFloat(srcX),
		Y:  FromFloat(srcY),
		DX: Step(FromInt(int(dstX-srcX)), n),
		DY: Step(FromInt(int(dstY-srcY)), n),
	}
}

// Advance moves the vector one step along its increment.
func (v *Vec) Advance() {
	v.X += v.DX
	v.Y += v.DY
}
