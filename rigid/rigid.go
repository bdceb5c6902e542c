// SPDX-License-Identifier: MIT

package rigid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Identity returns the 4x4 identity transform.
func Identity() mgl64.Mat4 { return mgl64.Ident4() }

// Compose chains transforms in frame order: Compose(A2B, B2C, C2D) = A2D.
// Each successive transform is left-multiplied onto the running product.
// Compose() returns the identity.
//
// Complexity: O(k) 4x4 products for k inputs.
func Compose(ms ...mgl64.Mat4) mgl64.Mat4 {
	out := mgl64.Ident4()
	for _, m := range ms {
		out = m.Mul4(out)
	}

	return out
}

// Invert returns the inverse of a rigid transform in closed form:
//
//	[ R | t ]⁻¹ = [ Rᵀ | -Rᵀt ]
//
// The input is assumed to satisfy the contract; callers holding an
// unchecked matrix should run Check first. Unlike a general LU inverse
// this never fails and keeps the bottom row exact.
func Invert(m mgl64.Mat4) mgl64.Mat4 {
	var out mgl64.Mat4
	// transpose the rotation block
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[c*4+r] = m[r*4+c]
		}
	}
	// -Rᵀt
	t := Position(m)
	for r := 0; r < 3; r++ {
		out[12+r] = -(out[r]*t[0] + out[4+r]*t[1] + out[8+r]*t[2])
	}
	out[15] = 1

	return out
}

// Translation returns a pure translation by (x, y, z).
func Translation(x, y, z float64) mgl64.Mat4 { return mgl64.Translate3D(x, y, z) }

// Rotation returns a pure rotation of angle radians about axis.
// A zero axis yields the identity.
func Rotation(axis mgl64.Vec3, angle float64) mgl64.Mat4 {
	if axis.Len() == 0 {
		return mgl64.Ident4()
	}

	return mgl64.HomogRotate3D(angle, axis.Normalize())
}

// RotationDeg is Rotation with the angle in degrees.
func RotationDeg(axis mgl64.Vec3, degrees float64) mgl64.Mat4 {
	return Rotation(axis, mgl64.DegToRad(degrees))
}

// FromPQ builds a transform from a position and an orientation quaternion.
// The quaternion is normalized first.
func FromPQ(pos mgl64.Vec3, q mgl64.Quat) mgl64.Mat4 {
	m := q.Normalize().Mat4()
	m[12], m[13], m[14] = pos[0], pos[1], pos[2]

	return m
}

// WithPosition returns m with its translation replaced by pos.
func WithPosition(m mgl64.Mat4, pos mgl64.Vec3) mgl64.Mat4 {
	m[12], m[13], m[14] = pos[0], pos[1], pos[2]

	return m
}

// Position extracts the translation component of m.
func Position(m mgl64.Mat4) mgl64.Vec3 { return mgl64.Vec3{m[12], m[13], m[14]} }

// Orientation extracts the rotation block of m as a unit quaternion.
func Orientation(m mgl64.Mat4) mgl64.Quat { return mgl64.Mat4ToQuat(m).Normalize() }

// FromRowMajor builds a matrix from 16 values written row by row, the way
// humans usually type them. Any other length is a ViolationShape.
// The result is not checked; run Check on it.
func FromRowMajor(vals []float64) (mgl64.Mat4, error) {
	var m mgl64.Mat4
	if len(vals) != 16 {
		return m, violation(ViolationShape, "got %d values, want 16", len(vals))
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[c*4+r] = vals[r*4+c]
		}
	}

	return m, nil
}

// RowMajor flattens m row by row; the inverse of FromRowMajor.
func RowMajor(m mgl64.Mat4) []float64 {
	out := make([]float64, 16)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[c*4+r]
		}
	}

	return out
}

// ApproxEqual reports whether every entry of a and b differs by at most eps.
func ApproxEqual(a, b mgl64.Mat4, eps float64) bool {
	for i := range a {
		d := a[i] - b[i]
		if d > eps || d < -eps {
			return false
		}
	}

	return true
}

// RotationAngle returns the angle, in radians within [0, π], of the
// rotation block of m about its axis.
func RotationAngle(m mgl64.Mat4) float64 {
	sin := mgl64.Vec3{
		m.At(2, 1) - m.At(1, 2),
		m.At(0, 2) - m.At(2, 0),
		m.At(1, 0) - m.At(0, 1),
	}.Len() / 2
	cos := (m.At(0, 0) + m.At(1, 1) + m.At(2, 2) - 1) / 2

	return math.Atan2(sin, cos)
}
