// SPDX-License-Identifier: MIT

package rigid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultTolerance bounds |RᵀR - I| entries when checking orthonormality.
const DefaultTolerance = 1e-6

// degenerateNorm is the column length under which Gram-Schmidt gives up.
const degenerateNorm = 1e-12

// Policy configures Check.
type Policy struct {
	// Strict rejects every violation. When false, repairable violations are
	// fixed, reported through Warn, and the repaired matrix is returned.
	Strict bool

	// Tolerance for the orthonormality test; <= 0 means DefaultTolerance.
	Tolerance float64

	// Warn receives violations repaired under a lenient policy. May be nil.
	Warn func(err *InvalidTransformError)
}

// StrictPolicy rejects any violation with the default tolerance.
func StrictPolicy() Policy { return Policy{Strict: true, Tolerance: DefaultTolerance} }

// LenientPolicy repairs what it can and forwards warnings to warn.
func LenientPolicy(warn func(err *InvalidTransformError)) Policy {
	return Policy{Strict: false, Tolerance: DefaultTolerance, Warn: warn}
}

func (p Policy) tolerance() float64 {
	if p.Tolerance <= 0 {
		return DefaultTolerance
	}

	return p.Tolerance
}

func (p Policy) warn(err *InvalidTransformError) {
	if p.Warn != nil {
		p.Warn(err)
	}
}

// Validate reports the first contract violation of m, or nil.
//
// Order of checks: non-finite entries, bottom row, orthonormality,
// handedness. The bottom row must be exactly [0 0 0 1].
func Validate(m mgl64.Mat4, tol float64) *InvalidTransformError {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	for i, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return violation(ViolationNonFinite, "entry (%d,%d) = %v", i%4, i/4, v)
		}
	}
	if m[3] != 0 || m[7] != 0 || m[11] != 0 || m[15] != 1 {
		return violation(ViolationBottomRow, "got [%v %v %v %v]", m[3], m[7], m[11], m[15])
	}

	r := m.Mat3()
	rtr := r.Transpose().Mul3(r)
	ident := mgl64.Ident3()
	for i := range rtr {
		if d := math.Abs(rtr[i] - ident[i]); d > tol {
			return violation(ViolationNotOrthonormal, "|RᵀR - I| = %.3g exceeds %.3g", d, tol)
		}
	}
	if det := r.Det(); det < 0 {
		return violation(ViolationReflection, "det(R) = %.6g", det)
	}

	return nil
}

// Check applies p to m.
//
// Implementation:
//   - Stage 1: Validate m; a clean matrix is returned unchanged.
//   - Stage 2: Strict policy or unrepairable violation: return the error.
//   - Stage 3: Lenient: reset the bottom row, re-orthonormalize the rotation
//     block, warn, and re-validate the repaired matrix.
//
// On error the returned matrix must be discarded.
func Check(m mgl64.Mat4, p Policy) (mgl64.Mat4, error) {
	v := Validate(m, p.tolerance())
	if v == nil {
		return m, nil
	}
	if p.Strict || !v.Violation.Repairable() {
		return m, v
	}

	repaired, ok := Orthonormalize(m)
	if !ok {
		return m, violation(ViolationNotOrthonormal, "rotation block is degenerate, cannot repair")
	}
	p.warn(v)
	if again := Validate(repaired, p.tolerance()); again != nil {
		return m, again
	}

	return repaired, nil
}

// Orthonormalize rebuilds the rotation block of m with Gram-Schmidt on its
// first two columns and takes the third as their cross product, so the
// result is always right-handed. The translation is kept and the bottom
// row reset. ok is false when the first two columns are (nearly) parallel
// or zero.
func Orthonormalize(m mgl64.Mat4) (out mgl64.Mat4, ok bool) {
	c0 := mgl64.Vec3{m[0], m[1], m[2]}
	c1 := mgl64.Vec3{m[4], m[5], m[6]}

	if c0.Len() < degenerateNorm {
		return m, false
	}
	c0 = c0.Normalize()
	c1 = c1.Sub(c0.Mul(c0.Dot(c1)))
	if c1.Len() < degenerateNorm {
		return m, false
	}
	c1 = c1.Normalize()
	c2 := c0.Cross(c1)

	out = mgl64.Mat4{
		c0[0], c0[1], c0[2], 0,
		c1[0], c1[1], c1[2], 0,
		c2[0], c2[1], c2[2], 0,
		m[12], m[13], m[14], 1,
	}

	return out, true
}
