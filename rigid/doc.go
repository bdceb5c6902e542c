// SPDX-License-Identifier: MIT

// Package rigid implements the rigid-body transform contract on top of
// mgl64.Mat4 homogeneous matrices.
//
// What
//
//   - Identity, composition and closed-form inversion of rigid transforms.
//   - Validity checking (finite entries, bottom row [0 0 0 1], orthonormal
//     rotation block with determinant +1) under a configurable Policy.
//   - Re-orthonormalization of a drifted rotation block (Gram-Schmidt).
//   - Small builders: translations, axis-angle rotations, position+quaternion.
//
// Layout convention
//
//	Matrices are mgl64.Mat4 values and therefore COLUMN-MAJOR: element
//	(row, col) lives at index col*4+row, and the translation occupies
//	indices 12, 13, 14. A matrix A2B maps a column vector expressed in
//	frame A into frame B:
//
//	    p_B = A2B · p_A
//
//	Composition follows frame order: Compose(A2B, B2C) = B2C · A2B = A2C.
//
// Policy
//
//	Strict policies turn every violation into an *InvalidTransformError.
//	Lenient policies repair what can be repaired (bottom row reset,
//	rotation re-orthonormalized), report the violation through Policy.Warn
//	and proceed. Non-finite entries and wrong shapes cannot be repaired and
//	fail under both policies.
//
// Errors
//
//   - ErrInvalidTransform: sentinel matched by every *InvalidTransformError.
package rigid
