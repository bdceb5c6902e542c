// SPDX-License-Identifier: MIT

package rigid

import (
	"errors"
	"fmt"
)

// ErrInvalidTransform is the sentinel behind every contract violation.
// Match it with errors.Is; use errors.As with *InvalidTransformError to
// learn which property was violated.
var ErrInvalidTransform = errors.New("rigid: invalid transform")

// Violation names the property of the rigid-transform contract that failed.
type Violation int

const (
	// ViolationShape: input did not hold exactly 16 values.
	ViolationShape Violation = iota + 1

	// ViolationNonFinite: some entry is NaN or ±Inf.
	ViolationNonFinite

	// ViolationBottomRow: bottom row differs from [0 0 0 1].
	ViolationBottomRow

	// ViolationNotOrthonormal: RᵀR deviates from I beyond tolerance.
	ViolationNotOrthonormal

	// ViolationReflection: rotation block has determinant -1.
	ViolationReflection
)

// String returns a short, log-friendly name.
func (v Violation) String() string {
	switch v {
	case ViolationShape:
		return "wrong shape"
	case ViolationNonFinite:
		return "non-finite entry"
	case ViolationBottomRow:
		return "wrong bottom row"
	case ViolationNotOrthonormal:
		return "non-orthonormal rotation"
	case ViolationReflection:
		return "rotation is a reflection"
	default:
		return fmt.Sprintf("violation(%d)", int(v))
	}
}

// Repairable reports whether a lenient policy can fix the violation.
func (v Violation) Repairable() bool {
	return v == ViolationBottomRow || v == ViolationNotOrthonormal || v == ViolationReflection
}

// InvalidTransformError describes a single contract violation.
type InvalidTransformError struct {
	Violation Violation
	Detail    string
}

func (e *InvalidTransformError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v: %s", ErrInvalidTransform, e.Violation)
	}
	return fmt.Sprintf("%v: %s (%s)", ErrInvalidTransform, e.Violation, e.Detail)
}

// Unwrap exposes ErrInvalidTransform to errors.Is.
func (e *InvalidTransformError) Unwrap() error { return ErrInvalidTransform }

func violation(v Violation, format string, args ...any) *InvalidTransformError {
	return &InvalidTransformError{Violation: v, Detail: fmt.Sprintf(format, args...)}
}
