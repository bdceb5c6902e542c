// SPDX-License-Identifier: MIT

package transform

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/framegraph/rigid"
)

// Sentinel errors for value construction.
var (
	// ErrNilFunc is returned when a TimeVarying value has no function.
	ErrNilFunc = errors.New("transform: nil time function")

	// ErrNoSamples is returned when a Sampled value holds no samples.
	ErrNoSamples = errors.New("transform: no samples")

	// ErrDuplicateSampleTime is returned when two samples share a timestamp.
	ErrDuplicateSampleTime = errors.New("transform: duplicate sample time")
)

// Value is a rigid transform evaluated at a caller-supplied time.
type Value interface {
	// At evaluates the transform at time t.
	At(t float64) (mgl64.Mat4, error)

	// Validate checks the value against p and returns the value to store.
	Validate(p rigid.Policy) (Value, error)
}

// Func produces the matrix of a time-varying transform at time t.
type Func func(t float64) mgl64.Mat4
