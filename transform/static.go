// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/framegraph/rigid"
)

// Static is a transform that does not change over time.
type Static struct {
	m mgl64.Mat4
}

// NewStatic wraps m.
func NewStatic(m mgl64.Mat4) Static { return Static{m: m} }

// Matrix returns the wrapped matrix.
func (s Static) Matrix() mgl64.Mat4 { return s.m }

// At returns the wrapped matrix for any t.
func (s Static) At(float64) (mgl64.Mat4, error) { return s.m, nil }

// Validate checks the matrix once. Under a lenient policy the stored
// matrix is the repaired one.
func (s Static) Validate(p rigid.Policy) (Value, error) {
	m, err := rigid.Check(s.m, p)
	if err != nil {
		return nil, err
	}

	return Static{m: m}, nil
}
