// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/framegraph/rigid"
)

// TimeVarying evaluates a user function at the query time.
type TimeVarying struct {
	fn     Func
	policy *rigid.Policy // nil until validated
}

// NewTimeVarying wraps fn.
func NewTimeVarying(fn Func) TimeVarying { return TimeVarying{fn: fn} }

// At returns fn(t). Once validated, every sample is checked against the
// policy it was validated with.
func (tv TimeVarying) At(t float64) (mgl64.Mat4, error) {
	if tv.fn == nil {
		return mgl64.Mat4{}, ErrNilFunc
	}
	m := tv.fn(t)
	if tv.policy == nil {
		return m, nil
	}
	out, err := rigid.Check(m, *tv.policy)
	if err != nil {
		return out, fmt.Errorf("at t=%v: %w", t, err)
	}

	return out, nil
}

// Validate defers the contract check to evaluation time. It fails only if
// there is no function to evaluate.
func (tv TimeVarying) Validate(p rigid.Policy) (Value, error) {
	if tv.fn == nil {
		return nil, ErrNilFunc
	}
	tv.policy = &p

	return tv, nil
}
