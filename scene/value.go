// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/framegraph/rigid"
	"github.com/katalvlaran/framegraph/transform"
)

// Value converts e into what tfgraph.Graph.SetTransform accepts: an
// mgl64.Mat4 for static poses, a transform.Value otherwise.
func (e Edge) Value() (any, error) {
	kinds := 0
	for _, set := range []bool{e.isPose(), e.Matrix != nil, e.Spin != nil, e.Samples != nil} {
		if set {
			kinds++
		}
	}
	switch {
	case kinds == 0:
		return nil, fmt.Errorf("%w: no value given", ErrBadEdge)
	case kinds > 1:
		return nil, fmt.Errorf("%w: more than one of pose, matrix, spin, samples", ErrBadEdge)
	}

	switch {
	case e.Matrix != nil:
		m, err := rigid.FromRowMajor(e.Matrix)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadEdge, err)
		}
		return m, nil
	case e.Spin != nil:
		return e.Spin.value()
	case e.Samples != nil:
		return samples(e.Samples)
	default:
		return e.pose()
	}
}

func (e Edge) isPose() bool {
	return e.Translation != nil || e.Rotation != nil || e.Quaternion != nil
}

func (e Edge) pose() (mgl64.Mat4, error) {
	if e.Rotation != nil && e.Quaternion != nil {
		return mgl64.Mat4{}, fmt.Errorf("%w: rotation and quaternion are exclusive", ErrBadEdge)
	}
	pos, err := vec3("translation", e.Translation)
	if err != nil {
		return mgl64.Mat4{}, err
	}

	rot := rigid.Identity()
	switch {
	case e.Rotation != nil:
		axis, err := vec3("rotation.axis", e.Rotation.Axis)
		if err != nil {
			return mgl64.Mat4{}, err
		}
		rot = rigid.RotationDeg(axis, e.Rotation.Degrees)
	case e.Quaternion != nil:
		q, err := quat(e.Quaternion)
		if err != nil {
			return mgl64.Mat4{}, err
		}
		rot = q.Mat4()
	}

	return rigid.WithPosition(rot, pos), nil
}

func (s *Spin) value() (transform.TimeVarying, error) {
	axis, err := vec3("spin.axis", s.Axis)
	if err != nil {
		return transform.TimeVarying{}, err
	}
	if axis.Len() == 0 {
		return transform.TimeVarying{}, fmt.Errorf("%w: spin.axis is zero", ErrBadEdge)
	}
	pos, err := vec3("spin.translation", s.Translation)
	if err != nil {
		return transform.TimeVarying{}, err
	}
	rate := s.DegreesPerUnit

	return transform.NewTimeVarying(func(t float64) mgl64.Mat4 {
		return rigid.WithPosition(rigid.RotationDeg(axis, rate*t), pos)
	}), nil
}

func samples(in []Sample) (*transform.Sampled, error) {
	out := make([]transform.Sample, len(in))
	for i, s := range in {
		pos, err := vec3(fmt.Sprintf("samples[%d].translation", i), s.Translation)
		if err != nil {
			return nil, err
		}
		q := mgl64.QuatIdent()
		if s.Quaternion != nil {
			if q, err = quat(s.Quaternion); err != nil {
				return nil, fmt.Errorf("samples[%d]: %w", i, err)
			}
		}
		out[i] = transform.Sample{Time: s.T, Position: pos, Orientation: q}
	}
	sm, err := transform.NewSampled(out...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadEdge, err)
	}
	return sm, nil
}

// vec3 reads an optional 3-vector; nil means zero.
func vec3(field string, v []float64) (mgl64.Vec3, error) {
	if v == nil {
		return mgl64.Vec3{}, nil
	}
	if len(v) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("%w: %s needs 3 values, got %d", ErrBadEdge, field, len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

// quat reads [w, x, y, z] and normalizes it; hand-written quaternions are
// rarely unit to full precision.
func quat(v []float64) (mgl64.Quat, error) {
	if len(v) != 4 {
		return mgl64.Quat{}, fmt.Errorf("%w: quaternion needs 4 values [w x y z], got %d", ErrBadEdge, len(v))
	}
	q := mgl64.Quat{W: v[0], V: mgl64.Vec3{v[1], v[2], v[3]}}
	if q.Len() == 0 {
		return mgl64.Quat{}, fmt.Errorf("%w: zero quaternion", ErrBadEdge)
	}
	return q.Normalize(), nil
}
