// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/framegraph/rigid"
)

// Sample is one timestamped pose of a Sampled transform.
type Sample struct {
	Time        float64
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// Sampled interpolates between timestamped poses. Queries before the first
// or after the last sample clamp to that sample.
type Sampled struct {
	samples []Sample // sorted by Time, strictly increasing
}

// NewSampled copies and sorts samples. It fails on an empty set or on two
// samples with the same time.
func NewSampled(samples ...Sample) (*Sampled, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	s := make([]Sample, len(samples))
	copy(s, samples)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Time < s[j].Time })
	for i := 1; i < len(s); i++ {
		if s[i].Time == s[i-1].Time {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateSampleTime, s[i].Time)
		}
	}

	return &Sampled{samples: s}, nil
}

// Len returns the number of samples.
func (s *Sampled) Len() int { return len(s.samples) }

// Span returns the first and last sample times, or zeros when empty.
func (s *Sampled) Span() (first, last float64) {
	if len(s.samples) == 0 {
		return 0, 0
	}
	return s.samples[0].Time, s.samples[len(s.samples)-1].Time
}

// At interpolates the pose at t: positions linearly, orientations by slerp
// along the shorter arc.
func (s *Sampled) At(t float64) (mgl64.Mat4, error) {
	n := len(s.samples)
	if n == 0 {
		return mgl64.Mat4{}, ErrNoSamples
	}
	// first sample strictly after t
	i := sort.Search(n, func(k int) bool { return s.samples[k].Time > t })
	switch {
	case i == 0:
		return pose(s.samples[0]), nil
	case i == n:
		return pose(s.samples[n-1]), nil
	}

	a, b := s.samples[i-1], s.samples[i]
	u := (t - a.Time) / (b.Time - a.Time)
	pos := a.Position.Add(b.Position.Sub(a.Position).Mul(u))

	qa, qb := a.Orientation, b.Orientation
	if qa.Dot(qb) < 0 {
		qb = qb.Scale(-1)
	}
	q := mgl64.QuatSlerp(qa, qb, u)

	return rigid.FromPQ(pos, q), nil
}

// Validate checks every sample once: finite values and unit quaternions.
// A lenient policy normalizes drifted quaternions and warns.
func (s *Sampled) Validate(p rigid.Policy) (Value, error) {
	if len(s.samples) == 0 {
		return nil, ErrNoSamples
	}
	tol := p.Tolerance
	if tol <= 0 {
		tol = rigid.DefaultTolerance
	}
	out := make([]Sample, len(s.samples))
	for i, smp := range s.samples {
		if !finite(smp) {
			return nil, &rigid.InvalidTransformError{
				Violation: rigid.ViolationNonFinite,
				Detail:    fmt.Sprintf("sample %d at t=%v", i, smp.Time),
			}
		}
		norm := smp.Orientation.Len()
		if math.Abs(norm-1) > tol {
			verr := &rigid.InvalidTransformError{
				Violation: rigid.ViolationNotOrthonormal,
				Detail:    fmt.Sprintf("sample %d at t=%v: quaternion norm %.6g", i, smp.Time, norm),
			}
			if p.Strict || norm == 0 {
				return nil, verr
			}
			if p.Warn != nil {
				p.Warn(verr)
			}
			smp.Orientation = smp.Orientation.Normalize()
		}
		out[i] = smp
	}

	return &Sampled{samples: out}, nil
}

func pose(s Sample) mgl64.Mat4 { return rigid.FromPQ(s.Position, s.Orientation) }

func finite(s Sample) bool {
	vals := []float64{s.Time, s.Position[0], s.Position[1], s.Position[2],
		s.Orientation.W, s.Orientation.V[0], s.Orientation.V[1], s.Orientation.V[2]}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
