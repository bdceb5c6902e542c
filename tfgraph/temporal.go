// SPDX-License-Identifier: MIT

package tfgraph

import "github.com/go-gl/mathgl/mgl64"

// TemporalContext holds the ambient time used by queries that do not name
// one. The zero value starts at time 0.
type TemporalContext struct {
	current float64
}

// Now returns the ambient time.
func (tc *TemporalContext) Now() float64 { return tc.current }

// Set overwrites the ambient time.
func (tc *TemporalContext) Set(t float64) { tc.current = t }

// Override sets the ambient time to t and returns the function restoring
// the previous value. Callers defer it so restoration happens on every
// exit path:
//
//	restore := tc.Override(t)
//	defer restore()
func (tc *TemporalContext) Override(t float64) (restore func()) {
	prev := tc.current
	tc.current = t

	return func() { tc.current = prev }
}

// CurrentTime returns the ambient time of g.
func (g *Graph) CurrentTime() float64 { return g.clock.Now() }

// SetTime overwrites the ambient time of g. Every later GetTransform uses
// it until changed again.
func (g *Graph) SetTime(t float64) { g.clock.Set(t) }

// GetTransformAt returns the transform from→to evaluated at t without
// changing the ambient time observed afterwards, whether the query
// succeeds or fails.
//
// It returns ErrReentrantQuery when called from inside the evaluation of
// an edge of the same graph.
func (g *Graph) GetTransformAt(from, to string, t float64) (mgl64.Mat4, error) {
	if g.evaluating > 0 {
		g.opts.observer.QueryFailed(ErrReentrantQuery)
		return mgl64.Mat4{}, ErrReentrantQuery
	}
	restore := g.clock.Override(t)
	defer restore()

	return g.GetTransform(from, to)
}

// GetTransformInTime is GetTransformAt under the name used by
// time-aware transform managers.
func (g *Graph) GetTransformInTime(from, to string, t float64) (mgl64.Mat4, error) {
	return g.GetTransformAt(from, to, t)
}
