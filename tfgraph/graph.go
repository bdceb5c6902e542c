// SPDX-License-Identifier: MIT

package tfgraph

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/framegraph/core"
	"github.com/katalvlaran/framegraph/rigid"
	"github.com/katalvlaran/framegraph/transform"
)

// Graph is a transform graph with an ambient time. See the package
// documentation for the concurrency contract.
type Graph struct {
	opts   options
	topo   *core.Graph
	values map[core.EdgeKey]transform.Value
	cache  map[pairKey][]step
	clock  TemporalContext

	// evaluating counts edge evaluations in progress; see GetTransformAt.
	evaluating int
}

// New returns an empty Graph at ambient time 0.
func New(opts ...Option) *Graph {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph{
		opts:   o,
		topo:   core.NewGraph(),
		values: make(map[core.EdgeKey]transform.Value),
		cache:  make(map[pairKey][]step),
	}
}

// SetTransform registers or overwrites the edge from→to.
//
// v is either an mgl64.Mat4 (wrapped as transform.Static) or a
// transform.Value. With checking enabled the value is validated first; on
// any error the graph is left unchanged. A successful call drops the chain
// cache.
func (g *Graph) SetTransform(from, to string, v any) error {
	key := core.EdgeKey{From: from, To: to}
	if from == "" || to == "" {
		return fmt.Errorf("set %s: %w", key, ErrEmptyFrame)
	}
	if from == to {
		return fmt.Errorf("set %s: %w", key, ErrSelfLoop)
	}

	val, err := asValue(v)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	if g.opts.check {
		if val, err = val.Validate(g.policy(key)); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}

	if _, err = g.topo.AddEdge(from, to); err != nil {
		if errors.Is(err, core.ErrReverseEdgeExists) {
			return fmt.Errorf("set %s: %w", key, ErrReverseEdge)
		}
		return fmt.Errorf("set %s: %w", key, err)
	}
	g.values[key] = val
	g.invalidate("set", key)

	return nil
}

// RemoveTransform deletes the edge registered exactly as from→to. It never
// acts on the reverse direction. Frames left without edges disappear.
func (g *Graph) RemoveTransform(from, to string) error {
	key := core.EdgeKey{From: from, To: to}
	if err := g.topo.RemoveEdge(from, to); err != nil {
		if errors.Is(err, core.ErrEdgeNotFound) || errors.Is(err, core.ErrEmptyVertexID) {
			return fmt.Errorf("remove %s: %w", key, ErrUnknownEdge)
		}
		return fmt.Errorf("remove %s: %w", key, err)
	}
	delete(g.values, key)
	g.invalidate("remove", key)

	return nil
}

// HasTransform reports whether from→to is registered in that exact
// direction. It says nothing about the reverse or about composed chains.
func (g *Graph) HasTransform(from, to string) bool {
	return g.topo.HasEdge(from, to)
}

// TransformAvailable reports whether any chain of edges joins from and to,
// regardless of the direction edges were registered in. A frame is always
// connected to itself.
func (g *Graph) TransformAvailable(from, to string) bool {
	if from == to {
		return true
	}
	_, _, err := g.chain(from, to)

	return err == nil
}

// GetTransform returns the transform from→to at the ambient time.
//
// Implementation:
//   - Stage 1: from == to short-circuits to the identity, whatever the graph holds.
//   - Stage 2: Resolve the chain of (edge, direction) steps, from cache or by BFS.
//   - Stage 3: Snapshot the edge values, then evaluate each at the ambient time,
//     inverting edges walked against their registered direction.
//   - Stage 4: Compose in frame order.
//
// Errors:
//   - ErrNoPath when the frames are unknown or disconnected.
//   - Evaluation errors (e.g. *rigid.InvalidTransformError from a
//     time-varying edge), wrapped with the edge and time.
func (g *Graph) GetTransform(from, to string) (mgl64.Mat4, error) {
	m, err := g.resolve(from, to, g.clock.Now())
	if err != nil {
		g.opts.observer.QueryFailed(err)
		return mgl64.Mat4{}, err
	}

	return m, nil
}

func (g *Graph) resolve(from, to string, t float64) (mgl64.Mat4, error) {
	if from == to {
		return rigid.Identity(), nil
	}
	steps, cached, err := g.chain(from, to)
	if err != nil {
		return mgl64.Mat4{}, err
	}
	g.opts.observer.PathResolved(len(steps), cached)

	// an evaluation may mutate the graph; work on a snapshot
	vals := make([]transform.Value, len(steps))
	for i, s := range steps {
		vals[i] = g.values[s.key]
	}

	g.evaluating++
	defer func() { g.evaluating-- }()

	mats := make([]mgl64.Mat4, len(steps))
	for i, s := range steps {
		m, err := vals[i].At(t)
		if err != nil {
			return mgl64.Mat4{}, fmt.Errorf("evaluate %s at t=%v: %w", s.key, t, err)
		}
		if !s.forward {
			m = g.invert(m)
		}
		mats[i] = m
	}

	return rigid.Compose(mats...), nil
}

// invert uses the closed-form rigid inverse for validated values and the
// general inverse when the caller opted out of checking.
func (g *Graph) invert(m mgl64.Mat4) mgl64.Mat4 {
	if g.opts.check {
		return rigid.Invert(m)
	}

	return m.Inv()
}

// policy builds the validation policy for one edge; lenient warnings are
// logged and forwarded to the observer with the edge endpoints.
func (g *Graph) policy(key core.EdgeKey) rigid.Policy {
	p := rigid.Policy{Strict: g.opts.strict, Tolerance: g.opts.tolerance}
	if !g.opts.strict {
		logger, obs := g.opts.logger, g.opts.observer
		p.Warn = func(err *rigid.InvalidTransformError) {
			logger.Warn("repaired invalid transform",
				"from", key.From,
				"to", key.To,
				"violation", err.Violation.String(),
				"detail", err.Detail,
			)
			obs.ValidationWarning(key.From, key.To, err)
		}
	}

	return p
}

func asValue(v any) (transform.Value, error) {
	switch x := v.(type) {
	case mgl64.Mat4:
		return transform.NewStatic(x), nil
	case transform.Value:
		if isNilValue(x) {
			return nil, fmt.Errorf("%w: nil %T", ErrUnsupportedValue, v)
		}
		return x, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// isNilValue catches typed nils such as (*transform.Sampled)(nil).
func isNilValue(v transform.Value) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
