// SPDX-License-Identifier: MIT

package tfgraph

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/framegraph/bfs"
	"github.com/katalvlaran/framegraph/core"
	"github.com/katalvlaran/framegraph/rigid"
)

// Path returns the frames GetTransform(from, to) would chain through,
// endpoints included.
func (g *Graph) Path(from, to string) ([]string, error) {
	if from == to {
		return []string{from}, nil
	}
	steps, _, err := g.chain(from, to)
	if err != nil {
		return nil, err
	}
	frames := make([]string, 0, len(steps)+1)
	frames = append(frames, from)
	cur := from
	for _, s := range steps {
		if s.forward {
			cur = s.key.To
		} else {
			cur = s.key.From
		}
		frames = append(frames, cur)
	}

	return frames, nil
}

// Frames lists every frame in insertion order.
func (g *Graph) Frames() []string { return g.topo.Vertices() }

// HasFrame reports whether name takes part in at least one edge.
func (g *Graph) HasFrame(name string) bool { return g.topo.HasVertex(name) }

// Edges lists registered edge keys in registration order.
func (g *Graph) Edges() []core.EdgeKey { return g.topo.Edges() }

// Transforms evaluates every registered edge at the ambient time.
func (g *Graph) Transforms() (map[core.EdgeKey]mgl64.Mat4, error) {
	t := g.clock.Now()
	g.evaluating++
	defer func() { g.evaluating-- }()

	out := make(map[core.EdgeKey]mgl64.Mat4, len(g.values))
	for _, key := range g.topo.Edges() {
		m, err := g.values[key].At(t)
		if err != nil {
			return nil, fmt.Errorf("evaluate %s at t=%v: %w", key, t, err)
		}
		out[key] = m
	}

	return out, nil
}

// ConnectedComponents groups frames that can reach each other. Components
// and the frames inside them follow insertion and BFS order.
func (g *Graph) ConnectedComponents() [][]string {
	seen := make(map[string]bool)
	var comps [][]string
	for _, f := range g.topo.Vertices() {
		if seen[f] {
			continue
		}
		res, err := bfs.BFS(g.topo, f)
		if err != nil {
			continue
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}

// CheckConsistency evaluates every edge at the ambient time and validates
// the result against the graph tolerance, regardless of WithCheck and
// WithStrictCheck. Every loop must also close within the tolerance, both
// in translation and in angle. All violations are joined into the
// returned error.
func (g *Graph) CheckConsistency() error {
	mats, err := g.Transforms()
	if err != nil {
		return err
	}
	var errs []error
	for _, key := range g.topo.Edges() {
		if v := rigid.Validate(mats[key], g.opts.tolerance); v != nil {
			errs = append(errs, fmt.Errorf("edge %s: %w", key, v))
		}
	}

	residuals, err := g.LoopResiduals()
	if err != nil {
		return errors.Join(append(errs, err)...)
	}
	for _, r := range residuals {
		if r.exceeds(g.opts.tolerance) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrLoopMismatch, r))
		}
	}

	return errors.Join(errs...)
}
