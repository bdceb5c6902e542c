// SPDX-License-Identifier: MIT

package tfgraph

import (
	"fmt"

	"github.com/katalvlaran/framegraph/bfs"
	"github.com/katalvlaran/framegraph/core"
)

// pairKey is an unordered frame pair, stored with lo <= hi.
type pairKey struct{ lo, hi string }

// step is one edge of a resolved chain. forward is true when the chain
// walks the edge in its registered direction.
type step struct {
	key     core.EdgeKey
	forward bool
}

func reversed(steps []step) []step {
	out := make([]step, len(steps))
	for i, s := range steps {
		out[len(steps)-1-i] = step{key: s.key, forward: !s.forward}
	}

	return out
}

// chain resolves the steps leading from→to (from != to).
//
// The search always runs from the smaller frame name of the pair, so a
// pair resolves to the same chain whichever way it is queried and whether
// or not it was cached. cached reports a cache hit.
func (g *Graph) chain(from, to string) (steps []step, cached bool, err error) {
	for _, f := range [2]string{from, to} {
		if !g.topo.HasVertex(f) {
			return nil, false, fmt.Errorf("%w: %q -> %q: unknown frame %q", ErrNoPath, from, to, f)
		}
	}

	pk, flip := pairKey{lo: from, hi: to}, false
	if pk.lo > pk.hi {
		pk, flip = pairKey{lo: to, hi: from}, true
	}

	canonical, ok := g.cache[pk]
	if !ok {
		if canonical, err = g.search(pk.lo, pk.hi); err != nil {
			return nil, false, fmt.Errorf("%w: %q -> %q", err, from, to)
		}
		if g.opts.cache {
			g.cache[pk] = canonical
		}
	}
	if flip {
		return reversed(canonical), ok, nil
	}

	return canonical, ok, nil
}

// search runs a breadth-first search from→to, bounded by the hop limit,
// and turns the frame sequence into steps.
func (g *Graph) search(from, to string) ([]step, error) {
	res, err := bfs.BFS(g.topo, from, bfs.WithTarget(to), bfs.WithMaxDepth(g.opts.maxHops))
	if err != nil {
		return nil, err
	}
	frames, err := res.PathTo(to)
	if err != nil {
		return nil, ErrNoPath
	}

	steps := make([]step, 0, len(frames)-1)
	for i := 0; i+1 < len(frames); i++ {
		key, fwd, ok := g.topo.EdgeBetween(frames[i], frames[i+1])
		if !ok {
			return nil, fmt.Errorf("%w: edge %s-%s vanished", ErrNoPath, frames[i], frames[i+1])
		}
		steps = append(steps, step{key: key, forward: fwd})
	}

	return steps, nil
}

// invalidate drops every cached chain after a mutation of key.
func (g *Graph) invalidate(op string, key core.EdgeKey) {
	if len(g.cache) > 0 {
		clear(g.cache)
	}
	g.opts.logger.Debug("path cache invalidated", "op", op, "edge", key.String())
	g.opts.observer.CacheInvalidated()
}
