// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/framegraph/core"
)

// BFS grows a breadth-first tree over the undirected view of g from start.
//
// Neighbors are expanded in frame insertion order and a frame keeps the
// parent it was first discovered from, so repeated runs on an unchanged
// graph return identical results.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var l limits
	for _, opt := range opts {
		opt(&l)
	}
	if l.err != nil {
		return nil, l.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	res.Depth[start] = 0
	queue := append(make([]string, 0, n), start)

	for head := 0; head < len(queue); head++ {
		id := queue[head]
		res.Order = append(res.Order, id)
		if l.target != "" && id == l.target {
			break
		}
		d := res.Depth[id]
		if l.maxDepth > 0 && d >= l.maxDepth {
			continue
		}
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return res, fmt.Errorf("%w: %q: %v", ErrNeighbors, id, err)
		}
		for _, nb := range nbrs {
			if _, seen := res.Depth[nb]; seen {
				continue
			}
			res.Depth[nb] = d + 1
			res.Parent[nb] = id
			queue = append(queue, nb)
		}
	}

	return res, nil
}
