// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph,
// returning fewest-hop distances, parent links, and visit order.
//
// Edges are followed in both directions: a registered A→B edge makes B a
// neighbor of A and A a neighbor of B.
//
// Determinism
//
//	core.Graph.NeighborIDs orders neighbors by frame insertion order and a
//	frame's parent is fixed the first time it is discovered, so among several
//	fewest-hop paths the same one is returned on every run.
//
// Options
//
//   - WithTarget stops once the destination is dequeued.
//   - WithMaxDepth bounds the search to d edges (0 = unbounded).
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d)  (neighbor lists are sorted per visit)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(g, "world", bfs.WithTarget("camera"), bfs.WithMaxDepth(8))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors
//	}
//	path, err := result.PathTo("camera") // ErrNoPath if unreachable
package bfs
