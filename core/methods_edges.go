// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeBetween/Edges/EdgeCount.
// Determinism:
//   - Edges() returns keys in registration order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "sort"

// AddEdge registers the directed edge from→to, creating missing vertices.
//
// Implementation:
//   - Stage 1: Validate non-empty IDs (ErrEmptyVertexID) and from != to (ErrLoopNotAllowed).
//   - Stage 2: Under the write lock, return created=false if the key already exists.
//   - Stage 3: Reject the key if its reverse is registered (ErrReverseEdgeExists).
//   - Stage 4: Register missing vertices, then the edge and both adjacency entries.
//
// Behavior highlights:
//   - Idempotent for an existing key; the original registration order is kept.
//   - On error the graph is unchanged.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) AddEdge(from, to string) (created bool, err error) {
	if from == "" || to == "" {
		return false, ErrEmptyVertexID
	}
	if from == to {
		return false, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := EdgeKey{From: from, To: to}
	if _, ok := g.edges[key]; ok {
		return false, nil
	}
	if _, ok := g.edges[key.Reverse()]; ok {
		return false, ErrReverseEdgeExists
	}

	g.ensureVertex(from)
	g.ensureVertex(to)
	g.edges[key] = g.seq()
	g.adjacency[from][to] = key
	g.adjacency[to][from] = key

	return true, nil
}

// RemoveEdge deletes the edge registered exactly as from→to. It never acts
// on the reverse direction. Vertices left without edges are removed.
//
// Errors:
//   - ErrEmptyVertexID: if either ID is empty.
//   - ErrEdgeNotFound: if from→to is not registered.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := EdgeKey{From: from, To: to}
	if _, ok := g.edges[key]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, key)
	delete(g.adjacency[from], to)
	delete(g.adjacency[to], from)
	g.pruneVertex(from)
	g.pruneVertex(to)

	return nil
}

// HasEdge reports whether from→to is registered in that exact direction.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[EdgeKey{From: from, To: to}]

	return ok
}

// EdgeBetween returns the edge joining a and b in either direction.
// forward is true when the key was registered as a→b, false when it was
// registered as b→a. ok is false when a and b are not adjacent.
func (g *Graph) EdgeBetween(a, b string) (key EdgeKey, forward, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	key, ok = g.adjacency[a][b]
	if !ok {
		return EdgeKey{}, false, false
	}

	return key, key.From == a, true
}

// Edges returns all keys in registration order.
// Complexity: O(E log E).
func (g *Graph) Edges() []EdgeKey {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]EdgeKey, 0, len(g.edges))
	for k := range g.edges {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return g.edges[out[i]] < g.edges[out[j]] })

	return out
}

// EdgeCount returns the number of registered edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
