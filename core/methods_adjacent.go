// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood API over the undirected view.
// Determinism:
//   - NeighborIDs() orders neighbors by vertex insertion order.

package core

// NeighborIDs returns every vertex sharing an edge with id, regardless of
// the direction the edge was registered in.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Under the read lock, validate existence (ErrVertexNotFound).
//   - Stage 3: Collect adjacency[id] keys and sort by vertex insertion order.
//
// Returns:
//   - []string: unique neighbor IDs, freshly allocated.
//   - error: a sentinel error on invalid input.
//
// Complexity:
//   - Time O(d log d), Space O(d), d = number of incident edges.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	g.sortByInsertion(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[id]), nil
}
