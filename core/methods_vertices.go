// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex queries and the implicit vertex lifecycle helpers.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.

package core

import "sort"

// HasVertex reports whether id currently takes part in at least one edge.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in insertion order.
// A vertex removed and later re-added moves to the end.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	g.sortByInsertion(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// ensureVertex registers id with the next sequence number if missing.
// Write lock required.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = g.seq()
	g.adjacency[id] = make(map[string]EdgeKey)
}

// pruneVertex drops id once it has no incident edges. Write lock required.
func (g *Graph) pruneVertex(id string) {
	if len(g.adjacency[id]) > 0 {
		return
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)
}

// sortByInsertion orders ids by vertex sequence. Read lock required.
func (g *Graph) sortByInsertion(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return g.vertices[ids[i]] < g.vertices[ids[j]] })
}
