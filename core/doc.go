// SPDX-License-Identifier: MIT

// Package core provides the thread-safe topology store behind a transform
// graph: named vertices (frames) and directed edge keys, with an undirected
// adjacency view for path discovery.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices appear implicitly with the first edge that references them
//     and disappear when their last edge is removed. There is no AddVertex.
//   - Every edge has exactly one registered direction (From→To). Adding the
//     reverse of an existing edge is rejected with ErrReverseEdgeExists, so
//     each unordered pair carries at most one edge.
//   - Self-loops are rejected with ErrLoopNotAllowed.
//   - Re-adding an existing key is a no-op (created == false); callers use it
//     to overwrite payloads they keep elsewhere.
//
// Determinism
//
//	Vertices() lists frames in insertion order, Edges() lists keys in
//	registration order and NeighborIDs() orders neighbors by the insertion
//	order of the neighbor frame. Traversals built on top of these (see
//	package bfs) are therefore reproducible run to run, independent of Go
//	map iteration order.
//
// Concurrency
//
//	A single sync.RWMutex guards the catalog and adjacency. Reads take the
//	read lock, mutations the write lock.
//
// Core Methods:
//
//	AddEdge(from, to string) (created bool, err error)  // O(1)
//	RemoveEdge(from, to string) error                  // O(1)
//	HasEdge(from, to string) bool                      // O(1), exact direction
//	EdgeBetween(a, b string) (EdgeKey, bool, bool)     // O(1), either direction
//	HasVertex(id string) bool                          // O(1)
//	NeighborIDs(id string) ([]string, error)           // O(d log d)
//	Vertices() []string                                // O(V log V)
//	Edges() []EdgeKey                                  // O(E log E)
//
// Errors:
//
//	ErrEmptyVertexID      - a frame name is the empty string.
//	ErrVertexNotFound     - requested vertex does not exist.
//	ErrEdgeNotFound       - edge not registered in that exact direction.
//	ErrLoopNotAllowed     - From == To.
//	ErrReverseEdgeExists  - the opposite direction is already registered.
package core
