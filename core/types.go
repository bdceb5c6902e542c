// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a frame name is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates the edge is not registered in that exact direction.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrReverseEdgeExists indicates the opposite direction is already registered.
	ErrReverseEdgeExists = errors.New("core: reverse edge already registered")
)

// EdgeKey identifies an edge by its registered direction.
type EdgeKey struct {
	From string
	To   string
}

// Reverse returns the key of the opposite direction.
func (k EdgeKey) Reverse() EdgeKey { return EdgeKey{From: k.To, To: k.From} }

// String renders the key as "from->to".
func (k EdgeKey) String() string { return k.From + "->" + k.To }

// Graph is the topology store.
//
// vertices and edges map to monotonically increasing sequence numbers that
// define insertion order. adjacency is the undirected view:
// adjacency[a][b] holds the registered key between a and b, whichever
// direction it was registered in.
type Graph struct {
	mu sync.RWMutex

	nextSeq   uint64
	vertices  map[string]uint64
	edges     map[EdgeKey]uint64
	adjacency map[string]map[string]EdgeKey
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]uint64),
		edges:     make(map[EdgeKey]uint64),
		adjacency: make(map[string]map[string]EdgeKey),
	}
}

// seq hands out the next insertion sequence number. Write lock required.
func (g *Graph) seq() uint64 {
	g.nextSeq++

	return g.nextSeq
}
