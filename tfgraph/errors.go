// SPDX-License-Identifier: MIT

package tfgraph

import "errors"

// Sentinel errors for graph operations. Match with errors.Is.
var (
	// ErrSelfLoop indicates an edge from a frame to itself.
	ErrSelfLoop = errors.New("tfgraph: self-loop edge")

	// ErrUnknownEdge indicates removal of an edge never registered in that direction.
	ErrUnknownEdge = errors.New("tfgraph: unknown edge")

	// ErrNoPath indicates that no chain of edges joins the two frames.
	ErrNoPath = errors.New("tfgraph: no path between frames")

	// ErrReverseEdge indicates the opposite direction of the edge is already registered.
	ErrReverseEdge = errors.New("tfgraph: reverse edge already registered")

	// ErrUnsupportedValue indicates SetTransform got a value it cannot wrap.
	ErrUnsupportedValue = errors.New("tfgraph: unsupported transform value")

	// ErrReentrantQuery indicates GetTransformAt was called while edges were being evaluated.
	ErrReentrantQuery = errors.New("tfgraph: re-entrant time override")

	// ErrLoopMismatch indicates two chains between the same frames disagree.
	ErrLoopMismatch = errors.New("tfgraph: loop does not close")

	// ErrEmptyFrame indicates an empty frame name.
	ErrEmptyFrame = errors.New("tfgraph: empty frame name")
)
