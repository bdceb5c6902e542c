// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start frame is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when the graph cannot list a frame's neighbors.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option tunes a single search. An invalid Option is remembered and
// reported as ErrOptionViolation by BFS.
type Option func(*limits)

type limits struct {
	target   string
	maxDepth int
	err      error
}

// WithTarget stops the search once id has been dequeued. Its parent chain,
// and therefore PathTo(id), is already final at that point.
func WithTarget(id string) Option {
	return func(l *limits) { l.target = id }
}

// WithMaxDepth leaves frames more than d edges away from the start
// undiscovered. Zero means no limit; a negative d is rejected.
func WithMaxDepth(d int) Option {
	return func(l *limits) {
		if d < 0 {
			l.err = fmt.Errorf("%w: max depth %d is negative", ErrOptionViolation, d)
			return
		}
		l.maxDepth = d
	}
}

// Result is the BFS tree grown from the start frame.
//
// Depth and Parent cover every discovered frame, including frames still
// queued when a target stopped the search. Order lists dequeued frames only.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether dest was discovered.
func (r *Result) Reached(dest string) bool {
	_, ok := r.Depth[dest]

	return ok
}

// PathTo returns the frames from the start to dest, both included.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := make([]string, d+1)
	for i, cur := d, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
