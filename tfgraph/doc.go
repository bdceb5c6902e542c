// SPDX-License-Identifier: MIT

// Package tfgraph answers "what is the transform from frame A to frame B?"
// over a graph of named frames joined by rigid transforms, optionally
// evaluated at a point in time.
//
// What
//
//   - SetTransform registers a directed edge from→to holding a
//     transform.Value (a raw mgl64.Mat4 is wrapped as transform.Static).
//     The reverse direction is never stored; it is derived by inversion.
//   - GetTransform resolves the fewest-hop chain of edges between two frames
//     (package bfs, edges walked in either direction), evaluates each edge at
//     the query time, inverts edges walked backwards and composes the chain.
//     The result maps points expressed in the source frame into the target
//     frame: p_to = M · p_from.
//   - GetTransformAt runs the same query at an explicit time. The ambient
//     time is overridden for the duration of the query and restored on every
//     exit path.
//
// Determinism
//
//	Among equally short chains the one found first by a breadth-first search
//	in frame insertion order wins. The search always starts from the
//	lexicographically smaller frame of the pair, so GetTransform(A, B) and
//	GetTransform(B, A) walk the same chain and are exact inverses of each
//	other up to rounding.
//
// Caching
//
//	Resolved chains are cached per unordered frame pair. Any successful
//	SetTransform or RemoveTransform drops the whole cache; changing the time
//	never does, since time only affects edge evaluation.
//
// Validation
//
//	WithCheck(true) (default) validates every value on SetTransform.
//	WithStrictCheck(true) (default) rejects violations with
//	*rigid.InvalidTransformError; with false, repairable violations are
//	fixed, logged at WARN and reported to the Observer. Time-varying values
//	are checked lazily, each time they are evaluated.
//
// Loops
//
//	A frame loop exists wherever two chains join the same frames. Loops
//	returns a basis of them (package dfs); LoopResiduals reports how far
//	each one is from closing, and CheckConsistency fails with
//	ErrLoopMismatch when a loop does not close within the tolerance.
//
// Concurrency
//
//	A Graph is not safe for concurrent use. The edge map, the chain cache and
//	the ambient time form one unit of mutable state; callers sharing a Graph
//	across goroutines must serialize every call, reads included.
//
// Re-entrancy
//
//	A transform.TimeVarying function may query the graph it belongs to with
//	GetTransform, which sees the time of the outer query. Calling
//	GetTransformAt from inside such a function returns ErrReentrantQuery:
//	the nested override would clobber the outer one's saved time.
//
// Errors
//
//   - ErrSelfLoop          from == to on SetTransform.
//   - ErrUnknownEdge       RemoveTransform of an edge not registered in that direction.
//   - ErrNoPath            no chain of edges joins the two frames.
//   - ErrReverseEdge       the opposite direction is already registered.
//   - ErrUnsupportedValue  SetTransform got neither mgl64.Mat4 nor transform.Value.
//   - ErrReentrantQuery    GetTransformAt called during edge evaluation.
//   - ErrEmptyFrame        SetTransform with an empty frame name.
//   - ErrLoopMismatch      CheckConsistency found a loop that does not close.
//   - rigid.ErrInvalidTransform (as *rigid.InvalidTransformError) on contract violations.
package tfgraph
