// SPDX-License-Identifier: MIT

// Package framegraph resolves rigid transforms between named coordinate
// frames.
//
// Frames are vertices, registered transforms are edges, and a query for
// the transform between two frames composes (and inverts where needed)
// the edges along the fewest-hop chain joining them. Edges may depend on
// time; a graph carries an ambient time and answers queries at any other
// instant without disturbing it.
//
// Everything lives in subpackages:
//
//	rigid/       4x4 rigid transforms: compose, invert, validate, repair
//	transform/   edge values: static, time-varying, sampled
//	core/        frame/edge topology with deterministic ordering
//	bfs/         fewest-hop search over the topology
//	dfs/         loop (cycle basis) detection over the topology
//	tfgraph/     the transform graph: queries, chain cache, ambient time
//	scene/       YAML scene documents
//
// The tfquery command (cmd/tfquery) loads a scene and answers queries
// from the command line or over HTTP.
//
// Conventions: matrices are mgl64.Mat4 (column-major); a transform named
// A2B maps points expressed in A into B, p_B = A2B · p_A.
package framegraph
