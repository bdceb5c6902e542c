// SPDX-License-Identifier: MIT

// Package dfs finds the loops of a core.Graph with depth-first search.
//
// A loop is a closed walk over the undirected view that visits each vertex
// once. DetectCycles reports one loop per back edge of a depth-first
// forest, which together form a cycle basis: every other loop of the graph
// is a combination of them. For a transform graph each loop is a place
// where two chains connect the same frames, so composing its edges must
// give the identity.
//
// Loops are returned closed ([a b c a]) and canonical: rotated to start at
// their smallest vertex ID and oriented so the second element is the
// smaller of the two neighbors. The list is sorted by signature.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C = #loops, L = average loop length)
//   - Memory: O(V + L_max)
//
// Errors:
//
//   - ErrGraphNil  graph pointer is nil
//   - neighbor lookup failures, wrapped
package dfs
