// SPDX-License-Identifier: MIT

package dfs

import "errors"

// Visitation states of a vertex during the search.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

// ErrGraphNil is returned when a nil *core.Graph is passed to DetectCycles.
var ErrGraphNil = errors.New("dfs: graph is nil")
