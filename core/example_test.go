// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/framegraph/core"
)

// ExampleGraph demonstrates implicit frames and direction-agnostic adjacency.
func ExampleGraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge("world", "robot")
	_, _ = g.AddEdge("robot", "camera")

	nbrs, _ := g.NeighborIDs("robot")
	fmt.Println("Frames:", g.Vertices())
	fmt.Println("Neighbors of robot:", nbrs)
	fmt.Println("camera->robot registered?", g.HasEdge("camera", "robot"))

	_ = g.RemoveEdge("robot", "camera")
	fmt.Println("After removal:", g.Vertices())

	// Output:
	// Frames: [world robot camera]
	// Neighbors of robot: [world camera]
	// camera->robot registered? false
	// After removal: [world robot]
}
