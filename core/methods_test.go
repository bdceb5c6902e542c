// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/framegraph/core"
)

// GraphSuite covers edge lifecycle, implicit vertices and ordering.
type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddEdge_CreatesVertices() {
	created, err := s.g.AddEdge("world", "robot")
	s.Require().NoError(err)
	s.True(created)
	s.True(s.g.HasVertex("world"))
	s.True(s.g.HasVertex("robot"))
	s.Equal(2, s.g.VertexCount())
	s.Equal(1, s.g.EdgeCount())

	created, err = s.g.AddEdge("world", "robot")
	s.Require().NoError(err)
	s.False(created, "re-adding an existing key is a no-op")
	s.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdge_Rejections() {
	_, err := s.g.AddEdge("", "x")
	s.ErrorIs(err, core.ErrEmptyVertexID)
	_, err = s.g.AddEdge("x", "")
	s.ErrorIs(err, core.ErrEmptyVertexID)
	_, err = s.g.AddEdge("x", "x")
	s.ErrorIs(err, core.ErrLoopNotAllowed)

	_, err = s.g.AddEdge("a", "b")
	s.Require().NoError(err)
	_, err = s.g.AddEdge("b", "a")
	s.ErrorIs(err, core.ErrReverseEdgeExists)
	s.False(s.g.HasEdge("b", "a"))
	s.Equal(2, s.g.VertexCount(), "failed insert leaves the graph unchanged")
}

func (s *GraphSuite) TestHasEdge_ExactDirection() {
	_, _ = s.g.AddEdge("a", "b")
	s.True(s.g.HasEdge("a", "b"))
	s.False(s.g.HasEdge("b", "a"))
	s.False(s.g.HasEdge("a", "c"))
}

func (s *GraphSuite) TestEdgeBetween() {
	_, _ = s.g.AddEdge("a", "b")

	key, fwd, ok := s.g.EdgeBetween("a", "b")
	s.True(ok)
	s.True(fwd)
	s.Equal(core.EdgeKey{From: "a", To: "b"}, key)

	key, fwd, ok = s.g.EdgeBetween("b", "a")
	s.True(ok)
	s.False(fwd)
	s.Equal(core.EdgeKey{From: "a", To: "b"}, key)

	_, _, ok = s.g.EdgeBetween("a", "zzz")
	s.False(ok)
}

func (s *GraphSuite) TestRemoveEdge_PrunesVertices() {
	_, _ = s.g.AddEdge("a", "b")
	_, _ = s.g.AddEdge("b", "c")

	s.ErrorIs(s.g.RemoveEdge("b", "a"), core.ErrEdgeNotFound, "removal never acts on the reverse")
	s.ErrorIs(s.g.RemoveEdge("", "a"), core.ErrEmptyVertexID)

	s.Require().NoError(s.g.RemoveEdge("a", "b"))
	s.False(s.g.HasVertex("a"), "a lost its last edge")
	s.True(s.g.HasVertex("b"))
	s.Equal([]string{"b", "c"}, s.g.Vertices())

	s.Require().NoError(s.g.RemoveEdge("b", "c"))
	s.Equal(0, s.g.VertexCount())
	s.Empty(s.g.Edges())

	// the reverse is allowed once the original is gone
	_, err := s.g.AddEdge("b", "a")
	s.NoError(err)
}

func (s *GraphSuite) TestOrdering() {
	_, _ = s.g.AddEdge("hub", "z")
	_, _ = s.g.AddEdge("a", "hub")
	_, _ = s.g.AddEdge("hub", "m")

	s.Equal([]string{"hub", "z", "a", "m"}, s.g.Vertices())
	s.Equal([]core.EdgeKey{{From: "hub", To: "z"}, {From: "a", To: "hub"}, {From: "hub", To: "m"}}, s.g.Edges())

	nbrs, err := s.g.NeighborIDs("hub")
	s.Require().NoError(err)
	s.Equal([]string{"z", "a", "m"}, nbrs, "neighbors follow frame insertion order, not names")

	d, err := s.g.Degree("hub")
	s.Require().NoError(err)
	s.Equal(3, d)
}

func (s *GraphSuite) TestNeighborIDs_Errors() {
	_, err := s.g.NeighborIDs("")
	s.ErrorIs(err, core.ErrEmptyVertexID)
	_, err = s.g.NeighborIDs("ghost")
	s.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Degree("ghost")
	s.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestReinsertedVertexMovesToEnd() {
	_, _ = s.g.AddEdge("a", "b")
	_, _ = s.g.AddEdge("c", "d")
	s.Require().NoError(s.g.RemoveEdge("a", "b"))
	_, _ = s.g.AddEdge("a", "c")

	s.Equal([]string{"c", "d", "a"}, s.g.Vertices())
}

func (s *GraphSuite) TestEdgeKey() {
	k := core.EdgeKey{From: "a", To: "b"}
	s.Equal(core.EdgeKey{From: "b", To: "a"}, k.Reverse())
	s.Equal("a->b", k.String())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
