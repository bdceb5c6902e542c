// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/framegraph/core"
)

// searcher holds the mutable state of one DetectCycles run.
type searcher struct {
	g     *core.Graph
	state map[string]int
	stack []string
	seen  map[string]struct{}
	loops [][]string
}

// DetectCycles returns a cycle basis of g's undirected view, or nil when
// g is a forest.
//
// Implementation:
//   - Stage 1: Start a search from every white vertex, in insertion order.
//   - Stage 2: A gray neighbor other than the parent closes a loop; the
//     stack segment from it to the current vertex is recorded.
//   - Stage 3: Canonicalize, deduplicate and sort by signature.
func DetectCycles(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	verts := g.Vertices()
	s := &searcher{
		g:     g,
		state: make(map[string]int, len(verts)),
		stack: make([]string, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range verts {
		if s.state[v] == White {
			if err := s.visit(v, ""); err != nil {
				return nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	sort.Slice(s.loops, func(i, j int) bool {
		return signature(s.loops[i]) < signature(s.loops[j])
	})

	return s.loops, nil
}

func (s *searcher) visit(id, parent string) error {
	s.state[id] = Gray
	s.stack = append(s.stack, id)

	nbrs, err := s.g.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("NeighborIDs(%q): %w", id, err)
	}
	for _, nbr := range nbrs {
		if nbr == parent {
			continue
		}
		switch s.state[nbr] {
		case White:
			if err = s.visit(nbr, id); err != nil {
				return err
			}
		case Gray:
			s.record(nbr)
		}
		// Black: the same back edge, already seen from its lower end
	}

	s.stack = s.stack[:len(s.stack)-1]
	s.state[id] = Black

	return nil
}

// record stores the loop running from start down the stack to its top.
func (s *searcher) record(start string) {
	idx := indexOf(s.stack, start)
	if len(s.stack)-idx < 3 {
		return
	}
	loop := canonical(s.stack[idx:])
	sig := signature(loop)
	if _, dup := s.seen[sig]; dup {
		return
	}
	s.seen[sig] = struct{}{}
	s.loops = append(s.loops, loop)
}
