// SPDX-License-Identifier: MIT

package tfgraph

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/framegraph/dfs"
	"github.com/katalvlaran/framegraph/rigid"
)

// LoopResidual measures how far composing the edges around a loop lands
// from the identity. Both fields are zero for a loop that closes exactly.
type LoopResidual struct {
	Frames      []string // closed: Frames[0] == Frames[len-1]
	Translation float64  // length of the residual translation
	Angle       float64  // residual rotation angle, radians
}

// Loops returns a basis of the frame loops: places where more than one
// chain joins the same frames. GetTransform only ever uses the shortest
// chain, so the others are silently ignored unless they agree.
func (g *Graph) Loops() [][]string {
	// the topology is never nil and its neighbor lookups cannot fail
	loops, _ := dfs.DetectCycles(g.topo)
	return loops
}

// LoopResiduals composes every loop from Loops at the ambient time.
func (g *Graph) LoopResiduals() ([]LoopResidual, error) {
	loops := g.Loops()
	if len(loops) == 0 {
		return nil, nil
	}
	t := g.clock.Now()
	g.evaluating++
	defer func() { g.evaluating-- }()

	out := make([]LoopResidual, 0, len(loops))
	for _, loop := range loops {
		mats := make([]mgl64.Mat4, 0, len(loop)-1)
		for i := 0; i+1 < len(loop); i++ {
			key, fwd, ok := g.topo.EdgeBetween(loop[i], loop[i+1])
			if !ok {
				return nil, fmt.Errorf("%w: loop edge %s-%s", ErrUnknownEdge, loop[i], loop[i+1])
			}
			m, err := g.values[key].At(t)
			if err != nil {
				return nil, fmt.Errorf("evaluate %s at t=%v: %w", key, t, err)
			}
			if !fwd {
				m = g.invert(m)
			}
			mats = append(mats, m)
		}
		r := rigid.Compose(mats...)
		out = append(out, LoopResidual{
			Frames:      loop,
			Translation: rigid.Position(r).Len(),
			Angle:       rigid.RotationAngle(r),
		})
	}

	return out, nil
}

func (r LoopResidual) exceeds(tol float64) bool {
	return r.Translation > tol || r.Angle > tol
}

func (r LoopResidual) String() string {
	return fmt.Sprintf("%s: translation %.3g, angle %.3g rad",
		strings.Join(r.Frames, " -> "), r.Translation, r.Angle)
}
