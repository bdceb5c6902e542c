// SPDX-License-Identifier: MIT

package tfgraph_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/framegraph/core"
	"github.com/katalvlaran/framegraph/internal/logging"
	"github.com/katalvlaran/framegraph/rigid"
	"github.com/katalvlaran/framegraph/tfgraph"
	"github.com/katalvlaran/framegraph/transform"
)

const eps = 1e-9

var (
	xAxis = mgl64.Vec3{1, 0, 0}
	zAxis = mgl64.Vec3{0, 0, 1}
)

// recorder is an Observer that counts notifications.
type recorder struct {
	hits, misses  int
	hops          []int
	failures      []error
	warnings      int
	invalidations int
}

func (r *recorder) PathResolved(hops int, cached bool) {
	if cached {
		r.hits++
	} else {
		r.misses++
	}
	r.hops = append(r.hops, hops)
}
func (r *recorder) QueryFailed(err error) { r.failures = append(r.failures, err) }
func (r *recorder) ValidationWarning(_, _ string, _ error) { r.warnings++ }
func (r *recorder) CacheInvalidated() { r.invalidations++ }

// GraphSuite exercises the transform graph against a small robot scene.
type GraphSuite struct {
	suite.Suite
	g   *tfgraph.Graph
	obs *recorder
}

func (s *GraphSuite) SetupTest() {
	s.obs = &recorder{}
	s.g = tfgraph.New(tfgraph.WithObserver(s.obs))
}

func (s *GraphSuite) approx(want, got mgl64.Mat4) {
	s.T().Helper()
	s.Truef(rigid.ApproxEqual(want, got, eps), "want %v\n got %v", want, got)
}

func (s *GraphSuite) must(m mgl64.Mat4, err error) mgl64.Mat4 {
	s.T().Helper()
	s.Require().NoError(err)
	return m
}

func (s *GraphSuite) TestWorldRobotSensor() {
	s.Require().NoError(s.g.SetTransform("world", "robot", rigid.Identity()))
	s.Require().NoError(s.g.SetTransform("robot", "sensor", rigid.Translation(1, 0, 0)))

	s.approx(rigid.Translation(1, 0, 0), s.must(s.g.GetTransform("world", "sensor")))
	s.approx(rigid.Translation(-1, 0, 0), s.must(s.g.GetTransform("sensor", "world")))
}

func (s *GraphSuite) TestIdentityShortCircuit() {
	s.approx(rigid.Identity(), s.must(s.g.GetTransform("nowhere", "nowhere")))

	s.Require().NoError(s.g.SetTransform("a", "b", rigid.Translation(1, 2, 3)))
	s.approx(rigid.Identity(), s.must(s.g.GetTransform("a", "a")))
	s.True(s.g.TransformAvailable("ghost", "ghost"))
}

func (s *GraphSuite) TestRegisteredEdgeAndInverse() {
	t := rigid.Compose(rigid.RotationDeg(mgl64.Vec3{1, 1, 0}, 40), rigid.Translation(0.5, -2, 7))
	s.Require().NoError(s.g.SetTransform("a", "b", t))

	s.approx(t, s.must(s.g.GetTransform("a", "b")))
	s.approx(rigid.Invert(t), s.must(s.g.GetTransform("b", "a")))
	s.approx(t.Inv(), s.must(s.g.GetTransform("b", "a")))
}

func (s *GraphSuite) TestCompositionAssociativity() {
	s.Require().NoError(s.g.SetTransform("a", "b", rigid.Compose(rigid.RotationDeg(zAxis, 30), rigid.Translation(1, 0, 0))))
	s.Require().NoError(s.g.SetTransform("c", "b", rigid.Compose(rigid.RotationDeg(xAxis, -60), rigid.Translation(0, 2, 0))))
	s.Require().NoError(s.g.SetTransform("c", "d", rigid.Translation(0, 0, 3)))

	ab := s.must(s.g.GetTransform("a", "b"))
	bc := s.must(s.g.GetTransform("b", "c"))
	cd := s.must(s.g.GetTransform("c", "d"))

	s.approx(rigid.Compose(ab, bc), s.must(s.g.GetTransform("a", "c")))
	s.approx(rigid.Compose(ab, bc, cd), s.must(s.g.GetTransform("a", "d")))

	// a point in a, mapped step by step, lands where the composed transform puts it
	p := mgl64.Vec4{1, 2, 3, 1}
	step := cd.Mul4x1(bc.Mul4x1(ab.Mul4x1(p)))
	direct := s.must(s.g.GetTransform("a", "d")).Mul4x1(p)
	s.InDelta(step[0], direct[0], eps)
	s.InDelta(step[1], direct[1], eps)
	s.InDelta(step[2], direct[2], eps)
}

func (s *GraphSuite) TestRoundTrip() {
	s.Require().NoError(s.g.SetTransform("a", "b", rigid.Compose(rigid.RotationDeg(zAxis, 75), rigid.Translation(3, 1, 0))))
	s.Require().NoError(s.g.SetTransform("b", "c", rigid.Compose(rigid.RotationDeg(xAxis, 15), rigid.Translation(0, 0, -4))))

	for _, pair := range [][2]string{{"a", "b"}, {"a", "c"}, {"c", "b"}} {
		fwd := s.must(s.g.GetTransform(pair[0], pair[1]))
		back := s.must(s.g.GetTransform(pair[1], pair[0]))
		s.approx(rigid.Identity(), rigid.Compose(fwd, back))
	}
}

func (s *GraphSuite) TestNoPath() {
	s.Require().NoError(s.g.SetTransform("a", "b", rigid.Identity()))
	s.Require().NoError(s.g.SetTransform("x", "y", rigid.Identity()))

	_, err := s.g.GetTransform("a", "y")
	s.ErrorIs(err, tfgraph.ErrNoPath)
	_, err = s.g.GetTransform("a", "unknown")
	s.ErrorIs(err, tfgraph.ErrNoPath)
	s.False(s.g.TransformAvailable("a", "y"))
	s.True(s.g.TransformAvailable("b", "a"))
	s.Len(s.obs.failures, 2)

	_, err = s.g.Path("b", "x")
	s.ErrorIs(err, tfgraph.ErrNoPath)
}

func (s *GraphSuite) TestTimeVaryingRotation() {
	spin := transform.NewTimeVarying(func(t float64) mgl64.Mat4 { return rigid.RotationDeg(zAxis, t) })
	s.Require().NoError(s.g.SetTransform("a", "b", spin))

	m0 := s.must(s.g.GetTransformInTime("a", "b", 0))
	m90 := s.must(s.g.GetTransformInTime("a", "b", 90))

	s.False(rigid.ApproxEqual(m0, m90, 1e-3))
	s.approx(m90, rigid.Compose(m0, rigid.RotationDeg(zAxis, 90)))
	s.approx(rigid.RotationDeg(zAxis, -90), s.must(s.g.GetTransformAt("b", "a", 90)))
}

func (s *GraphSuite) TestAmbientTime() {
	slide := transform.NewTimeVarying(func(t float64) mgl64.Mat4 { return rigid.Translation(t, 0, 0) })
	s.Require().NoError(s.g.SetTransform("rail", "cart", slide))
	s.Equal(0.0, s.g.CurrentTime())

	s.approx(rigid.Identity(), s.must(s.g.GetTransform("rail", "cart")))

	s.g.SetTime(2.5)
	s.Equal(2.5, s.g.CurrentTime())
	s.approx(rigid.Translation(2.5, 0, 0), s.must(s.g.GetTransform("rail", "cart")))
}

func (s *GraphSuite) TestTemporalIsolation() {
	slide := transform.NewTimeVarying(func(t float64) mgl64.Mat4 { return rigid.Translation(t, 0, 0) })
	s.Require().NoError(s.g.SetTransform("rail", "cart", slide))
	s.g.SetTime(1)

	s.approx(rigid.Translation(7, 0, 0), s.must(s.g.GetTransformAt("rail", "cart", 7)))
	s.Equal(1.0, s.g.CurrentTime())

	_, err := s.g.GetTransformAt("rail", "elsewhere", 9)
	s.ErrorIs(err, tfgraph.ErrNoPath)
	s.Equal(1.0, s.g.CurrentTime(), "restored after failure too")

	s.approx(rigid.Translation(1, 0, 0), s.must(s.g.GetTransform("rail", "cart")))
}

func (s *GraphSuite) TestCacheInvalidation() {
	s.Require().NoError(s.g.SetTransform("a", "b", rigid.Translation(1, 0, 0)))
	s.Require().NoError(s.g.SetTransform("b", "c", rigid.Translation(1, 0, 0)))
	s.Require().NoError(s.g.SetTransform("c", "d", rigid.Translation(1, 0, 0)))
	s.Equal(3, s.obs.invalidations)

	s.approx(rigid.Translation(3, 0, 0), s.must(s.g.GetTransform("a", "d")))
	s.approx(rigid.Translation(-3, 0, 0), s.must(s.g.GetTransform("d", "a")))
	s.Equal(1, s.obs.misses)
	s.Equal(1, s.obs.hits, "the reverse query reuses the cached chain")

	// shortcut: the cached 3-hop chain must not be reused
	s.Require().NoError(s.g.SetTransform("a", "d", rigid.Translation(10, 0, 0)))
	s.approx(rigid.Translation(10, 0, 0), s.must(s.g.GetTransform("a", "d")))
	s.Equal([]string{"a", "d"}, s.must2(s.g.Path("a", "d")))

	// overwrite the shortcut value
	s.Require().NoError(s.g.SetTransform("a", "d", rigid.Translation(20, 0, 0)))
	s.approx(rigid.Translation(20, 0, 0), s.must(s.g.GetTransform("a", "d")))

	s.Require().NoError(s.g.RemoveTransform("a", "d"))
	s.approx(rigid.Translation(3, 0, 0), s.must(s.g.GetTransform("a", "d")))

	s.Require().NoError(s.g.RemoveTransform("b", "c"))
	_, err := s.g.GetTransform("a", "d")
	s.ErrorIs(err, tfgraph.ErrNoPath)
	s.Equal([]int{3, 3, 1, 1, 3}, s.obs.hops)
}

func (s *GraphSuite) must2(v []string, err error) []string {
	s.T().Helper()
	s.Require().NoError(err)
	return v
}

func (s *GraphSuite) TestTimeDoesNotInvalidateCache() {
	s.Require().NoError(s.g.SetTransform("a", "b", rigid.Identity()))
	s.Require().NoError(s.g.SetTransform("b", "c", rigid.Identity()))

	_, _ = s.g.GetTransform("a", "c")
	s.g.SetTime(42)
	_, _ = s.g.GetTransformAt("a", "c", 7)
	s.Equal(1, s.obs.misses)
	s.Equal(1, s.obs.hits)
}

func (s *GraphSuite) TestDeterministicTieBreak() {
	// two 2-hop routes from "a" to "z": via "m" (inserted first) and via "b"
	s.Require().NoError(s.g.SetTransform("a", "m", rigid.Translation(1, 0, 0)))
	s.Require().NoError(s.g.SetTransform("a", "b", rigid.Translation(0, 1, 0)))
	s.Require().NoError(s.g.SetTransform("m", "z", rigid.Translation(1, 0, 0)))
	s.Require().NoError(s.g.SetTransform("z", "b", rigid.Translation(0, -1, 0)))

	for i := 0; i < 10; i++ {
		g := tfgraph.New(tfgraph.WithCache(false))
		for _, e := range s.g.Edges() {
			m := s.must(s.g.GetTransform(e.From, e.To))
			s.Require().NoError(g.SetTransform(e.From, e.To, m))
		}
		path, err := g.Path("a", "z")
		s.Require().NoError(err)
		s.Equal([]string{"a", "m", "z"}, path)

		back, err := g.Path("z", "a")
		s.Require().NoError(err)
		s.Equal([]string{"z", "m", "a"}, back, "both directions walk the same chain")
	}
}

func (s *GraphSuite) TestSetTransformErrors() {
	s.ErrorIs(s.g.SetTransform("a", "a", rigid.Identity()), tfgraph.ErrSelfLoop)
	s.ErrorIs(s.g.SetTransform("", "a", rigid.Identity()), tfgraph.ErrEmptyFrame)
	s.ErrorIs(s.g.SetTransform("a", "b", "not a matrix"), tfgraph.ErrUnsupportedValue)
	s.ErrorIs(s.g.SetTransform("a", "b", nil), tfgraph.ErrUnsupportedValue)
	s.ErrorIs(s.g.SetTransform("a", "b", (*transform.Sampled)(nil)), tfgraph.ErrUnsupportedValue)
	s.ErrorIs(s.g.SetTransform("a", "b", &transform.Sampled{}), transform.ErrNoSamples)

	bad := rigid.Identity()
	bad[0] = 2
	err := s.g.SetTransform("a", "b", bad)
	s.ErrorIs(err, rigid.ErrInvalidTransform)
	var ite *rigid.InvalidTransformError
	s.Require().ErrorAs(err, &ite)
	s.Equal(rigid.ViolationNotOrthonormal, ite.Violation)

	s.Empty(s.g.Frames(), "failed registrations leave the graph unchanged")
	s.Zero(s.obs.invalidations)

	s.Require().NoError(s.g.SetTransform("a", "b", rigid.Identity()))
	s.ErrorIs(s.g.SetTransform("b", "a", rigid.Identity()), tfgraph.ErrReverseEdge)
	s.False(s.g.HasTransform("b", "a"))
}

func (s *GraphSuite) TestRemoveTransform() {
	s.Require().NoError(s.g.SetTransform("a", "b", rigid.Identity()))
	s.Require().NoError(s.g.SetTransform("b", "c", rigid.Identity()))

	s.ErrorIs(s.g.RemoveTransform("b", "a"), tfgraph.ErrUnknownEdge, "removal never acts on the reverse")
	s.ErrorIs(s.g.RemoveTransform("x", "y"), tfgraph.ErrUnknownEdge)
	s.ErrorIs(s.g.RemoveTransform("", "y"), tfgraph.ErrUnknownEdge)
	s.True(s.g.HasTransform("a", "b"))

	s.Require().NoError(s.g.RemoveTransform("a", "b"))
	s.False(s.g.HasTransform("a", "b"))
	s.False(s.g.HasFrame("a"), "a lost its last edge")
	s.Equal([]string{"b", "c"}, s.g.Frames())
	s.ErrorIs(s.g.RemoveTransform("a", "b"), tfgraph.ErrUnknownEdge)
}

func (s *GraphSuite) TestHasTransformIsDirectional() {
	s.Require().NoError(s.g.SetTransform("a", "b", rigid.Identity()))
	s.Require().NoError(s.g.SetTransform("b", "c", rigid.Identity()))

	s.True(s.g.HasTransform("a", "b"))
	s.False(s.g.HasTransform("b", "a"))
	s.False(s.g.HasTransform("a", "c"))
	s.True(s.g.TransformAvailable("c", "a"))
}

func (s *GraphSuite) TestDeferredValidationFailsAtEvaluation() {
	// a "rotation" that grows a scale factor for t > 1
	growing := transform.NewTimeVarying(func(t float64) mgl64.Mat4 {
		m := rigid.Identity()
		if t > 1 {
			m[0] = t
		}
		return m
	})
	s.Require().NoError(s.g.SetTransform("a", "b", growing))

	_, err := s.g.GetTransformAt("a", "b", 0.5)
	s.NoError(err)
	_, err = s.g.GetTransformAt("a", "b", 3)
	s.ErrorIs(err, rigid.ErrInvalidTransform)
	s.Contains(err.Error(), "a->b")
}

func (s *GraphSuite) TestReentrantOverrideIsRejected() {
	var nestedErr error
	var nestedTime float64
	probe := transform.NewTimeVarying(func(t float64) mgl64.Mat4 {
		_, nestedErr = s.g.GetTransformAt("x", "y", 100)
		nestedTime = s.g.CurrentTime()
		return rigid.Translation(t, 0, 0)
	})
	s.Require().NoError(s.g.SetTransform("a", "b", probe))
	s.Require().NoError(s.g.SetTransform("x", "y", rigid.Identity()))
	s.g.SetTime(2)

	m := s.must(s.g.GetTransformAt("a", "b", 3))
	s.approx(rigid.Translation(3, 0, 0), m)
	s.ErrorIs(nestedErr, tfgraph.ErrReentrantQuery)
	s.Equal(3.0, nestedTime, "evaluation sees the outer override")
	s.Equal(2.0, s.g.CurrentTime())

	// after the outer query the guard is released
	_, err := s.g.GetTransformAt("x", "y", 100)
	s.NoError(err)
}

func (s *GraphSuite) TestNestedAmbientQueryIsAllowed() {
	var inner mgl64.Mat4
	var innerErr error
	follower := transform.NewTimeVarying(func(t float64) mgl64.Mat4 {
		inner, innerErr = s.g.GetTransform("rail", "cart")
		return rigid.Identity()
	})
	s.Require().NoError(s.g.SetTransform("rail", "cart", transform.NewTimeVarying(func(t float64) mgl64.Mat4 {
		return rigid.Translation(t, 0, 0)
	})))
	s.Require().NoError(s.g.SetTransform("cam", "mount", follower))

	_, err := s.g.GetTransformAt("cam", "mount", 4)
	s.Require().NoError(err)
	s.Require().NoError(innerErr)
	s.approx(rigid.Translation(4, 0, 0), inner)
}

func (s *GraphSuite) TestTransformsAndComponents() {
	s.Require().NoError(s.g.SetTransform("a", "b", rigid.Translation(1, 0, 0)))
	s.Require().NoError(s.g.SetTransform("c", "b", rigid.Translation(0, 1, 0)))
	s.Require().NoError(s.g.SetTransform("x", "y", rigid.Translation(0, 0, 1)))

	all, err := s.g.Transforms()
	s.Require().NoError(err)
	s.Len(all, 3)
	s.approx(rigid.Translation(0, 1, 0), all[core.EdgeKey{From: "c", To: "b"}])

	s.Equal([][]string{{"a", "b", "c"}, {"x", "y"}}, s.g.ConnectedComponents())
	s.Equal([]core.EdgeKey{{From: "a", To: "b"}, {From: "c", To: "b"}, {From: "x", To: "y"}}, s.g.Edges())
	s.NoError(s.g.CheckConsistency())
}

func (s *GraphSuite) TestLoops() {
	ab := rigid.Compose(rigid.RotationDeg(zAxis, 30), rigid.Translation(1, 0, 0))
	bc := rigid.Translation(0, 2, 0)
	s.Require().NoError(s.g.SetTransform("a", "b", ab))
	s.Require().NoError(s.g.SetTransform("b", "c", bc))
	s.Empty(s.g.Loops())

	// a redundant chain that agrees with the other one
	s.Require().NoError(s.g.SetTransform("c", "a", rigid.Invert(rigid.Compose(ab, bc))))
	s.Equal([][]string{{"a", "b", "c", "a"}}, s.g.Loops())

	res, err := s.g.LoopResiduals()
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.InDelta(0, res[0].Translation, 1e-9)
	s.InDelta(0, res[0].Angle, 1e-9)
	s.NoError(s.g.CheckConsistency())

	// now it disagrees by 5 cm and 2 degrees
	off := rigid.Compose(rigid.Invert(rigid.Compose(ab, bc)), rigid.RotationDeg(xAxis, 2), rigid.Translation(0, 0, 0.05))
	s.Require().NoError(s.g.SetTransform("c", "a", off))
	res, err = s.g.LoopResiduals()
	s.Require().NoError(err)
	s.InDelta(0.05, res[0].Translation, 1e-9)
	s.InDelta(mgl64.DegToRad(2), res[0].Angle, 1e-9)

	err = s.g.CheckConsistency()
	s.ErrorIs(err, tfgraph.ErrLoopMismatch)
	s.Contains(err.Error(), "a -> b -> c -> a")
}

func (s *GraphSuite) TestMaxHops() {
	g := tfgraph.New(tfgraph.WithMaxHops(2), tfgraph.WithObserver(s.obs))
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}} {
		s.Require().NoError(g.SetTransform(e[0], e[1], rigid.Translation(1, 0, 0)))
	}

	s.Equal([]string{"a", "b", "c"}, s.must2(g.Path("a", "c")))
	_, err := g.GetTransform("a", "d")
	s.ErrorIs(err, tfgraph.ErrNoPath)
	_, err = g.GetTransform("d", "a")
	s.ErrorIs(err, tfgraph.ErrNoPath)
	s.False(g.TransformAvailable("a", "d"))
	s.True(g.TransformAvailable("b", "d"))

	// a shortcut brings d back within reach
	s.Require().NoError(g.SetTransform("a", "d", rigid.Translation(3, 0, 0)))
	s.approx(rigid.Translation(3, 0, 0), s.must(g.GetTransform("a", "d")))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestLenientValidationWarns(t *testing.T) {
	var buf bytes.Buffer
	obs := &recorder{}
	g := tfgraph.New(
		tfgraph.WithStrictCheck(false),
		tfgraph.WithLogger(logging.New(&buf, logging.Options{Level: "debug"})),
		tfgraph.WithObserver(obs),
	)

	drifted := rigid.RotationDeg(zAxis, 10)
	drifted[1] += 0.01
	require.NoError(t, g.SetTransform("a", "b", drifted))

	m, err := g.GetTransform("a", "b")
	require.NoError(t, err)
	assert.Nil(t, rigid.Validate(m, 0), "the stored matrix is repaired")
	assert.Equal(t, 1, obs.warnings)
	assert.Contains(t, buf.String(), "repaired invalid transform")
	assert.Contains(t, buf.String(), "non-orthonormal rotation")
	assert.Contains(t, buf.String(), "path cache invalidated")

	// unrepairable values are still rejected
	inf := rigid.Identity()
	inf[12] = math.Inf(1)
	err = g.SetTransform("b", "c", inf)
	assert.ErrorIs(t, err, rigid.ErrInvalidTransform)
}

func TestCheckDisabled(t *testing.T) {
	g := tfgraph.New(tfgraph.WithCheck(false))

	scaled := rigid.Identity()
	scaled[0], scaled[5], scaled[10] = 2, 2, 2
	require.NoError(t, g.SetTransform("a", "b", scaled), "caller asserts correctness")

	back, err := g.GetTransform("b", "a")
	require.NoError(t, err)
	assert.True(t, rigid.ApproxEqual(scaled.Inv(), back, eps), "unchecked values use the general inverse")

	err = g.CheckConsistency()
	require.Error(t, err)
	assert.True(t, errors.Is(err, rigid.ErrInvalidTransform))
}
